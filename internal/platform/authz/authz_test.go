// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/ctxutil"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
)

const testSecret = "authz-test-secret-with-thirty-two-bytes!"

var (
	admin  = sec.Identity{ID: 1, Email: "admin@church.org", Name: "Admin", Role: sec.RoleMasterAdmin}
	pastor = sec.Identity{ID: 2, Email: "pastor@church.org", Name: "Pastor", Role: sec.RolePastor}
	member = sec.Identity{ID: 3, Email: "member@church.org", Name: "Member", Role: sec.RoleMember}
)

func newCodec(t *testing.T) *sec.TokenCodec {
	t.Helper()
	codec, err := sec.NewTokenCodec(testSecret, constants.AuthIssuer)
	require.NoError(t, err)
	return codec
}

func issue(t *testing.T, codec *sec.TokenCodec, identity sec.Identity) string {
	t.Helper()
	token, err := codec.Encode(identity)
	require.NoError(t, err)
	return token
}

// # Session Resolution

/*
TestResolver_Sources covers cookie, header, precedence and invalid inputs.
*/
func TestResolver_Sources(t *testing.T) {
	codec := newCodec(t)
	resolver := authz.NewResolver(codec)

	memberToken := issue(t, codec, member)
	pastorToken := issue(t, codec, pastor)

	tests := []struct {
		name     string
		cookie   string
		header   string
		expected *sec.Identity
	}{
		{"no_credentials", "", "", nil},
		{"cookie", memberToken, "", &member},
		{"bearer_header", "", "Bearer " + pastorToken, &pastor},
		{"bearer_lowercase", "", "bearer " + pastorToken, &pastor},
		{"cookie_wins", memberToken, "Bearer " + pastorToken, &member},
		{"malformed_cookie", "not-a-token", "", nil},
		{"basic_scheme", "", "Basic " + pastorToken, nil},
		{"bearer_without_token", "", "Bearer", nil},
		{"garbage_header", "", "Bearer x.y.z", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				request.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				request.Header.Set(constants.HeaderAuthorization, tt.header)
			}

			assert.Equal(t, tt.expected, resolver.Resolve(request))
		})
	}
}

/*
TestResolver_UsesContextCache returns a previously resolved identity without decoding.
*/
func TestResolver_UsesContextCache(t *testing.T) {
	resolver := authz.NewResolver(newCodec(t))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderAuthorization, "Bearer garbage")
	request = request.WithContext(ctxutil.WithIdentity(request.Context(), &admin))

	assert.Equal(t, &admin, resolver.Resolve(request))
}

// # Role Gate

/*
TestGate_Decisions checks 401 for anonymous, 403 for wrong role and success otherwise.
*/
func TestGate_Decisions(t *testing.T) {
	codec := newCodec(t)
	gate := authz.NewGate(authz.NewResolver(codec))

	withToken := func(identity *sec.Identity) *http.Request {
		request := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", nil)
		if identity != nil {
			request.Header.Set(constants.HeaderAuthorization, "Bearer "+issue(t, codec, *identity))
		}
		return request
	}

	// 1. Anonymous
	decision := gate.Authorize(withToken(nil), sec.Staff()...)
	denied, ok := decision.(authz.Denied)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, denied.Status)
	assert.Equal(t, "Authentication required", denied.Message)

	// 2. Member against staff-only operation
	decision = gate.Authorize(withToken(&member), sec.Staff()...)
	denied, ok = decision.(authz.Denied)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, denied.Status)
	assert.Equal(t, "Insufficient permissions", denied.Message)

	// 3. Pastor against staff-only operation
	decision = gate.Authorize(withToken(&pastor), sec.Staff()...)
	authorized, ok := decision.(authz.Authorized)
	require.True(t, ok)
	assert.Equal(t, pastor, authorized.User)

	// 4. Any authenticated role
	_, ok = gate.Authorize(withToken(&member)).(authz.Authorized)
	assert.True(t, ok)
}

/*
TestDenied_Err maps denials onto transport errors.
*/
func TestDenied_Err(t *testing.T) {
	unauthorized := authz.Denied{Status: http.StatusUnauthorized, Message: "Authentication required"}.Err()
	assert.Equal(t, http.StatusUnauthorized, unauthorized.HTTPStatus)
	assert.Equal(t, "Authentication required", unauthorized.Message)

	forbidden := authz.Denied{Status: http.StatusForbidden, Message: "Insufficient permissions"}.Err()
	assert.Equal(t, http.StatusForbidden, forbidden.HTTPStatus)
}

/*
TestDecide_UnknownRole refuses identities whose role is outside the enumeration.
*/
func TestDecide_UnknownRole(t *testing.T) {
	forged := &sec.Identity{ID: 5, Role: sec.Role("owner")}

	denied, ok := authz.Decide(forged).(authz.Denied)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, denied.Status)
}

// # Cookies

/*
TestCookies_SetAndClear verifies cookie attributes.
*/
func TestCookies_SetAndClear(t *testing.T) {
	cookies := authz.Cookies{Secure: true, TTL: 7 * 24 * time.Hour}

	recorder := httptest.NewRecorder()
	cookies.Set(recorder, "token-value")
	set := recorder.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, constants.AuthCookieName, set[0].Name)
	assert.Equal(t, "token-value", set[0].Value)
	assert.True(t, set[0].HttpOnly)
	assert.True(t, set[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, set[0].SameSite)
	assert.Equal(t, 7*24*60*60, set[0].MaxAge)

	recorder = httptest.NewRecorder()
	cookies.Clear(recorder)
	cleared := recorder.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}

// # Visibility Policy

/*
TestPolicy_Table checks every resource against every caller class.
*/
func TestPolicy_Table(t *testing.T) {
	policy := authz.DefaultPolicy()

	published := map[string]any{"published": true}
	draft := map[string]any{"published": false}
	verified := map[string]any{"status": "verified"}
	pending := map[string]any{"status": "pending"}
	active := map[string]any{"status": "active"}
	inactive := map[string]any{"status": "inactive"}
	ownNote := map[string]any{"owner_id": member.ID}
	otherNote := map[string]any{"owner_id": int64(99)}
	plain := map[string]any{"id": int64(1)}

	tests := []struct {
		resource authz.Resource
		row      map[string]any
		visible  map[string]bool // keyed by caller label
	}{
		{authz.ResourceBlogs, published, all(true)},
		{authz.ResourceBlogs, draft, staffOnly()},
		{authz.ResourceProphecies, verified, all(true)},
		{authz.ResourceProphecies, pending, staffOnly()},
		{authz.ResourceSlider, active, all(true)},
		{authz.ResourceSlider, inactive, staffOnly()},
		{authz.ResourceNotes, ownNote, map[string]bool{"anonymous": false, "member": true, "pastor": true, "master_admin": true}},
		{authz.ResourceNotes, otherNote, staffOnly()},
		{authz.ResourceEvents, plain, all(true)},
		{authz.ResourceMedia, plain, all(true)},
		{authz.ResourceGallery, plain, all(true)},
		{authz.ResourceTeam, plain, all(true)},
		{authz.ResourceSiteContent, plain, all(true)},
		{authz.ResourcePrayerRequests, pending, staffOnly()},
	}

	callers := map[string]*sec.Identity{
		"anonymous":    nil,
		"member":       &member,
		"pastor":       &pastor,
		"master_admin": &admin,
	}

	for _, tt := range tests {
		for label, caller := range callers {
			filter := policy.For(tt.resource, caller, authz.Query{})
			assert.Equal(t, tt.visible[label], filter.Matches(tt.row), "%s as %s", tt.resource, label)
		}
	}
}

/*
TestPolicy_EveryRoleCovered ensures no (resource, role) pair is left out of the table.
*/
func TestPolicy_EveryRoleCovered(t *testing.T) {
	policy := authz.DefaultPolicy()
	resources := []authz.Resource{
		authz.ResourceBlogs, authz.ResourceProphecies, authz.ResourceSlider, authz.ResourceNotes,
		authz.ResourceEvents, authz.ResourceMedia, authz.ResourceGallery, authz.ResourceTeam,
		authz.ResourcePrayerRequests, authz.ResourceSiteContent,
	}

	for _, resource := range resources {
		for _, role := range sec.Roles() {
			caller := &sec.Identity{ID: 10, Role: role}
			filter := policy.For(resource, caller, authz.Query{})
			if role.IsStaff() {
				assert.True(t, filter.Unrestricted(), "%s as %s", resource, role)
			}
		}
	}
}

/*
TestPolicy_UnknownResource fails closed.
*/
func TestPolicy_UnknownResource(t *testing.T) {
	filter := authz.DefaultPolicy().For(authz.Resource("donations"), &admin, authz.Query{})

	assert.True(t, filter.Denied())
	assert.False(t, filter.Matches(map[string]any{"id": int64(1)}))

	clause, args := filter.Where(1)
	assert.Equal(t, "FALSE", clause)
	assert.Empty(t, args)
}

/*
TestPolicy_UnknownRole fails closed even for public resources.
*/
func TestPolicy_UnknownRole(t *testing.T) {
	forged := &sec.Identity{ID: 4, Role: sec.Role("deacon")}
	assert.True(t, authz.DefaultPolicy().For(authz.ResourceEvents, forged, authz.Query{}).Denied())
}

/*
TestPolicy_StatusQuery honours ?status for staff and ignores it for others.
*/
func TestPolicy_StatusQuery(t *testing.T) {
	policy := authz.DefaultPolicy()

	// 1. Pastor asking for pending prophecies
	filter := policy.For(authz.ResourceProphecies, &pastor, authz.Query{Status: "pending"})
	clause, args := filter.Where(1)
	assert.Equal(t, "status = $1", clause)
	assert.Equal(t, []any{"pending"}, args)

	// 2. Member asking for pending prophecies still only gets verified
	filter = policy.For(authz.ResourceProphecies, &member, authz.Query{Status: "pending"})
	assert.False(t, filter.Matches(map[string]any{"status": "pending"}))
	assert.True(t, filter.Matches(map[string]any{"status": "verified"}))

	// 3. Blog status maps onto the published flag
	filter = policy.For(authz.ResourceBlogs, &admin, authz.Query{Status: "draft"})
	assert.True(t, filter.Matches(map[string]any{"published": false}))
	assert.False(t, filter.Matches(map[string]any{"published": true}))

	// 4. Unknown status values are ignored
	filter = policy.For(authz.ResourceBlogs, &admin, authz.Query{Status: "archived"})
	assert.True(t, filter.Unrestricted())
}

/*
TestFilter_Where renders positional parameters from the given offset.
*/
func TestFilter_Where(t *testing.T) {
	clause, args := authz.Filter{}.Where(1)
	assert.Equal(t, "TRUE", clause)
	assert.Empty(t, args)

	filter := authz.NewFilter(authz.Eq("published", true)).And(authz.Eq("owner_id", int64(3)))
	clause, args = filter.Where(3)
	assert.Equal(t, "published = $3 AND owner_id = $4", clause)
	assert.Equal(t, []any{true, int64(3)}, args)
}

/*
TestQueryFromRequest reads the status parameter.
*/
func TestQueryFromRequest(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/v1/blogs?status=draft", nil)
	assert.Equal(t, authz.Query{Status: "draft"}, authz.QueryFromRequest(request))
}

func all(visible bool) map[string]bool {
	return map[string]bool{"anonymous": visible, "member": visible, "pastor": visible, "master_admin": visible}
}

func staffOnly() map[string]bool {
	return map[string]bool{"anonymous": false, "member": false, "pastor": true, "master_admin": true}
}
