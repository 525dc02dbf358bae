// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authz

import (
	"net/http"
	"time"

	"github.com/taibuivan/ecclesia/internal/platform/constants"
)

// # Auth Cookie

// Cookies writes and clears the auth_token cookie.
type Cookies struct {
	// Secure sets the cookie's Secure attribute.
	Secure bool
	// TTL is the cookie lifetime and should match the token lifetime.
	TTL time.Duration
}

// Set stores token in an HTTP-only cookie.
func (cookies Cookies) Set(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     constants.AuthCookiePath,
		MaxAge:   int(cookies.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the cookie on the client.
func (cookies Cookies) Clear(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     constants.AuthCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
