// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses loosely typed request values into domain types.

Calendar dates (sermon dates, recording dates) travel as "2006-01-02" strings
in JSON and are stored in DATE columns.
*/
package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// ToDate parses an optional calendar date. A nil or blank input yields nil.
func ToDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	parsed, err := time.Parse(DateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return nil, fmt.Errorf("convert: %q is not a %s date", *raw, DateLayout)
	}
	return &parsed, nil
}

// ToIntD converts a string to an int, returning def if parsing fails or the string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}
