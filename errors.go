// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import "fmt"

// RangeError describes a numeric field that fell outside its valid
// inclusive range.
type RangeError struct {
	Field    string
	Given    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v must be in the range %v..%v, but given %v", e.Field, e.Min, e.Max, e.Given)
}

// DateError describes a year, month, day triple that does not name a day
// in the Ethiopian calendar. It wraps a *RangeError identifying the
// offending field.
type DateError struct {
	Year  int
	Month Month
	Day   int
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid ethiopian date %04d-%02d-%02d: %v", e.Year, int(e.Month), e.Day, e.Err)
}

func (e *DateError) Unwrap() error { return e.Err }

// VariantError describes a textual token that does not match any
// recognized name for the named field.
type VariantError struct {
	Field string
	Token string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("cannot parse %v, invalid token %q", e.Field, e.Token)
}

func inRange(value, min, max int, field string) error {
	if value >= min && value <= max {
		return nil
	}
	return &RangeError{Field: field, Given: value, Min: min, Max: max}
}
