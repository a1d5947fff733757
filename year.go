// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

// IsLeap returns true if the given Ethiopian year is a leap year, that is,
// a year for which year mod 4 == 3 (Euclidean modulo, so negative years
// follow the same cycle). The rule agrees with the JDN conversion: a year
// is leap exactly when Puagme has a sixth day.
func IsLeap(year int) bool {
	return modE(year, 4) == 3
}

// DaysInYear returns the number of days in the given Ethiopian year,
// 365 or 366 for a leap year.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month for the given
// year: 30 for Meskerem through Nehase, and 5 or 6 for Puagme depending
// on whether the year is leap.
func DaysInMonth(year int, month Month) int {
	if month == Puagme {
		if IsLeap(year) {
			return 6
		}
		return 5
	}
	return 30
}

// validDate reports whether year, month, day names a day in the Ethiopian
// calendar. There is no floor on the year: year 1 is the calendar epoch and
// years at or below zero are accepted as proleptic dates.
func validDate(year int, month Month, day int) error {
	if month < Meskerem || month > Puagme {
		return &RangeError{Field: "month", Given: int(month), Min: 1, Max: 13}
	}
	if max := DaysInMonth(year, month); day < 1 || day > max {
		return &RangeError{Field: "day", Given: day, Min: 1, Max: max}
	}
	return nil
}
