// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import "time"

// Anchors the Ethiopian calendar to the Julian Day Number scale: the
// epoch, 0001-01-01, is JDN jdnEpochOffset+365 (1,724,221). All conversion
// between the two calendars routes through JDNs so that the two sides
// cannot drift: a JDN names the same day on both.
const jdnEpochOffset = 1_723_856

// The Ethiopian leap cycle: every fourth year has a 366th day, with no
// century corrections, so the calendar repeats over 4 years / 1461 days.
const (
	daysPer4Years = 1461
	daysPerYear   = 365
)

// divE and modE are Euclidean division and modulo: modE always returns a
// non-negative result and divE floors rather than truncating. The JDN
// arithmetic below is only correct with this pair; Go's native operators
// truncate toward zero and silently misplace days before the epoch.
func divE(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func modE(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ethiopicToJDN returns the Julian Day Number for an Ethiopian year, month
// and day. It performs no validation; callers validate first.
func ethiopicToJDN(year, month, day int) int {
	return jdnEpochOffset + daysPerYear + daysPerYear*(year-1) + divE(year, 4) + 30*month + day - 31
}

// jdnToEthiopic returns the Ethiopian year, month and day for a Julian Day
// Number. Any JDN names an Ethiopian day, so there is no error return.
func jdnToEthiopic(jdn int) (year int, month Month, day int) {
	since := jdn - jdnEpochOffset
	r := modE(since, daysPer4Years)
	// r/1460 folds the 366th day of the cycle back onto day 365 of year 3.
	n := modE(r, daysPerYear) + daysPerYear*(r/(daysPer4Years-1))
	year = 4*divE(since, daysPer4Years) + r/daysPerYear - r/(daysPer4Years-1)
	month = Month(n/30 + 1)
	day = modE(n, 30) + 1
	return
}

// The Gregorian side of the bridge uses the standard proleptic-Gregorian
// era arithmetic over the 400 year / 146097 day cycle. The same day
// boundary convention applies on both sides: a JDN covers one civil day.
const gregorianEpochShift = 1_721_120 // JDN of 0000-03-01 proleptic Gregorian

// gregorianToJDN returns the Julian Day Number for a proleptic Gregorian
// date. It performs no validation; callers validate first.
func gregorianToJDN(year int, month time.Month, day int) int {
	y, m := year, int(month)
	if m <= 2 {
		y--
	}
	era := divE(y, 400)
	yoe := y - era*400
	doy := (153*modE(m-3, 12)+2)/5 + day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe + gregorianEpochShift
}

// jdnToGregorian returns the proleptic Gregorian date for a Julian Day
// Number.
func jdnToGregorian(jdn int) (year int, month time.Month, day int) {
	z := jdn - gregorianEpochShift
	era := divE(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		return yoe + era*400, time.Month(mp + 3), day
	}
	return yoe + era*400 + 1, time.Month(mp - 9), day
}

// gregorianIsLeap implements the Gregorian 4/100/400 leap rule.
func gregorianIsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

func gregorianDaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if gregorianIsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// validGregorianDate reports whether year, month, day names a day in the
// proleptic Gregorian calendar.
func validGregorianDate(year int, month time.Month, day int) error {
	if month < time.January || month > time.December {
		return &RangeError{Field: "gregorian month", Given: int(month), Min: 1, Max: 12}
	}
	if max := gregorianDaysInMonth(year, month); day < 1 || day > max {
		return &RangeError{Field: "gregorian day", Given: day, Min: 1, Max: max}
	}
	return nil
}
