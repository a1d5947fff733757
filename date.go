// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a single day in the Ethiopian calendar. It is an
// immutable value: all arithmetic returns new Dates and a Date is safe to
// copy and to share across goroutines. Two Dates are equal (==) iff they
// name the same day, and the natural ordering of the packed representation
// is chronological, so Dates may be compared and sorted directly.
//
// The zero value does not name a valid date; obtain Dates from the
// constructors, which validate.
type Date struct {
	// Year in the high bits, ordinal day of year (1-366) in the low
	// ordinalBits. The ordinal needs 9 bits since 366 < 512; the shift is
	// arithmetic so negative years survive the round trip.
	packed int32
}

const (
	ordinalBits = 9
	ordinalMask = 1<<ordinalBits - 1

	// The years representable once 9 bits are given over to the ordinal.
	MinYear = -1 << (31 - ordinalBits)
	MaxYear = 1<<(31-ordinalBits) - 1
)

// toOrdinal returns the 1-based day of year for a month and day. Purely
// arithmetic, callers validate first.
func toOrdinal(month Month, day int) int {
	return (int(month)-1)*30 + day
}

// fromOrdinal returns the month and day for a 1-based day of year.
// Division and remainder land on day 0 for the last day of each full
// month; that case rolls back to day 30 of the preceding month.
func fromOrdinal(ordinal int) (Month, int) {
	month := ordinal/30 + 1
	day := ordinal % 30
	if day == 0 {
		month--
		day = 30
	}
	return Month(month), day
}

func pack(year, ordinal int) Date {
	return Date{packed: int32(year)<<ordinalBits | int32(ordinal)}
}

// New returns the Date for an Ethiopian year, month and day. If month or
// day is out of range for the year it returns a *DateError wrapping a
// *RangeError for the offending field; see IsLeap for the treatment of
// Puagme. Years at or below zero are accepted.
func New(year int, month Month, day int) (Date, error) {
	if err := validDate(year, month, day); err != nil {
		return Date{}, &DateError{Year: year, Month: month, Day: day, Err: err}
	}
	return NewOrdinalDate(year, toOrdinal(month, day))
}

// NewOrdinalDate returns the Date for an Ethiopian year and 1-based day of
// year, 1 to 365, or 366 in a leap year.
func NewOrdinalDate(year, ordinal int) (Date, error) {
	if err := inRange(ordinal, 1, DaysInYear(year), "ordinal"); err != nil {
		return Date{}, err
	}
	if err := inRange(year, MinYear, MaxYear, "year"); err != nil {
		return Date{}, err
	}
	return pack(year, ordinal), nil
}

// FromJDN returns the Date for a Julian Day Number. Every JDN representable
// within MinYear..MaxYear converts cleanly; a JDN outside that span returns
// a *RangeError.
func FromJDN(jdn int) (Date, error) {
	year, month, day := jdnToEthiopic(jdn)
	return New(year, month, day)
}

// FromGregorian returns the Date for a proleptic Gregorian year, month and
// day. The conversion itself is total; the only failures are an invalid
// Gregorian date, reported as a *RangeError on the offending field.
func FromGregorian(year int, month time.Month, day int) (Date, error) {
	if err := validGregorianDate(year, month, day); err != nil {
		return Date{}, err
	}
	return FromJDN(gregorianToJDN(year, month, day))
}

// FromTime returns the Date for the civil day of t in t's location.
func FromTime(t time.Time) Date {
	d, err := FromGregorian(t.Date())
	if err != nil {
		panic(fmt.Sprintf("ethiopic: time.Time yielded an invalid date: %v", err))
	}
	return d
}

// Today returns the current date in the Ethiopian calendar, in the local
// time zone.
func Today() Date {
	return FromTime(time.Now())
}

// Year returns the Ethiopian year.
func (d Date) Year() int {
	return int(d.packed >> ordinalBits)
}

// Ordinal returns the 1-based day of the year.
func (d Date) Ordinal() int {
	return int(d.packed & ordinalMask)
}

// OrdinalDate returns the year and the 1-based day of the year.
func (d Date) OrdinalDate() (year, ordinal int) {
	return d.Year(), d.Ordinal()
}

// Month returns the month.
func (d Date) Month() Month {
	m, _ := fromOrdinal(d.Ordinal())
	return m
}

// Day returns the day of the month.
func (d Date) Day() int {
	_, day := fromOrdinal(d.Ordinal())
	return day
}

// JDN returns the Julian Day Number for the date.
func (d Date) JDN() int {
	m, day := fromOrdinal(d.Ordinal())
	return ethiopicToJDN(d.Year(), int(m), day)
}

// Weekday returns the day of the week. JDN 0 fell on a Monday; the +1
// shifts the cycle so that 0 lands on Ehud (Sunday). The offset is tied to
// the JDN epoch and must not change.
func (d Date) Weekday() Weekday {
	return Weekday(modE(d.JDN()+1, 7))
}

// Gregorian returns the equivalent proleptic Gregorian date.
func (d Date) Gregorian() (year int, month time.Month, day int) {
	return jdnToGregorian(d.JDN())
}

// Time returns the midnight beginning the date in the given location,
// which defaults to time.UTC if nil.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	year, month, day := d.Gregorian()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// Tomorrow returns the following day.
func (d Date) Tomorrow() Date {
	return d.AddDays(1)
}

// Yesterday returns the preceding day.
func (d Date) Yesterday() Date {
	return d.AddDays(-1)
}

// AddDays returns the date n days after d, or before for negative n. The
// result must lie within MinYear..MaxYear.
func (d Date) AddDays(n int) Date {
	nd, err := FromJDN(d.JDN() + n)
	if err != nil {
		// Only reachable by walking off the representable year range.
		panic(fmt.Sprintf("ethiopic: AddDays(%v) from %v: %v", n, d, err))
	}
	return nd
}

// Before reports whether d falls before e.
func (d Date) Before(e Date) bool {
	return d.packed < e.packed
}

// After reports whether d falls after e.
func (d Date) After(e Date) bool {
	return d.packed > e.packed
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	m, day := fromOrdinal(d.Ordinal())
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(m), day)
}

// Parse parses a date in the format YYYY-MM-DD, the format produced by
// String. The month may also be given by name, eg. 2016-Meskerem-01.
// A leading minus sign denotes a proleptic year.
func (d *Date) Parse(val string) error {
	negYear := strings.HasPrefix(val, "-")
	parts := strings.Split(strings.TrimPrefix(val, "-"), "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year %q, expected YYYY-MM-DD", parts[0])
	}
	if negYear {
		year = -year
	}
	var month Month
	if err := month.Parse(parts[1]); err != nil {
		return err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day %q, expected YYYY-MM-DD", parts[2])
	}
	nd, err := New(year, month, day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}
