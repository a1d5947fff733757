// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ethiopic provides support for working with dates in the Ethiopian
// calendar, including conversion to and from the Gregorian calendar via
// Julian Day Numbers (JDN).
//
// The Ethiopian year has twelve months of thirty days followed by Puagme,
// a short thirteenth month of five days, or six in a leap year. Leap years
// are those for which year mod 4 == 3; this aligns each Ethiopian leap year
// with the Gregorian leap year that follows it and is consistent with the
// JDN conversion used here.
package ethiopic

import (
	"strconv"
	"strings"
)

// Month represents a month of the Ethiopian year, 1 (Meskerem) through
// 13 (Puagme).
type Month int

const (
	Meskerem Month = iota + 1
	Tikimit
	Hedar
	Tahasass
	Tir
	Yekatit
	Megabit
	Miyazia
	Ginbot
	Sene
	Hamle
	Nehase
	Puagme
)

var (
	monthNames = []string{"meskerem", "tikimit", "hedar", "tahasass", "tir", "yekatit", "megabit", "miyazia", "ginbot", "sene", "hamle", "nehase", "puagme"}

	monthNamesAmharic = []string{"መስከረም", "ጥቅምት", "ኅዳር", "ታኅሣሥ", "ጥር", "የካቲት", "መጋቢት", "ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ"}
)

// String returns the Amharic name of the month.
func (m Month) String() string {
	if m < Meskerem || m > Puagme {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNamesAmharic[m-1]
}

// Name returns the transliterated name of the month, eg. "Meskerem".
func (m Month) Name() string {
	if m < Meskerem || m > Puagme {
		return "%!Month(" + strconv.Itoa(int(m)) + ")"
	}
	return titled(monthNames[m-1])
}

// Short returns the first three characters of the Amharic name of the
// month. The slice is by rune, never by byte, since the names are not
// ASCII.
func (m Month) Short() string {
	return shortName(m.String())
}

// Next returns the month following m, wrapping from Puagme to Meskerem.
func (m Month) Next() Month {
	if m == Puagme {
		return Meskerem
	}
	return m + 1
}

// Previous returns the month preceding m, wrapping from Meskerem to Puagme.
func (m Month) Previous() Month {
	if m == Meskerem {
		return Puagme
	}
	return m - 1
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the
// range 1-13.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, &VariantError{Field: "month", Token: val}
	}
	if n < 1 || n > 13 {
		return 0, &RangeError{Field: "month", Given: n, Min: 1, Max: 13}
	}
	return Month(n), nil
}

// ParseMonth parses a month name in either its transliterated form
// ("Meskerem" to "Puagme", in any case) or its Amharic form.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	for i := range monthNames {
		if lc == monthNames[i] || val == monthNamesAmharic[i] {
			return Month(i + 1), nil
		}
	}
	return 0, &VariantError{Field: "month", Token: val}
}

// Parse parses a month in either numeric or name format. A numeric value
// outside 1-13 is reported as a *RangeError, not retried as a name.
func (m *Month) Parse(val string) error {
	switch n, err := ParseNumericMonth(val); err.(type) {
	case nil:
		*m = n
		return nil
	case *RangeError:
		return err
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

func shortName(name string) string {
	r := []rune(name)
	if len(r) <= 3 {
		return name
	}
	return string(r[:3])
}

func titled(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}
