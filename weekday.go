// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"strconv"
	"strings"
)

// Weekday represents a day of the Ethiopian week, 0 (Ehud, Sunday)
// through 6 (Kidame, Saturday). The week begins on Ehud.
type Weekday int

const (
	Ehud Weekday = iota
	Segno
	Maksegno
	Rebue
	Hamus
	Arb
	Kidame
)

var (
	weekdayNames = []string{"ehud", "segno", "maksegno", "rebue", "hamus", "arb", "kidame"}

	weekdayNamesAmharic = []string{"እሑድ", "ሰኞ", "ማክሰኞ", "ረቡዕ", "ሐሙስ", "ዓርብ", "ቅዳሜ"}
)

// String returns the Amharic name of the weekday.
func (w Weekday) String() string {
	if w < Ehud || w > Kidame {
		return "%!Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNamesAmharic[w]
}

// Name returns the transliterated name of the weekday, eg. "Ehud".
func (w Weekday) Name() string {
	if w < Ehud || w > Kidame {
		return "%!Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return titled(weekdayNames[w])
}

// Short returns the first three characters of the Amharic name of the
// weekday, sliced by rune.
func (w Weekday) Short() string {
	return shortName(w.String())
}

// Next returns the weekday following w, wrapping from Kidame to Ehud.
func (w Weekday) Next() Weekday {
	if w == Kidame {
		return Ehud
	}
	return w + 1
}

// Previous returns the weekday preceding w, wrapping from Ehud to Kidame.
func (w Weekday) Previous() Weekday {
	if w == Ehud {
		return Kidame
	}
	return w - 1
}

// ParseWeekday parses a weekday name in either its transliterated form
// ("Ehud" to "Kidame", in any case) or its Amharic form.
func ParseWeekday(val string) (Weekday, error) {
	lc := strings.ToLower(val)
	for i := range weekdayNames {
		if lc == weekdayNames[i] || val == weekdayNamesAmharic[i] {
			return Weekday(i), nil
		}
	}
	return 0, &VariantError{Field: "weekday", Token: val}
}

// Parse parses a weekday in either numeric (0-6) or name format.
func (w *Weekday) Parse(val string) error {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 0 || n > 6 {
			return &RangeError{Field: "weekday", Given: n, Min: 0, Max: 6}
		}
		*w = Weekday(n)
		return nil
	}
	n, err := ParseWeekday(val)
	if err != nil {
		return err
	}
	*w = n
	return nil
}
