// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic_test

import (
	"errors"
	"testing"

	"cloudeng.io/ethiopic"
)

func TestMonthNames(t *testing.T) {
	for _, tc := range []struct {
		month   ethiopic.Month
		amharic string
		name    string
		short   string
	}{
		{ethiopic.Meskerem, "መስከረም", "Meskerem", "መስከ"},
		{ethiopic.Tir, "ጥር", "Tir", "ጥር"},
		{ethiopic.Puagme, "ጳጉሜ", "Puagme", "ጳጉሜ"},
	} {
		if got, want := tc.month.String(), tc.amharic; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		if got, want := tc.month.Name(), tc.name; got != want {
			t.Errorf("%v: got %v, want %v", tc.month, got, want)
		}
		if got, want := tc.month.Short(), tc.short; got != want {
			t.Errorf("%v: got short %v, want %v", tc.name, got, want)
		}
	}
}

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		input string
		month ethiopic.Month
	}{
		{"meskerem", ethiopic.Meskerem},
		{"TiKimiT", ethiopic.Tikimit},
		{"መስከረም", ethiopic.Meskerem},
		{"ጳጉሜ", ethiopic.Puagme},
		{"13", ethiopic.Puagme},
		{"05", ethiopic.Tir},
	} {
		var m ethiopic.Month
		if err := m.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if m != tc.month {
			t.Errorf("%v: got %v, want %v", tc.input, m, tc.month)
		}
	}
	// Every month parses from both of its own spellings.
	for m := ethiopic.Meskerem; m <= ethiopic.Puagme; m++ {
		for _, spelling := range []string{m.Name(), m.String()} {
			got, err := ethiopic.ParseMonth(spelling)
			if err != nil {
				t.Errorf("%v: %v", spelling, err)
				continue
			}
			if got != m {
				t.Errorf("%v: got %v, want %v", spelling, got, m)
			}
		}
	}
	for _, tc := range []string{"", "mesk", "january", "14", "0"} {
		var m ethiopic.Month
		err := m.Parse(tc)
		if err == nil {
			t.Errorf("%v: expected error", tc)
			continue
		}
		var ve *ethiopic.VariantError
		var re *ethiopic.RangeError
		if !errors.As(err, &ve) && !errors.As(err, &re) {
			t.Errorf("%v: error %T carries no detail", tc, err)
		}
	}
}

func TestMonthCycle(t *testing.T) {
	if got, want := ethiopic.Meskerem.Next(), ethiopic.Tikimit; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ethiopic.Puagme.Next(), ethiopic.Meskerem; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ethiopic.Meskerem.Previous(), ethiopic.Puagme; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for m := ethiopic.Meskerem; m <= ethiopic.Puagme; m++ {
		if got, want := m.Next().Previous(), m; got != want {
			t.Errorf("%v: got %v", m, got)
		}
	}
}

func TestWeekdayNames(t *testing.T) {
	for _, tc := range []struct {
		weekday ethiopic.Weekday
		amharic string
		name    string
	}{
		{ethiopic.Ehud, "እሑድ", "Ehud"},
		{ethiopic.Maksegno, "ማክሰኞ", "Maksegno"},
		{ethiopic.Kidame, "ቅዳሜ", "Kidame"},
	} {
		if got, want := tc.weekday.String(), tc.amharic; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
		if got, want := tc.weekday.Name(), tc.name; got != want {
			t.Errorf("%v: got %v, want %v", tc.weekday, got, want)
		}
	}
	if got, want := ethiopic.Maksegno.Short(), "ማክሰ"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ethiopic.Segno.Short(), "ሰኞ"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeekdayParseAndCycle(t *testing.T) {
	for _, tc := range []struct {
		input   string
		weekday ethiopic.Weekday
	}{
		{"ehuD", ethiopic.Ehud},
		{"kidame", ethiopic.Kidame},
		{"ሰኞ", ethiopic.Segno},
		{"3", ethiopic.Rebue},
	} {
		var w ethiopic.Weekday
		if err := w.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if w != tc.weekday {
			t.Errorf("%v: got %v, want %v", tc.input, w, tc.weekday)
		}
	}
	for _, tc := range []string{"", "monday", "7", "-1"} {
		var w ethiopic.Weekday
		if err := w.Parse(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}
	if got, want := ethiopic.Kidame.Next(), ethiopic.Ehud; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ethiopic.Ehud.Previous(), ethiopic.Kidame; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysIn(t *testing.T) {
	for _, tc := range []struct {
		year int
		days int
	}{
		{2003, 366},
		{2004, 365},
		{2000, 365},
		{-1, 366},
	} {
		if got, want := ethiopic.DaysInYear(tc.year), tc.days; got != want {
			t.Errorf("DaysInYear(%v): got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := ethiopic.DaysInMonth(2003, ethiopic.Puagme), 6; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ethiopic.DaysInMonth(2004, ethiopic.Puagme), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ethiopic.DaysInMonth(2004, ethiopic.Sene), 30; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
