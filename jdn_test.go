// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"testing"
	"time"
)

func TestOrdinalCodec(t *testing.T) {
	for _, tc := range []struct {
		month   Month
		day     int
		ordinal int
	}{
		{Meskerem, 1, 1},
		{Meskerem, 10, 10},
		{Meskerem, 30, 30},
		{Tikimit, 2, 32},
		{Tikimit, 30, 60}, // divides evenly: the roll-back case
		{Hedar, 2, 62},
		{Hedar, 5, 65},
		{Puagme, 1, 361},
		{Puagme, 6, 366},
	} {
		if got, want := toOrdinal(tc.month, tc.day), tc.ordinal; got != want {
			t.Errorf("toOrdinal(%v, %v): got %v, want %v", tc.month, tc.day, got, want)
		}
		m, d := fromOrdinal(tc.ordinal)
		if m != tc.month || d != tc.day {
			t.Errorf("fromOrdinal(%v): got %v, %v, want %v, %v", tc.ordinal, m, d, tc.month, tc.day)
		}
	}
	// Inverses across every day of a leap year.
	for ordinal := 1; ordinal <= 366; ordinal++ {
		m, d := fromOrdinal(ordinal)
		if got, want := toOrdinal(m, d), ordinal; got != want {
			t.Errorf("ordinal %v: got %v (%v, %v)", ordinal, got, m, d)
		}
	}
}

func TestPacking(t *testing.T) {
	for _, tc := range []struct {
		year    int
		ordinal int
	}{
		{1, 1},
		{0, 365},
		{-1, 366},
		{2016, 62},
		{MinYear, 1},
		{MaxYear, 366},
	} {
		d := pack(tc.year, tc.ordinal)
		if got, want := d.Year(), tc.year; got != want {
			t.Errorf("pack(%v, %v): got year %v, want %v", tc.year, tc.ordinal, got, want)
		}
		if got, want := d.Ordinal(), tc.ordinal; got != want {
			t.Errorf("pack(%v, %v): got ordinal %v, want %v", tc.year, tc.ordinal, got, want)
		}
	}
	if _, err := NewOrdinalDate(MaxYear+1, 1); err == nil {
		t.Errorf("expected error for year beyond the packed range")
	}
	if _, err := NewOrdinalDate(MinYear-1, 1); err == nil {
		t.Errorf("expected error for year beyond the packed range")
	}
}

func TestEuclideanDivision(t *testing.T) {
	for _, tc := range []struct {
		a, b, div, mod int
	}{
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
		{-8, 4, -2, 0},
		{-1, 1461, -1, 1460},
		{1460, 1461, 0, 1460},
		{0, 7, 0, 0},
	} {
		if got, want := divE(tc.a, tc.b), tc.div; got != want {
			t.Errorf("divE(%v, %v): got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := modE(tc.a, tc.b), tc.mod; got != want {
			t.Errorf("modE(%v, %v): got %v, want %v", tc.a, tc.b, got, want)
		}
	}
}

func TestBridgeAgreement(t *testing.T) {
	// The Ethiopian and Gregorian sides share the JDN epoch: a span of
	// consecutive JDNs crossing the Ethiopian epoch must invert exactly on
	// both sides, including years at or below zero.
	epochJDN := ethiopicToJDN(1, 1, 1)
	for jdn := epochJDN - 800; jdn < epochJDN+800; jdn++ {
		ey, em, ed := jdnToEthiopic(jdn)
		if got, want := ethiopicToJDN(ey, int(em), ed), jdn; got != want {
			t.Fatalf("%04d-%02d-%02d: got %v, want %v", ey, em, ed, got, want)
		}
		if err := validDate(ey, em, ed); err != nil {
			t.Fatalf("jdn %v: bridge produced invalid date: %v", jdn, err)
		}
		gy, gm, gd := jdnToGregorian(jdn)
		if got, want := gregorianToJDN(gy, gm, gd), jdn; got != want {
			t.Fatalf("%04d-%02d-%02d: got %v, want %v", gy, gm, gd, got, want)
		}
		if err := validGregorianDate(gy, gm, gd); err != nil {
			t.Fatalf("jdn %v: bridge produced invalid date: %v", jdn, err)
		}
	}
}

func TestGregorianBridgeAgainstTime(t *testing.T) {
	// The stdlib is the reference for the Gregorian side within its
	// comfortable range.
	day, err := time.Parse("2006-01-02", "1900-02-27")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 366*250; i += 97 {
		when := day.AddDate(0, 0, i)
		jdn := gregorianToJDN(when.Date())
		gy, gm, gd := jdnToGregorian(jdn)
		wy, wm, wd := when.Date()
		if gy != wy || gm != wm || gd != wd {
			t.Errorf("%v: got %04d-%02d-%02d", when.Format("2006-01-02"), gy, gm, gd)
		}
		if got, want := modE(jdn+1, 7), int(when.Weekday()); got != want {
			t.Errorf("%v: got weekday %v, want %v", when.Format("2006-01-02"), got, want)
		}
	}
}
