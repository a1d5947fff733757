// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holidays provides the public holidays of the Ethiopian calendar,
// both those fixed to a calendar date and the movable feasts derived from
// the Orthodox (Julian) computus.
package holidays

import (
	"fmt"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/ethiopic"
)

// Holiday is a single observed day in an Ethiopian year.
type Holiday struct {
	Name string
	Date ethiopic.Date
}

// Less orders holidays chronologically, then by name for days that share
// a date.
func (h Holiday) Less(o Holiday) bool {
	if h.Date == o.Date {
		return h.Name < o.Name
	}
	return h.Date.Before(o.Date)
}

func (h Holiday) String() string {
	return fmt.Sprintf("%v: %v", h.Date, h.Name)
}

type fixedDay struct {
	name  string
	month ethiopic.Month
	day   int
}

var fixedDays = []fixedDay{
	{"Enkutatash (New Year)", ethiopic.Meskerem, 1},
	{"Meskel (Finding of the True Cross)", ethiopic.Meskerem, 17},
	{"Gena (Christmas)", ethiopic.Tahasass, 29},
	{"Timket (Epiphany)", ethiopic.Tir, 11},
	{"Adwa Victory Day", ethiopic.Yekatit, 23},
	{"International Workers' Day", ethiopic.Miyazia, 23},
	{"Patriots' Victory Day", ethiopic.Miyazia, 27},
	{"Downfall of the Derg", ethiopic.Ginbot, 20},
}

// easterJDN returns the Julian Day Number of Orthodox Easter Sunday for
// the given Gregorian year, using the Julian computus. The computus yields
// a date in the Julian calendar, converted here to a JDN over the Julian
// 4 year / 1461 day cycle.
func easterJDN(year int) int {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	// Month (3 or 4) and day in the Julian calendar.
	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1

	// Julian calendar date to JDN; month is always March or April so the
	// March-based year shift never applies.
	doy := (153*(month-3)+2)/5 + day - 1
	return 365*year + year/4 + doy + 1_721_118
}

// ForYear returns the holidays observed in the given Ethiopian year in
// chronological order. Movable feasts are only defined for year 1 onwards.
func ForYear(year int) ([]Holiday, error) {
	if year < 1 {
		return nil, fmt.Errorf("no movable feasts for year %v, must be 1 or later", year)
	}
	h := make(heap.Heap[Holiday], 0, len(fixedDays)+2)
	for _, fd := range fixedDays {
		date, err := ethiopic.New(year, fd.month, fd.day)
		if err != nil {
			return nil, err
		}
		h.Push(Holiday{Name: fd.name, Date: date})
	}
	// An Ethiopian year runs from September to September, so its Easter
	// falls in the Gregorian year eight later.
	easter := easterJDN(year + 8)
	for _, mf := range []struct {
		name   string
		offset int
	}{
		{"Siklet (Good Friday)", -2},
		{"Fasika (Easter)", 0},
	} {
		date, err := ethiopic.FromJDN(easter + mf.offset)
		if err != nil {
			return nil, err
		}
		h.Push(Holiday{Name: mf.name, Date: date})
	}
	out := make([]Holiday, 0, h.Len())
	for h.Len() > 0 {
		out = append(out, h.Pop())
	}
	return out, nil
}
