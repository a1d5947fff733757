// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DateRange represents a range of Ethiopian dates, inclusive of the start
// and end dates. Use NewDateRange or Parse to create or initialize a
// DateRange.
type DateRange struct {
	from, to Date
}

// NewDateRange returns a DateRange for the from/to dates. If the from date
// is later than the to date then they are swapped.
func NewDateRange(from, to Date) DateRange {
	if from.After(to) {
		from, to = to, from
	}
	return DateRange{from: from, to: to}
}

// From returns the start date of the range.
func (dr DateRange) From() Date {
	return dr.from
}

// To returns the end date of the range.
func (dr DateRange) To() Date {
	return dr.to
}

// Days returns the number of days in the range, inclusive of both ends.
func (dr DateRange) Days() int {
	return dr.to.JDN() - dr.from.JDN() + 1
}

// Contains returns true if the specified date is within the range.
func (dr DateRange) Contains(d Date) bool {
	return !d.Before(dr.from) && !d.After(dr.to)
}

// Overlaps returns true if the two ranges share at least one day.
func (dr DateRange) Overlaps(o DateRange) bool {
	return !dr.to.Before(o.from) && !o.to.Before(dr.from)
}

// Dates returns an iterator over every date in the range in chronological
// order.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := dr.from; !d.After(dr.to); d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s:%s", dr.from, dr.to)
}

// Parse a range in the format <from>:<to> where both dates are in the
// format accepted by Date.Parse. The from date must not be later than the
// to date.
func (dr *DateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid range %q, expected <from>:<to>", val)
	}
	var from, to Date
	if err := from.Parse(parts[0]); err != nil {
		return err
	}
	if err := to.Parse(parts[1]); err != nil {
		return err
	}
	if from.After(to) {
		return fmt.Errorf("invalid range %q, from is later than to", val)
	}
	dr.from, dr.to = from, to
	return nil
}

type DateRangeList []DateRange

// Parse a comma separated list of ranges.
func (drl *DateRangeList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	ranges := make(DateRangeList, 0, len(parts))
	for _, part := range parts {
		var dr DateRange
		if err := dr.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		ranges = append(ranges, dr)
	}
	*drl = ranges
	return nil
}

func (drl DateRangeList) String() string {
	var out strings.Builder
	for i, dr := range drl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(dr.String())
	}
	return out.String()
}

// Merge returns a sorted list with overlapping and abutting ranges
// coalesced.
func (drl DateRangeList) Merge() DateRangeList {
	if len(drl) == 0 {
		return drl
	}
	sorted := slices.Clone(drl)
	slices.SortFunc(sorted, func(a, b DateRange) int {
		if a.from != b.from {
			if a.from.Before(b.from) {
				return -1
			}
			return 1
		}
		if a.to == b.to {
			return 0
		}
		if a.to.Before(b.to) {
			return -1
		}
		return 1
	})
	merged := make(DateRangeList, 0, len(sorted))
	current := sorted[0]
	for _, dr := range sorted[1:] {
		if dr.from.JDN() > current.to.JDN()+1 {
			merged = append(merged, current)
			current = dr
			continue
		}
		if dr.to.After(current.to) {
			current.to = dr.to
		}
	}
	return append(merged, current)
}
