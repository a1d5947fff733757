// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopic

import (
	"fmt"
	"strings"
)

// Format renders the date according to a pattern containing the
// specifiers below. Text other than a specifier is copied through
// unchanged.
//
//	%%     a literal %
//	%Y     year (zero padded to four digits)
//	%y     last two digits of the year (00..99)
//	%m     month number (01..13)
//	%d     day of month (01..30)
//	%B     full month name (eg. መስከረም)
//	%b     abbreviated month name (eg. መስከ)
//	%A     full weekday name (eg. ማክሰኞ)
//	%a     abbreviated weekday name (eg. ማክሰ)
//	%j     day of year (001..366)
//	%q     quarter of the year (1..4, or 5 for Puagme)
//
// A % followed by an unrecognized specifier, or a trailing %, is consumed
// and produces no output.
func (d Date) Format(pattern string) string {
	var out strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			out.WriteByte(c)
			continue
		}
		i++
		if i == len(pattern) {
			break
		}
		switch pattern[i] {
		case '%':
			out.WriteByte('%')
		case 'Y':
			fmt.Fprintf(&out, "%04d", d.Year())
		case 'y':
			fmt.Fprintf(&out, "%02d", modE(d.Year(), 100))
		case 'm':
			fmt.Fprintf(&out, "%02d", int(d.Month()))
		case 'd':
			fmt.Fprintf(&out, "%02d", d.Day())
		case 'B':
			out.WriteString(d.Month().String())
		case 'b':
			out.WriteString(d.Month().Short())
		case 'A':
			out.WriteString(d.Weekday().String())
		case 'a':
			out.WriteString(d.Weekday().Short())
		case 'j':
			fmt.Fprintf(&out, "%03d", d.Ordinal())
		case 'q':
			// Quarters of 90 days; the epagomenal days land in a fifth.
			fmt.Fprintf(&out, "%d", (d.Ordinal()-1)/90+1)
		}
	}
	return out.String()
}
