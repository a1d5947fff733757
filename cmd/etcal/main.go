// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command etcal works with dates in the Ethiopian calendar: conversion to
// and from the Gregorian calendar, pattern based formatting and public
// holidays.
package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/ethiopic"
	"cloudeng.io/ethiopic/holidays"
)

const cliSpec = `name: etcal
summary: utility for working with dates in the Ethiopian calendar
commands:
  - name: today
    summary: print today's date in the Ethiopian calendar
  - name: to-gregorian
    summary: convert Ethiopian dates, as yyyy-mm-dd, to Gregorian
    arguments:
      - <date>...
  - name: from-gregorian
    summary: convert Gregorian dates, as yyyy-mm-dd, to Ethiopian
    arguments:
      - <date>...
  - name: format
    summary: render an Ethiopian date using a format pattern
    arguments:
      - <date>...
  - name: holidays
    summary: print the holidays of an Ethiopian year
    arguments:
      - <year>
`

type formatFlags struct {
	Pattern string `subcmd:"pattern,%A %B %d %Y,pattern used to render the date"`
}

type holidayFlags struct {
	Gregorian bool `subcmd:"gregorian,false,print the Gregorian dates of the holidays"`
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(cliSpec)
	cmdSet.Set("today").MustRunnerAndFlags(today,
		subcmd.MustRegisterFlagStruct(&formatFlags{}, nil, nil))
	cmdSet.Set("to-gregorian").MustRunnerAndFlags(toGregorian, subcmd.NewFlagSet())
	cmdSet.Set("from-gregorian").MustRunnerAndFlags(fromGregorian,
		subcmd.MustRegisterFlagStruct(&formatFlags{}, nil, nil))
	cmdSet.Set("format").MustRunnerAndFlags(formatDates,
		subcmd.MustRegisterFlagStruct(&formatFlags{}, nil, nil))
	cmdSet.Set("holidays").MustRunnerAndFlags(holidayList,
		subcmd.MustRegisterFlagStruct(&holidayFlags{}, nil, nil))
}

func main() {
	ctx := context.Background()
	subcmd.Dispatch(ctx, cmdSet)
}

func today(_ context.Context, values any, _ []string) error {
	fv := values.(*formatFlags)
	fmt.Println(ethiopic.Today().Format(fv.Pattern))
	return nil
}

func toGregorian(_ context.Context, _ any, args []string) error {
	errs := errors.M{}
	for _, arg := range args {
		var d ethiopic.Date
		if err := d.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		y, m, day := d.Gregorian()
		fmt.Printf("%v = %04d-%02d-%02d\n", d, y, int(m), day)
	}
	return errs.Err()
}

func fromGregorian(_ context.Context, values any, args []string) error {
	fv := values.(*formatFlags)
	errs := errors.M{}
	for _, arg := range args {
		t, err := time.Parse("2006-01-02", arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		d, err := ethiopic.FromGregorian(t.Date())
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Printf("%v = %v\n", arg, d.Format(fv.Pattern))
	}
	return errs.Err()
}

func formatDates(_ context.Context, values any, args []string) error {
	fv := values.(*formatFlags)
	errs := errors.M{}
	for _, arg := range args {
		var d ethiopic.Date
		if err := d.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		fmt.Println(d.Format(fv.Pattern))
	}
	return errs.Err()
}

func holidayList(_ context.Context, values any, args []string) error {
	fv := values.(*holidayFlags)
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	days, err := holidays.ForYear(year)
	if err != nil {
		return err
	}
	for _, h := range days {
		if fv.Gregorian {
			y, m, d := h.Date.Gregorian()
			fmt.Printf("%04d-%02d-%02d: %v\n", y, int(m), d, h.Name)
			continue
		}
		fmt.Printf("%v\n", h)
	}
	return nil
}
