// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate_test

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"cloudeng.io/calendardate"
)

func TestStringConversion(t *testing.T) {
	date := newDate(2018, 5, 3)
	str := "2018-05-03"
	if got, want := date.String(), str; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := date.Format(), str; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	parsed, err := calendardate.Parse(str)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := parsed, date; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, year := range []int{0, 1, 999, 1900, 1970, 2000, 2024, 2100, 9999} {
		for d := newDate(year, 1, 1); d.Year() == year; d = d.AddDays(1) {
			p, err := calendardate.Parse(d.String())
			if err != nil {
				t.Fatalf("%v: %v", d, err)
			}
			if p != d {
				t.Fatalf("got %v, want %v", p, d)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []string{
		"",
		"not-a-date",
		"2018-5-3",
		"2018-05-3",
		"18-05-03",
		"2018/05/03",
		"2018-05-03T00:00:00",
		" 2018-05-03",
		"2018-13-01",
		"2018-00-01",
		"2018-02-29",
		"2018-04-31",
		"2018-05-00",
		"2018-05-32",
		"+018-05-03",
		"-018-05-03",
		"2018-0a-03",
		"２０１８-05-03",
	} {
		d, err := calendardate.Parse(tc)
		if err == nil {
			t.Errorf("%q: failed to return an error", tc)
			continue
		}
		if !errors.Is(err, calendardate.ErrInvalidCalendarDate) {
			t.Errorf("%q: unexpected error type: %v", tc, err)
		}
		var ide *calendardate.InvalidDateError
		if !errors.As(err, &ide) || ide.Text != tc {
			t.Errorf("%q: error does not carry the offending text: %v", tc, err)
		}
		if !d.IsZero() {
			t.Errorf("%q: got %v, want zero value", tc, d)
		}
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	calendardate.MustParse("2018-02-30")
}

func TestMarshalText(t *testing.T) {
	buf, err := newDate(812, 7, 4).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "0812-07-04"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, d := range []calendardate.CalendarDate{
		{},
		newDate(10000, 1, 1),
		newDate(-1, 12, 31),
	} {
		if _, err := d.MarshalText(); !errors.Is(err, calendardate.ErrInvalidCalendarDate) {
			t.Errorf("%v: unexpected or missing error: %v", d, err)
		}
	}

	var d calendardate.CalendarDate
	if err := d.UnmarshalText([]byte("2020-02-29")); err != nil {
		t.Fatal(err)
	}
	if got, want := d, newDate(2020, time.February, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := d.UnmarshalText([]byte("2021-02-29")); err == nil {
		t.Errorf("failed to return an error")
	}
	if got, want := d, newDate(2020, time.February, 29); got != want {
		t.Errorf("value modified on error: got %v, want %v", got, want)
	}
}

func TestFlag(t *testing.T) {
	var from calendardate.CalendarDate
	var offset calendardate.Offset
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&from, "from", "start date")
	fs.Var(&offset, "offset", "offset")
	if err := fs.Parse([]string{"--from=2018-01-01", "--offset=P10D"}); err != nil {
		t.Fatal(err)
	}
	if got, want := from.AddOffset(offset), newDate(2018, 1, 11); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&from, "from", "start date")
	if err := fs.Parse([]string{"--from=2018-01-32"}); err == nil {
		t.Errorf("failed to return an error")
	}
}
