// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"cloudeng.io/calendardate"
)

func newDate(y int, m time.Month, d int) calendardate.CalendarDate {
	return calendardate.New(y, m, d)
}

func TestEquality(t *testing.T) {
	nd := newDate
	date := nd(2018, 5, 3)
	if got, want := date, nd(2018, 5, 3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, other := range []calendardate.CalendarDate{
		nd(2019, 5, 3),
		nd(2018, 6, 3),
		nd(2018, 5, 4),
	} {
		if date == other {
			t.Errorf("%v should not equal %v", date, other)
		}
	}

	seen := map[calendardate.CalendarDate]int{}
	seen[nd(2018, 5, 3)]++
	seen[calendardate.MustParse("2018-05-03")]++
	seen[nd(2018, 4, 33)]++
	if got, want := len(seen), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := seen[date], 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNewNormalizes(t *testing.T) {
	nd := newDate
	for i, tc := range []struct {
		y    int
		m    time.Month
		d    int
		want string
	}{
		{2018, 5, 3, "2018-05-03"},
		{2018, 13, 1, "2019-01-01"},
		{2018, 0, 1, "2017-12-01"},
		{2018, 3, 0, "2018-02-28"},
		{2024, 3, 0, "2024-02-29"},
		{2023, 2, 29, "2023-03-01"},
		{2018, 12, 32, "2019-01-01"},
		{2018, 1, -1, "2017-12-30"},
	} {
		d := nd(tc.y, tc.m, tc.d)
		if got, want := d.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestMake(t *testing.T) {
	d, err := calendardate.Make(2024, time.February, 29)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, newDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		y int
		m time.Month
		d int
	}{
		{2023, 2, 29},
		{2018, 13, 1},
		{2018, 0, 1},
		{2018, 4, 31},
		{2018, 1, 0},
		{2018, 1, 32},
	} {
		d, err := calendardate.Make(tc.y, tc.m, tc.d)
		if err == nil {
			t.Errorf("%v-%v-%v: failed to return an error", tc.y, tc.m, tc.d)
			continue
		}
		if !errors.Is(err, calendardate.ErrInvalidCalendarDate) {
			t.Errorf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("got %v, want zero value", d)
		}
	}
}

func TestAccessors(t *testing.T) {
	d := newDate(2024, 2, 29)
	y, m, dd := d.Date()
	if y != 2024 || m != time.February || dd != 29 {
		t.Errorf("got %v %v %v", y, m, dd)
	}
	if got, want := d.Year(), 2024; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Month(), time.February; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Day(), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Weekday(), time.Thursday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.YearDay(), 60; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.DaysInMonth(), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !d.IsLeapYear() {
		t.Errorf("%v is in a leap year", d)
	}
	if newDate(2100, 1, 1).IsLeapYear() {
		t.Errorf("2100 is not a leap year")
	}
	if d.IsZero() {
		t.Errorf("%v is not zero", d)
	}
	if !(calendardate.CalendarDate{}).IsZero() {
		t.Errorf("zero value is zero")
	}
}

func TestCompare(t *testing.T) {
	nd := newDate
	dates := []calendardate.CalendarDate{
		nd(2018, 5, 3), nd(2017, 12, 31), nd(2018, 5, 2), nd(2018, 1, 30), nd(2019, 1, 1),
	}
	slices.SortFunc(dates, calendardate.CalendarDate.Compare)
	want := []calendardate.CalendarDate{
		nd(2017, 12, 31), nd(2018, 1, 30), nd(2018, 5, 2), nd(2018, 5, 3), nd(2019, 1, 1),
	}
	if !slices.Equal(dates, want) {
		t.Errorf("got %v, want %v", dates, want)
	}
	a, b := nd(2018, 5, 3), nd(2018, 5, 4)
	if !a.Before(b) || a.After(b) || !b.After(a) || b.Before(a) {
		t.Errorf("incorrect ordering for %v and %v", a, b)
	}
	if a.Compare(a) != 0 || a.Before(a) || a.After(a) {
		t.Errorf("%v should compare equal to itself", a)
	}
}
