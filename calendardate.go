// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate

import (
	"cmp"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// CalendarDate represents a date as a year, month and day with no time of
// day or time zone. Values are immutable and comparable, and hence may be
// compared with == and used as map keys.
//
// The zero value is not a valid date and is reported as such by IsZero;
// none of the constructors return it.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// New returns the CalendarDate for the supplied year, month and day.
// Out of range values are normalized in the same way as time.Date, that is,
// a month of 13 is January of the following year and a day of 0 is the last
// day of the previous month. Use Make to reject out of range values instead.
func New(year int, month time.Month, day int) CalendarDate {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Make returns the CalendarDate for the supplied year, month and day, or an
// *InvalidDateError if the month is not in the range 1-12 or the day is not
// valid for that month and year.
func Make(year int, month time.Month, day int) (CalendarDate, error) {
	if reason := validate(year, month, day); len(reason) > 0 {
		return CalendarDate{}, &InvalidDateError{
			Text:   fmt.Sprintf("%04d-%02d-%02d", year, int(month), day),
			Reason: reason,
		}
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

func validate(year int, month time.Month, day int) string {
	if month < time.January || month > time.December {
		return fmt.Sprintf("month %d out of range", int(month))
	}
	if n := int(datetime.DaysInMonth(year, datetime.Month(month))); day < 1 || day > n {
		return fmt.Sprintf("day %d out of range for %v %d", day, month, year)
	}
	return ""
}

func fromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// Year returns the year.
func (d CalendarDate) Year() int {
	return d.year
}

// Month returns the month.
func (d CalendarDate) Month() time.Month {
	return d.month
}

// Day returns the day of the month.
func (d CalendarDate) Day() int {
	return d.day
}

// Date returns the year, month and day, in the style of time.Time.Date.
func (d CalendarDate) Date() (year int, month time.Month, day int) {
	return d.year, d.month, d.day
}

// IsZero returns true for the zero value.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// In returns the first instant of d in the specified location. This is
// midnight unless a time zone transition skips midnight on that day, in
// which case it is the time of the transition.
func (d CalendarDate) In(loc *time.Location) time.Time {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
	if fromTime(t) != d && !d.IsZero() {
		if _, end := t.ZoneBounds(); !end.IsZero() && fromTime(end) == d {
			return end
		}
	}
	return t
}

// Weekday returns the day of the week.
func (d CalendarDate) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// YearDay returns the day of the year in the range 1-365 for non-leap years
// and 1-366 for leap years.
func (d CalendarDate) YearDay() int {
	return d.In(time.UTC).YearDay()
}

// IsLeapYear returns true if the date falls within a leap year.
func (d CalendarDate) IsLeapYear() bool {
	return datetime.IsLeap(d.year)
}

// DaysInMonth returns the number of days in the date's month.
func (d CalendarDate) DaysInMonth() int {
	return int(datetime.DaysInMonth(d.year, datetime.Month(d.month)))
}

// Compare returns -1 if d is before o, +1 if d is after o and 0 if
// they are the same date.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.year != o.year:
		return cmp.Compare(d.year, o.year)
	case d.month != o.month:
		return cmp.Compare(d.month, o.month)
	default:
		return cmp.Compare(d.day, o.day)
	}
}

// Before returns true if d is before o.
func (d CalendarDate) Before(o CalendarDate) bool {
	return d.Compare(o) < 0
}

// After returns true if d is after o.
func (d CalendarDate) After(o CalendarDate) bool {
	return d.Compare(o) > 0
}

// String returns the date in YYYY-MM-DD format.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Format is the same as String.
func (d CalendarDate) Format() string {
	return d.String()
}
