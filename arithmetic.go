// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate

import (
	"iter"
	"time"
)

// Offset represents a signed calendar offset. Any of the fields may be
// zero or negative.
type Offset struct {
	Years  int
	Months int
	Weeks  int
	Days   int
}

// IsZero returns true if all of the fields are zero.
func (o Offset) IsZero() bool {
	return o == Offset{}
}

// Neg returns the offset with every field negated.
func (o Offset) Neg() Offset {
	return Offset{Years: -o.Years, Months: -o.Months, Weeks: -o.Weeks, Days: -o.Days}
}

// AddOffset returns the date obtained by adding o to d. All of the fields
// are applied in a single computation with the same normalization as
// time.Time.AddDate, so adding one month to January 31st yields
// March 3rd (or March 2nd in a leap year).
func (d CalendarDate) AddOffset(o Offset) CalendarDate {
	return New(d.year+o.Years, d.month+time.Month(o.Months), d.day+7*o.Weeks+o.Days)
}

// AddDate is like AddOffset with the weeks set to zero.
func (d CalendarDate) AddDate(years, months, days int) CalendarDate {
	return d.AddOffset(Offset{Years: years, Months: months, Days: days})
}

// AddDays returns the date n days after d, or before d if n is negative.
func (d CalendarDate) AddDays(n int) CalendarDate {
	return New(d.year, d.month, d.day+n)
}

const secondsPerDay = 24 * 60 * 60

// dayNumber returns the number of days since 1970-01-01.
func (d CalendarDate) dayNumber() int64 {
	return d.In(time.UTC).Unix() / secondsPerDay
}

// DaysTowards returns the number of days from d to to. The result is
// positive if to is later than d, negative if it is earlier and zero
// if they are the same date.
func (d CalendarDate) DaysTowards(to CalendarDate) int {
	return int(to.dayNumber() - d.dayNumber())
}

// Between returns an iterator over the dates from from to to inclusive.
// The dates are yielded in descending order if to is before from. The
// sequence is empty if either date is the zero value.
func Between(from, to CalendarDate) iter.Seq[CalendarDate] {
	if from.IsZero() || to.IsZero() {
		return func(func(CalendarDate) bool) {}
	}
	step := 1
	if to.Before(from) {
		step = -1
	}
	return func(yield func(CalendarDate) bool) {
		for d := from; ; d = d.AddDays(step) {
			if !yield(d) || d == to {
				return
			}
		}
	}
}
