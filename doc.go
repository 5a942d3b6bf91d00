// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendardate provides a date type, CalendarDate, that is
// represented purely as a year, month and day with no time of day or time
// zone. It is intended for business dates, ledger entries, schedules and
// the like where time zone semantics must not leak in.
//
// CalendarDate values are encoded as YYYY-MM-DD (time.DateOnly) for text,
// JSON and YAML, in the latter two cases as a single string value:
//
//	d := calendardate.New(2018, time.May, 3)
//	buf, _ := json.Marshal(d) // "2018-05-03"
//
// Date arithmetic is supported via Offset, which specifies a signed number
// of years, months, weeks and days, and DaysTowards, which returns the
// number of whole days between two dates:
//
//	d.AddOffset(calendardate.Offset{Months: 1, Days: -1})
//	d.DaysTowards(calendardate.New(2018, time.December, 25))
//
// The current date, and conversions to and from time.Time, depend on a
// Clock and a time.Location which are encapsulated by a Calendar. The
// package level functions, Today, Yesterday, Tomorrow, FromTime etc, use
// the Default calendar, that is, the system clock and time.Local. Tests
// may supply a FixedClock:
//
//	cal := calendardate.NewCalendar(
//		calendardate.WithClock(calendardate.FixedClock(when)),
//		calendardate.WithLocation(loc))
//	cal.IsToday(d)
package calendardate
