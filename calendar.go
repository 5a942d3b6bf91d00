// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate

import (
	"context"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock that returns time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock that always returns the same time.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Calendar determines the current date and converts between CalendarDate
// and time.Time values using a Clock and a time.Location. The zero value
// uses the system clock and time.Local.
type Calendar struct {
	clock Clock
	loc   *time.Location
}

// CalendarOption represents an option to NewCalendar.
type CalendarOption func(c *Calendar)

// WithClock sets the Clock used to determine the current date.
func WithClock(clock Clock) CalendarOption {
	return func(c *Calendar) {
		c.clock = clock
	}
}

// WithLocation sets the location used to determine the current date
// and to convert to and from time.Time values.
func WithLocation(loc *time.Location) CalendarOption {
	return func(c *Calendar) {
		c.loc = loc
	}
}

// NewCalendar returns a new Calendar configured by the supplied options.
func NewCalendar(opts ...CalendarOption) Calendar {
	var c Calendar
	for _, fn := range opts {
		fn(&c)
	}
	return c
}

// Default returns a Calendar that uses the system clock and time.Local.
func Default() Calendar {
	return Calendar{}
}

// Location returns the calendar's location.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// Now returns the current time in the calendar's location.
func (c Calendar) Now() time.Time {
	if c.clock == nil {
		return time.Now().In(c.Location())
	}
	return c.clock.Now().In(c.Location())
}

// FromTime returns the CalendarDate on which t falls in the calendar's
// location. Any two times on the same local day yield the same date.
func (c Calendar) FromTime(t time.Time) CalendarDate {
	return fromTime(t.In(c.Location()))
}

// Time returns the first instant of d, normally midnight, in the
// calendar's location.
// FromTime(Time(d)) == d for all valid dates.
func (c Calendar) Time(d CalendarDate) time.Time {
	return d.In(c.Location())
}

// Today returns the current date.
func (c Calendar) Today() CalendarDate {
	return fromTime(c.Now())
}

// Yesterday returns the day before the current date.
func (c Calendar) Yesterday() CalendarDate {
	return c.Today().AddDays(-1)
}

// Tomorrow returns the day after the current date.
func (c Calendar) Tomorrow() CalendarDate {
	return c.Today().AddDays(1)
}

// IsToday returns true if d is the current date. The current date is
// determined on every call.
func (c Calendar) IsToday(d CalendarDate) bool {
	return d == c.Today()
}

// IsYesterday returns true if d is the day before the current date.
func (c Calendar) IsYesterday(d CalendarDate) bool {
	return d == c.Yesterday()
}

// IsTomorrow returns true if d is the day after the current date.
func (c Calendar) IsTomorrow(d CalendarDate) bool {
	return d == c.Tomorrow()
}

type calendarKey struct{}

// ContextWithCalendar returns a new context with the given Calendar
// stored in it.
func ContextWithCalendar(ctx context.Context, c Calendar) context.Context {
	return context.WithValue(ctx, calendarKey{}, c)
}

// CalendarFromContext returns the Calendar stored in the given context,
// or the Default calendar if there is none.
func CalendarFromContext(ctx context.Context) Calendar {
	c, ok := ctx.Value(calendarKey{}).(Calendar)
	if !ok {
		return Default()
	}
	return c
}

// FromTime returns the CalendarDate on which t falls in the local time zone.
func FromTime(t time.Time) CalendarDate {
	return Default().FromTime(t)
}

// Time returns midnight of d in the local time zone.
func (d CalendarDate) Time() time.Time {
	return Default().Time(d)
}

// Today returns the current date in the local time zone.
func Today() CalendarDate {
	return Default().Today()
}

// Yesterday returns the day before the current date in the local time zone.
func Yesterday() CalendarDate {
	return Default().Yesterday()
}

// Tomorrow returns the day after the current date in the local time zone.
func Tomorrow() CalendarDate {
	return Default().Tomorrow()
}

// IsToday is like Calendar.IsToday using the Default calendar.
func (d CalendarDate) IsToday() bool {
	return Default().IsToday(d)
}

// IsYesterday is like Calendar.IsYesterday using the Default calendar.
func (d CalendarDate) IsYesterday() bool {
	return Default().IsYesterday(d)
}

// IsTomorrow is like Calendar.IsTomorrow using the Default calendar.
func (d CalendarDate) IsTomorrow() bool {
	return Default().IsTomorrow(d)
}
