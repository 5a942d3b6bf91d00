// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCalendarDate is matched, using errors.Is, by all errors
// returned for malformed or out of range dates.
var ErrInvalidCalendarDate = errors.New("invalid calendar date")

// InvalidDateError is returned when text cannot be parsed, or decoded, as
// a CalendarDate. Text is the offending input.
type InvalidDateError struct {
	Text   string
	Reason string
}

func (e *InvalidDateError) Error() string {
	if len(e.Reason) == 0 {
		return fmt.Sprintf("not a valid calendar date: %q", e.Text)
	}
	return fmt.Sprintf("not a valid calendar date: %q: %s", e.Text, e.Reason)
}

// Is supports errors.Is for ErrInvalidCalendarDate.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidCalendarDate
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n := 0
	for i := range len(s) {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// Parse parses a date in YYYY-MM-DD format (time.DateOnly). The text must
// be exactly 10 characters long and denote a valid date, otherwise an
// *InvalidDateError is returned.
func Parse(text string) (CalendarDate, error) {
	if len(text) != len(time.DateOnly) || text[4] != '-' || text[7] != '-' {
		return CalendarDate{}, &InvalidDateError{Text: text, Reason: "expected YYYY-MM-DD"}
	}
	ys, ms, ds := text[0:4], text[5:7], text[8:10]
	if !isDigits(ys) || !isDigits(ms) || !isDigits(ds) {
		return CalendarDate{}, &InvalidDateError{Text: text, Reason: "expected YYYY-MM-DD"}
	}
	year, month, day := atoi(ys), time.Month(atoi(ms)), atoi(ds)
	if reason := validate(year, month, day); len(reason) > 0 {
		return CalendarDate{}, &InvalidDateError{Text: text, Reason: reason}
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) CalendarDate {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// MarshalText implements encoding.TextMarshaler. It returns an error for
// the zero value and for years outside of the range 0-9999 since these
// cannot be represented in YYYY-MM-DD format.
func (d CalendarDate) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, &InvalidDateError{Text: d.String(), Reason: "zero value"}
	}
	if d.year < 0 || d.year > 9999 {
		return nil, &InvalidDateError{Text: d.String(), Reason: "year outside of range [0,9999]"}
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *CalendarDate) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Set implements flag.Value.
func (d *CalendarDate) Set(v string) error {
	return d.UnmarshalText([]byte(v))
}
