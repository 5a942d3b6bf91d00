// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendardate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidOffset is returned, wrapped, for malformed periods.
var ErrInvalidOffset = errors.New("invalid ISO8601 date period")

const designators = "YMWD"

func consumeN(period string) (int, byte, int, error) {
	for i := range period {
		c := period[i]
		if (c >= '0' && c <= '9') || (i == 0 && c == '-') {
			continue
		}
		if strings.IndexByte(designators, c) < 0 {
			break
		}
		n, err := strconv.Atoi(period[:i])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid number: %q: %w", period[:i], ErrInvalidOffset)
		}
		return n, c, i + 1, nil
	}
	return 0, 0, 0, fmt.Errorf("invalid number or period designator: %s: %w", period, ErrInvalidOffset)
}

// ParseOffset parses an ISO8601 date period of the form [-]PnYnMnWnD.
// Each of the designators is optional but they must appear in the
// order Y, M, W and D. Only whole numbers are supported, but, as an
// extension, each number may be individually negated, eg. P1M-1D.
// Time components (those following a T) are not supported.
func ParseOffset(period string) (Offset, error) {
	nl := len(period)
	hasP, hasNP := (nl > 0 && period[0] == 'P'), (nl > 1 && period[0] == '-' && period[1] == 'P')
	if !hasP && !hasNP {
		return Offset{}, fmt.Errorf("period must start with P or -P: %s: %w", period, ErrInvalidOffset)
	}
	rest := period[1:]
	if hasNP {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return Offset{}, fmt.Errorf("period has no components: %s: %w", period, ErrInvalidOffset)
	}
	var o Offset
	last := -1
	for len(rest) > 0 {
		if rest[0] == 'T' {
			return Offset{}, fmt.Errorf("time components are not supported: %s: %w", period, ErrInvalidOffset)
		}
		n, designator, idx, err := consumeN(rest)
		if err != nil {
			return Offset{}, err
		}
		pos := strings.IndexByte(designators, designator)
		if pos <= last {
			return Offset{}, fmt.Errorf("duplicate or out of order designator: %c: %s: %w", designator, period, ErrInvalidOffset)
		}
		last = pos
		switch designator {
		case 'Y':
			o.Years = n
		case 'M':
			o.Months = n
		case 'W':
			o.Weeks = n
		case 'D':
			o.Days = n
		}
		rest = rest[idx:]
	}
	if hasNP {
		o = o.Neg()
	}
	return o, nil
}

// String returns the offset as an ISO8601 date period as accepted by
// ParseOffset. Offsets whose non-zero fields are all negative are
// written as -PnYnMnWnD.
func (o Offset) String() string {
	if o.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	fields := [...]int{o.Years, o.Months, o.Weeks, o.Days}
	neg := true
	for _, f := range fields {
		if f > 0 {
			neg = false
		}
	}
	if neg {
		out.WriteByte('-')
	}
	out.WriteByte('P')
	for i, f := range fields {
		if f == 0 {
			continue
		}
		if neg {
			f = -f
		}
		out.WriteString(strconv.Itoa(f))
		out.WriteByte(designators[i])
	}
	return out.String()
}

// Set implements flag.Value.
func (o *Offset) Set(v string) error {
	p, err := ParseOffset(v)
	if err != nil {
		return err
	}
	*o = p
	return nil
}
