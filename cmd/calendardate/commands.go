// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/calendardate"
	"cloudeng.io/errors"
	"cloudeng.io/logging"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type todayFlags struct {
	CommonFlags
	Offset string `subcmd:"offset,,'ISO 8601 period to add to the current date, eg. P1W or -P3D'"`
}

type parseFlags struct {
	CommonFlags
}

type addFlags struct {
	CommonFlags
	Offset string `subcmd:"offset,P1D,'ISO 8601 period to add, eg. P1Y2M, P10D or -P1W'"`
}

type diffFlags struct {
	CommonFlags
}

type relativeFlags struct {
	CommonFlags
}

type encodeFlags struct {
	CommonFlags
	Format string `subcmd:"format,json,'output format: json or yaml'"`
}

type rangeFlags struct {
	CommonFlags
}

// parseDates parses all of the supplied arguments and returns an error
// that includes every invalid argument.
func parseDates(ctx context.Context, args []string) ([]calendardate.CalendarDate, error) {
	var errs errors.M
	dates := make([]calendardate.CalendarDate, 0, len(args))
	for _, arg := range args {
		d, err := calendardate.Parse(arg)
		if err != nil {
			ctxlog.Logger(ctx).Info("invalid date", "arg", arg, "error", err)
			errs.Append(err)
			continue
		}
		dates = append(dates, d)
	}
	return dates, errs.Err()
}

func (a *app) today(ctx context.Context, values any, _ []string) error {
	fv := values.(*todayFlags)
	ctx, err := a.setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	d := calendardate.CalendarFromContext(ctx).Today()
	if len(fv.Offset) > 0 {
		o, err := calendardate.ParseOffset(fv.Offset)
		if err != nil {
			return err
		}
		d = d.AddOffset(o)
	}
	fmt.Fprintln(a.out, d)
	return nil
}

func (a *app) parse(ctx context.Context, values any, args []string) error {
	fv := values.(*parseFlags)
	ctx, err := a.setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	dates, err := parseDates(ctx, args)
	for _, d := range dates {
		fmt.Fprintf(a.out, "%v %v\n", d, d.Weekday())
	}
	return err
}

func (a *app) add(ctx context.Context, values any, args []string) error {
	fv := values.(*addFlags)
	ctx, err := a.setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	o, err := calendardate.ParseOffset(fv.Offset)
	if err != nil {
		return err
	}
	dates, err := parseDates(ctx, args)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("add", "date", dates[0].String(), "offset", o.String())
	fmt.Fprintln(a.out, dates[0].AddOffset(o))
	return nil
}

func (a *app) diff(ctx context.Context, values any, args []string) error {
	fv := values.(*diffFlags)
	ctx, err := a.setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	dates, err := parseDates(ctx, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, dates[0].DaysTowards(dates[1]))
	return nil
}

func relativeTo(cal calendardate.Calendar, d calendardate.CalendarDate) string {
	switch {
	case cal.IsToday(d):
		return "today"
	case cal.IsYesterday(d):
		return "yesterday"
	case cal.IsTomorrow(d):
		return "tomorrow"
	}
	n := cal.Today().DaysTowards(d)
	if n < 0 {
		return fmt.Sprintf("%d days ago", -n)
	}
	return fmt.Sprintf("in %d days", n)
}

func (a *app) relative(ctx context.Context, values any, args []string) error {
	fv := values.(*relativeFlags)
	ctx, err := a.setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	cal := calendardate.CalendarFromContext(ctx)
	dates, err := parseDates(ctx, args)
	for _, d := range dates {
		fmt.Fprintf(a.out, "%v %v\n", d, relativeTo(cal, d))
	}
	return err
}

func (a *app) encode(ctx context.Context, values any, args []string) error {
	fv := values.(*encodeFlags)
	ctx, err := a.setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	dates, err := parseDates(ctx, args)
	if err != nil {
		return err
	}
	switch fv.Format {
	case "json":
		return logging.NewJSONFormatter(a.out, "", "  ").Format(dates)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		if err := enc.Encode(dates); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format: %q, use json or yaml", fv.Format)
}

func (a *app) dateRange(ctx context.Context, values any, args []string) error {
	fv := values.(*rangeFlags)
	ctx, err := a.setup(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	dates, err := parseDates(ctx, args)
	if err != nil {
		return err
	}
	for d := range calendardate.Between(dates[0], dates[1]) {
		fmt.Fprintln(a.out, d)
	}
	return nil
}
