// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloudeng.io/calendardate"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	Location string `subcmd:"location,,'IANA time zone name used to determine the current date, defaults to the local time zone'"`
	Config   string `subcmd:"config,,'optional YAML configuration file'"`
	LogLevel int    `subcmd:"log-level,-1,'logging level: 0=error, 1=warn, 2=info, 3=debug, defaults to the log_level in the configuration file or 0'"`
}

// config represents the YAML configuration file, flags take precedence
// over the values it contains.
type config struct {
	Location string                    `yaml:"location"`
	LogLevel int                       `yaml:"log_level"`
	Today    calendardate.CalendarDate `yaml:"today"`
}

type app struct {
	out    io.Writer
	logOut io.Writer
	clock  calendardate.Clock
}

func logLevel(level int) slog.Level {
	switch {
	case level <= 0:
		return slog.LevelError
	case level == 1:
		return slog.LevelWarn
	case level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// setup returns a context containing the logger and the Calendar
// configured by the flags and configuration file.
func (a *app) setup(ctx context.Context, cf CommonFlags) (context.Context, error) {
	var cfg config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.Config, &cfg); err != nil {
			return ctx, err
		}
	}
	level := cfg.LogLevel
	if cf.LogLevel >= 0 {
		level = cf.LogLevel
	}
	logger := slog.New(slog.NewJSONHandler(a.logOut, &slog.HandlerOptions{Level: logLevel(level)}))
	ctx = ctxlog.WithLogger(ctx, logger)

	var opts []calendardate.CalendarOption
	if a.clock != nil {
		opts = append(opts, calendardate.WithClock(a.clock))
	}
	name := cfg.Location
	if len(cf.Location) > 0 {
		name = cf.Location
	}
	if len(name) > 0 {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return ctx, fmt.Errorf("invalid location: %q: %w", name, err)
		}
		opts = append(opts, calendardate.WithLocation(loc))
	}
	cal := calendardate.NewCalendar(opts...)
	if !cfg.Today.IsZero() {
		opts = append(opts, calendardate.WithClock(calendardate.FixedClock(cal.Time(cfg.Today))))
		cal = calendardate.NewCalendar(opts...)
	}
	logger.Debug("calendar", "location", cal.Location().String(), "today", cal.Today().String(), "config", cf.Config)
	return calendardate.ContextWithCalendar(ctx, cal), nil
}
