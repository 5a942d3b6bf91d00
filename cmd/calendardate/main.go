// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calendardate provides command line access to the
// cloudeng.io/calendardate package for parsing, validating, converting
// and performing arithmetic on dates in YYYY-MM-DD format.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	cmdSet = newCommandSet(&app{out: os.Stdout, logOut: os.Stderr})
}

func newCommandSet(a *app) *subcmd.CommandSet {
	todayCmd := subcmd.NewCommand("today",
		subcmd.MustRegisterFlagStruct(&todayFlags{}, nil, nil),
		a.today, subcmd.ExactlyNumArguments(0))
	todayCmd.Document(`print the current date, optionally adjusted by an ISO 8601 period such as P1W or -P3D.`)

	parseCmd := subcmd.NewCommand("parse",
		subcmd.MustRegisterFlagStruct(&parseFlags{}, nil, nil),
		a.parse, subcmd.AtLeastNArguments(1))
	parseCmd.Document(`validate the supplied dates and print them along with their day of the week.`, "<date>...")

	addCmd := subcmd.NewCommand("add",
		subcmd.MustRegisterFlagStruct(&addFlags{}, nil, nil),
		a.add, subcmd.ExactlyNumArguments(1))
	addCmd.Document(`add an ISO 8601 period of years, months, weeks and days to a date.`, "<date>")

	diffCmd := subcmd.NewCommand("diff",
		subcmd.MustRegisterFlagStruct(&diffFlags{}, nil, nil),
		a.diff, subcmd.ExactlyNumArguments(2))
	diffCmd.Document(`print the number of days from the first date to the second.`, "<from>", "<to>")

	relativeCmd := subcmd.NewCommand("relative",
		subcmd.MustRegisterFlagStruct(&relativeFlags{}, nil, nil),
		a.relative, subcmd.AtLeastNArguments(1))
	relativeCmd.Document(`print whether each date is today, yesterday, tomorrow or how many days away it is.`, "<date>...")

	encodeCmd := subcmd.NewCommand("encode",
		subcmd.MustRegisterFlagStruct(&encodeFlags{}, nil, nil),
		a.encode, subcmd.AtLeastNArguments(1))
	encodeCmd.Document(`print the JSON or YAML encoding of the supplied dates.`, "<date>...")

	rangeCmd := subcmd.NewCommand("range",
		subcmd.MustRegisterFlagStruct(&rangeFlags{}, nil, nil),
		a.dateRange, subcmd.ExactlyNumArguments(2))
	rangeCmd.Document(`print every date from the first to the second, inclusive.`, "<from>", "<to>")

	cmds := subcmd.NewCommandSet(todayCmd, parseCmd, addCmd, diffCmd, relativeCmd, encodeCmd, rangeCmd)
	cmds.Document(`parse, validate, encode and perform arithmetic on calendar dates.

Dates are always in YYYY-MM-DD format. The current date is determined using
the local time zone unless the --location flag, or the location key in the
YAML configuration file specified via --config, is set. The configuration
file may also pin the current date using the today key, eg:

  location: America/New_York
  log_level: 2
  today: 2024-02-29
`)
	return cmds
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
