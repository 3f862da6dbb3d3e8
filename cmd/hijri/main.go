// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command hijri converts, parses and formats dates in the Hijri calendar.
package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

const spec = `name: hijri
summary: convert, parse and format dates in the Hijri calendar
commands:
  - name: today
    summary: display the current date in the Hijri calendar
  - name: convert
    summary: convert Gregorian dates, in YYYY-MM-DD format, to the Hijri calendar
    arguments:
      - <gregorian-date>
      - ...
  - name: gregorian
    summary: convert Hijri dates to the Gregorian calendar
    arguments:
      - <hijri-date>
      - ...
  - name: parse
    summary: parse Hijri dates, optionally using a pattern such as dd/MM/yyyy
    arguments:
      - <text>
      - ...
  - name: format
    summary: format Hijri dates using a Go time layout or the long form
    arguments:
      - <hijri-date>
      - ...
  - name: range
    summary: list the days in a range of Hijri dates
    arguments:
      - <from>
      - <to>
  - name: add
    summary: add a span such as '1y 2m 3d' to a Hijri date
    arguments:
      - <hijri-date>
      - <span>
  - name: occasions
    summary: list the occasions in a Hijri year, or the next occurrences
    arguments:
      - '[year]'
`

var cmdSet = subcmd.MustFromYAML(spec)

func init() {
	cmdSet.Set("today").MustRunnerAndFlags(today,
		subcmd.MustRegisteredFlagSet(&todayFlags{}))
	cmdSet.Set("convert").MustRunnerAndFlags(convert,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("gregorian").MustRunnerAndFlags(toGregorian,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("parse").MustRunnerAndFlags(parse,
		subcmd.MustRegisteredFlagSet(&parseFlags{}))
	cmdSet.Set("format").MustRunnerAndFlags(format,
		subcmd.MustRegisteredFlagSet(&formatFlags{}))
	cmdSet.Set("range").MustRunnerAndFlags(listRange,
		subcmd.MustRegisteredFlagSet(&rangeFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(add,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
	cmdSet.Set("occasions").MustRunnerAndFlags(listOccasions,
		subcmd.MustRegisteredFlagSet(&occasionsFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}
