// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/hijri"
	"cloudeng.io/hijri/occasions"
	"cloudeng.io/logging/ctxlog"
)

type todayFlags struct {
	CommonFlags
	Time bool `subcmd:"time,false,'include the current time of day'"`
}

type parseFlags struct {
	CommonFlags
	Pattern string `subcmd:"pattern,,'exact pattern such as dd/MM/yyyy, flexible parsing is used if not specified'"`
}

type formatFlags struct {
	CommonFlags
	Layout string `subcmd:"layout,,'Go time layout applied to the equivalent Gregorian time, the long form is used if not specified'"`
}

type rangeFlags struct {
	CommonFlags
	Weekdays bool   `subcmd:"weekdays,false,'include only weekdays'"`
	Weekends bool   `subcmd:"weekends,false,'include only weekends'"`
	Exclude  string `subcmd:"exclude,,'comma separated list of dates to exclude'"`
	Ranges   bool   `subcmd:"ranges,false,'display contiguous runs of days as ranges'"`
}

type occasionsFlags struct {
	CommonFlags
	Next int `subcmd:"next,0,'display the next n occurrences rather than those in a year'"`
}

func today(ctx context.Context, values any, _ []string) error {
	fv := values.(*todayFlags)
	return fv.run(ctx, func(_ context.Context, env *environment) error {
		d := env.cal.Today()
		if fv.Time {
			d = env.cal.Now()
		}
		r := env.result("", d)
		if fv.Time {
			r.Input = d.DateTimeString()
		}
		return env.out.print(r)
	})
}

// parseDates parses each of args using parser, all errors are
// returned.
func parseDates(args []string, parser func(string) (hijri.Date, error)) ([]hijri.Date, error) {
	errs := &errors.M{}
	dates := make([]hijri.Date, 0, len(args))
	for _, arg := range args {
		d, err := parser(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, d)
	}
	return dates, errs.Err()
}

func convert(ctx context.Context, values any, args []string) error {
	fv := values.(*CommonFlags)
	return fv.run(ctx, func(ctx context.Context, env *environment) error {
		var out results[dateResult]
		dates, err := parseDates(args, func(arg string) (hijri.Date, error) {
			t, err := time.ParseInLocation(time.DateOnly, arg, env.cal.Location())
			if err != nil {
				return hijri.Date{}, err
			}
			return env.cal.FromTime(t)
		})
		if err != nil {
			return err
		}
		for i, d := range dates {
			ctxlog.Logger(ctx).Debug("convert", "gregorian", args[i], "hijri", d.String())
			out = append(out, env.result(args[i], d))
		}
		return env.out.print(out)
	})
}

func toGregorian(ctx context.Context, values any, args []string) error {
	fv := values.(*CommonFlags)
	return fv.run(ctx, func(_ context.Context, env *environment) error {
		dates, err := parseDates(args, hijri.ParseFlexible)
		if err != nil {
			return err
		}
		var out results[dateResult]
		for i, d := range dates {
			out = append(out, env.result(args[i], d))
		}
		return env.out.print(out)
	})
}

func parse(ctx context.Context, values any, args []string) error {
	fv := values.(*parseFlags)
	return fv.run(ctx, func(ctx context.Context, env *environment) error {
		parser := hijri.ParseFlexible
		if len(fv.Pattern) > 0 {
			parser = func(s string) (hijri.Date, error) {
				return hijri.ParseExact(s, fv.Pattern)
			}
		}
		dates, err := parseDates(args, parser)
		if err != nil {
			return err
		}
		var out results[dateResult]
		for i, d := range dates {
			ctxlog.Logger(ctx).Debug("parse", "input", args[i], "pattern", fv.Pattern, "date", d.String())
			out = append(out, env.result(args[i], d))
		}
		return env.out.print(out)
	})
}

type formatResult struct {
	Input     string `json:"input" yaml:"input"`
	Formatted string `json:"formatted" yaml:"formatted"`
}

func (r formatResult) String() string {
	return r.Formatted
}

func format(ctx context.Context, values any, args []string) error {
	fv := values.(*formatFlags)
	return fv.run(ctx, func(_ context.Context, env *environment) error {
		dates, err := parseDates(args, hijri.ParseFlexible)
		if err != nil {
			return err
		}
		var out results[formatResult]
		for i, d := range dates {
			out = append(out, formatResult{
				Input:     args[i],
				Formatted: env.cal.Format(d, fv.Layout, env.tag),
			})
		}
		return env.out.print(out)
	})
}

func parseExclusions(val string) ([]hijri.Date, error) {
	if len(val) == 0 {
		return nil, nil
	}
	return parseDates(strings.Split(val, ","), func(s string) (hijri.Date, error) {
		return hijri.ParseFlexible(strings.TrimSpace(s))
	})
}

func listRange(ctx context.Context, values any, args []string) error {
	fv := values.(*rangeFlags)
	return fv.run(ctx, func(ctx context.Context, env *environment) error {
		from, err := hijri.ParseFlexible(args[0])
		if err != nil {
			return err
		}
		to, err := hijri.ParseFlexible(args[1])
		if err != nil {
			return err
		}
		r, err := hijri.NewRange(from, to)
		if err != nil {
			return err
		}
		exclude, err := parseExclusions(fv.Exclude)
		if err != nil {
			return err
		}
		dc := hijri.Constraints{
			Weekdays: fv.Weekdays,
			Weekends: fv.Weekends,
			Locale:   env.locale,
			Custom:   exclude,
		}
		ctxlog.Logger(ctx).Debug("range", "range", r.String(), "days", r.DayCount(), "constraints", dc.String())
		if fv.Ranges {
			var out hijri.RangeList
			for dr := range r.RangesConstrained(env.cal, dc) {
				out = append(out, dr)
			}
			return env.out.print(out)
		}
		var out results[dateResult]
		for d := range r.DatesConstrained(env.cal, dc) {
			out = append(out, env.result("", d))
		}
		return env.out.print(out)
	})
}

func add(ctx context.Context, values any, args []string) error {
	fv := values.(*CommonFlags)
	return fv.run(ctx, func(_ context.Context, env *environment) error {
		d, err := hijri.ParseFlexible(args[0])
		if err != nil {
			return err
		}
		span, err := hijri.ParseSpan(args[1])
		if err != nil {
			return err
		}
		sum, err := d.Add(span)
		if err != nil {
			return err
		}
		return env.out.print(env.result(fmt.Sprintf("%v + %v", d, span), sum))
	})
}

type occurrenceResult struct {
	Name      string      `json:"name" yaml:"name"`
	Range     hijri.Range `json:"range" yaml:"range"`
	Gregorian string      `json:"gregorian" yaml:"gregorian"`
	Days      int         `json:"days" yaml:"days"`
}

func (r occurrenceResult) String() string {
	return fmt.Sprintf("%-24v %v (%v, %d days)", r.Range, r.Name, r.Gregorian, r.Days)
}

func (env *environment) occurrences(list []occasions.Occurrence) results[occurrenceResult] {
	out := make(results[occurrenceResult], 0, len(list))
	for _, o := range list {
		out = append(out, occurrenceResult{
			Name:      o.Occasion.LocalName(env.locale),
			Range:     o.Range,
			Gregorian: env.cal.ToTime(o.Range.Start()).Format(time.DateOnly),
			Days:      o.Range.DayCount(),
		})
	}
	return out
}

func listOccasions(ctx context.Context, values any, args []string) error {
	fv := values.(*occasionsFlags)
	return fv.run(ctx, func(_ context.Context, env *environment) error {
		if fv.Next > 0 {
			return env.out.print(env.occurrences(env.occasions.Next(env.cal.Today(), fv.Next)))
		}
		year := env.cal.Today().Year()
		if len(args) == 1 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year: %q: %w", args[0], err)
			}
			year = y
		}
		if year < hijri.MinYear || year > hijri.MaxYear {
			return fmt.Errorf("year %d is out of range", year)
		}
		return env.out.print(env.occurrences(env.occasions.Evaluate(year)))
	})
}
