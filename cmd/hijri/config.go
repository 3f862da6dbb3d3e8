// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/hijri"
	"cloudeng.io/hijri/occasions"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/language"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Adjustment adjustment `subcmd:"adjustment,,'number of days, -2 to 2, to adjust the tabular calendar by, 0 by default'"`
	Timezone   string     `subcmd:"timezone,,'IANA timezone used for conversions, the local timezone is used by default'"`
	Locale     string     `subcmd:"locale,,'BCP 47 language tag used for month names and weekends, en by default'"`
	Output     string     `subcmd:"output,,'output format: text, json or yaml, text by default'"`
	Config     string     `subcmd:"config,,'optional YAML configuration file'"`
}

// adjustment represents an int that can be used as a flag.Value and
// that records whether it has been set so that an explicit zero can
// override a configuration file.
type adjustment struct {
	value int
	set   bool
}

// Set implements flag.Value.
func (a *adjustment) Set(v string) error {
	if len(v) == 0 {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid adjustment: %q: %w", v, err)
	}
	a.value, a.set = n, true
	return nil
}

// String implements flag.Value.
func (a *adjustment) String() string {
	if !a.set {
		return ""
	}
	return strconv.Itoa(a.value)
}

// Get implements flag.Getter.
func (a *adjustment) Get() any {
	return a.value
}

// Config represents the optional YAML configuration file. Values
// specified on the command line take precedence.
type Config struct {
	Adjustment int            `yaml:"adjustment"`
	Timezone   string         `yaml:"timezone"`
	Locale     string         `yaml:"locale"`
	Output     string         `yaml:"output"`
	Occasions  occasions.List `yaml:"occasions"`
}

// merge overrides the configuration with any values set on the
// command line.
func (c Config) merge(fv *CommonFlags) Config {
	if fv.Adjustment.set {
		c.Adjustment = fv.Adjustment.value
	}
	if len(fv.Timezone) > 0 {
		c.Timezone = fv.Timezone
	}
	if len(fv.Locale) > 0 {
		c.Locale = fv.Locale
	}
	if len(fv.Output) > 0 {
		c.Output = fv.Output
	}
	if len(c.Locale) == 0 {
		c.Locale = "en"
	}
	if len(c.Output) == 0 {
		c.Output = "text"
	}
	return c
}

var stdout io.Writer = os.Stdout

// environment is the state shared by all commands.
type environment struct {
	cal       *hijri.Calendar
	tag       language.Tag
	locale    hijri.Locale
	occasions occasions.List
	out       *printer
}

func loadConfig(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Occasions.Validate(); err != nil {
		return cfg, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) environment(w io.Writer) (*environment, error) {
	loc := time.Local
	if len(c.Timezone) > 0 {
		var err error
		if loc, err = time.LoadLocation(c.Timezone); err != nil {
			return nil, err
		}
	}
	cal, err := hijri.NewCalendar(hijri.WithAdjustment(c.Adjustment), hijri.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	tag, locale, err := hijri.ParseLocale(c.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	out, err := newPrinter(w, c.Output)
	if err != nil {
		return nil, err
	}
	list := c.Occasions
	if len(list) == 0 {
		list = occasions.Standard()
	}
	return &environment{cal: cal, tag: tag, locale: locale, occasions: list, out: out}, nil
}

// run creates the logger and environment specified by the common flags
// and then invokes fn.
func (fv *CommonFlags) run(ctx context.Context, fn func(context.Context, *environment) error) error {
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.Context(ctx, logger.Logger)
	cfg, err := loadConfig(ctx, fv.Config)
	if err != nil {
		return err
	}
	cfg = cfg.merge(fv)
	env, err := cfg.environment(stdout)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("calendar",
		"adjustment", cfg.Adjustment,
		"timezone", env.cal.Location().String(),
		"locale", env.tag.String(),
		"occasions", len(env.occasions))
	return fn(ctx, env)
}
