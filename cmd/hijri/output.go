// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"cloudeng.io/hijri"
)

// dateResult is the output produced for a single date.
type dateResult struct {
	Input     string     `json:"input,omitempty" yaml:"input,omitempty"`
	Hijri     hijri.Date `json:"hijri" yaml:"hijri"`
	Gregorian string     `json:"gregorian" yaml:"gregorian"`
	Weekday   string     `json:"weekday" yaml:"weekday"`
	Long      string     `json:"long" yaml:"long"`
	Weekend   bool       `json:"weekend,omitempty" yaml:"weekend,omitempty"`
}

func (r dateResult) String() string {
	if len(r.Input) > 0 {
		return fmt.Sprintf("%v: %v (%v) %v %v", r.Input, r.Hijri, r.Long, r.Weekday, r.Gregorian)
	}
	return fmt.Sprintf("%v (%v) %v %v", r.Hijri, r.Long, r.Weekday, r.Gregorian)
}

func (env *environment) result(input string, d hijri.Date) dateResult {
	return dateResult{
		Input:     input,
		Hijri:     d,
		Gregorian: env.cal.ToTime(d).Format("2006-01-02"),
		Weekday:   env.cal.Weekday(d).String(),
		Long:      d.LongString(env.locale),
		Weekend:   env.cal.IsWeekend(d, env.locale),
	}
}

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case "text", "json", "yaml":
		return &printer{w: w, format: format}, nil
	}
	return nil, fmt.Errorf("unsupported output format: %q", format)
}

// print writes v using the configured format, text output uses
// v's String method.
func (p *printer) print(v fmt.Stringer) error {
	switch p.format {
	case "json":
		if err := json.MarshalWrite(p.w, v, jsontext.WithIndent("  ")); err != nil {
			return err
		}
		_, err := p.w.Write([]byte{'\n'})
		return err
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(p.w, v.String())
	return err
}

// results is a list of results printed one per line for text output
// and as a single list otherwise.
type results[T fmt.Stringer] []T

func (r results[T]) String() string {
	var out []byte
	for i, v := range r {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, v.String()...)
	}
	return string(out)
}
