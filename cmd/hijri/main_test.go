// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	"cloudeng.io/hijri"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	prev := stdout
	stdout = &out
	t.Cleanup(func() { stdout = prev })
	return &out
}

func commonFlags(output string) CommonFlags {
	return CommonFlags{Timezone: "UTC", Locale: "en", Output: output}
}

func decodeResults(t *testing.T, out *bytes.Buffer) []dateResult {
	t.Helper()
	var results []dateResult
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("failed to decode %s: %v", out.String(), err)
	}
	return results
}

func TestConfig(t *testing.T) {
	ctx := context.Background()
	cfg, err := loadConfig(ctx, filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Adjustment, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(cfg.Occasions), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := cfg.Occasions[0].Month, hijri.Shaban; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Occasions[1].Month, hijri.Ramadan; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	merged := cfg.merge(&CommonFlags{Output: "json"})
	if got, want := merged.Output, "json"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := merged.Locale, "ar"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		flag       string
		file, want int
	}{
		{"", 2, 2},
		{"-1", 0, -1},
		{"0", 2, 0},
		{"1", -2, 1},
	} {
		var fv CommonFlags
		if err := fv.Adjustment.Set(tc.flag); err != nil {
			t.Fatal(err)
		}
		merged := Config{Adjustment: tc.file}.merge(&fv)
		if got, want := merged.Adjustment, tc.want; got != want {
			t.Errorf("flag %q, file %v: got %v, want %v", tc.flag, tc.file, got, want)
		}
	}
	var fv CommonFlags
	if err := fv.Adjustment.Set("one"); err == nil {
		t.Errorf("expected an error")
	}
	merged = Config{}.merge(&CommonFlags{})
	if merged.Locale != "en" || merged.Output != "text" {
		t.Errorf("unexpected defaults: %+v", merged)
	}

	env, err := cfg.merge(&CommonFlags{}).environment(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := env.cal.Adjustment(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := env.locale, hijri.Arabic; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := loadConfig(ctx, filepath.Join("testdata", "invalid.yaml")); err == nil {
		t.Errorf("expected an error for an invalid occasion")
	}
	for _, cfg := range []Config{
		{Adjustment: 3, Locale: "en", Output: "text"},
		{Timezone: "Nowhere/Special", Locale: "en", Output: "text"},
		{Locale: "en", Output: "xml"},
	} {
		if _, err := cfg.environment(&bytes.Buffer{}); err == nil {
			t.Errorf("%+v: expected an error", cfg)
		}
	}
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	out := capture(t)
	fv := commonFlags("json")
	if err := convert(ctx, &fv, []string{"2025-02-28", "2024-07-07"}); err != nil {
		t.Fatal(err)
	}
	results := decodeResults(t, out)
	if got, want := len(results), 2; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, want := range []dateResult{
		{Input: "2025-02-28", Hijri: hijri.MustNewDate(1446, hijri.Ramadan, 1), Gregorian: "2025-02-28", Weekday: "Friday", Long: "1 Ramadan 1446 AH"},
		{Input: "2024-07-07", Hijri: hijri.MustNewDate(1446, hijri.Muharram, 1), Gregorian: "2024-07-07", Weekday: "Sunday", Long: "1 Muharram 1446 AH", Weekend: true},
	} {
		if got := results[i]; got != want {
			t.Errorf("%v: got %+v, want %+v", i, got, want)
		}
	}

	fv.Locale = "ar"
	out.Reset()
	if err := convert(ctx, &fv, []string{"2025-02-28"}); err != nil {
		t.Fatal(err)
	}
	results = decodeResults(t, out)
	if got, want := results[0].Weekend, true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := convert(ctx, &fv, []string{"2025-02-30", "not-a-date"}); err == nil {
		t.Errorf("expected an error")
	}
}

func TestGregorianAndParse(t *testing.T) {
	ctx := context.Background()
	out := capture(t)
	fv := commonFlags("text")
	if err := toGregorian(ctx, &fv, []string{"1446/09/01"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "1446/09/01: 1446/09/01 (1 Ramadan 1446 AH) Friday 2025-02-28\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	pf := parseFlags{CommonFlags: commonFlags("json"), Pattern: "dd/MM/yyyy"}
	if err := parse(ctx, &pf, []string{"10/01/1446"}); err != nil {
		t.Fatal(err)
	}
	results := decodeResults(t, out)
	if got, want := results[0].Gregorian, "2024-07-16"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	pf.Pattern = ""
	out.Reset()
	if err := parse(ctx, &pf, []string{"1 Ramadan 1446"}); err != nil {
		t.Fatal(err)
	}
	results = decodeResults(t, out)
	if got, want := results[0].Hijri, hijri.MustNewDate(1446, hijri.Ramadan, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := parse(ctx, &pf, []string{"1446/13/01"}); err == nil {
		t.Errorf("expected an error")
	}
}

func TestFormat(t *testing.T) {
	ctx := context.Background()
	out := capture(t)
	fv := formatFlags{CommonFlags: commonFlags("text")}
	if err := format(ctx, &fv, []string{"1446/09/01"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "1446/09/01\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	fv.Locale = "ar"
	if err := format(ctx, &fv, []string{"1446/09/01"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "1 رمضان 1446 هـ\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out.Reset()
	fv.Layout = "Mon Jan 2 2006"
	if err := format(ctx, &fv, []string{"1446/09/01"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "Fri Feb 28 2025\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRange(t *testing.T) {
	ctx := context.Background()
	out := capture(t)
	fv := rangeFlags{CommonFlags: commonFlags("json"), Weekends: true}
	if err := listRange(ctx, &fv, []string{"1446/09/01", "1446/09/07"}); err != nil {
		t.Fatal(err)
	}
	results := decodeResults(t, out)
	var got []string
	for _, r := range results {
		got = append(got, r.Hijri.String())
	}
	if want := []string{"1446/09/02", "1446/09/03"}; strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	fv = rangeFlags{CommonFlags: commonFlags("text"), Weekdays: true, Ranges: true, Exclude: "1446/09/06"}
	if err := listRange(ctx, &fv, []string{"1446/09/01", "1446/09/10"}); err != nil {
		t.Fatal(err)
	}
	want := "1446/09/01 - 1446/09/01, 1446/09/04 - 1446/09/05, 1446/09/07 - 1446/09/08\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := listRange(ctx, &fv, []string{"1446/09/10", "1446/09/01"}); err == nil {
		t.Errorf("expected an error for an inverted range")
	}
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	out := capture(t)
	fv := commonFlags("yaml")
	if err := add(ctx, &fv, []string{"1446/09/01", "1m"}); err != nil {
		t.Fatal(err)
	}
	var result dateResult
	if err := yaml.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if got, want := result.Hijri, hijri.MustNewDate(1446, hijri.Shawwal, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := result.Gregorian, "2025-03-30"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, args := range [][]string{
		{"1446/09/01", "1w"},
		{"9666/12/29", "1d"},
		{"0001/01/01", "-1m"},
	} {
		if err := add(ctx, &fv, args); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestOccasions(t *testing.T) {
	ctx := context.Background()
	out := capture(t)
	fv := occasionsFlags{CommonFlags: commonFlags("json")}
	if err := listOccasions(ctx, &fv, []string{"1446"}); err != nil {
		t.Fatal(err)
	}
	var results []occurrenceResult
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if got, want := len(results), 10; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	first := results[0]
	if got, want := first.Name, "Islamic New Year"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := first.Gregorian, "2024-07-07"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := results[5].Days, 30; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	fv.Next = 3
	if err := listOccasions(ctx, &fv, nil); err != nil {
		t.Fatal(err)
	}
	results = nil
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatal(err)
	}
	if got, want := len(results), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	fv.Next = 0
	for _, arg := range []string{"x", "0", "10000"} {
		if err := listOccasions(ctx, &fv, []string{arg}); err == nil {
			t.Errorf("%v: expected an error", arg)
		}
	}
}
