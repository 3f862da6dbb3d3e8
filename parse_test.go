// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri_test

import (
	"errors"
	"testing"

	"cloudeng.io/hijri"
)

func TestParseFlexible(t *testing.T) {
	ramadan10 := date(1446, hijri.Ramadan, 10)
	for _, tc := range []struct {
		input string
		want  hijri.Date
	}{
		{"1446/09/10", ramadan10},
		{"1446/9/10", ramadan10},
		{"10/9/1446", ramadan10},
		{"1446-09-10", ramadan10},
		{"10-09-1446", ramadan10},
		{"1446 9 10", ramadan10},
		{"  10  9  1446 ", ramadan10},
		{"١٤٤٦/٠٩/١٠", ramadan10},
		{"۱۴۴۶-۰۹-۱۰", ramadan10},
		{"10 Ramadan 1446", ramadan10},
		{"10 ramadan 1446 AH", ramadan10},
		{"١٠ رمضان ١٤٤٦ هـ", ramadan10},
		{"10 رمضان 1446هـ", ramadan10},
		{"12 Rabi' al-awwal 1446", date(1446, hijri.RabiAlAwwal, 12)},
		{"12 rabi al awwal 1446", date(1446, hijri.RabiAlAwwal, 12)},
		{"5 ربيع الأول 1446", date(1446, hijri.RabiAlAwwal, 5)},
		{"5 ربيع الاول 1446", date(1446, hijri.RabiAlAwwal, 5)},
		{"5 ربيع الثاني 1446", date(1446, hijri.RabiAlThani, 5)},
		{"1 Dhu al-Hijjah 1445", date(1445, hijri.DhuAlHijjah, 1)},
		// The first field is year-like but not a valid date, so the
		// day/month/year interpretation is tried.
		{"0030/01/0045", date(45, hijri.Muharram, 30)},
		{"0030/01/01", date(30, hijri.Muharram, 1)},
		{"01/01/030", date(30, hijri.Muharram, 1)},
	} {
		d, err := hijri.ParseFlexible(tc.input)
		if err != nil {
			t.Errorf("%q: %v", tc.input, err)
			continue
		}
		if got, want := d, tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.input, got, want)
		}
		d, ok := hijri.TryParseFlexible(tc.input)
		if !ok || d != tc.want {
			t.Errorf("%q: got %v, %v, want %v, true", tc.input, d, ok, tc.want)
		}
	}
}

func TestParseYearByDigits(t *testing.T) {
	// A field written with three or more digits is a year even when its
	// value could be a day. Two digit fields are never years unless they
	// exceed 31.
	for _, tc := range []struct {
		input string
		want  hijri.Date
	}{
		{"001/01/10", date(1, hijri.Muharram, 10)},
		{"10/01/001", date(1, hijri.Muharram, 10)},
		{"010/01/10", date(10, hijri.Muharram, 10)},
		{"10/01/010", date(10, hijri.Muharram, 10)},
		{"0031/01/01", date(31, hijri.Muharram, 1)},
		{"32/01/01", date(32, hijri.Muharram, 1)},
	} {
		d, err := hijri.ParseFlexible(tc.input)
		if err != nil {
			t.Errorf("%q: %v", tc.input, err)
			continue
		}
		if got, want := d, tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.input, got, want)
		}
	}
	for _, input := range []string{"01/01/10", "10/01/31", "31/01/10"} {
		if _, err := hijri.ParseFlexible(input); !errors.Is(err, hijri.ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", input, err)
		}
	}
}

func TestParseFlexibleErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"hello",
		"10/09/12",      // no year-like field
		"1446/13/01",    // invalid month
		"30/02/1446",    // invalid day
		"1446/09",       // too few fields
		"1446/09/10/11", // too many fields
		"1446/x9/10",
		"10 Ramadhan-ish 1446",
		"Ramadan 10 1446",
		"-1446/09/10",
	} {
		if _, ok := hijri.TryParseFlexible(input); ok {
			t.Errorf("%q: expected failure", input)
		}
		_, err := hijri.ParseFlexible(input)
		if !errors.Is(err, hijri.ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", input, err)
		}
		var pe *hijri.ParseError
		if !errors.As(err, &pe) || pe.Input != input {
			t.Errorf("%q: expected a ParseError, got %v", input, err)
		}
	}

	// Candidate construction errors are retained.
	_, err := hijri.ParseFlexible("1446/13/01")
	if !errors.Is(err, hijri.ErrConstruction) {
		t.Errorf("expected ErrConstruction to be recorded: %v", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	start := date(1, hijri.Muharram, 1)
	for _, d := range []hijri.Date{
		start,
		date(31, hijri.Safar, 29),
		date(99, hijri.Rajab, 7),
		date(1446, hijri.Ramadan, 10),
		date(hijri.MaxYear, hijri.DhuAlHijjah, 1),
	} {
		for _, text := range []string{d.String(), d.LongString(hijri.English), d.LongString(hijri.Arabic)} {
			parsed, err := hijri.ParseFlexible(text)
			if err != nil {
				t.Errorf("%q: %v", text, err)
				continue
			}
			if got, want := parsed, d; got != want {
				t.Errorf("%q: got %v, want %v", text, got, want)
			}
		}
	}
	d := date(1440, hijri.Muharram, 1)
	for range 2000 {
		parsed, err := hijri.ParseFlexible(d.String())
		if err != nil || parsed != d {
			t.Fatalf("%v: got %v, %v", d, parsed, err)
		}
		d = must(d.AddDays(1))
	}
}

func TestParseExact(t *testing.T) {
	ramadan10 := date(1446, hijri.Ramadan, 10)
	for _, tc := range []struct {
		input, pattern string
		want           hijri.Date
	}{
		{"1446/09/10", "yyyy/MM/dd", ramadan10},
		{"10/09/1446", "dd/MM/yyyy", ramadan10},
		{"09-10-1446", "MM-dd-yyyy", ramadan10},
		{"1446 10 09", "yyyy dd MM", ramadan10},
		{"١٤٤٦/٠٩/١٠", "YYYY/MM/DD", ramadan10},
		// The pattern places the year first; it is honored even though
		// the value is small.
		{"12/09/10", "yy/MM/dd", date(12, hijri.Ramadan, 10)},
		{"10/09/12", "dd/MM/yy", date(12, hijri.Ramadan, 10)},
		// Falls back to the flexible parser on pattern failure.
		{"1446/09/10", "dd-MM-yyyy", ramadan10},
		{"1446/09/10", "ymd/MM/dd", ramadan10},
		{"1446/09/10", "yyyy/yyyy/dd", ramadan10},
		{"1446/09/10", "yyyy/MM", ramadan10},
		{"10 Ramadan 1446", "dd/MM/yyyy", ramadan10},
	} {
		d, err := hijri.ParseExact(tc.input, tc.pattern)
		if err != nil {
			t.Errorf("%q %q: %v", tc.input, tc.pattern, err)
			continue
		}
		if got, want := d, tc.want; got != want {
			t.Errorf("%q %q: got %v, want %v", tc.input, tc.pattern, got, want)
		}
		d, ok := hijri.TryParseExact(tc.input, tc.pattern)
		if !ok || d != tc.want {
			t.Errorf("%q %q: got %v, %v, want %v, true", tc.input, tc.pattern, d, ok, tc.want)
		}
	}

	_, err := hijri.ParseExact("10/09/12", "mm/dd/mm")
	var pe *hijri.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if got, want := pe.Pattern, "mm/dd/mm"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := hijri.TryParseExact("", "yyyy/MM/dd"); ok {
		t.Errorf("expected failure")
	}
}

func TestDateParse(t *testing.T) {
	var d hijri.Date
	if err := d.Parse("1 Muharram 1447"); err != nil {
		t.Fatal(err)
	}
	if got, want := d, date(1447, hijri.Muharram, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := d.Parse("not a date"); err == nil {
		t.Errorf("expected an error")
	}
	if got, want := d, date(1447, hijri.Muharram, 1); got != want {
		t.Errorf("failed parse modified the date: got %v, want %v", got, want)
	}
}
