// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri_test

import (
	"testing"

	"cloudeng.io/hijri"
)

func TestSpan(t *testing.T) {
	a := hijri.Span{Years: 1, Months: 2, Days: 3}
	b := hijri.Span{Years: 0, Months: -5, Days: 10}
	if got, want := a.Add(b), (hijri.Span{Years: 1, Months: -3, Days: 13}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (hijri.Span{Years: 1, Months: 7, Days: -7}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Negate(), (hijri.Span{Years: -1, Months: -2, Days: -3}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Spans are never normalized.
	if got, want := hijri.Days(45).Add(hijri.Months(13)), (hijri.Span{Months: 13, Days: 45}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		span hijri.Span
		text string
	}{
		{hijri.Span{}, "0d"},
		{a, "1y 2m 3d"},
		{hijri.Days(3), "3d"},
		{hijri.Years(-2), "-2y"},
		{hijri.Span{Months: 1, Days: -1}, "1m -1d"},
	} {
		if got, want := tc.span.String(), tc.text; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		parsed, err := hijri.ParseSpan(tc.text)
		if err != nil {
			t.Errorf("%v: %v", tc.text, err)
		}
		if got, want := parsed, tc.span; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	var s hijri.Span
	if err := s.Parse("٢y ٣d"); err != nil {
		t.Fatal(err)
	}
	if got, want := s, (hijri.Span{Years: 2, Days: 3}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, input := range []string{"", "3", "3w", "1d 2d", "xd"} {
		if _, err := hijri.ParseSpan(input); err == nil {
			t.Errorf("%q: expected an error", input)
		}
	}
}
