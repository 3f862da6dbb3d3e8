// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"strconv"
	"strings"
)

// Span represents a calendar aware period of years, months and days.
// Each component is independently signed and spans are never
// normalized, ie. 30 days is not converted to a month since month
// lengths vary.
type Span struct {
	Days   int
	Months int
	Years  int
}

// Days returns a span of n days.
func Days(n int) Span { return Span{Days: n} }

// Months returns a span of n months.
func Months(n int) Span { return Span{Months: n} }

// Years returns a span of n years.
func Years(n int) Span { return Span{Years: n} }

func (s Span) Add(o Span) Span {
	return Span{Days: s.Days + o.Days, Months: s.Months + o.Months, Years: s.Years + o.Years}
}

func (s Span) Sub(o Span) Span {
	return s.Add(o.Negate())
}

func (s Span) Negate() Span {
	return Span{Days: -s.Days, Months: -s.Months, Years: -s.Years}
}

// IsZero returns true if all components are zero.
func (s Span) IsZero() bool {
	return s == Span{}
}

// String returns the span in the form "1y 2m 3d" with zero components
// omitted. The zero span is "0d".
func (s Span) String() string {
	if s.IsZero() {
		return "0d"
	}
	parts := make([]string, 0, 3)
	if s.Years != 0 {
		parts = append(parts, fmt.Sprintf("%dy", s.Years))
	}
	if s.Months != 0 {
		parts = append(parts, fmt.Sprintf("%dm", s.Months))
	}
	if s.Days != 0 {
		parts = append(parts, fmt.Sprintf("%dd", s.Days))
	}
	return strings.Join(parts, " ")
}

// ParseSpan parses a span in the format returned by Span.String,
// ie. whitespace separated, signed integers each with a y, m or d suffix.
// Each unit may appear at most once.
func ParseSpan(val string) (Span, error) {
	var s Span
	fields := strings.Fields(normalizeDigits(val))
	if len(fields) == 0 {
		return Span{}, fmt.Errorf("empty span, expected format '1y 2m 3d'")
	}
	seen := map[byte]bool{}
	for _, f := range fields {
		if len(f) < 2 {
			return Span{}, fmt.Errorf("invalid span component %q in %q", f, val)
		}
		unit := f[len(f)-1]
		n, err := strconv.Atoi(f[:len(f)-1])
		if err != nil || seen[unit] {
			return Span{}, fmt.Errorf("invalid span component %q in %q", f, val)
		}
		seen[unit] = true
		switch unit {
		case 'y', 'Y':
			s.Years = n
		case 'm', 'M':
			s.Months = n
		case 'd', 'D':
			s.Days = n
		default:
			return Span{}, fmt.Errorf("invalid span unit %q in %q", unit, val)
		}
	}
	return s, nil
}

// Parse parses val using ParseSpan.
func (s *Span) Parse(val string) error {
	n, err := ParseSpan(val)
	if err != nil {
		return err
	}
	*s = n
	return nil
}
