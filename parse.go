// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// Delimiters are tried in this order.
var delimiters = []string{"/", "-", " "}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func split(s, delim string) []string {
	if delim == " " {
		return strings.Fields(s)
	}
	parts := strings.Split(s, delim)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// numericFields splits s into exactly three all digit fields.
func numericFields(s, delim string) ([]string, []int, bool) {
	parts := split(s, delim)
	if len(parts) != 3 {
		return nil, nil, false
	}
	values := make([]int, 3)
	for i, p := range parts {
		if !isDigits(p) {
			return nil, nil, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, nil, false
		}
		values[i] = n
	}
	return parts, values, true
}

// yearLike returns true if a field can only be a year: its value
// exceeds any day of the month or it is written with 3 or more digits.
func yearLike(field string, value int) bool {
	return value > 31 || len(field) >= 3
}

func parseNumeric(s string, errs *errors.M) (Date, bool) {
	for _, delim := range delimiters {
		fields, values, ok := numericFields(s, delim)
		if !ok {
			continue
		}
		tried := false
		if yearLike(fields[0], values[0]) {
			tried = true
			d, err := NewDate(values[0], Month(values[1]), values[2])
			if err == nil {
				return d, true
			}
			errs.Append(fmt.Errorf("year/month/day: %w", err))
		}
		if yearLike(fields[2], values[2]) {
			tried = true
			d, err := NewDate(values[2], Month(values[1]), values[0])
			if err == nil {
				return d, true
			}
			errs.Append(fmt.Errorf("day/month/year: %w", err))
		}
		if !tried {
			errs.Append(fmt.Errorf("no year in %q, a year must exceed 31 or have at least 3 digits", s))
		}
	}
	return Date{}, false
}

func isEra(token string) bool {
	switch strings.ToLower(token) {
	case "هـ", "ه", "ah", "a.h.":
		return true
	}
	return false
}

// parseMonthName parses dates of the form "1 Ramadan 1446 [era]". The
// month name may consist of more than one word.
func parseMonthName(s string) (Date, error) {
	tokens := strings.Fields(s)
	if n := len(tokens); n > 0 {
		if isEra(tokens[n-1]) {
			tokens = tokens[:n-1]
		} else if t := strings.TrimSuffix(tokens[n-1], "هـ"); t != tokens[n-1] {
			tokens[n-1] = t
		}
	}
	if len(tokens) < 3 {
		return Date{}, fmt.Errorf("expected format '<day> <month name> <year>'")
	}
	day, year := tokens[0], tokens[len(tokens)-1]
	if !isDigits(day) || !isDigits(year) {
		return Date{}, fmt.Errorf("expected numeric day and year in '<day> <month name> <year>'")
	}
	month, err := ParseMonth(strings.Join(tokens[1:len(tokens)-1], " "))
	if err != nil {
		return Date{}, err
	}
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	return NewDate(y, month, d)
}

func parseFlexible(input string) (Date, error) {
	s := strings.TrimSpace(normalizeDigits(input))
	if len(s) == 0 {
		return Date{}, &ParseError{Input: input, Err: fmt.Errorf("empty input")}
	}
	errs := &errors.M{}
	if d, ok := parseNumeric(s, errs); ok {
		return d, nil
	}
	d, err := parseMonthName(s)
	if err == nil {
		return d, nil
	}
	errs.Append(err)
	return Date{}, &ParseError{Input: input, Err: errs.Err()}
}

// ParseFlexible parses a date without a pattern. Any Unicode decimal
// digits are accepted. The following are tried in order:
//
//   - three numeric fields separated by '/', '-' or whitespace (tried in
//     that order), interpreted as year/month/day if the first field is a
//     year, or day/month/year if the last field is a year. A field is
//     considered to be a year if its value is greater than 31 or if it has
//     three or more digits.
//   - '<day> <month name> <year>' with an optional trailing era marker,
//     where the month name may be in English or Arabic.
//
// The returned error is a *ParseError that wraps ErrParse.
func ParseFlexible(s string) (Date, error) {
	return parseFlexible(s)
}

// TryParseFlexible is like ParseFlexible but returns false rather than
// an error.
func TryParseFlexible(s string) (Date, bool) {
	d, err := parseFlexible(s)
	return d, err == nil
}

type exactLayout struct {
	delim            string
	year, month, day int
}

// parsePattern determines the delimiter and field positions of a pattern
// such as "dd/MM/yyyy" or "yyyy-mm-dd".
func parsePattern(pattern string) (exactLayout, error) {
	l := exactLayout{year: -1, month: -1, day: -1}
	for _, delim := range delimiters {
		if strings.Contains(pattern, delim) {
			l.delim = delim
			break
		}
	}
	if len(l.delim) == 0 {
		return l, fmt.Errorf("pattern %q has no delimiter", pattern)
	}
	fields := split(pattern, l.delim)
	if len(fields) != 3 {
		return l, fmt.Errorf("pattern %q must have three fields", pattern)
	}
	for i, f := range fields {
		f = strings.ToLower(f)
		y, m, d := strings.ContainsRune(f, 'y'), strings.ContainsRune(f, 'm'), strings.ContainsRune(f, 'd')
		switch {
		case y && !m && !d && l.year < 0:
			l.year = i
		case m && !y && !d && l.month < 0:
			l.month = i
		case d && !y && !m && l.day < 0:
			l.day = i
		default:
			return l, fmt.Errorf("pattern %q: field %q is ambiguous or repeated", pattern, fields[i])
		}
	}
	return l, nil
}

func parseExact(s, pattern string) (Date, error) {
	l, err := parsePattern(pattern)
	if err != nil {
		return Date{}, err
	}
	_, values, ok := numericFields(s, l.delim)
	if !ok {
		return Date{}, fmt.Errorf("%q does not have three numeric fields separated by %q", s, l.delim)
	}
	return NewDate(values[l.year], Month(values[l.month]), values[l.day])
}

// ParseExact parses s according to pattern, where the pattern consists
// of three fields separated by '/', '-' or a space (the first of these
// found in the pattern is used) and each field contains exactly one of
// 'y', 'm' or 'd' (in either case) to denote the year, month and day
// fields. If s cannot be parsed using the pattern, ParseFlexible is used.
func ParseExact(s, pattern string) (Date, error) {
	d, err := parseExact(strings.TrimSpace(normalizeDigits(s)), pattern)
	if err == nil {
		return d, nil
	}
	d, ferr := parseFlexible(s)
	if ferr == nil {
		return d, nil
	}
	causes := &errors.M{}
	causes.Append(fmt.Errorf("pattern: %w", err))
	var pe *ParseError
	if errors.As(ferr, &pe) {
		causes.Append(pe.Err)
	}
	return Date{}, &ParseError{Input: s, Pattern: pattern, Err: causes.Err()}
}

// TryParseExact is like ParseExact but returns false rather than an error.
func TryParseExact(s, pattern string) (Date, bool) {
	d, err := ParseExact(s, pattern)
	return d, err == nil
}

// Parse parses val using ParseFlexible.
func (d *Date) Parse(val string) error {
	n, err := ParseFlexible(val)
	if err != nil {
		return err
	}
	*d = n
	return nil
}
