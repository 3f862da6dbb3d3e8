// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Range represents a closed interval of dates, ie. both the start and
// end are included. The start is never after the end.
type Range struct {
	start, end Date
}

// NewRange returns a new Range. The returned error wraps ErrConstruction
// if start is after end.
func NewRange(start, end Date) (Range, error) {
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: range start %v is after end %v", ErrConstruction, start.DateTimeString(), end.DateTimeString())
	}
	return Range{start: start, end: end}, nil
}

func (r Range) Start() Date { return r.start }
func (r Range) End() Date   { return r.end }

// String returns the range as "YYYY/MM/DD - YYYY/MM/DD".
func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.start, r.end)
}

// Equal returns true if both ranges have the same start and end.
func (r Range) Equal(o Range) bool {
	return r == o
}

// Contains returns true if d falls within the range, including its
// start and end.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Overlaps returns true if the ranges have at least one instant in
// common, so ranges that share a boundary overlap.
func (r Range) Overlaps(o Range) bool {
	return !r.start.After(o.end) && !o.start.After(r.end)
}

func maxDate(a, b Date) Date {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b Date) Date {
	if a.Before(b) {
		return a
	}
	return b
}

// Intersect returns the range common to both ranges. The returned error
// wraps ErrInvalidOperation if the ranges do not overlap.
func (r Range) Intersect(o Range) (Range, error) {
	if !r.Overlaps(o) {
		return Range{}, fmt.Errorf("%w: %v does not overlap %v", ErrInvalidOperation, r, o)
	}
	return Range{start: maxDate(r.start, o.start), end: minDate(r.end, o.end)}, nil
}

// Union returns the smallest range that contains both ranges. Any gap
// between the two ranges is included in the result.
func (r Range) Union(o Range) Range {
	return Range{start: minDate(r.start, o.start), end: maxDate(r.end, o.end)}
}

// ExpandByDays returns the range with its start moved n days earlier
// and its end n days later. A negative n shrinks the range and the
// returned error wraps ErrConstruction if doing so inverts it.
func (r Range) ExpandByDays(n int) (Range, error) {
	start, err := r.start.AddDays(-n)
	if err != nil {
		return Range{}, err
	}
	end, err := r.end.AddDays(n)
	if err != nil {
		return Range{}, err
	}
	return NewRange(start, end)
}

// ContractByDays returns the range with its start moved n days later
// and its end n days earlier. The returned error wraps
// ErrInvalidOperation if the result would be inverted and
// ErrConstruction if it is outside of the supported range.
func (r Range) ContractByDays(n int) (Range, error) {
	start, err := r.start.AddDays(n)
	if err != nil {
		return Range{}, err
	}
	end, err := r.end.AddDays(-n)
	if err != nil {
		return Range{}, err
	}
	if start.After(end) {
		return Range{}, fmt.Errorf("%w: contracting %v by %v days inverts it", ErrInvalidOperation, r, n)
	}
	return Range{start: start, end: end}, nil
}

// DayCount returns the number of calendar days in the range, counting
// both the start and end days.
func (r Range) DayCount() int {
	n := r.end.DayNumber() - r.start.DayNumber()
	if n < 0 {
		n = -n
	}
	return n + 1
}

// Days returns an iterator over Start, Start plus one day and so on
// for as long as the date is not after End. Each date has the same
// time of day as Start.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.start; !d.After(r.end); d = d.addDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DatesConstrained returns an iterator over the days in the range
// that satisfy the constraints.
func (r Range) DatesConstrained(cal *Calendar, dc Constraints) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := range r.Days() {
			if !dc.Include(cal, d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// RangesConstrained returns an iterator over the maximal sub-ranges of
// consecutive days that satisfy the constraints.
func (r Range) RangesConstrained(cal *Calendar, dc Constraints) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		var start, stop Date
		inrange := false
		for d := range r.Days() {
			if !dc.Include(cal, d) {
				if inrange {
					if !yield(Range{start: start, end: stop}) {
						return
					}
				}
				inrange = false
				continue
			}
			if !inrange {
				start = d
				inrange = true
			}
			stop = d
		}
		if inrange {
			yield(Range{start: start, end: stop})
		}
	}
}

// Parse parses a range in the format '<from>:<to>' where from and
// to are in any of the formats accepted by ParseFlexible.
func (r *Range) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>'", val)
	}
	var from, to Date
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	nr, err := NewRange(from, to)
	if err != nil {
		return err
	}
	*r = nr
	return nil
}

// ParseRange is like Range.Parse but returns the range.
func ParseRange(val string) (Range, error) {
	var r Range
	err := r.Parse(val)
	return r, err
}

// RangeList represents a list of ranges.
type RangeList []Range

func (rl RangeList) String() string {
	var out strings.Builder
	for i, r := range rl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(r.String())
	}
	return out.String()
}

// Sort sorts the list in place by start and then end.
func (rl RangeList) Sort() {
	slices.SortFunc(rl, func(a, b Range) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return a.end.Compare(b.end)
	})
}

// Merge returns a new list in which overlapping ranges and ranges
// that end on the day before another starts are merged. The list is
// assumed to be sorted.
func (rl RangeList) Merge() RangeList {
	if len(rl) == 0 {
		return rl
	}
	merged := make(RangeList, 0, len(rl))
	cur := rl[0]
	for _, next := range rl[1:] {
		if next.start.DayNumber() <= cur.end.DayNumber()+1 {
			cur.end = maxDate(cur.end, next.end)
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	return slices.Clip(append(merged, cur))
}

// Contains returns true if any range in the list contains d.
func (rl RangeList) Contains(d Date) bool {
	for _, r := range rl {
		if r.Contains(d) {
			return true
		}
	}
	return false
}
