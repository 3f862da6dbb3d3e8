// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package occasions provides support for annually recurring occasions
// in the Hijri calendar, such as Ramadan or the Eids, and for listing
// their occurrences in date order.
package occasions

import (
	"fmt"
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/hijri"
)

// Occasion represents an annual occasion that starts on a given day
// of a Hijri month.
type Occasion struct {
	Name   string      `json:"name" yaml:"name"`
	Arabic string      `json:"arabic,omitempty" yaml:"arabic,omitempty"` // Optional Arabic name.
	Month  hijri.Month `json:"month" yaml:"month"`
	Day    int         `json:"day,omitempty" yaml:"day,omitempty"`   // Zero refers to the entire month.
	Days   int         `json:"days,omitempty" yaml:"days,omitempty"` // Length in days, zero is treated as one.
}

// LocalName returns the name of the occasion for the specified locale.
func (o Occasion) LocalName(l hijri.Locale) string {
	if l == hijri.Arabic && len(o.Arabic) > 0 {
		return o.Arabic
	}
	return o.Name
}

func (o Occasion) String() string {
	if o.Day == 0 {
		return fmt.Sprintf("%s: %v", o.Name, o.Month)
	}
	if o.Days > 1 {
		return fmt.Sprintf("%s: %d %v (%d days)", o.Name, o.Day, o.Month, o.Days)
	}
	return fmt.Sprintf("%s: %d %v", o.Name, o.Day, o.Month)
}

// Validate returns an error if the occasion can never occur.
func (o Occasion) Validate() error {
	switch {
	case len(o.Name) == 0:
		return fmt.Errorf("occasion has no name")
	case !o.Month.Valid():
		return fmt.Errorf("%s: invalid month: %d", o.Name, int(o.Month))
	case o.Day < 0 || o.Day > 30:
		return fmt.Errorf("%s: invalid day: %d", o.Name, o.Day)
	case o.Day == 30 && o.Month != hijri.DhuAlHijjah && o.Month%2 == 0:
		return fmt.Errorf("%s: %v never has 30 days", o.Name, o.Month)
	case o.Days < 0:
		return fmt.Errorf("%s: invalid number of days: %d", o.Name, o.Days)
	}
	return nil
}

// Evaluate returns the range of dates covered by the occasion in the
// specified year. An error is returned if the occasion does not occur
// in that year, for example the 30th of Dhu al-Hijjah in a non-leap year.
func (o Occasion) Evaluate(year int) (hijri.Range, error) {
	if err := o.Validate(); err != nil {
		return hijri.Range{}, err
	}
	if o.Day == 0 {
		first, err := hijri.NewDate(year, o.Month, 1)
		if err != nil {
			return hijri.Range{}, err
		}
		return first.MonthRange(), nil
	}
	start, err := hijri.NewDate(year, o.Month, o.Day)
	if err != nil {
		return hijri.Range{}, err
	}
	end, err := start.AddDays(max(o.Days, 1) - 1)
	if err != nil {
		return hijri.Range{}, err
	}
	return hijri.NewRange(start, end)
}

// Occurrence represents a single occurrence of an Occasion.
type Occurrence struct {
	Occasion Occasion    `json:"occasion" yaml:"occasion"`
	Range    hijri.Range `json:"range" yaml:"range"`
}

func (o Occurrence) String() string {
	if start := o.Range.Start(); start == o.Range.End() {
		return fmt.Sprintf("%v: %s", start, o.Occasion.Name)
	}
	return fmt.Sprintf("%v: %s", o.Range, o.Occasion.Name)
}

// List represents a list of occasions.
type List []Occasion

// Validate returns an error for every invalid occasion in the list.
func (l List) Validate() error {
	errs := &errors.M{}
	for _, o := range l {
		errs.Append(o.Validate())
	}
	return errs.Err()
}

// Evaluate returns the occurrences of all of the occasions in the list
// for the specified year, ordered by start date. Occasions that do not
// occur in that year are omitted.
func (l List) Evaluate(year int) []Occurrence {
	h := heap.NewMinMax(heap.WithSliceCap[int64, Occurrence](len(l) + 1))
	l.push(h, year, func(hijri.Range) bool { return true }, 0)
	return drain(h)
}

func drain(h *heap.MinMax[int64, Occurrence]) []Occurrence {
	out := make([]Occurrence, 0, h.Len())
	for h.Len() > 0 {
		_, o := h.PopMin()
		out = append(out, o)
	}
	return out
}

// key orders occurrences by start date and then by their position
// in the list.
func key(r hijri.Range, idx int) int64 {
	return int64(r.Start().DayNumber())<<20 | int64(idx)
}

func (l List) push(h *heap.MinMax[int64, Occurrence], year int, keep func(hijri.Range) bool, n int) {
	if year < hijri.MinYear || year > hijri.MaxYear {
		return
	}
	for i, o := range l {
		r, err := o.Evaluate(year)
		if err != nil || !keep(r) {
			continue
		}
		if n > 0 {
			h.PushMinN(key(r, i), Occurrence{Occasion: o, Range: r}, n)
			continue
		}
		h.Push(key(r, i), Occurrence{Occasion: o, Range: r})
	}
}

// Between returns an iterator over the occurrences that overlap the
// specified range, ordered by start date. Occurrences with the same
// start date are ordered as per the list.
func (l List) Between(r hijri.Range) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		h := heap.NewMinMax(heap.WithSliceCap[int64, Occurrence](len(l) * 2))
		// Occasions may start in the previous year and extend into the range.
		for year := r.Start().Year() - 1; year <= r.End().Year(); year++ {
			l.push(h, year, r.Overlaps, 0)
		}
		for h.Len() > 0 {
			_, o := h.PopMin()
			if !yield(o) {
				return
			}
		}
	}
}

// Next returns the next n occurrences that end on or after from.
func (l List) Next(from hijri.Date, n int) []Occurrence {
	if n <= 0 || len(l) == 0 {
		return nil
	}
	h := heap.NewMinMax(heap.WithSliceCap[int64, Occurrence](n + 1))
	upcoming := func(r hijri.Range) bool {
		return !r.End().Before(from.Date())
	}
	// Every valid occasion occurs at least once in every 30 year cycle
	// and all occurrences in a year precede those of the following year.
	last := from.Year() + (n/len(l)+1)*30
	for year := from.Year() - 1; year <= last && h.Len() < n; year++ {
		l.push(h, year, upcoming, n)
	}
	return drain(h)
}

// Config represents a YAML configuration of occasions.
type Config struct {
	Occasions List `yaml:"occasions"`
}

// ParseConfig parses a YAML configuration of occasions, rejecting
// unknown fields and invalid occasions.
func ParseConfig(spec []byte) (List, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Occasions.Validate(); err != nil {
		return nil, err
	}
	return cfg.Occasions, nil
}

// Standard returns commonly observed occasions.
func Standard() List {
	return List{
		{Name: "Islamic New Year", Arabic: "رأس السنة الهجرية", Month: hijri.Muharram, Day: 1},
		{Name: "Ashura", Arabic: "عاشوراء", Month: hijri.Muharram, Day: 10},
		{Name: "Mawlid an-Nabi", Arabic: "المولد النبوي", Month: hijri.RabiAlAwwal, Day: 12},
		{Name: "Isra and Mi'raj", Arabic: "الإسراء والمعراج", Month: hijri.Rajab, Day: 27},
		{Name: "Mid-Sha'ban", Arabic: "ليلة النصف من شعبان", Month: hijri.Shaban, Day: 15},
		{Name: "Ramadan", Arabic: "رمضان", Month: hijri.Ramadan},
		{Name: "Laylat al-Qadr", Arabic: "ليلة القدر", Month: hijri.Ramadan, Day: 27},
		{Name: "Eid al-Fitr", Arabic: "عيد الفطر", Month: hijri.Shawwal, Day: 1, Days: 3},
		{Name: "Day of Arafah", Arabic: "يوم عرفة", Month: hijri.DhuAlHijjah, Day: 9},
		{Name: "Eid al-Adha", Arabic: "عيد الأضحى", Month: hijri.DhuAlHijjah, Day: 10, Days: 4},
	}
}
