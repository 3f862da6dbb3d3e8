// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"cmp"
	"fmt"
)

// Date represents a date and time of day in the Hijri calendar. The
// zero value is not a valid date; Dates are created by NewDate,
// NewDateTime, the parsing functions or a Calendar and are always valid.
// Dates are comparable and may be used as map keys.
type Date struct {
	year  int32
	month Month
	day   uint8
	tod   TimeOfDay
}

// NewDate returns the date for the specified year, month and day.
// The returned error wraps ErrConstruction if any component is out of range.
func NewDate(year int, month Month, day int) (Date, error) {
	if err := validYMD(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: int32(year), month: month, day: uint8(day)}, nil
}

// NewDateTime is like NewDate but includes a time of day.
func NewDateTime(year int, month Month, day, hour, minute, second, millisecond int) (Date, error) {
	if err := validYMD(year, month, day); err != nil {
		return Date{}, err
	}
	if err := validTimeOfDay(hour, minute, second, millisecond); err != nil {
		return Date{}, err
	}
	return Date{
		year:  int32(year),
		month: month,
		day:   uint8(day),
		tod:   NewTimeOfDay(hour, minute, second, millisecond),
	}, nil
}

// MustNewDate is like NewDate but panics on error.
func MustNewDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int            { return int(d.year) }
func (d Date) Month() Month         { return d.month }
func (d Date) Day() int             { return int(d.day) }
func (d Date) Hour() int            { return d.tod.Hour() }
func (d Date) Minute() int          { return d.tod.Minute() }
func (d Date) Second() int          { return d.tod.Second() }
func (d Date) Millisecond() int     { return d.tod.Millisecond() }
func (d Date) TimeOfDay() TimeOfDay { return d.tod }

// IsZero returns true for the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Date returns d with its time of day set to midnight.
func (d Date) Date() Date {
	d.tod = 0
	return d
}

// WithTimeOfDay returns d with the specified time of day.
func (d Date) WithTimeOfDay(t TimeOfDay) Date {
	d.tod = t
	return d
}

// DayNumber returns the number of days since 1 Muharram 1 AH, which
// is day 0.
func (d Date) DayNumber() int {
	return dayNumber(int(d.year), d.month, int(d.day))
}

// DayOfYear returns the day of the year, 1-354 or 1-355 in leap years.
func (d Date) DayOfYear() int {
	return daysBeforeMonth[d.month-1] + int(d.day)
}

// IsLeapYear returns true if d falls in a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeap(int(d.year))
}

// DaysInMonth returns the number of days in d's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(int(d.year), d.month)
}

func fromDays(n int, tod TimeOfDay) Date {
	y, m, day := fromDayNumber(n)
	return Date{year: int32(y), month: m, day: uint8(day), tod: tod}
}

// inRange returns d, or an error wrapping ErrConstruction if the year
// of d is outside of the supported range.
func (d Date) inRange() (Date, error) {
	if y := int(d.year); y < MinYear || y > MaxYear {
		return Date{}, constructionError("year %v out of range %v..%v", y, MinYear, MaxYear)
	}
	return d, nil
}

func (d Date) addDays(days int) Date {
	if days == 0 {
		return d
	}
	return fromDays(d.DayNumber()+days, d.tod)
}

func (d Date) addMonths(months int) Date {
	if months == 0 {
		return d
	}
	i := int(d.year)*12 + int(d.month) - 1 + months
	year, month := floorDiv(i, 12), Month(floorMod(i, 12)+1)
	day := min(int(d.day), DaysInMonth(year, month))
	return Date{year: int32(year), month: month, day: uint8(day), tod: d.tod}
}

// AddDays returns d plus the specified number of days, which may be
// negative. The time of day is unchanged. The returned error wraps
// ErrConstruction if the result is outside of the supported range.
func (d Date) AddDays(days int) (Date, error) {
	return d.addDays(days).inRange()
}

// AddMonths returns d plus the specified number of months, which may be
// negative. The day is clamped to the number of days in the resulting
// month. The returned error wraps ErrConstruction if the result is
// outside of the supported range.
func (d Date) AddMonths(months int) (Date, error) {
	return d.addMonths(months).inRange()
}

// AddYears returns d plus the specified number of years, clamping the
// day of the month as per AddMonths.
func (d Date) AddYears(years int) (Date, error) {
	return d.addMonths(years * 12).inRange()
}

// Add returns d plus the span, applying the years, then the months
// and then the days. Only the final result is required to be within
// the supported range.
func (d Date) Add(s Span) (Date, error) {
	return d.addMonths(s.Years*12).addMonths(s.Months).addDays(s.Days).inRange()
}

// Subtract returns d minus the span, applying the years, then the
// months and then the days.
func (d Date) Subtract(s Span) (Date, error) {
	return d.Add(s.Negate())
}

func (d Date) milliseconds() int64 {
	return int64(d.DayNumber())*msPerDay + int64(d.tod.Milliseconds())
}

// Sub returns the number of whole days from o to d, truncated toward
// zero, as a Span with zero years and months.
func (d Date) Sub(o Date) Span {
	return Span{Days: int((d.milliseconds() - o.milliseconds()) / msPerDay)}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal
// to or after o.
func (d Date) Compare(o Date) int {
	if c := cmp.Compare(d.DayNumber(), o.DayNumber()); c != 0 {
		return c
	}
	return cmp.Compare(d.tod, o.tod)
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// String returns the date in the canonical YYYY/MM/DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.year, int(d.month), d.day)
}

// DateTimeString returns the date and time of day as YYYY/MM/DD 15:04:05.
func (d Date) DateTimeString() string {
	return d.String() + " " + d.tod.String()
}

// MonthName returns the name of d's month in the specified locale.
func (d Date) MonthName(l Locale) string {
	return d.month.Name(l)
}

// LongString returns the date as "{day} {month name} {year} {era}".
func (d Date) LongString(l Locale) string {
	return fmt.Sprintf("%d %s %d %s", d.day, d.month.Name(l), d.year, l.Era())
}

// MonthRange returns the range from the first to the last day of d's month.
func (d Date) MonthRange() Range {
	first := Date{year: d.year, month: d.month, day: 1}
	last := Date{year: d.year, month: d.month, day: uint8(d.DaysInMonth())}
	return Range{start: first, end: last}
}
