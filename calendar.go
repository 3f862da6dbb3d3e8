// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"time"
)

const (
	// MinYear and MaxYear are the range of years supported for
	// constructing dates.
	MinYear = 1
	MaxYear = 9666

	// MinAdjustment and MaxAdjustment bound the day offset that a
	// Calendar may apply.
	MinAdjustment = -2
	MaxAdjustment = 2

	// hijriEpoch is the number of days from 0001-01-01 (proleptic
	// Gregorian) to 1 Muharram 1 AH (0622-07-18).
	hijriEpoch = 227013

	daysPerCycle  = 10631
	yearsPerCycle = 30

	secondsPerDay = 24 * 60 * 60
	msPerDay      = secondsPerDay * 1000
)

var daysBeforeMonth = [13]int{0, 30, 59, 89, 118, 148, 177, 207, 236, 266, 295, 325, 355}

// gregorianEpoch is 0001-01-01 in UTC, the origin of absolute day numbers.
var gregorianEpoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// IsLeap returns true if year is a leap year in the tabular
// calendar, ie. one in which the final month has 30 days. There are 11
// leap years in every 30 year cycle.
func IsLeap(year int) bool {
	return floorMod(11*year+14, 30) < 11
}

// DaysInYear returns 355 for leap years and 354 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 355
	}
	return 354
}

// DaysInMonth returns the number of days in the specified month.
// Odd numbered months have 30 days, even numbered months 29 days, except
// for Dhu al-Hijjah which has 30 days in leap years.
func DaysInMonth(year int, month Month) int {
	if month == DhuAlHijjah && IsLeap(year) {
		return 30
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// daysBeforeYear returns the day number (relative to 1 Muharram 1 AH)
// of the first day of year.
func daysBeforeYear(year int) int {
	cycles := floorDiv(year-1, yearsPerCycle)
	days := cycles * daysPerCycle
	for y := cycles*yearsPerCycle + 1; y < year; y++ {
		days += DaysInYear(y)
	}
	return days
}

// dayNumber returns the number of days since 1 Muharram 1 AH. The
// month and day must be valid for year, or in the case of arithmetic,
// day may exceed the month length.
func dayNumber(year int, month Month, day int) int {
	return daysBeforeYear(year) + daysBeforeMonth[month-1] + day - 1
}

// fromDayNumber is the inverse of dayNumber.
func fromDayNumber(n int) (year int, month Month, day int) {
	year = floorDiv(n*yearsPerCycle, daysPerCycle) + 1
	for n < daysBeforeYear(year) {
		year--
	}
	for n >= daysBeforeYear(year+1) {
		year++
	}
	doy := n - daysBeforeYear(year)
	month = 1
	for month < 12 && doy >= daysBeforeMonth[month] {
		month++
	}
	return year, month, doy - daysBeforeMonth[month-1] + 1
}

func validYMD(year int, month Month, day int) error {
	if year < MinYear || year > MaxYear {
		return constructionError("year %v out of range %v..%v", year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return constructionError("month %v out of range 1..12", int(month))
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return constructionError("day %v out of range 1..%v for %04d/%02d", day, dim, year, int(month))
	}
	return nil
}

// Calendar converts between Hijri dates and time.Time values on the
// Gregorian timeline. A Calendar is immutable once created and may
// be used concurrently.
type Calendar struct {
	adjustment int
	loc        *time.Location
	clock      func() time.Time
}

// Option represents an option to NewCalendar.
type Option func(o *options)

type options struct {
	adjustment int
	loc        *time.Location
	clock      func() time.Time
}

// WithAdjustment specifies the number of days, in the range
// MinAdjustment to MaxAdjustment, to add to the tabular calendar to
// account for the regional start of a month.
func WithAdjustment(days int) Option {
	return func(o *options) {
		o.adjustment = days
	}
}

// WithLocation specifies the location used to interpret the wall clock
// of a Date. The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.loc = loc
	}
}

// WithClock specifies the function used to obtain the current time.
// The default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewCalendar returns a new Calendar.
func NewCalendar(opts ...Option) (*Calendar, error) {
	o := options{loc: time.Local, clock: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	if o.adjustment < MinAdjustment || o.adjustment > MaxAdjustment {
		return nil, fmt.Errorf("adjustment %v out of range %v..%v", o.adjustment, MinAdjustment, MaxAdjustment)
	}
	if o.loc == nil {
		return nil, fmt.Errorf("nil location")
	}
	if o.clock == nil {
		return nil, fmt.Errorf("nil clock")
	}
	return &Calendar{adjustment: o.adjustment, loc: o.loc, clock: o.clock}, nil
}

var defaultCalendar = &Calendar{loc: time.Local, clock: time.Now}

// Default returns a Calendar with no adjustment that uses time.Local
// and time.Now.
func Default() *Calendar {
	return defaultCalendar
}

// Adjustment returns the calendar's adjustment in days.
func (c *Calendar) Adjustment() int {
	return c.adjustment
}

// Location returns the calendar's location.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// gregorianDays returns the number of days from 0001-01-01 for the
// date component of t's wall clock.
func gregorianDays(t time.Time) int {
	y, m, d := t.Date()
	wall := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int((wall.Unix() - gregorianEpoch.Unix()) / secondsPerDay)
}

// absToGregorian returns the Gregorian date for an absolute day number.
func absToGregorian(abs int) (int, time.Month, int) {
	return gregorianEpoch.AddDate(0, 0, abs).Date()
}

// ToTime returns the instant corresponding to d, with its wall clock
// interpreted in the calendar's location.
func (c *Calendar) ToTime(d Date) time.Time {
	abs := hijriEpoch + d.DayNumber() - c.adjustment
	y, m, day := absToGregorian(abs)
	return time.Date(y, m, day, d.Hour(), d.Minute(), d.Second(), d.Millisecond()*int(time.Millisecond), c.loc)
}

// ToTimeComponents is like ToTime but validates the supplied components,
// returning an error that wraps ErrConstruction if any is out of range.
func (c *Calendar) ToTimeComponents(year int, month Month, day, hour, minute, second, millisecond int) (time.Time, error) {
	d, err := NewDateTime(year, month, day, hour, minute, second, millisecond)
	if err != nil {
		return time.Time{}, err
	}
	return c.ToTime(d), nil
}

// FromTime returns the Hijri date and time of day corresponding to t's
// wall clock. It fails only if the resulting year is outside of the
// supported range.
func (c *Calendar) FromTime(t time.Time) (Date, error) {
	n := gregorianDays(t) - hijriEpoch + c.adjustment
	y, m, d := fromDayNumber(n)
	if y < MinYear || y > MaxYear {
		return Date{}, constructionError("%v is outside of the supported range", t.Format(time.DateOnly))
	}
	return Date{
		year:  int32(y),
		month: m,
		day:   uint8(d),
		tod:   NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond)),
	}, nil
}

func (c *Calendar) mapTime(t time.Time, fn func(Date) (Date, error)) (time.Time, error) {
	d, err := c.FromTime(t)
	if err != nil {
		return time.Time{}, err
	}
	if d, err = fn(d); err != nil {
		return time.Time{}, err
	}
	r := c.ToTime(d)
	return time.Date(r.Year(), r.Month(), r.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
}

// AddDays adds the specified number of days to t.
func (c *Calendar) AddDays(t time.Time, days int) (time.Time, error) {
	return c.mapTime(t, func(d Date) (Date, error) { return d.AddDays(days) })
}

// AddMonths adds the specified number of Hijri months to t, clamping
// the day of the month to the length of the resulting month.
func (c *Calendar) AddMonths(t time.Time, months int) (time.Time, error) {
	return c.mapTime(t, func(d Date) (Date, error) { return d.AddMonths(months) })
}

// AddYears adds the specified number of Hijri years to t.
func (c *Calendar) AddYears(t time.Time, years int) (time.Time, error) {
	return c.mapTime(t, func(d Date) (Date, error) { return d.AddYears(years) })
}

// Now returns the current date and time of day in the calendar's location.
func (c *Calendar) Now() Date {
	d, err := c.FromTime(c.clock().In(c.loc))
	if err != nil {
		panic(fmt.Sprintf("clock is outside of the supported range: %v", err))
	}
	return d
}

// Today returns the current date with a zero time of day.
func (c *Calendar) Today() Date {
	return c.Now().Date()
}

// Weekday returns the day of the week for d.
func (c *Calendar) Weekday(d Date) time.Weekday {
	// 0001-01-01 was a Monday.
	return time.Weekday(floorMod(hijriEpoch+d.DayNumber()-c.adjustment+1, 7))
}

// IsWeekend returns true if d falls on a weekend day for the
// specified locale: Friday for Arabic, Saturday and Sunday otherwise.
func (c *Calendar) IsWeekend(d Date, l Locale) bool {
	return l.IsWeekend(c.Weekday(d))
}

// Now returns the current date and time using the Default calendar.
func Now() Date {
	return defaultCalendar.Now()
}

// Today returns the current date using the Default calendar.
func Today() Date {
	return defaultCalendar.Today()
}
