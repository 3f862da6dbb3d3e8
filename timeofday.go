// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay represents a time of day to millisecond precision. The
// packed representation orders the same way as the times it represents.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute,
// second and millisecond. No validation is performed.
func NewTimeOfDay(hour, minute, second, millisecond int) TimeOfDay {
	return TimeOfDay(hour<<26 | minute<<20 | second<<14 | millisecond)
}

func (t TimeOfDay) Hour() int {
	return int(t >> 26)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 20 & 0x3f)
}

func (t TimeOfDay) Second() int {
	return int(t >> 14 & 0x3f)
}

func (t TimeOfDay) Millisecond() int {
	return int(t & 0x3fff)
}

// Milliseconds returns the number of milliseconds since midnight.
func (t TimeOfDay) Milliseconds() int {
	return ((t.Hour()*60+t.Minute())*60+t.Second())*1000 + t.Millisecond()
}

func timeOfDayFromMilliseconds(ms int) TimeOfDay {
	return NewTimeOfDay(ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

func validTimeOfDay(hour, minute, second, millisecond int) error {
	switch {
	case hour < 0 || hour > 23:
		return constructionError("hour %v out of range 0..23", hour)
	case minute < 0 || minute > 59:
		return constructionError("minute %v out of range 0..59", minute)
	case second < 0 || second > 59:
		return constructionError("second %v out of range 0..59", second)
	case millisecond < 0 || millisecond > 999:
		return constructionError("millisecond %v out of range 0..999", millisecond)
	}
	return nil
}

// String returns the time of day as 15:04:05, with a .000 millisecond
// suffix when the millisecond is non-zero.
func (t TimeOfDay) String() string {
	if ms := t.Millisecond(); ms != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour(), t.Minute(), t.Second(), ms)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func parseField(name, val string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("invalid %v: %s", name, val)
	}
	return n, nil
}

// Parse val in formats '08[:12[:10[.500]]][am|pm]'. Any Unicode
// decimal digits are accepted.
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08[:12[:10[.500]]][am|pm]'")
	}
	val = strings.TrimSpace(strings.ToLower(normalizeDigits(val)))
	ampm := ""
	for _, suffix := range []string{"am", "pm"} {
		if strings.HasSuffix(val, suffix) {
			val, ampm = strings.TrimSpace(strings.TrimSuffix(val, suffix)), suffix
		}
	}
	parts := strings.Split(val, ":")
	if len(parts) > 3 {
		return fmt.Errorf("invalid format %q, expected '08[:12[:10[.500]]]'", val)
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	msPart := "0"
	if sec, ms, ok := strings.Cut(parts[2], "."); ok {
		parts[2], msPart = sec, ms
	}
	maxHour := 23
	if len(ampm) > 0 {
		maxHour = 12
	}
	hour, err := parseField("hour", parts[0], 0, maxHour)
	if err != nil {
		return err
	}
	switch {
	case ampm == "pm" && hour < 12:
		hour += 12
	case ampm == "am" && hour == 12:
		hour = 0
	}
	minute, err := parseField("minute", parts[1], 0, 59)
	if err != nil {
		return err
	}
	second, err := parseField("second", parts[2], 0, 59)
	if err != nil {
		return err
	}
	ms, err := parseField("millisecond", msPart, 0, 999)
	if err != nil {
		return err
	}
	*t = NewTimeOfDay(hour, minute, second, ms)
	return nil
}
