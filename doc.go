// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hijri provides support for the tabular Hijri (Islamic lunar)
// calendar: a Date type with calendar aware arithmetic, Spans of years,
// months and days, Ranges of dates with set operations and a parser that
// accepts numeric and named month formats in English and Arabic, with any
// Unicode decimal digits.
//
// Dates are independent of any conversion to the Gregorian timeline.
// Conversions are performed by a Calendar, which applies an adjustment
// of a few days to account for regional variation in the start of the
// month, and interprets wall clock times in a given location.
//
//	cal, _ := hijri.NewCalendar(hijri.WithAdjustment(1))
//	today := cal.Today()
//	eid := hijri.MustNewDate(today.Year(), hijri.Shawwal, 1)
//	fmt.Println(cal.ToTime(eid).Format(time.DateOnly))
package hijri
