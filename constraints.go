// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"slices"
	"strings"
)

// Constraints represents constraints on dates such as weekends or
// custom dates to exclude. Custom dates take precedence over weekdays
// and weekends. Weekends are determined by the Locale.
type Constraints struct {
	Weekdays bool   // If true, include weekdays
	Weekends bool   // If true, include weekends
	Locale   Locale // Locale used to determine the weekend
	Custom   []Date // If non-empty, exclude these dates
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Custom) > 0 {
		out.WriteString("excluding custom dates: ")
		for i, d := range dc.Custom {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(d.String())
		}
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case dc.Weekdays:
		out.WriteString("weekdays only")
	case dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given date satisfies the constraints.
// The calendar is used to determine the day of the week. An empty
// Constraints includes all dates.
func (dc Constraints) Include(cal *Calendar, d Date) bool {
	if len(dc.Custom) > 0 && slices.Contains(dc.Custom, d.Date()) {
		return false
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return !cal.IsWeekend(d, dc.Locale)
	case dc.Weekends:
		return cal.IsWeekend(d, dc.Locale)
	}
	return true
}

// Empty returns true if no constraints are specified.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Custom) == 0
}
