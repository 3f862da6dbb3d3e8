// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"golang.org/x/text/language"
)

// Format formats d according to layout and tag:
//
//   - a non-empty layout is interpreted as per time.Time.Format and
//     applied to the Gregorian instant corresponding to d.
//   - an empty layout with a tag that prefers the Hijri calendar (see
//     PrefersHijri) returns the long form "{day} {month name} {year} {era}"
//     using Arabic names for Arabic tags and English names otherwise.
//   - an empty layout with any other tag returns d.String().
func (c *Calendar) Format(d Date, layout string, tag language.Tag) string {
	if len(layout) > 0 {
		return c.ToTime(d).Format(layout)
	}
	if PrefersHijri(tag) {
		return d.LongString(LocaleFor(tag))
	}
	return d.String()
}
