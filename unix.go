// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import "time"

// Unix returns d as seconds since the Unix epoch, interpreting d's wall
// clock in the calendar's location.
func (c *Calendar) Unix(d Date) int64 {
	return c.ToTime(d).Unix()
}

// FromUnix returns the date for the specified number of seconds since
// the Unix epoch, as seen from the calendar's location. It fails only
// if the resulting year is outside of the supported range.
func (c *Calendar) FromUnix(secs int64) (Date, error) {
	return c.FromTime(time.Unix(secs, 0).UTC().In(c.loc))
}
