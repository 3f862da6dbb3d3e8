// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Month represents a Hijri month, 1 (Muharram) through 12 (Dhu al-Hijjah).
type Month int

const (
	Muharram Month = iota + 1
	Safar
	RabiAlAwwal
	RabiAlThani
	JumadaAlAwwal
	JumadaAlThani
	Rajab
	Shaban
	Ramadan
	Shawwal
	DhuAlQidah
	DhuAlHijjah
)

var englishMonths = [12]string{
	"Muharram",
	"Safar",
	"Rabi' al-awwal",
	"Rabi' al-thani",
	"Jumada al-awwal",
	"Jumada al-thani",
	"Rajab",
	"Sha'ban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qi'dah",
	"Dhu al-Hijjah",
}

var arabicMonths = [12]string{
	"محرم",
	"صفر",
	"ربيع الأول",
	"ربيع الآخر",
	"جمادى الأولى",
	"جمادى الآخرة",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذو القعدة",
	"ذو الحجة",
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= Muharram && m <= DhuAlHijjah
}

// Name returns the name of the month in the specified locale.
func (m Month) Name(l Locale) string {
	if !m.Valid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	if l == Arabic {
		return arabicMonths[m-1]
	}
	return englishMonths[m-1]
}

// String returns the English name of the month.
func (m Month) String() string {
	return m.Name(English)
}

// ParseNumericMonth parses a numeric month value in the range 1-12. Any
// Unicode decimal digits are accepted.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(normalizeDigits(strings.TrimSpace(val)))
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name in either English or Arabic. Names are
// compared ignoring case and apostrophes, so "rabi al-awwal" and
// "Rabi' al-Awwal" are equivalent.
func ParseMonth(val string) (Month, error) {
	key := monthKey(val)
	for i := range englishMonths {
		if key == monthKeys[0][i] || key == monthKeys[1][i] {
			return Month(i + 1), nil
		}
	}
	if m, ok := monthAliases[key]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	return m.Parse(string(text))
}

// MarshalYAML implements yaml.Marshaler.
func (m Month) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Month) UnmarshalYAML(node *yaml.Node) error {
	return m.Parse(node.Value)
}
