// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale determines the language used for month names and era
// markers and the days considered to be the weekend.
type Locale int

const (
	English Locale = iota
	Arabic
)

func (l Locale) String() string {
	if l == Arabic {
		return "ar"
	}
	return "en"
}

// Era returns the era marker for the locale.
func (l Locale) Era() string {
	if l == Arabic {
		return "هـ"
	}
	return "AH"
}

// IsWeekend returns true if w is a weekend day for the locale.
func (l Locale) IsWeekend(w time.Weekday) bool {
	if l == Arabic {
		return w == time.Friday
	}
	return w == time.Saturday || w == time.Sunday
}

var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

// LocaleFor returns the supported Locale that best matches tag, with
// English used when there is no reasonable match.
func LocaleFor(tag language.Tag) Locale {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return Locale(idx)
}

// ParseLocale parses a BCP 47 language tag such as "ar-SA" or
// "en-US-u-ca-islamic" and returns both the tag and the Locale that
// best matches it.
func ParseLocale(s string) (language.Tag, Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, English, err
	}
	return tag, LocaleFor(tag), nil
}

// PrefersHijri returns true if tag is Arabic or explicitly requests an
// Islamic calendar via the "ca" Unicode extension.
func PrefersHijri(tag language.Tag) bool {
	if base, _ := tag.Base(); base.String() == "ar" {
		return true
	}
	return strings.HasPrefix(tag.TypeForKey("ca"), "islamic")
}
