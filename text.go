// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiDigit maps any Unicode decimal digit (category Nd) to its ASCII
// equivalent. Decimal digits are always encoded as contiguous runs
// starting at zero.
func asciiDigit(r rune) rune {
	if r < 0x80 || !unicode.Is(unicode.Nd, r) {
		return r
	}
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return '0' + (r-lo)%10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return '0' + (r-lo)%10
		}
	}
	return r
}

// normalizeDigits returns s in NFC form with all decimal digits
// replaced by their ASCII equivalents.
func normalizeDigits(s string) string {
	out, _, err := transform.String(transform.Chain(norm.NFC, runes.Map(asciiDigit)), s)
	if err != nil {
		return s
	}
	return out
}

func isApostrophe(r rune) bool {
	switch r {
	case '\'', '‘', '’', 'ʻ', 'ʼ', 'ʾ', 'ʿ', '`':
		return true
	}
	return false
}

// foldArabic removes the orthographic variation commonly found in
// month names: hamza and madda forms of alef, and ta marbuta.
func foldArabic(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ', 'ٱ':
		return 'ا'
	case 'ة':
		return 'ه'
	case 'ى':
		return 'ي'
	case '-', '_':
		return ' '
	}
	return r
}

// monthKey returns the comparison key used to match month names.
func monthKey(s string) string {
	t := transform.Chain(
		norm.NFC,
		runes.Remove(runes.Predicate(isApostrophe)),
		runes.Map(foldArabic),
		cases.Fold(),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// monthKeys holds the comparison keys for the English and Arabic month
// names respectively.
var monthKeys = func() [2][12]string {
	var keys [2][12]string
	for i := range englishMonths {
		keys[0][i] = monthKey(englishMonths[i])
		keys[1][i] = monthKey(arabicMonths[i])
	}
	return keys
}()

// monthAliases are alternate spellings in common use.
var monthAliases = func() map[string]Month {
	aliases := map[string]Month{}
	for _, a := range []struct {
		name  string
		month Month
	}{
		{"ربيع الثاني", RabiAlThani},
		{"جمادى الأول", JumadaAlAwwal},
		{"جمادى الثانية", JumadaAlThani},
		{"Rabi al-akhir", RabiAlThani},
		{"Jumada al-ula", JumadaAlAwwal},
		{"Jumada al-akhirah", JumadaAlThani},
		{"Dhu al-Qadah", DhuAlQidah},
		{"Dhul Qidah", DhuAlQidah},
		{"Dhul Hijjah", DhuAlHijjah},
	} {
		aliases[monthKey(a.name)] = a.month
	}
	return aliases
}()
