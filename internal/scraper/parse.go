package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ----------------------------------------------------------------------------
// Value parsers
//
// Every parser here is total: malformed input yields ok=false, never an
// error. A field that cannot be parsed is simply absent from the record.
// ----------------------------------------------------------------------------

var (
	playerIDRe     = regexp.MustCompile(`spieler/(\d+)`)
	shirtNumberRe  = regexp.MustCompile(`#(\d+)`)
	heightMetersRe = regexp.MustCompile(`(\d+)[.,](\d+)\s*m`)
	heightCMRe     = regexp.MustCompile(`(\d+)\s*cm`)
	weightRe       = regexp.MustCompile(`(\d+)`)
	birthYearRe    = regexp.MustCompile(`\b(19\d{2}|20[0-2]\d)\b`)
	ageRe          = regexp.MustCompile(`\((\d{1,2})\)`)
	numberTokenRe  = regexp.MustCompile(`[\d.,]+`)
	millionsRe     = regexp.MustCompile(`(?i)(mln|mil|m)\b`)
	thousandsRe    = regexp.MustCompile(`(?i)(mila|k)\b`)
	updateDateRe   = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`)
	parenSuffixRe  = regexp.MustCompile(`\([^)]*\)`)
)

// cleanText collapses runs of whitespace (including non-breaking spaces
// already decoded by the HTML parser) into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractPlayerID pulls the numeric player id out of a profile URL.
func ExtractPlayerID(rawURL string) (string, bool) {
	m := playerIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseShirtNumber reads a "#N" token anywhere in the text.
func ParseShirtNumber(text string) (int, bool) {
	m := shirtNumberRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseHeight converts "1,77 m" / "1.77 m" or "177 cm" to centimeters.
func ParseHeight(text string) (int, bool) {
	if m := heightMetersRe.FindStringSubmatch(text); m != nil {
		meters, err := strconv.ParseFloat(m[1]+"."+m[2], 64)
		if err != nil {
			return 0, false
		}
		return int(meters*100 + 0.5), true
	}
	if m := heightCMRe.FindStringSubmatch(text); m != nil {
		cm, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return cm, true
	}
	return 0, false
}

// ParseWeight reads the first integer in a weight label ("72 kg").
func ParseWeight(text string) (int, bool) {
	m := weightRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	kg, err := strconv.Atoi(m[1])
	if err != nil || kg == 0 {
		return 0, false
	}
	return kg, true
}

// ParseBirthInfo extracts the birth year and age from a date-of-birth label
// such as "5 feb 1999 (26)". An explicit four-digit year (1900 through 2029)
// always wins; the age in parentheses is only used to derive the year when
// no explicit year is present.
func ParseBirthInfo(text string, currentYear int) (birthYear *int, age *int) {
	if m := ageRe.FindStringSubmatch(text); m != nil {
		if a, err := strconv.Atoi(m[1]); err == nil && a > 0 {
			age = &a
		}
	}
	if m := birthYearRe.FindStringSubmatch(text); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil {
			birthYear = &y
			return birthYear, age
		}
	}
	if age != nil {
		derived := currentYear - *age
		birthYear = &derived
	}
	return birthYear, age
}

// dateLayouts are the formats contract-expiry dates appear in on English
// pages. Localized month names fall through to the bare-year fallback.
var dateLayouts = []string{
	"2 Jan 2006",
	"Jan 2, 2006",
	"02/01/2006",
	"2006-01-02",
}

// ParseDate parses a date label, dropping any parenthesized suffix. When no
// layout matches but a four-digit year is present, only the year is
// returned and ok is still true.
func ParseDate(text string) (t time.Time, yearOnly bool, ok bool) {
	cleaned := cleanText(parenSuffixRe.ReplaceAllString(text, ""))
	if cleaned == "" {
		return time.Time{}, false, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed, false, true
		}
	}
	if m := birthYearRe.FindStringSubmatch(cleaned); m != nil {
		y, _ := strconv.Atoi(m[1])
		return time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC), true, true
	}
	return time.Time{}, false, false
}

// ParseContractYear reads the expiry year token out of a contract label.
func ParseContractYear(text string) (string, bool) {
	m := birthYearRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseMarketValue converts a localized market value label to millions of
// euros: "3,50 mln €" yields 3.5, "500 k €" and "500 mila" yield 0.5. Dots
// are always treated as thousands separators and stripped before the
// decimal comma is converted ("1.500 mila" is 1500 thousand, and a
// dot-decimal like "3.50m" reads as 350), matching how the site formats
// values.
func ParseMarketValue(text string) (float64, bool) {
	cleaned := strings.ToLower(text)
	for _, sym := range []string{"€", "$", "£"} {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}
	cleaned = cleanText(cleaned)
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}

	millions := millionsRe.MatchString(cleaned)
	thousands := thousandsRe.MatchString(cleaned)

	token := numberTokenRe.FindString(cleaned)
	if token == "" {
		return 0, false
	}
	token = strings.ReplaceAll(token, ".", "")
	token = strings.ReplaceAll(token, ",", ".")
	value, err := strconv.ParseFloat(strings.Trim(token, "."), 64)
	if err != nil {
		return 0, false
	}

	switch {
	case thousands:
		return value / 1000, true
	case millions:
		return value, true
	default:
		// Unlabeled values are assumed to already be in millions.
		return value, true
	}
}

// ParseUpdateDate reads the "dd/mm/yyyy" last-updated stamp from a market
// value block.
func ParseUpdateDate(text string) (string, bool) {
	m := updateDateRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
