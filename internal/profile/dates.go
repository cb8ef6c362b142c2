package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
)

// DateRange is the outcome of parsing a raw date-range string. Unparseable
// tokens keep their raw text with OK=false so callers can flag instead of
// dropping them.
type DateRange struct {
	Start    string
	End      string
	StartRaw string
	EndRaw   string
	StartOK  bool
	EndOK    bool
	EndOpen  bool
}

var monthsByName = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var (
	// Separator between the two halves of a range. A bare hyphen only counts
	// when space-padded so "2018-06" stays one token.
	rangeSepRe = regexp.MustCompile(`\s+[-–—]\s+|\s*[–—]\s*|\s+to\s+`)

	yearPairRe  = regexp.MustCompile(`(?i)^(\d{4})\s*[-–—]\s*(\d{4}|present|now|current)$`)
	isoYMRe     = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	monthYearRe = regexp.MustCompile(`(?i)^([A-Za-z]{3,9})\.?\s+(\d{4})$`)
	bareYearRe  = regexp.MustCompile(`^\D*(\d{4})\D*$`)
	anyYearRe   = regexp.MustCompile(`(\d{4})`)
	openEndedRe = regexp.MustCompile(`(?i)\b(present|now|current|ongoing)\b`)

	// Loose scan for a date range anywhere in a line, for enrichment when the
	// header pattern match yielded no dates.
	looseRangeRe = regexp.MustCompile(`(?i)([A-Za-z]{3,9}\.?\s+\d{4}|\d{4}(?:-\d{1,2})?)\s*[-–—]\s*(present|now|current|[A-Za-z]{3,9}\.?\s+\d{4}|\d{4}(?:-\d{1,2})?)`)
)

// ParseDateRange parses strings like "Jan 2021 - Present", "2018 - 2020",
// "2018-06 – 2020-12" or "2022 – Present" into ISO YYYY-MM endpoints.
func ParseDateRange(s string) DateRange {
	dr := DateRange{}
	s = strings.TrimSpace(s)
	if s == "" {
		return dr
	}

	if m := yearPairRe.FindStringSubmatch(s); m != nil {
		dr.StartRaw, dr.EndRaw = m[1], m[2]
	} else if loc := rangeSepRe.FindStringIndex(s); loc != nil {
		dr.StartRaw = strings.TrimSpace(s[:loc[0]])
		dr.EndRaw = strings.TrimSpace(s[loc[1]:])
	} else {
		dr.StartRaw = s
	}

	dr.Start, _, dr.StartOK = parseDateToken(dr.StartRaw)
	if dr.EndRaw != "" {
		dr.End, dr.EndOpen, dr.EndOK = parseDateToken(dr.EndRaw)
	}
	return dr
}

// parseDateToken maps one date token to ISO YYYY-MM. "Present" and friends
// report open=true with an empty value.
func parseDateToken(s string) (iso string, open bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false, false
	}
	if openEndedRe.MatchString(s) {
		return "", true, true
	}
	if m := isoYMRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return fmt.Sprintf("%04d-%02d", year, month), false, true
		}
		return "", false, false
	}
	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		if month, found := monthsByName[strings.ToLower(m[1])[:3]]; found {
			year, _ := strconv.Atoi(m[2])
			return fmt.Sprintf("%04d-%02d", year, month), false, true
		}
	}
	if m := bareYearRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%04d-01", year), false, true
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), false, true
	}
	// Last resort: any embedded 4-digit year.
	if m := anyYearRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%04d-01", year), false, true
	}
	return "", false, false
}

// findDateRange scans free text for the first date-range-looking span.
func findDateRange(text string) (string, bool) {
	m := looseRangeRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}
