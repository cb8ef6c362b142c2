package profile

import (
	"regexp"
	"strings"
)

// Header shapes seen in real exports, tried in order:
//
//	A: "Title at Company (Dates) – Location"
//	B: "Company — Title (Dates)"
//	C: "Title, Company (Dates)"
//	D: "Title at Company, Dates[, Location]"
var experienceHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?P<title>.+?)\s+(?:at|@)\s+(?P<company>.+?)\s*\((?P<dates>[^)]+)\)\s*(?P<rest>.*)$`),
	regexp.MustCompile(`^(?P<company>.+?)\s+[—–-]\s+(?P<title>.+?)\s*\((?P<dates>[^)]+)\)\s*(?P<rest>.*)$`),
	regexp.MustCompile(`^(?P<title>[^,]+?),\s+(?P<company>.+?)\s*\((?P<dates>[^)]+)\)\s*(?P<rest>.*)$`),
	regexp.MustCompile(`(?i)^(?P<title>.+?)\s+(?:at|@)\s+(?P<company>[^,|]+?)\s*[,|]\s*(?P<dates>[^,|]*\d{4}[^,|]*)(?:\s*[,|]\s*(?P<rest>.+))?$`),
}

var hasAlnumRe = regexp.MustCompile(`[\p{L}\p{N}]`)

// Bare connector headers carry no dates: "Title at Company", "Title | Company".
var bareConnectorRe = regexp.MustCompile(`(?i)^(?P<title>.+?)\s+(?:at|@|\|)\s+(?P<company>.+)$`)

var locationTailRe = regexp.MustCompile(`(?:\s*[–·—-]\s*|\s+\|\s+)(?P<loc>[^|·–—-]+)$`)

// ParseExperienceBlock extracts one ExperienceEntry from an entry block.
// Parsing never fails outright: unmatched blocks degrade to the two-line
// heuristic with a low-confidence flag, and unparseable dates keep their
// raw text plus a note.
func ParseExperienceBlock(block string, opts Options) ExperienceEntry {
	entry := ExperienceEntry{}
	lines := contentLines(block)
	if len(lines) == 0 || !hasAlnumRe.MatchString(block) {
		return entry
	}

	first := lines[0]
	rest := lines[1:]

	if groups, idx, ok := matchHeaderPatterns(first); ok {
		entry.Title = strings.TrimSpace(groups["title"])
		entry.Company = strings.TrimSpace(groups["company"])
		applyDateRange(&entry, groups["dates"])

		tail := strings.TrimSpace(groups["rest"])
		var descHead string
		switch {
		case tail == "":
		case idx == len(experienceHeaderPatterns)-1:
			// Pattern D already consumed the comma, so the tail is the
			// location itself.
			entry.Location = tail
		default:
			if m := findNamed(locationTailRe, tail); m != nil {
				entry.Location = strings.TrimSpace(m["loc"])
			} else {
				descHead = tail
			}
		}
		entry.Description = joinDescription(descHead, rest)
	} else if m := findNamed(bareConnectorRe, first); m != nil {
		entry.Title = strings.TrimSpace(m["title"])
		entry.Company = strings.TrimSpace(m["company"])
		entry.Description = joinDescription("", rest)
		entry.LowConfidence = true
		entry.Notes = append(entry.Notes, "no date range found in entry header")
	} else {
		// Two-line heuristic: first non-bullet line is the title, the next
		// the company.
		entry.Title = first
		if len(rest) > 0 {
			entry.Company = rest[0]
			entry.Description = joinDescription("", rest[1:])
		}
		entry.LowConfidence = true
		entry.Notes = append(entry.Notes, "title and company guessed from line order")
	}

	if entry.StartDate == "" && entry.EndDate == "" {
		if raw, ok := findDateRange(block); ok {
			applyDateRange(&entry, raw)
		}
	}

	checkDateOrder(&entry)
	entry.Title = NormalizeTitle(entry.Title, opts)
	return entry
}

// applyDateRange fills entry dates from a raw range string. Tokens that do
// not parse are retained verbatim and flagged.
func applyDateRange(entry *ExperienceEntry, raw string) {
	dr := ParseDateRange(raw)
	switch {
	case dr.StartOK:
		entry.StartDate = dr.Start
	case dr.StartRaw != "":
		entry.StartDate = dr.StartRaw
		entry.LowConfidence = true
		entry.Notes = append(entry.Notes, "could not parse start date: "+dr.StartRaw)
	}
	switch {
	case dr.EndOpen:
		entry.EndDate = "" // open-ended, reads as present
	case dr.EndOK:
		entry.EndDate = dr.End
	case dr.EndRaw != "":
		entry.EndDate = dr.EndRaw
		entry.LowConfidence = true
		entry.Notes = append(entry.Notes, "could not parse end date: "+dr.EndRaw)
	}
}

var isoFullRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// checkDateOrder flags entries whose parsed start follows the parsed end.
// ISO YYYY-MM compares correctly as a string.
func checkDateOrder(entry *ExperienceEntry) {
	if !isoFullRe.MatchString(entry.StartDate) || !isoFullRe.MatchString(entry.EndDate) {
		return
	}
	if entry.StartDate > entry.EndDate {
		entry.LowConfidence = true
		entry.Notes = append(entry.Notes, "start date is after end date")
	}
}

var educationLineRe = regexp.MustCompile(`^(?P<school>.+?)\s+[–—-]\s+(?P<degree>[^,()]+?)(?:,\s*(?P<field>[^()]+?))?\s*(?:\((?P<years>[^)]+)\))?$`)
var yearSpanRe = regexp.MustCompile(`(?i)(?P<start>\d{4})\s*[–—-]\s*(?P<end>\d{4}|present|now|current)`)

// ParseEducationBlock extracts one EducationEntry from an entry block,
// expecting lines like "School – Degree, Field (2018–2022)".
func ParseEducationBlock(block string) EducationEntry {
	entry := EducationEntry{}
	lines := contentLines(block)
	if len(lines) == 0 {
		return entry
	}

	if m := findNamed(educationLineRe, lines[0]); m != nil {
		entry.School = strings.TrimSpace(m["school"])
		entry.Degree = strings.TrimSpace(m["degree"])
		entry.Field = strings.TrimSpace(m["field"])
		applyYearSpan(&entry, m["years"])
	} else {
		entry.School = lines[0]
		entry.LowConfidence = true
		entry.Notes = append(entry.Notes, "only the school could be identified")
	}

	if entry.StartYear == "" && entry.EndYear == "" && len(lines) > 1 {
		applyYearSpan(&entry, strings.Join(lines[1:], " "))
	}
	return entry
}

func applyYearSpan(entry *EducationEntry, raw string) {
	m := findNamed(yearSpanRe, raw)
	if m == nil {
		if raw = strings.TrimSpace(raw); raw != "" {
			entry.LowConfidence = true
			entry.Notes = append(entry.Notes, "could not parse years: "+raw)
		}
		return
	}
	entry.StartYear = m["start"]
	if end := strings.ToLower(m["end"]); end != "present" && end != "now" && end != "current" {
		entry.EndYear = m["end"]
	}
}

func matchHeaderPatterns(line string) (map[string]string, int, bool) {
	for i, pat := range experienceHeaderPatterns {
		if m := findNamed(pat, line); m != nil {
			return m, i, true
		}
	}
	return nil, -1, false
}

// findNamed returns the named submatches of re against s, or nil.
func findNamed(re *regexp.Regexp, s string) map[string]string {
	match := re.FindStringSubmatch(s)
	if match == nil {
		return nil
	}
	out := make(map[string]string, len(match))
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			out[name] = match[i]
		}
	}
	return out
}

func contentLines(block string) []string {
	var lines []string
	for _, raw := range strings.Split(block, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// joinDescription keeps the internal line structure of the description as a
// single blob for downstream quality scoring.
func joinDescription(head string, lines []string) string {
	parts := make([]string, 0, len(lines)+1)
	if head != "" {
		parts = append(parts, head)
	}
	parts = append(parts, lines...)
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
