package profile

import (
	"regexp"
	"strings"
)

var titleAtCompanyRe = regexp.MustCompile(`(?i)^\S.{0,60}\s+(at|@)\s+\S`)

// SplitEntries partitions a section span into one block per entry. Entries
// are delimited by blank-line runs or by a line that opens a new entry
// header. Bullet lines always stay with the preceding header. A span with
// no delimiters at all comes back as a single block.
func SplitEntries(span string) []string {
	lines := strings.Split(span, "\n")

	var blocks []string
	var current []string
	blankRun := false

	flush := func() {
		if block := strings.TrimSpace(strings.Join(current, "\n")); block != "" {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			blankRun = len(current) > 0
			continue
		}
		if blankRun {
			flush()
			blankRun = false
		} else if len(current) > 0 && opensNewEntry(line, current) {
			flush()
		}
		current = append(current, raw)
	}
	flush()

	if len(blocks) == 0 {
		return nil
	}
	return blocks
}

// opensNewEntry reports whether a line looks like the header of a fresh
// entry rather than a continuation of the block accumulated so far.
func opensNewEntry(line string, current []string) bool {
	if isBulletLine(line) {
		return false
	}
	if experienceHeaderLine(line) {
		return true
	}
	// A short line carrying a date range reads as a new header; long prose
	// that merely mentions years does not. Exception: when the block so far
	// is a short dateless header stack ("Title" / "Company"), the date line
	// completes that header instead of opening the next entry.
	if len(line) <= maxHeadingLen+20 && looseRangeRe.MatchString(line) {
		return !datelessHeaderStack(current)
	}
	return false
}

// datelessHeaderStack reports whether the accumulated lines form a 1-2 line
// title/company stack still waiting for its date line.
func datelessHeaderStack(current []string) bool {
	n := 0
	for _, raw := range current {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if isBulletLine(line) || looseRangeRe.MatchString(line) {
			return false
		}
		n++
	}
	return n >= 1 && n <= 2
}

// experienceHeaderLine matches the recognized title/company header shapes.
func experienceHeaderLine(line string) bool {
	if isBulletLine(line) {
		return false
	}
	for _, pat := range experienceHeaderPatterns {
		if pat.MatchString(line) {
			return true
		}
	}
	return titleAtCompanyRe.MatchString(line) && looseRangeRe.MatchString(line)
}
