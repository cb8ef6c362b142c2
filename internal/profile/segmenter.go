package profile

import (
	"strings"

	"github.com/soupine/linkedin-backend-extraction/internal/textmatch"
)

// Section labels a contiguous region of profile text.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionUnknown    Section = "unknown"
)

// headingRule pairs a section with one heading synonym and the similarity
// it must reach. The slice order is the registration order used to break
// exact ties, so it must stay stable.
type headingRule struct {
	section   Section
	synonym   string
	threshold float64
}

var headingRules = []headingRule{
	{SectionSummary, "Summary", 0.80},
	{SectionSummary, "Professional Summary", 0.80},
	{SectionSummary, "About", 0.80},
	{SectionSummary, "Profile", 0.80},
	{SectionSummary, "Objective", 0.80},
	{SectionExperience, "Experience", 0.80},
	{SectionExperience, "Work Experience", 0.80},
	{SectionExperience, "Professional Experience", 0.80},
	{SectionExperience, "Work History", 0.80},
	{SectionExperience, "Employment History", 0.80},
	{SectionEducation, "Education", 0.80},
	{SectionEducation, "Academic Background", 0.80},
	{SectionEducation, "Education and Training", 0.80},
	{SectionSkills, "Skills", 0.80},
	{SectionSkills, "Technical Skills", 0.80},
	{SectionSkills, "Core Competencies", 0.80},
}

// maxHeadingLen filters out prose lines before fuzzy matching; real headings
// are short.
const maxHeadingLen = 40

type headingMatch struct {
	lineIdx int
	section Section
}

// SplitSections assigns every line of text to a labeled section span.
// Heading lines themselves are consumed. With no recognized headings the
// whole text is treated as the summary.
func SplitSections(text string, sim textmatch.Similarity) map[Section]string {
	if sim == nil {
		sim = textmatch.Levenshtein
	}

	lines := strings.Split(text, "\n")
	var headings []headingMatch
	summaryHeadingSeen := false
	for i, line := range lines {
		if section, ok := matchHeading(line, sim); ok {
			headings = append(headings, headingMatch{lineIdx: i, section: section})
			if section == SectionSummary {
				summaryHeadingSeen = true
			}
		}
	}

	sections := make(map[Section]string)
	if len(headings) == 0 {
		sections[SectionSummary] = strings.TrimSpace(text)
		return sections
	}

	// Text before the first heading: summary when it reads like short prose
	// and no explicit summary heading claims the label, otherwise unknown.
	if pre := strings.TrimSpace(strings.Join(lines[:headings[0].lineIdx], "\n")); pre != "" {
		if !summaryHeadingSeen && isShortProse(pre) {
			appendSpan(sections, SectionSummary, pre)
		} else {
			appendSpan(sections, SectionUnknown, pre)
		}
	}

	for i, h := range headings {
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].lineIdx
		}
		span := strings.TrimSpace(strings.Join(lines[h.lineIdx+1:end], "\n"))
		if span != "" {
			appendSpan(sections, h.section, span)
		}
	}
	return sections
}

// matchHeading reports which section a line's heading belongs to, if any.
// Every rule is scored; a strictly higher similarity wins, an exact tie
// keeps the earlier-registered rule.
func matchHeading(line string, sim textmatch.Similarity) (Section, bool) {
	candidate := strings.TrimSpace(line)
	candidate = strings.TrimRight(candidate, ":")
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || len(candidate) > maxHeadingLen || isBulletLine(candidate) {
		return "", false
	}

	var best Section
	bestScore := 0.0
	found := false
	for _, rule := range headingRules {
		score := sim(candidate, rule.synonym)
		if score >= rule.threshold && score > bestScore {
			best = rule.section
			bestScore = score
			found = true
		}
	}
	return best, found
}

// isShortProse reports whether text is a single paragraph with no bullets.
func isShortProse(text string) bool {
	if strings.Contains(text, "\n\n") {
		return false
	}
	for _, line := range strings.Split(text, "\n") {
		if isBulletLine(strings.TrimSpace(line)) {
			return false
		}
	}
	return true
}

func isBulletLine(line string) bool {
	for _, marker := range []string{"•", "◦", "·", "*", "- ", "– "} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

func appendSpan(sections map[Section]string, section Section, span string) {
	if existing, ok := sections[section]; ok {
		sections[section] = existing + "\n\n" + span
		return
	}
	sections[section] = span
}
