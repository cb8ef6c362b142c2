package profile

import (
	"regexp"
	"sort"
	"strings"

	"github.com/soupine/linkedin-backend-extraction/internal/textmatch"
)

var skillDelimRe = regexp.MustCompile(`(^|\s)[-*]\s|[,;|\n•◦·]`)

const skillThreshold = 0.85

// ExtractSkills tokenizes the skills section, sweeps extra prose for known
// skills, and returns the normalized, order-stable, exactly-deduplicated
// list. Dedup is exact on the case-folded normalized form; fuzzy dedup
// would merge distinct skills.
func ExtractSkills(skillsText string, extraTexts []string, opts Options) []string {
	var raw []string
	for _, token := range skillDelimRe.Split(skillsText, -1) {
		if token = strings.TrimSpace(token); token != "" {
			raw = append(raw, token)
		}
	}
	raw = append(raw, skillsFromProse(extraTexts, opts)...)

	seen := make(map[string]bool, len(raw))
	var out []string
	for _, token := range raw {
		norm := NormalizeSkill(token, opts)
		key := strings.ToLower(norm)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, norm)
	}
	return out
}

// skillsFromProse scans free-form text for canonical skills and aliases
// appearing as whole words, an ordered pattern table standing in for NER.
func skillsFromProse(texts []string, opts Options) []string {
	if len(texts) == 0 {
		return nil
	}
	blob := strings.ToLower(strings.Join(texts, " "))
	blob = nonWordRe.ReplaceAllString(blob, " ")
	words := strings.Fields(blob)
	for i, w := range words {
		// Sentence-final periods, but not the dots in "node.js" or ".net".
		if trimmed := strings.TrimRight(w, "."); trimmed != "" {
			words[i] = trimmed
		}
	}
	padded := " " + strings.Join(words, " ") + " "

	var found []string
	for _, skill := range opts.canonicalSkills() {
		if containsWord(padded, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	aliases := opts.skillAliases()
	keys := make([]string, 0, len(aliases))
	for alias := range aliases {
		keys = append(keys, alias)
	}
	sort.Strings(keys)
	for _, alias := range keys {
		if containsWord(padded, alias) {
			found = append(found, alias)
		}
	}
	return found
}

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}+#.-]+`)

func containsWord(paddedBlob, word string) bool {
	return strings.Contains(paddedBlob, " "+word+" ")
}

// NormalizeSkill maps a raw token to its canonical spelling: alias table
// first, then fuzzy match against the canonical list. Below the threshold
// the raw token passes through unchanged.
func NormalizeSkill(raw string, opts Options) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if canonical, ok := opts.skillAliases()[strings.ToLower(raw)]; ok {
		return canonical
	}
	match, score := textmatch.BestMatch(raw, opts.canonicalSkills(), opts.similarity())
	if score >= skillThreshold {
		return match
	}
	return raw
}

// MissingRecommended returns recommended skills absent from the extracted
// set, preserving recommended-list order.
func MissingRecommended(extracted, recommended []string) []string {
	have := make(map[string]bool, len(extracted))
	for _, s := range extracted {
		have[strings.ToLower(s)] = true
	}
	var missing []string
	for _, want := range recommended {
		if !have[strings.ToLower(want)] {
			missing = append(missing, want)
		}
	}
	return missing
}
