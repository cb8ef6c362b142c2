package profile

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/soupine/linkedin-backend-extraction/internal/textmatch"
)

// ErrMalformedInput means the input text is empty or not decodable; nothing
// can be processed from it.
var ErrMalformedInput = errors.New("input text is empty or not decodable")

const titleThreshold = 0.85

// Options configures the extraction pipeline. The zero value uses the
// package reference vocabularies and Levenshtein similarity.
type Options struct {
	Similarity        textmatch.Similarity
	CanonicalTitles   []string
	CanonicalSkills   []string
	SkillAliases      map[string]string
	RecommendedSkills []string
}

func (o Options) similarity() textmatch.Similarity {
	if o.Similarity != nil {
		return o.Similarity
	}
	return textmatch.Levenshtein
}

func (o Options) canonicalTitles() []string {
	if o.CanonicalTitles != nil {
		return o.CanonicalTitles
	}
	return CanonicalTitles
}

func (o Options) canonicalSkills() []string {
	if o.CanonicalSkills != nil {
		return o.CanonicalSkills
	}
	return CanonicalSkills
}

func (o Options) skillAliases() map[string]string {
	if o.SkillAliases != nil {
		return o.SkillAliases
	}
	return SkillAliases
}

func (o Options) recommendedSkills() []string {
	if o.RecommendedSkills != nil {
		return o.RecommendedSkills
	}
	return RecommendedSkills
}

// NormalizeTitle replaces a raw title with its canonical form when the
// fuzzy match clears the threshold, otherwise keeps the raw string. A
// low-confidence match is never silently rewritten.
func NormalizeTitle(raw string, opts Options) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	match, score := textmatch.BestMatch(raw, opts.canonicalTitles(), opts.similarity())
	if score >= titleThreshold {
		return match
	}
	return raw
}

// BuildProfile runs the full extraction pipeline: segment sections, split
// entries, extract fields, collect skills. Ambiguous parses degrade into
// flags and notes on the returned record; only undecodable or empty input
// fails.
func BuildProfile(text string, opts Options) (Profile, error) {
	if strings.TrimSpace(text) == "" || !utf8.ValidString(text) {
		return Profile{}, ErrMalformedInput
	}

	sections := SplitSections(text, opts.similarity())

	p := Profile{
		Summary:    sections[SectionSummary],
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Skills:     []string{},
	}

	for _, block := range SplitEntries(sections[SectionExperience]) {
		entry := ParseExperienceBlock(block, opts)
		if entry.IsEmpty() {
			continue
		}
		p.Experience = append(p.Experience, entry)
	}

	for _, block := range SplitEntries(sections[SectionEducation]) {
		entry := ParseEducationBlock(block)
		if entry.IsEmpty() {
			continue
		}
		p.Education = append(p.Education, entry)
	}

	extra := make([]string, 0, len(p.Experience)+1)
	extra = append(extra, p.Summary)
	for _, exp := range p.Experience {
		extra = append(extra, exp.Description)
	}
	p.Skills = ExtractSkills(sections[SectionSkills], extra, opts)
	if p.Skills == nil {
		p.Skills = []string{}
	}

	return p, nil
}

// SkillGap computes recommended skills the profile is missing, in
// recommended order.
func SkillGap(p Profile, opts Options) []string {
	return MissingRecommended(p.Skills, opts.recommendedSkills())
}
