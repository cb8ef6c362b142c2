package feedback

import (
	"fmt"
	"strings"

	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// band maps a score range to its label. Ordered highest first; the lower
// bound is inclusive, so a boundary value resolves to the higher band.
type band struct {
	min   float64
	label string
}

// Heuristic cutoffs carried over from the reference behavior; tune here,
// not at call sites.
var bands = []band{
	{0.8, "very strong profile"},
	{0.6, "solid professional profile"},
	{0.3, "okay, can be improved"},
	{0.0, "needs major improvements"},
}

// BandLabel maps a score to its band label.
func BandLabel(score float64) string {
	for _, b := range bands {
		if score >= b.min {
			return b.label
		}
	}
	return bands[len(bands)-1].label
}

const maxOverallNotes = 3

// Aggregate combines the per-unit verdicts and the skill gap into the final
// Record. summaryVerdict is nil when the profile has no summary text; with
// no experience verdicts either, it fails with ErrInsufficientContent.
func Aggregate(p profile.Profile, summaryVerdict *Verdict, experienceVerdicts []Verdict, missingSkills []string) (Record, error) {
	if summaryVerdict == nil && len(experienceVerdicts) == 0 {
		return Record{}, ErrInsufficientContent
	}
	if len(experienceVerdicts) != len(p.Experience) {
		return Record{}, fmt.Errorf("verdict count %d does not match experience count %d", len(experienceVerdicts), len(p.Experience))
	}

	var components []float64
	if summaryVerdict != nil {
		components = append(components, summaryVerdict.OverallScore)
	}
	if len(experienceVerdicts) > 0 {
		components = append(components, mean(verdictScores(experienceVerdicts)))
	}
	score := mean(components)

	rec := Record{
		Overall: Overall{
			Score: score,
			Label: BandLabel(score),
		},
		Experience: make([]ExperienceFeedback, 0, len(experienceVerdicts)),
		Skills: SkillsFeedback{
			MissingRecommended: emptyIfNil(missingSkills),
			Notes:              skillNotes(p.Skills, missingSkills),
		},
	}

	if summaryVerdict != nil {
		rec.Summary = SummaryFeedback{
			QualityLabel: BandLabel(summaryVerdict.OverallScore),
			Suggestions:  emptyIfNil(summaryVerdict.Suggestions),
		}
	} else {
		rec.Summary = SummaryFeedback{
			QualityLabel: "missing",
			Suggestions:  []string{"Add a short professional summary at the top of the profile."},
		}
	}

	for i, v := range experienceVerdicts {
		rec.Experience = append(rec.Experience, ExperienceFeedback{
			Meta:        metaFor(p.Experience[i]),
			Quality:     v,
			Suggestions: emptyIfNil(v.Suggestions),
		})
	}

	rec.Overall.Notes = selectOverallNotes(rec, missingSkills)
	return rec, nil
}

// selectOverallNotes surfaces the most impactful suggestions across all
// sub-verdicts in the fixed priority order, capped at three.
func selectOverallNotes(rec Record, missingSkills []string) []string {
	present := make(map[string]bool)
	for _, s := range rec.Summary.Suggestions {
		present[s] = true
	}
	for _, exp := range rec.Experience {
		for _, s := range exp.Suggestions {
			present[s] = true
		}
	}

	// Fixed priority: missing numeric impact, then missing action verbs,
	// then missing recommended skills, then tone/clarity issues.
	notes := []string{}
	appendNote := func(note string) {
		if len(notes) < maxOverallNotes {
			notes = append(notes, note)
		}
	}
	if present[SuggestQuantify] {
		appendNote(SuggestQuantify)
	}
	if present[SuggestActionVerbs] {
		appendNote(SuggestActionVerbs)
	}
	if len(missingSkills) > 0 {
		appendNote("Consider adding these recommended skills: " + strings.Join(missingSkills, ", "))
	}
	if present[SuggestTone] {
		appendNote(SuggestTone)
	}
	return notes
}

func skillNotes(skills, missing []string) []string {
	notes := []string{fmt.Sprintf("%d skills detected", len(skills))}
	if len(missing) == 0 {
		notes = append(notes, "all recommended skills are covered")
	}
	return notes
}

func verdictScores(vs []Verdict) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.OverallScore
	}
	return out
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
