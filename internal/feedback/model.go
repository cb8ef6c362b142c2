// Package feedback scores profile text quality and aggregates the verdicts
// into one feedback report. All scoring is deterministic for a given input
// and classifier output.
package feedback

import (
	"errors"

	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// ErrInsufficientContent means neither a summary nor any experience text was
// found, so no feedback can be computed.
var ErrInsufficientContent = errors.New("no summary or experience content to score")

// Verdict is the quality assessment for one text unit.
type Verdict struct {
	OverallScore float64  `json:"overall_score"`
	ToneLabel    string   `json:"tone_label"`
	ClarityLabel string   `json:"clarity_label"`
	Suggestions  []string `json:"suggestions"`
}

// Record is the full feedback report. Field names and nesting are part of
// the wire contract; the rendering layer depends on these exact keys.
type Record struct {
	Overall    Overall              `json:"overall"`
	Summary    SummaryFeedback      `json:"summary"`
	Experience []ExperienceFeedback `json:"experience"`
	Skills     SkillsFeedback       `json:"skills"`
}

// Overall carries the aggregated score, its band label and the most
// impactful notes.
type Overall struct {
	Score float64  `json:"score"`
	Label string   `json:"label"`
	Notes []string `json:"notes"`
}

// SummaryFeedback reports on the summary section.
type SummaryFeedback struct {
	QualityLabel string   `json:"quality_label"`
	Suggestions  []string `json:"suggestions"`
}

// ExperienceFeedback pairs one experience entry's metadata with its
// verdict, aligned positionally with the profile's experience list.
type ExperienceFeedback struct {
	Meta        ExperienceMeta `json:"meta"`
	Quality     Verdict        `json:"quality"`
	Suggestions []string       `json:"suggestions"`
}

// ExperienceMeta lets the rendering layer link feedback back to an entry.
type ExperienceMeta struct {
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SkillsFeedback reports the skill-gap analysis.
type SkillsFeedback struct {
	MissingRecommended []string `json:"missing_recommended"`
	Notes              []string `json:"notes"`
}

func metaFor(e profile.ExperienceEntry) ExperienceMeta {
	return ExperienceMeta{
		Title:     e.Title,
		Company:   e.Company,
		Location:  e.Location,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
	}
}
