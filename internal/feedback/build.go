package feedback

import (
	"context"
	"strings"

	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// Build scores every text unit of the profile and aggregates the verdicts.
// It is the single entry point the pipeline calls after extraction.
func Build(ctx context.Context, p profile.Profile, scorer *Scorer, missingSkills []string) (Record, error) {
	var summaryVerdict *Verdict
	if strings.TrimSpace(p.Summary) != "" {
		v := scorer.Score(ctx, p.Summary, KindSummary)
		summaryVerdict = &v
	}

	experienceVerdicts := make([]Verdict, 0, len(p.Experience))
	for _, entry := range p.Experience {
		experienceVerdicts = append(experienceVerdicts, scorer.Score(ctx, experienceText(entry), KindExperience))
	}

	return Aggregate(p, summaryVerdict, experienceVerdicts, missingSkills)
}

// experienceText builds the scoreable text for one entry: the description
// first, then the header fields for context.
func experienceText(e profile.ExperienceEntry) string {
	var parts []string
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	if e.Title != "" {
		parts = append(parts, "Title: "+e.Title)
	}
	if e.Company != "" {
		parts = append(parts, "Company: "+e.Company)
	}
	return strings.Join(parts, "\n")
}
