package feedback

import (
	"context"
	"regexp"
	"strings"

	"github.com/soupine/linkedin-backend-extraction/internal/classify"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/telemetry"
)

// Kind names the unit of text being scored.
type Kind string

const (
	KindSummary    Kind = "summary"
	KindExperience Kind = "experience"
)

// Deterministic suggestion strings. The aggregator matches on these to rank
// notes, so the exact wording is part of the contract with itself.
const (
	SuggestQuantify    = "Add quantified impact (numbers or percentages) to show results."
	SuggestActionVerbs = "Start bullet points with strong action verbs."
	SuggestBullets     = "Break the description into bullet points."
	SuggestTone        = "Adopt a more confident, professional tone."
	NoteDegraded       = "quality assessment degraded: external classifier unavailable"
)

// clarityCandidates is the fixed zero-shot candidate set; the first entry
// is the desired label.
var clarityCandidates = []string{
	"clear and professional",
	"somewhat generic",
	"vague or unclear",
}

// actionVerbs is the fixed list checked against bullet openers.
var actionVerbs = map[string]bool{
	"achieved": true, "analyzed": true, "automated": true, "built": true,
	"created": true, "delivered": true, "designed": true, "developed": true,
	"drove": true, "established": true, "implemented": true, "improved": true,
	"increased": true, "launched": true, "led": true, "managed": true,
	"migrated": true, "optimized": true, "owned": true, "reduced": true,
	"scaled": true, "shipped": true, "streamlined": true,
}

var numericTokenRe = regexp.MustCompile(`\d|%`)

// Weights controls the contribution of each signal to the overall score.
// They must sum to 1 for the score to stay in [0,1].
type Weights struct {
	Sentiment   float64
	Clarity     float64
	Bullets     float64
	ActionVerbs float64
	Quantified  float64
}

// DefaultWeights splits the score evenly between classifier confidence and
// local rule checks. Heuristic cutoffs, not load-bearing business logic.
var DefaultWeights = Weights{
	Sentiment:   0.25,
	Clarity:     0.25,
	Bullets:     0.15,
	ActionVerbs: 0.15,
	Quantified:  0.20,
}

// Scorer produces a Verdict per text unit. The zero value is unusable; use
// NewScorer.
type Scorer struct {
	classifier classify.Classifier
	weights    Weights
}

// NewScorer wires the external classification capability into a scorer.
func NewScorer(classifier classify.Classifier, weights Weights) *Scorer {
	if weights == (Weights{}) {
		weights = DefaultWeights
	}
	return &Scorer{classifier: classifier, weights: weights}
}

// Score assesses one text unit. Classifier failures never propagate: the
// affected contribution falls back to the neutral midpoint and the verdict
// carries a degraded note.
func (s *Scorer) Score(ctx context.Context, text string, kind Kind) Verdict {
	v := Verdict{Suggestions: []string{}}
	degraded := false

	sentiment, err := s.classifier.ClassifySentiment(ctx, text)
	sentimentComponent := 0.5
	if err != nil {
		telemetry.Warn("classifier.sentiment_failed", map[string]any{"error": err.Error(), "kind": string(kind)})
		v.ToneLabel = "unknown"
		degraded = true
	} else {
		v.ToneLabel = sentiment.Label
		if sentiment.Label == "positive" {
			sentimentComponent = clamp01(sentiment.Confidence)
		} else {
			sentimentComponent = clamp01(1 - sentiment.Confidence)
		}
	}

	clarity, err := s.classifier.ClassifyZeroShot(ctx, text, clarityCandidates)
	clarityComponent := 0.5
	if err != nil {
		telemetry.Warn("classifier.zero_shot_failed", map[string]any{"error": err.Error(), "kind": string(kind)})
		v.ClarityLabel = "unknown"
		degraded = true
	} else {
		v.ClarityLabel = clarity.Label
		if clarity.Label == clarityCandidates[0] {
			clarityComponent = clamp01(clarity.Confidence)
		} else {
			clarityComponent = clamp01(1-clarity.Confidence) / 2
		}
	}

	// Summaries are prose; the bullet rules only apply to experience text.
	bulletComponent, verbComponent := 1.0, 1.0
	if kind == KindExperience {
		if !containsBullets(text) {
			bulletComponent = 0
			v.Suggestions = append(v.Suggestions, SuggestBullets)
		}
		if !bulletsOpenWithActionVerbs(text) {
			verbComponent = 0
			v.Suggestions = append(v.Suggestions, SuggestActionVerbs)
		}
	}
	numberComponent := 0.0
	if numericTokenRe.MatchString(text) {
		numberComponent = 1
	} else {
		v.Suggestions = append(v.Suggestions, SuggestQuantify)
	}

	if v.ToneLabel == "negative" || v.ClarityLabel == clarityCandidates[len(clarityCandidates)-1] {
		v.Suggestions = append(v.Suggestions, SuggestTone)
	}
	if degraded {
		v.Suggestions = append(v.Suggestions, NoteDegraded)
	}

	w := s.weights
	v.OverallScore = clamp01(w.Sentiment*sentimentComponent +
		w.Clarity*clarityComponent +
		w.Bullets*bulletComponent +
		w.ActionVerbs*verbComponent +
		w.Quantified*numberComponent)
	return v
}

func containsBullets(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, marker := range []string{"•", "◦", "·", "* ", "- ", "– "} {
			if strings.HasPrefix(line, marker) {
				return true
			}
		}
	}
	return false
}

// bulletsOpenWithActionVerbs checks that every bullet line opens with a verb
// from the fixed list. Text without bullets falls back to a first-word check
// per line.
func bulletsOpenWithActionVerbs(text string) bool {
	lines := strings.Split(text, "\n")
	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		stripped := strings.TrimLeft(line, "•◦·*–- \t")
		if line == stripped || stripped == "" {
			continue // not a bullet line
		}
		checked++
		if !startsWithActionVerb(stripped) {
			return false
		}
	}
	if checked == 0 {
		return startsWithActionVerb(strings.TrimSpace(text))
	}
	return true
}

func startsWithActionVerb(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	word := strings.ToLower(strings.Trim(fields[0], ".,;:!"))
	return actionVerbs[word]
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
