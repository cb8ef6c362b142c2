// Package classify abstracts the external text-classification capability.
// The scorer consumes it as a black box: given text, return a label with a
// confidence in [0,1]. Implementations must honor the context deadline.
package classify

import (
	"context"
	"errors"
)

// Result is one classification verdict.
type Result struct {
	Label      string
	Confidence float64
}

// Classifier is the injected capability interface for sentiment and
// zero-shot label classification.
type Classifier interface {
	ClassifySentiment(ctx context.Context, text string) (Result, error)
	ClassifyZeroShot(ctx context.Context, text string, candidates []string) (Result, error)
}

// ErrUnavailable means the external scoring capability failed or timed
// out; callers fall back to rule-based-only scoring.
var ErrUnavailable = errors.New("classifier unavailable")

// Stub returns fixed results without any network call. It backs tests and
// the offline CLI path.
type Stub struct {
	Sentiment Result
	ZeroShot  Result
	Err       error
}

func (s Stub) ClassifySentiment(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return s.Sentiment, s.Err
}

func (s Stub) ClassifyZeroShot(ctx context.Context, text string, candidates []string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s.Err == nil && s.ZeroShot.Label == "" && len(candidates) > 0 {
		return Result{Label: candidates[0], Confidence: s.ZeroShot.Confidence}, nil
	}
	return s.ZeroShot, s.Err
}
