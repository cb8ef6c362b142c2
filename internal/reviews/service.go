package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soupine/linkedin-backend-extraction/internal/documents"
	"github.com/soupine/linkedin-backend-extraction/internal/extract"
	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/metrics"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/storage/object"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/telemetry"
)

const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

const defaultRunTimeout = 60 * time.Second

// Service contains business logic for reviews.
type Service struct {
	Repo    Repo
	DocRepo documents.DocumentsRepo
	Store   object.ObjectStore
	Scorer  *feedback.Scorer
	Opts    profile.Options

	// RunTimeout caps one asynchronous scoring run end to end.
	RunTimeout time.Duration
}

// Create enqueues a review for a stored document and kicks off asynchronous
// completion.
func (s *Service) Create(ctx context.Context, documentID string) (Review, error) {
	if documentID == "" {
		return Review{}, errors.New("documentID is required")
	}
	now := time.Now().UTC()
	review := Review{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		Status:     StatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return Review{}, err
	}

	go s.completeAsync(backgroundWithRequestID(ctx), review.ID)

	return review, nil
}

// ReviewText runs the full pipeline synchronously over raw text and persists
// the completed review. Callers map the pipeline sentinels to status codes.
func (s *Service) ReviewText(ctx context.Context, text string) (Review, error) {
	p, rec, err := s.runPipeline(ctx, text)
	if err != nil {
		return Review{}, err
	}
	now := time.Now().UTC()
	review := Review{
		ID:        uuid.NewString(),
		Status:    StatusCompleted,
		Profile:   &p,
		Feedback:  &rec,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return Review{}, err
	}
	return review, nil
}

// Get returns a review by ID.
func (s *Service) Get(ctx context.Context, reviewID string) (Review, error) {
	if reviewID == "" {
		return Review{}, errors.New("reviewID is required")
	}
	return s.Repo.GetByID(ctx, reviewID)
}

// List returns reviews ordered newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Review, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) runPipeline(ctx context.Context, text string) (profile.Profile, feedback.Record, error) {
	p, err := profile.BuildProfile(text, s.Opts)
	if err != nil {
		return profile.Profile{}, feedback.Record{}, err
	}
	missing := profile.SkillGap(p, s.Opts)
	rec, err := feedback.Build(ctx, p, s.Scorer, missing)
	if err != nil {
		return p, feedback.Record{}, err
	}
	return p, rec, nil
}

func (s *Service) completeAsync(ctx context.Context, reviewID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failReview(ctx, reviewID, "", fmt.Errorf("panic: %v", r), nil)
		}
	}()
	timeout := s.RunTimeout
	if timeout <= 0 {
		timeout = defaultRunTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	startedAt := time.Now().UTC()
	if err := s.Repo.UpdateStatus(ctx, reviewID, StatusProcessing); err != nil {
		s.failReview(ctx, reviewID, "", fmt.Errorf("set processing failed: %w", err), &startedAt)
		return
	}

	review, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		s.failReview(ctx, reviewID, "", fmt.Errorf("review lookup: %w", err), &startedAt)
		return
	}
	metrics.IncReviewStarted()
	telemetry.Info("review.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       review.DocumentID,
		"review_id":         review.ID,
		"status":            StatusProcessing,
		"status_transition": "queued->processing",
	})

	if s.DocRepo == nil || s.Store == nil {
		s.failReview(ctx, reviewID, review.DocumentID, errors.New("missing document store dependencies"), &startedAt)
		return
	}

	doc, err := s.DocRepo.GetByID(ctx, review.DocumentID)
	if err != nil {
		s.failReview(ctx, reviewID, review.DocumentID, fmt.Errorf("document lookup id=%s: %w", review.DocumentID, err), &startedAt)
		return
	}

	text, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		s.failReview(ctx, reviewID, review.DocumentID, fmt.Errorf("document %s mime %s: %w", doc.ID, doc.MimeType, err), &startedAt)
		return
	}

	p, rec, err := s.runPipeline(ctx, text)
	if err != nil {
		s.failReview(ctx, reviewID, review.DocumentID, err, &startedAt)
		return
	}

	if err := s.Repo.Complete(ctx, reviewID, p, rec); err != nil {
		s.failReview(ctx, reviewID, review.DocumentID, fmt.Errorf("set review result failed: %w", err), &startedAt)
		return
	}
	completedAt := time.Now().UTC()
	metrics.IncReviewCompleted()
	metrics.ObserveReviewDurationMs(durationMs(&startedAt, &completedAt))
	telemetry.Info("review.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       review.DocumentID,
		"review_id":         review.ID,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       durationMs(&startedAt, &completedAt),
	})
}

func (s *Service) failReview(ctx context.Context, reviewID, documentID string, err error, startedAt *time.Time) {
	code := classifyFailure(err)
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	// The run context may already be canceled; the terminal write must not be.
	if updateErr := s.Repo.Fail(context.Background(), reviewID, code, msg); updateErr != nil {
		telemetry.Error("review.fail_update", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"review_id":  reviewID,
			"error":      updateErr.Error(),
			"cause":      msg,
		})
	}
	metrics.IncReviewFailed()
	if startedAt != nil {
		metrics.ObserveReviewDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("review.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"document_id":       documentID,
		"review_id":         reviewID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"error_code":        code,
		"duration_ms":       durationMs(startedAt, &completedAt),
	})
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

// classifyFailure maps a pipeline error to a stable error code. Classifier
// outages never reach here: the scorer degrades to rule-based verdicts
// instead of failing the run.
func classifyFailure(err error) string {
	if err == nil {
		return ErrorCodeInternal
	}
	switch {
	case errors.Is(err, profile.ErrMalformedInput):
		return ErrorCodeMalformedInput
	case errors.Is(err, feedback.ErrInsufficientContent):
		return ErrorCodeInsufficientContent
	case errors.Is(err, extract.ErrUnsupportedType):
		return ErrorCodeUnsupportedType
	case errors.Is(err, extract.ErrUnreadable):
		return ErrorCodeMalformedInput
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "document") || strings.Contains(msg, "storage") ||
		strings.Contains(msg, "review lookup") || strings.Contains(msg, "set processing") ||
		strings.Contains(msg, "set review result") {
		return ErrorCodeStorage
	}
	return ErrorCodeInternal
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
