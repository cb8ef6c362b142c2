package reviews

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// MemoryRepo stores reviews in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Review
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Review)}
}

// Create stores the review.
func (r *MemoryRepo) Create(ctx context.Context, review Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[review.ID] = review
	return nil
}

// GetByID returns a review by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, reviewID string) (Review, error) {
	if err := ctx.Err(); err != nil {
		return Review{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	review, ok := r.byID[reviewID]
	if !ok {
		return Review{}, ErrNotFound
	}
	return review, nil
}

// UpdateStatus transitions the review to the given status.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, reviewID, status string) error {
	return r.update(ctx, reviewID, func(review *Review) {
		review.Status = status
	})
}

// Complete stores the finished profile and feedback and marks the review completed.
func (r *MemoryRepo) Complete(ctx context.Context, reviewID string, p profile.Profile, rec feedback.Record) error {
	return r.update(ctx, reviewID, func(review *Review) {
		review.Status = StatusCompleted
		review.Profile = &p
		review.Feedback = &rec
	})
}

// Fail marks the review failed with a stable error code and sanitized message.
func (r *MemoryRepo) Fail(ctx context.Context, reviewID, errorCode, errorMessage string) error {
	return r.update(ctx, reviewID, func(review *Review) {
		review.Status = StatusFailed
		review.ErrorCode = errorCode
		review.ErrorMessage = errorMessage
	})
}

func (r *MemoryRepo) update(ctx context.Context, reviewID string, apply func(*Review)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.byID[reviewID]
	if !ok {
		return ErrNotFound
	}
	apply(&review)
	review.UpdatedAt = time.Now().UTC()
	r.byID[reviewID] = review
	return nil
}

// List returns reviews newest-first with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	out := make([]Review, 0, len(r.byID))
	for _, review := range r.byID {
		out = append(out, review)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []Review{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
