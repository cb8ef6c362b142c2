package reviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// PGRepo implements Repo using Postgres. Profile and feedback payloads are
// stored as JSONB so completed reviews can be served without recomputation.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new review.
func (r *PGRepo) Create(ctx context.Context, review Review) error {
	const query = `
INSERT INTO reviews (id, document_id, status, profile, feedback, error_code, error_message, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	profilePayload, err := marshalNullableJSONB(review.Profile)
	if err != nil {
		return err
	}
	feedbackPayload, err := marshalNullableJSONB(review.Feedback)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		review.ID,
		nullableID(review.DocumentID),
		review.Status,
		profilePayload,
		feedbackPayload,
		review.ErrorCode,
		review.ErrorMessage,
		review.CreatedAt,
	)
	return err
}

// GetByID returns a review by ID.
func (r *PGRepo) GetByID(ctx context.Context, reviewID string) (Review, error) {
	const query = `
SELECT id, document_id, status, profile, feedback, error_code, error_message, created_at, updated_at
FROM reviews
WHERE id = $1
LIMIT 1`

	review, err := scanReview(r.DB.QueryRowContext(ctx, query, reviewID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	return review, nil
}

// UpdateStatus transitions the review to the given status.
func (r *PGRepo) UpdateStatus(ctx context.Context, reviewID, status string) error {
	const query = `
UPDATE reviews
SET status = $1,
    updated_at = now()
WHERE id = $2::uuid`

	res, err := r.DB.ExecContext(ctx, query, status, reviewID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Complete stores the finished profile and feedback and marks the review completed.
func (r *PGRepo) Complete(ctx context.Context, reviewID string, p profile.Profile, rec feedback.Record) error {
	const query = `
UPDATE reviews
SET status = 'completed',
    profile = $1::jsonb,
    feedback = $2::jsonb,
    updated_at = now()
WHERE id = $3::uuid`

	profilePayload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	feedbackPayload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query, profilePayload, feedbackPayload, reviewID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Fail marks the review failed with a stable error code and sanitized message.
func (r *PGRepo) Fail(ctx context.Context, reviewID, errorCode, errorMessage string) error {
	const query = `
UPDATE reviews
SET status = 'failed',
    error_code = $1,
    error_message = $2,
    updated_at = now()
WHERE id = $3::uuid`

	res, err := r.DB.ExecContext(ctx, query, errorCode, errorMessage, reviewID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns reviews newest-first with limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Review, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, document_id, status, profile, feedback, error_code, error_message, created_at, updated_at
FROM reviews
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (Review, error) {
	var review Review
	var documentID sql.NullString
	var profileJSON sql.NullString
	var feedbackJSON sql.NullString
	if err := row.Scan(
		&review.ID,
		&documentID,
		&review.Status,
		&profileJSON,
		&feedbackJSON,
		&review.ErrorCode,
		&review.ErrorMessage,
		&review.CreatedAt,
		&review.UpdatedAt,
	); err != nil {
		return Review{}, err
	}
	if documentID.Valid {
		review.DocumentID = documentID.String
	}
	if profileJSON.Valid {
		var p profile.Profile
		if err := json.Unmarshal([]byte(profileJSON.String), &p); err == nil {
			review.Profile = &p
		}
	}
	if feedbackJSON.Valid {
		var rec feedback.Record
		if err := json.Unmarshal([]byte(feedbackJSON.String), &rec); err == nil {
			review.Feedback = &rec
		}
	}
	return review, nil
}

func marshalNullableJSONB(value any) (any, error) {
	switch v := value.(type) {
	case *profile.Profile:
		if v == nil {
			return nil, nil
		}
	case *feedback.Record:
		if v == nil {
			return nil, nil
		}
	case nil:
		return nil, nil
	}
	return json.Marshal(value)
}

func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
