package reviews

import (
	"time"

	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// ReviewResponse is the API shape of one review.
type ReviewResponse struct {
	ReviewID   string           `json:"reviewId"`
	DocumentID string           `json:"documentId,omitempty"`
	Status     string           `json:"status"`
	Profile    *profile.Profile `json:"profile,omitempty"`
	Feedback   *feedback.Record `json:"feedback,omitempty"`
	Error      *ReviewError     `json:"error,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// ReviewError carries the terminal failure of a review.
type ReviewError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toResponse(r Review) ReviewResponse {
	resp := ReviewResponse{
		ReviewID:   r.ID,
		DocumentID: r.DocumentID,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Status == StatusCompleted {
		resp.Profile = r.Profile
		resp.Feedback = r.Feedback
	}
	if r.Status == StatusFailed {
		resp.Error = &ReviewError{Code: r.ErrorCode, Message: r.ErrorMessage}
	}
	return resp
}
