package reviews

import (
	"context"

	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// Repo abstracts review persistence.
type Repo interface {
	Create(ctx context.Context, review Review) error
	GetByID(ctx context.Context, reviewID string) (Review, error)
	UpdateStatus(ctx context.Context, reviewID, status string) error
	Complete(ctx context.Context, reviewID string, p profile.Profile, rec feedback.Record) error
	Fail(ctx context.Context, reviewID, errorCode, errorMessage string) error
	List(ctx context.Context, limit, offset int) ([]Review, error)
}
