package reviews

import (
	"time"

	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
)

// Review is one scoring run over a profile document (or raw text). Profile
// and Feedback are populated only once the review reaches completed.
type Review struct {
	ID           string
	DocumentID   string // empty for raw-text reviews
	Status       string
	Profile      *profile.Profile
	Feedback     *feedback.Record
	ErrorCode    string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
