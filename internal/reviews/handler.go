package reviews

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/soupine/linkedin-backend-extraction/internal/documents"
	"github.com/soupine/linkedin-backend-extraction/internal/feedback"
	"github.com/soupine/linkedin-backend-extraction/internal/profile"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/server/respond"
)

const maxTextBytes = 1 << 20

// Handler wires HTTP handlers to the reviews service.
type Handler struct {
	Svc     *Service
	DocRepo documents.DocumentsRepo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docRepo documents.DocumentsRepo) *Handler {
	return &Handler{Svc: svc, DocRepo: docRepo}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/review", h.startReview)
	rg.POST("/reviews/text", h.reviewText)
	rg.GET("/reviews", h.listReviews)
	rg.GET("/reviews/:id", h.getReview)
}

func (h *Handler) startReview(c *gin.Context) {
	documentID := c.Param("id")
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document id is required", nil)
		return
	}

	doc, err := h.DocRepo.GetByID(c.Request.Context(), documentID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start review", nil)
		}
		return
	}
	c.Set("documentId", doc.ID)

	ctx := WithRequestID(c.Request.Context(), c.GetString("requestId"))
	review, err := h.Svc.Create(ctx, doc.ID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start review", nil)
		return
	}
	c.Set("reviewId", review.ID)

	respond.JSON(c, http.StatusAccepted, gin.H{
		"reviewId": review.ID,
		"status":   review.Status,
	})
}

type reviewTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) reviewText(c *gin.Context) {
	var req reviewTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be JSON with a text field", nil)
		return
	}
	if req.Text == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}
	if len(req.Text) > maxTextBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "text exceeds the 1 MiB limit", nil)
		return
	}

	review, err := h.Svc.ReviewText(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrMalformedInput):
			respond.Error(c, http.StatusBadRequest, "malformed_input", "text is empty or not valid UTF-8", nil)
		case errors.Is(err, feedback.ErrInsufficientContent):
			respond.Error(c, http.StatusUnprocessableEntity, "insufficient_content", "no summary or experience content to score", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to review text", nil)
		}
		return
	}
	c.Set("reviewId", review.ID)

	respond.JSON(c, http.StatusOK, toResponse(review))
}

func (h *Handler) getReview(c *gin.Context) {
	reviewID := c.Param("id")
	if reviewID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "review id is required", nil)
		return
	}

	review, err := h.Svc.Get(c.Request.Context(), reviewID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "review not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch review", nil)
		}
		return
	}
	c.Set("reviewId", review.ID)

	respond.JSON(c, http.StatusOK, toResponse(review))
}

func (h *Handler) listReviews(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reviews", nil)
		return
	}

	resp := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		item := gin.H{
			"reviewId":  r.ID,
			"status":    r.Status,
			"createdAt": r.CreatedAt,
		}
		if r.DocumentID != "" {
			item["documentId"] = r.DocumentID
		}
		if r.Status == StatusCompleted && r.Feedback != nil {
			item["overallScore"] = r.Feedback.Overall.Score
			item["overallLabel"] = r.Feedback.Overall.Label
		}
		if r.Status == StatusFailed && strings.TrimSpace(r.ErrorCode) != "" {
			item["errorCode"] = r.ErrorCode
		}
		resp = append(resp, item)
	}

	respond.JSON(c, http.StatusOK, resp)
}
