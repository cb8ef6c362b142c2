// Package hfinference implements classify.Classifier against the Hugging
// Face Inference API.
package hfinference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soupine/linkedin-backend-extraction/internal/classify"
)

const baseURL = "https://api-inference.huggingface.co/models/"

// Client calls hosted sentiment and zero-shot models. Calls are bounded by
// the HTTP client timeout on top of the caller's context deadline.
type Client struct {
	apiToken       string
	sentimentModel string
	zeroShotModel  string
	httpClient     *http.Client
	base           string // overrides baseURL in tests
}

// NewClient constructs a Client. The token may be empty for public models.
func NewClient(apiToken, sentimentModel, zeroShotModel string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(sentimentModel) == "" {
		return nil, fmt.Errorf("SENTIMENT_MODEL is required")
	}
	if strings.TrimSpace(zeroShotModel) == "" {
		return nil, fmt.Errorf("ZERO_SHOT_MODEL is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiToken:       strings.TrimSpace(apiToken),
		sentimentModel: sentimentModel,
		zeroShotModel:  zeroShotModel,
		httpClient:     &http.Client{Timeout: timeout},
	}, nil
}

type sentimentRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type zeroShotRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters zeroShotParameters `json:"parameters"`
}

type zeroShotParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// ClassifySentiment returns the highest-confidence sentiment label.
func (c *Client) ClassifySentiment(ctx context.Context, text string) (classify.Result, error) {
	body, err := c.post(ctx, c.sentimentModel, sentimentRequest{Inputs: text})
	if err != nil {
		return classify.Result{}, err
	}

	// The API nests results one level per input.
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err != nil {
		var flat []labelScore
		if err := json.Unmarshal(body, &flat); err != nil {
			return classify.Result{}, fmt.Errorf("%w: decode sentiment response: %v", classify.ErrUnavailable, err)
		}
		nested = [][]labelScore{flat}
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return classify.Result{}, fmt.Errorf("%w: empty sentiment response", classify.ErrUnavailable)
	}

	best := nested[0][0]
	for _, ls := range nested[0][1:] {
		if ls.Score > best.Score {
			best = ls
		}
	}
	return classify.Result{Label: strings.ToLower(best.Label), Confidence: best.Score}, nil
}

// ClassifyZeroShot returns the highest-confidence candidate label.
func (c *Client) ClassifyZeroShot(ctx context.Context, text string, candidates []string) (classify.Result, error) {
	if len(candidates) == 0 {
		return classify.Result{}, fmt.Errorf("%w: no candidate labels", classify.ErrUnavailable)
	}
	body, err := c.post(ctx, c.zeroShotModel, zeroShotRequest{
		Inputs:     text,
		Parameters: zeroShotParameters{CandidateLabels: candidates},
	})
	if err != nil {
		return classify.Result{}, err
	}

	var resp zeroShotResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return classify.Result{}, fmt.Errorf("%w: decode zero-shot response: %v", classify.ErrUnavailable, err)
	}
	if len(resp.Labels) == 0 || len(resp.Scores) == 0 {
		return classify.Result{}, fmt.Errorf("%w: empty zero-shot response", classify.ErrUnavailable)
	}
	// Labels come back sorted by score, highest first.
	return classify.Result{Label: resp.Labels[0], Confidence: resp.Scores[0]}, nil
}

func (c *Client) post(ctx context.Context, model string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(model), bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", classify.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", classify.ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", classify.ErrUnavailable, model, resp.StatusCode)
	}
	return body, nil
}

// endpoint is split out so tests can point the client at a local server.
func (c *Client) endpoint(model string) string {
	if c.base != "" {
		return c.base + model
	}
	return baseURL + model
}
