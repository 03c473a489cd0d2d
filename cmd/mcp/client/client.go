// Package client provides an HTTP client for the internship recommender API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/transport/web/controller"
)

// Client is an HTTP client for the internship recommender API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// GetRecommendations returns recommendations for a student from the named
// algorithm. An empty algorithm uses the server default.
func (c *Client) GetRecommendations(
	ctx context.Context, studentID int64, algorithm string,
) ([]domain.Recommendation, error) {
	path := "/v1/students/" + strconv.FormatInt(studentID, 10) + "/recommendations"
	if algorithm != "" {
		path += "?" + url.Values{"algorithm": {algorithm}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result controller.RecommendationsListResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetDiagnostics reports whether the dataset can support each recommender.
func (c *Client) GetDiagnostics(ctx context.Context) (domain.HybridValidation, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/diagnostics", nil)
	if err != nil {
		return domain.HybridValidation{}, err
	}

	var result domain.HybridValidation
	if err := c.handleResponse(resp, &result); err != nil {
		return domain.HybridValidation{}, err
	}

	return result, nil
}

// SubmitFeedback records a student's rating of a recommended internship.
func (c *Client) SubmitFeedback(
	ctx context.Context, studentID int64, req controller.FeedbackCreateRequest,
) (domain.FeedbackRecord, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return domain.FeedbackRecord{}, fmt.Errorf("encoding feedback: %w", err)
	}

	path := "/v1/students/" + strconv.FormatInt(studentID, 10) + "/feedback"
	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return domain.FeedbackRecord{}, err
	}

	var result controller.FeedbackCreateResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return domain.FeedbackRecord{}, err
	}

	return result.Data, nil
}

// GetFeedbackSummary reports rating statistics over all submitted feedback.
func (c *Client) GetFeedbackSummary(ctx context.Context) (domain.SurveyAnalysis, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/feedback/summary", nil)
	if err != nil {
		return domain.SurveyAnalysis{}, err
	}

	var result controller.FeedbackSummaryResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return domain.SurveyAnalysis{}, err
	}

	return result.Data, nil
}
