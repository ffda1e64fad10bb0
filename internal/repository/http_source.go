package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"quiz-runner/internal/domain"
	"time"
)

// maxDocumentSize bounds the body read from the question URL.
const maxDocumentSize = 10 * 1024 * 1024

// HTTPQuestionSource fetches the JSON question document from a fixed URL.
type HTTPQuestionSource struct {
	url    string
	client *http.Client
}

func NewHTTPQuestionSource(url string, timeout time.Duration) *HTTPQuestionSource {
	return &HTTPQuestionSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPQuestionSource) Load(ctx context.Context) ([]domain.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", s.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("network response was not ok: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return decodeQuestions(body)
}
