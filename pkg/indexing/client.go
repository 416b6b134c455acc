package indexing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient talks to the indexing service over HTTP. POST /index blocks
// until the run completes; GET /status/{id} is polled concurrently for
// progress.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a client for the indexing service at baseURL.
func NewHTTPClient(baseURL string, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Index runs can take minutes on large repositories; status
			// polls get their own short per-request timeout instead.
			Timeout: 30 * time.Minute,
		},
		logger: logger.With("component", "indexing"),
	}
}

// IndexAsync starts an indexing run. The returned channel yields one Result
// and is then closed. Transport failures surface as a failed Result rather
// than an error so callers have a single completion path.
func (c *HTTPClient) IndexAsync(ctx context.Context, req Request) <-chan Result {
	done := make(chan Result, 1)

	go func() {
		defer close(done)
		result, err := c.index(ctx, req)
		if err != nil {
			c.logger.Error("Indexing run failed",
				"repository_id", req.RepositoryID, "error", err)
			done <- Result{
				Success:      false,
				RepositoryID: req.RepositoryID,
				Errors:       []string{err.Error()},
			}
			return
		}
		done <- *result
	}()

	return done
}

func (c *HTTPClient) index(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode index request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/index", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build index request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Info("Starting index run",
		"repository_id", req.RepositoryID, "commit", shortCommit(req.CommitHash))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("index request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("indexing service returned %d: %s", resp.StatusCode, payload)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode index result: %w", err)
	}

	c.logger.Info("Index run finished",
		"repository_id", result.RepositoryID,
		"success", result.Success,
		"entities_created", result.EntitiesCreated,
		"duration_ms", result.DurationMs)
	return &result, nil
}

// Status fetches the current progress of a running job.
func (c *HTTPClient) Status(ctx context.Context, repositoryID string) (*Status, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	endpoint := c.baseURL + "/status/" + url.PathEscape(repositoryID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("indexing service returned %d for status", resp.StatusCode)
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}
	return &status, nil
}

func shortCommit(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
