// Package directory fetches the channel directory and tracks the single load
// the guide performs per run.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Taichi-iskw/tv-guide/internal/errors"
	"github.com/Taichi-iskw/tv-guide/internal/model"
)

// Service is interface for channel directory operations
type Service interface {
	FetchChannels(ctx context.Context) ([]model.Channel, error)
}

// httpService implements Service against the directory HTTP API
type httpService struct {
	client   *http.Client
	endpoint string
}

// NewService creates a new Service for endpoint with a request timeout
func NewService(endpoint string, timeout time.Duration) Service {
	return NewServiceWithClient(&http.Client{Timeout: timeout}, endpoint)
}

// NewServiceWithClient creates a new Service with a custom HTTP client (for testing)
func NewServiceWithClient(client *http.Client, endpoint string) Service {
	return &httpService{
		client:   client,
		endpoint: endpoint,
	}
}

// channelListResponse represents the directory API JSON payload
type channelListResponse struct {
	Response []model.Channel `json:"response"`
}

// FetchChannels issues one GET to the directory endpoint. A payload without
// "response" yields an empty list.
func (s *httpService) FetchChannels(ctx context.Context) ([]model.Channel, error) {
	if s.endpoint == "" {
		return nil, errors.New(errors.CodeInvalidArg, "directory endpoint is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidArg, "failed to build directory request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tvguide")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "failed to fetch channel directory")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New(errors.CodeExternal, fmt.Sprintf("channel directory returned status %d", resp.StatusCode))
	}

	var payload channelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to parse channel directory")
	}

	if payload.Response == nil {
		return []model.Channel{}, nil
	}
	return payload.Response, nil
}
