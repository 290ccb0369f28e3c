package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ritviksingh/thm-card-go/internal/config"
	"github.com/ritviksingh/thm-card-go/pkg/errors"
)

// ProfileFetcher downloads public profile pages. One GET per run, bounded by
// the client timeout, no retries.
type ProfileFetcher struct {
	httpClient *http.Client
	logger     *zap.Logger
	baseURL    string
	userAgent  string
}

func NewProfileFetcher(cfg config.ProfileConfig, logger *zap.Logger) *ProfileFetcher {
	return &ProfileFetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:    logger,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
	}
}

// ProfileURL returns the canonical public profile URL for a username.
func (f *ProfileFetcher) ProfileURL(username string) string {
	return fmt.Sprintf("%s/p/%s", f.baseURL, username)
}

// Fetch downloads the profile page body for username. Transport errors,
// timeouts and non-2xx statuses all surface as *errors.FetchError; the
// caller degrades to an empty document rather than aborting.
func (f *ProfileFetcher) Fetch(ctx context.Context, username string) (string, error) {
	url := f.ProfileURL(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.NewFetchError("building request", url, 0, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	f.logger.Info("Fetching profile page", zap.String("url", url))

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", errors.NewFetchError("HTTP request failed", url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewFetchError("unexpected status code", url, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewFetchError("reading response body", url, resp.StatusCode, err)
	}

	f.logger.Debug("Profile page fetched",
		zap.String("url", url),
		zap.Int("bytes", len(body)))

	return string(body), nil
}
