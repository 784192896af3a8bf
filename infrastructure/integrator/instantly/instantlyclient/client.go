package instantlyclient

import (
	"context"
	"io"
	"net/http"
	"time"

	instantlydomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/domain"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Client interface {
	ListCampaigns(ctx context.Context, apiKey string) ([]domain.Campaign, error)
	GetCampaignAnalytics(ctx context.Context, apiKey, campaignID string) (instantlydomain.CampaignAnalytics, error)
	GetCampaignAnalyticsByDate(ctx context.Context, apiKey, campaignID string, window domain.DateRange) (instantlydomain.CampaignAnalytics, error)
}

type InstantlyClient struct {
	httpClient     *http.Client
	baseURL        string
	retryAttempts  int
	retryBaseDelay time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &InstantlyClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Instantly.TimeoutSeconds) * time.Second,
		},
		baseURL:        cfg.Instantly.BaseURL,
		retryAttempts:  cfg.Fetch.RetryMaxAttempts,
		retryBaseDelay: time.Duration(cfg.Fetch.RetryBaseDelayMillis) * time.Millisecond,
	}
}

// doWithRetry issues the request and retries transient failures (429s,
// transport errors, upstream 5xx) with exponential backoff: base delay, then
// doubled per attempt. A cancelled or expired context is never retried, and
// a 401 fails immediately since retrying a bad key cannot help.
func (c *InstantlyClient) doWithRetry(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		if attempt > 0 {
			delay := c.retryBaseDelay * time.Duration(1<<(attempt-1))

			logrus.WithFields(logrus.Fields{
				"attempt": attempt,
				"delay":   delay.String(),
			}).Debug("instantly: retrying request after backoff")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		body, retryable, err := c.doOnce(ctx, endpoint)
		if err == nil {
			return body, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if !retryable {
			return nil, err
		}

		lastErr = err
	}

	return nil, lastErr
}

func (c *InstantlyClient) doOnce(ctx context.Context, endpoint string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "instantly: building request")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// transport errors are retried with the same budget as 429s
		return nil, true, errors.Wrap(err, "instantly: executing request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, true, errors.Wrap(readErr, "instantly: reading response body")
		}
		return data, false, nil

	case resp.StatusCode == http.StatusUnauthorized:
		return nil, false, instantlydomain.ErrInvalidAPIKey

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, instantlydomain.ErrRateLimited

	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, true, errors.Wrapf(instantlydomain.ErrUpstreamServer, "status %d", resp.StatusCode)

	default:
		return nil, false, errors.Errorf("instantly: request failed with status %s", resp.Status)
	}
}
