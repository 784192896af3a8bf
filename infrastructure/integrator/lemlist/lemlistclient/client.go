package lemlistclient

import (
	"context"
	"io"
	"net/http"
	"time"

	lemlistdomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/domain"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
)

// Credentials is the Basic auth pair the platform expects: the account email
// plus the tenant's API key.
type Credentials struct {
	Email  string
	APIKey string
}

type Client interface {
	ListCampaigns(ctx context.Context, creds Credentials) ([]domain.Campaign, error)
	ListActivities(ctx context.Context, creds Credentials, window *domain.DateRange) ([]lemlistdomain.Activity, error)
}

type LemlistClient struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	maxRecords int
}

func NewClient(cfg *config.Config) Client {
	pageSize := cfg.Fetch.ActivityPageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	maxRecords := cfg.Fetch.ActivityMaxRecords
	if maxRecords <= 0 {
		maxRecords = 10000
	}

	return &LemlistClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Lemlist.TimeoutSeconds) * time.Second,
		},
		baseURL:    cfg.Lemlist.BaseURL,
		pageSize:   pageSize,
		maxRecords: maxRecords,
	}
}

func (c *LemlistClient) get(ctx context.Context, creds Credentials, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "lemlist: building request")
	}

	req.SetBasicAuth(creds.Email, creds.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "lemlist: executing request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, errors.Wrap(readErr, "lemlist: reading response body")
		}
		return data, nil

	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, lemlistdomain.ErrInvalidCredentials

	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, lemlistdomain.ErrRateLimited

	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Wrapf(lemlistdomain.ErrUpstreamServer, "status %d", resp.StatusCode)

	default:
		return nil, errors.Errorf("lemlist: request failed with status %s", resp.Status)
	}
}
