package instantlyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	instantlydomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/domain"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
)

// GetCampaignAnalytics fetches the all-time analytics record for a campaign.
func (c *InstantlyClient) GetCampaignAnalytics(ctx context.Context, apiKey, campaignID string) (instantlydomain.CampaignAnalytics, error) {
	params := url.Values{}
	params.Set("api_key", apiKey)

	endpoint := fmt.Sprintf("%s/campaigns/%s/analytics?%s", c.baseURL, url.PathEscape(campaignID), params.Encode())

	return c.fetchAnalytics(ctx, endpoint)
}

// GetCampaignAnalyticsByDate fetches analytics restricted to a window. The
// platform caps the window at 30 days; the integrator splits wider ranges
// before calling here.
func (c *InstantlyClient) GetCampaignAnalyticsByDate(ctx context.Context, apiKey, campaignID string, window domain.DateRange) (instantlydomain.CampaignAnalytics, error) {
	params := url.Values{}
	params.Set("api_key", apiKey)
	params.Set("start_date", window.Start.Format(time.DateOnly))
	params.Set("end_date", window.End.Format(time.DateOnly))

	endpoint := fmt.Sprintf("%s/campaigns/%s/analytics-by-date?%s", c.baseURL, url.PathEscape(campaignID), params.Encode())

	return c.fetchAnalytics(ctx, endpoint)
}

func (c *InstantlyClient) fetchAnalytics(ctx context.Context, endpoint string) (instantlydomain.CampaignAnalytics, error) {
	body, err := c.doWithRetry(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var record instantlydomain.CampaignAnalytics
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, errors.Wrap(err, "instantly: decoding analytics payload")
	}

	return record, nil
}
