package instantlyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
)

type campaignRecord struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Status json.Number `json:"status"`
}

// ListCampaigns fetches every campaign visible to the API key.
func (c *InstantlyClient) ListCampaigns(ctx context.Context, apiKey string) ([]domain.Campaign, error) {
	params := url.Values{}
	params.Set("api_key", apiKey)

	endpoint := fmt.Sprintf("%s/campaigns?%s", c.baseURL, params.Encode())

	body, err := c.doWithRetry(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var records []campaignRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "instantly: decoding campaign list")
	}

	campaigns := make([]domain.Campaign, 0, len(records))
	for _, record := range records {
		campaigns = append(campaigns, domain.Campaign{
			ID:     record.ID,
			Name:   record.Name,
			Status: record.Status.String(),
		})
	}

	return campaigns, nil
}
