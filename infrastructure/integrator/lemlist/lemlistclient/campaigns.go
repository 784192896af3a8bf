package lemlistclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	lemlistdomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/domain"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
)

// ListCampaigns fetches the account's campaigns, excluding soft-deleted ones.
func (c *LemlistClient) ListCampaigns(ctx context.Context, creds Credentials) ([]domain.Campaign, error) {
	params := url.Values{}
	params.Set("version", "v2")

	endpoint := fmt.Sprintf("%s/campaigns?%s", c.baseURL, params.Encode())

	body, err := c.get(ctx, creds, endpoint)
	if err != nil {
		return nil, err
	}

	var records []lemlistdomain.Campaign
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "lemlist: decoding campaign list")
	}

	campaigns := make([]domain.Campaign, 0, len(records))
	for _, record := range records {
		if record.IsDeleted {
			continue
		}

		campaigns = append(campaigns, domain.Campaign{
			ID:     record.ID,
			Name:   record.Name,
			Status: record.Status,
		})
	}

	return campaigns, nil
}
