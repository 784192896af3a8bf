package lemlistclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	lemlistdomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/domain"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListActivities pages through the activity feed (pages of pageSize, capped
// at maxRecords). The feed is reverse-chronological, so when a window is
// given, pages are filtered client-side and pagination stops early once the
// oldest record on a page predates the window start.
func (c *LemlistClient) ListActivities(ctx context.Context, creds Credentials, window *domain.DateRange) ([]lemlistdomain.Activity, error) {
	activities := make([]lemlistdomain.Activity, 0)
	fetched := 0
	offset := 0

	for {
		page, err := c.fetchActivityPage(ctx, creds, offset)
		if err != nil {
			return nil, err
		}

		fetched += len(page)

		pastWindow := false
		for _, activity := range page {
			if window == nil {
				activities = append(activities, activity)
				continue
			}

			if window.Contains(activity.CreatedAt) {
				activities = append(activities, activity)
			} else if activity.CreatedAt.Before(window.Start) {
				pastWindow = true
			}
		}

		if len(page) < c.pageSize || fetched >= c.maxRecords {
			break
		}

		// the oldest record on this page already predates the window, so
		// every following page is older still
		if window != nil && len(page) > 0 {
			oldest := page[len(page)-1].CreatedAt
			if oldest.Before(window.Start) && pastWindow {
				break
			}
		}

		offset += c.pageSize
	}

	logrus.WithFields(logrus.Fields{
		"fetched":  fetched,
		"retained": len(activities),
	}).Debug("lemlist: activity feed paged")

	return activities, nil
}

func (c *LemlistClient) fetchActivityPage(ctx context.Context, creds Credentials, offset int) ([]lemlistdomain.Activity, error) {
	params := url.Values{}
	params.Set("version", "v2")
	params.Set("limit", strconv.Itoa(c.pageSize))
	params.Set("offset", strconv.Itoa(offset))

	endpoint := fmt.Sprintf("%s/activities?%s", c.baseURL, params.Encode())

	body, err := c.get(ctx, creds, endpoint)
	if err != nil {
		return nil, err
	}

	var page []lemlistdomain.Activity
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "lemlist: decoding activity page")
	}

	return page, nil
}
