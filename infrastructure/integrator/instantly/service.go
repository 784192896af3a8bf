package instantly

import (
	"context"
	"sync"

	instantlydomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/domain"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/instantlyclient"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// AccountStats is one tenant's campaign list plus normalized per-campaign
// analytics. A campaign whose fetch failed has no entry and contributes zero
// to every aggregate.
type AccountStats struct {
	Campaigns   []domain.Campaign
	PerCampaign map[string]*instantlydomain.CampaignStats
}

// Integrator exposes the bulk-email platform to the usecase layer.
type Integrator interface {
	// FetchAccountStats lists campaigns and fetches analytics for each one,
	// optionally restricted to a date window. A nil window means all-time.
	FetchAccountStats(ctx context.Context, apiKey string, window *domain.DateRange) (*AccountStats, error)

	// ValidateKey probes whether the API key is still accepted upstream.
	ValidateKey(ctx context.Context, apiKey string) error
}

type InstantlyIntegrator struct {
	cfg    *config.Config
	Client instantlyclient.Client
}

func New(cfg *config.Config, client instantlyclient.Client) *InstantlyIntegrator {
	return &InstantlyIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *InstantlyIntegrator) FetchAccountStats(ctx context.Context, apiKey string, window *domain.DateRange) (*AccountStats, error) {
	campaigns, err := s.Client.ListCampaigns(ctx, apiKey)
	if err != nil {
		logrus.WithError(err).Error("instantly: failed to list campaigns")
		return nil, err
	}

	stats := &AccountStats{
		Campaigns:   campaigns,
		PerCampaign: make(map[string]*instantlydomain.CampaignStats, len(campaigns)),
	}

	if len(campaigns) == 0 {
		return stats, nil
	}

	// Every campaign's analytics call runs concurrently, bounded by the
	// configured semaphore. A single campaign failing must not fail the
	// batch, so results are settled individually.
	maxConcurrent := s.cfg.Fetch.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	sem := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	results := make([]*instantlydomain.CampaignStats, len(campaigns))

	for i, campaign := range campaigns {
		wg.Add(1)
		go func(idx int, campaign domain.Campaign) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			campaignStats, err := s.fetchCampaignStats(ctx, apiKey, campaign.ID, window)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"error":       err.Error(),
				}).Warn("instantly: campaign analytics fetch failed, contributing zero")
				return
			}

			results[idx] = campaignStats
		}(i, campaign)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, campaign := range campaigns {
		if results[i] != nil {
			stats.PerCampaign[campaign.ID] = results[i]
		}
	}

	return stats, nil
}

// fetchCampaignStats fetches one campaign's analytics. Windows wider than
// the platform's 30-day cap are split into chunks fetched in parallel and
// merged; the by-date endpoint omits the interested lead count, so it is
// backfilled from a follow-up all-time call.
func (s *InstantlyIntegrator) fetchCampaignStats(ctx context.Context, apiKey, campaignID string, window *domain.DateRange) (*instantlydomain.CampaignStats, error) {
	if window == nil {
		record, err := s.Client.GetCampaignAnalytics(ctx, apiKey, campaignID)
		if err != nil {
			return nil, err
		}
		return instantlydomain.Normalize(record), nil
	}

	chunkMaxDays := s.cfg.Fetch.ChunkMaxDays
	if chunkMaxDays <= 0 {
		chunkMaxDays = 30
	}

	chunks := window.SplitChunks(chunkMaxDays)

	chunkStats := make([]*instantlydomain.CampaignStats, len(chunks))
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(idx int, chunk domain.DateRange) {
			defer wg.Done()

			record, err := s.Client.GetCampaignAnalyticsByDate(ctx, apiKey, campaignID, chunk)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaignID,
					"chunk_start": chunk.Start,
					"chunk_end":   chunk.End,
					"error":       err.Error(),
				}).Warn("instantly: chunk fetch failed, excluding from merge")
				return
			}

			chunkStats[idx] = instantlydomain.Normalize(record)
		}(i, chunk)
	}

	wg.Wait()

	merged := instantlydomain.MergeChunks(chunkStats)
	if merged == nil {
		// no chunk yielded data; the campaign resolves to nothing this request
		logrus.WithField("campaign_id", campaignID).Warn("instantly: no chunk returned data for campaign")
		return nil, nil
	}

	if !merged.HasInterested {
		merged.Interested = s.fetchInterested(ctx, apiKey, campaignID)
		merged.HasInterested = true
	}

	return merged, nil
}

func (s *InstantlyIntegrator) fetchInterested(ctx context.Context, apiKey, campaignID string) int {
	record, err := s.Client.GetCampaignAnalytics(ctx, apiKey, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("instantly: interested backfill fetch failed")
		return 0
	}

	return record.LeadStats().Interested
}

func (s *InstantlyIntegrator) ValidateKey(ctx context.Context, apiKey string) error {
	_, err := s.Client.ListCampaigns(ctx, apiKey)
	return err
}
