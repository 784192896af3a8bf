package lemlist

import (
	"context"
	"sync"

	lemlistdomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/domain"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/lemlistclient"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Engagement is one tenant's campaign list plus the raw activity feed for
// the requested window. Unique-lead reduction happens downstream.
type Engagement struct {
	Campaigns  []domain.Campaign
	Activities []lemlistdomain.Activity
}

// Integrator exposes the multichannel platform to the usecase layer.
type Integrator interface {
	FetchEngagement(ctx context.Context, creds lemlistclient.Credentials, window *domain.DateRange) (*Engagement, error)
	ValidateKey(ctx context.Context, creds lemlistclient.Credentials) error
}

type LemlistIntegrator struct {
	cfg    *config.Config
	Client lemlistclient.Client
}

func New(cfg *config.Config, client lemlistclient.Client) *LemlistIntegrator {
	return &LemlistIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchEngagement fetches campaigns and the activity feed concurrently. The
// activity feed is the primary call; a campaign-list failure degrades to an
// empty list rather than failing the request.
func (s *LemlistIntegrator) FetchEngagement(ctx context.Context, creds lemlistclient.Credentials, window *domain.DateRange) (*Engagement, error) {
	var (
		campaigns    []domain.Campaign
		activities   []lemlistdomain.Activity
		campaignsErr error
		activityErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		campaigns, campaignsErr = s.Client.ListCampaigns(ctx, creds)
	}()

	go func() {
		defer wg.Done()
		activities, activityErr = s.Client.ListActivities(ctx, creds, window)
	}()

	wg.Wait()

	if activityErr != nil {
		logrus.WithError(activityErr).Error("lemlist: failed to fetch activity feed")
		return nil, activityErr
	}

	if campaignsErr != nil {
		logrus.WithError(campaignsErr).Warn("lemlist: campaign list fetch failed, continuing without it")
		campaigns = []domain.Campaign{}
	}

	return &Engagement{
		Campaigns:  campaigns,
		Activities: activities,
	}, nil
}

func (s *LemlistIntegrator) ValidateKey(ctx context.Context, creds lemlistclient.Credentials) error {
	_, err := s.Client.ListCampaigns(ctx, creds)
	return err
}
