package dashboarding

import (
	"context"
	"sync"

	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/lemlistclient"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrMissingAPIKey means the tenant has no credentials configured for the
// requested source. User-actionable, never retried.
var ErrMissingAPIKey = errors.New("tenant has no API key configured for this source")

// Dashboarder builds per-source dashboard payloads.
type Dashboarder interface {
	// EmailDashboard aggregates the bulk-email platform for the window.
	// A nil window means all-time, with no previous-period comparisons.
	EmailDashboard(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardResult, error)

	// MultichannelDashboard aggregates the multichannel platform's
	// activity feed for the window.
	MultichannelDashboard(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardResult, error)
}

type Service struct {
	cfg              *config.Config
	instantlyService instantly.Integrator
	lemlistService   lemlist.Integrator
}

func NewService(cfg *config.Config, instantlyService instantly.Integrator, lemlistService lemlist.Integrator) Dashboarder {
	return &Service{
		cfg:              cfg,
		instantlyService: instantlyService,
		lemlistService:   lemlistService,
	}
}

func (s *Service) EmailDashboard(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardResult, error) {
	apiKey := tenant.APIKeys.Instantly
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	current, previous := s.fetchEmailPeriods(ctx, tenant, apiKey, window)
	if current.err != nil {
		return nil, current.err
	}

	return s.buildEmailDashboard(current.stats, previous.stats, window != nil), nil
}

func (s *Service) MultichannelDashboard(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardResult, error) {
	if tenant.APIKeys.Lemlist == "" || tenant.APIKeys.LemlistAccountEmail == "" {
		return nil, ErrMissingAPIKey
	}

	creds := lemlistclient.Credentials{
		Email:  tenant.APIKeys.LemlistAccountEmail,
		APIKey: tenant.APIKeys.Lemlist,
	}

	current, previous := s.fetchEngagementPeriods(ctx, tenant, creds, window)
	if current.err != nil {
		return nil, current.err
	}

	return s.buildMultichannelDashboard(current.engagement, previous.engagement, window != nil), nil
}

type emailPeriod struct {
	stats *instantly.AccountStats
	err   error
}

// fetchEmailPeriods fetches the current window and, when a window is set,
// the equal-length previous period concurrently. A previous-period failure
// degrades to zero-valued comparisons instead of failing the request.
func (s *Service) fetchEmailPeriods(ctx context.Context, tenant *domain.Tenant, apiKey string, window *domain.DateRange) (current, previous emailPeriod) {
	if window == nil {
		current.stats, current.err = s.instantlyService.FetchAccountStats(ctx, apiKey, nil)
		return current, previous
	}

	prevWindow := window.PreviousPeriod()

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current.stats, current.err = s.instantlyService.FetchAccountStats(ctx, apiKey, window)
	}()

	go func() {
		defer wg.Done()
		previous.stats, previous.err = s.instantlyService.FetchAccountStats(ctx, apiKey, &prevWindow)
	}()

	wg.Wait()

	if previous.err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant": tenant.Subdomain,
			"error":  previous.err.Error(),
		}).Warn("dashboard: previous-period email fetch failed, comparisons degrade to zero baseline")
		previous.stats = nil
	}

	return current, previous
}

type engagementPeriod struct {
	engagement *lemlist.Engagement
	err        error
}

func (s *Service) fetchEngagementPeriods(ctx context.Context, tenant *domain.Tenant, creds lemlistclient.Credentials, window *domain.DateRange) (current, previous engagementPeriod) {
	if window == nil {
		current.engagement, current.err = s.lemlistService.FetchEngagement(ctx, creds, nil)
		return current, previous
	}

	prevWindow := window.PreviousPeriod()

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		current.engagement, current.err = s.lemlistService.FetchEngagement(ctx, creds, window)
	}()

	go func() {
		defer wg.Done()
		previous.engagement, previous.err = s.lemlistService.FetchEngagement(ctx, creds, &prevWindow)
	}()

	wg.Wait()

	if previous.err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant": tenant.Subdomain,
			"error":  previous.err.Error(),
		}).Warn("dashboard: previous-period engagement fetch failed, comparisons degrade to zero baseline")
		previous.engagement = nil
	}

	return current, previous
}
