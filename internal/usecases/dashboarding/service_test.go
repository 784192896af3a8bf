package dashboarding_test

import (
	"context"
	"testing"
	"time"

	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly"
	instantlydomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/domain"
	instantlymocks "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/mocks"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist"
	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/lemlistclient"
	lemlistmocks "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/mocks"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/dashboarding"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serviceTenant() *domain.Tenant {
	return &domain.Tenant{
		Subdomain: "acme",
		APIKeys: domain.APIKeys{
			Instantly:           "instantly-key",
			Lemlist:             "lemlist-key",
			LemlistAccountEmail: "team@acme.io",
		},
	}
}

func marchWindow() *domain.DateRange {
	return &domain.DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func accountStats(sent int) *instantly.AccountStats {
	return &instantly.AccountStats{
		Campaigns: []domain.Campaign{{ID: "c1", Name: "Launch"}},
		PerCampaign: map[string]*instantlydomain.CampaignStats{
			"c1": {Sent: sent, Opened: sent / 2},
		},
	}
}

func TestEmailDashboardFetchesBothPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	window := marchWindow()
	prevWindow := window.PreviousPeriod()

	instantlyService := instantlymocks.NewMockIntegrator(ctrl)
	instantlyService.EXPECT().FetchAccountStats(gomock.Any(), "instantly-key", window).Return(accountStats(1000), nil)
	instantlyService.EXPECT().FetchAccountStats(gomock.Any(), "instantly-key", &prevWindow).Return(accountStats(500), nil)

	lemlistService := lemlistmocks.NewMockIntegrator(ctrl)

	service := dashboarding.NewService(&config.Config{}, instantlyService, lemlistService)

	result, err := service.EmailDashboard(context.Background(), serviceTenant(), window)
	require.NoError(t, err)

	assert.Equal(t, 1000, result.Totals.Sent)
	assert.Equal(t, 500, result.Previous.Sent)
	assert.Equal(t, "↑ 500 (+100%)", result.Data.Metrics[0].ComparisonText)
}

func TestEmailDashboardAllTimeSkipsPreviousPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	instantlyService := instantlymocks.NewMockIntegrator(ctrl)
	instantlyService.EXPECT().FetchAccountStats(gomock.Any(), "instantly-key", gomock.Nil()).Return(accountStats(1000), nil)

	service := dashboarding.NewService(&config.Config{}, instantlyService, lemlistmocks.NewMockIntegrator(ctrl))

	result, err := service.EmailDashboard(context.Background(), serviceTenant(), nil)
	require.NoError(t, err)

	for _, metric := range result.Data.Metrics {
		assert.Empty(t, metric.ComparisonText, metric.Title)
	}
}

func TestEmailDashboardPreviousPeriodFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	window := marchWindow()
	prevWindow := window.PreviousPeriod()

	instantlyService := instantlymocks.NewMockIntegrator(ctrl)
	instantlyService.EXPECT().FetchAccountStats(gomock.Any(), "instantly-key", window).Return(accountStats(1000), nil)
	instantlyService.EXPECT().FetchAccountStats(gomock.Any(), "instantly-key", &prevWindow).Return(nil, errors.New("upstream down"))

	service := dashboarding.NewService(&config.Config{}, instantlyService, lemlistmocks.NewMockIntegrator(ctrl))

	result, err := service.EmailDashboard(context.Background(), serviceTenant(), window)
	require.NoError(t, err)

	// previous period degrades to a zero baseline, current data survives
	assert.Equal(t, 1000, result.Totals.Sent)
	assert.Equal(t, 0, result.Previous.Sent)
	assert.Equal(t, "↑ +1,000 (new)", result.Data.Metrics[0].ComparisonText)
}

func TestEmailDashboardCurrentPeriodFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	window := marchWindow()
	prevWindow := window.PreviousPeriod()

	upstreamErr := errors.New("upstream down")

	instantlyService := instantlymocks.NewMockIntegrator(ctrl)
	instantlyService.EXPECT().FetchAccountStats(gomock.Any(), "instantly-key", window).Return(nil, upstreamErr)
	instantlyService.EXPECT().FetchAccountStats(gomock.Any(), "instantly-key", &prevWindow).Return(accountStats(500), nil)

	service := dashboarding.NewService(&config.Config{}, instantlyService, lemlistmocks.NewMockIntegrator(ctrl))

	_, err := service.EmailDashboard(context.Background(), serviceTenant(), window)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestEmailDashboardMissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := dashboarding.NewService(
		&config.Config{},
		instantlymocks.NewMockIntegrator(ctrl),
		lemlistmocks.NewMockIntegrator(ctrl),
	)

	tenant := serviceTenant()
	tenant.APIKeys.Instantly = ""

	_, err := service.EmailDashboard(context.Background(), tenant, marchWindow())
	assert.ErrorIs(t, err, dashboarding.ErrMissingAPIKey)
}

func TestMultichannelDashboardMissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := dashboarding.NewService(
		&config.Config{},
		instantlymocks.NewMockIntegrator(ctrl),
		lemlistmocks.NewMockIntegrator(ctrl),
	)

	tenant := serviceTenant()
	tenant.APIKeys.LemlistAccountEmail = ""

	_, err := service.MultichannelDashboard(context.Background(), tenant, marchWindow())
	assert.ErrorIs(t, err, dashboarding.ErrMissingAPIKey)
}

func TestMultichannelDashboardFetchesBothPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	window := marchWindow()
	prevWindow := window.PreviousPeriod()
	creds := lemlistclient.Credentials{Email: "team@acme.io", APIKey: "lemlist-key"}

	lemlistService := lemlistmocks.NewMockIntegrator(ctrl)
	lemlistService.EXPECT().FetchEngagement(gomock.Any(), creds, window).Return(&lemlist.Engagement{
		Campaigns: []domain.Campaign{{ID: "cp1", Name: "Outbound"}},
	}, nil)
	lemlistService.EXPECT().FetchEngagement(gomock.Any(), creds, &prevWindow).Return(&lemlist.Engagement{}, nil)

	service := dashboarding.NewService(&config.Config{}, instantlymocks.NewMockIntegrator(ctrl), lemlistService)

	result, err := service.MultichannelDashboard(context.Background(), serviceTenant(), window)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Totals.Campaigns)
	assert.Equal(t, 0, result.Previous.Campaigns)
}
