package dashboarding

import (
	"testing"

	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly"
	instantlydomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/domain"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *Service {
	return &Service{cfg: &config.Config{}}
}

func emailAccountStats() *instantly.AccountStats {
	return &instantly.AccountStats{
		Campaigns: []domain.Campaign{
			{ID: "c1", Name: "Spring Launch"},
			{ID: "c2", Name: "Follow-up Sequence"},
		},
		PerCampaign: map[string]*instantlydomain.CampaignStats{
			"c1": {Sent: 800, Opened: 300, Clicked: 40, Replied: 60, Bounced: 50, Leads: 700, Interested: 12},
			"c2": {Sent: 200, Opened: 100, Clicked: 10, Replied: 40, Bounced: 0, Leads: 150, Interested: 8},
		},
	}
}

func TestBuildEmailDashboardMetrics(t *testing.T) {
	service := testService()

	result := service.buildEmailDashboard(emailAccountStats(), nil, false)
	require.NotNil(t, result)
	require.Len(t, result.Data.Metrics, 5)

	// 1000 sent, 50 bounced: rates use the 950 delivered denominator
	expected := []domain.Metric{
		{Title: "Emails Sent", Value: "1,000"},
		{Title: "Open Rate", Value: "42.10%"},
		{Title: "Reply Rate", Value: "10.50%"},
		{Title: "Positive Reply", Value: "20"},
		{Title: "Number of Campaigns", Value: "2"},
	}
	assert.Equal(t, expected, result.Data.Metrics)

	assert.Equal(t, domain.SourceTotals{
		Source:    domain.SourceEmail,
		Campaigns: 2,
		Contacted: 850,
		Sent:      1000,
		Opened:    400,
		Clicked:   50,
		Replies:   100,
		Positive:  20,
		Bounced:   50,
	}, result.Totals)
}

func TestBuildEmailDashboardEmpty(t *testing.T) {
	service := testService()

	result := service.buildEmailDashboard(&instantly.AccountStats{}, nil, false)
	require.NotNil(t, result)
	require.Len(t, result.Data.Metrics, 5)

	expected := []domain.Metric{
		{Title: "Emails Sent", Value: "0"},
		{Title: "Open Rate", Value: "0.00%"},
		{Title: "Reply Rate", Value: "0.00%"},
		{Title: "Positive Reply", Value: "0"},
		{Title: "Number of Campaigns", Value: "0"},
	}
	assert.Equal(t, expected, result.Data.Metrics)

	assert.Nil(t, result.Data.Funnel)
	assert.Empty(t, result.Data.Leaderboard)
}

func TestBuildEmailDashboardComparisons(t *testing.T) {
	service := testService()

	previous := &instantly.AccountStats{
		Campaigns: []domain.Campaign{{ID: "c1", Name: "Spring Launch"}},
		PerCampaign: map[string]*instantlydomain.CampaignStats{
			"c1": {Sent: 500, Opened: 200, Replied: 50, Interested: 20},
		},
	}

	result := service.buildEmailDashboard(emailAccountStats(), previous, true)
	require.Len(t, result.Data.Metrics, 5)

	assert.Equal(t, "↑ 500 (+100%)", result.Data.Metrics[0].ComparisonText)
	assert.Equal(t, "→ Same", result.Data.Metrics[3].ComparisonText)

	for _, metric := range result.Data.Metrics {
		assert.NotEmpty(t, metric.ComparisonText, metric.Title)
	}
}

func TestBuildEmailDashboardWithoutComparisons(t *testing.T) {
	service := testService()

	result := service.buildEmailDashboard(emailAccountStats(), emailAccountStats(), false)

	for _, metric := range result.Data.Metrics {
		assert.Empty(t, metric.ComparisonText, metric.Title)
	}
}

func TestBuildEngagementFunnelChainsStages(t *testing.T) {
	totals := emailTotals{sent: 1000, opened: 400, replied: 100, interested: 25}

	stages := buildEngagementFunnel(totals)
	require.Len(t, stages, 4)

	assert.Equal(t, domain.FunnelStage{Name: "Sent", Value: 1000, Percentage: 100}, stages[0])
	// each stage's percentage is relative to the preceding stage
	assert.Equal(t, domain.FunnelStage{Name: "Opened", Value: 400, Percentage: 40}, stages[1])
	assert.Equal(t, domain.FunnelStage{Name: "Replied", Value: 100, Percentage: 25}, stages[2])
	assert.Equal(t, domain.FunnelStage{Name: "Positive", Value: 25, Percentage: 25}, stages[3])
}

func TestBuildCampaignLeaderboard(t *testing.T) {
	service := testService()

	stats := &instantly.AccountStats{
		Campaigns: []domain.Campaign{
			{ID: "c1", Name: "Quiet Campaign"},
			{ID: "c2", Name: "A Campaign With A Very Long Name That Gets Truncated"},
			{ID: "c3", Name: "No Analytics"},
		},
		PerCampaign: map[string]*instantlydomain.CampaignStats{
			"c1": {Sent: 100, Opened: 20, Replied: 2, Leads: 90},
			"c2": {Sent: 400, Opened: 200, Replied: 30, Leads: 350},
		},
	}

	entries := service.buildCampaignLeaderboard(stats)
	require.Len(t, entries, 2)

	// ranked by replies, campaigns without analytics dropped
	assert.Equal(t, 30, entries[0].Value)
	assert.Equal(t, "A Campaign With A Very Long...", entries[0].Name)
	assert.Len(t, []rune(entries[0].Name), 30)
	assert.Equal(t, 350, entries[0].TotalContacted)
	assert.Equal(t, 50.0, entries[0].OpenRate)

	assert.Equal(t, "Quiet Campaign", entries[1].Name)
	assert.Equal(t, 2, entries[1].Value)
}

func TestRateDenominatorFallsBackToSent(t *testing.T) {
	// every email bounced: delivered is zero, raw sent is the denominator
	totals := emailTotals{sent: 10, bounced: 10, opened: 5}
	assert.Equal(t, 10, totals.rateDenominator())
	assert.Equal(t, 50.0, totals.openRate())
}
