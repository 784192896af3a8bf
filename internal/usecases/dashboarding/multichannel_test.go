package dashboarding

import (
	"testing"
	"time"

	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist"
	lemlistdomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/domain"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(eventType, leadID string, createdAt time.Time) lemlistdomain.Activity {
	return lemlistdomain.Activity{
		Type:      eventType,
		LeadID:    leadID,
		CreatedAt: createdAt,
	}
}

func multichannelEngagement() *lemlist.Engagement {
	at := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	return &lemlist.Engagement{
		Campaigns: []domain.Campaign{{ID: "cp1", Name: "Outbound Q1"}},
		Activities: []lemlistdomain.Activity{
			// lead-1 reached by both channels, still one contacted lead
			event(lemlistdomain.TypeEmailsSent, "lead-1", at),
			event(lemlistdomain.TypeLinkedinSent, "lead-1", at),
			event(lemlistdomain.TypeEmailsSent, "lead-2", at),
			event(lemlistdomain.TypeEmailsSent, "lead-3", at),
			event(lemlistdomain.TypeLinkedinInviteDone, "lead-4", at),

			event(lemlistdomain.TypeEmailsOpened, "lead-1", at),
			event(lemlistdomain.TypeEmailsOpened, "lead-1", at),
			event(lemlistdomain.TypeEmailsOpened, "lead-2", at),
			event(lemlistdomain.TypeEmailsClicked, "lead-2", at),
			event(lemlistdomain.TypeLinkedinInviteAccepted, "lead-4", at),

			// lead-1 replied on both channels: one conversation, two replies
			event(lemlistdomain.TypeEmailsReplied, "lead-1", at),
			event(lemlistdomain.TypeLinkedinReplied, "lead-1", at),
			event(lemlistdomain.TypeEmailsInterested, "lead-1", at),
		},
	}
}

func TestReduceEngagementTotals(t *testing.T) {
	totals := reduceEngagementTotals(multichannelEngagement())

	assert.Equal(t, 1, totals.campaigns)
	assert.Equal(t, 4, totals.totalContacted)

	assert.Equal(t, 3, totals.email.Sent)
	assert.Equal(t, 2, totals.email.Opened)
	assert.Equal(t, 1, totals.email.Clicked)
	assert.Equal(t, 1, totals.email.Replied)

	assert.Equal(t, 2, totals.linkedin.Invites)
	assert.Equal(t, 1, totals.linkedin.Accepted)
	assert.Equal(t, 1, totals.linkedin.Replied)

	assert.Equal(t, 1, totals.conversations)
	assert.Equal(t, 2, totals.replies)
	assert.Equal(t, 1, totals.positive)

	// 1 conversation over 4 contacted
	assert.Equal(t, 25.0, totals.replyRate())
	// 1 clicker over 3 emailed
	assert.Equal(t, 33.3, totals.clickRate())
}

func TestBuildMultichannelDashboardMetricOrder(t *testing.T) {
	service := testService()

	result := service.buildMultichannelDashboard(multichannelEngagement(), nil, false)
	require.NotNil(t, result)
	require.Len(t, result.Data.Metrics, 10)

	titles := make([]string, 0, len(result.Data.Metrics))
	for _, m := range result.Data.Metrics {
		titles = append(titles, m.Title)
	}

	assert.Equal(t, []string{
		"Number of Campaigns",
		"Total Contacted",
		"Emails Sent",
		"Emails Opened",
		"LinkedIn Invites Accepted",
		"Conversations",
		"Reply Rate",
		"Replies",
		"Positive Replies",
		"Click Rate",
	}, titles)

	assert.Equal(t, "4", result.Data.Metrics[1].Value)
	assert.Equal(t, "25.00%", result.Data.Metrics[6].Value)
}

func TestBuildMultichannelDashboardEmpty(t *testing.T) {
	service := testService()

	result := service.buildMultichannelDashboard(&lemlist.Engagement{}, nil, false)
	require.NotNil(t, result)
	require.Len(t, result.Data.Metrics, 10)

	assert.Nil(t, result.Data.Funnel)
	assert.Empty(t, result.Data.WeeklyTrend)
	assert.Equal(t, domain.SourceTotals{Source: domain.SourceLemlist}, result.Totals)
}

func TestBuildConversationFunnelSharesBaseline(t *testing.T) {
	totals := engagementTotals{
		totalContacted: 200,
		conversations:  20,
		positive:       5,
		email:          domain.EmailChannelStats{Opened: 60, Clicked: 10},
		linkedin:       domain.LinkedInChannelStats{Visits: 8, Accepted: 2},
	}

	stages := buildConversationFunnel(totals)
	require.Len(t, stages, 4)

	assert.Equal(t, domain.FunnelStage{Name: "Contacted", Value: 200, Percentage: 100}, stages[0])
	// every stage is measured against contacted, not the preceding stage
	assert.Equal(t, domain.FunnelStage{Name: "Engaged", Value: 80, Percentage: 40}, stages[1])
	assert.Equal(t, domain.FunnelStage{Name: "Conversations", Value: 20, Percentage: 10}, stages[2])
	assert.Equal(t, domain.FunnelStage{Name: "Positive", Value: 5, Percentage: 2.5}, stages[3])
}

func TestBuildWeeklyTrend(t *testing.T) {
	service := testService()

	week1 := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)  // 2025-W10
	week2 := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC) // 2025-W11

	activities := []lemlistdomain.Activity{
		event(lemlistdomain.TypeEmailsOpened, "lead-1", week1),
		event(lemlistdomain.TypeEmailsOpened, "lead-1", week1),
		event(lemlistdomain.TypeLinkedinInviteDone, "lead-2", week1),
		// lead-1 replied twice in week 2, counted once
		event(lemlistdomain.TypeEmailsReplied, "lead-1", week2),
		event(lemlistdomain.TypeLinkedinReplied, "lead-1", week2),
		event(lemlistdomain.TypeEmailsReplied, "lead-3", week2),
		event(lemlistdomain.TypeEmailsClicked, "lead-3", week2),
	}

	points := service.buildWeeklyTrend(activities)
	require.Len(t, points, 2)

	assert.Equal(t, "2025-W10", points[0].Week)
	assert.Equal(t, 2, points[0].Opens)
	assert.Equal(t, 1, points[0].ConnectionRequests)
	assert.Equal(t, 0, points[0].Replies)

	assert.Equal(t, "2025-W11", points[1].Week)
	assert.Equal(t, 2, points[1].Replies)
	assert.Equal(t, 1, points[1].Clicks)
}

func TestBuildWeeklyTrendKeepsMostRecentWeeks(t *testing.T) {
	service := &Service{cfg: &config.Config{}}
	service.cfg.Fetch.WeeklyTrendWeeks = 2

	activities := make([]lemlistdomain.Activity, 0, 4)
	start := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		activities = append(activities, event(lemlistdomain.TypeEmailsOpened, "lead-1", start.AddDate(0, 0, 7*i)))
	}

	points := service.buildWeeklyTrend(activities)
	require.Len(t, points, 2)

	assert.Equal(t, "2025-W04", points[0].Week)
	assert.Equal(t, "2025-W05", points[1].Week)
}
