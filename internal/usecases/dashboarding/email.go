package dashboarding

import (
	"sort"

	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/pkg/utils"
)

// emailTotals is the running sum across every campaign's normalized
// analytics. Campaigns whose fetch failed have no entry and contribute zero.
type emailTotals struct {
	campaigns    int
	sent         int
	opened       int
	clicked      int
	replied      int
	interested   int
	bounced      int
	unsubscribed int
	leads        int
	completed    int
	blocked      int
}

func reduceEmailTotals(stats *instantly.AccountStats) emailTotals {
	totals := emailTotals{}
	if stats == nil {
		return totals
	}

	totals.campaigns = len(stats.Campaigns)

	for _, campaignStats := range stats.PerCampaign {
		if campaignStats == nil {
			continue
		}

		totals.sent += campaignStats.Sent
		totals.opened += campaignStats.Opened
		totals.clicked += campaignStats.Clicked
		totals.replied += campaignStats.Replied
		totals.interested += campaignStats.Interested
		totals.bounced += campaignStats.Bounced
		totals.unsubscribed += campaignStats.Unsubscribed
		totals.leads += campaignStats.Leads
		totals.completed += campaignStats.Completed
		totals.blocked += campaignStats.Blocked
	}

	return totals
}

// rateDenominator is the open/reply-rate denominator: delivered emails
// (sent minus bounced) when positive, otherwise raw sent.
func (t emailTotals) rateDenominator() int {
	delivered := t.sent - t.bounced
	if delivered > 0 {
		return delivered
	}
	return t.sent
}

func (t emailTotals) openRate() float64 {
	return utils.Percentage(float64(t.opened), float64(t.rateDenominator()))
}

func (t emailTotals) replyRate() float64 {
	return utils.Percentage(float64(t.replied), float64(t.rateDenominator()))
}

func (s *Service) buildEmailDashboard(current, previous *instantly.AccountStats, withComparison bool) *domain.DashboardResult {
	totals := reduceEmailTotals(current)
	prevTotals := reduceEmailTotals(previous)

	compare := func(currentValue, previousValue float64, isPercentage bool) string {
		if !withComparison {
			return ""
		}
		return FormatComparison(currentValue, previousValue, isPercentage)
	}

	metrics := []domain.Metric{
		{
			Title:          "Emails Sent",
			Value:          utils.FormatNumber(totals.sent),
			ComparisonText: compare(float64(totals.sent), float64(prevTotals.sent), false),
		},
		{
			Title:          "Open Rate",
			Value:          FormatRate(totals.openRate()),
			ComparisonText: compare(totals.openRate(), prevTotals.openRate(), true),
		},
		{
			Title:          "Reply Rate",
			Value:          FormatRate(totals.replyRate()),
			ComparisonText: compare(totals.replyRate(), prevTotals.replyRate(), true),
		},
		{
			Title:          "Positive Reply",
			Value:          utils.FormatNumber(totals.interested),
			ComparisonText: compare(float64(totals.interested), float64(prevTotals.interested), false),
		},
		{
			Title:          "Number of Campaigns",
			Value:          utils.FormatNumber(totals.campaigns),
			ComparisonText: compare(float64(totals.campaigns), float64(prevTotals.campaigns), false),
		},
	}

	return &domain.DashboardResult{
		Data: domain.DashboardData{
			Metrics:     metrics,
			Funnel:      buildEngagementFunnel(totals),
			Leaderboard: s.buildCampaignLeaderboard(current),
		},
		Totals: domain.SourceTotals{
			Source:    domain.SourceEmail,
			Campaigns: totals.campaigns,
			Contacted: totals.leads,
			Sent:      totals.sent,
			Opened:    totals.opened,
			Clicked:   totals.clicked,
			Replies:   totals.replied,
			Positive:  totals.interested,
			Bounced:   totals.bounced,
		},
		Previous: domain.SourceTotals{
			Source:    domain.SourceEmail,
			Campaigns: prevTotals.campaigns,
			Contacted: prevTotals.leads,
			Sent:      prevTotals.sent,
			Opened:    prevTotals.opened,
			Clicked:   prevTotals.clicked,
			Replies:   prevTotals.replied,
			Positive:  prevTotals.interested,
			Bounced:   prevTotals.bounced,
		},
	}
}

// buildEngagementFunnel chains each stage's percentage off the immediately
// preceding stage's absolute count, with sent as the 100% baseline.
func buildEngagementFunnel(totals emailTotals) []domain.FunnelStage {
	if totals.sent == 0 {
		return nil
	}

	stages := []domain.FunnelStage{
		{Name: "Sent", Value: totals.sent, Percentage: 100},
		{Name: "Opened", Value: totals.opened, Percentage: utils.Percentage(float64(totals.opened), float64(totals.sent))},
		{Name: "Replied", Value: totals.replied, Percentage: utils.Percentage(float64(totals.replied), float64(totals.opened))},
		{Name: "Positive", Value: totals.interested, Percentage: utils.Percentage(float64(totals.interested), float64(totals.replied))},
	}

	return stages
}

// buildCampaignLeaderboard ranks campaigns by replies, names truncated for
// chart labels.
func (s *Service) buildCampaignLeaderboard(stats *instantly.AccountStats) []domain.LeaderboardEntry {
	if stats == nil {
		return nil
	}

	maxNameLen := s.cfg.Fetch.LeaderboardNameMaxLen
	if maxNameLen <= 0 {
		maxNameLen = 30
	}

	entries := make([]domain.LeaderboardEntry, 0, len(stats.Campaigns))
	for _, campaign := range stats.Campaigns {
		campaignStats := stats.PerCampaign[campaign.ID]
		if campaignStats == nil {
			continue
		}

		totals := emailTotals{
			sent:    campaignStats.Sent,
			opened:  campaignStats.Opened,
			replied: campaignStats.Replied,
			bounced: campaignStats.Bounced,
		}

		entries = append(entries, domain.LeaderboardEntry{
			Name:           utils.TruncateWithEllipsis(campaign.Name, maxNameLen),
			Value:          campaignStats.Replied,
			TotalContacted: campaignStats.Leads,
			OpenRate:       totals.openRate(),
			ReplyRate:      totals.replyRate(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	return entries
}
