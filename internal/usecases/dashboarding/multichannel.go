package dashboarding

import (
	"fmt"
	"sort"

	"github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist"
	lemlistdomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/domain"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/pkg/utils"
)

// engagementTotals holds the unique-lead reductions over one period's
// activity feed. Every count here is set cardinality, never a raw event
// count, because a lead can emit many events of the same type.
type engagementTotals struct {
	campaigns int

	email    domain.EmailChannelStats
	linkedin domain.LinkedInChannelStats

	totalContacted int
	conversations  int
	replies        int
	positive       int
}

func reduceEngagementTotals(engagement *lemlist.Engagement) engagementTotals {
	totals := engagementTotals{}
	if engagement == nil {
		return totals
	}

	totals.campaigns = len(engagement.Campaigns)

	activities := engagement.Activities
	unique := func(types ...string) int {
		return lemlistdomain.UniqueLeads(activities, types...)
	}

	totals.email = domain.EmailChannelStats{
		Sent:         unique(lemlistdomain.TypeEmailsSent),
		Opened:       unique(lemlistdomain.TypeEmailsOpened),
		Clicked:      unique(lemlistdomain.TypeEmailsClicked),
		Replied:      unique(lemlistdomain.TypeEmailsReplied),
		Bounced:      unique(lemlistdomain.TypeEmailsBounced),
		Unsubscribed: unique(lemlistdomain.TypeEmailsUnsubscribed),
		Interested:   unique(lemlistdomain.TypeEmailsInterested),
	}

	totals.linkedin = domain.LinkedInChannelStats{
		Invites:    unique(lemlistdomain.TypeLinkedinSent, lemlistdomain.TypeLinkedinInviteDone),
		Visits:     unique(lemlistdomain.TypeLinkedinVisitDone),
		Accepted:   unique(lemlistdomain.TypeLinkedinInviteAccepted),
		Replied:    unique(lemlistdomain.TypeLinkedinReplied),
		Interested: unique(lemlistdomain.TypeLinkedinInterested),
	}

	// Contacted spans both channels: one lead reached by email and
	// LinkedIn still counts once.
	totals.totalContacted = unique(
		lemlistdomain.TypeEmailsSent,
		lemlistdomain.TypeLinkedinSent,
		lemlistdomain.TypeLinkedinInviteDone,
	)

	totals.conversations = unique(
		lemlistdomain.TypeEmailsReplied,
		lemlistdomain.TypeLinkedinReplied,
	)

	totals.replies = totals.email.Replied + totals.linkedin.Replied
	totals.positive = totals.email.Interested + totals.linkedin.Interested

	return totals
}

func (t engagementTotals) replyRate() float64 {
	return utils.Percentage(float64(t.conversations), float64(t.totalContacted))
}

func (t engagementTotals) clickRate() float64 {
	return utils.Percentage(float64(t.email.Clicked), float64(t.email.Sent))
}

func (s *Service) buildMultichannelDashboard(current, previous *lemlist.Engagement, withComparison bool) *domain.DashboardResult {
	totals := reduceEngagementTotals(current)
	prevTotals := reduceEngagementTotals(previous)

	compare := func(currentValue, previousValue float64, isPercentage bool) string {
		if !withComparison {
			return ""
		}
		return FormatComparison(currentValue, previousValue, isPercentage)
	}

	count := func(title string, currentValue, previousValue int) domain.Metric {
		return domain.Metric{
			Title:          title,
			Value:          utils.FormatNumber(currentValue),
			ComparisonText: compare(float64(currentValue), float64(previousValue), false),
		}
	}

	metrics := []domain.Metric{
		count("Number of Campaigns", totals.campaigns, prevTotals.campaigns),
		count("Total Contacted", totals.totalContacted, prevTotals.totalContacted),
		count("Emails Sent", totals.email.Sent, prevTotals.email.Sent),
		count("Emails Opened", totals.email.Opened, prevTotals.email.Opened),
		count("LinkedIn Invites Accepted", totals.linkedin.Accepted, prevTotals.linkedin.Accepted),
		count("Conversations", totals.conversations, prevTotals.conversations),
		{
			Title:          "Reply Rate",
			Value:          FormatRate(totals.replyRate()),
			ComparisonText: compare(totals.replyRate(), prevTotals.replyRate(), true),
		},
		count("Replies", totals.replies, prevTotals.replies),
		count("Positive Replies", totals.positive, prevTotals.positive),
		{
			Title:          "Click Rate",
			Value:          FormatRate(totals.clickRate()),
			ComparisonText: compare(totals.clickRate(), prevTotals.clickRate(), true),
		},
	}
	SortMetrics(metrics)

	comparison := domain.ChannelComparison{
		Email:    totals.email,
		LinkedIn: totals.linkedin,
	}

	var weekly []domain.WeeklyTrendPoint
	if current != nil {
		weekly = s.buildWeeklyTrend(current.Activities)
	}

	return &domain.DashboardResult{
		Data: domain.DashboardData{
			Metrics:           metrics,
			Funnel:            buildConversationFunnel(totals),
			WeeklyTrend:       weekly,
			ChannelComparison: &comparison,
		},
		Totals:   totals.sourceTotals(),
		Previous: prevTotals.sourceTotals(),
	}
}

func (t engagementTotals) sourceTotals() domain.SourceTotals {
	return domain.SourceTotals{
		Source:    domain.SourceLemlist,
		Campaigns: t.campaigns,
		Contacted: t.totalContacted,
		Sent:      t.email.Sent,
		Opened:    t.email.Opened,
		Clicked:   t.email.Clicked,
		Replies:   t.replies,
		Positive:  t.positive,
		Bounced:   t.email.Bounced,
	}
}

// buildConversationFunnel uses total contacted as the percentage baseline
// for every stage, unlike the email engagement funnel which chains off the
// preceding stage.
func buildConversationFunnel(totals engagementTotals) []domain.FunnelStage {
	if totals.totalContacted == 0 {
		return nil
	}

	base := float64(totals.totalContacted)

	return []domain.FunnelStage{
		{Name: "Contacted", Value: totals.totalContacted, Percentage: 100},
		{Name: "Engaged", Value: totals.engaged(), Percentage: utils.Percentage(float64(totals.engaged()), base)},
		{Name: "Conversations", Value: totals.conversations, Percentage: utils.Percentage(float64(totals.conversations), base)},
		{Name: "Positive", Value: totals.positive, Percentage: utils.Percentage(float64(totals.positive), base)},
	}
}

// engaged is the sum of per-channel engagement cardinalities. Leads are
// deduped within each channel interaction, not across them, so a lead who
// both opened an email and accepted an invite counts in both channels.
func (t engagementTotals) engaged() int {
	return t.email.Opened + t.email.Clicked + t.linkedin.Visits + t.linkedin.Accepted
}

// buildWeeklyTrend buckets activities by ISO-8601 week and keeps the most
// recent configured number of weeks. Counters are event counts except
// Replies, which is the bucket's unique-replier cardinality.
func (s *Service) buildWeeklyTrend(activities []lemlistdomain.Activity) []domain.WeeklyTrendPoint {
	weeks := s.cfg.Fetch.WeeklyTrendWeeks
	if weeks <= 0 {
		weeks = 8
	}

	type bucket struct {
		point    domain.WeeklyTrendPoint
		repliers map[string]struct{}
	}

	buckets := make(map[string]*bucket)

	for _, activity := range activities {
		if activity.CreatedAt.IsZero() {
			continue
		}

		year, week := activity.CreatedAt.ISOWeek()
		key := fmt.Sprintf("%04d-W%02d", year, week)

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				point:    domain.WeeklyTrendPoint{Week: key},
				repliers: make(map[string]struct{}),
			}
			buckets[key] = b
		}

		switch activity.Type {
		case lemlistdomain.TypeEmailsOpened:
			b.point.Opens++
		case lemlistdomain.TypeEmailsClicked:
			b.point.Clicks++
		case lemlistdomain.TypeLinkedinVisitDone:
			b.point.Visits++
		case lemlistdomain.TypeLinkedinInviteAccepted:
			b.point.Connects++
		case lemlistdomain.TypeLinkedinInviteDone:
			b.point.ConnectionRequests++
		case lemlistdomain.TypeEmailsReplied, lemlistdomain.TypeLinkedinReplied:
			if leadKey := activity.LeadKey(); leadKey != "" {
				b.repliers[leadKey] = struct{}{}
			}
		}
	}

	points := make([]domain.WeeklyTrendPoint, 0, len(buckets))
	for _, b := range buckets {
		b.point.Replies = len(b.repliers)
		points = append(points, b.point)
	}

	// ISO week keys are zero-padded, so lexical order is chronological.
	sort.Slice(points, func(i, j int) bool {
		return points[i].Week < points[j].Week
	})

	if len(points) > weeks {
		points = points[len(points)-weeks:]
	}

	return points
}
