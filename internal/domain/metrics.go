package domain

// Dashboard source identifiers.
const (
	SourceEmail   = "email"
	SourceLemlist = "lemlist"
)

// Metric is one pre-formatted dashboard figure.
type Metric struct {
	Title          string `json:"title"`
	Value          string `json:"value"`
	ComparisonText string `json:"comparisonText,omitempty"`
	Icon           string `json:"icon,omitempty"`
}

// FunnelStage is one step of a funnel chart. Percentage is relative to the
// funnel's documented baseline, not always the previous stage.
type FunnelStage struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

// LeaderboardEntry ranks a campaign by replies.
type LeaderboardEntry struct {
	Name           string  `json:"name"`
	Value          int     `json:"value"`
	TotalContacted int     `json:"totalContacted"`
	OpenRate       float64 `json:"openRate"`
	ReplyRate      float64 `json:"replyRate"`
}

// WeeklyTrendPoint accumulates engagement counters for one ISO-8601 week.
// Replies counts unique replying leads, not reply events.
type WeeklyTrendPoint struct {
	Week               string `json:"week"`
	Opens              int    `json:"opens"`
	Clicks             int    `json:"clicks"`
	Visits             int    `json:"visits"`
	Connects           int    `json:"connects"`
	ConnectionRequests int    `json:"connectionRequests"`
	Replies            int    `json:"replies"`
}

// EmailChannelStats are unique-lead counts for the email channel.
type EmailChannelStats struct {
	Sent         int `json:"sent"`
	Opened       int `json:"opened"`
	Clicked      int `json:"clicked"`
	Replied      int `json:"replied"`
	Bounced      int `json:"bounced"`
	Unsubscribed int `json:"unsubscribed"`
	Interested   int `json:"interested"`
}

// LinkedInChannelStats are unique-lead counts for the LinkedIn channel.
type LinkedInChannelStats struct {
	Invites    int `json:"invites"`
	Visits     int `json:"visits"`
	Accepted   int `json:"accepted"`
	Replied    int `json:"replied"`
	Interested int `json:"interested"`
}

type ChannelComparison struct {
	Email    EmailChannelStats    `json:"email"`
	LinkedIn LinkedInChannelStats `json:"linkedin"`
}

// SourceTotals is the typed intermediate each per-source dashboard exposes to
// the overview aggregator, so the summary never has to parse numbers back out
// of formatted metric values.
type SourceTotals struct {
	Source    string `json:"-"`
	Campaigns int    `json:"-"`
	Contacted int    `json:"-"`
	Sent      int    `json:"-"`
	Opened    int    `json:"-"`
	Clicked   int    `json:"-"`
	Replies   int    `json:"-"`
	Positive  int    `json:"-"`
	Bounced   int    `json:"-"`
}

// Add accumulates another source's totals.
func (t *SourceTotals) Add(other SourceTotals) {
	t.Campaigns += other.Campaigns
	t.Contacted += other.Contacted
	t.Sent += other.Sent
	t.Opened += other.Opened
	t.Clicked += other.Clicked
	t.Replies += other.Replies
	t.Positive += other.Positive
	t.Bounced += other.Bounced
}

// DashboardData is the payload placed under "data" in dashboard responses.
type DashboardData struct {
	Metrics           []Metric           `json:"metrics"`
	Funnel            []FunnelStage      `json:"funnel,omitempty"`
	Leaderboard       []LeaderboardEntry `json:"campaignLeaderboard,omitempty"`
	WeeklyTrend       []WeeklyTrendPoint `json:"weeklyTrend,omitempty"`
	ChannelComparison *ChannelComparison `json:"channelComparison,omitempty"`
}

// DashboardResult couples the response payload with the typed totals the
// summary aggregator consumes. Previous holds the comparison-period totals
// and is zero when the request had no date window.
type DashboardResult struct {
	Data     DashboardData
	Totals   SourceTotals
	Previous SourceTotals
}
