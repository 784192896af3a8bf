package instantlydomain

import (
	"strconv"
	"strings"
)

// CampaignAnalytics is one raw analytics payload. The exact field names vary
// across API versions and campaign ages, so the record stays loosely typed
// and values are pulled out through ordered candidate keys.
type CampaignAnalytics map[string]any

// Candidate key lists per quantity, most accurate first. The unique_* fields
// are preferred so one lead opening five times does not inflate rates.
var (
	SentKeys         = []string{"sent_count", "unique_sent_count", "total_emails_sent", "emails_sent", "sent"}
	OpenedKeys       = []string{"unique_open_count", "open_count", "unique_opened_count", "opened_count", "opens", "opened"}
	ClickedKeys      = []string{"unique_click_count", "click_count", "clicks", "clicked"}
	RepliedKeys      = []string{"unique_reply_count", "reply_count", "replies", "replied"}
	BouncedKeys      = []string{"bounce_count", "bounced_count", "bounced"}
	UnsubscribedKeys = []string{"unsubscribe_count", "unsubscribed_count", "unsubscribed"}
)

// ExtractValue walks candidateKeys in order and returns the first value that
// resolves to an integer. Numeric values are used as-is; strings are trimmed
// and integer-parsed, with ""/"null"/"undefined" skipped. No usable
// candidate resolves to 0.
func ExtractValue(record CampaignAnalytics, candidateKeys ...string) int {
	for _, key := range candidateKeys {
		raw, ok := record[key]
		if !ok || raw == nil {
			continue
		}

		switch v := raw.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			trimmed := strings.TrimSpace(v)
			if trimmed == "" || trimmed == "null" || trimmed == "undefined" {
				continue
			}
			if n, err := strconv.Atoi(trimmed); err == nil {
				return n
			}
		}
	}

	return 0
}

// LeadStats is the nested campaign_lead_stats block. HasInterested records
// whether the payload carried the interested figure at all; the by-date
// analytics endpoint omits it.
type LeadStats struct {
	Total         int
	Blocked       int
	Stopped       int
	Completed     int
	InProgress    int
	NotStarted    int
	Interested    int
	HasInterested bool
}

// LeadStats extracts the campaign_lead_stats sub-record.
func (a CampaignAnalytics) LeadStats() LeadStats {
	stats := LeadStats{}

	raw, ok := a["campaign_lead_stats"]
	if !ok || raw == nil {
		return stats
	}

	nested, ok := raw.(map[string]any)
	if !ok {
		return stats
	}

	record := CampaignAnalytics(nested)
	stats.Total = ExtractValue(record, "total")
	stats.Blocked = ExtractValue(record, "blocked")
	stats.Stopped = ExtractValue(record, "stopped")
	stats.Completed = ExtractValue(record, "completed")
	stats.InProgress = ExtractValue(record, "inprogress")
	stats.NotStarted = ExtractValue(record, "notStarted")

	if _, present := nested["interested"]; present {
		stats.Interested = ExtractValue(record, "interested")
		stats.HasInterested = true
	}

	return stats
}

// CampaignStats is the normalized per-campaign result every downstream
// aggregation works with.
type CampaignStats struct {
	Sent          int
	Opened        int
	Clicked       int
	Replied       int
	Bounced       int
	Unsubscribed  int
	Leads         int
	Completed     int
	Blocked       int
	Interested    int
	HasInterested bool
}

// Normalize reduces one raw analytics payload to canonical counts.
func Normalize(record CampaignAnalytics) *CampaignStats {
	if record == nil {
		return nil
	}

	leadStats := record.LeadStats()

	return &CampaignStats{
		Sent:          ExtractValue(record, SentKeys...),
		Opened:        ExtractValue(record, OpenedKeys...),
		Clicked:       ExtractValue(record, ClickedKeys...),
		Replied:       ExtractValue(record, RepliedKeys...),
		Bounced:       ExtractValue(record, BouncedKeys...),
		Unsubscribed:  ExtractValue(record, UnsubscribedKeys...),
		Leads:         leadStats.Total,
		Completed:     leadStats.Completed,
		Blocked:       leadStats.Blocked,
		Interested:    leadStats.Interested,
		HasInterested: leadStats.HasInterested,
	}
}

// MergeChunks combines per-chunk stats for one campaign. Event counters are
// per-period deltas and sum across chunks; the lead-state figures (leads,
// completed, blocked, interested) are cumulative snapshots, so summing them
// would double count and the max is taken instead. Nil chunks contribute
// nothing; all-nil input yields nil.
func MergeChunks(chunks []*CampaignStats) *CampaignStats {
	var merged *CampaignStats

	for _, chunk := range chunks {
		if chunk == nil {
			continue
		}

		if merged == nil {
			copied := *chunk
			merged = &copied
			continue
		}

		merged.Sent += chunk.Sent
		merged.Opened += chunk.Opened
		merged.Clicked += chunk.Clicked
		merged.Replied += chunk.Replied
		merged.Bounced += chunk.Bounced
		merged.Unsubscribed += chunk.Unsubscribed

		merged.Leads = max(merged.Leads, chunk.Leads)
		merged.Completed = max(merged.Completed, chunk.Completed)
		merged.Blocked = max(merged.Blocked, chunk.Blocked)
		merged.Interested = max(merged.Interested, chunk.Interested)
		merged.HasInterested = merged.HasInterested || chunk.HasInterested
	}

	return merged
}
