package lemlistdomain

import "time"

// Engagement event kinds emitted by the platform's activity feed.
const (
	TypeEmailsSent         = "emailsSent"
	TypeEmailsOpened       = "emailsOpened"
	TypeEmailsClicked      = "emailsClicked"
	TypeEmailsReplied      = "emailsReplied"
	TypeEmailsBounced      = "emailsBounced"
	TypeEmailsUnsubscribed = "emailsUnsubscribed"
	TypeEmailsInterested   = "emailsInterested"

	TypeLinkedinSent           = "linkedinSent"
	TypeLinkedinVisitDone      = "linkedinVisitDone"
	TypeLinkedinInviteDone     = "linkedinInviteDone"
	TypeLinkedinInviteAccepted = "linkedinInviteAccepted"
	TypeLinkedinReplied        = "linkedinReplied"
	TypeLinkedinInterested     = "linkedinInterested"
)

// Activity is one engagement event. The same lead can generate many events
// of the same type, so counting always dedupes by lead.
type Activity struct {
	ID         string    `json:"_id"`
	Type       string    `json:"type"`
	CampaignID string    `json:"campaignId,omitempty"`
	LeadID     string    `json:"leadId,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	IsFirst    bool      `json:"isFirst,omitempty"`
}

// LeadKey identifies the lead behind an activity: leadId when present,
// otherwise the email address. Empty when neither is set.
func (a Activity) LeadKey() string {
	if a.LeadID != "" {
		return a.LeadID
	}
	return a.Email
}

// Campaign is the platform's campaign record. Soft-deleted campaigns stay in
// the listing and are filtered out client-side.
type Campaign struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Status    string `json:"status,omitempty"`
	IsDeleted bool   `json:"isDeleted,omitempty"`
}

// UniqueLeads returns how many distinct leads produced at least one activity
// of any of the given types. This is set cardinality, never an event count.
func UniqueLeads(activities []Activity, types ...string) int {
	return len(UniqueLeadSet(activities, types...))
}

// UniqueLeadSet collects the distinct lead keys behind the given event types.
func UniqueLeadSet(activities []Activity, types ...string) map[string]struct{} {
	wanted := make(map[string]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	leads := make(map[string]struct{})
	for _, activity := range activities {
		if _, ok := wanted[activity.Type]; !ok {
			continue
		}

		key := activity.LeadKey()
		if key == "" {
			continue
		}

		leads[key] = struct{}{}
	}

	return leads
}
