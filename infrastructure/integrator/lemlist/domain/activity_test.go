package lemlistdomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func activity(eventType, leadID, email string) Activity {
	return Activity{
		ID:        "a-" + eventType + "-" + leadID + email,
		Type:      eventType,
		LeadID:    leadID,
		Email:     email,
		CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestLeadKey(t *testing.T) {
	assert.Equal(t, "lead-1", activity(TypeEmailsSent, "lead-1", "a@b.com").LeadKey())
	assert.Equal(t, "a@b.com", activity(TypeEmailsSent, "", "a@b.com").LeadKey())
	assert.Equal(t, "", activity(TypeEmailsSent, "", "").LeadKey())
}

func TestUniqueLeadsDedupesEvents(t *testing.T) {
	activities := []Activity{
		// lead-1 opened three times, still one unique opener
		activity(TypeEmailsSent, "lead-1", ""),
		activity(TypeEmailsOpened, "lead-1", ""),
		activity(TypeEmailsOpened, "lead-1", ""),
		activity(TypeEmailsOpened, "lead-1", ""),
		activity(TypeEmailsSent, "lead-2", ""),
		activity(TypeEmailsOpened, "lead-2", ""),
	}

	assert.Equal(t, 2, UniqueLeads(activities, TypeEmailsSent))
	assert.Equal(t, 2, UniqueLeads(activities, TypeEmailsOpened))
	assert.Equal(t, 0, UniqueLeads(activities, TypeEmailsReplied))
}

func TestUniqueLeadsSameLeadCountsInEachSet(t *testing.T) {
	activities := []Activity{
		activity(TypeEmailsSent, "lead-1", ""),
		activity(TypeEmailsOpened, "lead-1", ""),
	}

	// lead-1 appears once in the sent set and once in the opened set
	assert.Equal(t, 1, UniqueLeads(activities, TypeEmailsSent))
	assert.Equal(t, 1, UniqueLeads(activities, TypeEmailsOpened))
}

func TestUniqueLeadsFallsBackToEmail(t *testing.T) {
	activities := []Activity{
		activity(TypeEmailsSent, "", "a@b.com"),
		activity(TypeEmailsSent, "", "a@b.com"),
		activity(TypeEmailsSent, "lead-1", "a@b.com"),
	}

	// "a@b.com" and "lead-1" are distinct keys even if they are the same
	// person; the feed gives no way to tell
	assert.Equal(t, 2, UniqueLeads(activities, TypeEmailsSent))
}

func TestUniqueLeadsSkipsEmptyKeys(t *testing.T) {
	activities := []Activity{
		activity(TypeEmailsSent, "", ""),
		activity(TypeEmailsSent, "", ""),
	}

	assert.Equal(t, 0, UniqueLeads(activities, TypeEmailsSent))
}

func TestUniqueLeadsAcrossTypes(t *testing.T) {
	activities := []Activity{
		activity(TypeEmailsSent, "lead-1", ""),
		activity(TypeLinkedinSent, "lead-1", ""),
		activity(TypeLinkedinInviteDone, "lead-2", ""),
	}

	// lead-1 was contacted on both channels but is one contacted lead
	assert.Equal(t, 2, UniqueLeads(activities, TypeEmailsSent, TypeLinkedinSent, TypeLinkedinInviteDone))
}
