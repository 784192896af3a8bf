package dashboarding

import (
	"testing"

	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatComparison(t *testing.T) {
	testCases := []struct {
		name         string
		current      float64
		previous     float64
		isPercentage bool
		expected     string
	}{
		{
			name:     "both zero",
			current:  0,
			previous: 0,
			expected: "→ Same",
		},
		{
			name:     "previous zero count",
			current:  5,
			previous: 0,
			expected: "↑ +5 (new)",
		},
		{
			name:         "previous zero percentage",
			current:      12.5,
			previous:     0,
			isPercentage: true,
			expected:     "↑ +12.5% (new)",
		},
		{
			name:     "count increase",
			current:  120,
			previous: 100,
			expected: "↑ 20 (+20%)",
		},
		{
			name:     "count decrease",
			current:  80,
			previous: 100,
			expected: "↓ 20 (-20%)",
		},
		{
			name:     "count unchanged",
			current:  50,
			previous: 50,
			expected: "→ Same",
		},
		{
			name:         "percentage unchanged",
			current:      50,
			previous:     50,
			isPercentage: true,
			expected:     "→ Same",
		},
		{
			name:         "percentage point increase",
			current:      25.5,
			previous:     20,
			isPercentage: true,
			expected:     "↑ 5.5%",
		},
		{
			name:         "percentage point decrease",
			current:      15,
			previous:     20,
			isPercentage: true,
			expected:     "↓ 5.0%",
		},
		{
			name:     "large count formats with separator",
			current:  3500,
			previous: 1000,
			expected: "↑ 2,500 (+250%)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatComparison(tc.current, tc.previous, tc.isPercentage))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.00%", FormatRate(0))
	assert.Equal(t, "12.30%", FormatRate(12.3))
	assert.Equal(t, "100.00%", FormatRate(100))
}

func TestSortMetrics(t *testing.T) {
	metrics := []domain.Metric{
		{Title: "Click Rate"},
		{Title: "Replies"},
		{Title: "Custom Widget"},
		{Title: "Reply Rate"},
		{Title: "Positive Replies"},
		{Title: "Conversations"},
		{Title: "LinkedIn Invites Accepted"},
		{Title: "Emails Opened"},
		{Title: "Emails Sent"},
		{Title: "Total Contacted"},
		{Title: "Number of Campaigns"},
	}

	SortMetrics(metrics)

	titles := make([]string, 0, len(metrics))
	for _, m := range metrics {
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
		"Custom Widget",
	}, titles)
}

func TestSortMetricsSubstringFallback(t *testing.T) {
	metrics := []domain.Metric{
		{Title: "Unique Replies"},
		{Title: "Messages Sent"},
		{Title: "Active Campaigns"},
	}

	SortMetrics(metrics)

	assert.Equal(t, "Active Campaigns", metrics[0].Title)
	assert.Equal(t, "Messages Sent", metrics[1].Title)
	assert.Equal(t, "Unique Replies", metrics[2].Title)
}
