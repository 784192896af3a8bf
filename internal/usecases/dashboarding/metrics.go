package dashboarding

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/pkg/utils"
)

// FormatComparison renders the delta between the current and previous period
// for one metric. The literal output format is part of the dashboard
// contract and must not drift:
//
//	both zero                -> "→ Same"
//	previous zero            -> "↑ +5 (new)"
//	counts                   -> "↑ 20 (+20%)"
//	percentages              -> "↑ 5.5%" (absolute percent-point delta)
func FormatComparison(current, previous float64, isPercentage bool) string {
	if previous == 0 && current == 0 {
		return "→ Same"
	}

	if previous == 0 {
		if isPercentage {
			return fmt.Sprintf("↑ +%.1f%% (new)", current)
		}
		return fmt.Sprintf("↑ +%s (new)", utils.FormatNumber(int(math.Round(current))))
	}

	change := current - previous
	changePercent := change / previous * 100

	if isPercentage {
		if math.Abs(changePercent) < 0.1 {
			return "→ Same"
		}

		arrow := "↑"
		if change < 0 {
			arrow = "↓"
		}
		return fmt.Sprintf("%s %.1f%%", arrow, math.Abs(change))
	}

	if math.Abs(change) < 0.01 {
		return "→ Same"
	}

	arrow, sign := "↑", "+"
	if change < 0 {
		arrow, sign = "↓", "-"
	}

	return fmt.Sprintf("%s %s (%s%.0f%%)",
		arrow,
		utils.FormatNumber(int(math.Round(math.Abs(change)))),
		sign,
		math.Abs(changePercent),
	)
}

// metricPriority fixes the display order of known metric titles.
var metricPriority = map[string]int{
	"Number of Campaigns":       1,
	"Total Contacted":           2,
	"Emails Sent":               3,
	"Emails Opened":             4,
	"LinkedIn Invites Accepted": 5,
	"Conversations":             6,
	"Reply Rate":                7,
	"Replies":                   8,
	"Positive Replies":          8,
	"Click Rate":                8,
}

// metricSecondary breaks ties inside the shared tier.
var metricSecondary = map[string]int{
	"Replies":          1,
	"Positive Replies": 2,
	"Click Rate":       3,
}

// metricOrder resolves a title's priority, falling back to substring
// matching for titles the table does not anticipate; fully unknown titles
// sort last.
func metricOrder(title string) int {
	if order, ok := metricPriority[title]; ok {
		return order
	}

	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "campaign"):
		return 1
	case strings.Contains(lower, "contacted"):
		return 2
	case strings.Contains(lower, "sent"):
		return 3
	case strings.Contains(lower, "open"):
		return 4
	case strings.Contains(lower, "linkedin"):
		return 5
	case strings.Contains(lower, "conversation"):
		return 6
	case strings.Contains(lower, "reply rate"):
		return 7
	case strings.Contains(lower, "repl"), strings.Contains(lower, "click"):
		return 8
	default:
		return 999
	}
}

// SortMetrics orders metrics by the fixed priority table.
func SortMetrics(metrics []domain.Metric) {
	sort.SliceStable(metrics, func(i, j int) bool {
		oi, oj := metricOrder(metrics[i].Title), metricOrder(metrics[j].Title)
		if oi != oj {
			return oi < oj
		}
		return metricSecondary[metrics[i].Title] < metricSecondary[metrics[j].Title]
	})
}

// FormatRate renders a percentage value for metric display, e.g. "12.30%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}
