package summarizing

import (
	"context"
	"sync"

	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/dashboarding"
	"github.com/clearpipe/outreach-insights-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Summarizer builds the cross-source overview payload.
type Summarizer interface {
	// Overview fans out to every source the tenant has enabled and merges
	// the typed totals into one combined metric set. Sources that fail are
	// excluded; no enabled sources, or all of them failing, yields an
	// empty metrics array rather than an error.
	Overview(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardData, error)
}

type Service struct {
	dashboards dashboarding.Dashboarder
}

func NewService(dashboards dashboarding.Dashboarder) Summarizer {
	return &Service{dashboards: dashboards}
}

type sourceResult struct {
	source string
	result *domain.DashboardResult
	err    error
}

func (s *Service) Overview(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardData, error) {
	sources := tenant.EnabledSources()
	if len(sources) == 0 {
		return &domain.DashboardData{Metrics: []domain.Metric{}}, nil
	}

	results := make([]sourceResult, len(sources))

	wg := sync.WaitGroup{}
	for i, source := range sources {
		wg.Add(1)
		go func(i int, source string) {
			defer wg.Done()

			var result *domain.DashboardResult
			var err error

			switch source {
			case domain.SourceEmail:
				result, err = s.dashboards.EmailDashboard(ctx, tenant, window)
			case domain.SourceLemlist:
				result, err = s.dashboards.MultichannelDashboard(ctx, tenant, window)
			}

			results[i] = sourceResult{source: source, result: result, err: err}
		}(i, source)
	}
	wg.Wait()

	combined := domain.SourceTotals{}
	previous := domain.SourceTotals{}
	merged := 0

	for _, r := range results {
		if r.err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant": tenant.Subdomain,
				"source": r.source,
				"error":  r.err.Error(),
			}).Warn("summary: source failed, excluding it from the overview")
			continue
		}

		combined.Add(r.result.Totals)
		previous.Add(r.result.Previous)
		merged++
	}

	if merged == 0 {
		return &domain.DashboardData{Metrics: []domain.Metric{}}, nil
	}

	return &domain.DashboardData{
		Metrics: buildSummaryMetrics(combined, previous, window != nil),
	}, nil
}

func summaryReplyRate(t domain.SourceTotals) float64 {
	return utils.Percentage(float64(t.Replies), float64(t.Sent))
}

func summaryClickRate(t domain.SourceTotals) float64 {
	return utils.Percentage(float64(t.Clicked), float64(t.Sent))
}

func buildSummaryMetrics(totals, previous domain.SourceTotals, withComparison bool) []domain.Metric {
	compare := func(currentValue, previousValue float64, isPercentage bool) string {
		if !withComparison {
			return ""
		}
		return dashboarding.FormatComparison(currentValue, previousValue, isPercentage)
	}

	count := func(title string, currentValue, previousValue int) domain.Metric {
		return domain.Metric{
			Title:          title,
			Value:          utils.FormatNumber(currentValue),
			ComparisonText: compare(float64(currentValue), float64(previousValue), false),
		}
	}

	metrics := []domain.Metric{
		count("Number of Campaigns", totals.Campaigns, previous.Campaigns),
		count("Total Contacted", totals.Contacted, previous.Contacted),
		count("Emails Sent", totals.Sent, previous.Sent),
		count("Emails Opened", totals.Opened, previous.Opened),
		{
			Title:          "Reply Rate",
			Value:          dashboarding.FormatRate(summaryReplyRate(totals)),
			ComparisonText: compare(summaryReplyRate(totals), summaryReplyRate(previous), true),
		},
		count("Replies", totals.Replies, previous.Replies),
		count("Positive Replies", totals.Positive, previous.Positive),
		{
			Title:          "Click Rate",
			Value:          dashboarding.FormatRate(summaryClickRate(totals)),
			ComparisonText: compare(summaryClickRate(totals), summaryClickRate(previous), true),
		},
	}
	dashboarding.SortMetrics(metrics)

	return metrics
}
