package handler

import (
	"context"
	"encoding/json"
	"net/http"

	instantlydomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/domain"
	lemlistdomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/lemlist/domain"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/dashboarding"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/summarizing"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/tenancy"
	"github.com/clearpipe/outreach-insights-api/pkg/apiErrors"
	"github.com/clearpipe/outreach-insights-api/pkg/log"
	"github.com/clearpipe/outreach-insights-api/pkg/middleware"
	"github.com/clearpipe/outreach-insights-api/pkg/utils"
	"github.com/pkg/errors"
)

// DashboardResponse is the success envelope shared by the dashboard routes.
type DashboardResponse struct {
	Data domain.DashboardData `json:"data"`
}

func EmailDashboard(cfg *config.Config, tenants tenancy.Resolver, service dashboarding.Dashboarder) http.Handler {
	return dashboardHandler(cfg, tenants, true, func(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardData, error) {
		result, err := service.EmailDashboard(ctx, tenant, window)
		if err != nil {
			return nil, err
		}
		return &result.Data, nil
	})
}

func MultichannelDashboard(cfg *config.Config, tenants tenancy.Resolver, service dashboarding.Dashboarder) http.Handler {
	return dashboardHandler(cfg, tenants, true, func(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardData, error) {
		result, err := service.MultichannelDashboard(ctx, tenant, window)
		if err != nil {
			return nil, err
		}
		return &result.Data, nil
	})
}

func SummaryDashboard(cfg *config.Config, tenants tenancy.Resolver, service summarizing.Summarizer) http.Handler {
	return dashboardHandler(cfg, tenants, false, func(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardData, error) {
		return service.Overview(ctx, tenant, window)
	})
}

// dashboardHandler handles the plumbing the three dashboard routes share:
// tenant resolution, date-window parsing, the request deadline, and error
// translation.
func dashboardHandler(
	cfg *config.Config,
	tenants tenancy.Resolver,
	datesRequired bool,
	build func(ctx context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardData, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenant, err := resolveTenant(r, tenants)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: tenant resolution failed")
			writeDashboardError(w, err)
			return
		}

		window, err := parseWindow(r, datesRequired)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant": tenant.Subdomain,
				"error":  err.Error(),
			}).Warn("dashboard: invalid date parameters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), cfg.RequestTimeout())
		defer cancel()

		data, err := build(ctx, tenant, window)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant": tenant.Subdomain,
				"path":   r.URL.Path,
				"error":  err.Error(),
			}).Error("dashboard: failed to build payload")
			writeDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(DashboardResponse{Data: *data}); err != nil {
			logger.WithFields(log.Fields{
				"tenant": tenant.Subdomain,
				"error":  err.Error(),
			}).Error("dashboard: failed to encode response")
		}
	})
}

// resolveTenant resolves the tenant in precedence order: the `client` query
// parameter, then the X-Tenant header, then the caller's own tenant claim.
func resolveTenant(r *http.Request, tenants tenancy.Resolver) (*domain.Tenant, error) {
	requested := r.URL.Query().Get("client")
	if requested == "" {
		requested = r.Header.Get("X-Tenant")
	}

	claims, _ := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)

	return tenants.Resolve(requested, claims)
}

func parseWindow(r *http.Request, required bool) (*domain.DateRange, error) {
	startParam := r.URL.Query().Get("startDate")
	endParam := r.URL.Query().Get("endDate")

	if startParam == "" && endParam == "" {
		if required {
			return nil, errors.New("startDate and endDate are required")
		}
		return nil, nil
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return nil, errors.Wrap(err, "invalid startDate")
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return nil, errors.Wrap(err, "invalid endDate")
	}

	return domain.NewDateRange(startDate, endDate)
}

// writeDashboardError maps domain and upstream failures onto the caller
// visible error taxonomy. Rate limits surface as a generic busy signal;
// the original 429 semantics stay internal.
func writeDashboardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrMissingAPIKey):
		apiErrors.WriteError(w, apiErrors.ErrMissingAPIKey, "No API key is configured for this source", nil)

	case errors.Is(err, tenancy.ErrTenantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "Tenant not found", nil)

	case errors.Is(err, tenancy.ErrNotAuthorized):
		apiErrors.WriteError(w, apiErrors.ErrTenantForbidden, "You do not have access to this tenant", nil)

	case errors.Is(err, tenancy.ErrNoTenant):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No tenant identified in the request", nil)

	case errors.Is(err, instantlydomain.ErrInvalidAPIKey),
		errors.Is(err, lemlistdomain.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamAuth, "The platform rejected the configured credentials", nil)

	case errors.Is(err, instantlydomain.ErrRateLimited),
		errors.Is(err, lemlistdomain.ErrRateLimited):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamBusy, "The upstream service is busy, try again shortly", nil)

	case errors.Is(err, instantlydomain.ErrUpstreamServer),
		errors.Is(err, lemlistdomain.ErrUpstreamServer):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamServer, "The upstream service failed", nil)

	case errors.Is(err, context.DeadlineExceeded):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamTimeout, "The request timed out while fetching upstream data", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Failed to fetch dashboard data", nil)
	}
}
