package handler

import (
	"net/http"

	"github.com/clearpipe/outreach-insights-api/infrastructure/repository"
	"github.com/clearpipe/outreach-insights-api/internal/api/handler/router"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/authenticating"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/dashboarding"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/summarizing"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/tenancy"
	"github.com/clearpipe/outreach-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboards(
	cfg *config.Config,
	tenants tenancy.Resolver,
	dashboards dashboarding.Dashboarder,
	summaries summarizing.Summarizer,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/email",
			Method:      http.MethodGet,
			Handler:     EmailDashboard(cfg, tenants, dashboards),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/lemlist",
			Method:      http.MethodGet,
			Handler:     MultichannelDashboard(cfg, tenants, dashboards),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     SummaryDashboard(cfg, tenants, summaries),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Tenants(tenants repository.TenantRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants",
			Method:      http.MethodGet,
			Handler:     ListTenants(tenants),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tenants",
			Method:      http.MethodPost,
			Handler:     CreateTenant(tenants),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tenants/:subdomain",
			Method:      http.MethodGet,
			Handler:     GetTenant(tenants),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/tenants/:subdomain/keys",
			Method:      http.MethodPut,
			Handler:     UpdateTenantKeys(tenants),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tenants/:subdomain/features",
			Method:      http.MethodPut,
			Handler:     UpdateTenantFeatures(tenants),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
