package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	instantlydomain "github.com/clearpipe/outreach-insights-api/infrastructure/integrator/instantly/domain"
	"github.com/clearpipe/outreach-insights-api/internal/config"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/dashboarding"
	dashboardingmocks "github.com/clearpipe/outreach-insights-api/internal/usecases/dashboarding/mocks"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/summarizing/mocks"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/tenancy"
	tenancymocks "github.com/clearpipe/outreach-insights-api/internal/usecases/tenancy/mocks"
	"github.com/clearpipe/outreach-insights-api/pkg/apiErrors"
	"github.com/clearpipe/outreach-insights-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func handlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Fetch.RequestTimeoutSeconds = 5
	return cfg
}

func acmeTenant() *domain.Tenant {
	return &domain.Tenant{Subdomain: "acme", Name: "Acme"}
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestEmailDashboardSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenants := tenancymocks.NewMockResolver(ctrl)
	tenants.EXPECT().Resolve("acme", gomock.Nil()).Return(acmeTenant(), nil)

	service := dashboardingmocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		EmailDashboard(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *domain.Tenant, window *domain.DateRange) (*domain.DashboardResult, error) {
			assert.Equal(t, "acme", tenant.Subdomain)
			require.NotNil(t, window)
			assert.Equal(t, "2025-03-01", window.Start.Format("2006-01-02"))
			assert.Equal(t, "2025-03-31", window.End.Format("2006-01-02"))

			return &domain.DashboardResult{
				Data: domain.DashboardData{
					Metrics: []domain.Metric{{Title: "Emails Sent", Value: "1,000"}},
				},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/email?client=acme&startDate=2025-03-01&endDate=2025-03-31", nil)
	rec := httptest.NewRecorder()

	EmailDashboard(handlerConfig(), tenants, service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Metrics, 1)
	assert.Equal(t, "Emails Sent", resp.Data.Metrics[0].Title)
}

func TestEmailDashboardTenantFromHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenants := tenancymocks.NewMockResolver(ctrl)
	tenants.EXPECT().Resolve("acme", gomock.Nil()).Return(acmeTenant(), nil)

	service := dashboardingmocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		EmailDashboard(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.DashboardResult{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/email?startDate=2025-03-01&endDate=2025-03-31", nil)
	req.Header.Set("X-Tenant", "acme")
	rec := httptest.NewRecorder()

	EmailDashboard(handlerConfig(), tenants, service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailDashboardPassesClaimsToResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerClaims := &domain.Claims{UserID: 7, TenantSlug: "acme", UserRoleID: domain.RoleClient}

	tenants := tenancymocks.NewMockResolver(ctrl)
	tenants.EXPECT().Resolve("", callerClaims).Return(acmeTenant(), nil)

	service := dashboardingmocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		EmailDashboard(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.DashboardResult{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/email?startDate=2025-03-01&endDate=2025-03-31", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, callerClaims))
	rec := httptest.NewRecorder()

	EmailDashboard(handlerConfig(), tenants, service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmailDashboardMissingDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenants := tenancymocks.NewMockResolver(ctrl)
	tenants.EXPECT().Resolve("acme", gomock.Nil()).Return(acmeTenant(), nil)

	service := dashboardingmocks.NewMockDashboarder(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/email?client=acme", nil)
	rec := httptest.NewRecorder()

	EmailDashboard(handlerConfig(), tenants, service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
}

func TestDashboardErrorMapping(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedCode   string
		expectedStatus int
	}{
		{
			name:           "missing api key",
			err:            dashboarding.ErrMissingAPIKey,
			expectedCode:   apiErrors.ErrMissingAPIKey,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid upstream credentials",
			err:            instantlydomain.ErrInvalidAPIKey,
			expectedCode:   apiErrors.ErrUpstreamAuth,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rate limited after retries",
			err:            instantlydomain.ErrRateLimited,
			expectedCode:   apiErrors.ErrUpstreamBusy,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "upstream server failure",
			err:            instantlydomain.ErrUpstreamServer,
			expectedCode:   apiErrors.ErrUpstreamServer,
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "deadline exceeded",
			err:            context.DeadlineExceeded,
			expectedCode:   apiErrors.ErrUpstreamTimeout,
			expectedStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tenants := tenancymocks.NewMockResolver(ctrl)
			tenants.EXPECT().Resolve("acme", gomock.Nil()).Return(acmeTenant(), nil)

			service := dashboardingmocks.NewMockDashboarder(ctrl)
			service.EXPECT().
				EmailDashboard(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/email?client=acme&startDate=2025-03-01&endDate=2025-03-31", nil)
			rec := httptest.NewRecorder()

			EmailDashboard(handlerConfig(), tenants, service).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestDashboardTenantResolutionFailures(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedCode   string
		expectedStatus int
	}{
		{
			name:           "unknown tenant",
			err:            tenancy.ErrTenantNotFound,
			expectedCode:   apiErrors.ErrTenantNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "forbidden tenant",
			err:            tenancy.ErrNotAuthorized,
			expectedCode:   apiErrors.ErrTenantForbidden,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no tenant in request",
			err:            tenancy.ErrNoTenant,
			expectedCode:   apiErrors.ErrMissingRequiredData,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tenants := tenancymocks.NewMockResolver(ctrl)
			tenants.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			service := dashboardingmocks.NewMockDashboarder(ctrl)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/email?client=ghost&startDate=2025-03-01&endDate=2025-03-31", nil)
			rec := httptest.NewRecorder()

			EmailDashboard(handlerConfig(), tenants, service).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestSummaryDashboardDatesOptional(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenants := tenancymocks.NewMockResolver(ctrl)
	tenants.EXPECT().Resolve("acme", gomock.Nil()).Return(acmeTenant(), nil)

	summary := mocks.NewMockSummarizer(ctrl)
	summary.EXPECT().
		Overview(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(&domain.DashboardData{Metrics: []domain.Metric{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary?client=acme", nil)
	rec := httptest.NewRecorder()

	SummaryDashboard(handlerConfig(), tenants, summary).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Data.Metrics)
	assert.Empty(t, resp.Data.Metrics)
}

func TestDashboardInvalidDateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenants := tenancymocks.NewMockResolver(ctrl)
	tenants.EXPECT().Resolve("acme", gomock.Nil()).Return(acmeTenant(), nil)

	service := dashboardingmocks.NewMockDashboarder(ctrl)

	// startDate after endDate
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/email?client=acme&startDate=2025-03-31&endDate=2025-03-01", nil)
	rec := httptest.NewRecorder()

	EmailDashboard(handlerConfig(), tenants, service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
}
