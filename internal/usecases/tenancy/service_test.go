package tenancy

import (
	"testing"

	"github.com/clearpipe/outreach-insights-api/infrastructure/repository/mocks"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func claims(roleID int, tenantSlug string) *domain.Claims {
	return &domain.Claims{
		UserID:     7,
		UserRoleID: roleID,
		TenantSlug: tenantSlug,
	}
}

func TestAuthorize(t *testing.T) {
	testCases := []struct {
		name      string
		subdomain string
		claims    *domain.Claims
		expected  error
	}{
		{
			name:      "nil claims denied",
			subdomain: "acme",
			claims:    nil,
			expected:  ErrNotAuthorized,
		},
		{
			name:      "admin reaches any tenant",
			subdomain: "acme",
			claims:    claims(domain.RoleAdmin, ""),
		},
		{
			name:      "supervisor reaches any tenant",
			subdomain: "acme",
			claims:    claims(domain.RoleSupervisor, "other"),
		},
		{
			name:      "client reaches own tenant",
			subdomain: "acme",
			claims:    claims(domain.RoleClient, "acme"),
		},
		{
			name:      "client denied on another tenant",
			subdomain: "acme",
			claims:    claims(domain.RoleClient, "rival"),
			expected:  ErrNotAuthorized,
		},
		{
			name:      "client without tenant slug denied",
			subdomain: "acme",
			claims:    claims(domain.RoleClient, ""),
			expected:  ErrNotAuthorized,
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockTenantRepository(ctrl))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.Authorize(tc.subdomain, tc.claims)
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestResolveLoadsRequestedTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().GetTenantBySubdomain("acme").Return(&domain.Tenant{Subdomain: "acme", Name: "Acme"}, nil)

	service := NewService(repo)

	tenant, err := service.Resolve("acme", claims(domain.RoleAdmin, ""))
	require.NoError(t, err)
	assert.Equal(t, "acme", tenant.Subdomain)
}

func TestResolveFallsBackToCallerTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().GetTenantBySubdomain("acme").Return(&domain.Tenant{Subdomain: "acme"}, nil)

	service := NewService(repo)

	tenant, err := service.Resolve("", claims(domain.RoleClient, "acme"))
	require.NoError(t, err)
	assert.Equal(t, "acme", tenant.Subdomain)
}

func TestResolveNoTenantAnywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockTenantRepository(ctrl))

	_, err := service.Resolve("", claims(domain.RoleAdmin, ""))
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestResolveUnknownTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().GetTenantBySubdomain("ghost").Return(nil, nil)

	service := NewService(repo)

	_, err := service.Resolve("ghost", claims(domain.RoleAdmin, ""))
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestResolveDeniedBeforeRepositoryLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no GetTenantBySubdomain expectation: authorization fails first
	service := NewService(mocks.NewMockTenantRepository(ctrl))

	_, err := service.Resolve("acme", claims(domain.RoleClient, "rival"))
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestResolveRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoErr := errors.New("connection refused")

	repo := mocks.NewMockTenantRepository(ctrl)
	repo.EXPECT().GetTenantBySubdomain("acme").Return(nil, repoErr)

	service := NewService(repo)

	_, err := service.Resolve("acme", claims(domain.RoleAdmin, ""))
	assert.ErrorIs(t, err, repoErr)
}
