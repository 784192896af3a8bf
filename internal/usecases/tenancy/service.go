package tenancy

import (
	"github.com/clearpipe/outreach-insights-api/infrastructure/repository"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrTenantNotFound means the requested subdomain has no tenant record.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrNotAuthorized means the caller's claims do not grant access to the
	// requested tenant.
	ErrNotAuthorized = errors.New("caller is not authorized for this tenant")

	// ErrNoTenant means no tenant could be resolved from the request or the
	// caller's claims.
	ErrNoTenant = errors.New("no tenant identified in the request")
)

// Resolver turns a requested subdomain plus the caller's claims into an
// authorized tenant record.
type Resolver interface {
	// Resolve loads the tenant for the requested subdomain, falling back
	// to the caller's own tenant slug when none was requested, and checks
	// the caller may access it.
	Resolve(requested string, claims *domain.Claims) (*domain.Tenant, error)

	// Authorize checks whether the caller's claims grant access to the
	// given subdomain without loading the tenant.
	Authorize(subdomain string, claims *domain.Claims) error
}

type Service struct {
	tenants repository.TenantRepository
}

func NewService(tenants repository.TenantRepository) Resolver {
	return &Service{tenants: tenants}
}

func (s *Service) Resolve(requested string, claims *domain.Claims) (*domain.Tenant, error) {
	subdomain := requested
	if subdomain == "" && claims != nil {
		subdomain = claims.TenantSlug
	}

	if subdomain == "" {
		return nil, ErrNoTenant
	}

	if err := s.Authorize(subdomain, claims); err != nil {
		return nil, err
	}

	tenant, err := s.tenants.GetTenantBySubdomain(subdomain)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"subdomain": subdomain,
			"error":     err.Error(),
		}).Error("tenancy: failed to load tenant")
		return nil, err
	}

	if tenant == nil {
		return nil, ErrTenantNotFound
	}

	return tenant, nil
}

// Authorize allows admins and supervisors everywhere; client-role callers
// only reach the tenant their account belongs to.
func (s *Service) Authorize(subdomain string, claims *domain.Claims) error {
	if claims == nil {
		return ErrNotAuthorized
	}

	switch claims.UserRoleID {
	case domain.RoleAdmin, domain.RoleSupervisor:
		return nil
	}

	if claims.TenantSlug != "" && claims.TenantSlug == subdomain {
		return nil
	}

	return ErrNotAuthorized
}
