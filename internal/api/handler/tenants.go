package handler

import (
	"encoding/json"
	"net/http"

	"github.com/clearpipe/outreach-insights-api/infrastructure/repository"
	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

type CreateTenantRequest struct {
	Subdomain string          `json:"subdomain"`
	Name      string          `json:"name"`
	APIKeys   domain.APIKeys  `json:"apiKeys"`
	Features  domain.Features `json:"features"`
}

func ListTenants(tenants repository.TenantRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := tenants.ListTenants()
		if err != nil {
			logrus.WithError(err).Error("tenants: failed to list tenants")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list tenants", nil)
			return
		}

		for _, tenant := range all {
			redactTenantKeys(tenant)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(all)
	}
}

func CreateTenant(tenants repository.TenantRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTenantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		if req.Subdomain == "" || req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Subdomain and name are required", nil)
			return
		}

		existing, err := tenants.GetTenantBySubdomain(req.Subdomain)
		if err != nil {
			logrus.WithError(err).Error("tenants: failed to check subdomain")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to create tenant", nil)
			return
		}
		if existing != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Subdomain is already taken", nil)
			return
		}

		tenant := &domain.Tenant{
			Subdomain: req.Subdomain,
			Name:      req.Name,
			APIKeys:   req.APIKeys,
			Features:  req.Features,
		}

		created, err := tenants.CreateTenant(tenant)
		if err != nil {
			logrus.WithError(err).Error("tenants: failed to create tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to create tenant", nil)
			return
		}

		redactTenantKeys(created)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetTenant(tenants repository.TenantRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subdomain := httprouter.ParamsFromContext(r.Context()).ByName("subdomain")

		tenant, err := tenants.GetTenantBySubdomain(subdomain)
		if err != nil {
			logrus.WithError(err).Error("tenants: failed to load tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to load tenant", nil)
			return
		}
		if tenant == nil {
			apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "Tenant not found", nil)
			return
		}

		redactTenantKeys(tenant)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tenant)
	}
}

// UpdateTenantKeys rotates a tenant's platform credentials.
func UpdateTenantKeys(tenants repository.TenantRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subdomain := httprouter.ParamsFromContext(r.Context()).ByName("subdomain")

		var keys domain.APIKeys
		if err := json.NewDecoder(r.Body).Decode(&keys); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		tenant, err := tenants.GetTenantBySubdomain(subdomain)
		if err != nil {
			logrus.WithError(err).Error("tenants: failed to load tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to update API keys", nil)
			return
		}
		if tenant == nil {
			apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "Tenant not found", nil)
			return
		}

		if err := tenants.UpdateAPIKeys(subdomain, keys); err != nil {
			logrus.WithError(err).Error("tenants: failed to update API keys")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to update API keys", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "API keys updated",
		})
	}
}

// UpdateTenantFeatures replaces a tenant's enabled feature list.
func UpdateTenantFeatures(tenants repository.TenantRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subdomain := httprouter.ParamsFromContext(r.Context()).ByName("subdomain")

		var features domain.Features
		if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		tenant, err := tenants.GetTenantBySubdomain(subdomain)
		if err != nil {
			logrus.WithError(err).Error("tenants: failed to load tenant")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to update features", nil)
			return
		}
		if tenant == nil {
			apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "Tenant not found", nil)
			return
		}

		if err := tenants.UpdateFeatures(subdomain, features); err != nil {
			logrus.WithError(err).Error("tenants: failed to update features")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to update features", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "features updated",
		})
	}
}

// redactTenantKeys blanks credentials before a tenant record leaves the API.
func redactTenantKeys(tenant *domain.Tenant) {
	if tenant.APIKeys.Instantly != "" {
		tenant.APIKeys.Instantly = "configured"
	}
	if tenant.APIKeys.Lemlist != "" {
		tenant.APIKeys.Lemlist = "configured"
	}
}
