package domain

import "time"

// Feature flags controlling which dashboard sources a tenant can use.
const (
	FeatureEmail    = "email"
	FeatureLemlist  = "lemlist"
	FeatureOverview = "overview"
)

// APIKeys holds the per-platform credentials configured for a tenant.
type APIKeys struct {
	Instantly           string `json:"instantly,omitempty"`
	Lemlist             string `json:"lemlist,omitempty"`
	LemlistAccountEmail string `json:"lemlistAccountEmail,omitempty"`
}

type Features struct {
	EnabledFeatures []string `json:"enabledFeatures"`
}

// Tenant is a dashboard client. The subdomain is the stable external
// identifier used for routing and access checks.
type Tenant struct {
	ID        int       `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	APIKeys   APIKeys   `json:"apiKeys"`
	Features  Features  `json:"features"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tenant) HasFeature(name string) bool {
	for _, f := range t.Features.EnabledFeatures {
		if f == name {
			return true
		}
	}
	return false
}

// EnabledSources lists the sources this tenant can actually query: the
// feature must be enabled and the matching credentials configured.
func (t *Tenant) EnabledSources() []string {
	sources := make([]string, 0, 2)

	if t.HasFeature(FeatureEmail) && t.APIKeys.Instantly != "" {
		sources = append(sources, SourceEmail)
	}

	if t.HasFeature(FeatureLemlist) && t.APIKeys.Lemlist != "" && t.APIKeys.LemlistAccountEmail != "" {
		sources = append(sources, SourceLemlist)
	}

	return sources
}
