package domain

// Campaign is a sending campaign on either platform. Fetched fresh per
// request, never persisted.
type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
