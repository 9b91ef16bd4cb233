package domain

// Tenant represents one registered subdomain and its branding configuration
// in the multi-tenant marketplace. The subdomain is the primary identity and
// lives in the storage key, not the stored value, so it carries no JSON tag.
type Tenant struct {
	Subdomain   string `json:"-"`
	Icon        string `json:"icon"`
	CreatedAt   int64  `json:"createdAt"` // epoch milliseconds
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
}

// DisplayName returns the tenant's display name, falling back to a label
// derived from the subdomain when none was set at creation.
func (t *Tenant) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Subdomain + " Creative Studio"
}
