package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/jpdelos/creative-marketplace/internal/domain"
	"github.com/jpdelos/creative-marketplace/internal/registry"
)

// Outcome classifies what a request host resolved to.
type Outcome string

const (
	// OutcomeRoot means the host is the root domain itself: render the
	// unscoped marketplace.
	OutcomeRoot Outcome = "root"
	// OutcomeTenant means the host carried a registered tenant subdomain.
	OutcomeTenant Outcome = "tenant"
	// OutcomeTenantNotFound means the host carried a subdomain token, but no
	// tenant is registered for it.
	OutcomeTenantNotFound Outcome = "tenant_not_found"
	// OutcomeUnknownHost means the host matched no recognized suffix.
	OutcomeUnknownHost Outcome = "unknown_host"
)

// Resolution is the result of mapping a request host to a tenant context.
// Subdomain is set whenever a candidate token was extracted, whether or not a
// tenant exists for it; Tenant is set only for OutcomeTenant.
type Resolution struct {
	Outcome   Outcome
	Subdomain string
	Tenant    *domain.Tenant
}

// Resolver maps incoming request hosts to tenant contexts using the tenant
// registry. It runs once per request before any content is produced and does
// not cache across requests, so registrations are visible immediately.
type Resolver struct {
	registry   *registry.Registry
	rootDomain string
}

// New creates a Resolver for the given root domain, e.g. "example.com".
func New(reg *registry.Registry, rootDomain string) *Resolver {
	return &Resolver{
		registry:   reg,
		rootDomain: strings.ToLower(rootDomain),
	}
}

// Resolve extracts a candidate subdomain token from host and asks the
// registry whether a tenant exists for it. Host headers are case-insensitive,
// so the whole host is lower-cased first, and an explicit port is ignored
// when matching. A trailing ".<rootDomain>" suffix or, for local
// development, a trailing ".localhost" suffix marks a tenant host; anything
// else falls through to the root or unknown-host outcomes. The only error
// returned is store unavailability.
func (r *Resolver) Resolve(ctx context.Context, host string) (*Resolution, error) {
	host = strings.ToLower(strings.TrimSpace(host))

	candidate, outcome := r.extractSubdomain(host)
	if outcome != OutcomeTenant {
		return &Resolution{Outcome: outcome}, nil
	}

	tenant, err := r.registry.Lookup(ctx, candidate)
	if err != nil {
		if errors.Is(err, registry.ErrTenantNotFound) {
			return &Resolution{Outcome: OutcomeTenantNotFound, Subdomain: candidate}, nil
		}
		return nil, err
	}

	return &Resolution{Outcome: OutcomeTenant, Subdomain: candidate, Tenant: tenant}, nil
}

// extractSubdomain returns the candidate token and a provisional outcome:
// OutcomeTenant when a token was extracted, otherwise the final non-tenant
// outcome.
func (r *Resolver) extractSubdomain(host string) (string, Outcome) {
	// The configured root domain may itself carry a port, e.g. the
	// development default "localhost:8080", so the full host is matched
	// before the port is stripped.
	if host == r.rootDomain || host == "www."+r.rootDomain {
		return "", OutcomeRoot
	}
	if suffix := "." + r.rootDomain; strings.HasSuffix(host, suffix) {
		return strings.TrimSuffix(host, suffix), OutcomeTenant
	}

	hostname := host
	if i := strings.LastIndex(host, ":"); i >= 0 {
		hostname = host[:i]
	}
	if hostname == r.rootDomain || hostname == "www."+r.rootDomain {
		return "", OutcomeRoot
	}
	if suffix := "." + r.rootDomain; strings.HasSuffix(hostname, suffix) {
		return strings.TrimSuffix(hostname, suffix), OutcomeTenant
	}

	// Local development hosts resolve regardless of the configured root.
	if hostname == "localhost" || hostname == "www.localhost" {
		return "", OutcomeRoot
	}
	if strings.HasSuffix(hostname, ".localhost") {
		return strings.TrimSuffix(hostname, ".localhost"), OutcomeTenant
	}

	return "", OutcomeUnknownHost
}
