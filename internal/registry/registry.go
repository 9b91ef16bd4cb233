package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/jpdelos/creative-marketplace/internal/domain"
	"github.com/jpdelos/creative-marketplace/pkg/kv"
)

var (
	ErrInvalidSubdomain  = errors.New("subdomain must contain only lowercase letters, numbers, and hyphens")
	ErrReservedSubdomain = errors.New("subdomain is reserved")
	ErrInvalidIcon       = errors.New("icon must be a single emoji")
	ErrSubdomainTaken    = errors.New("subdomain is already taken")
	ErrTenantNotFound    = errors.New("tenant not found")
)

// keyPrefix namespaces tenant records in the shared key-value store.
const keyPrefix = "subdomain:"

// reservedSubdomains are tokens that collide with root-marketing paths and
// can never be registered as tenants.
var reservedSubdomains = map[string]struct{}{
	"admin": {},
	"api":   {},
	"www":   {},
}

// TenantKey returns the store key for a normalized subdomain.
func TenantKey(subdomain string) string {
	return keyPrefix + subdomain
}

// NormalizeSubdomain canonicalizes a subdomain candidate to the registry's
// accepted key form: lower-cased, stripped to [a-z0-9-]. It fails with
// ErrInvalidSubdomain when nothing valid remains or the result has a leading
// or trailing hyphen, and with ErrReservedSubdomain for reserved tokens.
//
// Normalization is centralized here so the resolver, the creation form, and
// admin tooling share one definition of a valid tenant key. Two inputs that
// normalize to the same string resolve to the same host, so they must map to
// the same registry entry.
func NormalizeSubdomain(candidate string) (string, error) {
	lowered := strings.ToLower(strings.TrimSpace(candidate))

	var b strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if normalized == "" || strings.HasPrefix(normalized, "-") || strings.HasSuffix(normalized, "-") {
		return "", ErrInvalidSubdomain
	}
	if _, reserved := reservedSubdomains[normalized]; reserved {
		return "", ErrReservedSubdomain
	}
	return normalized, nil
}

// ValidateIcon checks that icon is exactly one emoji grapheme. Grapheme
// clusters rather than runes, so multi-codepoint emoji (skin tones, ZWJ
// sequences, flags) count as one glyph. The leading rune must be in the
// Symbol, other category; single letters in any script are valid graphemes
// but not emoji.
func ValidateIcon(icon string) error {
	if icon == "" {
		return ErrInvalidIcon
	}
	if uniseg.GraphemeClusterCount(icon) != 1 {
		return ErrInvalidIcon
	}
	r, _ := utf8.DecodeRuneInString(icon)
	if !unicode.Is(unicode.So, r) {
		return ErrInvalidIcon
	}
	return nil
}

// Registry is the domain layer over the key-value store: it owns validation,
// uniqueness, and the key layout for tenant records. All tenant mutation goes
// through it; callers never write raw subdomain keys.
type Registry struct {
	store kv.Store
	now   func() time.Time
}

// New creates a Registry on top of the given store.
func New(store kv.Store) *Registry {
	return &Registry{
		store: store,
		now:   time.Now,
	}
}

// Create validates and registers a new tenant. The subdomain is normalized,
// the icon checked, and CreatedAt stamped at call time. Registration uses an
// atomic insert-if-absent, so a duplicate subdomain fails with
// ErrSubdomainTaken and performs no write, even under concurrent creates.
func (r *Registry) Create(ctx context.Context, tenant domain.Tenant) (*domain.Tenant, error) {
	normalized, err := NormalizeSubdomain(tenant.Subdomain)
	if err != nil {
		return nil, err
	}
	if err := ValidateIcon(tenant.Icon); err != nil {
		return nil, err
	}

	tenant.Subdomain = normalized
	tenant.CreatedAt = r.now().UnixMilli()

	value, err := json.Marshal(&tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tenant record: %w", err)
	}

	created, err := r.store.SetNX(ctx, TenantKey(normalized), value)
	if err != nil {
		return nil, fmt.Errorf("tenant store: %w", err)
	}
	if !created {
		return nil, ErrSubdomainTaken
	}

	return &tenant, nil
}

// Lookup retrieves the tenant registered for a normalized subdomain.
// Callers resolve case-insensitive host headers, so they must lower-case
// before calling. Returns ErrTenantNotFound when no tenant is registered.
func (r *Registry) Lookup(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	value, ok, err := r.store.Get(ctx, TenantKey(subdomain))
	if err != nil {
		return nil, fmt.Errorf("tenant store: %w", err)
	}
	if !ok {
		return nil, ErrTenantNotFound
	}

	tenant, err := decodeTenant(subdomain, value)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}

// List enumerates all registered tenants, most recently created first. Keys
// listed but deleted before the bulk fetch are skipped; every call returns a
// fresh slice.
func (r *Registry) List(ctx context.Context) ([]*domain.Tenant, error) {
	keys, err := r.store.Keys(ctx, keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("tenant store: %w", err)
	}
	if len(keys) == 0 {
		return []*domain.Tenant{}, nil
	}

	values, err := r.store.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("tenant store: %w", err)
	}

	tenants := make([]*domain.Tenant, 0, len(keys))
	for i, value := range values {
		if value == nil {
			// Key deleted between Keys and MGet.
			continue
		}
		tenant, err := decodeTenant(strings.TrimPrefix(keys[i], keyPrefix), value)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}

	sort.Slice(tenants, func(i, j int) bool {
		if tenants[i].CreatedAt != tenants[j].CreatedAt {
			return tenants[i].CreatedAt > tenants[j].CreatedAt
		}
		return tenants[i].Subdomain < tenants[j].Subdomain
	})

	return tenants, nil
}

// Remove deletes the tenant registered for a subdomain. Removing an
// unregistered subdomain is not an error.
func (r *Registry) Remove(ctx context.Context, subdomain string) error {
	if err := r.store.Del(ctx, TenantKey(strings.ToLower(subdomain))); err != nil {
		return fmt.Errorf("tenant store: %w", err)
	}
	return nil
}

func decodeTenant(subdomain string, value []byte) (*domain.Tenant, error) {
	tenant := &domain.Tenant{}
	if err := json.Unmarshal(value, tenant); err != nil {
		return nil, fmt.Errorf("failed to decode tenant record for %q: %w", subdomain, err)
	}
	tenant.Subdomain = subdomain
	return tenant, nil
}
