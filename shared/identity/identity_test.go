package identity_test

import (
	"context"
	"net/http"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDomain(t *testing.T) {
	for _, value := range []string{"admin", "customer", "vendor"} {
		domain, ok := identity.ParseDomain(value)

		assert.True(t, ok)
		assert.Equal(t, identity.Domain(value), domain)
	}

	_, ok := identity.ParseDomain("supplier")
	assert.False(t, ok)
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	_, ok := identity.FromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, "system", identity.Actor(ctx))

	vendor := identity.Identity{ID: "vendor-1", Domain: identity.DomainVendor, Active: true}
	ctx = identity.WithIdentity(ctx, vendor)

	got, ok := identity.FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, vendor, got)
	assert.Equal(t, "vendor-1", identity.Actor(ctx))

	_, ok = identity.FromContext(identity.WithIdentity(context.Background(), identity.Identity{}))
	assert.False(t, ok)
}

func TestResolverFunc(t *testing.T) {
	resolvers := identity.Resolvers{
		identity.DomainCustomer: identity.ResolverFunc(func(_ context.Context, id string) (identity.Identity, error) {
			return identity.Identity{ID: id, Domain: identity.DomainCustomer, Active: true}, nil
		}),
	}

	got, err := resolvers[identity.DomainCustomer].Resolve(context.Background(), "customer-1")

	assert.NoError(t, err)
	assert.Equal(t, "customer-1", got.ID)
	assert.True(t, got.Exists())
}

func TestRequire(t *testing.T) {
	_, err := identity.Require(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	admin := identity.Identity{ID: "admin-1", Domain: identity.DomainAdmin, Active: true}

	got, err := identity.Require(identity.WithIdentity(context.Background(), admin))
	assert.NoError(t, err)
	assert.Equal(t, admin, got)
}
