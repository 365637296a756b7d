package permissions_test

import (
	"staybook/permissions"
	"staybook/shared/identity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)

	tests := []struct {
		name    string
		path    string
		method  string
		skip    bool
		domains []identity.Domain
	}{
		{name: "public hotel list", path: "/v1/hotels/", method: "GET", skip: true},
		{name: "hotel create", path: "/v1/hotels", method: "POST", domains: []identity.Domain{identity.DomainVendor, identity.DomainAdmin}},
		{name: "booking cancel", path: "/v1/bookings/{id}/cancel", method: "POST", domains: []identity.Domain{identity.DomainCustomer}},
		{name: "vendor dashboard", path: "/v1/vendor/bookings/dashboard/stats", method: "GET", domains: []identity.Domain{identity.DomainVendor}},
		{name: "category admin list", path: "/v1/categories", method: "GET", domains: []identity.Domain{identity.DomainAdmin}},
		{name: "refresh token", path: "/v1/auth/refresh-token", method: "POST", skip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.NotEmpty(t, permission.Path)
			assert.Equal(t, tt.skip, permission.Skip)

			if !tt.skip {
				assert.Equal(t, tt.domains, permission.Domains())
			}
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/a","method":"GET","skip":true}]}`))
	require.NotNil(t, data)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/a", "POST"))
	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/b", "GET"))
	assert.True(t, data.FindPermissions("/v1/a", "get").Skip)
}

func TestPermission_Domains(t *testing.T) {
	permission := permissions.Permission{Permissions: []string{"admin", "superuser", "customer"}}

	assert.Equal(t, []identity.Domain{identity.DomainAdmin, identity.DomainCustomer}, permission.Domains())
}

func TestParse_Invalid(t *testing.T) {
	assert.Nil(t, permissions.Parse([]byte(`{`)))
}
