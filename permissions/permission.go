package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"staybook/shared/identity"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the identity domains allowed on one route pattern. Skip marks a public route.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions matches a chi route pattern. "/v1/hotels" and "/v1/hotels/" are the same route.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	path = normalize(path)

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return normalize(rp.Path) == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// Domains converts the configured names, dropping any that are not identity domains.
func (p Permission) Domains() []identity.Domain {
	domains := make([]identity.Domain, 0, len(p.Permissions))

	for _, name := range p.Permissions {
		domain, ok := identity.ParseDomain(name)
		if !ok {
			log.Warn().Str("path", p.Path).Str("permission", name).Msg("unknown identity domain in permissions")

			continue
		}

		domains = append(domains, domain)
	}

	return domains
}

func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

func Get() *PermissionData {
	return Parse(permissionsData)
}

func Parse(data []byte) *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(data, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
