// Package identity describes the authenticated principal attached to a request.
//
// Each identity domain (admin, customer, vendor) registers a Resolver that turns a
// token subject into an Identity. The auth middleware picks the resolver from the
// domain tag carried in the token, so handlers never care which gateway admitted them.
package identity

import (
	"context"
	"staybook/shared/constant"
	"staybook/shared/failure"
)

type Domain string

const (
	DomainAdmin    Domain = "admin"
	DomainCustomer Domain = "customer"
	DomainVendor   Domain = "vendor"
)

type contextKey struct{}

type Identity struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Domain Domain `json:"domain"`
	Active bool   `json:"active"`
}

// Resolver loads the current state of a principal. A zero Identity with a nil error means not found.
type Resolver interface {
	Resolve(ctx context.Context, id string) (Identity, error)
}

type ResolverFunc func(ctx context.Context, id string) (Identity, error)

func (f ResolverFunc) Resolve(ctx context.Context, id string) (Identity, error) {
	return f(ctx, id)
}

type Resolvers map[Domain]Resolver

func ParseDomain(value string) (Domain, bool) {
	switch Domain(value) {
	case DomainAdmin, DomainCustomer, DomainVendor:
		return Domain(value), true
	default:
		return "", false
	}
}

func (i Identity) Exists() bool {
	return i.ID != constant.Empty
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)

	return id, ok && id.Exists()
}

// Require returns the caller or a 401 failure when the request is anonymous.
func Require(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return Identity{}, failure.Unauthorized("Authentication required") // nolint:wrapcheck
	}

	return id, nil
}

// Actor names whoever performs the current operation, for created_by/modified_by columns.
func Actor(ctx context.Context) string {
	if id, ok := FromContext(ctx); ok {
		return id.ID
	}

	return constant.ContextSystem
}
