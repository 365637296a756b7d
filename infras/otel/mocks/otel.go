package mocks

import (
	"context"
	"staybook/infras/otel"
)

// NewOtel returns a tracer that opens no-op scopes, for tests that do not assert on spans.
func NewOtel() otel.Otel {
	return noopOtel{}
}

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (noopOtel) Shutdown(context.Context) error { return nil }
