package provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/aura-platform/contact-api/app/composer"
)

// NoopProvider pretends to send mail. Useful for local development and tests.
type NoopProvider struct{}

// NewNoopProvider constructs a no-op email provider.
func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

// Send returns a synthetic message ID without sending.
func (p *NoopProvider) Send(_ context.Context, _ composer.Message) (string, error) {
	return "<" + uuid.NewString() + "@noop.aura-platform.local>", nil
}
