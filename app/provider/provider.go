package provider

import (
	"context"

	"github.com/aura-platform/contact-api/app/composer"
)

// EmailProvider hands a composed message to an outbound transport and
// reports the transport-assigned message ID.
type EmailProvider interface {
	Send(ctx context.Context, msg composer.Message) (string, error)
}

// Verifier is implemented by providers that can check transport reachability
// and credentials at startup.
type Verifier interface {
	Verify(ctx context.Context) error
}
