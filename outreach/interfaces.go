package outreach

import (
	"context"

	"github.com/hirebuddy/scout/core"
)

// EmailWriter drafts outreach emails for job applications.
// Implementations must be thread-safe for concurrent use.
type EmailWriter interface {
	// DraftEmail writes a first-contact email for the given posting on
	// behalf of the sender. The draft is grounded in the posting's details
	// and the sender's profile; nothing is sent.
	// Returns an error if generation fails.
	DraftEmail(ctx context.Context, sender SenderProfile, job *core.JobRecord) (*Draft, error)
}

// Provider aggregates outreach services for convenient initialization and
// lifecycle management.
type Provider interface {
	// EmailWriter returns the email drafting service.
	// The returned EmailWriter is safe for concurrent use.
	EmailWriter() EmailWriter

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
