// Package mock provides test double implementations of outreach interfaces.
//
// This package contains mock implementations of outreach.EmailWriter and
// outreach.Provider for use in unit tests. The mocks allow tests to run
// without an LLM service and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	draft, err := provider.EmailWriter().DraftEmail(ctx, profile, job)
//
//	// Custom behavior injection
//	writer := mock.NewMockEmailWriter()
//	writer.DraftEmailFunc = func(ctx context.Context, sender outreach.SenderProfile, job *core.JobRecord) (*outreach.Draft, error) {
//	    return &outreach.Draft{Subject: "hi", Body: "hello"}, nil
//	}
//
//	// Check call counts
//	count := writer.CallCount()
//
// # Default Behavior
//
// MockEmailWriter returns a deterministic template draft built from the job
// title, company, and sender name.
package mock
