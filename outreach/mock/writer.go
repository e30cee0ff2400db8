package mock

import (
	"context"
	"fmt"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/outreach"
)

// MockEmailWriter is a test double for outreach.EmailWriter.
// It allows custom behavior injection via function fields.
type MockEmailWriter struct {
	// DraftEmailFunc is called by DraftEmail if set.
	// If nil, a deterministic template draft is returned.
	DraftEmailFunc func(ctx context.Context, sender outreach.SenderProfile, job *core.JobRecord) (*outreach.Draft, error)

	callCount int
}

// NewMockEmailWriter creates a mock email writer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEmailWriter() *MockEmailWriter {
	return &MockEmailWriter{}
}

// DraftEmail returns a deterministic template draft.
func (m *MockEmailWriter) DraftEmail(ctx context.Context, sender outreach.SenderProfile, job *core.JobRecord) (*outreach.Draft, error) {
	m.callCount++

	if m.DraftEmailFunc != nil {
		return m.DraftEmailFunc(ctx, sender, job)
	}

	if job == nil {
		return nil, fmt.Errorf("job record required")
	}

	return &outreach.Draft{
		Subject: fmt.Sprintf("Application: %s", job.Title),
		Body: fmt.Sprintf("Hello %s team,\n\nI would like to apply for the %s role.\n\nRegards,\n%s",
			job.Company, job.Title, sender.Name),
	}, nil
}

// CallCount returns the number of times DraftEmail was called.
func (m *MockEmailWriter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEmailWriter) Reset() {
	m.callCount = 0
	m.DraftEmailFunc = nil
}
