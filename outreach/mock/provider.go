package mock

import (
	"github.com/hirebuddy/scout/outreach"
)

// MockProvider is a test double for outreach.Provider.
type MockProvider struct {
	writer *MockEmailWriter
	closed bool
}

var _ outreach.Provider = (*MockProvider)(nil)

// NewMockProvider creates a provider aggregating a default mock writer.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		writer: NewMockEmailWriter(),
	}
}

// EmailWriter returns the mock email writer.
func (p *MockProvider) EmailWriter() outreach.EmailWriter {
	return p.writer
}

// MockWriter returns the concrete mock for test assertions.
func (p *MockProvider) MockWriter() *MockEmailWriter {
	return p.writer
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}
