package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/outreach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmailWriterDefaults(t *testing.T) {
	w := NewMockEmailWriter()

	d, err := w.DraftEmail(context.Background(), outreach.SenderProfile{Name: "Priya"}, &core.JobRecord{
		Title:   "Backend Engineer",
		Company: "Acme",
	})
	require.NoError(t, err)
	assert.Contains(t, d.Subject, "Backend Engineer")
	assert.Contains(t, d.Body, "Acme")
	assert.Contains(t, d.Body, "Priya")
	assert.Equal(t, 1, w.CallCount())
}

func TestMockEmailWriterInjection(t *testing.T) {
	w := NewMockEmailWriter()
	w.DraftEmailFunc = func(ctx context.Context, sender outreach.SenderProfile, job *core.JobRecord) (*outreach.Draft, error) {
		return nil, errors.New("boom")
	}

	_, err := w.DraftEmail(context.Background(), outreach.SenderProfile{}, &core.JobRecord{})
	assert.Error(t, err)
	assert.Equal(t, 1, w.CallCount())

	w.Reset()
	assert.Equal(t, 0, w.CallCount())
	assert.Nil(t, w.DraftEmailFunc)
}

func TestMockProvider(t *testing.T) {
	p := NewMockProvider()
	assert.NotNil(t, p.EmailWriter())
	assert.Same(t, p.MockWriter(), p.EmailWriter())

	require.NoError(t, p.Close())
	assert.True(t, p.Closed())
}
