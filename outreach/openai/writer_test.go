package openai

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/outreach"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel returns canned responses in order, cycling on the last one.
type fakeModel struct {
	responses []string
	err       error
	calls     int
}

var _ llms.Model = (*fakeModel)(nil)

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	idx := f.calls
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.responses[idx]}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, nil, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func testWriter(model llms.Model) *EmailWriter {
	return &EmailWriter{
		client:       model,
		maxBodyWords: 180,
		logger:       slog.Default(),
	}
}

func testJob() *core.JobRecord {
	return &core.JobRecord{
		Title:   "Backend Engineer",
		Company: "Acme",
	}
}

func TestDraftEmail(t *testing.T) {
	model := &fakeModel{responses: []string{
		`{"subject": "Application: Backend Engineer", "body": "Hello Acme team, ..."}`,
	}}
	w := testWriter(model)

	d, err := w.DraftEmail(context.Background(), outreach.SenderProfile{Name: "Priya"}, testJob())
	require.NoError(t, err)
	assert.Equal(t, "Application: Backend Engineer", d.Subject)
	assert.Equal(t, 1, model.calls)
}

func TestDraftEmail_StripsCodeFences(t *testing.T) {
	model := &fakeModel{responses: []string{
		"```json\n{\"subject\": \"s\", \"body\": \"b\"}\n```",
	}}
	w := testWriter(model)

	d, err := w.DraftEmail(context.Background(), outreach.SenderProfile{}, testJob())
	require.NoError(t, err)
	assert.Equal(t, "s", d.Subject)
	assert.Equal(t, "b", d.Body)
}

func TestDraftEmail_RetriesOnMalformedJSON(t *testing.T) {
	model := &fakeModel{responses: []string{
		`this is not json`,
		`{"subject": "s", "body": "b"}`,
	}}
	w := testWriter(model)

	d, err := w.DraftEmail(context.Background(), outreach.SenderProfile{}, testJob())
	require.NoError(t, err)
	assert.Equal(t, "s", d.Subject)
	assert.Equal(t, 2, model.calls)
}

func TestDraftEmail_GivesUpAfterThreeAttempts(t *testing.T) {
	model := &fakeModel{responses: []string{`still not json`}}
	w := testWriter(model)

	_, err := w.DraftEmail(context.Background(), outreach.SenderProfile{}, testJob())
	require.Error(t, err)
	assert.Equal(t, 3, model.calls)
}

func TestDraftEmail_RejectsEmptyFields(t *testing.T) {
	model := &fakeModel{responses: []string{
		`{"subject": "", "body": ""}`,
		`{"subject": "s", "body": "b"}`,
	}}
	w := testWriter(model)

	d, err := w.DraftEmail(context.Background(), outreach.SenderProfile{}, testJob())
	require.NoError(t, err)
	assert.Equal(t, "s", d.Subject)
}

func TestDraftEmail_TransportErrorIsFatal(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	w := testWriter(model)

	_, err := w.DraftEmail(context.Background(), outreach.SenderProfile{}, testJob())
	require.Error(t, err)
	assert.Equal(t, 1, model.calls)
}

func TestDraftEmail_NilJob(t *testing.T) {
	w := testWriter(&fakeModel{responses: []string{`{}`}})

	_, err := w.DraftEmail(context.Background(), outreach.SenderProfile{}, nil)
	assert.Error(t, err)
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing opening quote", `{subject": "s", body": "b"}`, `{"subject": "s", "body": "b"}`},
		{"already valid", `{"subject": "s"}`, `{"subject": "s"}`},
		{"untouched values", `{"body": "a, b: c"}`, `{"body": "a, b: c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := buildUserPrompt(outreach.SenderProfile{
		Name:     "Priya",
		Headline: "Backend engineer",
		Skills:   []string{"Go", "Postgres"},
	}, &core.JobRecord{
		Title:   "Backend Engineer",
		Company: "Acme",
		Tags:    []string{"golang"},
	})

	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "Priya")
	assert.Contains(t, prompt, "Go, Postgres")
}
