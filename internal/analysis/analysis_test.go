package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudyJayC/DocumentScannerAI/internal/config"
	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// mockClient records how often the network would have been hit.
type mockClient struct {
	response string
	err      error
	calls    int
}

func (m *mockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func testAnalyzer(client *mockClient) *Analyzer {
	cfg := config.Default().Analysis
	return New(cfg, client)
}

func TestAnalyze_EmptyInputRejectedBeforeNetworkCall(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		client := &mockClient{response: goodJSON}
		_, err := testAnalyzer(client).Analyze(context.Background(), input)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInput)
		assert.Zero(t, client.calls, "no network call may happen for input %q", input)
	}
}

func TestAnalyze_AllStopPhraseContentRejectedBeforeNetworkCall(t *testing.T) {
	client := &mockClient{response: goodJSON}
	_, err := testAnalyzer(client).Analyze(context.Background(), "Certificate of Completion\nAWS Cloud Practitioner")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInput)
	assert.Zero(t, client.calls)
}

func TestAnalyze_HappyPath(t *testing.T) {
	client := &mockClient{response: "```json\n" + goodJSON + "\n```"}
	rec, err := testAnalyzer(client).Analyze(context.Background(), "Jane Doe\nSenior Engineer with Go experience")

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Good", rec.OverallImpression)
	assert.Equal(t, types.SourceModel, rec.Source)
}

func TestAnalyze_TransportErrorsPropagate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"service unavailable", apperrors.ServiceUnavailableError("start it", errors.New("refused")), apperrors.ErrServiceUnavailable},
		{"protocol error", apperrors.ProtocolError(errors.New("bad envelope")), apperrors.ErrProtocol},
		{"empty response", apperrors.ErrEmptyResponse, apperrors.ErrEmptyResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{err: tt.err}
			_, err := testAnalyzer(client).Analyze(context.Background(), "some resume text here")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalyze_UnparseableReplyDegradesInsteadOfFailing(t *testing.T) {
	client := &mockClient{response: "I'd rate this resume a solid 7/10, nice work!"}
	rec, err := testAnalyzer(client).Analyze(context.Background(), "Jane Doe\nworked at Initech for years")

	require.NoError(t, err, "a weird model reply must never surface as an error")
	assert.Equal(t, types.SourceFallback, rec.Source)
	assert.NotEmpty(t, rec.OverallImpression)
}

func TestAnalyze_PromptContainsOnlyCoreContent(t *testing.T) {
	var captured string
	client := &capturingClient{response: goodJSON, capture: &captured}

	cfg := config.Default().Analysis
	_, err := New(cfg, client).Analyze(context.Background(),
		"Jane Doe resume line\nto whom it may concern: reference letter body")

	require.NoError(t, err)
	assert.Contains(t, captured, "Jane Doe resume line")
	assert.NotContains(t, captured, "reference letter body")
}

type capturingClient struct {
	response string
	capture  *string
}

func (c *capturingClient) Generate(ctx context.Context, prompt string) (string, error) {
	*c.capture = prompt
	return c.response, nil
}
