package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

type stubRunner struct {
	data *types.ReportData
	err  error
}

func (s *stubRunner) Run(ctx context.Context, path string) (*types.ReportData, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.data
	out.FilePath = path
	return &out, nil
}

func sampleReport() *types.ReportData {
	return &types.ReportData{
		ScannedAt:  time.Now(),
		Suspicious: types.SuspiciousElementCounts{"/JavaScript": 0},
		Keywords:   types.KeywordStats{WordCount: 100, UniqueWords: 80},
		Analysis: types.AnalysisResult{
			OverallImpression: "fine",
			Strengths:         []string{"a"},
			Weaknesses:        []string{},
			KeySkills:         []string{},
			Recommendations:   []string{},
		},
		AnalysisSource: types.SourceModel,
	}
}

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	server := NewServer(0, &stubRunner{data: sampleReport()})
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Analysis-ID"))
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	server := NewServer(0, &stubRunner{data: sampleReport()})
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAnalyze_MissingFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	server := NewServer(0, &stubRunner{data: sampleReport()})
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apperrors.ApiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "no file provided", apiErr.Detail)
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestAnalyze_Success(t *testing.T) {
	server := NewServer(0, &stubRunner{data: sampleReport()})
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, uploadRequest(t, "file", "resume.pdf", []byte("%PDF-1.7 data")))

	require.Equal(t, http.StatusOK, rec.Code)

	var data types.ReportData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, "resume.pdf", data.FilePath, "response must name the upload, not the temp file")
	assert.Equal(t, "fine", data.Analysis.OverallImpression)
	assert.Equal(t, types.SourceModel, data.AnalysisSource)
}

func TestAnalyze_PipelineErrorsMapToStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"input error", apperrors.InputError("empty document"), http.StatusBadRequest},
		{"extraction error", apperrors.ExtractionError("f.pdf", errors.New("corrupt")), http.StatusUnprocessableEntity},
		{"service unavailable", apperrors.ServiceUnavailableError("start it", nil), http.StatusServiceUnavailable},
		{"protocol error", apperrors.ProtocolError(errors.New("bad envelope")), http.StatusBadGateway},
		{"empty response", apperrors.ErrEmptyResponse, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := NewServer(0, &stubRunner{err: tt.err})
			rec := httptest.NewRecorder()
			server.Routes().ServeHTTP(rec, uploadRequest(t, "file", "resume.pdf", []byte("%PDF-1.7")))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
