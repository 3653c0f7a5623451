// Package api exposes the scan pipeline over HTTP: one multipart upload
// endpoint plus a health probe. How failures are presented is decided
// here; the pipeline only supplies distinguishable error kinds.
package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/CloudyJayC/DocumentScannerAI/pkg/errors"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/logger"
	"github.com/CloudyJayC/DocumentScannerAI/pkg/types"
)

// maxUploadBytes bounds the multipart form kept in memory before spilling
// to disk; the pipeline's own file-size limit is enforced separately.
const maxUploadBytes = 32 << 20

// Runner is the pipeline the server fronts.
type Runner interface {
	Run(ctx context.Context, path string) (*types.ReportData, error)
}

type Server struct {
	port   int
	runner Runner
}

func NewServer(port int, runner Runner) *Server {
	return &Server{port: port, runner: runner}
}

// Routes builds the handler chain; exported so tests can drive the mux
// without a listening socket.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	chain := func(h http.HandlerFunc, methods ...string) http.HandlerFunc {
		return AnalysisID(Logger(Recover(MethodChecker(methods...)(h))))
	}
	mux.HandleFunc("/api/analyze", chain(s.handleAnalyze, http.MethodPost))
	mux.HandleFunc("/api/health", chain(s.handleHealth, http.MethodGet))
	return mux
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("starting API server", "port", s.port)
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart PDF upload under the "file" field,
// spools it to a temp file, and runs the pipeline on it.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	id := logger.GetAnalysisID(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		RespondWithError(w, errors.ErrBadRequest("expected multipart form upload").WithRequestID(id))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		RespondWithError(w, errors.ErrBadRequest("no file provided").WithRequestID(id))
		return
	}
	defer file.Close()

	tmpPath, err := spoolUpload(file, header.Filename)
	if err != nil {
		RespondWithError(w, errors.ErrInternalServer("failed to store upload").WithRequestID(id))
		return
	}
	defer os.Remove(tmpPath)

	data, err := s.runner.Run(r.Context(), tmpPath)
	if err != nil {
		RespondWithError(w, errors.FromPipeline(err).WithRequestID(id))
		return
	}
	// The temp path is an implementation detail; report the upload name.
	data.FilePath = header.Filename

	RespondWithJSON(w, http.StatusOK, data)
}

// spoolUpload writes the upload to a temp file, preserving the original
// extension so validation sees it.
func spoolUpload(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	tmp, err := os.CreateTemp("", "docscan-upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
