package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/internal/analyzer"
)

// maxBodyBytes bounds the request body well above any sane MAX_CHARS.
const maxBodyBytes = 1 << 20

var validationError = apimodels.ErrorResponse{
	Error: apimodels.ErrorBody{Code: "validation_error", Message: "invalid_request"},
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := decodeStrict(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		slog.Debug("Rejecting malformed analysis request", "error", err)
		writeJSON(w, http.StatusBadRequest, validationError)
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, validationError)
		return
	}

	slog.Debug("Received analysis request", "chars", len(req.Text), "options", req.EffectiveOptions())

	result, err := s.analyzer.Analyze(r.Context(), req.Text, req.EffectiveOptions())
	switch {
	case errors.Is(err, analyzer.ErrInvalidText):
		writeJSON(w, http.StatusBadRequest, apimodels.DetailResponse{Detail: err.Error()})
		return
	case err != nil && errors.Is(r.Context().Err(), context.DeadlineExceeded):
		// the timeout middleware owns the response
		slog.Warn("Analysis request timed out", "error", err)
		return
	case err != nil:
		slog.Error("Analysis request failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, apimodels.DetailResponse{Detail: "inference_error"})
		return
	}

	slog.Debug("Analysis request completed successfully", "elapsed_ms", result.Meta.ElapsedMS)
	writeJSON(w, http.StatusOK, result)
}

// decodeStrict decodes a single JSON value and rejects anything after it.
func decodeStrict(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after request body")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.HealthResponse{
		Status:   "ok",
		Provider: s.analyzer.ProviderName(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
