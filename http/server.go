// Package http exposes the pipeline over an inbound HTTP API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ygolovnia/xkindle"
)

// RequestBudget is the overall wall-clock budget for one request,
// enforced here by the hosting layer rather than by the pipeline.
const RequestBudget = 60 * time.Second

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Server serves the inbound API.
type Server struct {
	processor xkindle.Processor
	logger    *slog.Logger
	server    *http.Server
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, processor xkindle.Processor, logger *slog.Logger) *Server {
	s := &Server{
		processor: processor,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestBudget))
	r.Post("/api/process", s.handleProcess)

	s.server = &http.Server{Addr: addr, Handler: r}
	return s
}

// Handler returns the underlying handler. Used in tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// ListenAndServe serves the API until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.server.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

type processRequest struct {
	URL         string `json:"url"`
	KindleEmail string `json:"kindleEmail"`
}

type processResponse struct {
	Message     string `json:"message"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	TextPreview string `json:"textPreview"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var body processRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	receipt, err := s.processor.Process(r.Context(), &xkindle.ExtractionRequest{
		SourceURL:   body.URL,
		Destination: body.KindleEmail,
	})
	if err != nil {
		s.logger.Error("process failed", "url", body.URL, "err", err)
		writeJSON(w, statusFromCode(xkindle.ErrorCode(err)), errorResponse{Error: xkindle.ErrorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		Message:     statusMessage(receipt.Status),
		Author:      receipt.Author,
		Title:       receipt.Title,
		TextPreview: receipt.TextPreview,
	})
}

// statusMessage maps a delivery status to the caller-facing message.
func statusMessage(status xkindle.DeliveryStatus) string {
	if status == xkindle.DeliverySkipped {
		return "Successfully generated EPUB. Delivery credential missing, skipping delivery."
	}
	return "Successfully delivered to Kindle"
}

// statusFromCode maps application error codes to HTTP statuses: bad input
// is 400, missing content is 404, everything else is 500.
func statusFromCode(code string) int {
	switch code {
	case xkindle.EINVALID:
		return http.StatusBadRequest
	case xkindle.ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
