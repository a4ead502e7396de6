// Package server is the thin HTTP transport in front of the chat service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            int           `envconfig:"PORT" default:"8000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"5s"`
}

// ChatHandler is the one capability the transport needs.
type ChatHandler interface {
	ProcessMessage(ctx context.Context, text string) string
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply   string `json:"reply"`
	Success bool   `json:"success"`
}

const internalErrorReply = "An error occurred while processing your message. Please try again."

type Server struct {
	cfg  Config
	chat ChatHandler
}

func New(cfg Config, chat ChatHandler) (*Server, error) {
	if chat == nil {
		return nil, errors.New("chat handler is required")
	}
	if cfg.Port <= 0 {
		cfg.Port = 8000
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}
	return &Server{cfg: cfg, chat: chat}, nil
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler: s.Handler(),
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", s.cfg.Port).Msg("restaurant agent API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error during shutdown")
			return err
		}
		log.Info().Msg("server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}

// Handler builds the full middleware-wrapped route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/chat", s.handleChat)

	// CORS at the top level so preflight requests hit it, too.
	return cors.AllowAll().Handler(s.recovered(mux))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Restaurant Agent API is running",
		"status":  "healthy",
		"endpoints": map[string]string{
			"chat":   "POST /chat",
			"health": "GET /health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, ChatResponse{
			Reply:   "Use POST to send a chat message.",
			Success: false,
		})
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ChatResponse{
			Reply:   "Request body must be JSON with a \"message\" field.",
			Success: false,
		})
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, ChatResponse{
			Reply:   "Message must not be empty.",
			Success: false,
		})
		return
	}

	reply := s.chat.ProcessMessage(r.Context(), message)
	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply, Success: true})
}

// recovered converts a handler panic into the fixed user-safe 500 body; the
// transport never leaks internal failures.
func (s *Server) recovered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Any("panic", rec).Str("path", r.URL.Path).Msg("request panicked")
				writeJSON(w, http.StatusInternalServerError, ChatResponse{
					Reply:   internalErrorReply,
					Success: false,
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}
