package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// APIServer provides an HTTP interface for the evaluation engine.
type APIServer struct {
	server *http.Server
	engine *Engine
	logger *zap.Logger
}

// NewAPIServer creates a new APIServer.
func NewAPIServer(engine *Engine, logger *zap.Logger) *APIServer {
	addr := fmt.Sprintf(":%d", engine.cfg.Trading.ApiPort)

	mux := http.NewServeMux()
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	s := &APIServer{
		server: server,
		engine: engine,
		logger: logger.Named("api-server"),
	}

	mux.HandleFunc("/status", s.statusHandler)
	mux.HandleFunc("/health", s.healthHandler)

	return s
}

// Start runs the HTTP server in a new goroutine.
func (s *APIServer) Start() {
	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error("API server failed", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *APIServer) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")
	return s.server.Shutdown(ctx)
}

func (s *APIServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	enabledBots, err := s.engine.EnabledBotCount()
	if err != nil {
		s.logger.Error("Failed to count bots for status", zap.Error(err))
	}

	status := struct {
		UUID        string `json:"uuid"`
		StartTime   string `json:"start_time"`
		Uptime      string `json:"uptime"`
		EnabledBots int64  `json:"enabled_bots"`
	}{
		UUID:        s.engine.UUID,
		StartTime:   s.engine.StartTime.Format(time.RFC3339),
		Uptime:      time.Since(s.engine.StartTime).String(),
		EnabledBots: enabledBots,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		s.logger.Error("Failed to write status response", zap.Error(err))
		http.Error(w, "Failed to encode status", http.StatusInternalServerError)
	}
}

func (s *APIServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
