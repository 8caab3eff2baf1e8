// Copyright (c) 2025 Hostmon authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"hostmon/internal/handlers"
	"hostmon/internal/stats"
)

// Server represents the HTTP server configuration and mux.
type Server struct {
	Port       int
	Mux        *http.ServeMux
	Metrics    *Metrics
	httpServer *http.Server
	log        zerolog.Logger
}

// New creates a Server listening on the provided port.
func New(port int, log zerolog.Logger) *Server {
	return &Server{
		Port:    port,
		Mux:     http.NewServeMux(),
		Metrics: NewMetrics(),
		log:     log,
	}
}

// Routes registers all HTTP handlers on the server mux.
func (s *Server) Routes(b *stats.Builder, streamInterval time.Duration) {
	s.Mux.HandleFunc("/health", handlers.Health)
	s.Mux.HandleFunc("/metrics", s.Metrics.WritePrometheus)

	// APIs
	s.Mux.Handle("/api/system-info", s.Metrics.Instrument(stats.Handler(b)))
	s.Mux.Handle("/ws/stats", handlers.WsStats(b, streamInterval, s.log))
}

// Start binds the listening socket on all interfaces and serves in a
// goroutine. A bind failure is returned synchronously so the caller can
// abort startup.
func (s *Server) Start() error {
	addr := fmt.Sprintf("0.0.0.0:%d", s.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	s.log.Info().Str("addr", addr).Msg("server listening")
	s.httpServer = &http.Server{Addr: addr, Handler: s.Mux}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("server error")
		}
	}()
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
