// Copyright (c) 2025 Hostmon authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"hostmon/internal/config"
	"hostmon/internal/server"
	"hostmon/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	port := flag.Int("port", cfg.Port, "port to listen on")
	debug := flag.Bool("debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	baseline := stats.NewBaseline()
	collector := stats.NewCPUCollector(log.With().Str("component", "collector").Logger())
	builder := stats.NewBuilder(collector, baseline, log.With().Str("component", "snapshot").Logger())

	srv := server.New(*port, log.With().Str("component", "server").Logger())
	collector.SetCycleHook(srv.Metrics.ObserveSamplerCycle)
	srv.Routes(builder, cfg.StreamInterval())

	collector.Start()
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	// wait for interrupt (Ctrl-C) or termination signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutdown signal received, shutting down server...")

	// stop the sampler, then drain in-flight requests
	collector.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
}
