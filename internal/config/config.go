// Copyright (c) 2025 Hostmon authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Port             int
	Debug            bool
	StreamIntervalMS int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:             8080,
		Debug:            false,
		StreamIntervalMS: 2000,
	}
}

// StreamInterval returns the websocket push cadence.
func (c *Config) StreamInterval() time.Duration {
	return time.Duration(c.StreamIntervalMS) * time.Millisecond
}

// Load attempts to load configuration from the standard locations.
// Priority:
// 1. ~/.hostmon/config.ini
// 2. /etc/hostmon/config.ini
//
// It returns the loaded config (with defaults for missing fields) or the
// default config if no file is found. Errors are returned only if a file
// exists but cannot be read.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".hostmon", "config.ini")
		if _, err := os.Stat(userPath); err == nil {
			return ParseFile(userPath, cfg)
		}
	}

	sysPath := "/etc/hostmon/config.ini"
	if _, err := os.Stat(sysPath); err == nil {
		return ParseFile(sysPath, cfg)
	}

	return cfg, nil
}

// ParseFile reads a simple key=value INI file.
// Supported keys: port, debug, stream_interval_ms
func ParseFile(path string, defaults *Config) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// copy defaults
	cfg := *defaults

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		// Section headers [Section] are ignored; the structure is flat.
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		// remove quotes if present
		if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
			val = val[1 : len(val)-1]
		}

		switch strings.ToLower(key) {
		case "port":
			if i, err := strconv.Atoi(val); err == nil {
				cfg.Port = i
			}
		case "debug":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Debug = b
			}
		case "stream_interval_ms", "streamintervalms":
			if i, err := strconv.Atoi(val); err == nil && i > 0 {
				cfg.StreamIntervalMS = i
			}
		}
	}

	return &cfg, scanner.Err()
}
