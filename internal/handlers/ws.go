// Copyright (c) 2025 Hostmon authors
// All rights reserved. Use of this source code is governed by an
// MIT-style license that can be found in the LICENSE file.

package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"hostmon/internal/stats"
)

// WsStats upgrades the connection to a WebSocket and pushes a fresh
// system snapshot every interval until the client disconnects. The
// snapshot builder is shared with the plain HTTP endpoint; each frame
// is an independent full re-query.
func WsStats(b *stats.Builder, interval time.Duration, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		up := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 8192,
			CheckOrigin:     func(r *http.Request) bool { return true },
		}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "upgrade failed", http.StatusBadRequest)
			return
		}
		defer conn.Close()

		log.Debug().Str("remote", r.RemoteAddr).Msg("stats stream connected")

		// drain client frames so close/ping handling works; any read
		// error means the peer is gone
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// first frame immediately, then on the tick
		if err := conn.WriteJSON(b.Snapshot()); err != nil {
			return
		}
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteJSON(b.Snapshot()); err != nil {
					log.Debug().Str("remote", r.RemoteAddr).Msg("stats stream closed")
					return
				}
			case <-done:
				log.Debug().Str("remote", r.RemoteAddr).Msg("stats stream disconnected")
				return
			}
		}
	}
}
