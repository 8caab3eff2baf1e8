package stats

import (
	"encoding/json"
	"net/http"
)

// Handler serves the assembled system snapshot. Always 200; unavailable
// fields come back as best-effort defaults, never as an error response.
func Handler(b *Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := b.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(info)
	}
}
