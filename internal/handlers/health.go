package handlers

import (
	"fmt"
	"net/http"
	"os"
)

// Health returns basic health info.
func Health(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fmt.Sprintf("{\"status\":\"ok\",\"version\":\"0.1.0\",\"host\":%q}", hostname)))
}
