package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"hostmon/internal/stats"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := New(0, zerolog.Nop())
	collector := stats.NewCPUCollector(zerolog.Nop())
	builder := stats.NewBuilder(collector, stats.NewBaseline(), zerolog.Nop())
	s.Routes(builder, time.Second)
	return s
}

func TestRoutesHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "\"status\":\"ok\"") {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestRoutesSystemInfo(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/system-info", http.NoBody)
	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var info stats.SystemInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if info.CPUInfo.Usage < 0 {
		t.Errorf("usage = %v, want >= 0", info.CPUInfo.Usage)
	}
	if info.NumCores > 0 && info.CPUInfo.Usage > float64(info.NumCores)*100.0 {
		t.Errorf("usage %v exceeds num_cores*100 = %d", info.CPUInfo.Usage, info.NumCores*100)
	}
}

func TestRoutesMetrics(t *testing.T) {
	s := newTestServer(t)

	// serve one snapshot so the request counter has been touched
	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/system-info", http.NoBody))

	rec = httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "hostmon_requests_total") {
		t.Error("metrics output should contain hostmon_requests_total")
	}
}

// Full scenario: sampler running, at least one cycle elapsed, then a
// request observes a plausible usage value.
func TestEndToEndSnapshot(t *testing.T) {
	s := New(0, zerolog.Nop())
	collector := stats.NewCPUCollector(zerolog.Nop())
	builder := stats.NewBuilder(collector, stats.NewBaseline(), zerolog.Nop())
	s.Routes(builder, time.Second)

	collector.Start()
	defer collector.Stop()
	time.Sleep(stats.MinimumSampleInterval + 100*time.Millisecond)

	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/system-info", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var info stats.SystemInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if info.CPUInfo.Usage < 0 {
		t.Errorf("usage = %v, want >= 0", info.CPUInfo.Usage)
	}
	if info.NumCores > 0 && info.CPUInfo.Usage > float64(info.NumCores)*100.0 {
		t.Errorf("usage %v exceeds num_cores*100 = %d", info.CPUInfo.Usage, info.NumCores*100)
	}
	if info.Hostname == "" {
		t.Error("hostname should never be empty")
	}
}

func TestStartBindsAndShutsDown(t *testing.T) {
	s := newTestServer(t)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
