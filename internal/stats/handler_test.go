package stats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestHandlerServesSnapshot(t *testing.T) {
	sampler := &fakeSampler{info: CPUInfo{Model: "TestCPU", Usage: 37.5}}
	h := Handler(NewBuilder(sampler, NewBaseline(), zerolog.Nop()))

	req := httptest.NewRequest("GET", "/api/system-info", http.NoBody)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var info SystemInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if info.CPUInfo.Model != "TestCPU" || info.CPUInfo.Usage != 37.5 {
		t.Errorf("cpu_info = %+v, want model TestCPU usage 37.5", info.CPUInfo)
	}
	if info.Memory.Used != info.Memory.Total-info.Memory.Free {
		t.Errorf("memory used %d != total-free %d", info.Memory.Used, info.Memory.Total-info.Memory.Free)
	}
	if ok, _ := regexp.MatchString(`^\d{2,}:\d{2}:\d{2}:\d{2}$`, info.Uptime); !ok {
		t.Errorf("uptime %q does not match DD:HH:MM:SS", info.Uptime)
	}
	if info.Hostname == "" {
		t.Error("hostname should never be empty")
	}
}

func TestHandlerWireFormat(t *testing.T) {
	h := Handler(NewBuilder(&fakeSampler{}, NewBaseline(), zerolog.Nop()))

	req := httptest.NewRequest("GET", "/api/system-info", http.NoBody)
	rec := httptest.NewRecorder()
	h(rec, req)

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, key := range []string{"cpu_info", "num_cores", "uptime", "hostname", "memory", "disks", "network"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("response missing key %q", key)
		}
	}
}
