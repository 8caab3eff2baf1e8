package stats

// CPUInfo is the latest published CPU reading. Model is fixed at startup;
// Usage is the sum of per-core busy percentages from the most recent
// collector cycle, so it can exceed 100 on multi-core hosts.
type CPUInfo struct {
	Model string  `json:"model"`
	Usage float64 `json:"usage"`
}

// MemoryInfo holds memory figures in bytes, derived at query time.
type MemoryInfo struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Free  uint64 `json:"free"`
}

// DiskInfo describes one mounted volume.
type DiskInfo struct {
	Name           string `json:"name"`
	TotalSpace     uint64 `json:"total_space"`
	AvailableSpace uint64 `json:"available_space"`
}

// NetworkStats holds cumulative byte counters for one interface.
type NetworkStats struct {
	Name        string `json:"name"`
	Received    uint64 `json:"received"`
	Transmitted uint64 `json:"transmitted"`
}

// SystemInfo is the full response snapshot, assembled fresh per request
// and discarded after serialization.
type SystemInfo struct {
	CPUInfo  CPUInfo        `json:"cpu_info"`
	NumCores int            `json:"num_cores"`
	Uptime   string         `json:"uptime"`
	Hostname string         `json:"hostname"`
	Memory   MemoryInfo     `json:"memory"`
	Disks    []DiskInfo     `json:"disks"`
	Network  []NetworkStats `json:"network"`
}

// Sampler publishes a continuously refreshed CPU reading
type Sampler interface {
	Start()
	Stop()
	Current() CPUInfo
}
