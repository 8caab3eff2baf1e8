package stats

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// Builder assembles one SystemInfo per request: the cached CPU reading
// plus freshly queried memory, uptime, disk and network data. It holds
// no per-request state and is safe for concurrent use.
type Builder struct {
	sampler  Sampler
	baseline *Baseline
	log      zerolog.Logger
}

func NewBuilder(sampler Sampler, baseline *Baseline, log zerolog.Logger) *Builder {
	return &Builder{sampler: sampler, baseline: baseline, log: log}
}

// Snapshot builds the full response. Every field degrades to a default
// on a failed platform query; it never returns an error.
func (b *Builder) Snapshot() SystemInfo {
	info := SystemInfo{
		CPUInfo:  b.sampler.Current(),
		NumCores: b.baseline.NumCores(),
		Uptime:   FormatUptime(0),
		Hostname: "Unknown",
		Disks:    []DiskInfo{},
		Network:  []NetworkStats{},
	}

	if hi, err := host.Info(); err == nil {
		if hi.Hostname != "" {
			info.Hostname = hi.Hostname
		}
		info.Uptime = FormatUptime(hi.Uptime)
	} else {
		b.log.Warn().Err(err).Msg("host query failed")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.Memory = MemoryInfo{
			Total: vm.Total,
			Used:  vm.Total - vm.Available,
			Free:  vm.Available,
		}
	} else {
		b.log.Warn().Err(err).Msg("memory query failed")
	}

	info.Disks = b.enumerateDisks()
	info.Network = b.enumerateNetwork()
	return info
}

// enumerateDisks re-enumerates mounted volumes on every call; no caching.
func (b *Builder) enumerateDisks() []DiskInfo {
	parts, err := disk.Partitions(false)
	if err != nil {
		b.log.Warn().Err(err).Msg("disk enumeration failed")
		return []DiskInfo{}
	}
	disks := make([]DiskInfo, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		disks = append(disks, DiskInfo{
			Name:           p.Device,
			TotalSpace:     usage.Total,
			AvailableSpace: usage.Free,
		})
	}
	return disks
}

// enumerateNetwork re-enumerates interfaces and their cumulative counters.
func (b *Builder) enumerateNetwork() []NetworkStats {
	counters, err := psnet.IOCounters(true)
	if err != nil {
		b.log.Warn().Err(err).Msg("network enumeration failed")
		return []NetworkStats{}
	}
	network := make([]NetworkStats, 0, len(counters))
	for _, c := range counters {
		network = append(network, NetworkStats{
			Name:        c.Name,
			Received:    c.BytesRecv,
			Transmitted: c.BytesSent,
		})
	}
	return network
}

// FormatUptime renders seconds since boot as DD:HH:MM:SS, zero-padded.
// Pure duration decomposition, no calendar semantics.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", days, hours, minutes, secs)
}
