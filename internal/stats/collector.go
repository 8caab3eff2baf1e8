package stats

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
)

// MinimumSampleInterval is the shortest window over which a CPU busy
// percentage is meaningful; sampling faster yields garbage deltas.
const MinimumSampleInterval = 200 * time.Millisecond

// CPUCollector continuously measures aggregate CPU utilization and
// publishes the latest total into a read-shared cell. Single writer,
// arbitrarily many concurrent readers via Current.
type CPUCollector struct {
	mu       sync.RWMutex
	current  CPUInfo
	interval time.Duration
	stopChan chan struct{}
	log      zerolog.Logger
	onCycle  func(failed bool)
}

// NewCPUCollector initializes the collector with the CPU model of the
// first detected processor ("Unknown" if unavailable) and zero usage.
func NewCPUCollector(log zerolog.Logger) *CPUCollector {
	model := "Unknown"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		model = infos[0].ModelName
	}
	return &CPUCollector{
		current:  CPUInfo{Model: model, Usage: 0.0},
		interval: MinimumSampleInterval,
		stopChan: make(chan struct{}),
		log:      log,
	}
}

// SetCycleHook registers a callback invoked after every sampling cycle.
// Must be called before Start.
func (c *CPUCollector) SetCycleHook(fn func(failed bool)) {
	c.onCycle = fn
}

func (c *CPUCollector) Start() {
	// Prime the per-core counters so the first real cycle measures a
	// delta over the sleep window rather than since process start.
	_, _ = cpu.Percent(0, true)
	go c.loop()
}

func (c *CPUCollector) Stop() {
	close(c.stopChan)
}

// Current returns a copy of the last published reading. The read lock is
// held only for the copy, never across a measurement.
func (c *CPUCollector) Current() CPUInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *CPUCollector) loop() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

// collect takes one measurement across all logical cores and publishes
// the summed total. A failed measurement means no update this cycle; the
// next tick retries unconditionally.
func (c *CPUCollector) collect() {
	perCore, err := cpu.Percent(0, true)
	if err != nil || len(perCore) == 0 {
		c.log.Warn().Err(err).Msg("cpu measurement failed, skipping cycle")
		if c.onCycle != nil {
			c.onCycle(true)
		}
		return
	}

	var total float64
	for _, pct := range perCore {
		total += pct
	}
	c.log.Debug().Floats64("per_core", perCore).Float64("total", total).Msg("cpu sample")

	c.mu.Lock()
	c.current.Usage = total
	c.mu.Unlock()

	if c.onCycle != nil {
		c.onCycle(false)
	}
}

// publish overwrites the usage field directly; used by tests to drive
// the cell without real measurements.
func (c *CPUCollector) publish(usage float64) {
	c.mu.Lock()
	c.current.Usage = usage
	c.mu.Unlock()
}
