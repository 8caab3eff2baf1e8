package stats

import (
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Baseline holds host facts enumerated once at startup and shared
// read-only across all snapshot builds. Refresh may be driven by an
// external maintenance path; it uses the same reader/writer discipline
// as the CPU cell.
type Baseline struct {
	mu       sync.RWMutex
	numCores int
}

// NewBaseline enumerates the logical core count. A failed enumeration
// leaves the count at zero rather than failing startup.
func NewBaseline() *Baseline {
	b := &Baseline{}
	b.Refresh()
	return b
}

// Refresh re-enumerates the logical core count.
func (b *Baseline) Refresh() {
	n, err := cpu.Counts(true)
	if err != nil {
		return
	}
	b.mu.Lock()
	b.numCores = n
	b.mu.Unlock()
}

// NumCores returns the cached logical core count.
func (b *Baseline) NumCores() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.numCores
}
