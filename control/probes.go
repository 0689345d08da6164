// control/probes.go
// Author: momentics <momentics@gmail.com>
//
// Adapters from library types to metrics and probes.

package control

import (
	"strconv"

	"github.com/momentics/dynarray/api"
)

// PublishAllocatorStats flattens stats into reg under prefix, e.g.
// "<prefix>.total_alloc" and "<prefix>.class.64".
func PublishAllocatorStats(reg *MetricsRegistry, prefix string, stats api.AllocatorStats) {
	reg.Set(prefix+".total_alloc", stats.TotalAlloc)
	reg.Set(prefix+".total_free", stats.TotalFree)
	reg.Set(prefix+".reused", stats.Reused)
	reg.Set(prefix+".dropped", stats.Dropped)
	reg.Set(prefix+".in_use", stats.InUse)
	for class, n := range stats.Classes {
		reg.Set(prefix+".class."+strconv.Itoa(class), n)
	}
}

// RegisterContainer installs a probe reporting size, capacity and emptiness
// of c. The probe reads c without locking; call DumpState from the goroutine
// that owns c.
func RegisterContainer(d api.Debug, name string, c api.Sized) {
	d.RegisterProbe(name, func() any {
		return map[string]any{
			"size":     c.Size(),
			"capacity": c.Capacity(),
			"empty":    c.IsEmpty(),
		}
	})
}
