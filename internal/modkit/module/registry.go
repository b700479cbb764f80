package module

import (
	"slices"
	"sync"
)

// process wide name -> ports, filled by MountAll
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores ports under name, replacing any earlier entry
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs looks up name and asserts its ports to T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists registered modules in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for name := range reg {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Reset empties the registry; tests call it between gateways
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reg = map[string]any{}
}
