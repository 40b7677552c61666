package timing

import "sync"

// Recorder accepts one elapsed-time sample for a named metric.
// Implementations must be safe for concurrent use.
type Recorder interface {
	Record(name string, cpuMS, wallMS float64)
}

// Metrics is the accumulated total for one metric name.
type Metrics struct {
	CPUMillis  float64 `json:"cpu_ms"`
	WallMillis float64 `json:"wall_ms"`
	Count      uint64  `json:"count"`
}

// Stats accumulates timer samples per metric name. The zero value is
// not usable; construct with NewStats. Callers own the lifecycle:
// create it at startup, snapshot or reset it when reporting.
type Stats struct {
	mu sync.RWMutex
	m  map[string]Metrics
}

func NewStats() *Stats {
	return &Stats{m: make(map[string]Metrics)}
}

func (s *Stats) Record(name string, cpuMS, wallMS float64) {
	s.mu.Lock()
	acc := s.m[name]
	acc.CPUMillis += cpuMS
	acc.WallMillis += wallMS
	acc.Count++
	s.m[name] = acc
	s.mu.Unlock()
}

// Snapshot returns a copy of the current accumulation.
func (s *Stats) Snapshot() map[string]Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Metrics, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

func (s *Stats) Reset() {
	s.mu.Lock()
	s.m = make(map[string]Metrics)
	s.mu.Unlock()
}
