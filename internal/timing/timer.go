// Package timing measures elapsed wall-clock and CPU time and
// accumulates the results per metric name. The registry is an
// explicitly owned component handed to whoever reports into it; there
// is no package-level global.
package timing

import "time"

// Timer captures a start instant in both wall-clock and process CPU
// time. Results are reported in milliseconds.
type Timer struct {
	wallStart time.Time
	cpuStart  time.Duration
}

func StartTimer() *Timer {
	return &Timer{
		wallStart: time.Now(),
		cpuStart:  cpuNow(),
	}
}

func (t *Timer) Restart() {
	t.wallStart = time.Now()
	t.cpuStart = cpuNow()
}

// Stop returns the elapsed CPU and wall-clock milliseconds since the
// timer started. CPU time is zero on platforms without rusage.
func (t *Timer) Stop() (cpuMS, wallMS float64) {
	wallMS = float64(time.Since(t.wallStart)) / float64(time.Millisecond)
	if cpu := cpuNow(); cpu > 0 && t.cpuStart > 0 {
		cpuMS = float64(cpu-t.cpuStart) / float64(time.Millisecond)
	}
	return cpuMS, wallMS
}

// Report records one sample under name. A panic from a foreign
// Recorder is swallowed: instrumentation must never abort the caller.
func Report(rec Recorder, name string, cpuMS, wallMS float64) {
	if rec == nil {
		return
	}
	defer func() { _ = recover() }()
	rec.Record(name, cpuMS, wallMS)
}
