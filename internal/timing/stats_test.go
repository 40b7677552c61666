package timing

import (
	"sync"
	"testing"
)

func TestStats_Accumulates(t *testing.T) {
	s := NewStats()
	s.Record("encode", 1.5, 3.0)
	s.Record("encode", 0.5, 1.0)
	s.Record("other", 2.0, 2.0)

	snap := s.Snapshot()
	enc := snap["encode"]
	if enc.Count != 2 || enc.CPUMillis != 2.0 || enc.WallMillis != 4.0 {
		t.Fatalf("encode accumulation wrong: %+v", enc)
	}
	if snap["other"].Count != 1 {
		t.Fatalf("other accumulation wrong: %+v", snap["other"])
	}
}

func TestStats_SnapshotIsACopy(t *testing.T) {
	s := NewStats()
	s.Record("m", 1, 1)
	snap := s.Snapshot()
	snap["m"] = Metrics{CPUMillis: 99}
	if got := s.Snapshot()["m"]; got.CPUMillis != 1 {
		t.Fatalf("snapshot aliases internal state: %+v", got)
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.Record("m", 1, 1)
	s.Reset()
	if n := len(s.Snapshot()); n != 0 {
		t.Fatalf("snapshot after reset has %d entries", n)
	}
}

func TestStats_ConcurrentRecord(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Record("m", 1, 1)
			}
		}()
	}
	wg.Wait()
	if got := s.Snapshot()["m"].Count; got != 800 {
		t.Fatalf("count=%d want 800", got)
	}
}

type panickyRecorder struct{}

func (panickyRecorder) Record(string, float64, float64) { panic("boom") }

func TestReport_SwallowsRecorderPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Report let a recorder panic escape: %v", r)
		}
	}()
	Report(panickyRecorder{}, "m", 1, 1)
	Report(nil, "m", 1, 1)
}

func TestTimer_StopReturnsElapsed(t *testing.T) {
	tm := StartTimer()
	// burn a little wall time
	total := 0
	for i := 0; i < 1000; i++ {
		total += i
	}
	_ = total
	cpuMS, wallMS := tm.Stop()
	if wallMS < 0 {
		t.Fatalf("negative wall time %v", wallMS)
	}
	if cpuMS < 0 {
		t.Fatalf("negative cpu time %v", cpuMS)
	}
}
