package profiler

import (
	"log"
	"runtime"
	"time"
)

// FrameStats is the per-frame data fed to the Profiler.
type FrameStats struct {
	// Visible is the number of objects that passed frustum culling.
	Visible int
	// Culled is the number of enabled objects rejected by frustum culling.
	Culled int
	// CascadeFitTime is how long the shadow cascades took to fit.
	CascadeFitTime time.Duration
}

// Report summarizes the frames of one update interval.
type Report struct {
	FPS               float64
	AvgVisible        float64
	AvgCulled         float64
	AvgCascadeFitTime time.Duration
	HeapMB            float64
	AllocRateMB       float64
	GCCount           uint32
}

// Profiler tracks frame rate, culling and cascade statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64

	visibleSum int
	culledSum  int
	fitSum     time.Duration

	last  Report
	quiet bool
	now   func() time.Time
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame with that frame's statistics.
// Logs a summary when the update interval has elapsed: FPS, average visible and
// culled object counts, average cascade fit time, heap usage and allocation rate.
//
// Parameters:
//   - stats: the statistics for the frame just built
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(stats FrameStats) bool {
	p.frameCount++
	p.visibleSum += stats.Visible
	p.culledSum += stats.Culled
	p.fitSum += stats.CascadeFitTime

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	frames := float64(p.frameCount)
	runtime.ReadMemStats(&p.memStats)
	// Alloc: bytes of live heap objects. TotalAlloc: cumulative bytes allocated (tracks churn).
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	p.last = Report{
		FPS:               frames / elapsed.Seconds(),
		AvgVisible:        float64(p.visibleSum) / frames,
		AvgCulled:         float64(p.culledSum) / frames,
		AvgCascadeFitTime: p.fitSum / time.Duration(p.frameCount),
		HeapMB:            float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:       float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:           p.memStats.NumGC,
	}

	if !p.quiet {
		log.Printf("[Profiler] FPS: %.2f | Visible: %.1f | Culled: %.1f | Cascade fit: %s | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
			p.last.FPS, p.last.AvgVisible, p.last.AvgCulled, p.last.AvgCascadeFitTime, p.last.HeapMB, p.last.AllocRateMB, p.last.GCCount)
	}

	p.frameCount = 0
	p.visibleSum = 0
	p.culledSum = 0
	p.fitSum = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recently logged report, or the zero Report before the
// first interval has elapsed.
//
// Returns:
//   - Report: the last report
func (p *Profiler) Last() Report {
	return p.last
}
