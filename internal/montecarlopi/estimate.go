package montecarlopi

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// EstimateParallel splits points into per-worker chunks, samples every chunk
// on its own goroutine and generator, then sums the partial counts after all
// workers have joined. It returns 0 when points <= 0.
func (s *Sampler) EstimateParallel(points int64, threads int32) float64 {
	if points <= 0 {
		return 0
	}
	start := time.Now()
	parts := s.SampleParallel(points, threads)
	count := combine(parts)
	s.record(ModeParallel, count, len(parts), time.Since(start))
	return count.Pi()
}

// SampleParallel runs the fan-out and returns one PartialResult per worker,
// ordered by worker index.
func (s *Sampler) SampleParallel(points int64, threads int32) []PartialResult {
	if points <= 0 {
		return nil
	}
	chunks := splitPoints(points, resolveWorkers(threads, points))
	DebugLog("launching workers", "workers", len(chunks), "points", points, "per_worker", chunks[0])

	// each worker writes only its own slot; the kernel cannot fail, so the
	// group is used purely to join and Wait always returns nil
	parts := make([]PartialResult, len(chunks))
	var g errgroup.Group
	for w, n := range chunks {
		g.Go(func() error {
			src := s.source(w)
			parts[w] = PartialResult{Worker: w, Points: n, Inside: countInside(src, n)}
			return nil
		})
	}
	_ = g.Wait()
	return parts
}

// combine reduces partials on the calling goroutine.
func combine(parts []PartialResult) PointCount {
	var total PointCount
	for _, p := range parts {
		total.Inside += p.Inside
		total.Total += p.Points
	}
	return total
}
