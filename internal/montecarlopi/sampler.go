package montecarlopi

import "time"

// Sampler estimates pi by Monte Carlo sampling. The zero value is ready to
// use: workers get clock seeded generators and no metrics are recorded.
// A Sampler holds no per-call state and is safe for concurrent use.
type Sampler struct {
	// Source builds each worker's generator; nil means NewTimeSource.
	Source SourceFunc
	// Metrics, when set, is updated once per completed estimate.
	Metrics *Metrics
}

var defaultSampler = &Sampler{}

func (s *Sampler) source(worker int) Source {
	if s.Source != nil {
		return s.Source(worker)
	}
	return NewTimeSource(worker)
}

func (s *Sampler) record(mode Mode, count PointCount, workers int, d time.Duration) {
	DebugLog("estimate done", "mode", mode, "points", count.Total, "inside", count.Inside, "workers", workers, "elapsed", d)
	s.Metrics.observe(mode, count, workers, d)
}

// Estimate runs req on the path it selects.
func (s *Sampler) Estimate(req SampleRequest) float64 {
	if req.Sequential {
		return s.EstimateSequential(req.Points)
	}
	return s.EstimateParallel(req.Points, req.Threads)
}

// EstimateSequential samples points on the calling goroutine.
// It returns 0 when points <= 0.
func (s *Sampler) EstimateSequential(points int64) float64 {
	if points <= 0 {
		return 0
	}
	start := time.Now()
	count := s.GeneratePoints(points)
	s.record(ModeSequential, count, 1, time.Since(start))
	return count.Pi()
}

// GeneratePoints samples points sequentially and returns the raw counts.
// For points <= 0 it returns a zero PointCount.
func (s *Sampler) GeneratePoints(points int64) PointCount {
	if points <= 0 {
		return PointCount{}
	}
	return PointCount{
		Inside: countInside(s.source(0), points),
		Total:  points,
	}
}

// EstimateSequential estimates pi on one goroutine with a fresh generator.
func EstimateSequential(points int64) float64 {
	return defaultSampler.EstimateSequential(points)
}

// EstimateParallel estimates pi across threads goroutines (NumCPU when
// threads <= 0), each with its own generator.
func EstimateParallel(points int64, threads int32) float64 {
	return defaultSampler.EstimateParallel(points, threads)
}

// GeneratePoints returns inside and total counts for points sequential draws.
func GeneratePoints(points int64) PointCount {
	return defaultSampler.GeneratePoints(points)
}
