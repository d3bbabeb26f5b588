package montecarlopi

// Mode tells which code path produced an estimate.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeParallel   Mode = "parallel"
)

// SampleRequest describes one estimate. Points may be zero or negative, in
// which case the estimate is 0. Threads <= 0 selects the default worker count.
type SampleRequest struct {
	Points     int64
	Threads    int32
	Sequential bool // force the single goroutine path
}

// Mode returns the code path the request runs on.
func (r SampleRequest) Mode() Mode {
	if r.Sequential {
		return ModeSequential
	}
	return ModeParallel
}

// PartialResult is one worker's share of a parallel estimate.
type PartialResult struct {
	Worker int
	Points int64
	Inside int64
}

// PointCount holds raw sampling counts.
type PointCount struct {
	Inside int64
	Total  int64
}

// Pi converts the counts into an estimate; zero Total gives 0.
func (c PointCount) Pi() float64 { return ratio(c.Inside, c.Total) }
