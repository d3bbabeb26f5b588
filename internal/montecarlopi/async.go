package montecarlopi

import (
	"context"
	"time"
)

// Estimate is a handle to an estimate running on its own goroutine.
// The computation cannot be cancelled; Wait only stops waiting for it.
type Estimate struct {
	req     SampleRequest
	done    chan struct{}
	value   float64
	elapsed time.Duration
}

// Go starts req in the background and returns immediately.
func (s *Sampler) Go(req SampleRequest) *Estimate {
	e := &Estimate{req: req, done: make(chan struct{})}
	go func() {
		defer close(e.done)
		start := time.Now()
		e.value = s.Estimate(req)
		e.elapsed = time.Since(start)
	}()
	return e
}

// Go starts req on the default sampler.
func Go(req SampleRequest) *Estimate { return defaultSampler.Go(req) }

func (e *Estimate) Request() SampleRequest { return e.req }

// Done is closed once the value is available.
func (e *Estimate) Done() <-chan struct{} { return e.done }

// Wait blocks until the estimate completes or ctx ends.
func (e *Estimate) Wait(ctx context.Context) (float64, error) {
	select {
	case <-e.done:
		return e.value, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Elapsed is the wall time the estimate took; zero until Done is closed.
func (e *Estimate) Elapsed() time.Duration {
	select {
	case <-e.done:
		return e.elapsed
	default:
		return 0
	}
}
