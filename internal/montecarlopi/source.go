package montecarlopi

import (
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// Source yields uniform values in [0, 1). A Source is owned by exactly one
// worker for the duration of one estimate and is never shared.
type Source interface {
	Float64() float64
}

// SourceFunc builds the generator for one worker. It is called once per
// worker per estimate, from that worker's goroutine.
type SourceFunc func(worker int) Source

// streams makes seeds unique even when two calls read the same clock tick.
var streams atomic.Uint64

// NewTimeSource returns a PCG generator seeded from the high resolution
// clock mixed with the worker index.
func NewTimeSource(worker int) Source {
	now := uint64(time.Now().UnixNano())
	stream := streams.Add(1)
	return rand.New(rand.NewPCG(now^(stream*goldenGamma), uint64(worker+1)*goldenGamma))
}
