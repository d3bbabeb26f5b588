package montecarlopi

import "runtime"

// ratio turns an inside count into a pi estimate.
func ratio(inside, points int64) float64 {
	if points <= 0 {
		return 0
	}
	return 4.0 * float64(inside) / float64(points)
}

// resolveWorkers picks the effective worker count for a parallel estimate.
// threads <= 0 selects runtime.NumCPU(); the result never exceeds points.
func resolveWorkers(threads int32, points int64) int {
	workers := int(threads)
	if workers <= 0 {
		workers = runtime.NumCPU()
		DebugLogOnce("using default worker count", "workers", workers)
	}
	if workers < 1 {
		workers = 1
	}
	if points > 0 && int64(workers) > points {
		workers = int(points)
	}
	return workers
}

// splitPoints pre-splits points into near-equal chunks, one per worker.
// The first points%workers chunks take one extra point.
func splitPoints(points int64, workers int) []int64 {
	if points <= 0 || workers <= 0 {
		return nil
	}
	per, rem := points/int64(workers), points%int64(workers)
	chunks := make([]int64, workers)
	for w := range chunks {
		chunks[w] = per
		if int64(w) < rem {
			chunks[w]++
		}
	}
	return chunks
}
