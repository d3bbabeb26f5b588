package montecarlopi

// countInside draws n points uniformly from [-1,1) x [-1,1) and counts the
// ones with x*x + y*y <= 1.
func countInside(src Source, n int64) int64 {
	var inside int64
	for i := int64(0); i < n; i++ {
		x := 2*src.Float64() - 1
		y := 2*src.Float64() - 1
		if x*x+y*y <= unitRadius2 {
			inside++
		}
	}
	return inside
}
