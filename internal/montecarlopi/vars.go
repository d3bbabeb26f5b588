package montecarlopi

import "math/rand/v2"

var (
	Debug = false // set to true for verbose debug output on stderr
	// Compile time check that the stdlib generator satisfies Source
	_ Source = (*rand.Rand)(nil)
)
