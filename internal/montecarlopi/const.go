package montecarlopi

const (
	// DefaultPoints is the point count used by the CLI when none is given.
	DefaultPoints = 1_000_000
	// Inside-circle radius squared; the test is boundary inclusive.
	unitRadius2 = 1.0
	// golden-ratio increment used to spread worker indices over the seed space
	goldenGamma = 0x9e3779b97f4a7c15
	// DisplayPrecision is the number of decimals estimates are shown with.
	DisplayPrecision = 6
)
