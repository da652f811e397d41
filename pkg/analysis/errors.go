package analysis

import "errors"

// Pipeline failure kinds. Stage-local emptiness (a JD without certifications,
// a resume without a skills section) is not an error; these cover the cases
// where the request as a whole cannot produce a result.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrTimeout      = errors.New("analysis timed out")
)
