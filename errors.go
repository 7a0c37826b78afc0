package changepoint

import "errors"

var (
	// ErrDimensionMismatch is returned when the penalty table is not
	// exactly one element shorter than the data.
	ErrDimensionMismatch = errors.New("dimensions of data and penalty are not compatible")

	// ErrInvalidWindow is returned when a refinement window does not
	// fit the data or the segment that should contain it.
	ErrInvalidWindow = errors.New("dimensions of data are not compatible with start and end values")

	// ErrInvalidChanges is returned when a changepoint list is not
	// strictly ascending or falls outside the data.
	ErrInvalidChanges = errors.New("invalid changepoint list")
)
