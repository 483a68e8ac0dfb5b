package frameplot

import "errors"

var (
	// ErrInvalidRotation means the rotation matrix contains a
	// non-finite element or is not orthonormal within tolerance.
	ErrInvalidRotation = errors.New("rotation matrix must be finite and orthonormal")

	// ErrInvalidUpdateTarget means the frame passed for in-place
	// update does not hold three arrows and zero or three labels.
	ErrInvalidUpdateTarget = errors.New("update target is not a valid frame")

	// ErrInvalidParent means the parent container is nil or no longer
	// usable.
	ErrInvalidParent = errors.New("parent container is not valid")

	// ErrInvalidColorCount means the basis colours were neither a
	// single colour nor exactly three.
	ErrInvalidColorCount = errors.New("basis colours must be one or three")

	// ErrInvalidLengths means the basis vector lengths were neither a
	// single value nor exactly three, or contained a negative value.
	ErrInvalidLengths = errors.New("basis vector lengths must be a non-negative scalar or three non-negative values")
)
