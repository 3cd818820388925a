// Package lanes provides fixed-width, hardware-shaped vector types.
//
// Every vector is a stack-allocated value with a closed set of lane counts
// (2, 3, 4, 8, 16, 32 or 64 depending on the element width), laid out exactly
// like the matching native vector register. Operations are lanewise and
// branch-free per lane; comparisons produce boolean masks that select lanes.
//
// Basic usage:
//
//	a := lanes.NewVec4[float32](1, 2, 3, 4)
//	b := lanes.Splat4[float32](3)
//
//	m := a.Less(b)        // Mask4{true, true, false, false}
//	c := a.Merged(b, m)   // lanes of b where m is true
//
// Three-lane vectors occupy four physical lanes to match register shape; the
// padding lane is never observable through equality, hashing or formatting.
package lanes

//go:generate go run github.com/ajroetker/go-lanes/cmd/lanesgen -o instantiations.go

import "errors"

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// ErrLengthMismatch is returned when constructing a vector from a sequence
// whose length does not equal the vector's logical lane count.
var ErrLengthMismatch = errors.New("lanes: sequence length does not match lane count")

// ErrDivisionByZero is returned by integer division and remainder when any
// divisor lane is zero. Hardware behavior on a zero divisor differs by
// platform, so this is the one integer operation with an error path.
var ErrDivisionByZero = errors.New("lanes: division by zero lane")

// RoundingMode selects how Round* operations round each lane.
type RoundingMode int

const (
	// RoundToNearest rounds to the nearest integer, ties away from zero.
	RoundToNearest RoundingMode = iota

	// RoundToEven rounds to the nearest integer, ties to even
	// (the IEEE 754 default).
	RoundToEven

	// RoundTowardZero truncates toward zero.
	RoundTowardZero

	// RoundUp rounds toward positive infinity.
	RoundUp

	// RoundDown rounds toward negative infinity.
	RoundDown
)

// String returns a human-readable name for the rounding mode.
func (m RoundingMode) String() string {
	switch m {
	case RoundToNearest:
		return "nearest"
	case RoundToEven:
		return "even"
	case RoundTowardZero:
		return "zero"
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	default:
		return "unknown"
	}
}
