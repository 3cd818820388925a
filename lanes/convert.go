package lanes

import "math"

// This file provides the per-lane conversion policies. Cross-element
// conversion between equal lane counts is always explicit: the saturating
// entry point clamps to the destination's representable range, the
// truncating entry point reproduces the hardware narrowing instruction.

// saturateLane converts a single lane value with clamping.
//
// Integer destinations clamp to [min, max] of the destination type; a NaN
// source maps to zero by convention. Float destinations take the plain IEEE
// conversion: every integer lane value is representable (at most rounded),
// and float64 -> float32 overflow follows IEEE, yielding an infinity.
func saturateLane[To, From Lanes](v From) To {
	if isFloatKind[To]() {
		return To(v)
	}
	switch {
	case isFloatKind[From]():
		return saturateFloatLane[To](float64(v))
	case isSignedKind[From]():
		return saturateSignedLane[To](int64(v))
	default:
		return saturateUnsignedLane[To](uint64(v))
	}
}

func saturateFloatLane[To Lanes](f float64) To {
	w := laneBitWidth[To]()
	if f != f {
		// NaN maps to zero; hardware conventions differ, ours does not.
		return 0
	}
	if isSignedKind[To]() {
		hi := math.Ldexp(1, w-1) // 2^(w-1), exact in float64
		switch {
		case f >= hi:
			return To(maxSigned(w))
		case f <= -hi-1:
			return To(minSigned(w))
		default:
			// In (-2^(w-1)-1, 2^(w-1)): truncation toward zero lands in range.
			return To(int64(f))
		}
	}
	hi := math.Ldexp(1, w)
	switch {
	case f >= hi:
		return To(widthMask(w))
	case f <= 0:
		return 0
	default:
		return To(uint64(f))
	}
}

func saturateSignedLane[To Lanes](i int64) To {
	w := laneBitWidth[To]()
	if isSignedKind[To]() {
		if i > maxSigned(w) {
			return To(maxSigned(w))
		}
		if i < minSigned(w) {
			return To(minSigned(w))
		}
		return To(i)
	}
	if i < 0 {
		return 0
	}
	if u := uint64(i); u > widthMask(w) {
		return To(widthMask(w))
	}
	return To(i)
}

func saturateUnsignedLane[To Lanes](u uint64) To {
	w := laneBitWidth[To]()
	if isSignedKind[To]() {
		if u > uint64(maxSigned(w)) {
			return To(maxSigned(w))
		}
		return To(u)
	}
	if u > widthMask(w) {
		return To(widthMask(w))
	}
	return To(u)
}

// truncateLane converts a single lane value by raw bit truncation.
//
// Integer sources narrow by dropping high bits (two's-complement
// wraparound), exactly like the hardware narrowing instruction. Float
// sources truncate toward zero and then bit-truncate; NaN, infinities and
// finite values outside the int64 range all map to zero.
func truncateLane[To Integers, From Lanes](v From) To {
	if isFloatKind[From]() {
		f := math.Trunc(float64(v))
		lim := math.Ldexp(1, 63)
		if f != f || f >= lim || f < -lim {
			return 0
		}
		return To(int64(f))
	}
	return To(v)
}

func maxSigned(w int) int64 {
	return int64(widthMask(w) >> 1)
}

func minSigned(w int) int64 {
	return int64(-1) << (w - 1)
}
