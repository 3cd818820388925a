// Copyright 2026 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lanes

import (
	"math"
	"math/bits"
	"unsafe"
)

// Per-lane scalar helpers. Bit queries work on the lane's width-masked bit
// pattern so that sign extension from the uint64 widening never leaks into
// the counts.

// laneBitWidth returns the element width in bits (8, 16, 32 or 64).
func laneBitWidth[T Lanes]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// widthMask returns a mask with the low w bits set.
func widthMask(w int) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

func laneLeadingZeros[T Integers](v T) int {
	w := laneBitWidth[T]()
	u := uint64(v) & widthMask(w)
	// LeadingZeros64(0) is 64, so an all-zero lane yields w without a branch.
	return bits.LeadingZeros64(u) - (64 - w)
}

func laneTrailingZeros[T Integers](v T) int {
	w := laneBitWidth[T]()
	u := uint64(v) & widthMask(w)
	if u == 0 {
		return w
	}
	return bits.TrailingZeros64(u)
}

func laneOnesCount[T Integers](v T) int {
	u := uint64(v) & widthMask(laneBitWidth[T]())
	return bits.OnesCount64(u)
}

// laneSwapBytes reverses the byte order within a single lane. An 8-bit lane
// is its own byte swap.
func laneSwapBytes[T Integers](v T) T {
	w := laneBitWidth[T]()
	u := uint64(v) & widthMask(w)
	return T(bits.ReverseBytes64(u) >> (64 - w))
}

// laneBits returns the lane's raw bit pattern widened to 64 bits, used for
// hashing. Named element types fall back to an in-memory read.
func laneBits[T Lanes](v T) uint64 {
	switch x := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	case int8:
		return uint64(uint8(x))
	case int16:
		return uint64(uint16(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	default:
		var u uint64
		src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v))
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&u)), len(src)), src)
		return u
	}
}

// isFloatKind reports whether T is a floating-point element type. Integer
// division of 1 by 2 truncates to zero; float division does not.
func isFloatKind[T Lanes]() bool {
	return T(1)/T(2) != 0
}

// isSignedKind reports whether T can represent negative values. Unsigned
// zero minus one wraps to the maximum value.
func isSignedKind[T Lanes]() bool {
	var z T
	return z-1 < z
}
