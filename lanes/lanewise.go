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
	"fmt"
	"math"
	"strings"
)

// This file holds the shared lanewise kernels. Every shape type (Vec2..Vec64)
// wraps these on its logical lanes, so each operation's semantics live in
// exactly one place. Kernels assume equal-length slices and contain no
// data-dependent branching beyond what the contract requires.

func addLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divFloatLanes[T Floats](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func negLanes[T Lanes](dst, a []T) {
	for i := range dst {
		var zero T
		dst[i] = zero - a[i]
	}
}

func minLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		if b[i] < a[i] {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

func maxLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		if b[i] > a[i] {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

func clampLanes[T Lanes](dst, v, lo, hi []T) {
	for i := range dst {
		x := v[i]
		if x < lo[i] {
			x = lo[i]
		}
		if x > hi[i] {
			x = hi[i]
		}
		dst[i] = x
	}
}

// Integer division truncates toward zero. The whole operation fails if any
// divisor lane is zero; no lanes are computed in that case.
func quoLanes[T Integers](dst, a, b []T) error {
	for i := range b {
		if b[i] == 0 {
			return ErrDivisionByZero
		}
	}
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
	return nil
}

func remLanes[T Integers](dst, a, b []T) error {
	for i := range b {
		if b[i] == 0 {
			return ErrDivisionByZero
		}
	}
	for i := range dst {
		dst[i] = a[i] % b[i]
	}
	return nil
}

// Comparison kernels. With NaN lanes every ordering relation is false,
// which is what the generic < and > operators already give us.

func eqLanes[T Lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] == b[i]
	}
}

func neLanes[T Lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] != b[i]
	}
}

func ltLanes[T Lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] < b[i]
	}
}

func leLanes[T Lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] <= b[i]
	}
}

func gtLanes[T Lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] > b[i]
	}
}

func geLanes[T Lanes](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] >= b[i]
	}
}

// mergeLanes writes b[i] where m[i] is true, a[i] otherwise.
func mergeLanes[T Lanes](dst, a, b []T, m []bool) {
	for i := range dst {
		if m[i] {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// Bitwise kernels, integer elements only.

func andLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func orLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func xorLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func notLanes[T Integers](dst, a []T) {
	for i := range dst {
		dst[i] = ^a[i]
	}
}

func andNotLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = (^a[i]) & b[i]
	}
}

// Shift kernels mask the per-lane count to count & (bitWidth-1), matching
// native hardware shifts. Negative counts contribute their two's-complement
// bit pattern, so -1 shifts by bitWidth-1.
func shiftLeftLanes[T Integers](dst, v, counts []T) {
	mask := uint64(laneBitWidth[T]() - 1)
	for i := range dst {
		dst[i] = v[i] << (uint64(counts[i]) & mask)
	}
}

// Right shift is arithmetic for signed elements, logical for unsigned.
func shiftRightLanes[T Integers](dst, v, counts []T) {
	mask := uint64(laneBitWidth[T]() - 1)
	for i := range dst {
		dst[i] = v[i] >> (uint64(counts[i]) & mask)
	}
}

func shiftLeftAllLanes[T Integers](dst, v []T, bits int) {
	shift := uint64(bits) & uint64(laneBitWidth[T]()-1)
	for i := range dst {
		dst[i] = v[i] << shift
	}
}

func shiftRightAllLanes[T Integers](dst, v []T, bits int) {
	shift := uint64(bits) & uint64(laneBitWidth[T]()-1)
	for i := range dst {
		dst[i] = v[i] >> shift
	}
}

func leadingZerosLanes[T Integers](dst, v []T) {
	for i := range dst {
		dst[i] = T(laneLeadingZeros(v[i]))
	}
}

func trailingZerosLanes[T Integers](dst, v []T) {
	for i := range dst {
		dst[i] = T(laneTrailingZeros(v[i]))
	}
}

func onesCountLanes[T Integers](dst, v []T) {
	for i := range dst {
		dst[i] = T(laneOnesCount(v[i]))
	}
}

func swapBytesLanes[T Integers](dst, v []T) {
	for i := range dst {
		dst[i] = laneSwapBytes(v[i])
	}
}

// bitMaskLanes materializes a boolean mask as integer lanes: all-ones where
// true (-1 for signed elements, the maximum value for unsigned), zero where
// false.
func bitMaskLanes[T Integers](dst []T, m []bool) {
	for i := range dst {
		if m[i] {
			dst[i] = ^T(0)
		} else {
			dst[i] = 0
		}
	}
}

// Saturated arithmetic clamps to the element's range instead of wrapping.
// Overflow is detected from the wrapped result, which Go defines.

func satAddLanes[T Integers](dst, a, b []T) {
	if isSignedKind[T]() {
		w := laneBitWidth[T]()
		hi, lo := T(maxSigned(w)), T(minSigned(w))
		for i := range dst {
			x, y := a[i], b[i]
			s := x + y
			switch {
			case y > 0 && s < x:
				s = hi
			case y < 0 && s > x:
				s = lo
			}
			dst[i] = s
		}
		return
	}
	for i := range dst {
		s := a[i] + b[i]
		if s < a[i] {
			s = ^T(0)
		}
		dst[i] = s
	}
}

func satSubLanes[T Integers](dst, a, b []T) {
	if isSignedKind[T]() {
		w := laneBitWidth[T]()
		hi, lo := T(maxSigned(w)), T(minSigned(w))
		for i := range dst {
			x, y := a[i], b[i]
			d := x - y
			switch {
			case y > 0 && d > x:
				d = lo
			case y < 0 && d < x:
				d = hi
			}
			dst[i] = d
		}
		return
	}
	for i := range dst {
		if b[i] > a[i] {
			dst[i] = 0
		} else {
			dst[i] = a[i] - b[i]
		}
	}
}

// Float kernels.

func sqrtLanes[T Floats](dst, v []T) {
	for i := range dst {
		dst[i] = T(math.Sqrt(float64(v[i])))
	}
}

// mulAddLanes computes c + a*b with a single rounding step per lane.
func mulAddLanes[T Floats](dst, a, b, c []T) {
	for i := range dst {
		dst[i] = T(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
	}
}

func roundLanes[T Floats](dst, v []T, mode RoundingMode) {
	for i := range dst {
		f := float64(v[i])
		switch mode {
		case RoundToNearest:
			f = math.Round(f)
		case RoundToEven:
			f = math.RoundToEven(f)
		case RoundTowardZero:
			f = math.Trunc(f)
		case RoundUp:
			f = math.Ceil(f)
		case RoundDown:
			f = math.Floor(f)
		}
		dst[i] = T(f)
	}
}

// gatherLanes loads dst[i] = src[idx[i]] for in-range indices and leaves the
// lane at its zero default otherwise. The permissive out-of-range policy is
// deliberate: permutation code never needs to branch per lane.
func gatherLanes[T Lanes, I Integers](dst []T, src []T, idx []I) {
	for i := range dst {
		j := int(idx[i])
		if j >= 0 && j < len(src) {
			dst[i] = src[j]
		}
		// else: leave as zero value
	}
}

// Conversion kernels.

func saturatedConvertLanes[To, From Lanes](dst []To, src []From) {
	for i := range dst {
		dst[i] = saturateLane[To](src[i])
	}
}

func truncatedConvertLanes[To Integers, From Lanes](dst []To, src []From) {
	for i := range dst {
		dst[i] = truncateLane[To](src[i])
	}
}

// FNV-1a over the lane bit patterns, 8 bytes per lane regardless of element
// width so that the hash is stable across platforms. Only logical lanes
// contribute; a padded physical lane never does.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

func hashLanes[T Lanes](v []T) uint64 {
	h := uint64(fnvOffset64)
	for i := range v {
		bits := laneBits(v[i])
		for b := 0; b < 8; b++ {
			h ^= bits & 0xff
			h *= fnvPrime64
			bits >>= 8
		}
	}
	return h
}

func formatLanes[T Lanes](name string, v []T) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
