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

// Vec2 is a 2-lane vector. Its memory layout is exactly 2 consecutive
// elements, matching the native vector register shape for the element width.
type Vec2[T Lanes] [2]T

// NewVec2 builds a vector from 2 lane values in order.
func NewVec2[T Lanes](x0, x1 T) Vec2[T] {
	return Vec2[T]{x0, x1}
}

// Splat2 builds a vector with v in every lane.
func Splat2[T Lanes](v T) Vec2[T] {
	return Vec2[T]{v, v}
}

// Zero2 returns the all-zero vector. It is the same value as Vec2[T]{}.
func Zero2[T Lanes]() Vec2[T] {
	return Vec2[T]{}
}

// Vec2FromSlice builds a vector from a slice of exactly 2 elements.
// It returns ErrLengthMismatch for any other length.
func Vec2FromSlice[T Lanes](s []T) (Vec2[T], error) {
	var v Vec2[T]
	if len(s) != len(v) {
		return v, ErrLengthMismatch
	}
	copy(v[:], s)
	return v, nil
}

// Len returns the number of lanes.
func (v Vec2[T]) Len() int { return 2 }

// At returns lane i. Out-of-range indices panic; indexed access is a
// precondition, not a recoverable error.
func (v Vec2[T]) At(i int) T { return v[i] }

// SetAt stores x into lane i. Out-of-range indices panic.
func (v *Vec2[T]) SetAt(i int, x T) { v[i] = x }

// Slice returns the lanes as a freshly allocated slice.
func (v Vec2[T]) Slice() []T {
	s := make([]T, len(v))
	copy(s, v[:])
	return s
}

// Store writes the lanes to dst, which must hold at least Len elements.
func (v Vec2[T]) Store(dst []T) {
	copy(dst[:len(v)], v[:])
}

// Add returns the lanewise sum. Integer elements wrap on overflow.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	addLanes(r[:], v[:], o[:])
	return r
}

// Sub returns the lanewise difference. Integer elements wrap on overflow.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	subLanes(r[:], v[:], o[:])
	return r
}

// Mul returns the lanewise product. Integer elements wrap on overflow.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	mulLanes(r[:], v[:], o[:])
	return r
}

// Neg returns the lanewise negation (two's-complement for integers).
func (v Vec2[T]) Neg() Vec2[T] {
	var r Vec2[T]
	negLanes(r[:], v[:])
	return r
}

// Min returns the lanewise minimum.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	minLanes(r[:], v[:], o[:])
	return r
}

// Max returns the lanewise maximum.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	var r Vec2[T]
	maxLanes(r[:], v[:], o[:])
	return r
}

// Clamp limits each lane to [lo, hi].
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	var r Vec2[T]
	clampLanes(r[:], v[:], lo[:], hi[:])
	return r
}

// Eq returns the lanewise equality mask.
func (v Vec2[T]) Eq(o Vec2[T]) Mask2 {
	var m Mask2
	eqLanes(m[:], v[:], o[:])
	return m
}

// Ne returns the lanewise inequality mask.
func (v Vec2[T]) Ne(o Vec2[T]) Mask2 {
	var m Mask2
	neLanes(m[:], v[:], o[:])
	return m
}

// Less returns the lanewise less-than mask. NaN lanes compare false.
func (v Vec2[T]) Less(o Vec2[T]) Mask2 {
	var m Mask2
	ltLanes(m[:], v[:], o[:])
	return m
}

// LessEq returns the lanewise less-or-equal mask.
func (v Vec2[T]) LessEq(o Vec2[T]) Mask2 {
	var m Mask2
	leLanes(m[:], v[:], o[:])
	return m
}

// Greater returns the lanewise greater-than mask.
func (v Vec2[T]) Greater(o Vec2[T]) Mask2 {
	var m Mask2
	gtLanes(m[:], v[:], o[:])
	return m
}

// GreaterEq returns the lanewise greater-or-equal mask.
func (v Vec2[T]) GreaterEq(o Vec2[T]) Mask2 {
	var m Mask2
	geLanes(m[:], v[:], o[:])
	return m
}

// Merged returns a vector taking lanes from o where m is true and from v
// elsewhere.
func (v Vec2[T]) Merged(o Vec2[T], m Mask2) Vec2[T] {
	var r Vec2[T]
	mergeLanes(r[:], v[:], o[:], m[:])
	return r
}

// Merge is the in-place counterpart of Merged.
func (v *Vec2[T]) Merge(o Vec2[T], m Mask2) {
	mergeLanes(v[:], v[:], o[:], m[:])
}

// Equal reports whether all lanes are equal.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return v == o }

// Hash returns a stable hash of the lane sequence.
func (v Vec2[T]) Hash() uint64 { return hashLanes(v[:]) }

func (v Vec2[T]) String() string { return formatLanes("Vec2", v[:]) }

// Named component accessors alias lanes 0 and 1.

// X returns lane 0.
func (v Vec2[T]) X() T { return v[0] }

// Y returns lane 1.
func (v Vec2[T]) Y() T { return v[1] }

// SetX stores x into lane 0.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY stores y into lane 1.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// Gather2 builds a vector with result[i] = src[idx[i]] for every in-range
// index. Out-of-range lanes keep the zero default instead of failing, so
// permutation code needs no per-lane branching.
func Gather2[T Lanes, I Integers](src []T, idx Vec2[I]) Vec2[T] {
	var r Vec2[T]
	gatherLanes(r[:], src, idx[:])
	return r
}

// Integer operations.

// And2 returns the lanewise bitwise AND.
func And2[T Integers](a, b Vec2[T]) Vec2[T] {
	var r Vec2[T]
	andLanes(r[:], a[:], b[:])
	return r
}

// Or2 returns the lanewise bitwise OR.
func Or2[T Integers](a, b Vec2[T]) Vec2[T] {
	var r Vec2[T]
	orLanes(r[:], a[:], b[:])
	return r
}

// Xor2 returns the lanewise bitwise XOR.
func Xor2[T Integers](a, b Vec2[T]) Vec2[T] {
	var r Vec2[T]
	xorLanes(r[:], a[:], b[:])
	return r
}

// Not2 returns the lanewise bitwise complement.
func Not2[T Integers](v Vec2[T]) Vec2[T] {
	var r Vec2[T]
	notLanes(r[:], v[:])
	return r
}

// AndNot2 returns the lanewise (^a) & b.
func AndNot2[T Integers](a, b Vec2[T]) Vec2[T] {
	var r Vec2[T]
	andNotLanes(r[:], a[:], b[:])
	return r
}

// ShiftLeft2 shifts each lane left by the matching count lane. Counts are
// masked to count & (bitWidth-1), matching native hardware shifts.
func ShiftLeft2[T Integers](v, counts Vec2[T]) Vec2[T] {
	var r Vec2[T]
	shiftLeftLanes(r[:], v[:], counts[:])
	return r
}

// ShiftRight2 shifts each lane right by the matching count lane, arithmetic
// for signed elements and logical for unsigned. Counts are masked like
// ShiftLeft2.
func ShiftRight2[T Integers](v, counts Vec2[T]) Vec2[T] {
	var r Vec2[T]
	shiftRightLanes(r[:], v[:], counts[:])
	return r
}

// ShiftLeftAll2 shifts every lane left by the same count, masked to the
// element width.
func ShiftLeftAll2[T Integers](v Vec2[T], bits int) Vec2[T] {
	var r Vec2[T]
	shiftLeftAllLanes(r[:], v[:], bits)
	return r
}

// ShiftRightAll2 shifts every lane right by the same count, masked to the
// element width.
func ShiftRightAll2[T Integers](v Vec2[T], bits int) Vec2[T] {
	var r Vec2[T]
	shiftRightAllLanes(r[:], v[:], bits)
	return r
}

// Quo2 returns the lanewise quotient, truncated toward zero. It returns
// ErrDivisionByZero if any divisor lane is zero.
func Quo2[T Integers](a, b Vec2[T]) (Vec2[T], error) {
	var r Vec2[T]
	if err := quoLanes(r[:], a[:], b[:]); err != nil {
		return Vec2[T]{}, err
	}
	return r, nil
}

// Rem2 returns the lanewise remainder. It returns ErrDivisionByZero if any
// divisor lane is zero.
func Rem2[T Integers](a, b Vec2[T]) (Vec2[T], error) {
	var r Vec2[T]
	if err := remLanes(r[:], a[:], b[:]); err != nil {
		return Vec2[T]{}, err
	}
	return r, nil
}

// LeadingZeros2 counts leading zero bits per lane; an all-zero lane yields
// the element bit width.
func LeadingZeros2[T Integers](v Vec2[T]) Vec2[T] {
	var r Vec2[T]
	leadingZerosLanes(r[:], v[:])
	return r
}

// TrailingZeros2 counts trailing zero bits per lane; an all-zero lane yields
// the element bit width.
func TrailingZeros2[T Integers](v Vec2[T]) Vec2[T] {
	var r Vec2[T]
	trailingZerosLanes(r[:], v[:])
	return r
}

// OnesCount2 counts set bits per lane.
func OnesCount2[T Integers](v Vec2[T]) Vec2[T] {
	var r Vec2[T]
	onesCountLanes(r[:], v[:])
	return r
}

// SwapBytes2 reverses the byte order within each lane.
func SwapBytes2[T Integers](v Vec2[T]) Vec2[T] {
	var r Vec2[T]
	swapBytesLanes(r[:], v[:])
	return r
}

// BitMask2 materializes a mask as integer lanes: all-ones where true (-1 for
// signed elements, the maximum value for unsigned), zero elsewhere.
func BitMask2[T Integers](m Mask2) Vec2[T] {
	var r Vec2[T]
	bitMaskLanes(r[:], m[:])
	return r
}

// SaturatedAdd2 adds lanewise, clamping to the element range instead of
// wrapping.
func SaturatedAdd2[T Integers](a, b Vec2[T]) Vec2[T] {
	var r Vec2[T]
	satAddLanes(r[:], a[:], b[:])
	return r
}

// SaturatedSub2 subtracts lanewise, clamping to the element range instead of
// wrapping.
func SaturatedSub2[T Integers](a, b Vec2[T]) Vec2[T] {
	var r Vec2[T]
	satSubLanes(r[:], a[:], b[:])
	return r
}

// Floating-point operations.

// Div2 returns the lanewise IEEE quotient. A zero divisor lane yields an
// infinity or NaN, never an error.
func Div2[T Floats](a, b Vec2[T]) Vec2[T] {
	var r Vec2[T]
	divFloatLanes(r[:], a[:], b[:])
	return r
}

// Sqrt2 returns the lanewise IEEE square root; negative lanes yield NaN.
func Sqrt2[T Floats](v Vec2[T]) Vec2[T] {
	var r Vec2[T]
	sqrtLanes(r[:], v[:])
	return r
}

// MulAdd2 returns c + a*b computed with a single rounding step per lane.
func MulAdd2[T Floats](a, b, c Vec2[T]) Vec2[T] {
	var r Vec2[T]
	mulAddLanes(r[:], a[:], b[:], c[:])
	return r
}

// Round2 rounds every lane according to mode.
func Round2[T Floats](v Vec2[T], mode RoundingMode) Vec2[T] {
	var r Vec2[T]
	roundLanes(r[:], v[:], mode)
	return r
}

// Conversions. Both entry points keep the lane count and change the element
// type; there is no implicit conversion between vector types.

// SaturatedConvert2 converts lanes with clamping: integer destinations clamp
// to their representable range and NaN maps to zero; float destinations use
// plain IEEE conversion.
func SaturatedConvert2[To, From Lanes](v Vec2[From]) Vec2[To] {
	var r Vec2[To]
	saturatedConvertLanes(r[:], v[:])
	return r
}

// TruncatedConvert2 converts lanes by raw bit truncation with wraparound,
// reproducing the hardware narrowing instruction. Float sources truncate
// toward zero first; NaN, infinities and values outside the int64 range map
// to zero.
func TruncatedConvert2[To Integers, From Lanes](v Vec2[From]) Vec2[To] {
	var r Vec2[To]
	truncatedConvertLanes(r[:], v[:])
	return r
}
