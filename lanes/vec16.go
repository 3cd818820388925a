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

// Vec16 is a 16-lane vector. Its memory layout is exactly 16 consecutive
// elements, matching the native vector register shape for the element width.
type Vec16[T Lanes] [16]T

// Wide shapes are constructed from array literals, Splat16 or
// Vec16FromSlice; a literal with more than 16 elements fails to compile.

// Splat16 builds a vector with v in every lane.
func Splat16[T Lanes](v T) Vec16[T] {
	var r Vec16[T]
	for i := range r {
		r[i] = v
	}
	return r
}

// Zero16 returns the all-zero vector. It is the same value as Vec16[T]{}.
func Zero16[T Lanes]() Vec16[T] {
	return Vec16[T]{}
}

// Vec16FromSlice builds a vector from a slice of exactly 16 elements.
// It returns ErrLengthMismatch for any other length.
func Vec16FromSlice[T Lanes](s []T) (Vec16[T], error) {
	var v Vec16[T]
	if len(s) != len(v) {
		return v, ErrLengthMismatch
	}
	copy(v[:], s)
	return v, nil
}

// Len returns the number of lanes.
func (v Vec16[T]) Len() int { return 16 }

// At returns lane i. Out-of-range indices panic; indexed access is a
// precondition, not a recoverable error.
func (v Vec16[T]) At(i int) T { return v[i] }

// SetAt stores x into lane i. Out-of-range indices panic.
func (v *Vec16[T]) SetAt(i int, x T) { v[i] = x }

// Slice returns the lanes as a freshly allocated slice.
func (v Vec16[T]) Slice() []T {
	s := make([]T, len(v))
	copy(s, v[:])
	return s
}

// Store writes the lanes to dst, which must hold at least Len elements.
func (v Vec16[T]) Store(dst []T) {
	copy(dst[:len(v)], v[:])
}

// Add returns the lanewise sum. Integer elements wrap on overflow.
func (v Vec16[T]) Add(o Vec16[T]) Vec16[T] {
	var r Vec16[T]
	addLanes(r[:], v[:], o[:])
	return r
}

// Sub returns the lanewise difference. Integer elements wrap on overflow.
func (v Vec16[T]) Sub(o Vec16[T]) Vec16[T] {
	var r Vec16[T]
	subLanes(r[:], v[:], o[:])
	return r
}

// Mul returns the lanewise product. Integer elements wrap on overflow.
func (v Vec16[T]) Mul(o Vec16[T]) Vec16[T] {
	var r Vec16[T]
	mulLanes(r[:], v[:], o[:])
	return r
}

// Neg returns the lanewise negation (two's-complement for integers).
func (v Vec16[T]) Neg() Vec16[T] {
	var r Vec16[T]
	negLanes(r[:], v[:])
	return r
}

// Min returns the lanewise minimum.
func (v Vec16[T]) Min(o Vec16[T]) Vec16[T] {
	var r Vec16[T]
	minLanes(r[:], v[:], o[:])
	return r
}

// Max returns the lanewise maximum.
func (v Vec16[T]) Max(o Vec16[T]) Vec16[T] {
	var r Vec16[T]
	maxLanes(r[:], v[:], o[:])
	return r
}

// Clamp limits each lane to [lo, hi].
func (v Vec16[T]) Clamp(lo, hi Vec16[T]) Vec16[T] {
	var r Vec16[T]
	clampLanes(r[:], v[:], lo[:], hi[:])
	return r
}

// Eq returns the lanewise equality mask.
func (v Vec16[T]) Eq(o Vec16[T]) Mask16 {
	var m Mask16
	eqLanes(m[:], v[:], o[:])
	return m
}

// Ne returns the lanewise inequality mask.
func (v Vec16[T]) Ne(o Vec16[T]) Mask16 {
	var m Mask16
	neLanes(m[:], v[:], o[:])
	return m
}

// Less returns the lanewise less-than mask. NaN lanes compare false.
func (v Vec16[T]) Less(o Vec16[T]) Mask16 {
	var m Mask16
	ltLanes(m[:], v[:], o[:])
	return m
}

// LessEq returns the lanewise less-or-equal mask.
func (v Vec16[T]) LessEq(o Vec16[T]) Mask16 {
	var m Mask16
	leLanes(m[:], v[:], o[:])
	return m
}

// Greater returns the lanewise greater-than mask.
func (v Vec16[T]) Greater(o Vec16[T]) Mask16 {
	var m Mask16
	gtLanes(m[:], v[:], o[:])
	return m
}

// GreaterEq returns the lanewise greater-or-equal mask.
func (v Vec16[T]) GreaterEq(o Vec16[T]) Mask16 {
	var m Mask16
	geLanes(m[:], v[:], o[:])
	return m
}

// Merged returns a vector taking lanes from o where m is true and from v
// elsewhere.
func (v Vec16[T]) Merged(o Vec16[T], m Mask16) Vec16[T] {
	var r Vec16[T]
	mergeLanes(r[:], v[:], o[:], m[:])
	return r
}

// Merge is the in-place counterpart of Merged.
func (v *Vec16[T]) Merge(o Vec16[T], m Mask16) {
	mergeLanes(v[:], v[:], o[:], m[:])
}

// Equal reports whether all lanes are equal.
func (v Vec16[T]) Equal(o Vec16[T]) bool { return v == o }

// Hash returns a stable hash of the lane sequence.
func (v Vec16[T]) Hash() uint64 { return hashLanes(v[:]) }

func (v Vec16[T]) String() string { return formatLanes("Vec16", v[:]) }

// Low returns the lower half, lanes 0..7.
func (v Vec16[T]) Low() Vec8[T] {
	var r Vec8[T]
	copy(r[:], v[:8])
	return r
}

// High returns the upper half, lanes 8..15.
func (v Vec16[T]) High() Vec8[T] {
	var r Vec8[T]
	copy(r[:], v[8:])
	return r
}

// Even returns the even-indexed lanes.
func (v Vec16[T]) Even() Vec8[T] {
	var r Vec8[T]
	for i := range r {
		r[i] = v[2*i]
	}
	return r
}

// Odd returns the odd-indexed lanes.
func (v Vec16[T]) Odd() Vec8[T] {
	var r Vec8[T]
	for i := range r {
		r[i] = v[2*i+1]
	}
	return r
}

// Gather16 builds a vector with result[i] = src[idx[i]] for every in-range
// index. Out-of-range lanes keep the zero default instead of failing, so
// permutation code needs no per-lane branching.
func Gather16[T Lanes, I Integers](src []T, idx Vec16[I]) Vec16[T] {
	var r Vec16[T]
	gatherLanes(r[:], src, idx[:])
	return r
}

// Integer operations.

// And16 returns the lanewise bitwise AND.
func And16[T Integers](a, b Vec16[T]) Vec16[T] {
	var r Vec16[T]
	andLanes(r[:], a[:], b[:])
	return r
}

// Or16 returns the lanewise bitwise OR.
func Or16[T Integers](a, b Vec16[T]) Vec16[T] {
	var r Vec16[T]
	orLanes(r[:], a[:], b[:])
	return r
}

// Xor16 returns the lanewise bitwise XOR.
func Xor16[T Integers](a, b Vec16[T]) Vec16[T] {
	var r Vec16[T]
	xorLanes(r[:], a[:], b[:])
	return r
}

// Not16 returns the lanewise bitwise complement.
func Not16[T Integers](v Vec16[T]) Vec16[T] {
	var r Vec16[T]
	notLanes(r[:], v[:])
	return r
}

// AndNot16 returns the lanewise (^a) & b.
func AndNot16[T Integers](a, b Vec16[T]) Vec16[T] {
	var r Vec16[T]
	andNotLanes(r[:], a[:], b[:])
	return r
}

// ShiftLeft16 shifts each lane left by the matching count lane. Counts are
// masked to count & (bitWidth-1), matching native hardware shifts.
func ShiftLeft16[T Integers](v, counts Vec16[T]) Vec16[T] {
	var r Vec16[T]
	shiftLeftLanes(r[:], v[:], counts[:])
	return r
}

// ShiftRight16 shifts each lane right by the matching count lane, arithmetic
// for signed elements and logical for unsigned. Counts are masked like
// ShiftLeft16.
func ShiftRight16[T Integers](v, counts Vec16[T]) Vec16[T] {
	var r Vec16[T]
	shiftRightLanes(r[:], v[:], counts[:])
	return r
}

// ShiftLeftAll16 shifts every lane left by the same count, masked to the
// element width.
func ShiftLeftAll16[T Integers](v Vec16[T], bits int) Vec16[T] {
	var r Vec16[T]
	shiftLeftAllLanes(r[:], v[:], bits)
	return r
}

// ShiftRightAll16 shifts every lane right by the same count, masked to the
// element width.
func ShiftRightAll16[T Integers](v Vec16[T], bits int) Vec16[T] {
	var r Vec16[T]
	shiftRightAllLanes(r[:], v[:], bits)
	return r
}

// Quo16 returns the lanewise quotient, truncated toward zero. It returns
// ErrDivisionByZero if any divisor lane is zero.
func Quo16[T Integers](a, b Vec16[T]) (Vec16[T], error) {
	var r Vec16[T]
	if err := quoLanes(r[:], a[:], b[:]); err != nil {
		return Vec16[T]{}, err
	}
	return r, nil
}

// Rem16 returns the lanewise remainder. It returns ErrDivisionByZero if any
// divisor lane is zero.
func Rem16[T Integers](a, b Vec16[T]) (Vec16[T], error) {
	var r Vec16[T]
	if err := remLanes(r[:], a[:], b[:]); err != nil {
		return Vec16[T]{}, err
	}
	return r, nil
}

// LeadingZeros16 counts leading zero bits per lane; an all-zero lane yields
// the element bit width.
func LeadingZeros16[T Integers](v Vec16[T]) Vec16[T] {
	var r Vec16[T]
	leadingZerosLanes(r[:], v[:])
	return r
}

// TrailingZeros16 counts trailing zero bits per lane; an all-zero lane yields
// the element bit width.
func TrailingZeros16[T Integers](v Vec16[T]) Vec16[T] {
	var r Vec16[T]
	trailingZerosLanes(r[:], v[:])
	return r
}

// OnesCount16 counts set bits per lane.
func OnesCount16[T Integers](v Vec16[T]) Vec16[T] {
	var r Vec16[T]
	onesCountLanes(r[:], v[:])
	return r
}

// SwapBytes16 reverses the byte order within each lane.
func SwapBytes16[T Integers](v Vec16[T]) Vec16[T] {
	var r Vec16[T]
	swapBytesLanes(r[:], v[:])
	return r
}

// BitMask16 materializes a mask as integer lanes: all-ones where true (-1 for
// signed elements, the maximum value for unsigned), zero elsewhere.
func BitMask16[T Integers](m Mask16) Vec16[T] {
	var r Vec16[T]
	bitMaskLanes(r[:], m[:])
	return r
}

// SaturatedAdd16 adds lanewise, clamping to the element range instead of
// wrapping.
func SaturatedAdd16[T Integers](a, b Vec16[T]) Vec16[T] {
	var r Vec16[T]
	satAddLanes(r[:], a[:], b[:])
	return r
}

// SaturatedSub16 subtracts lanewise, clamping to the element range instead of
// wrapping.
func SaturatedSub16[T Integers](a, b Vec16[T]) Vec16[T] {
	var r Vec16[T]
	satSubLanes(r[:], a[:], b[:])
	return r
}

// Floating-point operations.

// Div16 returns the lanewise IEEE quotient. A zero divisor lane yields an
// infinity or NaN, never an error.
func Div16[T Floats](a, b Vec16[T]) Vec16[T] {
	var r Vec16[T]
	divFloatLanes(r[:], a[:], b[:])
	return r
}

// Sqrt16 returns the lanewise IEEE square root; negative lanes yield NaN.
func Sqrt16[T Floats](v Vec16[T]) Vec16[T] {
	var r Vec16[T]
	sqrtLanes(r[:], v[:])
	return r
}

// MulAdd16 returns c + a*b computed with a single rounding step per lane.
func MulAdd16[T Floats](a, b, c Vec16[T]) Vec16[T] {
	var r Vec16[T]
	mulAddLanes(r[:], a[:], b[:], c[:])
	return r
}

// Round16 rounds every lane according to mode.
func Round16[T Floats](v Vec16[T], mode RoundingMode) Vec16[T] {
	var r Vec16[T]
	roundLanes(r[:], v[:], mode)
	return r
}

// Conversions. Both entry points keep the lane count and change the element
// type; there is no implicit conversion between vector types.

// SaturatedConvert16 converts lanes with clamping: integer destinations clamp
// to their representable range and NaN maps to zero; float destinations use
// plain IEEE conversion.
func SaturatedConvert16[To, From Lanes](v Vec16[From]) Vec16[To] {
	var r Vec16[To]
	saturatedConvertLanes(r[:], v[:])
	return r
}

// TruncatedConvert16 converts lanes by raw bit truncation with wraparound,
// reproducing the hardware narrowing instruction. Float sources truncate
// toward zero first; NaN, infinities and values outside the int64 range map
// to zero.
func TruncatedConvert16[To Integers, From Lanes](v Vec16[From]) Vec16[To] {
	var r Vec16[To]
	truncatedConvertLanes(r[:], v[:])
	return r
}
