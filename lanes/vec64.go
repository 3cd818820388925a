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

// Vec64 is a 64-lane vector. Its memory layout is exactly 64 consecutive
// elements, matching the native vector register shape for the element width.
type Vec64[T Lanes] [64]T

// Wide shapes are constructed from array literals, Splat64 or
// Vec64FromSlice; a literal with more than 64 elements fails to compile.

// Splat64 builds a vector with v in every lane.
func Splat64[T Lanes](v T) Vec64[T] {
	var r Vec64[T]
	for i := range r {
		r[i] = v
	}
	return r
}

// Zero64 returns the all-zero vector. It is the same value as Vec64[T]{}.
func Zero64[T Lanes]() Vec64[T] {
	return Vec64[T]{}
}

// Vec64FromSlice builds a vector from a slice of exactly 64 elements.
// It returns ErrLengthMismatch for any other length.
func Vec64FromSlice[T Lanes](s []T) (Vec64[T], error) {
	var v Vec64[T]
	if len(s) != len(v) {
		return v, ErrLengthMismatch
	}
	copy(v[:], s)
	return v, nil
}

// Len returns the number of lanes.
func (v Vec64[T]) Len() int { return 64 }

// At returns lane i. Out-of-range indices panic; indexed access is a
// precondition, not a recoverable error.
func (v Vec64[T]) At(i int) T { return v[i] }

// SetAt stores x into lane i. Out-of-range indices panic.
func (v *Vec64[T]) SetAt(i int, x T) { v[i] = x }

// Slice returns the lanes as a freshly allocated slice.
func (v Vec64[T]) Slice() []T {
	s := make([]T, len(v))
	copy(s, v[:])
	return s
}

// Store writes the lanes to dst, which must hold at least Len elements.
func (v Vec64[T]) Store(dst []T) {
	copy(dst[:len(v)], v[:])
}

// Add returns the lanewise sum. Integer elements wrap on overflow.
func (v Vec64[T]) Add(o Vec64[T]) Vec64[T] {
	var r Vec64[T]
	addLanes(r[:], v[:], o[:])
	return r
}

// Sub returns the lanewise difference. Integer elements wrap on overflow.
func (v Vec64[T]) Sub(o Vec64[T]) Vec64[T] {
	var r Vec64[T]
	subLanes(r[:], v[:], o[:])
	return r
}

// Mul returns the lanewise product. Integer elements wrap on overflow.
func (v Vec64[T]) Mul(o Vec64[T]) Vec64[T] {
	var r Vec64[T]
	mulLanes(r[:], v[:], o[:])
	return r
}

// Neg returns the lanewise negation (two's-complement for integers).
func (v Vec64[T]) Neg() Vec64[T] {
	var r Vec64[T]
	negLanes(r[:], v[:])
	return r
}

// Min returns the lanewise minimum.
func (v Vec64[T]) Min(o Vec64[T]) Vec64[T] {
	var r Vec64[T]
	minLanes(r[:], v[:], o[:])
	return r
}

// Max returns the lanewise maximum.
func (v Vec64[T]) Max(o Vec64[T]) Vec64[T] {
	var r Vec64[T]
	maxLanes(r[:], v[:], o[:])
	return r
}

// Clamp limits each lane to [lo, hi].
func (v Vec64[T]) Clamp(lo, hi Vec64[T]) Vec64[T] {
	var r Vec64[T]
	clampLanes(r[:], v[:], lo[:], hi[:])
	return r
}

// Eq returns the lanewise equality mask.
func (v Vec64[T]) Eq(o Vec64[T]) Mask64 {
	var m Mask64
	eqLanes(m[:], v[:], o[:])
	return m
}

// Ne returns the lanewise inequality mask.
func (v Vec64[T]) Ne(o Vec64[T]) Mask64 {
	var m Mask64
	neLanes(m[:], v[:], o[:])
	return m
}

// Less returns the lanewise less-than mask. NaN lanes compare false.
func (v Vec64[T]) Less(o Vec64[T]) Mask64 {
	var m Mask64
	ltLanes(m[:], v[:], o[:])
	return m
}

// LessEq returns the lanewise less-or-equal mask.
func (v Vec64[T]) LessEq(o Vec64[T]) Mask64 {
	var m Mask64
	leLanes(m[:], v[:], o[:])
	return m
}

// Greater returns the lanewise greater-than mask.
func (v Vec64[T]) Greater(o Vec64[T]) Mask64 {
	var m Mask64
	gtLanes(m[:], v[:], o[:])
	return m
}

// GreaterEq returns the lanewise greater-or-equal mask.
func (v Vec64[T]) GreaterEq(o Vec64[T]) Mask64 {
	var m Mask64
	geLanes(m[:], v[:], o[:])
	return m
}

// Merged returns a vector taking lanes from o where m is true and from v
// elsewhere.
func (v Vec64[T]) Merged(o Vec64[T], m Mask64) Vec64[T] {
	var r Vec64[T]
	mergeLanes(r[:], v[:], o[:], m[:])
	return r
}

// Merge is the in-place counterpart of Merged.
func (v *Vec64[T]) Merge(o Vec64[T], m Mask64) {
	mergeLanes(v[:], v[:], o[:], m[:])
}

// Equal reports whether all lanes are equal.
func (v Vec64[T]) Equal(o Vec64[T]) bool { return v == o }

// Hash returns a stable hash of the lane sequence.
func (v Vec64[T]) Hash() uint64 { return hashLanes(v[:]) }

func (v Vec64[T]) String() string { return formatLanes("Vec64", v[:]) }

// Low returns the lower half, lanes 0..31.
func (v Vec64[T]) Low() Vec32[T] {
	var r Vec32[T]
	copy(r[:], v[:32])
	return r
}

// High returns the upper half, lanes 32..63.
func (v Vec64[T]) High() Vec32[T] {
	var r Vec32[T]
	copy(r[:], v[32:])
	return r
}

// Even returns the even-indexed lanes.
func (v Vec64[T]) Even() Vec32[T] {
	var r Vec32[T]
	for i := range r {
		r[i] = v[2*i]
	}
	return r
}

// Odd returns the odd-indexed lanes.
func (v Vec64[T]) Odd() Vec32[T] {
	var r Vec32[T]
	for i := range r {
		r[i] = v[2*i+1]
	}
	return r
}

// Gather64 builds a vector with result[i] = src[idx[i]] for every in-range
// index. Out-of-range lanes keep the zero default instead of failing, so
// permutation code needs no per-lane branching.
func Gather64[T Lanes, I Integers](src []T, idx Vec64[I]) Vec64[T] {
	var r Vec64[T]
	gatherLanes(r[:], src, idx[:])
	return r
}

// Integer operations.

// And64 returns the lanewise bitwise AND.
func And64[T Integers](a, b Vec64[T]) Vec64[T] {
	var r Vec64[T]
	andLanes(r[:], a[:], b[:])
	return r
}

// Or64 returns the lanewise bitwise OR.
func Or64[T Integers](a, b Vec64[T]) Vec64[T] {
	var r Vec64[T]
	orLanes(r[:], a[:], b[:])
	return r
}

// Xor64 returns the lanewise bitwise XOR.
func Xor64[T Integers](a, b Vec64[T]) Vec64[T] {
	var r Vec64[T]
	xorLanes(r[:], a[:], b[:])
	return r
}

// Not64 returns the lanewise bitwise complement.
func Not64[T Integers](v Vec64[T]) Vec64[T] {
	var r Vec64[T]
	notLanes(r[:], v[:])
	return r
}

// AndNot64 returns the lanewise (^a) & b.
func AndNot64[T Integers](a, b Vec64[T]) Vec64[T] {
	var r Vec64[T]
	andNotLanes(r[:], a[:], b[:])
	return r
}

// ShiftLeft64 shifts each lane left by the matching count lane. Counts are
// masked to count & (bitWidth-1), matching native hardware shifts.
func ShiftLeft64[T Integers](v, counts Vec64[T]) Vec64[T] {
	var r Vec64[T]
	shiftLeftLanes(r[:], v[:], counts[:])
	return r
}

// ShiftRight64 shifts each lane right by the matching count lane, arithmetic
// for signed elements and logical for unsigned. Counts are masked like
// ShiftLeft64.
func ShiftRight64[T Integers](v, counts Vec64[T]) Vec64[T] {
	var r Vec64[T]
	shiftRightLanes(r[:], v[:], counts[:])
	return r
}

// ShiftLeftAll64 shifts every lane left by the same count, masked to the
// element width.
func ShiftLeftAll64[T Integers](v Vec64[T], bits int) Vec64[T] {
	var r Vec64[T]
	shiftLeftAllLanes(r[:], v[:], bits)
	return r
}

// ShiftRightAll64 shifts every lane right by the same count, masked to the
// element width.
func ShiftRightAll64[T Integers](v Vec64[T], bits int) Vec64[T] {
	var r Vec64[T]
	shiftRightAllLanes(r[:], v[:], bits)
	return r
}

// Quo64 returns the lanewise quotient, truncated toward zero. It returns
// ErrDivisionByZero if any divisor lane is zero.
func Quo64[T Integers](a, b Vec64[T]) (Vec64[T], error) {
	var r Vec64[T]
	if err := quoLanes(r[:], a[:], b[:]); err != nil {
		return Vec64[T]{}, err
	}
	return r, nil
}

// Rem64 returns the lanewise remainder. It returns ErrDivisionByZero if any
// divisor lane is zero.
func Rem64[T Integers](a, b Vec64[T]) (Vec64[T], error) {
	var r Vec64[T]
	if err := remLanes(r[:], a[:], b[:]); err != nil {
		return Vec64[T]{}, err
	}
	return r, nil
}

// LeadingZeros64 counts leading zero bits per lane; an all-zero lane yields
// the element bit width.
func LeadingZeros64[T Integers](v Vec64[T]) Vec64[T] {
	var r Vec64[T]
	leadingZerosLanes(r[:], v[:])
	return r
}

// TrailingZeros64 counts trailing zero bits per lane; an all-zero lane yields
// the element bit width.
func TrailingZeros64[T Integers](v Vec64[T]) Vec64[T] {
	var r Vec64[T]
	trailingZerosLanes(r[:], v[:])
	return r
}

// OnesCount64 counts set bits per lane.
func OnesCount64[T Integers](v Vec64[T]) Vec64[T] {
	var r Vec64[T]
	onesCountLanes(r[:], v[:])
	return r
}

// SwapBytes64 reverses the byte order within each lane.
func SwapBytes64[T Integers](v Vec64[T]) Vec64[T] {
	var r Vec64[T]
	swapBytesLanes(r[:], v[:])
	return r
}

// BitMask64 materializes a mask as integer lanes: all-ones where true (-1 for
// signed elements, the maximum value for unsigned), zero elsewhere.
func BitMask64[T Integers](m Mask64) Vec64[T] {
	var r Vec64[T]
	bitMaskLanes(r[:], m[:])
	return r
}

// SaturatedAdd64 adds lanewise, clamping to the element range instead of
// wrapping.
func SaturatedAdd64[T Integers](a, b Vec64[T]) Vec64[T] {
	var r Vec64[T]
	satAddLanes(r[:], a[:], b[:])
	return r
}

// SaturatedSub64 subtracts lanewise, clamping to the element range instead of
// wrapping.
func SaturatedSub64[T Integers](a, b Vec64[T]) Vec64[T] {
	var r Vec64[T]
	satSubLanes(r[:], a[:], b[:])
	return r
}

// Floating-point operations.

// Div64 returns the lanewise IEEE quotient. A zero divisor lane yields an
// infinity or NaN, never an error.
func Div64[T Floats](a, b Vec64[T]) Vec64[T] {
	var r Vec64[T]
	divFloatLanes(r[:], a[:], b[:])
	return r
}

// Sqrt64 returns the lanewise IEEE square root; negative lanes yield NaN.
func Sqrt64[T Floats](v Vec64[T]) Vec64[T] {
	var r Vec64[T]
	sqrtLanes(r[:], v[:])
	return r
}

// MulAdd64 returns c + a*b computed with a single rounding step per lane.
func MulAdd64[T Floats](a, b, c Vec64[T]) Vec64[T] {
	var r Vec64[T]
	mulAddLanes(r[:], a[:], b[:], c[:])
	return r
}

// Round64 rounds every lane according to mode.
func Round64[T Floats](v Vec64[T], mode RoundingMode) Vec64[T] {
	var r Vec64[T]
	roundLanes(r[:], v[:], mode)
	return r
}

// Conversions. Both entry points keep the lane count and change the element
// type; there is no implicit conversion between vector types.

// SaturatedConvert64 converts lanes with clamping: integer destinations clamp
// to their representable range and NaN maps to zero; float destinations use
// plain IEEE conversion.
func SaturatedConvert64[To, From Lanes](v Vec64[From]) Vec64[To] {
	var r Vec64[To]
	saturatedConvertLanes(r[:], v[:])
	return r
}

// TruncatedConvert64 converts lanes by raw bit truncation with wraparound,
// reproducing the hardware narrowing instruction. Float sources truncate
// toward zero first; NaN, infinities and values outside the int64 range map
// to zero.
func TruncatedConvert64[To Integers, From Lanes](v Vec64[From]) Vec64[To] {
	var r Vec64[To]
	truncatedConvertLanes(r[:], v[:])
	return r
}
