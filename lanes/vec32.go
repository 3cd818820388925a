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

// Vec32 is a 32-lane vector. Its memory layout is exactly 32 consecutive
// elements, matching the native vector register shape for the element width.
type Vec32[T Lanes] [32]T

// Wide shapes are constructed from array literals, Splat32 or
// Vec32FromSlice; a literal with more than 32 elements fails to compile.

// Splat32 builds a vector with v in every lane.
func Splat32[T Lanes](v T) Vec32[T] {
	var r Vec32[T]
	for i := range r {
		r[i] = v
	}
	return r
}

// Zero32 returns the all-zero vector. It is the same value as Vec32[T]{}.
func Zero32[T Lanes]() Vec32[T] {
	return Vec32[T]{}
}

// Vec32FromSlice builds a vector from a slice of exactly 32 elements.
// It returns ErrLengthMismatch for any other length.
func Vec32FromSlice[T Lanes](s []T) (Vec32[T], error) {
	var v Vec32[T]
	if len(s) != len(v) {
		return v, ErrLengthMismatch
	}
	copy(v[:], s)
	return v, nil
}

// Len returns the number of lanes.
func (v Vec32[T]) Len() int { return 32 }

// At returns lane i. Out-of-range indices panic; indexed access is a
// precondition, not a recoverable error.
func (v Vec32[T]) At(i int) T { return v[i] }

// SetAt stores x into lane i. Out-of-range indices panic.
func (v *Vec32[T]) SetAt(i int, x T) { v[i] = x }

// Slice returns the lanes as a freshly allocated slice.
func (v Vec32[T]) Slice() []T {
	s := make([]T, len(v))
	copy(s, v[:])
	return s
}

// Store writes the lanes to dst, which must hold at least Len elements.
func (v Vec32[T]) Store(dst []T) {
	copy(dst[:len(v)], v[:])
}

// Add returns the lanewise sum. Integer elements wrap on overflow.
func (v Vec32[T]) Add(o Vec32[T]) Vec32[T] {
	var r Vec32[T]
	addLanes(r[:], v[:], o[:])
	return r
}

// Sub returns the lanewise difference. Integer elements wrap on overflow.
func (v Vec32[T]) Sub(o Vec32[T]) Vec32[T] {
	var r Vec32[T]
	subLanes(r[:], v[:], o[:])
	return r
}

// Mul returns the lanewise product. Integer elements wrap on overflow.
func (v Vec32[T]) Mul(o Vec32[T]) Vec32[T] {
	var r Vec32[T]
	mulLanes(r[:], v[:], o[:])
	return r
}

// Neg returns the lanewise negation (two's-complement for integers).
func (v Vec32[T]) Neg() Vec32[T] {
	var r Vec32[T]
	negLanes(r[:], v[:])
	return r
}

// Min returns the lanewise minimum.
func (v Vec32[T]) Min(o Vec32[T]) Vec32[T] {
	var r Vec32[T]
	minLanes(r[:], v[:], o[:])
	return r
}

// Max returns the lanewise maximum.
func (v Vec32[T]) Max(o Vec32[T]) Vec32[T] {
	var r Vec32[T]
	maxLanes(r[:], v[:], o[:])
	return r
}

// Clamp limits each lane to [lo, hi].
func (v Vec32[T]) Clamp(lo, hi Vec32[T]) Vec32[T] {
	var r Vec32[T]
	clampLanes(r[:], v[:], lo[:], hi[:])
	return r
}

// Eq returns the lanewise equality mask.
func (v Vec32[T]) Eq(o Vec32[T]) Mask32 {
	var m Mask32
	eqLanes(m[:], v[:], o[:])
	return m
}

// Ne returns the lanewise inequality mask.
func (v Vec32[T]) Ne(o Vec32[T]) Mask32 {
	var m Mask32
	neLanes(m[:], v[:], o[:])
	return m
}

// Less returns the lanewise less-than mask. NaN lanes compare false.
func (v Vec32[T]) Less(o Vec32[T]) Mask32 {
	var m Mask32
	ltLanes(m[:], v[:], o[:])
	return m
}

// LessEq returns the lanewise less-or-equal mask.
func (v Vec32[T]) LessEq(o Vec32[T]) Mask32 {
	var m Mask32
	leLanes(m[:], v[:], o[:])
	return m
}

// Greater returns the lanewise greater-than mask.
func (v Vec32[T]) Greater(o Vec32[T]) Mask32 {
	var m Mask32
	gtLanes(m[:], v[:], o[:])
	return m
}

// GreaterEq returns the lanewise greater-or-equal mask.
func (v Vec32[T]) GreaterEq(o Vec32[T]) Mask32 {
	var m Mask32
	geLanes(m[:], v[:], o[:])
	return m
}

// Merged returns a vector taking lanes from o where m is true and from v
// elsewhere.
func (v Vec32[T]) Merged(o Vec32[T], m Mask32) Vec32[T] {
	var r Vec32[T]
	mergeLanes(r[:], v[:], o[:], m[:])
	return r
}

// Merge is the in-place counterpart of Merged.
func (v *Vec32[T]) Merge(o Vec32[T], m Mask32) {
	mergeLanes(v[:], v[:], o[:], m[:])
}

// Equal reports whether all lanes are equal.
func (v Vec32[T]) Equal(o Vec32[T]) bool { return v == o }

// Hash returns a stable hash of the lane sequence.
func (v Vec32[T]) Hash() uint64 { return hashLanes(v[:]) }

func (v Vec32[T]) String() string { return formatLanes("Vec32", v[:]) }

// Low returns the lower half, lanes 0..15.
func (v Vec32[T]) Low() Vec16[T] {
	var r Vec16[T]
	copy(r[:], v[:16])
	return r
}

// High returns the upper half, lanes 16..31.
func (v Vec32[T]) High() Vec16[T] {
	var r Vec16[T]
	copy(r[:], v[16:])
	return r
}

// Even returns the even-indexed lanes.
func (v Vec32[T]) Even() Vec16[T] {
	var r Vec16[T]
	for i := range r {
		r[i] = v[2*i]
	}
	return r
}

// Odd returns the odd-indexed lanes.
func (v Vec32[T]) Odd() Vec16[T] {
	var r Vec16[T]
	for i := range r {
		r[i] = v[2*i+1]
	}
	return r
}

// Gather32 builds a vector with result[i] = src[idx[i]] for every in-range
// index. Out-of-range lanes keep the zero default instead of failing, so
// permutation code needs no per-lane branching.
func Gather32[T Lanes, I Integers](src []T, idx Vec32[I]) Vec32[T] {
	var r Vec32[T]
	gatherLanes(r[:], src, idx[:])
	return r
}

// Integer operations.

// And32 returns the lanewise bitwise AND.
func And32[T Integers](a, b Vec32[T]) Vec32[T] {
	var r Vec32[T]
	andLanes(r[:], a[:], b[:])
	return r
}

// Or32 returns the lanewise bitwise OR.
func Or32[T Integers](a, b Vec32[T]) Vec32[T] {
	var r Vec32[T]
	orLanes(r[:], a[:], b[:])
	return r
}

// Xor32 returns the lanewise bitwise XOR.
func Xor32[T Integers](a, b Vec32[T]) Vec32[T] {
	var r Vec32[T]
	xorLanes(r[:], a[:], b[:])
	return r
}

// Not32 returns the lanewise bitwise complement.
func Not32[T Integers](v Vec32[T]) Vec32[T] {
	var r Vec32[T]
	notLanes(r[:], v[:])
	return r
}

// AndNot32 returns the lanewise (^a) & b.
func AndNot32[T Integers](a, b Vec32[T]) Vec32[T] {
	var r Vec32[T]
	andNotLanes(r[:], a[:], b[:])
	return r
}

// ShiftLeft32 shifts each lane left by the matching count lane. Counts are
// masked to count & (bitWidth-1), matching native hardware shifts.
func ShiftLeft32[T Integers](v, counts Vec32[T]) Vec32[T] {
	var r Vec32[T]
	shiftLeftLanes(r[:], v[:], counts[:])
	return r
}

// ShiftRight32 shifts each lane right by the matching count lane, arithmetic
// for signed elements and logical for unsigned. Counts are masked like
// ShiftLeft32.
func ShiftRight32[T Integers](v, counts Vec32[T]) Vec32[T] {
	var r Vec32[T]
	shiftRightLanes(r[:], v[:], counts[:])
	return r
}

// ShiftLeftAll32 shifts every lane left by the same count, masked to the
// element width.
func ShiftLeftAll32[T Integers](v Vec32[T], bits int) Vec32[T] {
	var r Vec32[T]
	shiftLeftAllLanes(r[:], v[:], bits)
	return r
}

// ShiftRightAll32 shifts every lane right by the same count, masked to the
// element width.
func ShiftRightAll32[T Integers](v Vec32[T], bits int) Vec32[T] {
	var r Vec32[T]
	shiftRightAllLanes(r[:], v[:], bits)
	return r
}

// Quo32 returns the lanewise quotient, truncated toward zero. It returns
// ErrDivisionByZero if any divisor lane is zero.
func Quo32[T Integers](a, b Vec32[T]) (Vec32[T], error) {
	var r Vec32[T]
	if err := quoLanes(r[:], a[:], b[:]); err != nil {
		return Vec32[T]{}, err
	}
	return r, nil
}

// Rem32 returns the lanewise remainder. It returns ErrDivisionByZero if any
// divisor lane is zero.
func Rem32[T Integers](a, b Vec32[T]) (Vec32[T], error) {
	var r Vec32[T]
	if err := remLanes(r[:], a[:], b[:]); err != nil {
		return Vec32[T]{}, err
	}
	return r, nil
}

// LeadingZeros32 counts leading zero bits per lane; an all-zero lane yields
// the element bit width.
func LeadingZeros32[T Integers](v Vec32[T]) Vec32[T] {
	var r Vec32[T]
	leadingZerosLanes(r[:], v[:])
	return r
}

// TrailingZeros32 counts trailing zero bits per lane; an all-zero lane yields
// the element bit width.
func TrailingZeros32[T Integers](v Vec32[T]) Vec32[T] {
	var r Vec32[T]
	trailingZerosLanes(r[:], v[:])
	return r
}

// OnesCount32 counts set bits per lane.
func OnesCount32[T Integers](v Vec32[T]) Vec32[T] {
	var r Vec32[T]
	onesCountLanes(r[:], v[:])
	return r
}

// SwapBytes32 reverses the byte order within each lane.
func SwapBytes32[T Integers](v Vec32[T]) Vec32[T] {
	var r Vec32[T]
	swapBytesLanes(r[:], v[:])
	return r
}

// BitMask32 materializes a mask as integer lanes: all-ones where true (-1 for
// signed elements, the maximum value for unsigned), zero elsewhere.
func BitMask32[T Integers](m Mask32) Vec32[T] {
	var r Vec32[T]
	bitMaskLanes(r[:], m[:])
	return r
}

// SaturatedAdd32 adds lanewise, clamping to the element range instead of
// wrapping.
func SaturatedAdd32[T Integers](a, b Vec32[T]) Vec32[T] {
	var r Vec32[T]
	satAddLanes(r[:], a[:], b[:])
	return r
}

// SaturatedSub32 subtracts lanewise, clamping to the element range instead of
// wrapping.
func SaturatedSub32[T Integers](a, b Vec32[T]) Vec32[T] {
	var r Vec32[T]
	satSubLanes(r[:], a[:], b[:])
	return r
}

// Floating-point operations.

// Div32 returns the lanewise IEEE quotient. A zero divisor lane yields an
// infinity or NaN, never an error.
func Div32[T Floats](a, b Vec32[T]) Vec32[T] {
	var r Vec32[T]
	divFloatLanes(r[:], a[:], b[:])
	return r
}

// Sqrt32 returns the lanewise IEEE square root; negative lanes yield NaN.
func Sqrt32[T Floats](v Vec32[T]) Vec32[T] {
	var r Vec32[T]
	sqrtLanes(r[:], v[:])
	return r
}

// MulAdd32 returns c + a*b computed with a single rounding step per lane.
func MulAdd32[T Floats](a, b, c Vec32[T]) Vec32[T] {
	var r Vec32[T]
	mulAddLanes(r[:], a[:], b[:], c[:])
	return r
}

// Round32 rounds every lane according to mode.
func Round32[T Floats](v Vec32[T], mode RoundingMode) Vec32[T] {
	var r Vec32[T]
	roundLanes(r[:], v[:], mode)
	return r
}

// Conversions. Both entry points keep the lane count and change the element
// type; there is no implicit conversion between vector types.

// SaturatedConvert32 converts lanes with clamping: integer destinations clamp
// to their representable range and NaN maps to zero; float destinations use
// plain IEEE conversion.
func SaturatedConvert32[To, From Lanes](v Vec32[From]) Vec32[To] {
	var r Vec32[To]
	saturatedConvertLanes(r[:], v[:])
	return r
}

// TruncatedConvert32 converts lanes by raw bit truncation with wraparound,
// reproducing the hardware narrowing instruction. Float sources truncate
// toward zero first; NaN, infinities and values outside the int64 range map
// to zero.
func TruncatedConvert32[To Integers, From Lanes](v Vec32[From]) Vec32[To] {
	var r Vec32[To]
	truncatedConvertLanes(r[:], v[:])
	return r
}
