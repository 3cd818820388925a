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

// Vec8 is an 8-lane vector. Its memory layout is exactly 8 consecutive
// elements, matching the native vector register shape for the element width.
type Vec8[T Lanes] [8]T

// NewVec8 builds a vector from 8 lane values in order.
func NewVec8[T Lanes](x0, x1, x2, x3, x4, x5, x6, x7 T) Vec8[T] {
	return Vec8[T]{x0, x1, x2, x3, x4, x5, x6, x7}
}

// Splat8 builds a vector with v in every lane.
func Splat8[T Lanes](v T) Vec8[T] {
	var r Vec8[T]
	for i := range r {
		r[i] = v
	}
	return r
}

// Zero8 returns the all-zero vector. It is the same value as Vec8[T]{}.
func Zero8[T Lanes]() Vec8[T] {
	return Vec8[T]{}
}

// Vec8FromSlice builds a vector from a slice of exactly 8 elements.
// It returns ErrLengthMismatch for any other length.
func Vec8FromSlice[T Lanes](s []T) (Vec8[T], error) {
	var v Vec8[T]
	if len(s) != len(v) {
		return v, ErrLengthMismatch
	}
	copy(v[:], s)
	return v, nil
}

// Len returns the number of lanes.
func (v Vec8[T]) Len() int { return 8 }

// At returns lane i. Out-of-range indices panic; indexed access is a
// precondition, not a recoverable error.
func (v Vec8[T]) At(i int) T { return v[i] }

// SetAt stores x into lane i. Out-of-range indices panic.
func (v *Vec8[T]) SetAt(i int, x T) { v[i] = x }

// Slice returns the lanes as a freshly allocated slice.
func (v Vec8[T]) Slice() []T {
	s := make([]T, len(v))
	copy(s, v[:])
	return s
}

// Store writes the lanes to dst, which must hold at least Len elements.
func (v Vec8[T]) Store(dst []T) {
	copy(dst[:len(v)], v[:])
}

// Add returns the lanewise sum. Integer elements wrap on overflow.
func (v Vec8[T]) Add(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	addLanes(r[:], v[:], o[:])
	return r
}

// Sub returns the lanewise difference. Integer elements wrap on overflow.
func (v Vec8[T]) Sub(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	subLanes(r[:], v[:], o[:])
	return r
}

// Mul returns the lanewise product. Integer elements wrap on overflow.
func (v Vec8[T]) Mul(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	mulLanes(r[:], v[:], o[:])
	return r
}

// Neg returns the lanewise negation (two's-complement for integers).
func (v Vec8[T]) Neg() Vec8[T] {
	var r Vec8[T]
	negLanes(r[:], v[:])
	return r
}

// Min returns the lanewise minimum.
func (v Vec8[T]) Min(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	minLanes(r[:], v[:], o[:])
	return r
}

// Max returns the lanewise maximum.
func (v Vec8[T]) Max(o Vec8[T]) Vec8[T] {
	var r Vec8[T]
	maxLanes(r[:], v[:], o[:])
	return r
}

// Clamp limits each lane to [lo, hi].
func (v Vec8[T]) Clamp(lo, hi Vec8[T]) Vec8[T] {
	var r Vec8[T]
	clampLanes(r[:], v[:], lo[:], hi[:])
	return r
}

// Eq returns the lanewise equality mask.
func (v Vec8[T]) Eq(o Vec8[T]) Mask8 {
	var m Mask8
	eqLanes(m[:], v[:], o[:])
	return m
}

// Ne returns the lanewise inequality mask.
func (v Vec8[T]) Ne(o Vec8[T]) Mask8 {
	var m Mask8
	neLanes(m[:], v[:], o[:])
	return m
}

// Less returns the lanewise less-than mask. NaN lanes compare false.
func (v Vec8[T]) Less(o Vec8[T]) Mask8 {
	var m Mask8
	ltLanes(m[:], v[:], o[:])
	return m
}

// LessEq returns the lanewise less-or-equal mask.
func (v Vec8[T]) LessEq(o Vec8[T]) Mask8 {
	var m Mask8
	leLanes(m[:], v[:], o[:])
	return m
}

// Greater returns the lanewise greater-than mask.
func (v Vec8[T]) Greater(o Vec8[T]) Mask8 {
	var m Mask8
	gtLanes(m[:], v[:], o[:])
	return m
}

// GreaterEq returns the lanewise greater-or-equal mask.
func (v Vec8[T]) GreaterEq(o Vec8[T]) Mask8 {
	var m Mask8
	geLanes(m[:], v[:], o[:])
	return m
}

// Merged returns a vector taking lanes from o where m is true and from v
// elsewhere.
func (v Vec8[T]) Merged(o Vec8[T], m Mask8) Vec8[T] {
	var r Vec8[T]
	mergeLanes(r[:], v[:], o[:], m[:])
	return r
}

// Merge is the in-place counterpart of Merged.
func (v *Vec8[T]) Merge(o Vec8[T], m Mask8) {
	mergeLanes(v[:], v[:], o[:], m[:])
}

// Equal reports whether all lanes are equal.
func (v Vec8[T]) Equal(o Vec8[T]) bool { return v == o }

// Hash returns a stable hash of the lane sequence.
func (v Vec8[T]) Hash() uint64 { return hashLanes(v[:]) }

func (v Vec8[T]) String() string { return formatLanes("Vec8", v[:]) }

// Low returns the lower half, lanes 0..3.
func (v Vec8[T]) Low() Vec4[T] {
	var r Vec4[T]
	copy(r[:], v[:4])
	return r
}

// High returns the upper half, lanes 4..7.
func (v Vec8[T]) High() Vec4[T] {
	var r Vec4[T]
	copy(r[:], v[4:])
	return r
}

// Even returns the even-indexed lanes.
func (v Vec8[T]) Even() Vec4[T] {
	var r Vec4[T]
	for i := range r {
		r[i] = v[2*i]
	}
	return r
}

// Odd returns the odd-indexed lanes.
func (v Vec8[T]) Odd() Vec4[T] {
	var r Vec4[T]
	for i := range r {
		r[i] = v[2*i+1]
	}
	return r
}

// Gather8 builds a vector with result[i] = src[idx[i]] for every in-range
// index. Out-of-range lanes keep the zero default instead of failing, so
// permutation code needs no per-lane branching.
func Gather8[T Lanes, I Integers](src []T, idx Vec8[I]) Vec8[T] {
	var r Vec8[T]
	gatherLanes(r[:], src, idx[:])
	return r
}

// Integer operations.

// And8 returns the lanewise bitwise AND.
func And8[T Integers](a, b Vec8[T]) Vec8[T] {
	var r Vec8[T]
	andLanes(r[:], a[:], b[:])
	return r
}

// Or8 returns the lanewise bitwise OR.
func Or8[T Integers](a, b Vec8[T]) Vec8[T] {
	var r Vec8[T]
	orLanes(r[:], a[:], b[:])
	return r
}

// Xor8 returns the lanewise bitwise XOR.
func Xor8[T Integers](a, b Vec8[T]) Vec8[T] {
	var r Vec8[T]
	xorLanes(r[:], a[:], b[:])
	return r
}

// Not8 returns the lanewise bitwise complement.
func Not8[T Integers](v Vec8[T]) Vec8[T] {
	var r Vec8[T]
	notLanes(r[:], v[:])
	return r
}

// AndNot8 returns the lanewise (^a) & b.
func AndNot8[T Integers](a, b Vec8[T]) Vec8[T] {
	var r Vec8[T]
	andNotLanes(r[:], a[:], b[:])
	return r
}

// ShiftLeft8 shifts each lane left by the matching count lane. Counts are
// masked to count & (bitWidth-1), matching native hardware shifts.
func ShiftLeft8[T Integers](v, counts Vec8[T]) Vec8[T] {
	var r Vec8[T]
	shiftLeftLanes(r[:], v[:], counts[:])
	return r
}

// ShiftRight8 shifts each lane right by the matching count lane, arithmetic
// for signed elements and logical for unsigned. Counts are masked like
// ShiftLeft8.
func ShiftRight8[T Integers](v, counts Vec8[T]) Vec8[T] {
	var r Vec8[T]
	shiftRightLanes(r[:], v[:], counts[:])
	return r
}

// ShiftLeftAll8 shifts every lane left by the same count, masked to the
// element width.
func ShiftLeftAll8[T Integers](v Vec8[T], bits int) Vec8[T] {
	var r Vec8[T]
	shiftLeftAllLanes(r[:], v[:], bits)
	return r
}

// ShiftRightAll8 shifts every lane right by the same count, masked to the
// element width.
func ShiftRightAll8[T Integers](v Vec8[T], bits int) Vec8[T] {
	var r Vec8[T]
	shiftRightAllLanes(r[:], v[:], bits)
	return r
}

// Quo8 returns the lanewise quotient, truncated toward zero. It returns
// ErrDivisionByZero if any divisor lane is zero.
func Quo8[T Integers](a, b Vec8[T]) (Vec8[T], error) {
	var r Vec8[T]
	if err := quoLanes(r[:], a[:], b[:]); err != nil {
		return Vec8[T]{}, err
	}
	return r, nil
}

// Rem8 returns the lanewise remainder. It returns ErrDivisionByZero if any
// divisor lane is zero.
func Rem8[T Integers](a, b Vec8[T]) (Vec8[T], error) {
	var r Vec8[T]
	if err := remLanes(r[:], a[:], b[:]); err != nil {
		return Vec8[T]{}, err
	}
	return r, nil
}

// LeadingZeros8 counts leading zero bits per lane; an all-zero lane yields
// the element bit width.
func LeadingZeros8[T Integers](v Vec8[T]) Vec8[T] {
	var r Vec8[T]
	leadingZerosLanes(r[:], v[:])
	return r
}

// TrailingZeros8 counts trailing zero bits per lane; an all-zero lane yields
// the element bit width.
func TrailingZeros8[T Integers](v Vec8[T]) Vec8[T] {
	var r Vec8[T]
	trailingZerosLanes(r[:], v[:])
	return r
}

// OnesCount8 counts set bits per lane.
func OnesCount8[T Integers](v Vec8[T]) Vec8[T] {
	var r Vec8[T]
	onesCountLanes(r[:], v[:])
	return r
}

// SwapBytes8 reverses the byte order within each lane.
func SwapBytes8[T Integers](v Vec8[T]) Vec8[T] {
	var r Vec8[T]
	swapBytesLanes(r[:], v[:])
	return r
}

// BitMask8 materializes a mask as integer lanes: all-ones where true (-1 for
// signed elements, the maximum value for unsigned), zero elsewhere.
func BitMask8[T Integers](m Mask8) Vec8[T] {
	var r Vec8[T]
	bitMaskLanes(r[:], m[:])
	return r
}

// SaturatedAdd8 adds lanewise, clamping to the element range instead of
// wrapping.
func SaturatedAdd8[T Integers](a, b Vec8[T]) Vec8[T] {
	var r Vec8[T]
	satAddLanes(r[:], a[:], b[:])
	return r
}

// SaturatedSub8 subtracts lanewise, clamping to the element range instead of
// wrapping.
func SaturatedSub8[T Integers](a, b Vec8[T]) Vec8[T] {
	var r Vec8[T]
	satSubLanes(r[:], a[:], b[:])
	return r
}

// Floating-point operations.

// Div8 returns the lanewise IEEE quotient. A zero divisor lane yields an
// infinity or NaN, never an error.
func Div8[T Floats](a, b Vec8[T]) Vec8[T] {
	var r Vec8[T]
	divFloatLanes(r[:], a[:], b[:])
	return r
}

// Sqrt8 returns the lanewise IEEE square root; negative lanes yield NaN.
func Sqrt8[T Floats](v Vec8[T]) Vec8[T] {
	var r Vec8[T]
	sqrtLanes(r[:], v[:])
	return r
}

// MulAdd8 returns c + a*b computed with a single rounding step per lane.
func MulAdd8[T Floats](a, b, c Vec8[T]) Vec8[T] {
	var r Vec8[T]
	mulAddLanes(r[:], a[:], b[:], c[:])
	return r
}

// Round8 rounds every lane according to mode.
func Round8[T Floats](v Vec8[T], mode RoundingMode) Vec8[T] {
	var r Vec8[T]
	roundLanes(r[:], v[:], mode)
	return r
}

// Conversions. Both entry points keep the lane count and change the element
// type; there is no implicit conversion between vector types.

// SaturatedConvert8 converts lanes with clamping: integer destinations clamp
// to their representable range and NaN maps to zero; float destinations use
// plain IEEE conversion.
func SaturatedConvert8[To, From Lanes](v Vec8[From]) Vec8[To] {
	var r Vec8[To]
	saturatedConvertLanes(r[:], v[:])
	return r
}

// TruncatedConvert8 converts lanes by raw bit truncation with wraparound,
// reproducing the hardware narrowing instruction. Float sources truncate
// toward zero first; NaN, infinities and values outside the int64 range map
// to zero.
func TruncatedConvert8[To Integers, From Lanes](v Vec8[From]) Vec8[To] {
	var r Vec8[To]
	truncatedConvertLanes(r[:], v[:])
	return r
}
