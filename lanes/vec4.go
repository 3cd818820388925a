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

// Vec4 is a 4-lane vector. Its memory layout is exactly four consecutive
// elements, matching the native vector register shape for the element width.
type Vec4[T Lanes] [4]T

// NewVec4 builds a vector from four lane values in order.
func NewVec4[T Lanes](x0, x1, x2, x3 T) Vec4[T] {
	return Vec4[T]{x0, x1, x2, x3}
}

// Splat4 builds a vector with v in every lane.
func Splat4[T Lanes](v T) Vec4[T] {
	return Vec4[T]{v, v, v, v}
}

// Zero4 returns the all-zero vector. It is the same value as Vec4[T]{}.
func Zero4[T Lanes]() Vec4[T] {
	return Vec4[T]{}
}

// Vec4FromSlice builds a vector from a slice of exactly 4 elements.
// It returns ErrLengthMismatch for any other length.
func Vec4FromSlice[T Lanes](s []T) (Vec4[T], error) {
	var v Vec4[T]
	if len(s) != len(v) {
		return v, ErrLengthMismatch
	}
	copy(v[:], s)
	return v, nil
}

// Len returns the number of lanes.
func (v Vec4[T]) Len() int { return 4 }

// At returns lane i. Out-of-range indices panic; indexed access is a
// precondition, not a recoverable error.
func (v Vec4[T]) At(i int) T { return v[i] }

// SetAt stores x into lane i. Out-of-range indices panic.
func (v *Vec4[T]) SetAt(i int, x T) { v[i] = x }

// Slice returns the lanes as a freshly allocated slice.
func (v Vec4[T]) Slice() []T {
	s := make([]T, len(v))
	copy(s, v[:])
	return s
}

// Store writes the lanes to dst, which must hold at least Len elements.
func (v Vec4[T]) Store(dst []T) {
	copy(dst[:len(v)], v[:])
}

// Add returns the lanewise sum. Integer elements wrap on overflow.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	addLanes(r[:], v[:], o[:])
	return r
}

// Sub returns the lanewise difference. Integer elements wrap on overflow.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	subLanes(r[:], v[:], o[:])
	return r
}

// Mul returns the lanewise product. Integer elements wrap on overflow.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	mulLanes(r[:], v[:], o[:])
	return r
}

// Neg returns the lanewise negation (two's-complement for integers).
func (v Vec4[T]) Neg() Vec4[T] {
	var r Vec4[T]
	negLanes(r[:], v[:])
	return r
}

// Min returns the lanewise minimum.
func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	minLanes(r[:], v[:], o[:])
	return r
}

// Max returns the lanewise maximum.
func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	var r Vec4[T]
	maxLanes(r[:], v[:], o[:])
	return r
}

// Clamp limits each lane to [lo, hi].
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	var r Vec4[T]
	clampLanes(r[:], v[:], lo[:], hi[:])
	return r
}

// Eq returns the lanewise equality mask.
func (v Vec4[T]) Eq(o Vec4[T]) Mask4 {
	var m Mask4
	eqLanes(m[:], v[:], o[:])
	return m
}

// Ne returns the lanewise inequality mask.
func (v Vec4[T]) Ne(o Vec4[T]) Mask4 {
	var m Mask4
	neLanes(m[:], v[:], o[:])
	return m
}

// Less returns the lanewise less-than mask. NaN lanes compare false.
func (v Vec4[T]) Less(o Vec4[T]) Mask4 {
	var m Mask4
	ltLanes(m[:], v[:], o[:])
	return m
}

// LessEq returns the lanewise less-or-equal mask.
func (v Vec4[T]) LessEq(o Vec4[T]) Mask4 {
	var m Mask4
	leLanes(m[:], v[:], o[:])
	return m
}

// Greater returns the lanewise greater-than mask.
func (v Vec4[T]) Greater(o Vec4[T]) Mask4 {
	var m Mask4
	gtLanes(m[:], v[:], o[:])
	return m
}

// GreaterEq returns the lanewise greater-or-equal mask.
func (v Vec4[T]) GreaterEq(o Vec4[T]) Mask4 {
	var m Mask4
	geLanes(m[:], v[:], o[:])
	return m
}

// Merged returns a vector taking lanes from o where m is true and from v
// elsewhere.
func (v Vec4[T]) Merged(o Vec4[T], m Mask4) Vec4[T] {
	var r Vec4[T]
	mergeLanes(r[:], v[:], o[:], m[:])
	return r
}

// Merge is the in-place counterpart of Merged.
func (v *Vec4[T]) Merge(o Vec4[T], m Mask4) {
	mergeLanes(v[:], v[:], o[:], m[:])
}

// Equal reports whether all lanes are equal.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

// Hash returns a stable hash of the lane sequence.
func (v Vec4[T]) Hash() uint64 { return hashLanes(v[:]) }

func (v Vec4[T]) String() string { return formatLanes("Vec4", v[:]) }

// Named component accessors alias lanes 0 through 3.

// X returns lane 0.
func (v Vec4[T]) X() T { return v[0] }

// Y returns lane 1.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns lane 2.
func (v Vec4[T]) Z() T { return v[2] }

// W returns lane 3.
func (v Vec4[T]) W() T { return v[3] }

// SetX stores x into lane 0.
func (v *Vec4[T]) SetX(x T) { v[0] = x }

// SetY stores y into lane 1.
func (v *Vec4[T]) SetY(y T) { v[1] = y }

// SetZ stores z into lane 2.
func (v *Vec4[T]) SetZ(z T) { v[2] = z }

// SetW stores w into lane 3.
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// Low returns the lower half, lanes 0..1.
func (v Vec4[T]) Low() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// High returns the upper half, lanes 2..3.
func (v Vec4[T]) High() Vec2[T] { return Vec2[T]{v[2], v[3]} }

// Even returns the even-indexed lanes.
func (v Vec4[T]) Even() Vec2[T] { return Vec2[T]{v[0], v[2]} }

// Odd returns the odd-indexed lanes.
func (v Vec4[T]) Odd() Vec2[T] { return Vec2[T]{v[1], v[3]} }

// Gather4 builds a vector with result[i] = src[idx[i]] for every in-range
// index. Out-of-range lanes keep the zero default instead of failing, so
// permutation code needs no per-lane branching.
func Gather4[T Lanes, I Integers](src []T, idx Vec4[I]) Vec4[T] {
	var r Vec4[T]
	gatherLanes(r[:], src, idx[:])
	return r
}

// Integer operations.

// And4 returns the lanewise bitwise AND.
func And4[T Integers](a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	andLanes(r[:], a[:], b[:])
	return r
}

// Or4 returns the lanewise bitwise OR.
func Or4[T Integers](a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	orLanes(r[:], a[:], b[:])
	return r
}

// Xor4 returns the lanewise bitwise XOR.
func Xor4[T Integers](a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	xorLanes(r[:], a[:], b[:])
	return r
}

// Not4 returns the lanewise bitwise complement.
func Not4[T Integers](v Vec4[T]) Vec4[T] {
	var r Vec4[T]
	notLanes(r[:], v[:])
	return r
}

// AndNot4 returns the lanewise (^a) & b.
func AndNot4[T Integers](a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	andNotLanes(r[:], a[:], b[:])
	return r
}

// ShiftLeft4 shifts each lane left by the matching count lane. Counts are
// masked to count & (bitWidth-1), matching native hardware shifts.
func ShiftLeft4[T Integers](v, counts Vec4[T]) Vec4[T] {
	var r Vec4[T]
	shiftLeftLanes(r[:], v[:], counts[:])
	return r
}

// ShiftRight4 shifts each lane right by the matching count lane, arithmetic
// for signed elements and logical for unsigned. Counts are masked like
// ShiftLeft4.
func ShiftRight4[T Integers](v, counts Vec4[T]) Vec4[T] {
	var r Vec4[T]
	shiftRightLanes(r[:], v[:], counts[:])
	return r
}

// ShiftLeftAll4 shifts every lane left by the same count, masked to the
// element width.
func ShiftLeftAll4[T Integers](v Vec4[T], bits int) Vec4[T] {
	var r Vec4[T]
	shiftLeftAllLanes(r[:], v[:], bits)
	return r
}

// ShiftRightAll4 shifts every lane right by the same count, masked to the
// element width.
func ShiftRightAll4[T Integers](v Vec4[T], bits int) Vec4[T] {
	var r Vec4[T]
	shiftRightAllLanes(r[:], v[:], bits)
	return r
}

// Quo4 returns the lanewise quotient, truncated toward zero. It returns
// ErrDivisionByZero if any divisor lane is zero.
func Quo4[T Integers](a, b Vec4[T]) (Vec4[T], error) {
	var r Vec4[T]
	if err := quoLanes(r[:], a[:], b[:]); err != nil {
		return Vec4[T]{}, err
	}
	return r, nil
}

// Rem4 returns the lanewise remainder. It returns ErrDivisionByZero if any
// divisor lane is zero.
func Rem4[T Integers](a, b Vec4[T]) (Vec4[T], error) {
	var r Vec4[T]
	if err := remLanes(r[:], a[:], b[:]); err != nil {
		return Vec4[T]{}, err
	}
	return r, nil
}

// LeadingZeros4 counts leading zero bits per lane; an all-zero lane yields
// the element bit width.
func LeadingZeros4[T Integers](v Vec4[T]) Vec4[T] {
	var r Vec4[T]
	leadingZerosLanes(r[:], v[:])
	return r
}

// TrailingZeros4 counts trailing zero bits per lane; an all-zero lane yields
// the element bit width.
func TrailingZeros4[T Integers](v Vec4[T]) Vec4[T] {
	var r Vec4[T]
	trailingZerosLanes(r[:], v[:])
	return r
}

// OnesCount4 counts set bits per lane.
func OnesCount4[T Integers](v Vec4[T]) Vec4[T] {
	var r Vec4[T]
	onesCountLanes(r[:], v[:])
	return r
}

// SwapBytes4 reverses the byte order within each lane.
func SwapBytes4[T Integers](v Vec4[T]) Vec4[T] {
	var r Vec4[T]
	swapBytesLanes(r[:], v[:])
	return r
}

// BitMask4 materializes a mask as integer lanes: all-ones where true (-1 for
// signed elements, the maximum value for unsigned), zero elsewhere.
func BitMask4[T Integers](m Mask4) Vec4[T] {
	var r Vec4[T]
	bitMaskLanes(r[:], m[:])
	return r
}

// SaturatedAdd4 adds lanewise, clamping to the element range instead of
// wrapping.
func SaturatedAdd4[T Integers](a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	satAddLanes(r[:], a[:], b[:])
	return r
}

// SaturatedSub4 subtracts lanewise, clamping to the element range instead of
// wrapping.
func SaturatedSub4[T Integers](a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	satSubLanes(r[:], a[:], b[:])
	return r
}

// Floating-point operations.

// Div4 returns the lanewise IEEE quotient. A zero divisor lane yields an
// infinity or NaN, never an error.
func Div4[T Floats](a, b Vec4[T]) Vec4[T] {
	var r Vec4[T]
	divFloatLanes(r[:], a[:], b[:])
	return r
}

// Sqrt4 returns the lanewise IEEE square root; negative lanes yield NaN.
func Sqrt4[T Floats](v Vec4[T]) Vec4[T] {
	var r Vec4[T]
	sqrtLanes(r[:], v[:])
	return r
}

// MulAdd4 returns c + a*b computed with a single rounding step per lane.
func MulAdd4[T Floats](a, b, c Vec4[T]) Vec4[T] {
	var r Vec4[T]
	mulAddLanes(r[:], a[:], b[:], c[:])
	return r
}

// Round4 rounds every lane according to mode.
func Round4[T Floats](v Vec4[T], mode RoundingMode) Vec4[T] {
	var r Vec4[T]
	roundLanes(r[:], v[:], mode)
	return r
}

// Conversions. Both entry points keep the lane count and change the element
// type; there is no implicit conversion between vector types.

// SaturatedConvert4 converts lanes with clamping: integer destinations clamp
// to their representable range and NaN maps to zero; float destinations use
// plain IEEE conversion.
func SaturatedConvert4[To, From Lanes](v Vec4[From]) Vec4[To] {
	var r Vec4[To]
	saturatedConvertLanes(r[:], v[:])
	return r
}

// TruncatedConvert4 converts lanes by raw bit truncation with wraparound,
// reproducing the hardware narrowing instruction. Float sources truncate
// toward zero first; NaN, infinities and values outside the int64 range map
// to zero.
func TruncatedConvert4[To Integers, From Lanes](v Vec4[From]) Vec4[To] {
	var r Vec4[To]
	truncatedConvertLanes(r[:], v[:])
	return r
}
