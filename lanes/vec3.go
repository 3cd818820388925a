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

// Vec3 is a 3-lane vector stored in 4 physical lanes, the register shape
// hardware actually provides. The fourth lane is padding: it never
// participates in arithmetic, comparison, equality, hashing or formatting,
// and no operation can read or write it. Constructors zero it, but a value
// rebuilt from raw bytes may carry arbitrary padding; either way the lane is
// unobservable.
type Vec3[T Lanes] struct {
	e [4]T
}

// NewVec3 builds a vector from 3 lane values in order.
func NewVec3[T Lanes](x0, x1, x2 T) Vec3[T] {
	return Vec3[T]{e: [4]T{x0, x1, x2, 0}}
}

// Splat3 builds a vector with v in every lane.
func Splat3[T Lanes](v T) Vec3[T] {
	return Vec3[T]{e: [4]T{v, v, v, 0}}
}

// Zero3 returns the all-zero vector.
func Zero3[T Lanes]() Vec3[T] {
	return Vec3[T]{}
}

// Vec3FromSlice builds a vector from a slice of exactly 3 elements.
// It returns ErrLengthMismatch for any other length.
func Vec3FromSlice[T Lanes](s []T) (Vec3[T], error) {
	var v Vec3[T]
	if len(s) != 3 {
		return v, ErrLengthMismatch
	}
	copy(v.e[:3], s)
	return v, nil
}

// Len returns the number of lanes. It is 3, not the physical 4.
func (v Vec3[T]) Len() int { return 3 }

// At returns lane i. Indices outside 0..2 panic; the padding lane is not
// addressable.
func (v Vec3[T]) At(i int) T {
	if i < 0 || i >= 3 {
		panic("lanes: Vec3 index out of range")
	}
	return v.e[i]
}

// SetAt stores x into lane i. Indices outside 0..2 panic.
func (v *Vec3[T]) SetAt(i int, x T) {
	if i < 0 || i >= 3 {
		panic("lanes: Vec3 index out of range")
	}
	v.e[i] = x
}

// Slice returns the 3 logical lanes as a freshly allocated slice.
func (v Vec3[T]) Slice() []T {
	s := make([]T, 3)
	copy(s, v.e[:3])
	return s
}

// Store writes the 3 logical lanes to dst, which must hold at least 3
// elements. The padding lane is not written.
func (v Vec3[T]) Store(dst []T) {
	copy(dst[:3], v.e[:3])
}

// Add returns the lanewise sum. Integer elements wrap on overflow.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	var r Vec3[T]
	addLanes(r.e[:3], v.e[:3], o.e[:3])
	return r
}

// Sub returns the lanewise difference. Integer elements wrap on overflow.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	var r Vec3[T]
	subLanes(r.e[:3], v.e[:3], o.e[:3])
	return r
}

// Mul returns the lanewise product. Integer elements wrap on overflow.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	var r Vec3[T]
	mulLanes(r.e[:3], v.e[:3], o.e[:3])
	return r
}

// Neg returns the lanewise negation (two's-complement for integers).
func (v Vec3[T]) Neg() Vec3[T] {
	var r Vec3[T]
	negLanes(r.e[:3], v.e[:3])
	return r
}

// Min returns the lanewise minimum.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	var r Vec3[T]
	minLanes(r.e[:3], v.e[:3], o.e[:3])
	return r
}

// Max returns the lanewise maximum.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	var r Vec3[T]
	maxLanes(r.e[:3], v.e[:3], o.e[:3])
	return r
}

// Clamp limits each lane to [lo, hi].
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	var r Vec3[T]
	clampLanes(r.e[:3], v.e[:3], lo.e[:3], hi.e[:3])
	return r
}

// Eq returns the lanewise equality mask. The mask has 3 lanes; padding does
// not compare.
func (v Vec3[T]) Eq(o Vec3[T]) Mask3 {
	var m Mask3
	eqLanes(m[:], v.e[:3], o.e[:3])
	return m
}

// Ne returns the lanewise inequality mask.
func (v Vec3[T]) Ne(o Vec3[T]) Mask3 {
	var m Mask3
	neLanes(m[:], v.e[:3], o.e[:3])
	return m
}

// Less returns the lanewise less-than mask. NaN lanes compare false.
func (v Vec3[T]) Less(o Vec3[T]) Mask3 {
	var m Mask3
	ltLanes(m[:], v.e[:3], o.e[:3])
	return m
}

// LessEq returns the lanewise less-or-equal mask.
func (v Vec3[T]) LessEq(o Vec3[T]) Mask3 {
	var m Mask3
	leLanes(m[:], v.e[:3], o.e[:3])
	return m
}

// Greater returns the lanewise greater-than mask.
func (v Vec3[T]) Greater(o Vec3[T]) Mask3 {
	var m Mask3
	gtLanes(m[:], v.e[:3], o.e[:3])
	return m
}

// GreaterEq returns the lanewise greater-or-equal mask.
func (v Vec3[T]) GreaterEq(o Vec3[T]) Mask3 {
	var m Mask3
	geLanes(m[:], v.e[:3], o.e[:3])
	return m
}

// Merged returns a vector taking lanes from o where m is true and from v
// elsewhere.
func (v Vec3[T]) Merged(o Vec3[T], m Mask3) Vec3[T] {
	var r Vec3[T]
	mergeLanes(r.e[:3], v.e[:3], o.e[:3], m[:])
	return r
}

// Merge is the in-place counterpart of Merged. The padding lane is left
// untouched.
func (v *Vec3[T]) Merge(o Vec3[T], m Mask3) {
	mergeLanes(v.e[:3], v.e[:3], o.e[:3], m[:])
}

// Equal reports whether the 3 logical lanes are equal. Two vectors with
// different padding bytes but equal lanes are equal.
func (v Vec3[T]) Equal(o Vec3[T]) bool {
	return v.e[0] == o.e[0] && v.e[1] == o.e[1] && v.e[2] == o.e[2]
}

// Hash returns a stable hash of the 3 logical lanes. Padding never
// contributes, so Equal vectors hash alike.
func (v Vec3[T]) Hash() uint64 { return hashLanes(v.e[:3]) }

func (v Vec3[T]) String() string { return formatLanes("Vec3", v.e[:3]) }

// Named component accessors alias lanes 0 through 2.

// X returns lane 0.
func (v Vec3[T]) X() T { return v.e[0] }

// Y returns lane 1.
func (v Vec3[T]) Y() T { return v.e[1] }

// Z returns lane 2.
func (v Vec3[T]) Z() T { return v.e[2] }

// SetX stores x into lane 0.
func (v *Vec3[T]) SetX(x T) { v.e[0] = x }

// SetY stores y into lane 1.
func (v *Vec3[T]) SetY(y T) { v.e[1] = y }

// SetZ stores z into lane 2.
func (v *Vec3[T]) SetZ(z T) { v.e[2] = z }

// Gather3 builds a vector with result[i] = src[idx[i]] for every in-range
// index. Out-of-range lanes keep the zero default.
func Gather3[T Lanes, I Integers](src []T, idx Vec3[I]) Vec3[T] {
	var r Vec3[T]
	gatherLanes(r.e[:3], src, idx.e[:3])
	return r
}

// Integer operations.

// And3 returns the lanewise bitwise AND.
func And3[T Integers](a, b Vec3[T]) Vec3[T] {
	var r Vec3[T]
	andLanes(r.e[:3], a.e[:3], b.e[:3])
	return r
}

// Or3 returns the lanewise bitwise OR.
func Or3[T Integers](a, b Vec3[T]) Vec3[T] {
	var r Vec3[T]
	orLanes(r.e[:3], a.e[:3], b.e[:3])
	return r
}

// Xor3 returns the lanewise bitwise XOR.
func Xor3[T Integers](a, b Vec3[T]) Vec3[T] {
	var r Vec3[T]
	xorLanes(r.e[:3], a.e[:3], b.e[:3])
	return r
}

// Not3 returns the lanewise bitwise complement.
func Not3[T Integers](v Vec3[T]) Vec3[T] {
	var r Vec3[T]
	notLanes(r.e[:3], v.e[:3])
	return r
}

// AndNot3 returns the lanewise (^a) & b.
func AndNot3[T Integers](a, b Vec3[T]) Vec3[T] {
	var r Vec3[T]
	andNotLanes(r.e[:3], a.e[:3], b.e[:3])
	return r
}

// ShiftLeft3 shifts each lane left by the matching count lane. Counts are
// masked to count & (bitWidth-1), matching native hardware shifts.
func ShiftLeft3[T Integers](v, counts Vec3[T]) Vec3[T] {
	var r Vec3[T]
	shiftLeftLanes(r.e[:3], v.e[:3], counts.e[:3])
	return r
}

// ShiftRight3 shifts each lane right by the matching count lane, arithmetic
// for signed elements and logical for unsigned. Counts are masked like
// ShiftLeft3.
func ShiftRight3[T Integers](v, counts Vec3[T]) Vec3[T] {
	var r Vec3[T]
	shiftRightLanes(r.e[:3], v.e[:3], counts.e[:3])
	return r
}

// ShiftLeftAll3 shifts every lane left by the same count, masked to the
// element width.
func ShiftLeftAll3[T Integers](v Vec3[T], bits int) Vec3[T] {
	var r Vec3[T]
	shiftLeftAllLanes(r.e[:3], v.e[:3], bits)
	return r
}

// ShiftRightAll3 shifts every lane right by the same count, masked to the
// element width.
func ShiftRightAll3[T Integers](v Vec3[T], bits int) Vec3[T] {
	var r Vec3[T]
	shiftRightAllLanes(r.e[:3], v.e[:3], bits)
	return r
}

// Quo3 returns the lanewise quotient, truncated toward zero. It returns
// ErrDivisionByZero if any divisor lane is zero; a zero padding lane does
// not trip the check.
func Quo3[T Integers](a, b Vec3[T]) (Vec3[T], error) {
	var r Vec3[T]
	if err := quoLanes(r.e[:3], a.e[:3], b.e[:3]); err != nil {
		return Vec3[T]{}, err
	}
	return r, nil
}

// Rem3 returns the lanewise remainder. It returns ErrDivisionByZero if any
// divisor lane is zero.
func Rem3[T Integers](a, b Vec3[T]) (Vec3[T], error) {
	var r Vec3[T]
	if err := remLanes(r.e[:3], a.e[:3], b.e[:3]); err != nil {
		return Vec3[T]{}, err
	}
	return r, nil
}

// LeadingZeros3 counts leading zero bits per lane; an all-zero lane yields
// the element bit width.
func LeadingZeros3[T Integers](v Vec3[T]) Vec3[T] {
	var r Vec3[T]
	leadingZerosLanes(r.e[:3], v.e[:3])
	return r
}

// TrailingZeros3 counts trailing zero bits per lane; an all-zero lane yields
// the element bit width.
func TrailingZeros3[T Integers](v Vec3[T]) Vec3[T] {
	var r Vec3[T]
	trailingZerosLanes(r.e[:3], v.e[:3])
	return r
}

// OnesCount3 counts set bits per lane.
func OnesCount3[T Integers](v Vec3[T]) Vec3[T] {
	var r Vec3[T]
	onesCountLanes(r.e[:3], v.e[:3])
	return r
}

// SwapBytes3 reverses the byte order within each lane.
func SwapBytes3[T Integers](v Vec3[T]) Vec3[T] {
	var r Vec3[T]
	swapBytesLanes(r.e[:3], v.e[:3])
	return r
}

// BitMask3 materializes a mask as integer lanes: all-ones where true (-1 for
// signed elements, the maximum value for unsigned), zero elsewhere.
func BitMask3[T Integers](m Mask3) Vec3[T] {
	var r Vec3[T]
	bitMaskLanes(r.e[:3], m[:])
	return r
}

// SaturatedAdd3 adds lanewise, clamping to the element range instead of
// wrapping.
func SaturatedAdd3[T Integers](a, b Vec3[T]) Vec3[T] {
	var r Vec3[T]
	satAddLanes(r.e[:3], a.e[:3], b.e[:3])
	return r
}

// SaturatedSub3 subtracts lanewise, clamping to the element range instead of
// wrapping.
func SaturatedSub3[T Integers](a, b Vec3[T]) Vec3[T] {
	var r Vec3[T]
	satSubLanes(r.e[:3], a.e[:3], b.e[:3])
	return r
}

// Floating-point operations.

// Div3 returns the lanewise IEEE quotient. A zero divisor lane yields an
// infinity or NaN, never an error.
func Div3[T Floats](a, b Vec3[T]) Vec3[T] {
	var r Vec3[T]
	divFloatLanes(r.e[:3], a.e[:3], b.e[:3])
	return r
}

// Sqrt3 returns the lanewise IEEE square root; negative lanes yield NaN.
func Sqrt3[T Floats](v Vec3[T]) Vec3[T] {
	var r Vec3[T]
	sqrtLanes(r.e[:3], v.e[:3])
	return r
}

// MulAdd3 returns c + a*b computed with a single rounding step per lane.
func MulAdd3[T Floats](a, b, c Vec3[T]) Vec3[T] {
	var r Vec3[T]
	mulAddLanes(r.e[:3], a.e[:3], b.e[:3], c.e[:3])
	return r
}

// Round3 rounds every lane according to mode.
func Round3[T Floats](v Vec3[T], mode RoundingMode) Vec3[T] {
	var r Vec3[T]
	roundLanes(r.e[:3], v.e[:3], mode)
	return r
}

// Conversions.

// SaturatedConvert3 converts lanes with clamping: integer destinations clamp
// to their representable range and NaN maps to zero; float destinations use
// plain IEEE conversion. Padding in the source is ignored and the result's
// padding is zero.
func SaturatedConvert3[To, From Lanes](v Vec3[From]) Vec3[To] {
	var r Vec3[To]
	saturatedConvertLanes(r.e[:3], v.e[:3])
	return r
}

// TruncatedConvert3 converts lanes by raw bit truncation with wraparound.
// Float sources truncate toward zero first; NaN, infinities and values
// outside the int64 range map to zero.
func TruncatedConvert3[To Integers, From Lanes](v Vec3[From]) Vec3[To] {
	var r Vec3[To]
	truncatedConvertLanes(r.e[:3], v.e[:3])
	return r
}
