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

// Vector is the capability surface shared by every shape type. V is the
// shape itself, M its mask type and T the element type; Vec4[float32]
// satisfies Vector[Vec4[float32], Mask4, float32]. Only value methods appear
// here, so the mutating SetAt, Merge and Set* methods are outside the
// interface.
type Vector[V, M any, T Lanes] interface {
	Len() int
	At(i int) T
	Slice() []T
	Store(dst []T)
	Add(V) V
	Sub(V) V
	Mul(V) V
	Neg() V
	Min(V) V
	Max(V) V
	Clamp(lo, hi V) V
	Eq(V) M
	Ne(V) M
	Less(V) M
	LessEq(V) M
	Greater(V) M
	GreaterEq(V) M
	Merged(V, M) V
	Equal(V) bool
	Hash() uint64
	String() string
}

// Mask is the capability surface shared by every mask type.
type Mask[M any] interface {
	Len() int
	At(i int) bool
	And(M) M
	Or(M) M
	Not() M
	All() bool
	Any() bool
	TrueCount() int
	String() string
}

var (
	_ Vector[Vec2[float32], Mask2, float32] = Vec2[float32]{}
	_ Vector[Vec3[float64], Mask3, float64] = Vec3[float64]{}
	_ Vector[Vec4[int32], Mask4, int32]     = Vec4[int32]{}
	_ Vector[Vec8[uint16], Mask8, uint16]   = Vec8[uint16]{}
	_ Vector[Vec16[int8], Mask16, int8]     = Vec16[int8]{}
	_ Vector[Vec32[uint8], Mask32, uint8]   = Vec32[uint8]{}
	_ Vector[Vec64[int8], Mask64, int8]     = Vec64[int8]{}

	_ Mask[Mask2]  = Mask2{}
	_ Mask[Mask3]  = Mask3{}
	_ Mask[Mask4]  = Mask4{}
	_ Mask[Mask8]  = Mask8{}
	_ Mask[Mask16] = Mask16{}
	_ Mask[Mask32] = Mask32{}
	_ Mask[Mask64] = Mask64{}
)

// EqualAll reports whether a and b agree on every lane. It is the generic
// form of the per-shape Equal method, usable across any type carrying one.
func EqualAll[V interface{ Equal(V) bool }](a, b V) bool {
	return a.Equal(b)
}

// ReduceAdd sums the lanes of a vector's Slice. Integer sums wrap like the
// lanewise operations do.
func ReduceAdd[T Lanes](lanes []T) T {
	var s T
	for _, v := range lanes {
		s += v
	}
	return s
}

// ReduceMin returns the smallest lane. It panics on an empty slice, which no
// shape type produces.
func ReduceMin[T Lanes](lanes []T) T {
	m := lanes[0]
	for _, v := range lanes[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// ReduceMax returns the largest lane.
func ReduceMax[T Lanes](lanes []T) T {
	m := lanes[0]
	for _, v := range lanes[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
