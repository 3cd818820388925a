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

import "unsafe"

// Raw byte views of the physical vector layout, in host memory order. Every
// shape occupies exactly physical-lanes * element-size bytes with no gaps,
// so the byte image is the same thing an aligned register store would write.
// Vec3 marshals all 4 physical lanes; a round trip through bytes preserves
// the padding bits even though no lane operation can observe them.

// Layout describes the memory shape of one concrete vector type. Lanes is
// the logical count, PhysLanes the stored count; they differ only for the
// 3-lane shapes.
type Layout struct {
	Name      string
	Elem      string
	Lanes     int
	PhysLanes int
	ElemBytes int
	Bytes     int
}

func appendVecBytes[V any](dst []byte, v *V) []byte {
	return append(dst, unsafe.Slice((*byte)(unsafe.Pointer(v)), int(unsafe.Sizeof(*v)))...)
}

func vecFromBytes[V any](b []byte) (V, error) {
	var v V
	if len(b) != int(unsafe.Sizeof(v)) {
		return v, ErrLengthMismatch
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), int(unsafe.Sizeof(v))), b)
	return v, nil
}

// AppendBytes2 appends the raw byte image of v to dst.
func AppendBytes2[T Lanes](dst []byte, v Vec2[T]) []byte { return appendVecBytes(dst, &v) }

// AppendBytes3 appends the raw byte image of v, all 4 physical lanes, to dst.
func AppendBytes3[T Lanes](dst []byte, v Vec3[T]) []byte { return appendVecBytes(dst, &v) }

// AppendBytes4 appends the raw byte image of v to dst.
func AppendBytes4[T Lanes](dst []byte, v Vec4[T]) []byte { return appendVecBytes(dst, &v) }

// AppendBytes8 appends the raw byte image of v to dst.
func AppendBytes8[T Lanes](dst []byte, v Vec8[T]) []byte { return appendVecBytes(dst, &v) }

// AppendBytes16 appends the raw byte image of v to dst.
func AppendBytes16[T Lanes](dst []byte, v Vec16[T]) []byte { return appendVecBytes(dst, &v) }

// AppendBytes32 appends the raw byte image of v to dst.
func AppendBytes32[T Lanes](dst []byte, v Vec32[T]) []byte { return appendVecBytes(dst, &v) }

// AppendBytes64 appends the raw byte image of v to dst.
func AppendBytes64[T Lanes](dst []byte, v Vec64[T]) []byte { return appendVecBytes(dst, &v) }

// Vec2FromBytes rebuilds a vector from its raw byte image. It returns
// ErrLengthMismatch unless len(b) is exactly the physical byte size.
func Vec2FromBytes[T Lanes](b []byte) (Vec2[T], error) { return vecFromBytes[Vec2[T]](b) }

// Vec3FromBytes rebuilds a vector from its 4-physical-lane byte image. The
// padding lane's bytes are restored verbatim and stay unobservable.
func Vec3FromBytes[T Lanes](b []byte) (Vec3[T], error) { return vecFromBytes[Vec3[T]](b) }

// Vec4FromBytes rebuilds a vector from its raw byte image.
func Vec4FromBytes[T Lanes](b []byte) (Vec4[T], error) { return vecFromBytes[Vec4[T]](b) }

// Vec8FromBytes rebuilds a vector from its raw byte image.
func Vec8FromBytes[T Lanes](b []byte) (Vec8[T], error) { return vecFromBytes[Vec8[T]](b) }

// Vec16FromBytes rebuilds a vector from its raw byte image.
func Vec16FromBytes[T Lanes](b []byte) (Vec16[T], error) { return vecFromBytes[Vec16[T]](b) }

// Vec32FromBytes rebuilds a vector from its raw byte image.
func Vec32FromBytes[T Lanes](b []byte) (Vec32[T], error) { return vecFromBytes[Vec32[T]](b) }

// Vec64FromBytes rebuilds a vector from its raw byte image.
func Vec64FromBytes[T Lanes](b []byte) (Vec64[T], error) { return vecFromBytes[Vec64[T]](b) }
