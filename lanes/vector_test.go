package lanes

import "testing"

// sumIfBelow is a shape-independent kernel written against the Vector and
// Mask interfaces: it sums the lanes of v that are strictly below the cap.
func sumIfBelow[V Vector[V, M, T], M Mask[M], T Lanes](v, limit, zero V) T {
	kept := zero.Merged(v, v.Less(limit))
	return ReduceAdd(kept.Slice())
}

func TestVectorInterfaceKernel(t *testing.T) {
	v := NewVec4[float32](1, 2, 3, 4)
	got := sumIfBelow[Vec4[float32], Mask4, float32](v, Splat4[float32](3), Zero4[float32]())
	if got != 3 {
		t.Errorf("sumIfBelow: got %v, want 3", got)
	}

	p := NewVec3[int32](5, 10, 20)
	got3 := sumIfBelow[Vec3[int32], Mask3, int32](p, Splat3[int32](15), Zero3[int32]())
	if got3 != 15 {
		t.Errorf("sumIfBelow Vec3: got %v, want 15", got3)
	}
}

func TestEqualAll(t *testing.T) {
	a := NewVec4[int32](1, 2, 3, 4)
	b := NewVec4[int32](1, 2, 3, 4)
	if !EqualAll(a, b) {
		t.Error("EqualAll: equal vectors reported unequal")
	}
	b.SetAt(0, 9)
	if EqualAll(a, b) {
		t.Error("EqualAll: different vectors reported equal")
	}
}

func TestReduceAdd(t *testing.T) {
	if got := ReduceAdd(NewVec4[int32](1, 2, 3, 4).Slice()); got != 10 {
		t.Errorf("ReduceAdd: got %v, want 10", got)
	}
	// Wraps like the lanewise operations.
	if got := ReduceAdd(Splat2[uint8](200).Slice()); got != 144 {
		t.Errorf("ReduceAdd wrap: got %v, want 144", got)
	}
	// Vec3 contributes exactly 3 lanes.
	if got := ReduceAdd(NewVec3[int32](1, 2, 3).Slice()); got != 6 {
		t.Errorf("ReduceAdd Vec3: got %v, want 6", got)
	}
}

func TestReduceMinMax(t *testing.T) {
	v := Vec8[int16]{3, -1, 7, 0, 5, -9, 2, 8}
	if got := ReduceMin(v.Slice()); got != -9 {
		t.Errorf("ReduceMin: got %v, want -9", got)
	}
	if got := ReduceMax(v.Slice()); got != 8 {
		t.Errorf("ReduceMax: got %v, want 8", got)
	}
}
