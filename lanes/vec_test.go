package lanes

import (
	"math"
	"testing"
)

func TestNewVec4(t *testing.T) {
	v := NewVec4[float32](1, 2, 3, 4)
	want := []float32{1, 2, 3, 4}
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != want[i] {
			t.Errorf("NewVec4: lane %d: got %v, want %v", i, v.At(i), want[i])
		}
	}
}

func TestSplat(t *testing.T) {
	v := Splat8[int16](42)
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != 42 {
			t.Errorf("Splat8: lane %d: got %v, want 42", i, v.At(i))
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero16[int32]()
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != 0 {
			t.Errorf("Zero16: lane %d: got %v, want 0", i, v.At(i))
		}
	}
}

func TestVecFromSlice(t *testing.T) {
	v, err := Vec4FromSlice([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Vec4FromSlice: unexpected error %v", err)
	}
	if v != NewVec4[float64](1, 2, 3, 4) {
		t.Errorf("Vec4FromSlice: got %v", v)
	}

	if _, err := Vec4FromSlice([]float64{1, 2, 3}); err != ErrLengthMismatch {
		t.Errorf("Vec4FromSlice short: got %v, want ErrLengthMismatch", err)
	}
	if _, err := Vec4FromSlice([]float64{1, 2, 3, 4, 5}); err != ErrLengthMismatch {
		t.Errorf("Vec4FromSlice long: got %v, want ErrLengthMismatch", err)
	}
}

func TestAtPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At(4) on a 4-lane vector did not panic")
		}
	}()
	v := NewVec4[int32](1, 2, 3, 4)
	_ = v.At(4)
}

func TestSetAt(t *testing.T) {
	v := Zero4[int32]()
	v.SetAt(2, 7)
	if v != NewVec4[int32](0, 0, 7, 0) {
		t.Errorf("SetAt: got %v", v)
	}
}

func TestSliceAndStore(t *testing.T) {
	v := NewVec4[int8](1, 2, 3, 4)
	s := v.Slice()
	if len(s) != 4 {
		t.Fatalf("Slice: len %d, want 4", len(s))
	}
	s[0] = 99 // must not alias the vector
	if v.At(0) != 1 {
		t.Error("Slice aliases the vector storage")
	}

	dst := make([]int8, 6)
	v.Store(dst)
	for i := 0; i < 4; i++ {
		if dst[i] != v.At(i) {
			t.Errorf("Store: lane %d: got %v, want %v", i, dst[i], v.At(i))
		}
	}
	if dst[4] != 0 || dst[5] != 0 {
		t.Error("Store wrote past Len elements")
	}
}

func TestAdd(t *testing.T) {
	a := NewVec4[float32](1, 2, 3, 4)
	b := Splat4[float32](10)
	r := a.Add(b)
	for i := 0; i < r.Len(); i++ {
		if r.At(i) != a.At(i)+10 {
			t.Errorf("Add: lane %d: got %v, want %v", i, r.At(i), a.At(i)+10)
		}
	}
}

func TestAddWraps(t *testing.T) {
	a := Splat2[int8](127)
	r := a.Add(Splat2[int8](1))
	for i := 0; i < r.Len(); i++ {
		if r.At(i) != -128 {
			t.Errorf("Add overflow: lane %d: got %v, want -128", i, r.At(i))
		}
	}

	u := Splat2[uint8](255)
	ur := u.Add(Splat2[uint8](1))
	for i := 0; i < ur.Len(); i++ {
		if ur.At(i) != 0 {
			t.Errorf("Add overflow: lane %d: got %v, want 0", i, ur.At(i))
		}
	}
}

func TestSubRoundTrip(t *testing.T) {
	// Wrapping addition followed by wrapping subtraction restores the
	// original lanes, even through overflow.
	a := NewVec4[int8](127, -128, 55, -1)
	b := NewVec4[int8](100, -100, 90, 127)
	r := a.Add(b).Sub(b)
	if r != a {
		t.Errorf("Add/Sub round trip: got %v, want %v", r, a)
	}
}

func TestMulWraps(t *testing.T) {
	a := Splat2[uint8](16)
	r := a.Mul(a)
	for i := 0; i < r.Len(); i++ {
		if r.At(i) != 0 {
			t.Errorf("Mul overflow: lane %d: got %v, want 0", i, r.At(i))
		}
	}
}

func TestNeg(t *testing.T) {
	v := NewVec4[int32](1, -2, 0, -2147483648)
	r := v.Neg()
	want := NewVec4[int32](-1, 2, 0, -2147483648) // MinInt32 negates to itself
	if r != want {
		t.Errorf("Neg: got %v, want %v", r, want)
	}
}

func TestMinMax(t *testing.T) {
	a := NewVec4[int16](1, 9, -3, 7)
	b := NewVec4[int16](2, 8, -4, 7)
	if got := a.Min(b); got != NewVec4[int16](1, 8, -4, 7) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != NewVec4[int16](2, 9, -3, 7) {
		t.Errorf("Max: got %v", got)
	}
}

func TestClamp(t *testing.T) {
	v := NewVec4[float32](-5, 0.5, 2, 100)
	lo := Splat4[float32](0)
	hi := Splat4[float32](1)
	r := v.Clamp(lo, hi)
	want := NewVec4[float32](0, 0.5, 1, 1)
	if r != want {
		t.Errorf("Clamp: got %v, want %v", r, want)
	}

	// Clamping a clamped vector changes nothing.
	if r.Clamp(lo, hi) != r {
		t.Error("Clamp is not idempotent")
	}
}

func TestLess(t *testing.T) {
	a := NewVec4[float32](1, 2, 3, 4)
	m := a.Less(Splat4[float32](3))
	want := Mask4{true, true, false, false}
	if m != want {
		t.Errorf("Less: got %v, want %v", m, want)
	}
}

func TestCompareNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := NewVec2[float32](nan, 1)
	b := NewVec2[float32](1, nan)

	if m := a.Less(b); m != (Mask2{false, false}) {
		t.Errorf("Less with NaN: got %v, want all false", m)
	}
	if m := a.GreaterEq(b); m != (Mask2{false, false}) {
		t.Errorf("GreaterEq with NaN: got %v, want all false", m)
	}
	if m := a.Eq(a); m != (Mask2{false, true}) {
		t.Errorf("Eq with NaN: got %v, want (false, true)", m)
	}
	if m := a.Ne(a); m != (Mask2{true, false}) {
		t.Errorf("Ne with NaN: got %v, want (true, false)", m)
	}
}

func TestCompareOps(t *testing.T) {
	a := NewVec4[int32](1, 2, 3, 4)
	b := Splat4[int32](3)
	if m := a.LessEq(b); m != (Mask4{true, true, true, false}) {
		t.Errorf("LessEq: got %v", m)
	}
	if m := a.Greater(b); m != (Mask4{false, false, false, true}) {
		t.Errorf("Greater: got %v", m)
	}
	if m := a.GreaterEq(b); m != (Mask4{false, false, true, true}) {
		t.Errorf("GreaterEq: got %v", m)
	}
	if m := a.Eq(b); m != (Mask4{false, false, true, false}) {
		t.Errorf("Eq: got %v", m)
	}
	if m := a.Ne(b); m != (Mask4{true, true, false, true}) {
		t.Errorf("Ne: got %v", m)
	}
}

func TestMerged(t *testing.T) {
	a := NewVec4[float32](1, 2, 3, 4)
	b := Splat4[float32](3)
	r := a.Merged(b, a.Less(b))
	want := NewVec4[float32](3, 3, 3, 4)
	if r != want {
		t.Errorf("Merged: got %v, want %v", r, want)
	}
}

func TestMergeInPlace(t *testing.T) {
	v := NewVec4[int32](1, 2, 3, 4)
	v.Merge(Splat4[int32](0), Mask4{false, true, false, true})
	if v != NewVec4[int32](1, 0, 3, 0) {
		t.Errorf("Merge: got %v", v)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := NewVec4[int64](1, 2, 3, 4)
	b := NewVec4[int64](1, 2, 3, 4)
	c := NewVec4[int64](1, 2, 3, 5)

	if !a.Equal(b) {
		t.Error("Equal: identical vectors compare unequal")
	}
	if a.Equal(c) {
		t.Error("Equal: different vectors compare equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("Hash: equal vectors hash differently")
	}
	if a.Hash() == c.Hash() {
		t.Error("Hash: different vectors collide on adjacent values")
	}
}

func TestString(t *testing.T) {
	v := NewVec4[int32](1, 2, 3, 4)
	if got := v.String(); got != "Vec4(1, 2, 3, 4)" {
		t.Errorf("String: got %q", got)
	}
}

func TestNamedComponents(t *testing.T) {
	v := NewVec4[float32](1, 2, 3, 4)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 || v.W() != 4 {
		t.Errorf("components: got (%v, %v, %v, %v)", v.X(), v.Y(), v.Z(), v.W())
	}
	v.SetX(10)
	v.SetW(40)
	if v != NewVec4[float32](10, 2, 3, 40) {
		t.Errorf("SetX/SetW: got %v", v)
	}

	p := NewVec2[int32](7, 8)
	if p.X() != 7 || p.Y() != 8 {
		t.Errorf("Vec2 components: got (%v, %v)", p.X(), p.Y())
	}
}

func TestHalves(t *testing.T) {
	v := Vec8[int32]{0, 1, 2, 3, 4, 5, 6, 7}
	if v.Low() != NewVec4[int32](0, 1, 2, 3) {
		t.Errorf("Low: got %v", v.Low())
	}
	if v.High() != NewVec4[int32](4, 5, 6, 7) {
		t.Errorf("High: got %v", v.High())
	}
	if v.Even() != NewVec4[int32](0, 2, 4, 6) {
		t.Errorf("Even: got %v", v.Even())
	}
	if v.Odd() != NewVec4[int32](1, 3, 5, 7) {
		t.Errorf("Odd: got %v", v.Odd())
	}
}

func TestHalvesWide(t *testing.T) {
	var v Vec64[uint8]
	for i := range v {
		v[i] = uint8(i)
	}
	lo, hi := v.Low(), v.High()
	for i := 0; i < 32; i++ {
		if lo[i] != uint8(i) {
			t.Errorf("Low: lane %d: got %v, want %v", i, lo[i], i)
		}
		if hi[i] != uint8(i+32) {
			t.Errorf("High: lane %d: got %v, want %v", i, hi[i], i+32)
		}
	}
	ev, od := v.Even(), v.Odd()
	for i := 0; i < 32; i++ {
		if ev[i] != uint8(2*i) {
			t.Errorf("Even: lane %d: got %v, want %v", i, ev[i], 2*i)
		}
		if od[i] != uint8(2*i+1) {
			t.Errorf("Odd: lane %d: got %v, want %v", i, od[i], 2*i+1)
		}
	}
}
