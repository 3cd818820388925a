package lanes

import (
	"math"
	"testing"
)

func TestDiv(t *testing.T) {
	a := NewVec4[float32](1, -1, 0, 6)
	b := NewVec4[float32](2, 4, 5, 3)
	if got := Div4(a, b); got != NewVec4[float32](0.5, -0.25, 0, 2) {
		t.Errorf("Div4: got %v", got)
	}
}

func TestDivByZero(t *testing.T) {
	// IEEE semantics: finite/0 is a signed infinity, 0/0 is NaN. No error.
	a := NewVec4[float32](1, -1, 0, 2)
	b := NewVec4[float32](0, 0, 0, 1)
	r := Div4(a, b)

	if !math.IsInf(float64(r.At(0)), 1) {
		t.Errorf("Div4 1/0: got %v, want +Inf", r.At(0))
	}
	if !math.IsInf(float64(r.At(1)), -1) {
		t.Errorf("Div4 -1/0: got %v, want -Inf", r.At(1))
	}
	if !math.IsNaN(float64(r.At(2))) {
		t.Errorf("Div4 0/0: got %v, want NaN", r.At(2))
	}
	if r.At(3) != 2 {
		t.Errorf("Div4 2/1: got %v, want 2", r.At(3))
	}
}

func TestSqrt(t *testing.T) {
	v := NewVec4[float64](4, 2, 0, -1)
	r := Sqrt4(v)
	if r.At(0) != 2 {
		t.Errorf("Sqrt4(4): got %v", r.At(0))
	}
	if r.At(1) != math.Sqrt2 {
		t.Errorf("Sqrt4(2): got %v", r.At(1))
	}
	if r.At(2) != 0 {
		t.Errorf("Sqrt4(0): got %v", r.At(2))
	}
	if !math.IsNaN(r.At(3)) {
		t.Errorf("Sqrt4(-1): got %v, want NaN", r.At(3))
	}
}

func TestMulAddFused(t *testing.T) {
	// Pick operands where the fused product needs more precision than a
	// separate multiply keeps: (1+2^-27)^2 - 1 in float64.
	x := 1 + math.Ldexp(1, -27)
	a := Splat2(x)
	c := Splat2(-1.0)

	fused := MulAdd2(a, a, c)
	want := math.FMA(x, x, -1)
	naive := x*x - 1
	if want == naive {
		t.Fatal("test operands do not distinguish fused from separate rounding")
	}
	for i := 0; i < fused.Len(); i++ {
		if fused.At(i) != want {
			t.Errorf("MulAdd2: lane %d: got %v, want %v", i, fused.At(i), want)
		}
	}
}

func TestMulAdd(t *testing.T) {
	a := NewVec4[float32](1, 2, 3, 4)
	b := Splat4[float32](10)
	c := NewVec4[float32](5, 5, 5, 5)
	if got := MulAdd4(a, b, c); got != NewVec4[float32](15, 25, 35, 45) {
		t.Errorf("MulAdd4: got %v", got)
	}
}

func TestRoundModes(t *testing.T) {
	v := NewVec8[float64](2.5, -2.5, 3.5, 2.4, -2.4, 2.6, -2.6, 0)

	cases := []struct {
		mode RoundingMode
		want Vec8[float64]
	}{
		{RoundToNearest, Vec8[float64]{3, -3, 4, 2, -2, 3, -3, 0}},
		{RoundToEven, Vec8[float64]{2, -2, 4, 2, -2, 3, -3, 0}},
		{RoundTowardZero, Vec8[float64]{2, -2, 3, 2, -2, 2, -2, 0}},
		{RoundUp, Vec8[float64]{3, -2, 4, 3, -2, 3, -2, 0}},
		{RoundDown, Vec8[float64]{2, -3, 3, 2, -3, 2, -3, 0}},
	}
	for _, tc := range cases {
		if got := Round8(v, tc.mode); got != tc.want {
			t.Errorf("Round8 %s: got %v, want %v", tc.mode, got, tc.want)
		}
	}
}

func TestRoundSpecials(t *testing.T) {
	inf := math.Inf(1)
	v := NewVec4[float64](inf, -inf, math.NaN(), 1e300)
	r := Round4(v, RoundToEven)
	if r.At(0) != inf || r.At(1) != -inf {
		t.Errorf("Round4 infinities: got %v, %v", r.At(0), r.At(1))
	}
	if !math.IsNaN(r.At(2)) {
		t.Errorf("Round4 NaN: got %v", r.At(2))
	}
	if r.At(3) != 1e300 {
		t.Errorf("Round4 big: got %v", r.At(3))
	}
}

func TestMinMaxFloats(t *testing.T) {
	a := NewVec2[float64](-0.5, 3)
	b := NewVec2[float64](0.5, 2)
	if got := a.Min(b); got != NewVec2[float64](-0.5, 2) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != NewVec2[float64](0.5, 3) {
		t.Errorf("Max: got %v", got)
	}
}
