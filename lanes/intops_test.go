package lanes

import (
	"errors"
	"math"
	"testing"
)

func TestBitwise(t *testing.T) {
	a := NewVec4[uint8](0b1100, 0b1010, 0xFF, 0)
	b := NewVec4[uint8](0b1010, 0b1010, 0x0F, 0)

	if got := And4(a, b); got != NewVec4[uint8](0b1000, 0b1010, 0x0F, 0) {
		t.Errorf("And4: got %v", got)
	}
	if got := Or4(a, b); got != NewVec4[uint8](0b1110, 0b1010, 0xFF, 0) {
		t.Errorf("Or4: got %v", got)
	}
	if got := Xor4(a, b); got != NewVec4[uint8](0b0110, 0, 0xF0, 0) {
		t.Errorf("Xor4: got %v", got)
	}
	if got := Not4(NewVec4[uint8](0, 0xFF, 0x0F, 0xF0)); got != NewVec4[uint8](0xFF, 0, 0xF0, 0x0F) {
		t.Errorf("Not4: got %v", got)
	}
	if got := AndNot4(a, b); got != NewVec4[uint8](0b0010, 0, 0, 0) {
		t.Errorf("AndNot4: got %v", got)
	}
}

func TestShiftCountMasking(t *testing.T) {
	// Counts wrap at the element bit width: shifting an int8 by 33 shifts
	// by 33 & 7 == 1.
	v := Splat2[int8](7)
	r := ShiftLeft2(v, Splat2[int8](33))
	for i := 0; i < r.Len(); i++ {
		if r.At(i) != 14 {
			t.Errorf("ShiftLeft2 by 33: lane %d: got %v, want 14", i, r.At(i))
		}
	}

	// A shift by exactly the bit width is a shift by zero.
	u := Splat2[uint16](0xABCD)
	if got := ShiftLeft2(u, Splat2[uint16](16)); got != u {
		t.Errorf("ShiftLeft2 by 16: got %v, want %v", got, u)
	}
}

func TestShiftMaskingProperty(t *testing.T) {
	for _, k := range []int64{0, 1, 7, 31, 32, 33, 64, 100} {
		v := NewVec2[int32](0x12345678, -7)
		direct := ShiftLeft2(v, Splat2[int32](int32(k)))
		reduced := ShiftLeft2(v, Splat2[int32](int32(k%32)))
		if direct != reduced {
			t.Errorf("shift by %d differs from shift by %d", k, k%32)
		}
	}
}

func TestShiftNegativeCount(t *testing.T) {
	// A count of -1 contributes its bit pattern, shifting by bitWidth-1.
	v := Splat2[uint8](1)
	r := ShiftLeft2(v, NewVec2[uint8](255, 255))
	for i := 0; i < r.Len(); i++ {
		if r.At(i) != 128 {
			t.Errorf("ShiftLeft2 by 255: lane %d: got %v, want 128", i, r.At(i))
		}
	}
}

func TestShiftRightSignedness(t *testing.T) {
	s := Splat2[int8](-8)
	if got := ShiftRight2(s, Splat2[int8](1)); got != Splat2[int8](-4) {
		t.Errorf("arithmetic shift: got %v, want all -4", got)
	}

	u := Splat2[uint8](0x80)
	if got := ShiftRight2(u, Splat2[uint8](1)); got != Splat2[uint8](0x40) {
		t.Errorf("logical shift: got %v, want all 0x40", got)
	}
}

func TestShiftAll(t *testing.T) {
	v := NewVec4[uint16](1, 2, 3, 4)
	if got := ShiftLeftAll4(v, 2); got != NewVec4[uint16](4, 8, 12, 16) {
		t.Errorf("ShiftLeftAll4: got %v", got)
	}
	if got := ShiftRightAll4(v, 1); got != NewVec4[uint16](0, 1, 1, 2) {
		t.Errorf("ShiftRightAll4: got %v", got)
	}
	// The uniform count masks like the lanewise one.
	if got := ShiftLeftAll4(v, 16); got != v {
		t.Errorf("ShiftLeftAll4 by 16: got %v, want %v", got, v)
	}
}

func TestQuo(t *testing.T) {
	a := NewVec4[int32](7, -7, 9, 1)
	b := NewVec4[int32](2, 2, -3, 1)
	r, err := Quo4(a, b)
	if err != nil {
		t.Fatalf("Quo4: unexpected error %v", err)
	}
	if r != NewVec4[int32](3, -3, -3, 1) {
		t.Errorf("Quo4: got %v", r)
	}
}

func TestQuoByZero(t *testing.T) {
	a := Splat4[int32](1)
	b := NewVec4[int32](1, 0, 1, 1)
	if _, err := Quo4(a, b); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Quo4 with zero lane: got %v, want ErrDivisionByZero", err)
	}
	if _, err := Rem4(a, b); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Rem4 with zero lane: got %v, want ErrDivisionByZero", err)
	}
}

func TestQuoMinByMinusOne(t *testing.T) {
	// The one overflowing quotient wraps back to the minimum value.
	a := Splat2[int32](math.MinInt32)
	r, err := Quo2(a, Splat2[int32](-1))
	if err != nil {
		t.Fatalf("Quo2: unexpected error %v", err)
	}
	for i := 0; i < r.Len(); i++ {
		if r.At(i) != math.MinInt32 {
			t.Errorf("Quo2 MinInt32/-1: lane %d: got %v, want MinInt32", i, r.At(i))
		}
	}
}

func TestRem(t *testing.T) {
	a := NewVec4[int32](7, -7, 9, 4)
	b := NewVec4[int32](2, 2, -3, 4)
	r, err := Rem4(a, b)
	if err != nil {
		t.Fatalf("Rem4: unexpected error %v", err)
	}
	// The remainder takes the dividend's sign.
	if r != NewVec4[int32](1, -1, 0, 0) {
		t.Errorf("Rem4: got %v", r)
	}
}

func TestLeadingTrailingZeros(t *testing.T) {
	v := NewVec4[uint8](0, 1, 0x80, 0x10)
	if got := LeadingZeros4(v); got != NewVec4[uint8](8, 7, 0, 3) {
		t.Errorf("LeadingZeros4: got %v", got)
	}
	if got := TrailingZeros4(v); got != NewVec4[uint8](8, 0, 7, 4) {
		t.Errorf("TrailingZeros4: got %v", got)
	}

	// Signed lanes count on the two's-complement pattern.
	s := NewVec2[int16](-1, 256)
	if got := LeadingZeros2(s); got != NewVec2[int16](0, 7) {
		t.Errorf("LeadingZeros2: got %v", got)
	}
	if got := TrailingZeros2(s); got != NewVec2[int16](0, 8) {
		t.Errorf("TrailingZeros2: got %v", got)
	}
}

func TestOnesCount(t *testing.T) {
	v := NewVec4[uint8](0, 0xFF, 0b1010, 1)
	if got := OnesCount4(v); got != NewVec4[uint8](0, 8, 2, 1) {
		t.Errorf("OnesCount4: got %v", got)
	}
	s := Splat2[int8](-1)
	if got := OnesCount2(s); got != Splat2[int8](8) {
		t.Errorf("OnesCount2: got %v", got)
	}
}

func TestSwapBytes(t *testing.T) {
	v := NewVec2[uint32](0x01020304, 0xAABBCCDD)
	if got := SwapBytes2(v); got != NewVec2[uint32](0x04030201, 0xDDCCBBAA) {
		t.Errorf("SwapBytes2: got %v", got)
	}
	// 8-bit lanes are their own byte swap.
	b := NewVec4[uint8](1, 2, 3, 4)
	if got := SwapBytes4(b); got != b {
		t.Errorf("SwapBytes4 on bytes: got %v", got)
	}
	s := Splat2[int16](0x0102)
	if got := SwapBytes2(s); got != Splat2[int16](0x0201) {
		t.Errorf("SwapBytes2 int16: got %v", got)
	}
}

func TestBitMask(t *testing.T) {
	m := Mask2{true, false}
	if got := BitMask2[int32](m); got != NewVec2[int32](-1, 0) {
		t.Errorf("BitMask2[int32]: got %v", got)
	}
	if got := BitMask2[uint8](m); got != NewVec2[uint8](255, 0) {
		t.Errorf("BitMask2[uint8]: got %v", got)
	}
}

func TestSaturatedAdd(t *testing.T) {
	a := NewVec4[int8](120, -120, 10, 0)
	b := NewVec4[int8](10, -10, 10, 0)
	if got := SaturatedAdd4(a, b); got != NewVec4[int8](127, -128, 20, 0) {
		t.Errorf("SaturatedAdd4: got %v", got)
	}

	u := NewVec2[uint8](250, 10)
	if got := SaturatedAdd2(u, Splat2[uint8](10)); got != NewVec2[uint8](255, 20) {
		t.Errorf("SaturatedAdd2: got %v", got)
	}
}

func TestSaturatedSub(t *testing.T) {
	a := NewVec4[int8](-120, 120, 10, 0)
	b := NewVec4[int8](10, -10, 10, 0)
	if got := SaturatedSub4(a, b); got != NewVec4[int8](-128, 127, 0, 0) {
		t.Errorf("SaturatedSub4: got %v", got)
	}

	u := NewVec2[uint8](5, 10)
	if got := SaturatedSub2(u, Splat2[uint8](10)); got != NewVec2[uint8](0, 0) {
		t.Errorf("SaturatedSub2: got %v", got)
	}
}
