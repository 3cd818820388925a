package lanes

import (
	"math"
	"testing"
)

func TestSaturatedConvertNarrowing(t *testing.T) {
	v := NewVec4[int16](300, -300, 100, -100)
	if got := SaturatedConvert4[int8](v); got != NewVec4[int8](127, -128, 100, -100) {
		t.Errorf("SaturatedConvert4[int8]: got %v", got)
	}
	if got := SaturatedConvert4[uint8](v); got != NewVec4[uint8](255, 0, 100, 0) {
		t.Errorf("SaturatedConvert4[uint8]: got %v", got)
	}
}

func TestSaturatedConvertSignChange(t *testing.T) {
	u := NewVec2[uint16](40000, 100)
	if got := SaturatedConvert2[int16](u); got != NewVec2[int16](32767, 100) {
		t.Errorf("SaturatedConvert2[int16]: got %v", got)
	}

	s := NewVec2[int16](-5, 300)
	if got := SaturatedConvert2[uint16](s); got != NewVec2[uint16](0, 300) {
		t.Errorf("SaturatedConvert2[uint16]: got %v", got)
	}
}

func TestSaturatedConvertFromFloat(t *testing.T) {
	v := NewVec4[float32](1e9, -1e9, 127.9, -0.5)
	if got := SaturatedConvert4[int8](v); got != NewVec4[int8](127, -128, 127, 0) {
		t.Errorf("SaturatedConvert4[int8]: got %v", got)
	}

	// In-range values truncate toward zero, like a scalar int conversion.
	w := NewVec2[float64](2.9, -2.9)
	if got := SaturatedConvert2[int32](w); got != NewVec2[int32](2, -2) {
		t.Errorf("SaturatedConvert2[int32]: got %v", got)
	}
}

func TestSaturatedConvertNaN(t *testing.T) {
	nan := math.NaN()
	v := NewVec4[float64](nan, 5, nan, -5)
	if got := SaturatedConvert4[int32](v); got != NewVec4[int32](0, 5, 0, -5) {
		t.Errorf("SaturatedConvert4[int32] with NaN: got %v", got)
	}
	if got := SaturatedConvert4[uint8](v); got != NewVec4[uint8](0, 5, 0, 0) {
		t.Errorf("SaturatedConvert4[uint8] with NaN: got %v", got)
	}
}

func TestSaturatedConvertInfinities(t *testing.T) {
	inf := math.Inf(1)
	v := NewVec2[float64](inf, -inf)
	if got := SaturatedConvert2[int16](v); got != NewVec2[int16](32767, -32768) {
		t.Errorf("SaturatedConvert2[int16] infinities: got %v", got)
	}
	if got := SaturatedConvert2[uint64](v); got != NewVec2[uint64](math.MaxUint64, 0) {
		t.Errorf("SaturatedConvert2[uint64] infinities: got %v", got)
	}
}

func TestSaturatedConvertExtremes64(t *testing.T) {
	// Values beyond every float64 mantissa still clamp exactly at the
	// integer type's bounds.
	v := NewVec2[float64](1e300, -1e300)
	if got := SaturatedConvert2[int64](v); got != NewVec2[int64](math.MaxInt64, math.MinInt64) {
		t.Errorf("SaturatedConvert2[int64]: got %v", got)
	}

	u := NewVec2[uint64](math.MaxUint64, 0)
	if got := SaturatedConvert2[int64](u); got != NewVec2[int64](math.MaxInt64, 0) {
		t.Errorf("SaturatedConvert2[int64] from uint64: got %v", got)
	}
}

func TestSaturatedConvertWidening(t *testing.T) {
	// Widening never clamps.
	v := NewVec4[int8](127, -128, 0, 1)
	if got := SaturatedConvert4[int32](v); got != NewVec4[int32](127, -128, 0, 1) {
		t.Errorf("SaturatedConvert4[int32]: got %v", got)
	}
}

func TestSaturatedConvertToFloat(t *testing.T) {
	// Float destinations take the plain IEEE conversion.
	v := NewVec2[int32](1 << 30, -3)
	if got := SaturatedConvert2[float64](v); got != NewVec2[float64](1<<30, -3) {
		t.Errorf("SaturatedConvert2[float64]: got %v", got)
	}

	// float64 -> float32 overflow follows IEEE and yields an infinity.
	f := NewVec2[float64](1e300, -1e300)
	g := SaturatedConvert2[float32](f)
	if !math.IsInf(float64(g.At(0)), 1) || !math.IsInf(float64(g.At(1)), -1) {
		t.Errorf("SaturatedConvert2[float32] overflow: got %v", g)
	}
}

func TestTruncatedConvert(t *testing.T) {
	v := NewVec4[int16](0x1234, -1, 256, 0x7FFF)
	if got := TruncatedConvert4[int8](v); got != NewVec4[int8](0x34, -1, 0, -1) {
		t.Errorf("TruncatedConvert4[int8]: got %v", got)
	}
	if got := TruncatedConvert4[uint8](v); got != NewVec4[uint8](0x34, 255, 0, 255) {
		t.Errorf("TruncatedConvert4[uint8]: got %v", got)
	}
}

func TestTruncatedConvertMatchesBitPattern(t *testing.T) {
	// Bit truncation means the result is exactly the source's low bits.
	src := []uint32{0, 1, 0xFF, 0x100, 0xDEADBEEF, 0xFFFFFFFF}
	for _, u := range src {
		v := Splat2(u)
		got := TruncatedConvert2[uint8](v)
		if want := uint8(u); got.At(0) != want {
			t.Errorf("TruncatedConvert2[uint8](%#x): got %v, want %v", u, got.At(0), want)
		}
	}
}

func TestTruncatedConvertFromFloat(t *testing.T) {
	// 300.7 truncates to 300, whose low byte is 44.
	v := NewVec4[float64](300.7, -1.5, 2.9, -300.7)
	if got := TruncatedConvert4[int8](v); got != NewVec4[int8](44, -1, 2, -44) {
		t.Errorf("TruncatedConvert4[int8]: got %v", got)
	}
}

func TestTruncatedConvertFloatSpecials(t *testing.T) {
	inf := math.Inf(1)
	v := NewVec4[float64](math.NaN(), inf, -inf, 1e300)
	if got := TruncatedConvert4[int32](v); got != Zero4[int32]() {
		t.Errorf("TruncatedConvert4[int32] specials: got %v, want all zero", got)
	}
}

func TestConvertKeepsLaneCount(t *testing.T) {
	v := Splat16[int32](1000)
	got := SaturatedConvert16[int8](v)
	if got.Len() != 16 {
		t.Fatalf("SaturatedConvert16: len %d", got.Len())
	}
	for i := 0; i < got.Len(); i++ {
		if got.At(i) != 127 {
			t.Errorf("SaturatedConvert16: lane %d: got %v, want 127", i, got.At(i))
		}
	}
}
