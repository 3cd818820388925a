package lanes

import (
	"testing"
	"unsafe"
)

func TestLayoutsTable(t *testing.T) {
	if len(Layouts) != 53 {
		t.Fatalf("Layouts: %d entries, want 53", len(Layouts))
	}
	seen := map[string]bool{}
	for _, l := range Layouts {
		if seen[l.Name] {
			t.Errorf("%s: duplicate entry", l.Name)
		}
		seen[l.Name] = true

		if l.Bytes != l.PhysLanes*l.ElemBytes {
			t.Errorf("%s: Bytes %d != PhysLanes*ElemBytes %d", l.Name, l.Bytes, l.PhysLanes*l.ElemBytes)
		}
		if l.Lanes == 3 {
			if l.PhysLanes != 4 {
				t.Errorf("%s: 3-lane shape has PhysLanes %d", l.Name, l.PhysLanes)
			}
		} else {
			if l.PhysLanes != l.Lanes {
				t.Errorf("%s: PhysLanes %d != Lanes %d", l.Name, l.PhysLanes, l.Lanes)
			}
			if l.Bytes > 64 {
				t.Errorf("%s: %d bytes exceeds the widest register", l.Name, l.Bytes)
			}
		}
	}
}

func TestLayoutsMatchTypes(t *testing.T) {
	sizes := map[string]uintptr{
		"Float32x2":  unsafe.Sizeof(Float32x2{}),
		"Float32x3":  unsafe.Sizeof(Float32x3{}),
		"Float32x16": unsafe.Sizeof(Float32x16{}),
		"Float64x3":  unsafe.Sizeof(Float64x3{}),
		"Float64x8":  unsafe.Sizeof(Float64x8{}),
		"Int8x64":    unsafe.Sizeof(Int8x64{}),
		"Int16x32":   unsafe.Sizeof(Int16x32{}),
		"Uint32x16":  unsafe.Sizeof(Uint32x16{}),
		"Uint64x8":   unsafe.Sizeof(Uint64x8{}),
		"Int64x3":    unsafe.Sizeof(Int64x3{}),
	}
	for _, l := range Layouts {
		want, ok := sizes[l.Name]
		if !ok {
			continue
		}
		if uintptr(l.Bytes) != want {
			t.Errorf("%s: table says %d bytes, type is %d", l.Name, l.Bytes, want)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	v := NewVec4[int32](1, -2, 3, -4)
	raw := AppendBytes4(nil, v)
	if len(raw) != 16 {
		t.Fatalf("AppendBytes4: %d bytes, want 16", len(raw))
	}
	back, err := Vec4FromBytes[int32](raw)
	if err != nil {
		t.Fatalf("Vec4FromBytes: %v", err)
	}
	if back != v {
		t.Errorf("round trip: got %v, want %v", back, v)
	}
}

func TestBytesAppends(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}
	raw := AppendBytes2(prefix, NewVec2[uint16](1, 2))
	if len(raw) != 6 {
		t.Fatalf("AppendBytes2: %d bytes, want 6", len(raw))
	}
	if raw[0] != 0xAA || raw[1] != 0xBB {
		t.Error("AppendBytes2 clobbered the prefix")
	}
}

func TestFromBytesLengthMismatch(t *testing.T) {
	if _, err := Vec4FromBytes[int32](make([]byte, 15)); err != ErrLengthMismatch {
		t.Errorf("short input: got %v, want ErrLengthMismatch", err)
	}
	if _, err := Vec4FromBytes[int32](make([]byte, 17)); err != ErrLengthMismatch {
		t.Errorf("long input: got %v, want ErrLengthMismatch", err)
	}
	// Vec3 marshals 4 physical lanes, so 12 bytes is the wrong size.
	if _, err := Vec3FromBytes[float32](make([]byte, 12)); err != ErrLengthMismatch {
		t.Errorf("Vec3 12 bytes: got %v, want ErrLengthMismatch", err)
	}
}

func TestBytesFloatBitPatterns(t *testing.T) {
	// The byte image preserves exact bit patterns, NaN payloads included.
	v := NewVec2[float64](0, 0)
	raw := AppendBytes2(nil, v)
	nanBits := []byte{1, 0, 0, 0, 0, 0, 0xF8, 0x7F} // little-endian quiet NaN with payload 1
	copy(raw[8:], nanBits)
	back, err := Vec2FromBytes[float64](raw)
	if err != nil {
		t.Fatalf("Vec2FromBytes: %v", err)
	}
	out := AppendBytes2(nil, back)
	for i, b := range nanBits {
		if out[8+i] != b {
			t.Fatalf("NaN payload byte %d changed: got %#x, want %#x", i, out[8+i], b)
		}
	}
}
