package lanes

import "testing"

var (
	sinkF32x16 Vec16[float32]
	sinkF32x4  Vec4[float32]
	sinkU8x16  Vec16[uint8]
	sinkU64    uint64
)

func BenchmarkAdd16(b *testing.B) {
	x := Splat16[float32](1.5)
	y := Splat16[float32](2.5)
	for i := 0; i < b.N; i++ {
		sinkF32x16 = x.Add(y)
	}
}

func BenchmarkMulAdd4(b *testing.B) {
	x := NewVec4[float32](1, 2, 3, 4)
	y := Splat4[float32](0.5)
	z := Splat4[float32](1)
	for i := 0; i < b.N; i++ {
		sinkF32x4 = MulAdd4(x, y, z)
	}
}

func BenchmarkGather16(b *testing.B) {
	src := make([]float32, 256)
	for i := range src {
		src[i] = float32(i)
	}
	var idx Vec16[int32]
	for i := range idx {
		idx[i] = int32(i * 7 % 256)
	}
	for i := 0; i < b.N; i++ {
		sinkF32x16 = Gather16(src, idx)
	}
}

func BenchmarkSaturatedConvert16(b *testing.B) {
	v := Splat16[int32](300)
	for i := 0; i < b.N; i++ {
		sinkU8x16 = SaturatedConvert16[uint8](v)
	}
}

func BenchmarkHash16(b *testing.B) {
	v := Splat16[uint8](0xAB)
	for i := 0; i < b.N; i++ {
		sinkU64 = v.Hash()
	}
}
