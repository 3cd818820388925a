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

import (
	"os"
	"strconv"
)

// Lane semantics are identical on every platform; detection only informs the
// choice of a profitable shape. Code that picks Vec16[float32] on an AVX-512
// machine and Vec4[float32] elsewhere computes the same lanes either way.

// DispatchLevel identifies the widest vector instruction set detected at
// startup.
type DispatchLevel int

const (
	// DispatchScalar indicates no detected vector unit.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit vectors (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit vectors.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit vectors.
	DispatchAVX512

	// DispatchNEON indicates 128-bit ARM vectors.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the vector instruction set detected for this runtime.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// NativeVectorBytes returns the native vector register width in bytes:
// 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512. Scalar fallbacks report 16
// so width-driven loops still pick a valid shape.
func NativeVectorBytes() int {
	return currentWidth
}

// NativeLanes returns how many T lanes fit in one native vector register.
func NativeLanes[T Lanes]() int {
	return currentWidth * 8 / laneBitWidth[T]()
}

// widthOverride honors the LANES_VECTOR_BYTES environment variable, useful
// for pinning benchmark shapes. Only the real register widths are accepted.
func widthOverride() (int, bool) {
	s := os.Getenv("LANES_VECTOR_BYTES")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || (n != 16 && n != 32 && n != 64) {
		return 0, false
	}
	return n, true
}

func setLevel(level DispatchLevel, width int) {
	if w, ok := widthOverride(); ok {
		width = w
	}
	currentLevel = level
	currentWidth = width
}
