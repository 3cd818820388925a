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
	"fmt"
	"strings"
)

// Boolean-lane masks, one per lane-count family. Masks are produced by
// comparisons and consumed by Merged and BitMask*; they carry no layout
// contract, so the 3-lane mask holds exactly 3 lanes with no padding.

func andBools(dst, a, b []bool) {
	for i := range dst {
		dst[i] = a[i] && b[i]
	}
}

func orBools(dst, a, b []bool) {
	for i := range dst {
		dst[i] = a[i] || b[i]
	}
}

func notBools(dst, a []bool) {
	for i := range dst {
		dst[i] = !a[i]
	}
}

func allBools(v []bool) bool {
	for _, b := range v {
		if !b {
			return false
		}
	}
	return true
}

func anyBools(v []bool) bool {
	for _, b := range v {
		if b {
			return true
		}
	}
	return false
}

func countBools(v []bool) int {
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}
	return n
}

func formatBools(name string, v []bool) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v[i])
	}
	sb.WriteByte(')')
	return sb.String()
}

// Mask2 is a 2-lane boolean mask.
type Mask2 [2]bool

// Len returns the number of lanes.
func (m Mask2) Len() int { return 2 }

// At returns lane i.
func (m Mask2) At(i int) bool { return m[i] }

// And returns the lanewise logical AND.
func (m Mask2) And(o Mask2) Mask2 {
	var r Mask2
	andBools(r[:], m[:], o[:])
	return r
}

// Or returns the lanewise logical OR.
func (m Mask2) Or(o Mask2) Mask2 {
	var r Mask2
	orBools(r[:], m[:], o[:])
	return r
}

// Not returns the lanewise logical complement.
func (m Mask2) Not() Mask2 {
	var r Mask2
	notBools(r[:], m[:])
	return r
}

// All reports whether every lane is true.
func (m Mask2) All() bool { return allBools(m[:]) }

// Any reports whether at least one lane is true.
func (m Mask2) Any() bool { return anyBools(m[:]) }

// TrueCount returns the number of true lanes.
func (m Mask2) TrueCount() int { return countBools(m[:]) }

func (m Mask2) String() string { return formatBools("Mask2", m[:]) }

// Mask3 is a 3-lane boolean mask.
type Mask3 [3]bool

// Len returns the number of lanes.
func (m Mask3) Len() int { return 3 }

// At returns lane i.
func (m Mask3) At(i int) bool { return m[i] }

// And returns the lanewise logical AND.
func (m Mask3) And(o Mask3) Mask3 {
	var r Mask3
	andBools(r[:], m[:], o[:])
	return r
}

// Or returns the lanewise logical OR.
func (m Mask3) Or(o Mask3) Mask3 {
	var r Mask3
	orBools(r[:], m[:], o[:])
	return r
}

// Not returns the lanewise logical complement.
func (m Mask3) Not() Mask3 {
	var r Mask3
	notBools(r[:], m[:])
	return r
}

// All reports whether every lane is true.
func (m Mask3) All() bool { return allBools(m[:]) }

// Any reports whether at least one lane is true.
func (m Mask3) Any() bool { return anyBools(m[:]) }

// TrueCount returns the number of true lanes.
func (m Mask3) TrueCount() int { return countBools(m[:]) }

func (m Mask3) String() string { return formatBools("Mask3", m[:]) }

// Mask4 is a 4-lane boolean mask.
type Mask4 [4]bool

// Len returns the number of lanes.
func (m Mask4) Len() int { return 4 }

// At returns lane i.
func (m Mask4) At(i int) bool { return m[i] }

// And returns the lanewise logical AND.
func (m Mask4) And(o Mask4) Mask4 {
	var r Mask4
	andBools(r[:], m[:], o[:])
	return r
}

// Or returns the lanewise logical OR.
func (m Mask4) Or(o Mask4) Mask4 {
	var r Mask4
	orBools(r[:], m[:], o[:])
	return r
}

// Not returns the lanewise logical complement.
func (m Mask4) Not() Mask4 {
	var r Mask4
	notBools(r[:], m[:])
	return r
}

// All reports whether every lane is true.
func (m Mask4) All() bool { return allBools(m[:]) }

// Any reports whether at least one lane is true.
func (m Mask4) Any() bool { return anyBools(m[:]) }

// TrueCount returns the number of true lanes.
func (m Mask4) TrueCount() int { return countBools(m[:]) }

func (m Mask4) String() string { return formatBools("Mask4", m[:]) }

// Mask8 is an 8-lane boolean mask.
type Mask8 [8]bool

// Len returns the number of lanes.
func (m Mask8) Len() int { return 8 }

// At returns lane i.
func (m Mask8) At(i int) bool { return m[i] }

// And returns the lanewise logical AND.
func (m Mask8) And(o Mask8) Mask8 {
	var r Mask8
	andBools(r[:], m[:], o[:])
	return r
}

// Or returns the lanewise logical OR.
func (m Mask8) Or(o Mask8) Mask8 {
	var r Mask8
	orBools(r[:], m[:], o[:])
	return r
}

// Not returns the lanewise logical complement.
func (m Mask8) Not() Mask8 {
	var r Mask8
	notBools(r[:], m[:])
	return r
}

// All reports whether every lane is true.
func (m Mask8) All() bool { return allBools(m[:]) }

// Any reports whether at least one lane is true.
func (m Mask8) Any() bool { return anyBools(m[:]) }

// TrueCount returns the number of true lanes.
func (m Mask8) TrueCount() int { return countBools(m[:]) }

func (m Mask8) String() string { return formatBools("Mask8", m[:]) }

// Mask16 is a 16-lane boolean mask.
type Mask16 [16]bool

// Len returns the number of lanes.
func (m Mask16) Len() int { return 16 }

// At returns lane i.
func (m Mask16) At(i int) bool { return m[i] }

// And returns the lanewise logical AND.
func (m Mask16) And(o Mask16) Mask16 {
	var r Mask16
	andBools(r[:], m[:], o[:])
	return r
}

// Or returns the lanewise logical OR.
func (m Mask16) Or(o Mask16) Mask16 {
	var r Mask16
	orBools(r[:], m[:], o[:])
	return r
}

// Not returns the lanewise logical complement.
func (m Mask16) Not() Mask16 {
	var r Mask16
	notBools(r[:], m[:])
	return r
}

// All reports whether every lane is true.
func (m Mask16) All() bool { return allBools(m[:]) }

// Any reports whether at least one lane is true.
func (m Mask16) Any() bool { return anyBools(m[:]) }

// TrueCount returns the number of true lanes.
func (m Mask16) TrueCount() int { return countBools(m[:]) }

func (m Mask16) String() string { return formatBools("Mask16", m[:]) }

// Mask32 is a 32-lane boolean mask.
type Mask32 [32]bool

// Len returns the number of lanes.
func (m Mask32) Len() int { return 32 }

// At returns lane i.
func (m Mask32) At(i int) bool { return m[i] }

// And returns the lanewise logical AND.
func (m Mask32) And(o Mask32) Mask32 {
	var r Mask32
	andBools(r[:], m[:], o[:])
	return r
}

// Or returns the lanewise logical OR.
func (m Mask32) Or(o Mask32) Mask32 {
	var r Mask32
	orBools(r[:], m[:], o[:])
	return r
}

// Not returns the lanewise logical complement.
func (m Mask32) Not() Mask32 {
	var r Mask32
	notBools(r[:], m[:])
	return r
}

// All reports whether every lane is true.
func (m Mask32) All() bool { return allBools(m[:]) }

// Any reports whether at least one lane is true.
func (m Mask32) Any() bool { return anyBools(m[:]) }

// TrueCount returns the number of true lanes.
func (m Mask32) TrueCount() int { return countBools(m[:]) }

func (m Mask32) String() string { return formatBools("Mask32", m[:]) }

// Mask64 is a 64-lane boolean mask.
type Mask64 [64]bool

// Len returns the number of lanes.
func (m Mask64) Len() int { return 64 }

// At returns lane i.
func (m Mask64) At(i int) bool { return m[i] }

// And returns the lanewise logical AND.
func (m Mask64) And(o Mask64) Mask64 {
	var r Mask64
	andBools(r[:], m[:], o[:])
	return r
}

// Or returns the lanewise logical OR.
func (m Mask64) Or(o Mask64) Mask64 {
	var r Mask64
	orBools(r[:], m[:], o[:])
	return r
}

// Not returns the lanewise logical complement.
func (m Mask64) Not() Mask64 {
	var r Mask64
	notBools(r[:], m[:])
	return r
}

// All reports whether every lane is true.
func (m Mask64) All() bool { return allBools(m[:]) }

// Any reports whether at least one lane is true.
func (m Mask64) Any() bool { return anyBools(m[:]) }

// TrueCount returns the number of true lanes.
func (m Mask64) TrueCount() int { return countBools(m[:]) }

func (m Mask64) String() string { return formatBools("Mask64", m[:]) }
