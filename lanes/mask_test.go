package lanes

import "testing"

func TestMaskAndOrNot(t *testing.T) {
	a := Mask4{true, true, false, false}
	b := Mask4{true, false, true, false}

	if got := a.And(b); got != (Mask4{true, false, false, false}) {
		t.Errorf("And: got %v", got)
	}
	if got := a.Or(b); got != (Mask4{true, true, true, false}) {
		t.Errorf("Or: got %v", got)
	}
	if got := a.Not(); got != (Mask4{false, false, true, true}) {
		t.Errorf("Not: got %v", got)
	}
}

func TestMaskQueries(t *testing.T) {
	m := Mask8{true, false, true, false, false, false, true, false}
	if m.All() {
		t.Error("All: true on a mixed mask")
	}
	if !m.Any() {
		t.Error("Any: false on a mixed mask")
	}
	if got := m.TrueCount(); got != 3 {
		t.Errorf("TrueCount: got %d, want 3", got)
	}

	var empty Mask8
	if empty.Any() {
		t.Error("Any: true on the zero mask")
	}
	if empty.TrueCount() != 0 {
		t.Error("TrueCount: nonzero on the zero mask")
	}

	full := Mask2{true, true}
	if !full.All() {
		t.Error("All: false on an all-true mask")
	}
}

func TestMaskLen(t *testing.T) {
	if (Mask3{}).Len() != 3 {
		t.Error("Mask3.Len != 3")
	}
	if (Mask64{}).Len() != 64 {
		t.Error("Mask64.Len != 64")
	}
}

func TestMaskString(t *testing.T) {
	m := Mask2{true, false}
	if got := m.String(); got != "Mask2(true, false)" {
		t.Errorf("String: got %q", got)
	}
}

func TestMaskDeMorgan(t *testing.T) {
	a := Mask4{true, false, true, false}
	b := Mask4{true, true, false, false}
	if a.And(b).Not() != a.Not().Or(b.Not()) {
		t.Error("^(a & b) != ^a | ^b")
	}
}
