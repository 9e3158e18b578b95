package gui

import "testing"

func TestKbFocus_RequestIsIdempotent(t *testing.T) {
	m := NewMemory(nil)
	a := IDFrom("a")

	m.RequestKbFocus(a)
	m.RequestKbFocus(a)
	if !m.HasKbFocus(a) || m.KbFocusID() != a {
		t.Fatalf("expected %v focused, got %v", a, m.KbFocusID())
	}
	if !m.HasAnyKbFocus() {
		t.Error("HasAnyKbFocus should be true")
	}
}

func TestKbFocus_AtMostOneHolder(t *testing.T) {
	m := NewMemory(nil)
	a, b := IDFrom("a"), IDFrom("b")

	m.RequestKbFocus(a)
	m.RequestKbFocus(b)
	if m.HasKbFocus(a) {
		t.Error("requesting focus for b should take it from a")
	}
	if !m.HasKbFocus(b) {
		t.Error("b should hold focus")
	}
}

func TestKbFocus_SurrenderOnlyByHolder(t *testing.T) {
	m := NewMemory(nil)
	a, b := IDFrom("a"), IDFrom("b")

	m.RequestKbFocus(a)
	m.SurrenderKbFocus(b)
	if !m.HasKbFocus(a) {
		t.Error("surrender by a non-holder must not change focus")
	}

	m.SurrenderKbFocus(a)
	m.SurrenderKbFocus(a)
	if m.HasAnyKbFocus() {
		t.Errorf("expected no focus, got %v", m.KbFocusID())
	}
}

func TestKbFocus_ZeroIDNeverFocused(t *testing.T) {
	m := NewMemory(nil)
	if m.HasKbFocus(0) {
		t.Error("zero ID reported as focused with no holder")
	}
	m.SurrenderKbFocus(0)
	if m.HasAnyKbFocus() {
		t.Error("surrendering zero ID changed focus")
	}
}

func TestKbFocus_LostSinceFrameStart(t *testing.T) {
	m := NewMemory(nil)
	a, b := IDFrom("a"), IDFrom("b")

	m.RequestKbFocus(a)
	m.beginFrame()
	if m.LostKbFocus(a) {
		t.Error("a still holds focus")
	}

	m.RequestKbFocus(b)
	if !m.LostKbFocus(a) {
		t.Error("a lost focus during the frame")
	}
	if m.LostKbFocus(b) {
		t.Error("b gained focus, it did not lose it")
	}

	m.beginFrame()
	if m.LostKbFocus(a) {
		t.Error("loss is only reported within the frame it happened")
	}
}
