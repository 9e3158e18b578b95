package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/guitext"
)

func TestFrameStore(t *testing.T) {
	store := gui.NewFrameStore[gui.TextEditState](2)
	active, idle := gui.IDFrom("active"), gui.IDFrom("idle")

	store.Set(active, gui.TextEditState{Cursor: 3, HasCursor: true})
	store.Set(idle, gui.TextEditState{})

	for frame := uint64(1); frame <= 5; frame++ {
		if _, ok := store.Get(active); !ok {
			t.Fatalf("frame %d: active entry missing", frame)
		}
		store.Cleanup(frame)
	}

	st, ok := store.Get(active)
	if !ok || st.Cursor != 3 {
		t.Errorf("active entry = %+v (%v), want cursor 3", st, ok)
	}
	if _, ok := store.Get(idle); ok {
		t.Error("idle entry should have been dropped")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestFrameStoreKeepsEverythingWithoutLimit(t *testing.T) {
	store := gui.NewFrameStore[gui.TextEditState](0)
	store.Set(gui.IDFrom("x"), gui.TextEditState{})
	for frame := uint64(1); frame < 1000; frame += 100 {
		store.Cleanup(frame)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}

	store.Delete(gui.IDFrom("x"))
	if store.Len() != 0 {
		t.Errorf("Len after Delete = %d, want 0", store.Len())
	}
}

func TestMapStore(t *testing.T) {
	store := gui.NewMapStore[gui.TextEditState]()
	id := gui.IDFrom("x")

	if _, ok := store.Get(id); ok {
		t.Error("empty store reported an entry")
	}
	store.Set(id, gui.TextEditState{Cursor: 1, HasCursor: true})
	if st, ok := store.Get(id); !ok || st.CursorOr(9) != 1 {
		t.Errorf("Get = %+v, %v", st, ok)
	}
	if got := (gui.TextEditState{}).CursorOr(9); got != 9 {
		t.Errorf("unset CursorOr = %d, want 9", got)
	}
}
