package gui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// ID uniquely identifies a widget for state persistence and keyboard focus.
// IDs are stable across frames as long as the UI tree is stable.
type ID uint64

// IDFrom hashes any value into an ID.
// Values are hashed through their type and printed form, so two sources of
// different types never collide by accident ("1" vs 1).
func IDFrom(source any) ID {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T\x00%v", source, source)
	return ID(h.Sum64())
}

// With derives a child ID by hashing source together with the parent.
func (id ID) With(source any) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	fmt.Fprintf(h, "%T\x00%v", source, source)
	return ID(h.Sum64())
}

// String formats the ID as fixed-width hex.
func (id ID) String() string {
	return fmt.Sprintf("%016X", uint64(id))
}

// MakePersistentID derives an ID from source within this scope.
// The result only depends on the scope path and the source, so it survives
// layout changes.
func (ui *UI) MakePersistentID(source any) ID {
	return ui.id.With(source)
}

// MakePositionID derives an ID from where the next widget will be placed.
// Stable only while the layout above it is stable.
func (ui *UI) MakePositionID() ID {
	return ui.id.With(positionKey{X: ui.cursor.X, Y: ui.cursor.Y})
}

// positionKey keeps position-derived IDs apart from user sources that happen
// to print the same way.
type positionKey struct {
	X, Y float32
}
