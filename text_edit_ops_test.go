package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInterpretEventsScenarios(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		cursor    int
		multiline bool
		events    []Event

		wantText        string
		wantCursor      int
		wantSurrendered bool
	}{
		{
			name:       "type into empty multi-line",
			text:       "",
			cursor:     0,
			multiline:  true,
			events:     []Event{TextEvent("ab"), TextEvent("c")},
			wantText:   "abc",
			wantCursor: 3,
		},
		{
			name:            "single-line enter terminates",
			text:            "hi",
			cursor:          2,
			events:          []Event{TextEvent("!"), KeyEvent(KeyEnter, true), TextEvent("X")},
			wantText:        "hi!",
			wantCursor:      3,
			wantSurrendered: true,
		},
		{
			name:       "backspace underflow is a no-op",
			text:       "a",
			cursor:     0,
			events:     []Event{KeyEvent(KeyBackspace, true)},
			wantText:   "a",
			wantCursor: 0,
		},
		{
			name:       "navigation with unicode",
			text:       "é🙂z",
			cursor:     0,
			events:     []Event{KeyEvent(KeyRight, true), KeyEvent(KeyRight, true), KeyEvent(KeyBackspace, true)},
			wantText:   "éz",
			wantCursor: 1,
		},
		{
			name:       "up across lines preserves column",
			text:       "abc\nde\nfghi",
			cursor:     10,
			multiline:  true,
			events:     []Event{KeyEvent(KeyUp, true)},
			wantText:   "abc\nde\nfghi",
			wantCursor: 6,
		},
		{
			name:       "up twice",
			text:       "abc\nde\nfghi",
			cursor:     10,
			multiline:  true,
			events:     []Event{KeyEvent(KeyUp, true), KeyEvent(KeyUp, true)},
			wantText:   "abc\nde\nfghi",
			wantCursor: 2,
		},
		{
			name:       "home on middle line",
			text:       "ab\ncdef\ngh",
			cursor:     5,
			multiline:  true,
			events:     []Event{KeyEvent(KeyHome, true)},
			wantText:   "ab\ncdef\ngh",
			wantCursor: 3,
		},
		{
			name:       "home then end on middle line",
			text:       "ab\ncdef\ngh",
			cursor:     5,
			multiline:  true,
			events:     []Event{KeyEvent(KeyHome, true), KeyEvent(KeyEnd, true)},
			wantText:   "ab\ncdef\ngh",
			wantCursor: 7,
		},
		{
			name:            "escape terminates",
			text:            "ab",
			cursor:          1,
			multiline:       true,
			events:          []Event{KeyEvent(KeyEscape, true), TextEvent("zzz")},
			wantText:        "ab",
			wantCursor:      1,
			wantSurrendered: true,
		},
		{
			name:       "enter inserts newline in multi-line",
			text:       "ab",
			cursor:     1,
			multiline:  true,
			events:     []Event{KeyEvent(KeyEnter, true)},
			wantText:   "a\nb",
			wantCursor: 2,
		},
		{
			name:       "newline text events are ignored",
			text:       "ab",
			cursor:     2,
			multiline:  true,
			events:     []Event{TextEvent("\n"), TextEvent("\r")},
			wantText:   "ab",
			wantCursor: 2,
		},
		{
			name:       "released keys are ignored",
			text:       "ab",
			cursor:     2,
			events:     []Event{KeyEvent(KeyBackspace, false), KeyEvent(KeyEnter, false)},
			wantText:   "ab",
			wantCursor: 2,
		},
		{
			name:       "delete removes the character after the cursor",
			text:       "a🙂b",
			cursor:     1,
			events:     []Event{KeyEvent(KeyDelete, true)},
			wantText:   "ab",
			wantCursor: 1,
		},
		{
			name:       "delete at end is a no-op",
			text:       "ab",
			cursor:     2,
			events:     []Event{KeyEvent(KeyDelete, true)},
			wantText:   "ab",
			wantCursor: 2,
		},
		{
			name:       "right saturates at end",
			text:       "ab",
			cursor:     2,
			events:     []Event{KeyEvent(KeyRight, true)},
			wantText:   "ab",
			wantCursor: 2,
		},
		{
			name:       "left saturates at start",
			text:       "ab",
			cursor:     0,
			events:     []Event{KeyEvent(KeyLeft, true)},
			wantText:   "ab",
			wantCursor: 0,
		},
		{
			name:       "up from first line stays on first line",
			text:       "abc\nde",
			cursor:     2,
			multiline:  true,
			events:     []Event{KeyEvent(KeyUp, true)},
			wantText:   "abc\nde",
			wantCursor: 2,
		},
		{
			name:       "down past last line clamps to end",
			text:       "abc\nde",
			cursor:     5,
			multiline:  true,
			events:     []Event{KeyEvent(KeyDown, true)},
			wantText:   "abc\nde",
			wantCursor: 6,
		},
		{
			name:       "down keeps column",
			text:       "abc\nde",
			cursor:     1,
			multiline:  true,
			events:     []Event{KeyEvent(KeyDown, true)},
			wantText:   "abc\nde",
			wantCursor: 5,
		},
		{
			name:       "pasted newlines become spaces in single-line",
			text:       "",
			cursor:     0,
			events:     []Event{TextEvent("a\nb\r\nc")},
			wantText:   "a b c",
			wantCursor: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.text
			res := interpretEvents(&text, tt.cursor, tt.events, tt.multiline)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if res.cursor != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", res.cursor, tt.wantCursor)
			}
			if res.surrendered != tt.wantSurrendered {
				t.Errorf("surrendered = %v, want %v", res.surrendered, tt.wantSurrendered)
			}
			if res.mutated != (text != tt.text) {
				t.Errorf("mutated = %v, but text changed = %v", res.mutated, text != tt.text)
			}
		})
	}
}

func TestInterpretEventsCopy(t *testing.T) {
	text := "héllo"
	res := interpretEvents(&text, 5, []Event{CutEvent()}, false)
	if !res.hasCopy || res.copied != "héllo" {
		t.Errorf("copied = %q (%v), want whole text", res.copied, res.hasCopy)
	}
	if text != "héllo" {
		t.Errorf("cut must not delete, text = %q", text)
	}

	text = "ab"
	res = interpretEvents(&text, 2, []Event{CopyEvent(), TextEvent("c"), CopyEvent()}, false)
	if res.copied != "abc" {
		t.Errorf("last copy wins: copied = %q, want %q", res.copied, "abc")
	}
}

func TestCursorStaysInRange(t *testing.T) {
	events := []Event{
		KeyEvent(KeyRight, true), KeyEvent(KeyRight, true), KeyEvent(KeyBackspace, true),
		KeyEvent(KeyDelete, true), KeyEvent(KeyEnd, true), KeyEvent(KeyDown, true),
		TextEvent("ü"), KeyEvent(KeyUp, true), KeyEvent(KeyHome, true),
		KeyEvent(KeyLeft, true), KeyEvent(KeyBackspace, true), KeyEvent(KeyEnter, true),
		KeyEvent(KeyDown, true), KeyEvent(KeyDelete, true), KeyEvent(KeyDelete, true),
	}
	for _, start := range []string{"", "a", "ab\ncd", "🙂\n\n日本語", "x\n"} {
		for cursor := 0; cursor <= charCount(start); cursor++ {
			text := start
			c := cursor
			for i, ev := range events {
				res := interpretEvents(&text, c, []Event{ev}, true)
				c = res.cursor
				if c < 0 || c > charCount(text) {
					t.Fatalf("%q from %d: after event %d (%v) cursor %d out of [0, %d]",
						start, cursor, i, ev, c, charCount(text))
				}
			}
		}
	}
}

func TestInsertText(t *testing.T) {
	text := "a🙂b"
	cursor := 2
	insertText(&cursor, &text, "日本")
	if text != "a🙂日本b" || cursor != 4 {
		t.Errorf("got %q cursor %d", text, cursor)
	}
	if got, want := charCount(text), 5; got != want {
		t.Errorf("charCount = %d, want %d", got, want)
	}
}

func TestBackspaceThenReinsertRestores(t *testing.T) {
	for _, start := range []string{"ab", "é🙂z", "x\ny"} {
		for cursor := 1; cursor <= charCount(start); cursor++ {
			text := start
			c := cursor
			removed := []rune(text)[c-1]
			deleteLeft(&c, &text)
			insertText(&c, &text, string(removed))
			if text != start || c != cursor {
				t.Errorf("%q at %d: got %q at %d", start, cursor, text, c)
			}
		}
	}
}

func TestLineColRoundTrip(t *testing.T) {
	texts := []string{"", "a", "abc\nde\nfghi", "\n", "\n\n", "é🙂\nz", "a\r\nb"}
	for _, s := range texts {
		n := charCount(s)
		for i := 0; i <= n+3; i++ {
			line, col := lineColFromCharIdx(s, i)
			got := charIdxFromLineCol(s, line, col)
			if want := min(i, n); got != want {
				t.Errorf("%q: round trip of %d gave %d (line %d col %d), want %d", s, i, got, line, col, want)
			}
		}
	}
}

func TestLineColFromCharIdx(t *testing.T) {
	type lc struct{ Line, Col int }
	s := "abc\nde\nfghi"
	var got []lc
	for i := 0; i <= charCount(s)+1; i++ {
		l, c := lineColFromCharIdx(s, i)
		got = append(got, lc{l, c})
	}
	want := []lc{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
		{2, 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lineColFromCharIdx mismatch (-want +got):\n%s", diff)
	}
}

func TestCharIdxFromLineColClamps(t *testing.T) {
	s := "abc\nde"
	if got := charIdxFromLineCol(s, 1, 99); got != 6 {
		t.Errorf("column clamp: got %d, want 6", got)
	}
	if got := charIdxFromLineCol(s, 5, 0); got != 6 {
		t.Errorf("line past end: got %d, want 6", got)
	}
	if got := lineFromNumber(s, 1); got != "de" {
		t.Errorf("lineFromNumber = %q", got)
	}
	if got := lineFromNumber(s, 2); got != "" {
		t.Errorf("lineFromNumber out of range = %q", got)
	}
}

func TestCaretVisible(t *testing.T) {
	tests := []struct {
		time float64
		hz   float32
		want bool
	}{
		{0, 0, true},
		{123.4, 0, true},
		{0, 1, false},
		{0.34, 1, true},
		{0.67, 1, true},
		{1.0, 1, false},
		{0.2, 2, true},
	}
	for _, tt := range tests {
		if got := caretVisible(tt.time, tt.hz); got != tt.want {
			t.Errorf("caretVisible(%v, %v) = %v, want %v", tt.time, tt.hz, got, tt.want)
		}
	}
}
