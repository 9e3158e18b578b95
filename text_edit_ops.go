package gui

import (
	"strings"
	"unicode/utf8"
)

// Editing helpers. Every index here counts Unicode scalar values, never
// bytes: a cursor of 2 in "é🙂z" sits before 'z'.

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

// byteOffset converts a character index to a byte offset into s, clamping
// past-the-end indices to len(s).
func byteOffset(s string, charIdx int) int {
	if charIdx <= 0 {
		return 0
	}
	i := 0
	for off := range s {
		if i == charIdx {
			return off
		}
		i++
	}
	return len(s)
}

func clampCursor(cursor, n int) int {
	return min(max(cursor, 0), n)
}

// insertText inserts s at the cursor and moves the cursor past it.
func insertText(cursor *int, text *string, s string) {
	off := byteOffset(*text, *cursor)
	*text = (*text)[:off] + s + (*text)[off:]
	*cursor += charCount(s)
}

// deleteLeft removes the character before the cursor.
func deleteLeft(cursor *int, text *string) {
	if *cursor <= 0 {
		return
	}
	start := byteOffset(*text, *cursor-1)
	end := byteOffset(*text, *cursor)
	*text = (*text)[:start] + (*text)[end:]
	*cursor--
}

// deleteRight removes the character after the cursor, if any.
func deleteRight(cursor int, text *string) {
	start := byteOffset(*text, cursor)
	if start >= len(*text) {
		return
	}
	_, size := utf8.DecodeRuneInString((*text)[start:])
	*text = (*text)[:start] + (*text)[start+size:]
}

// onKeyPress applies a navigation or editing key. It reports whether the
// text changed.
func onKeyPress(cursor *int, text *string, key Key) bool {
	switch key {
	case KeyBackspace:
		if *cursor > 0 {
			deleteLeft(cursor, text)
			return true
		}
	case KeyDelete:
		before := len(*text)
		deleteRight(*cursor, text)
		return len(*text) != before
	case KeyHome:
		line, _ := lineColFromCharIdx(*text, *cursor)
		*cursor = charIdxFromLineCol(*text, line, 0)
	case KeyEnd:
		line, _ := lineColFromCharIdx(*text, *cursor)
		*cursor = charIdxFromLineCol(*text, line, charCount(lineFromNumber(*text, line)))
	case KeyLeft:
		if *cursor > 0 {
			*cursor--
		}
	case KeyRight:
		*cursor = min(*cursor+1, charCount(*text))
	case KeyUp:
		line, col := lineColFromCharIdx(*text, *cursor)
		*cursor = charIdxFromLineCol(*text, max(line-1, 0), col)
	case KeyDown:
		line, col := lineColFromCharIdx(*text, *cursor)
		*cursor = charIdxFromLineCol(*text, line+1, col)
	}
	return false
}

// editResult summarizes one pass over the frame's events.
type editResult struct {
	cursor int

	// mutated is set when the text changed and needs a new layout.
	mutated bool

	// copied holds the text of the last Copy or Cut, if hasCopy is set.
	copied  string
	hasCopy bool

	// surrendered is set when Enter (single-line) or Escape ended editing.
	// No event after the terminating one was looked at.
	surrendered bool
}

// interpretEvents applies events to text starting at cursor, which must
// already be within [0, charCount(*text)].
func interpretEvents(text *string, cursor int, events []Event, multiline bool) editResult {
	res := editResult{cursor: cursor}

loop:
	for _, ev := range events {
		switch ev.Kind {
		case EventCopy, EventCut:
			// Cut copies without deleting; there is no selection to remove.
			res.copied = *text
			res.hasCopy = true
		case EventText:
			if ev.Text == "\n" || ev.Text == "\r" {
				continue
			}
			s := ev.Text
			if !multiline {
				// Pasted text must not smuggle line breaks into a single line.
				s = lineBreaks.Replace(s)
			}
			if s == "" {
				continue
			}
			insertText(&res.cursor, text, s)
			res.mutated = true
		case EventKey:
			if !ev.Pressed {
				continue
			}
			switch ev.Key {
			case KeyEnter:
				if !multiline {
					res.surrendered = true
					break loop
				}
				insertText(&res.cursor, text, "\n")
				res.mutated = true
			case KeyEscape:
				res.surrendered = true
				break loop
			default:
				if onKeyPress(&res.cursor, text, ev.Key) {
					res.mutated = true
				}
			}
		}
	}
	return res
}

// lineColFromCharIdx returns the line number and column of a character
// index. Lines are separated by '\n' only. Indices past the end map to the
// end of the last line.
func lineColFromCharIdx(s string, charIdx int) (line, col int) {
	count := 0
	lastLine, lastWidth := 0, 0
	for nr, text := range strings.Split(s, "\n") {
		width := charCount(text)
		if charIdx <= count+width {
			return nr, max(charIdx-count, 0)
		}
		count += width + 1
		lastLine, lastWidth = nr, width
	}
	return lastLine, lastWidth
}

// charIdxFromLineCol is the inverse of lineColFromCharIdx. The column is
// clamped to the line's width; a line past the end maps to the end of text.
func charIdxFromLineCol(s string, line, col int) int {
	count := 0
	for nr, text := range strings.Split(s, "\n") {
		width := charCount(text)
		if nr == line {
			return count + min(max(col, 0), width)
		}
		count += width + 1
	}
	return count - 1
}

// lineFromNumber returns the text of line nr, or "" when out of range.
func lineFromNumber(s string, nr int) string {
	lines := strings.Split(s, "\n")
	if nr < 0 || nr >= len(lines) {
		return ""
	}
	return lines[nr]
}
