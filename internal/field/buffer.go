package field

import "unicode/utf8"

// Buffer is an in-memory Host for headless use
type Buffer struct {
	text   string
	cursor int
}

// NewBuffer creates an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Text returns the buffer content
func (b *Buffer) Text() string { return b.text }

// SetText replaces the content and keeps the cursor inside it
func (b *Buffer) SetText(text string) {
	b.text = text
	b.SetCursor(b.cursor)
}

// Cursor returns the rune offset of the cursor
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor, clamped into the text
func (b *Buffer) SetCursor(pos int) {
	n := utf8.RuneCountInString(b.text)
	switch {
	case pos < 0:
		pos = 0
	case pos > n:
		pos = n
	}
	b.cursor = pos
}
