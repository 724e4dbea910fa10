package workspace

import (
	"sync"
	"unicode/utf8"

	"overture/internal/document"
)

// Position is an LSP-style (line, character) position.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is a half-open position range.
type Range struct {
	Start Position
	End   Position
}

// Change is one content change. A nil Range replaces the whole document.
type Change struct {
	Range   *Range
	NewText string
}

// Document is an open, mutable document in the workspace.
type Document struct {
	path    string
	content string
	mu      sync.RWMutex
}

// NewDocument creates an open document with the given content.
func NewDocument(path, content string) *Document {
	return &Document{path: path, content: content}
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) Content() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

// ApplyChanges applies the changes in order.
func (d *Document) ApplyChanges(changes []Change) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, change := range changes {
		if change.Range == nil {
			d.content = change.NewText
			continue
		}

		start := d.offsetFor(change.Range.Start)
		end := d.offsetFor(change.Range.End)
		if end < start {
			start, end = end, start
		}
		d.content = d.content[:start] + change.NewText + d.content[end:]
	}
}

// Snapshot returns an immutable view of the document for resolution.
func (d *Document) Snapshot() *document.TextDocument {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return document.NewTextDocument(d.path, d.content)
}

// offsetFor converts a position to a byte offset, clamped to the content.
// The character component counts UTF-16 code units, as on the wire.
// Must be called with the lock held.
func (d *Document) offsetFor(pos Position) int {
	offset := 0
	var line uint32

	for offset < len(d.content) && line < pos.Line {
		if d.content[offset] == '\n' {
			line++
		}
		offset++
	}

	units := int(pos.Character)
	for units > 0 && offset < len(d.content) && d.content[offset] != '\n' {
		r, size := utf8.DecodeRuneInString(d.content[offset:])
		offset += size
		units -= utf16RuneLen(r)
	}
	return offset
}

// utf16RuneLen is utf16.RuneLen for valid runes; the standard library
// function only exists from Go 1.23.
func utf16RuneLen(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
