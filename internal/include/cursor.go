package include

import (
	"strings"

	"overture/internal/document"
)

// ReferencesAtCursor extracts the raw filenames referenced at the cursor
// or selection. The scan range is the start of the block containing the
// selection start up to the selection end; a caret-only cursor scans its
// whole block plus the implicit line terminator. The lexer's \include
// arguments win over scheme-load arguments. When the lexer finds nothing
// in a non-empty single-line selection, the selected text itself is taken
// as the one reference.
func ReferencesAtCursor(info DocInfo, doc document.Document, sel document.Selection) []string {
	start := doc.BlockAt(sel.Start).Position
	end := sel.End
	if sel.IsEmpty() {
		block := doc.BlockAt(sel.Start)
		end = block.Position + block.Length()
	}

	r := info.Range(start, end)
	names := r.IncludeArgs()
	if len(names) == 0 {
		names = r.SchemeLoadArgs()
	}
	if len(names) == 0 && !sel.IsEmpty() {
		text := doc.Text()[sel.Start:sel.End]
		if !strings.Contains(strings.TrimSpace(text), "\n") {
			names = []string{text}
		}
	}
	return names
}

// FilenamesAtCursor resolves the references at the cursor against the
// document's search path. With existing set only paths that exist on disk
// are returned; otherwise unresolved names yield a best-effort path
// synthesized against the document's directory.
func FilenamesAtCursor(info DocInfo, doc document.Document, sel document.Selection, existing bool) []string {
	names := ReferencesAtCursor(info, doc, sel)
	if len(names) == 0 {
		return nil
	}
	path := NewSearchPath(doc.Path(), info.IncludePath())
	return Resolve(names, path, !existing)
}
