package include

import (
	"path/filepath"

	"overture/internal/document"
)

// InvalidInclude marks a tooltip entry whose references resolve to no
// existing file.
const InvalidInclude = "This is an invalid include file"

// includeMarker is the literal searched for during a full-document scan.
const includeMarker = `\include`

// TooltipEntry is the scan result for one block containing an include
// directive: the block number and either a resolved path or the
// InvalidInclude marker.
type TooltipEntry struct {
	Block   int
	Content string
}

// ScanTooltips scans the whole document for include directives and
// resolves each occurrence, producing one entry per directive block.
// At most one occurrence per block is processed; the search resumes past
// the block's end. Blocks where the lexer extracts no arguments are
// skipped silently.
//
// Resolution here differs from Resolve: every (name, directory)
// combination is probed and the last existing match wins, so a block with
// several references keeps only the final successful resolution.
func ScanTooltips(info DocInfo, doc document.Document) []TooltipEntry {
	path := NewSearchPath(doc.Path(), info.IncludePath())

	var entries []TooltipEntry
	next := 0
	for {
		idx := doc.Find(includeMarker, next)
		if idx < 0 {
			break
		}
		block := doc.BlockAt(idx)
		head := block.Position
		tail := head + block.Length()
		next = tail

		r := info.Range(head, tail)
		names := r.IncludeArgs()
		if len(names) == 0 {
			names = r.SchemeLoadArgs()
		}
		if len(names) == 0 {
			continue
		}

		entry := TooltipEntry{Block: block.Number, Content: InvalidInclude}
		for _, name := range names {
			for _, dir := range path {
				candidate := filepath.Clean(filepath.Join(dir, name))
				if isFile(candidate) {
					entry.Content = candidate
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
