// Package lydoc is the directive lexer for LilyPond documents. It
// extracts \include and scheme-load arguments from text ranges and reads
// the document's include path from its document variables.
package lydoc

import (
	"regexp"

	"overture/internal/document"
	"overture/internal/include"
)

var (
	includeRe    = regexp.MustCompile(`\\include\s*"([^"]*)"`)
	schemeLoadRe = regexp.MustCompile(`#\(\s*load(?:-extension)?\s+"([^"]*)"`)
)

// DocInfo implements include.DocInfo for one document snapshot.
type DocInfo struct {
	doc        document.Document
	extraRoots []string
}

// Info returns directive information for the document. extraRoots are
// include roots configured outside the document (workspace settings);
// they rank after the roots declared in the document's variables.
func Info(doc document.Document, extraRoots []string) *DocInfo {
	return &DocInfo{doc: doc, extraRoots: extraRoots}
}

func (d *DocInfo) Range(start, end int) include.RangeInfo {
	text := d.doc.Text()
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}
	segment := text[start:end]

	return rangeInfo{
		includeArgs:    captures(includeRe, segment),
		schemeLoadArgs: captures(schemeLoadRe, segment),
	}
}

func (d *DocInfo) IncludePath() []string {
	path := IncludePath(Variables(d.doc))
	return append(path, d.extraRoots...)
}

type rangeInfo struct {
	includeArgs    []string
	schemeLoadArgs []string
}

func (r rangeInfo) IncludeArgs() []string {
	return r.includeArgs
}

func (r rangeInfo) SchemeLoadArgs() []string {
	return r.schemeLoadArgs
}

func captures(re *regexp.Regexp, text string) []string {
	var args []string
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		args = append(args, match[1])
	}
	return args
}
