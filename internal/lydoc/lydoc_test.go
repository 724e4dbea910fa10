package lydoc_test

import (
	"overture/internal/document"
	"overture/internal/lydoc"
	"testing"
)

func TestRangeIncludeArgs(t *testing.T) {
	text := `\version "2.24.0"
\include "parts/violin.ly"
\include "parts/cello.ly"
{ c'4 }
`
	doc := document.NewTextDocument("/proj/main.ly", text)
	info := lydoc.Info(doc, nil)

	args := info.Range(0, len(text)).IncludeArgs()
	if len(args) != 2 {
		t.Fatalf("expected 2 include args, got %d: %v", len(args), args)
	}
	if args[0] != "parts/violin.ly" || args[1] != "parts/cello.ly" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestRangeRestrictsToOffsets(t *testing.T) {
	text := `\include "a.ly"
\include "b.ly"
`
	doc := document.NewTextDocument("", text)
	info := lydoc.Info(doc, nil)

	// Only the second line.
	block := doc.Block(1)
	args := info.Range(block.Position, block.Position+block.Length()).IncludeArgs()
	if len(args) != 1 || args[0] != "b.ly" {
		t.Errorf("expected [b.ly], got %v", args)
	}
}

func TestRangeClampsOffsets(t *testing.T) {
	doc := document.NewTextDocument("", `\include "a.ly"`)
	info := lydoc.Info(doc, nil)

	// A caret block range extends one character past the text end.
	args := info.Range(0, len(doc.Text())+1).IncludeArgs()
	if len(args) != 1 {
		t.Errorf("expected 1 arg for clamped range, got %v", args)
	}
	if got := info.Range(-3, 1000).IncludeArgs(); len(got) != 1 {
		t.Errorf("expected 1 arg for out-of-bounds range, got %v", got)
	}
}

func TestRangeSchemeLoadArgs(t *testing.T) {
	text := `#(load "helpers.scm")
#(load-extension "native.so")
`
	doc := document.NewTextDocument("", text)
	info := lydoc.Info(doc, nil)

	r := info.Range(0, len(text))
	if args := r.IncludeArgs(); len(args) != 0 {
		t.Errorf("expected no include args, got %v", args)
	}
	args := r.SchemeLoadArgs()
	if len(args) != 2 || args[0] != "helpers.scm" || args[1] != "native.so" {
		t.Errorf("unexpected scheme load args: %v", args)
	}
}

func TestVariables(t *testing.T) {
	text := `% -*- include-path: /usr/share/lilypond:../common;
\version "2.24.0"
{ c'4 }
`
	doc := document.NewTextDocument("", text)

	vars := lydoc.Variables(doc)
	if got := vars["include-path"]; got != "/usr/share/lilypond:../common" {
		t.Errorf("unexpected include-path value: %q", got)
	}

	roots := lydoc.IncludePath(vars)
	if len(roots) != 2 || roots[0] != "/usr/share/lilypond" || roots[1] != "../common" {
		t.Errorf("unexpected roots: %v", roots)
	}
}

func TestVariablesOnlyInLeadingAndTrailingLines(t *testing.T) {
	lines := `{ c'4 }` + "\n"
	var text string
	for i := 0; i < 6; i++ {
		text += lines
	}
	text += `% -*- include-path: /hidden;` + "\n"
	for i := 0; i < 6; i++ {
		text += lines
	}
	doc := document.NewTextDocument("", text)

	if vars := lydoc.Variables(doc); vars["include-path"] != "" {
		t.Errorf("variable in the middle of the document should be ignored, got %q", vars["include-path"])
	}
}

func TestIncludePathMergesExtraRoots(t *testing.T) {
	text := `% -*- include-path: /doc/roots;
`
	doc := document.NewTextDocument("", text)
	info := lydoc.Info(doc, []string{"/workspace/lib"})

	path := info.IncludePath()
	if len(path) != 2 || path[0] != "/doc/roots" || path[1] != "/workspace/lib" {
		t.Errorf("unexpected include path: %v", path)
	}
}
