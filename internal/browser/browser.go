// Package browser is the boundary to the owning application window: it
// opens resolved include targets and moves focus to the last one.
package browser

import (
	"fmt"

	"overture/internal/document"
	"overture/internal/include"
)

// Handle identifies a document opened by a MainWindow. It is opaque to
// this package.
type Handle any

// MainWindow is the host window collaborator.
type MainWindow interface {
	// OpenFile opens the file at path and returns its handle.
	OpenFile(path string) (Handle, error)

	// SetCurrentDocument brings the document into view in the window's
	// document browser, taking keyboard focus when focus is set.
	SetCurrentDocument(handle Handle, focus bool)
}

// OpenTargets opens all given files in order, giving focus to the last
// one. It reports whether one or more files were opened.
func OpenTargets(win MainWindow, targets []string) (bool, error) {
	var last Handle
	for _, target := range targets {
		handle, err := win.OpenFile(target)
		if err != nil {
			return last != nil, fmt.Errorf("failed to open %s: %w", target, err)
		}
		last = handle
	}
	if last == nil {
		return false, nil
	}
	win.SetCurrentDocument(last, true)
	return true, nil
}

// OpenFileAtCursor opens the existing file(s) referenced at the cursor.
func OpenFileAtCursor(win MainWindow, info include.DocInfo, doc document.Document, sel document.Selection) (bool, error) {
	return OpenTargets(win, include.FilenamesAtCursor(info, doc, sel, true))
}
