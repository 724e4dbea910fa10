package browser_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"overture/internal/browser"
	"overture/internal/document"
	"overture/internal/lydoc"
)

// fakeWindow records the open and focus calls it receives.
type fakeWindow struct {
	opened  []string
	focused string
	failOn  string
}

func (w *fakeWindow) OpenFile(path string) (browser.Handle, error) {
	if path == w.failOn {
		return nil, fmt.Errorf("cannot open %s", path)
	}
	w.opened = append(w.opened, path)
	return path, nil
}

func (w *fakeWindow) SetCurrentDocument(handle browser.Handle, focus bool) {
	if focus {
		w.focused = handle.(string)
	}
}

func TestOpenTargets(t *testing.T) {
	win := &fakeWindow{}

	opened, err := browser.OpenTargets(win, []string{"/a.ly", "/b.ly"})
	if err != nil {
		t.Fatalf("OpenTargets failed: %v", err)
	}
	if !opened {
		t.Error("expected opened to be true")
	}
	if len(win.opened) != 2 {
		t.Fatalf("expected 2 opens, got %v", win.opened)
	}
	if win.focused != "/b.ly" {
		t.Errorf("expected focus on the last target, got %q", win.focused)
	}
}

func TestOpenTargetsEmpty(t *testing.T) {
	win := &fakeWindow{}

	opened, err := browser.OpenTargets(win, nil)
	if err != nil {
		t.Fatalf("OpenTargets failed: %v", err)
	}
	if opened {
		t.Error("expected opened to be false for no targets")
	}
	if win.focused != "" {
		t.Errorf("expected no focus change, got %q", win.focused)
	}
}

func TestOpenTargetsError(t *testing.T) {
	win := &fakeWindow{failOn: "/b.ly"}

	opened, err := browser.OpenTargets(win, []string{"/a.ly", "/b.ly"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !opened {
		t.Error("the first target was opened before the failure")
	}
}

func TestOpenFileAtCursor(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "parts", "violin.ly")
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(target, []byte("% violin\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	text := `\include "parts/violin.ly"` + "\n"
	doc := document.NewTextDocument(filepath.Join(root, "main.ly"), text)
	win := &fakeWindow{}

	opened, err := browser.OpenFileAtCursor(win, lydoc.Info(doc, nil), doc, document.Selection{Start: 3, End: 3})
	if err != nil {
		t.Fatalf("OpenFileAtCursor failed: %v", err)
	}
	if !opened {
		t.Error("expected the include target to be opened")
	}
	if win.focused != target {
		t.Errorf("expected focus on %s, got %q", target, win.focused)
	}
}
