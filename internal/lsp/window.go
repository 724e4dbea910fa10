package lsp

import (
	"overture/internal/browser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// clientWindow drives the editor client through window/showDocument,
// implementing the browser.MainWindow boundary.
type clientWindow struct {
	context *glsp.Context
}

func (w *clientWindow) OpenFile(path string) (browser.Handle, error) {
	takeFocus := false
	w.context.Notify("window/showDocument", protocol.ShowDocumentParams{
		URI:       pathToURI(path),
		TakeFocus: &takeFocus,
	})
	return path, nil
}

func (w *clientWindow) SetCurrentDocument(handle browser.Handle, focus bool) {
	path, ok := handle.(string)
	if !ok {
		return
	}
	w.context.Notify("window/showDocument", protocol.ShowDocumentParams{
		URI:       pathToURI(path),
		TakeFocus: &focus,
	})
}
