package lsp

import (
	"fmt"
	"path/filepath"

	"overture/internal/scheduler"
	"overture/internal/workspace"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	path := uriToPath(params.TextDocument.URI)
	if _, err := ls.docs.OpenDocument(path, params.TextDocument.Text); err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	return nil
}

func (ls *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	path := uriToPath(params.TextDocument.URI)
	doc, ok := ls.docs.GetDocument(path)
	if !ok {
		return fmt.Errorf("document not open: %s", path)
	}

	var changes []workspace.Change
	for _, change := range params.ContentChanges {
		switch contentChange := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, workspace.Change{NewText: contentChange.Text})

		case protocol.TextDocumentContentChangeEvent:
			if contentChange.Range == nil {
				changes = append(changes, workspace.Change{NewText: contentChange.Text})
				continue
			}
			changes = append(changes, workspace.Change{
				Range: &workspace.Range{
					Start: workspace.Position{
						Line:      contentChange.Range.Start.Line,
						Character: contentChange.Range.Start.Character,
					},
					End: workspace.Position{
						Line:      contentChange.Range.End.Line,
						Character: contentChange.Range.End.Character,
					},
				},
				NewText: contentChange.Text,
			})
		}
	}

	doc.ApplyChanges(changes)
	return nil
}

func (ls *Server) textDocumentDidSave(
	context *glsp.Context,
	params *protocol.DidSaveTextDocumentParams,
) error {
	if ls.sched == nil {
		return nil
	}

	path := uriToPath(params.TextDocument.URI)
	switch filepath.Ext(path) {
	case ".ly", ".ily":
	default:
		return nil
	}

	ls.sched.Schedule(scheduler.Task{
		Name: "reindex " + path,
		Execute: func() error {
			return ls.indexer.IndexFile(path)
		},
	})
	return nil
}

func (ls *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	path := uriToPath(params.TextDocument.URI)
	if err := ls.docs.CloseDocument(path); err != nil {
		return fmt.Errorf("failed to close document: %w", err)
	}
	return nil
}
