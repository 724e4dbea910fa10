package lsp

import (
	"fmt"

	"overture/internal/browser"
	"overture/internal/document"
	"overture/internal/include"
	"overture/internal/lydoc"
	"overture/internal/scheduler"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const (
	commandOpenIncludes = "overture.openIncludes"
	commandIncludes     = "overture.includes"
	commandReindex      = "overture.reindex"
)

// snapshot returns an immutable view of the open document behind uri.
func (ls *Server) snapshot(uri protocol.DocumentUri) (*document.TextDocument, bool) {
	doc, ok := ls.docs.GetDocument(uriToPath(uri))
	if !ok {
		return nil, false
	}
	return doc.Snapshot(), true
}

func (ls *Server) textDocumentDefinition(
	context *glsp.Context,
	params *protocol.DefinitionParams,
) (any, error) {
	snap, ok := ls.snapshot(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	offset := offsetForPosition(snap, params.Position)
	sel := document.Selection{Start: offset, End: offset}
	targets := include.FilenamesAtCursor(lydoc.Info(snap, ls.includeRoots), snap, sel, true)
	if len(targets) == 0 {
		return nil, nil
	}

	locations := make([]protocol.Location, len(targets))
	for i, target := range targets {
		locations[i] = protocol.Location{URI: pathToURI(target)}
	}
	return locations, nil
}

func (ls *Server) textDocumentDocumentLink(
	context *glsp.Context,
	params *protocol.DocumentLinkParams,
) ([]protocol.DocumentLink, error) {
	snap, ok := ls.snapshot(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	entries := include.ScanTooltips(lydoc.Info(snap, ls.includeRoots), snap)
	links := make([]protocol.DocumentLink, 0, len(entries))
	for _, entry := range entries {
		tooltip := entry.Content
		link := protocol.DocumentLink{
			Range:   blockRange(snap, entry.Block),
			Tooltip: &tooltip,
		}
		if entry.Content != include.InvalidInclude {
			target := pathToURI(entry.Content)
			link.Target = &target
		}
		links = append(links, link)
	}
	return links, nil
}

// textDocumentReferences answers with the files whose includes resolve
// to the requested document, read from the include graph.
func (ls *Server) textDocumentReferences(
	context *glsp.Context,
	params *protocol.ReferenceParams,
) ([]protocol.Location, error) {
	if ls.indexer == nil {
		return nil, nil
	}

	sources, err := ls.indexer.Includers(uriToPath(params.TextDocument.URI))
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, nil
	}

	locations := make([]protocol.Location, len(sources))
	for i, source := range sources {
		locations[i] = protocol.Location{URI: pathToURI(source)}
	}
	return locations, nil
}

func (ls *Server) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	snap, ok := ls.snapshot(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	for _, entry := range include.ScanTooltips(lydoc.Info(snap, ls.includeRoots), snap) {
		if uint32(entry.Block) != params.Position.Line {
			continue
		}
		rng := blockRange(snap, entry.Block)
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindPlainText,
				Value: entry.Content,
			},
			Range: &rng,
		}, nil
	}
	return nil, nil
}

func (ls *Server) workspaceExecuteCommand(
	context *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	switch params.Command {
	case commandReindex:
		if ls.sched == nil {
			return nil, fmt.Errorf("no workspace root to index")
		}
		ls.sched.Schedule(scheduler.Task{Name: "reindex", Execute: ls.indexer.Index})
		return nil, nil

	case commandIncludes:
		return ls.listIncludes(params.Arguments)

	case commandOpenIncludes:
		return ls.openIncludes(context, params.Arguments)
	}
	return nil, fmt.Errorf("unknown command: %s", params.Command)
}

// listIncludes returns the include targets recorded for a file, as
// URIs. Arguments: [uri].
func (ls *Server) listIncludes(args []any) (any, error) {
	if ls.indexer == nil {
		return nil, fmt.Errorf("no workspace root to index")
	}
	if len(args) < 1 {
		return nil, fmt.Errorf("%s expects a uri argument", commandIncludes)
	}
	uri, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: uri argument must be a string", commandIncludes)
	}

	targets, err := ls.indexer.Includes(uriToPath(uri))
	if err != nil {
		return nil, err
	}
	uris := make([]string, len(targets))
	for i, target := range targets {
		uris[i] = pathToURI(target)
	}
	return uris, nil
}

// openIncludes opens the include target(s) at a cursor in the client,
// focusing the last one. Arguments: [uri, line, character].
func (ls *Server) openIncludes(context *glsp.Context, args []any) (any, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%s expects uri, line and character arguments", commandOpenIncludes)
	}
	uri, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: uri argument must be a string", commandOpenIncludes)
	}
	line, ok := args[1].(float64)
	if !ok {
		return nil, fmt.Errorf("%s: line argument must be a number", commandOpenIncludes)
	}
	character, ok := args[2].(float64)
	if !ok {
		return nil, fmt.Errorf("%s: character argument must be a number", commandOpenIncludes)
	}

	snap, ok := ls.snapshot(uri)
	if !ok {
		return nil, fmt.Errorf("document not open: %s", uri)
	}

	offset := offsetForPosition(snap, protocol.Position{
		Line:      uint32(line),
		Character: uint32(character),
	})
	sel := document.Selection{Start: offset, End: offset}

	win := &clientWindow{context: context}
	opened, err := browser.OpenFileAtCursor(win, lydoc.Info(snap, ls.includeRoots), snap, sel)
	if err != nil {
		return opened, err
	}
	return opened, nil
}
