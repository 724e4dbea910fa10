package lsp

import (
	"log"
	"path/filepath"
	"time"

	"overture/internal/index"
	"overture/internal/index/database"
	"overture/internal/scheduler"
	"overture/internal/workspace"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "overture"

var version = "0.1.0"

// reindexInterval is how often the include graph is refreshed in the
// background.
const reindexInterval = 5 * time.Minute

type Server struct {
	handler *protocol.Handler
	docs    *workspace.Manager

	// set during initialize
	root         string
	includeRoots []string
	db           *database.SQLiteDB
	indexer      *index.Indexer
	sched        *scheduler.Scheduler
}

func NewServer() (*server.Server, error) {
	ls := &Server{
		docs: workspace.NewManager(),
	}

	ls.handler = &protocol.Handler{
		Initialize:               ls.initialize,
		Initialized:              ls.initialized,
		Shutdown:                 ls.shutdown,
		SetTrace:                 ls.setTrace,
		TextDocumentDidOpen:      ls.textDocumentDidOpen,
		TextDocumentDidChange:    ls.textDocumentDidChange,
		TextDocumentDidSave:      ls.textDocumentDidSave,
		TextDocumentDidClose:     ls.textDocumentDidClose,
		TextDocumentDefinition:   ls.textDocumentDefinition,
		TextDocumentReferences:   ls.textDocumentReferences,
		TextDocumentDocumentLink: ls.textDocumentDocumentLink,
		TextDocumentHover:        ls.textDocumentHover,
		WorkspaceExecuteCommand:  ls.workspaceExecuteCommand,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}

func (ls *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{commandOpenIncludes, commandIncludes, commandReindex},
	}

	if params.RootURI != nil {
		ls.root = uriToPath(*params.RootURI)
	}
	ls.includeRoots = includeRootsFromOptions(params.InitializationOptions)

	if ls.root != "" {
		db, err := database.NewSQLiteDB(filepath.Join(ls.root, ".overture.db"))
		if err != nil {
			// The server is still useful without the include graph.
			log.Printf("failed to open include graph database: %v", err)
		} else {
			ls.db = db
			ls.indexer = index.NewIndexer(db, ls.root, ls.includeRoots)
			ls.sched = scheduler.NewScheduler(16)
		}
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (ls *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Server initialized")

	if ls.sched != nil {
		ls.sched.Run()
		go ls.sched.RunPeriodic(reindexInterval, scheduler.Task{
			Name:    "reindex",
			Execute: ls.indexer.Index,
		})
	}
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	log.Println("Server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)

	if ls.sched != nil {
		ls.sched.Stop()
	}
	ls.docs.CloseAll()
	if ls.db != nil {
		if err := ls.db.Close(); err != nil {
			return err
		}
	}
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// includeRootsFromOptions reads {"includePath": ["dir", ...]} from the
// client's initializationOptions.
func includeRootsFromOptions(options any) []string {
	settings, ok := options.(map[string]any)
	if !ok {
		return nil
	}
	list, ok := settings["includePath"].([]any)
	if !ok {
		return nil
	}

	var roots []string
	for _, entry := range list {
		if root, ok := entry.(string); ok && root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}
