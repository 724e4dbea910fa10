// Package index maintains the persistent include graph of a workspace:
// which files exist and which files they include, resolved against the
// workspace include roots. The graph is refreshed explicitly; per-call
// resolution never reads from it.
package index

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"overture/internal/document"
	"overture/internal/include"
	"overture/internal/index/database"
	"overture/internal/lydoc"
)

// Indexer scans a workspace root for LilyPond sources and records their
// resolved includes.
type Indexer struct {
	db    database.Database
	root  string
	roots []string
}

// NewIndexer creates an indexer over root. roots are the extra include
// roots used during resolution, in order.
func NewIndexer(db database.Database, root string, roots []string) *Indexer {
	return &Indexer{db: db, root: root, roots: roots}
}

// Index walks the workspace and refreshes the include graph for every
// file that changed since its recorded timestamp.
func (ix *Indexer) Index() error {
	paths, err := ix.findPaths()
	if err != nil {
		return err
	}

	for _, path := range paths {
		changed, err := ix.isChanged(path)
		if err != nil {
			return err
		}
		if !changed {
			continue
		}
		if err := ix.IndexFile(path); err != nil {
			return err
		}
	}
	return nil
}

// IndexFile refreshes the graph entry for one file.
func (ix *Indexer) IndexFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	targets := ix.resolveIncludes(path, string(content))

	err = ix.db.WithTx(func(tx database.Transaction) error {
		if err := tx.UpsertDocument(&database.DocumentRecord{
			Path:         path,
			LastModified: info.ModTime().Unix(),
		}); err != nil {
			return err
		}
		return tx.UpsertIncludes(path, targets)
	})
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", path, err)
	}
	return nil
}

// Includes returns the resolved include targets recorded for path.
func (ix *Indexer) Includes(path string) ([]string, error) {
	records, err := ix.db.GetIncludes(path)
	if err != nil {
		return nil, fmt.Errorf("failed to query includes: %w", err)
	}
	targets := make([]string, len(records))
	for i, record := range records {
		targets[i] = record.TargetPath
	}
	return targets, nil
}

// Includers returns the files whose includes resolve to path.
func (ix *Indexer) Includers(path string) ([]string, error) {
	records, err := ix.db.GetIncluders(path)
	if err != nil {
		return nil, fmt.Errorf("failed to query includers: %w", err)
	}
	sources := make([]string, len(records))
	for i, record := range records {
		sources[i] = record.SourcePath
	}
	return sources, nil
}

// resolveIncludes extracts and resolves every include and scheme-load
// reference of the file. Unresolvable references are left out.
func (ix *Indexer) resolveIncludes(path, content string) []string {
	doc := document.NewTextDocument(path, content)
	info := lydoc.Info(doc, ix.roots)

	r := info.Range(0, len(content))
	names := append(r.IncludeArgs(), r.SchemeLoadArgs()...)
	if len(names) == 0 {
		return nil
	}

	searchPath := include.NewSearchPath(path, info.IncludePath())
	return include.Resolve(names, searchPath, false)
}

// isChanged compares the file's mtime with the recorded timestamp.
func (ix *Indexer) isChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	record, err := ix.db.GetDocument(path)
	if err == database.ErrNotFound {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check document in db: %w", err)
	}

	return info.ModTime().Unix() > record.LastModified, nil
}

// findPaths walks the root for LilyPond sources.
func (ix *Indexer) findPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(ix.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".ly", ".ily":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", ix.root, err)
	}
	return paths, nil
}
