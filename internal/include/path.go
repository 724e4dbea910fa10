package include

import (
	"os"
	"path/filepath"
)

// NewSearchPath builds the ordered list of directories consulted when
// resolving a reference: the document's own directory first (omitted when
// the document has no location), then the given include roots in order.
// No existence checking happens here; the roots need not exist.
func NewSearchPath(documentPath string, roots []string) []string {
	var path []string
	if documentPath != "" {
		path = append(path, filepath.Dir(documentPath))
	}
	return append(path, roots...)
}

// isFile reports whether path exists and is not a directory.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
