package lydoc

import (
	"regexp"
	"strings"

	"overture/internal/document"
)

// Document variables live in comment lines of the form
//
//	% -*- key: value; other-key: value;
//
// within the first or last variableLines blocks of the document.
const variableLines = 5

var (
	variableLineRe = regexp.MustCompile(`-\*-\s*(.*)$`)
	variablePairRe = regexp.MustCompile(`([a-z][a-z\d-]*):\s*([^;]*)`)
)

// Variables reads the document variables. Later occurrences override
// earlier ones.
func Variables(doc document.Document) map[string]string {
	vars := make(map[string]string)
	blocks := doc.Blocks()

	for i, block := range blocks {
		if i >= variableLines && i < len(blocks)-variableLines {
			continue
		}
		line := variableLineRe.FindStringSubmatch(block.Text)
		if line == nil {
			continue
		}
		for _, pair := range variablePairRe.FindAllStringSubmatch(line[1], -1) {
			vars[pair[1]] = strings.TrimSpace(pair[2])
		}
	}
	return vars
}

// IncludePath returns the include roots declared in the include-path
// variable, split on ":" with empty segments dropped.
func IncludePath(vars map[string]string) []string {
	var roots []string
	for _, root := range strings.Split(vars["include-path"], ":") {
		root = strings.TrimSpace(root)
		if root != "" {
			roots = append(roots, root)
		}
	}
	return roots
}
