package include

import "path/filepath"

// Resolve finds each raw name against the search path, first existing
// match wins. Directories are tried in order and a name's iteration stops
// at the first directory whose join exists and is not a directory.
//
// When a name matches nowhere and allowMissing is set, a cleaned join
// against the first search path entry (conventionally the document's own
// directory) is emitted instead, even though it does not exist. Without
// allowMissing unmatched names contribute no entry. Output order follows
// the input order.
func Resolve(names, searchPath []string, allowMissing bool) []string {
	var targets []string
	for _, name := range names {
		found := false
		for _, dir := range searchPath {
			candidate := filepath.Clean(filepath.Join(dir, name))
			if isFile(candidate) {
				targets = append(targets, candidate)
				found = true
				break
			}
		}
		if !found && allowMissing {
			dir := ""
			if len(searchPath) > 0 {
				dir = searchPath[0]
			}
			targets = append(targets, filepath.Clean(filepath.Join(dir, name)))
		}
	}
	return targets
}
