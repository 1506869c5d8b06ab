package cssvars

import "path/filepath"

// DefaultPaths lists the candidate stylesheets in precedence order (later wins).
var DefaultPaths = []string{
	filepath.Join("assets", "css", "_variables.css"),
	filepath.Join("css", "_variables.css"),
}

// ResolvePaths joins relative candidates onto root. An empty root leaves
// them relative to the working directory.
func ResolvePaths(root string, paths []string) []string {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		if root == "" || filepath.IsAbs(p) {
			resolved = append(resolved, p)
			continue
		}
		resolved = append(resolved, filepath.Join(root, p))
	}
	return resolved
}
