package store

import (
	"os"
	"path/filepath"
)

const dataDirName = "data"

// The executable usually runs from a build output folder while the data
// folder lives at the project root, so discovery walks up a bounded number
// of ancestors.
const maxAncestorHops = 5

// FindDataFile looks for data/<name> in dir and up to five ancestor
// directories. The first existing file wins. The boolean reports whether a
// file was found.
func FindDataFile(dir, name string) (string, bool) {
	current := dir

	for i := 0; i <= maxAncestorHops; i++ {
		candidate := filepath.Join(current, dataDirName, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", false
}
