package build

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceExt is the on-disk extension for a source module file; PackageInit
// is the filename used for a package's own module when imported by its
// dotted path (the "pkg/sub.py vs pkg/sub/__init__.py" probe in spec.md
// §6, generalized to this language's own extension).
const (
	SourceExt   = ".src"
	PackageInit = "__init__" + SourceExt
)

// SearchPath is the ordered module search path described in spec.md §6:
// caller-provided extra directories, the program directory, MYPYPATH,
// bundled stubs, and a system fallback, probed in that order with
// first-match-wins semantics.
type SearchPath struct {
	dirs []string
}

// NewSearchPath assembles the search path in spec order. programDir is
// the directory containing the file passed on the command line; extra is
// any caller-supplied additional directories (e.g. from internal/config);
// stubsDir and systemDir are the bundled-stub and system-fallback
// locations. MYPYPATH is read from the environment and prepended to the
// stub paths, matching "Environment: MYPYPATH (list of directories,
// prepended to the stub paths)".
func NewSearchPath(extra []string, programDir, stubsDir, systemDir string) *SearchPath {
	var dirs []string
	dirs = append(dirs, extra...)
	if programDir != "" {
		dirs = append(dirs, programDir)
	}
	dirs = append(dirs, mypyPathDirs()...)
	if stubsDir != "" {
		dirs = append(dirs, stubsDir)
	}
	if systemDir != "" {
		dirs = append(dirs, systemDir)
	}
	return &SearchPath{dirs: dirs}
}

func mypyPathDirs() []string {
	val := os.Getenv("MYPYPATH")
	if val == "" {
		return nil
	}
	return filepath.SplitList(val)
}

// Resolve finds the source file for a dotted module id, probing both
// "pkg/sub.src" and "pkg/sub/__init__.src" forms in every search
// directory before moving to the next directory (first match wins).
func (sp *SearchPath) Resolve(moduleID string) (string, bool) {
	rel := filepath.Join(strings.Split(moduleID, ".")...)
	for _, dir := range sp.dirs {
		flat := filepath.Join(dir, rel+SourceExt)
		if fileExists(flat) {
			return flat, true
		}
		pkg := filepath.Join(dir, rel, PackageInit)
		if fileExists(pkg) {
			return pkg, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
