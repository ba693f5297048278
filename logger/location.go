package logger

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Location is a source position of a logging call.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders "<path> <line>:<column>".
func (l Location) String() string {
	return fmt.Sprintf("%s %d:%d", l.File, l.Line, l.Column)
}

// Here returns the location of its own call site, with the path relative to
// the working directory. Pass it to Logger.Log when the location should be
// chosen by the caller rather than captured by an entry point.
func Here() Location {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{
		File:   relativePath(workingDir(), file),
		Line:   line,
		Column: sources.column(file, line, "Here"),
	}
}

// callerLocation resolves the frame skip levels above its caller. entry is the
// name of the public function the user called; it picks the call expression on
// the reported line when recovering the column.
func callerLocation(skip int, entry, root string) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{
		File:   relativePath(root, file),
		Line:   line,
		Column: sources.column(file, line, entry),
	}
}

// workingDir is the default root for rendered paths.
var workingDir = sync.OnceValue(func() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
})

func relativePath(root, file string) string {
	if root == "" || !filepath.IsAbs(file) {
		return filepath.ToSlash(file)
	}
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return filepath.ToSlash(file)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return filepath.ToSlash(file)
	}
	return rel
}

// callSite is a call expression found while indexing a source file.
type callSite struct {
	name   string
	column int
}

// sourceIndex caches the call expressions of every source file seen so far,
// keyed by line. The runtime reports file and line only; the column comes from
// here. Files that cannot be read or parsed are cached as empty.
type sourceIndex struct {
	mu    sync.Mutex
	files map[string]map[int][]callSite
}

var sources = &sourceIndex{files: make(map[string]map[int][]callSite)}

func (s *sourceIndex) column(file string, line int, name string) int {
	s.mu.Lock()
	sites, ok := s.files[file]
	if !ok {
		sites = indexCallSites(file)
		s.files[file] = sites
	}
	s.mu.Unlock()

	for _, site := range sites[line] {
		if site.name == name {
			return site.column
		}
	}
	return 0
}

func indexCallSites(file string) map[int][]callSite {
	fset := token.NewFileSet()
	f, _ := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
	if f == nil {
		return nil
	}

	sites := make(map[int][]callSite)
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		var name string
		switch fn := call.Fun.(type) {
		case *ast.Ident:
			name = fn.Name
		case *ast.SelectorExpr:
			name = fn.Sel.Name
		default:
			return true
		}

		start := fset.Position(call.Pos())
		site := callSite{name: name, column: start.Column}
		sites[start.Line] = append(sites[start.Line], site)
		// The runtime may attribute a call split over lines to its '(' line.
		if lp := fset.Position(call.Lparen); lp.Line != start.Line {
			sites[lp.Line] = append(sites[lp.Line], site)
		}
		return true
	})
	return sites
}
