package build

import (
	"fmt"
	"os"
	"sort"

	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/checker"
	"github.com/typewright/typewright/internal/errors"
	"github.com/typewright/typewright/internal/sema"
)

// Parser is the external collaborator spec.md §1/§6 places out of scope:
// something that turns source text into an ast.File. internal/build only
// depends on this function type, never on a concrete lexer/parser.
type Parser func(path, source string) (*ast.File, error)

// fileEntry tracks one module's progress through the pipeline.
type fileEntry struct {
	moduleID string
	path     string
	state    FileState
	deps     []string // module ids this file imports, filled in once Parsed

	file   *ast.File
	module *sema.Module
}

// Manager is the build manager (spec.md §4.6): it owns the file-state
// table, the module search path, and the shared Accumulator every phase
// reports into. Grounded on the teacher's internal/loader.go
// ModuleLoader, which similarly keeps a path-keyed cache and a search
// path, though the teacher loads each module fully in one recursive call
// rather than interleaving phases breadth-first across the whole set.
type Manager struct {
	SearchPath *SearchPath
	Parse      Parser
	Errs       *errors.Accumulator
	TypeCheck  bool // if false, files stop at semantically-analyzed (spec.md §6's "if enabled")

	entries  map[string]*fileEntry // by module id
	analyzer *sema.Analyzer
	resolved map[string]*sema.Module
}

// NewManager creates a Manager for one build run with an empty file-state
// table; AddEntryFile seeds it with the file passed on the command line.
func NewManager(sp *SearchPath, parse Parser, errs *errors.Accumulator, typeCheck bool) *Manager {
	return &Manager{
		SearchPath: sp,
		Parse:      parse,
		Errs:       errs,
		TypeCheck:  typeCheck,
		entries:    make(map[string]*fileEntry),
		analyzer:   sema.NewAnalyzer(errs),
		resolved:   make(map[string]*sema.Module),
	}
}

// AddEntryFile registers the initial file to build, under moduleID (the
// dotted name other files would use to import it, if any — pass the
// file's base name with no package prefix when there is none).
func (m *Manager) AddEntryFile(moduleID, path string) {
	m.seed(moduleID, path)
}

func (m *Manager) seed(moduleID, path string) *fileEntry {
	if e, ok := m.entries[moduleID]; ok {
		return e
	}
	e := &fileEntry{moduleID: moduleID, path: path, state: Unprocessed}
	m.entries[moduleID] = e
	return e
}

// Run executes the processing loop (spec.md §4.6 "Processing loop"):
// scan module ids from last to first (see orderedModuleIDs), advance the
// first ready state by one phase, repeat until nothing is ready. Returns
// true iff every file reached type-checked (or semantically-analyzed, if
// TypeCheck is false). A file that cannot be read or parsed also counts
// as done; errors from every phase are collected in Errs (see Aggregate).
func (m *Manager) Run() bool {
	for {
		order := m.orderedModuleIDs()
		advanced := false
		for i := len(order) - 1; i >= 0; i-- {
			id := order[i]
			e := m.entries[id]
			if m.isReady(e) {
				m.advance(e)
				advanced = true
				break // re-scan from newest after any advance: deps may have changed
			}
		}
		if !advanced {
			break
		}
	}
	return m.allDone()
}

// orderedModuleIDs returns module ids sorted alphabetically. Go maps have
// no iteration order and fileEntry carries no arrival sequence number, so
// Run scans from the alphabetically last id to the first rather than from
// the newest discovered file to the oldest. In a single-threaded
// scheduler any fixed total order works as long as readiness, not
// position, decides what advances — the order only affects which of
// several simultaneously ready files advances first, not reachability of
// the fixed point.
func (m *Manager) orderedModuleIDs() []string {
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *Manager) targetState() FileState {
	if m.TypeCheck {
		return TypeChecked
	}
	return SemanticallyAnalyzed
}

// isReady implements spec.md §4.6's is_ready(): "every dependency
// module's file state is at least as advanced as the current state and
// not unprocessed." The gate is against the state being advanced FROM,
// not the state being advanced INTO — so a file sitting at Parsed only
// needs its dependencies to have reached Parsed themselves, not
// SemanticallyAnalyzed. This is what makes an import cycle tolerable
// (spec.md §8 scenario 5): two mutually-importing files both sit at
// Parsed, each satisfies the other's readiness check, and both advance
// to SemanticallyAnalyzed even though neither's dependency module is
// fully analyzed yet. internal/sema.AnalyzeFile/resolveImports degrade
// gracefully when a dependency's *sema.Module isn't in the resolved map
// yet (see imports.go): names from it simply fail to bind rather than
// raising a spurious error, so a same-round cyclic peer can still be
// re-consulted for whatever it exposes.
func (m *Manager) isReady(e *fileEntry) bool {
	if e.state >= m.targetState() {
		return false
	}
	if e.state == Parsed {
		for _, dep := range e.deps {
			de, ok := m.entries[dep]
			if !ok {
				continue // unresolved import: reported as UnknownModule when this file was parsed
			}
			if de.state < Parsed {
				return false
			}
		}
	}
	return true
}

func (m *Manager) advance(e *fileEntry) {
	switch e.state {
	case Unprocessed:
		m.advanceParse(e)
	case Parsed:
		m.advanceAnalyze(e)
	case SemanticallyAnalyzed:
		m.advanceCheck(e)
	}
}

// advanceParse reads and parses e's source text, discovers its imports
// (queuing any unseen dependency as a new Unprocessed entry), and
// promotes e to Parsed.
func (m *Manager) advanceParse(e *fileEntry) {
	text, err := os.ReadFile(e.path)
	if err != nil {
		m.Errs.Add(errors.New("build", "BLD001", fmt.Sprintf("cannot read %q: %v", e.path, err), nil, nil))
		e.state = TypeChecked // terminal: stop retrying a file that can't be read
		return
	}
	file, err := m.Parse(e.path, string(text))
	if err != nil {
		m.Errs.Add(errors.New("build", "BLD002", fmt.Sprintf("%s: parse error: %v", e.path, err), nil, nil))
		e.state = TypeChecked
		return
	}
	e.file = file

	for _, imp := range file.Imports {
		if _, ok := m.entries[imp.Module]; ok {
			continue
		}
		path, found := m.SearchPath.Resolve(imp.Module)
		if !found {
			m.Errs.Add(errors.UnknownModule(imp.Position(), imp.Module))
			continue
		}
		m.seed(imp.Module, path)
	}
	e.deps = importModuleIDs(file)
	e.state = Parsed
}

func importModuleIDs(file *ast.File) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, imp := range file.Imports {
		if !seen[imp.Module] {
			seen[imp.Module] = true
			ids = append(ids, imp.Module)
		}
	}
	return ids
}

// advanceAnalyze runs semantic analysis (internal/sema) now that every
// dependency is at least Parsed, and promotes e to SemanticallyAnalyzed.
func (m *Manager) advanceAnalyze(e *fileEntry) {
	depModules := make(map[string]*sema.Module, len(e.deps))
	for _, dep := range e.deps {
		if de, ok := m.entries[dep]; ok && de.module != nil {
			depModules[dep] = de.module
		}
	}
	e.module = m.analyzer.AnalyzeFile(e.path, e.file, depModules)
	m.resolved[e.moduleID] = e.module
	e.state = SemanticallyAnalyzed
}

// advanceCheck runs the expression/statement checker (internal/checker)
// and promotes e to TypeChecked.
func (m *Manager) advanceCheck(e *fileEntry) {
	c := checker.NewChecker(e.module, m.analyzer.Builtins, m.Errs)
	c.CheckFile()
	e.state = TypeChecked
}

func (m *Manager) allDone() bool {
	target := m.targetState()
	for _, e := range m.entries {
		if e.state < target {
			return false
		}
	}
	return true
}

// Aggregate raises a single aggregate error (spec.md §4.6 "Failure") if
// any error accumulated during the run, with the canonicalized, stably
// sorted, de-duplicated message list.
func (m *Manager) Aggregate() error {
	if !m.Errs.HasErrors() {
		return nil
	}
	return &AggregateError{Messages: m.Errs.Messages()}
}

// AggregateError is raised once at the end of a build when any phase
// recorded errors (spec.md §6 "the aggregate error is raised with
// `.messages = [str]`").
type AggregateError struct {
	Messages []string
}

func (e *AggregateError) Error() string {
	if len(e.Messages) == 0 {
		return "build failed"
	}
	return e.Messages[0]
}
