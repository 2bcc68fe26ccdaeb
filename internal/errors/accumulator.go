package errors

import "fmt"

// ScopeKind distinguishes the enclosing-declaration context lines spec.md
// §6 requires before a group of messages.
type ScopeKind int

const (
	ScopeTopLevel ScopeKind = iota
	ScopeFunction
	ScopeMember
	ScopeInterface
)

// ScopeFrame is one entry on the Accumulator's scope-context stack.
type ScopeFrame struct {
	Kind      ScopeKind
	Name      string // function or member name
	ClassName string // owning class, for ScopeMember
}

// Render produces the exact context-line text from spec.md §6.
func (f ScopeFrame) Render() string {
	switch f.Kind {
	case ScopeFunction:
		return fmt.Sprintf("In function %q:", f.Name)
	case ScopeMember:
		return fmt.Sprintf("In member %q of class %q:", f.Name, f.ClassName)
	case ScopeInterface:
		return fmt.Sprintf("In interface %q:", f.Name)
	default:
		return "At top level:"
	}
}

// ImportFrame is one entry on the Accumulator's import-context stack,
// pushed when entering an imported file and popped on exit (spec.md §5
// "Resource lifecycle": "guaranteed symmetry on every exit path").
type ImportFrame struct {
	ImportingFile string
	Line          int
}

// render produces "In module imported in P, line L[,|:]"; the trailing
// punctuation is a colon for the innermost frame and a comma otherwise,
// decided by the caller (renderImportChain) since only it knows position.
func (f ImportFrame) render(sep string) string {
	return fmt.Sprintf("In module imported in %s, line %d%s", f.ImportingFile, f.Line, sep)
}

// Accumulator is the shared error sink described in spec.md §4/§5/§7: a
// flat list of Reports, a mutable import-context stack, a scope-context
// stack, and a speculative-checking disable counter.
//
// Only the currently-processing file state mutates an Accumulator
// (spec.md §5 "no reentrancy"); it is not safe for concurrent use from
// multiple goroutines, matching the single-threaded checker design.
type Accumulator struct {
	reports      []*Report
	importStack  []ImportFrame
	scopeStack   []ScopeFrame
	disableCount int
}

// NewAccumulator returns an empty accumulator with an implicit top-level
// scope frame.
func NewAccumulator() *Accumulator {
	return &Accumulator{scopeStack: []ScopeFrame{{Kind: ScopeTopLevel}}}
}

// PushImportContext records that we are now processing a file reached via
// an import statement at (importingFile, line).
func (a *Accumulator) PushImportContext(importingFile string, line int) {
	a.importStack = append(a.importStack, ImportFrame{ImportingFile: importingFile, Line: line})
}

// PopImportContext removes the innermost import frame. Callers must pair
// every Push with exactly one Pop, on every exit path including error
// returns (spec.md §9's "pair push/pop with scoped acquisition").
func (a *Accumulator) PopImportContext() {
	if len(a.importStack) > 0 {
		a.importStack = a.importStack[:len(a.importStack)-1]
	}
}

// PushScope enters a function/member/interface body.
func (a *Accumulator) PushScope(f ScopeFrame) {
	a.scopeStack = append(a.scopeStack, f)
}

// PopScope leaves the innermost scope, restoring the previous context.
func (a *Accumulator) PopScope() {
	if len(a.scopeStack) > 1 {
		a.scopeStack = a.scopeStack[:len(a.scopeStack)-1]
	}
}

// WithScope runs fn with f pushed as the current scope context, popping
// it afterward even if fn panics.
func (a *Accumulator) WithScope(f ScopeFrame, fn func()) {
	a.PushScope(f)
	defer a.PopScope()
	fn()
}

// WithImportContext runs fn with an import frame pushed, popping it
// afterward even if fn panics — the single call site every import-edge
// traversal should use, so push/pop can never drift out of balance.
func (a *Accumulator) WithImportContext(importingFile string, line int, fn func()) {
	a.PushImportContext(importingFile, line)
	defer a.PopImportContext()
	fn()
}

// Disable increments the speculative-checking counter; while nonzero,
// Add is a no-op (spec.md §7: "errors during speculative inference ...
// are suppressed by incrementing a disable counter"). Nested disables
// compose: the counter must return to zero, via Enable, for emission to
// resume.
func (a *Accumulator) Disable() { a.disableCount++ }

// Enable decrements the disable counter. Pair every Disable with exactly
// one Enable, on every exit path (spec.md §7).
func (a *Accumulator) Enable() {
	if a.disableCount > 0 {
		a.disableCount--
	}
}

// Speculative runs fn with error emission suppressed, guaranteeing the
// counter is restored even if fn panics.
func (a *Accumulator) Speculative(fn func()) {
	a.Disable()
	defer a.Enable()
	fn()
}

// Suppressed reports whether Add is currently a no-op.
func (a *Accumulator) Suppressed() bool { return a.disableCount > 0 }

// Add appends r to the error list, stamping it with the current scope
// and import context, unless speculative checking has disabled emission.
func (a *Accumulator) Add(r *Report) {
	if a.Suppressed() || r == nil {
		return
	}
	r.Context = a.scopeStack[len(a.scopeStack)-1].Render()
	r.ImportChain = a.renderImportChain()
	a.reports = append(a.reports, r)
}

func (a *Accumulator) renderImportChain() []string {
	if len(a.importStack) == 0 {
		return nil
	}
	out := make([]string, len(a.importStack))
	for i, f := range a.importStack {
		sep := ","
		if i == len(a.importStack)-1 {
			sep = ":"
		}
		out[i] = f.render(sep)
	}
	return out
}

// Reports returns the raw, unsorted list of accumulated reports.
func (a *Accumulator) Reports() []*Report { return a.reports }

// HasErrors reports whether anything has been accumulated.
func (a *Accumulator) HasErrors() bool { return len(a.reports) > 0 }

// Messages renders the final, stably-sorted, adjacent-deduplicated error
// strings (spec.md §6/§7).
func (a *Accumulator) Messages() []string {
	return RenderAll(a.reports)
}
