// Command typecheck is the thin CLI entry point spec.md §1 explicitly
// keeps out of the analysis core: argument parsing, config/search-path
// wiring, and colorized exit-code reporting around internal/build.
// Grounded on the teacher's cmd/typecheck demo (a hand-built, manually
// driven main showing the pipeline end to end) and cmd/ailang/main.go's
// cobra + fatih/color wiring.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/typewright/typewright/internal/build"
	"github.com/typewright/typewright/internal/config"
	"github.com/typewright/typewright/internal/errors"
)

// options holds the flags bound by NewRootCmd.
type options struct {
	mypypath   string
	strict     bool
	verbose    bool
	configFile string
	noColor    bool
}

// NewRootCmd builds the cobra command tree. parser is the external
// AST-producing collaborator (spec.md §1/§6 — the lexer/parser is out of
// scope for this module); callers embedding a real front-end pass their
// own build.Parser in. out/errOut let tests capture output instead of
// os.Stdout/os.Stderr.
func NewRootCmd(parser build.Parser, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "typecheck [files...]",
		Short: "Run the static type checker over one or more source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypecheck(parser, args, opts, out, errOut)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.mypypath, "mypypath", "", "extra module search path entries (colon/semicolon-separated, same as $MYPYPATH)")
	flags.BoolVar(&opts.strict, "strict", false, "set strict mode in the loaded config (no checking phase reads it)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print a per-file summary as the build proceeds")
	flags.StringVar(&opts.configFile, "config", "typecheck.yaml", "path to a typecheck.yaml config file")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")

	return cmd
}

func runTypecheck(parser build.Parser, args []string, opts *options, out, errOut io.Writer) error {
	if opts.noColor {
		color.NoColor = true
	}
	if opts.mypypath != "" {
		os.Setenv("MYPYPATH", opts.mypypath)
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	if opts.strict {
		cfg.Strict = true
	}
	configDir := filepath.Dir(opts.configFile)

	// One Accumulator shared across every file argument, so the final
	// rendered message list is sorted and de-duplicated across the whole
	// invocation (spec.md §5 "a flat error list ... shared state").
	errs := errors.NewAccumulator()
	ok := true
	for _, path := range args {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", path, err)
		}
		programDir := filepath.Dir(abs)
		sp := build.NewSearchPath(cfg.ResolvedSearchPath(configDir), programDir, cfg.StubsDir, "")

		m := build.NewManager(sp, parser, errs, cfg.TypeCheck)
		moduleID := moduleIDFromPath(abs)
		m.AddEntryFile(moduleID, abs)

		if opts.verbose {
			fmt.Fprintf(out, "checking %s\n", path)
		}
		if !m.Run() {
			ok = false
		}
	}

	if errs.HasErrors() {
		fmt.Fprint(errOut, errors.RenderColor(errs.Reports()))
		return fmt.Errorf("%d type error(s) found", len(errs.Reports()))
	}
	if !ok {
		summary := color.New(color.FgYellow).Sprint("build did not reach a fixed point for all files")
		fmt.Fprintln(errOut, summary)
		return fmt.Errorf("incomplete build")
	}

	summary := color.New(color.FgGreen, color.Bold).Sprint("no type errors found")
	fmt.Fprintln(out, summary)
	return nil
}

// moduleIDFromPath derives a dotted module id from a file's base name,
// used only to seed the entry file's own id in the file-state table
// (spec.md §6 module search path deals with imports, not the initial
// command-line file, which never needs to be "found").
func moduleIDFromPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}

func main() {
	root := NewRootCmd(unwiredParser, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
