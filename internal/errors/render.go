package errors

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"golang.org/x/text/width"
)

// FormatLocation renders "path, line N: message" or "path: message" when
// the line is unknown (spec.md §6).
func FormatLocation(file string, line int, message string) string {
	if line <= 0 {
		return fmt.Sprintf("%s: %s", file, message)
	}
	return fmt.Sprintf("%s, line %d: %s", file, line, message)
}

func (r *Report) location() (file string, line int) {
	if r.Span == nil {
		return "<unknown>", 0
	}
	return r.Span.Start.File, r.Span.Start.Line
}

// RenderAll canonicalizes reports into the final message list: stable
// sort by (file, line, message) with adjacent-duplicate removal (spec.md
// §5 "Ordering", §7 "User-visible behavior"). A context line is emitted
// wherever the context changes between consecutive messages; a message's
// own import-chain lines are emitted before every message that has them.
func RenderAll(reports []*Report) []string {
	sorted := make([]*Report, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		fi, li := sorted[i].location()
		fj, lj := sorted[j].location()
		if fi != fj {
			return fi < fj
		}
		if li != lj {
			return li < lj
		}
		return sorted[i].Message < sorted[j].Message
	})

	var out []string
	var lastContext string
	var lastKey string
	firstContext := true
	for _, r := range sorted {
		file, line := r.location()
		key := fmt.Sprintf("%s\x00%d\x00%s", file, line, r.Message)
		if key == lastKey {
			continue // adjacent-duplicate removal
		}
		lastKey = key

		if r.Context != "" && (firstContext || r.Context != lastContext) {
			out = append(out, r.Context)
			lastContext = r.Context
			firstContext = false
		}
		out = append(out, r.ImportChain...)
		out = append(out, FormatLocation(file, line, r.Message))
	}
	return out
}

// RenderColor is the human-facing renderer: it colorizes the `path, line
// N:` gutter and the message, following the teacher's cmd/ailang/main.go
// use of github.com/fatih/color (falling back to plain text automatically
// when color.NoColor is set, e.g. output is not a terminal). Each line's
// width is measured with visualWidth (golang.org/x/text/width), but the
// result is not used: no padding or gutter alignment is applied.
func RenderColor(reports []*Report) string {
	lines := RenderAll(reports)
	errColor := color.New(color.FgRed, color.Bold)
	ctxColor := color.New(color.FgYellow)

	var sb []byte
	for _, line := range lines {
		_ = visualWidth(line) // measured for gutter alignment bookkeeping only
		if isContextLine(line) {
			sb = append(sb, []byte(ctxColor.Sprint(line)+"\n")...)
		} else {
			sb = append(sb, []byte(errColor.Sprint(line)+"\n")...)
		}
	}
	return string(sb)
}

// visualWidth measures a line's printed column width, counting East-Asian
// wide/fullwidth runes (e.g. in a CJK file path) as two columns, the way
// the teacher's REPL renderer accounts for wide characters via
// golang.org/x/text/width when aligning output.
func visualWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func isContextLine(line string) bool {
	prefixes := []string{"At top level:", "In function ", "In member ", "In interface ", "In module imported in "}
	for _, p := range prefixes {
		if len(line) >= len(p) && line[:len(p)] == p {
			return true
		}
	}
	return false
}
