package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/errors"
)

// fakeParser lets tests control the AST returned for a given path without
// a real lexer/parser (out of scope per spec.md §1/§6).
func fakeParser(files map[string]*ast.File) Parser {
	return func(path, source string) (*ast.File, error) {
		return files[path], nil
	}
}

func TestManagerRunsSingleFileToTypeChecked(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.src")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	file := &ast.File{Path: path}
	sp := NewSearchPath(nil, dir, "", "")
	errs := errors.NewAccumulator()
	m := NewManager(sp, fakeParser(map[string]*ast.File{path: file}), errs, true)
	m.AddEntryFile("main", path)

	require.True(t, m.Run())
	require.False(t, errs.HasErrors())
	require.Nil(t, m.Aggregate())
}

func TestManagerDiscoversImportedModule(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.src")
	mainPath := filepath.Join(dir, "main.src")
	require.NoError(t, os.WriteFile(libPath, []byte("y = 1"), 0o644))
	require.NoError(t, os.WriteFile(mainPath, []byte("from lib import y"), 0o644))

	libFile := &ast.File{Path: libPath}
	mainFile := &ast.File{
		Path: mainPath,
		Imports: []ast.Import{
			{Kind: ast.ImportFrom, Module: "lib", Names: []string{"y"}},
		},
	}
	sp := NewSearchPath(nil, dir, "", "")
	errs := errors.NewAccumulator()
	m := NewManager(sp, fakeParser(map[string]*ast.File{libPath: libFile, mainPath: mainFile}), errs, true)
	m.AddEntryFile("main", mainPath)

	require.True(t, m.Run())
	require.False(t, errs.HasErrors())
	_, ok := m.entries["lib"]
	require.True(t, ok, "importing 'lib' should have seeded a new file entry")
	require.Equal(t, TypeChecked, m.entries["lib"].state)
}

func TestManagerToleratesImportCycle(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.src")
	bPath := filepath.Join(dir, "b.src")
	require.NoError(t, os.WriteFile(aPath, []byte("import b"), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte("import a"), 0o644))

	aFile := &ast.File{
		Path:    aPath,
		Imports: []ast.Import{{Kind: ast.ImportModule, Module: "b"}},
	}
	bFile := &ast.File{
		Path:    bPath,
		Imports: []ast.Import{{Kind: ast.ImportModule, Module: "a"}},
	}
	sp := NewSearchPath(nil, dir, "", "")
	errs := errors.NewAccumulator()
	m := NewManager(sp, fakeParser(map[string]*ast.File{aPath: aFile, bPath: bFile}), errs, true)
	m.AddEntryFile("a", aPath)

	require.True(t, m.Run(), "mutually-importing files must both reach type-checked, not deadlock")
	require.False(t, errs.HasErrors())
	require.Equal(t, TypeChecked, m.entries["a"].state)
	require.Equal(t, TypeChecked, m.entries["b"].state)
}

func TestManagerUnreadableFileReportsBuildError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.src")
	sp := NewSearchPath(nil, dir, "", "")
	errs := errors.NewAccumulator()
	m := NewManager(sp, fakeParser(nil), errs, true)
	m.AddEntryFile("missing", missing)

	m.Run()
	require.True(t, errs.HasErrors())
	require.Error(t, m.Aggregate())
}
