package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typewright/typewright/internal/ast"
	"github.com/typewright/typewright/internal/build"
)

func TestRootCmdReportsSuccessForCleanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.src")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	parser := build.Parser(func(p, source string) (*ast.File, error) {
		return &ast.File{Path: p}, nil
	})

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(parser, &out, &errOut)
	cmd.SetArgs([]string{"--no-color", "--config", filepath.Join(dir, "missing.yaml"), path})
	err := cmd.Execute()

	require.NoError(t, err)
	require.Contains(t, out.String(), "no type errors found")
}

func TestRootCmdSurfacesParserFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.src")
	require.NoError(t, os.WriteFile(path, []byte("???"), 0o644))

	var out, errOut bytes.Buffer
	cmd := NewRootCmd(unwiredParser, &out, &errOut)
	cmd.SetArgs([]string{"--no-color", "--config", filepath.Join(dir, "missing.yaml"), path})
	err := cmd.Execute()

	require.Error(t, err)
	require.Contains(t, errOut.String(), "no parser wired")
}
