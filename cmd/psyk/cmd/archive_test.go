package cmd

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psykit/psyk/pkg/psyq"
	"github.com/psykit/psyk/pkg/symdb"
)

// a small BSS-only object module
const stubObjHex = "4c4e4b022e08140b338003627373100c330b330806627373656e64060c330c0a" +
	"330c330000000003656e6400"

func writeStubObj(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := hex.DecodeString(stubObjHex)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestModulesFromPaths(t *testing.T) {
	tmpDir := t.TempDir()
	a := writeStubObj(t, tmpDir, "alpha.obj")
	b := writeStubObj(t, tmpDir, "beta.obj")

	modules, err := modulesFromPaths([]string{a, b})
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "ALPHA", modules[0].Name())
	assert.Equal(t, "BETA", modules[1].Name())

	_, err = modulesFromPaths([]string{filepath.Join(tmpDir, "missing.obj")})
	assert.Error(t, err)
}

func TestWriteArchiveAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	objPath := writeStubObj(t, tmpDir, "alpha.obj")

	modules, err := modulesFromPaths([]string{objPath})
	require.NoError(t, err)

	libPath := filepath.Join(tmpDir, "test.lib")
	require.NoError(t, writeArchiveAtomic(psyq.NewLib(modules), libPath))

	lib, err := psyq.ReadLib(libPath)
	require.NoError(t, err)
	assert.Len(t, lib.Modules, 1)

	// no temp files left behind
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "leftover temp file %s", entry.Name())
	}
}

func TestCreateAddUpdateDelete(t *testing.T) {
	tmpDir := t.TempDir()
	alpha := writeStubObj(t, tmpDir, "alpha.obj")
	beta := writeStubObj(t, tmpDir, "beta.obj")
	gamma := writeStubObj(t, tmpDir, "gamma.obj")
	libPath := filepath.Join(tmpDir, "test.lib")

	require.NoError(t, runCommand(t, "create", libPath, alpha, beta))

	lib, err := psyq.ReadLib(libPath)
	require.NoError(t, err)
	require.Len(t, lib.Modules, 2)
	assert.Equal(t, "ALPHA", lib.Modules[0].Name())
	assert.Equal(t, "BETA", lib.Modules[1].Name())

	t.Run("add", func(t *testing.T) {
		require.NoError(t, runCommand(t, "add", libPath, gamma))
		lib, err := psyq.ReadLib(libPath)
		require.NoError(t, err)
		assert.Len(t, lib.Modules, 3)
	})

	t.Run("add duplicate fails", func(t *testing.T) {
		err := runCommand(t, "add", libPath, alpha)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("update replaces in place", func(t *testing.T) {
		require.NoError(t, runCommand(t, "update", libPath, beta))
		lib, err := psyq.ReadLib(libPath)
		require.NoError(t, err)
		require.Len(t, lib.Modules, 3)
		assert.Equal(t, "BETA", lib.Modules[1].Name())
	})

	t.Run("update skips unreadable file", func(t *testing.T) {
		require.NoError(t, runCommand(t, "update", libPath, filepath.Join(tmpDir, "missing.obj"), beta))
		lib, err := psyq.ReadLib(libPath)
		require.NoError(t, err)
		assert.Len(t, lib.Modules, 3)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, runCommand(t, "delete", libPath, "GAMMA"))
		lib, err := psyq.ReadLib(libPath)
		require.NoError(t, err)
		assert.Len(t, lib.Modules, 2)
		_, ok := lib.Module("GAMMA")
		assert.False(t, ok)
	})

	t.Run("delete all refused", func(t *testing.T) {
		err := runCommand(t, "delete", libPath, "ALPHA", "BETA")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty archive")
	})
}

func TestExtract(t *testing.T) {
	tmpDir := t.TempDir()
	objPath := writeStubObj(t, tmpDir, "alpha.obj")
	libPath := filepath.Join(tmpDir, "test.lib")
	require.NoError(t, runCommand(t, "create", libPath, objPath))

	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, runCommand(t, "extract", libPath, "-o", outDir))

	extracted := filepath.Join(outDir, "alpha.obj")
	got, err := os.ReadFile(extracted)
	require.NoError(t, err)
	want, err := os.ReadFile(objPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	t.Run("missing module fails", func(t *testing.T) {
		err := runCommand(t, "extract", libPath, "ABSENT", "-o", outDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestIndexCommand(t *testing.T) {
	tmpDir := t.TempDir()
	objPath := writeStubObj(t, tmpDir, "alpha.obj")
	libPath := filepath.Join(tmpDir, "runtime.lib")
	require.NoError(t, runCommand(t, "create", libPath, objPath))

	indexPath := filepath.Join(tmpDir, "index")
	require.NoError(t, runCommand(t, "index", libPath, "--index", indexPath))

	db, err := symdb.Open(indexPath)
	require.NoError(t, err)
	defer db.Close()

	locs, err := db.Lookup("end")
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "runtime.lib", locs[0].Library)
	assert.Equal(t, "ALPHA", locs[0].Module)
}

func TestListCommand(t *testing.T) {
	tmpDir := t.TempDir()
	objPath := writeStubObj(t, tmpDir, "alpha.obj")

	require.NoError(t, runCommand(t, "list", objPath))

	libPath := filepath.Join(tmpDir, "test.lib")
	require.NoError(t, runCommand(t, "create", libPath, objPath))
	require.NoError(t, runCommand(t, "list", libPath, "--recursive"))

	t.Run("disassembly code format", func(t *testing.T) {
		require.NoError(t, runCommand(t, "list", objPath, "--code", "disassembly"))
	})

	t.Run("unknown code format", func(t *testing.T) {
		err := runCommand(t, "list", objPath, "--code", "octal")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown code format")
	})
}
