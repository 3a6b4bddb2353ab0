package classpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestModuleRoots_Module(t *testing.T) {
	tmpDir := t.TempDir()
	app := filepath.Join(tmpDir, "app")
	writeFile(t, filepath.Join(app, "go.mod"), `module example.com/app

go 1.22

require example.com/lib v1.0.0
require example.com/gone v1.0.0
require example.com/remote v1.0.0

replace example.com/lib => ../lib
replace example.com/gone => ../gone
replace example.com/remote => example.com/fork v1.2.0
`)
	writeFile(t, filepath.Join(tmpDir, "lib", "go.mod"), "module example.com/lib\n")
	require.NoError(t, os.MkdirAll(filepath.Join(app, "internal", "deep"), 0755))

	roots, err := NewModuleRoots(filepath.Join(app, "internal", "deep"), nil).ListRootDirectories()
	require.NoError(t, err)

	assert.Equal(t, []string{app, filepath.Join(tmpDir, "lib")}, roots)
}

func TestModuleRoots_Workspace(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "go.work"), `go 1.22

use (
	./api
	./worker
)
`)
	writeFile(t, filepath.Join(tmpDir, "api", "go.mod"), "module example.com/api\n")
	writeFile(t, filepath.Join(tmpDir, "worker", "go.mod"), "module example.com/worker\n\nreplace example.com/api => ../api\n")

	roots, err := NewModuleRoots(filepath.Join(tmpDir, "worker"), nil).ListRootDirectories()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(tmpDir, "api"), filepath.Join(tmpDir, "worker")}, roots)
}

func TestModuleRoots_NoModule(t *testing.T) {
	if _, ok := findUp(os.TempDir(), "go.mod"); ok {
		t.Skip("a go.mod exists above the temp dir")
	}
	if _, ok := findUp(os.TempDir(), "go.work"); ok {
		t.Skip("a go.work exists above the temp dir")
	}

	_, err := NewModuleRoots(t.TempDir(), nil).ListRootDirectories()
	assert.ErrorIs(t, err, ErrNoModule)
}

func TestEntriesParser_ToDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	one := filepath.Join(tmpDir, "one")
	two := filepath.Join(tmpDir, "two")
	require.NoError(t, os.MkdirAll(one, 0755))
	require.NoError(t, os.MkdirAll(two, 0755))
	file := filepath.Join(tmpDir, "file.txt")
	writeFile(t, file, "x")

	sep := string(os.PathListSeparator)
	dirs := NewEntriesParser().ToDirectories([]string{
		one + sep + filepath.Join(tmpDir, "missing") + sep + file,
		"",
		two + sep + sep + one,
	})

	assert.Equal(t, []string{one, two}, dirs)
}
