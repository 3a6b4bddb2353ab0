package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtl/internal/classpath"
	"gtl/internal/cli"
	"gtl/internal/config"
	"gtl/internal/discovery"
	"gtl/internal/domain"
	"gtl/internal/execution"
)

// stubClasspath knows one type with one method inside one package
type stubClasspath struct{}

func (stubClasspath) LoadType(name string) (classpath.Type, bool) {
	if name != "example.com/acme.Widget" {
		return classpath.Type{}, false
	}
	return classpath.Type{Package: "example.com/acme", Name: "Widget"}, true
}

func (s stubClasspath) LoadMember(ref string) (classpath.Type, classpath.Member, bool) {
	if ref != "example.com/acme.Widget#Parse" {
		return classpath.Type{}, classpath.Member{}, false
	}
	t, _ := s.LoadType("example.com/acme.Widget")
	return t, classpath.Member{Name: "Parse"}, true
}

func (stubClasspath) IsNamespace(name string) bool {
	return name == "example.com/acme"
}

type stubRoots struct {
	dirs []string
}

func (s stubRoots) ListRootDirectories() ([]string, error) {
	return s.dirs, nil
}

type stubFactory struct {
	roots []string
}

func (f stubFactory) NewBuilder(logger *log.Logger, progress execution.Progress) *discovery.RequestBuilder {
	return discovery.NewRequestBuilder(
		func() discovery.Classpath { return stubClasspath{} },
		stubRoots{dirs: f.roots},
		classpath.NewEntriesParser(),
		discovery.WithLogger(logger),
	)
}

type recordingViewer struct {
	viewed *domain.SavedRequest
}

func (v *recordingViewer) View(saved *domain.SavedRequest) error {
	v.viewed = saved
	return nil
}

// newTestRoot wires the commands like main does, with stubs behind the builder
func newTestRoot(t *testing.T, factory BuilderFactory, viewer *recordingViewer) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	cfg := config.New()
	cmds := NewCommands(cfg)
	cmds.Discover.factory = factory
	cmds.Roots.factory = factory
	cmds.Discover.viewer = viewer
	cmds.Show.viewer = viewer

	rootCmd := &cobra.Command{Use: "gtl", SilenceUsage: true, SilenceErrors: true}
	var flags cli.Flags
	cmds.Register(rootCmd, &flags, cfg)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	return rootCmd, &out
}

func TestDiscover_ByName(t *testing.T) {
	dir := t.TempDir()
	rootCmd, out := newTestRoot(t, stubFactory{}, &recordingViewer{})
	rootCmd.SetArgs([]string{
		"discover", "--dir", dir, "--format", "json", "-t", "fast", "-E", "legacy",
		"example.com/acme.Widget", "example.com/acme.Widget#Parse", "example.com/acme",
	})

	require.NoError(t, rootCmd.Execute())

	var doc domain.RequestDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, []domain.SelectorDocument{
		{Kind: domain.SelectorType, Type: "example.com/acme.Widget"},
		{Kind: domain.SelectorMember, Type: "example.com/acme.Widget", Member: "Parse"},
		{Kind: domain.SelectorNamespace, Namespace: "example.com/acme"},
	}, doc.Selectors)
	assert.Equal(t, []domain.FilterDocument{
		{Kind: domain.FilterIncludeTags, Values: []string{"fast"}},
		{Kind: domain.FilterExcludeEngines, Values: []string{"legacy"}},
	}, doc.Filters)
}

func TestDiscover_Errors(t *testing.T) {
	t.Run("no names", func(t *testing.T) {
		rootCmd, _ := newTestRoot(t, stubFactory{}, &recordingViewer{})
		rootCmd.SetArgs([]string{"discover", "--dir", t.TempDir()})

		err := rootCmd.Execute()
		assert.ErrorIs(t, err, discovery.ErrConfiguration)
	})

	t.Run("unresolvable name", func(t *testing.T) {
		rootCmd, _ := newTestRoot(t, stubFactory{}, &recordingViewer{})
		rootCmd.SetArgs([]string{"discover", "--dir", t.TempDir(), "example.com/acme.Gadget"})

		err := rootCmd.Execute()
		var resolutionErr *discovery.NameResolutionError
		require.True(t, errors.As(err, &resolutionErr))
		assert.Equal(t, "example.com/acme.Gadget", resolutionErr.Name)
	})
}

func TestDiscover_SaveAndShow(t *testing.T) {
	dir := t.TempDir()
	viewer := &recordingViewer{}

	rootCmd, out := newTestRoot(t, stubFactory{}, viewer)
	rootCmd.SetArgs([]string{"discover", "--dir", dir, "--save", "example.com/acme"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "namespace")
	assert.Contains(t, out.String(), "✓ Saved request")

	_, err := os.Stat(filepath.Join(dir, config.DefaultOutputDir, config.DefaultOutputFile))
	require.NoError(t, err)

	t.Run("show prints the saved request", func(t *testing.T) {
		rootCmd, out := newTestRoot(t, stubFactory{}, viewer)
		rootCmd.SetArgs([]string{"show", "--dir", dir, "--format", "yaml"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "namespace: example.com/acme")
	})

	t.Run("show interactive hands the request to the viewer", func(t *testing.T) {
		rootCmd, _ := newTestRoot(t, stubFactory{}, viewer)
		rootCmd.SetArgs([]string{"show", "--dir", dir, "-i"})
		require.NoError(t, rootCmd.Execute())
		require.NotNil(t, viewer.viewed)
		assert.Equal(t, domain.SelectorNamespace, viewer.viewed.Request.Selectors[0].Kind)
	})
}

func TestRoots(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib")
	require.NoError(t, os.MkdirAll(lib, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "lib_test.go"), []byte("package lib\n"), 0644))
	extra := t.TempDir()

	rootCmd, out := newTestRoot(t, stubFactory{roots: []string{dir, lib, dir}}, &recordingViewer{})
	rootCmd.SetArgs([]string{"roots", "--dir", dir, "--classpath", extra})
	require.NoError(t, rootCmd.Execute())

	output := out.String()
	assert.Contains(t, output, "Found 3 classpath root(s)")
	assert.Contains(t, output, "lib (1 test file(s))")
	assert.True(t, strings.Contains(output, extra), "expected %s in:\n%s", extra, output)
}
