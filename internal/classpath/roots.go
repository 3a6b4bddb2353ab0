package classpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/mod/modfile"

	"gtl/internal/domain"
	"gtl/internal/logging"
)

// ErrNoModule indicates that neither go.work nor go.mod was found
var ErrNoModule = errors.New("no go.mod or go.work found")

// ModuleRoots lists the local module directories visible from a working directory:
// the go.work "use" directories, or the main module directory, plus local
// replacement directories of those modules.
type ModuleRoots struct {
	dir    string
	logger *log.Logger
}

// NewModuleRoots creates a ModuleRoots starting its search at dir
func NewModuleRoots(dir string, logger *log.Logger) *ModuleRoots {
	return &ModuleRoots{dir: dir, logger: logging.OrDiscard(logger)}
}

// ListRootDirectories returns the roots in discovery order without duplicates
func (r *ModuleRoots) ListRootDirectories() ([]string, error) {
	start, err := filepath.Abs(r.dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", r.dir, err)
	}

	roots := domain.NewRootSet()
	if workFile, ok := findUp(start, "go.work"); ok {
		if err := r.addWorkspace(roots, workFile); err != nil {
			return nil, err
		}
		return roots.Paths(), nil
	}
	if modFile, ok := findUp(start, "go.mod"); ok {
		if err := r.addModule(roots, filepath.Dir(modFile)); err != nil {
			return nil, err
		}
		return roots.Paths(), nil
	}
	return nil, fmt.Errorf("%w above %s", ErrNoModule, start)
}

func (r *ModuleRoots) addWorkspace(roots *domain.RootSet, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	work, err := modfile.ParseWork(path, data, nil)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	base := filepath.Dir(path)
	r.logger.Debug("using workspace", "file", path, "modules", len(work.Use))

	for _, use := range work.Use {
		if err := r.addModule(roots, resolveDir(base, use.Path)); err != nil {
			return err
		}
	}
	for _, rep := range work.Replace {
		addReplacement(roots, base, rep)
	}
	return nil
}

func (r *ModuleRoots) addModule(roots *domain.RootSet, dir string) error {
	roots.Add(dir)

	path := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	mod, err := modfile.Parse(path, data, nil)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for _, rep := range mod.Replace {
		addReplacement(roots, dir, rep)
	}
	return nil
}

// addReplacement adds the target of a replace directive when it is an existing local directory
func addReplacement(roots *domain.RootSet, base string, rep *modfile.Replace) {
	if rep.New.Version != "" || !modfile.IsDirectoryPath(rep.New.Path) {
		return
	}
	dir := resolveDir(base, rep.New.Path)
	if isDir(dir) {
		roots.Add(dir)
	}
}

func resolveDir(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// findUp looks for name in dir and its parents
func findUp(dir, name string) (string, bool) {
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
