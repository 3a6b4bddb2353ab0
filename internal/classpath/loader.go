package classpath

import (
	"go/types"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/mod/module"
	"golang.org/x/tools/go/packages"

	"gtl/internal/logging"
)

// loadMode is what the probes need to see declared types and their methods
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedSyntax |
	packages.NeedTypes

// reservedPatterns are package patterns go list expands instead of treating as paths
var reservedPatterns = map[string]bool{
	"all":  true,
	"std":  true,
	"cmd":  true,
	"tool": true,
	"work": true,
}

// Loader loads Go packages relative to a working directory
type Loader struct {
	dir    string
	env    []string
	logger *log.Logger
}

// NewLoader creates a Loader running the go tool in dir.
// env, when non-nil, replaces the environment of the go tool.
func NewLoader(dir string, env []string, logger *log.Logger) *Loader {
	return &Loader{dir: dir, env: env, logger: logging.OrDiscard(logger)}
}

// Snapshot returns a fresh view whose package cache lives as long as the snapshot
func (l *Loader) Snapshot() *Snapshot {
	return &Snapshot{loader: l, packages: make(map[string]*loadedPackage)}
}

// loadedPackage is the cached outcome of loading one import path
type loadedPackage struct {
	once   sync.Once
	found  bool
	scopes []*types.Scope // Package scope plus test variants
}

// Snapshot answers type, member and package probes, loading each import path once.
// It is safe for concurrent use.
type Snapshot struct {
	loader *Loader

	mu       sync.Mutex
	packages map[string]*loadedPackage
}

// LoadType looks up a fully qualified named type
func (s *Snapshot) LoadType(name string) (Type, bool) {
	_, t, ok := s.lookupNamed(name)
	return t, ok
}

// LoadMember looks up "<type>#<method>", accepting only a method declared on the type
func (s *Snapshot) LoadMember(ref string) (Type, Member, bool) {
	typeName, memberName, ok := SplitMemberReference(ref)
	if !ok {
		return Type{}, Member{}, false
	}
	named, t, ok := s.lookupNamed(typeName)
	if !ok {
		return Type{}, Member{}, false
	}

	var found []*types.Func
	for i := 0; i < named.NumMethods(); i++ {
		if m := named.Method(i); m.Name() == memberName {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		return Type{}, Member{}, false
	}

	member := Member{Name: memberName}
	if sig, ok := found[0].Type().(*types.Signature); ok && sig.Recv() != nil {
		_, member.PointerRecv = sig.Recv().Type().(*types.Pointer)
	}
	return t, member, true
}

// IsNamespace reports whether name is an import path with Go files
func (s *Snapshot) IsNamespace(name string) bool {
	return s.load(name).found
}

func (s *Snapshot) lookupNamed(name string) (*types.Named, Type, bool) {
	pkgPath, typeName, ok := SplitTypeName(name)
	if !ok {
		return nil, Type{}, false
	}
	pkg := s.load(pkgPath)
	if !pkg.found {
		return nil, Type{}, false
	}
	for _, scope := range pkg.scopes {
		tn, ok := scope.Lookup(typeName).(*types.TypeName)
		if !ok {
			continue
		}
		if named, ok := types.Unalias(tn.Type()).(*types.Named); ok {
			return named, Type{Package: pkgPath, Name: typeName}, true
		}
	}
	return nil, Type{}, false
}

// load returns the package for path; concurrent callers of one path share a single load
func (s *Snapshot) load(path string) *loadedPackage {
	s.mu.Lock()
	pkg, ok := s.packages[path]
	if !ok {
		pkg = &loadedPackage{}
		s.packages[path] = pkg
	}
	s.mu.Unlock()

	pkg.once.Do(func() { s.loader.load(path, pkg) })
	return pkg
}

func (l *Loader) load(path string, result *loadedPackage) {
	if reservedPatterns[path] || module.CheckImportPath(path) != nil {
		return
	}

	cfg := &packages.Config{
		Mode:  loadMode,
		Dir:   l.dir,
		Env:   l.env,
		Tests: true,
	}
	pkgs, err := packages.Load(cfg, path)
	if err != nil {
		l.logger.Debug("package load failed", "path", path, "err", err)
		return
	}

	for _, p := range pkgs {
		if p.PkgPath != path && p.PkgPath != path+"_test" {
			continue
		}
		if hasListError(p) {
			continue
		}
		if len(p.GoFiles) > 0 {
			result.found = true
		}
		if p.Types != nil {
			result.scopes = append(result.scopes, p.Types.Scope())
		}
	}
	l.logger.Debug("loaded package", "path", path, "found", result.found, "variants", len(result.scopes))
}

func hasListError(p *packages.Package) bool {
	for _, e := range p.Errors {
		if e.Kind == packages.ListError {
			return true
		}
	}
	return false
}
