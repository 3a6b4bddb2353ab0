package discovery

import (
	"errors"
	"sync"

	"gtl/internal/classpath"
	"gtl/internal/domain"
)

// fakeClasspath answers probes from fixed tables and counts every call
type fakeClasspath struct {
	mu         sync.Mutex
	types      map[string]bool
	members    map[string][]string // type name -> declared methods
	namespaces map[string]bool

	typeCalls      int
	memberCalls    int
	namespaceCalls int
}

func newFakeClasspath() *fakeClasspath {
	return &fakeClasspath{
		types:      map[string]bool{},
		members:    map[string][]string{},
		namespaces: map[string]bool{},
	}
}

func (f *fakeClasspath) withType(name string, methods ...string) *fakeClasspath {
	f.types[name] = true
	f.members[name] = append(f.members[name], methods...)
	return f
}

func (f *fakeClasspath) withNamespace(name string) *fakeClasspath {
	f.namespaces[name] = true
	return f
}

func (f *fakeClasspath) LoadType(name string) (classpath.Type, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typeCalls++
	if !f.types[name] {
		return classpath.Type{}, false
	}
	pkg, typeName, _ := classpath.SplitTypeName(name)
	return classpath.Type{Package: pkg, Name: typeName}, true
}

func (f *fakeClasspath) LoadMember(ref string) (classpath.Type, classpath.Member, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberCalls++
	typeName, memberName, ok := classpath.SplitMemberReference(ref)
	if !ok || !f.types[typeName] {
		return classpath.Type{}, classpath.Member{}, false
	}
	found := 0
	for _, m := range f.members[typeName] {
		if m == memberName {
			found++
		}
	}
	if found != 1 {
		return classpath.Type{}, classpath.Member{}, false
	}
	pkg, name, _ := classpath.SplitTypeName(typeName)
	return classpath.Type{Package: pkg, Name: name}, classpath.Member{Name: memberName}, true
}

func (f *fakeClasspath) IsNamespace(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.namespaceCalls++
	return f.namespaces[name]
}

func (f *fakeClasspath) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.typeCalls + f.memberCalls + f.namespaceCalls
}

type fakeRoots struct {
	dirs  []string
	err   error
	calls int
}

func (f *fakeRoots) ListRootDirectories() ([]string, error) {
	f.calls++
	return f.dirs, f.err
}

type fakeEntries struct {
	dirs  []string
	calls int
}

func (f *fakeEntries) ToDirectories(entries []string) []string {
	f.calls++
	return f.dirs
}

// orderedPool resolves from the last name to the first, to prove order is restored
type orderedPool struct {
	calls int
}

func (p *orderedPool) ResolveAll(names []string, resolve func(string) (domain.Selector, error)) ([]domain.Selector, error) {
	p.calls++
	out := make([]domain.Selector, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		s, err := resolve(names[i])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

var errRootsUnavailable = errors.New("go.mod not found")
