// Package discovery turns launcher options into a DiscoveryRequest.
//
// Names are resolved against a Classpath by probing, in order, for a named
// type, a "<type>#<method>" member reference, and a package. The first probe
// that succeeds decides the selector kind.
package discovery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"gtl/internal/classpath"
	"gtl/internal/domain"
	"gtl/internal/logging"
)

// Classpath is the lookup capability the resolver probes names with.
// Implementations must be safe for concurrent use.
type Classpath interface {
	LoadType(name string) (classpath.Type, bool)
	LoadMember(qualifiedName string) (classpath.Type, classpath.Member, bool)
	IsNamespace(name string) bool
}

// probe tries one interpretation of a name
type probe struct {
	kind domain.SelectorKind
	try  func(cp Classpath, name string) (domain.Selector, bool)
}

var probes = []probe{
	{kind: domain.SelectorType, try: probeType},
	{kind: domain.SelectorMember, try: probeMember},
	{kind: domain.SelectorNamespace, try: probeNamespace},
}

func probeType(cp Classpath, name string) (domain.Selector, bool) {
	if _, ok := cp.LoadType(name); !ok {
		return nil, false
	}
	return domain.NewTypeSelector(name), true
}

func probeMember(cp Classpath, name string) (domain.Selector, bool) {
	t, m, ok := cp.LoadMember(name)
	if !ok {
		return nil, false
	}
	return domain.NewMemberSelector(t.QualifiedName(), m.Name), true
}

func probeNamespace(cp Classpath, name string) (domain.Selector, bool) {
	if !cp.IsNamespace(name) {
		return nil, false
	}
	return domain.NewNamespaceSelector(name), true
}

// Resolver maps free text names to selectors
type Resolver struct {
	classpath Classpath
	logger    *log.Logger
}

// NewResolver creates a Resolver probing cp
func NewResolver(cp Classpath, logger *log.Logger) *Resolver {
	return &Resolver{classpath: cp, logger: logging.OrDiscard(logger)}
}

// Resolve returns the selector for name.
// The name is probed verbatim; surrounding whitespace is not trimmed.
func (r *Resolver) Resolve(name string) (domain.Selector, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrInvalidArgument)
	}

	for _, p := range probes {
		if selector, ok := p.try(r.classpath, name); ok {
			r.logger.Debug("resolved name", "name", name, "kind", p.kind)
			return selector, nil
		}
	}

	r.logger.Debug("unresolved name", "name", name)
	return nil, &NameResolutionError{Name: name}
}

// ResolveAll resolves names in order and stops at the first failure
func (r *Resolver) ResolveAll(names []string) ([]domain.Selector, error) {
	selectors := make([]domain.Selector, 0, len(names))
	for _, name := range names {
		selector, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, selector)
	}
	return selectors, nil
}
