package domain

import "fmt"

// SelectorKind identifies the variant of a Selector
type SelectorKind string

const (
	SelectorType          SelectorKind = "type"
	SelectorMember        SelectorKind = "member"
	SelectorNamespace     SelectorKind = "namespace"
	SelectorClasspathRoot SelectorKind = "classpath-root"
)

// Selector describes one thing a test engine should discover.
// The set of implementations is closed: TypeSelector, MemberSelector,
// NamespaceSelector and ClasspathRootSelector.
type Selector interface {
	Kind() SelectorKind
	String() string
	selector()
}

// TypeSelector selects every test declared by a named type
type TypeSelector struct {
	TypeName string // Fully qualified, e.g. example.com/acme/widget.Widget
}

// NewTypeSelector creates a TypeSelector
func NewTypeSelector(typeName string) TypeSelector {
	return TypeSelector{TypeName: typeName}
}

func (s TypeSelector) Kind() SelectorKind { return SelectorType }
func (s TypeSelector) String() string     { return fmt.Sprintf("type:%s", s.TypeName) }
func (TypeSelector) selector()            {}

// MemberSelector selects a single method of a named type
type MemberSelector struct {
	TypeName   string
	MemberName string
}

// NewMemberSelector creates a MemberSelector
func NewMemberSelector(typeName, memberName string) MemberSelector {
	return MemberSelector{TypeName: typeName, MemberName: memberName}
}

func (s MemberSelector) Kind() SelectorKind { return SelectorMember }
func (s MemberSelector) String() string {
	return fmt.Sprintf("member:%s%c%s", s.TypeName, MemberSeparator, s.MemberName)
}
func (MemberSelector) selector() {}

// NamespaceSelector selects every test in a package
type NamespaceSelector struct {
	Namespace string
}

// NewNamespaceSelector creates a NamespaceSelector
func NewNamespaceSelector(namespace string) NamespaceSelector {
	return NamespaceSelector{Namespace: namespace}
}

func (s NamespaceSelector) Kind() SelectorKind { return SelectorNamespace }
func (s NamespaceSelector) String() string     { return fmt.Sprintf("namespace:%s", s.Namespace) }
func (NamespaceSelector) selector()            {}

// ClasspathRootSelector selects every test reachable from a root directory
type ClasspathRootSelector struct {
	Root string
}

// NewClasspathRootSelector creates a ClasspathRootSelector
func NewClasspathRootSelector(root string) ClasspathRootSelector {
	return ClasspathRootSelector{Root: root}
}

// SelectClasspathRoots creates one selector per root, in order
func SelectClasspathRoots(roots []string) []Selector {
	selectors := make([]Selector, 0, len(roots))
	for _, root := range roots {
		selectors = append(selectors, NewClasspathRootSelector(root))
	}
	return selectors
}

func (s ClasspathRootSelector) Kind() SelectorKind { return SelectorClasspathRoot }
func (s ClasspathRootSelector) String() string     { return fmt.Sprintf("classpath-root:%s", s.Root) }
func (ClasspathRootSelector) selector()            {}

// MemberSeparator separates a type name from a member name in a member reference
const MemberSeparator = '#'
