// Package classpath answers questions about the Go code visible from a
// working directory: which named types, methods and packages exist, and
// which local directories act as roots for test discovery.
//
// A fully qualified type name is an import path and a type name joined by
// the last '.', e.g. "gopkg.in/yaml.v3.Node". A member reference appends
// '#' and a method name, e.g. "example.com/acme/widget.Widget#Parse".
package classpath

import (
	"strings"
)

// Type is a named type found in a loaded package
type Type struct {
	Package string // Import path
	Name    string // Type name, without package
}

// QualifiedName returns the fully qualified type name
func (t Type) QualifiedName() string {
	return t.Package + "." + t.Name
}

// Member is a method declared on a named type
type Member struct {
	Name        string
	PointerRecv bool
}

// SplitTypeName splits a fully qualified type name at its last '.'.
// It reports false when either half would be empty.
func SplitTypeName(name string) (pkgPath, typeName string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	// A dot inside the last path element belongs to the import path
	if strings.LastIndexByte(name, '/') > i {
		return "", "", false
	}
	return name[:i], name[i+1:], true
}

// SplitMemberReference splits "<type>#<member>" at the single '#'.
// References with no '#', more than one '#', or an empty half are rejected.
func SplitMemberReference(ref string) (typeName, memberName string, ok bool) {
	if strings.Count(ref, "#") != 1 {
		return "", "", false
	}
	typeName, memberName, _ = strings.Cut(ref, "#")
	if typeName == "" || memberName == "" {
		return "", "", false
	}
	return typeName, memberName, true
}
