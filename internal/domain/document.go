package domain

import "fmt"

// SelectorDocument is the serialized form of a Selector
type SelectorDocument struct {
	Kind      SelectorKind `json:"kind" yaml:"kind"`
	Type      string       `json:"type,omitempty" yaml:"type,omitempty"`
	Member    string       `json:"member,omitempty" yaml:"member,omitempty"`
	Namespace string       `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Root      string       `json:"root,omitempty" yaml:"root,omitempty"`
}

// FilterDocument is the serialized form of a Filter
type FilterDocument struct {
	Kind    FilterKind `json:"kind" yaml:"kind"`
	Pattern string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Values  []string   `json:"values,omitempty" yaml:"values,omitempty"`
}

// RequestDocument is the serialized form of a DiscoveryRequest
type RequestDocument struct {
	Selectors []SelectorDocument `json:"selectors" yaml:"selectors"`
	Filters   []FilterDocument   `json:"filters" yaml:"filters"`
}

// ToDocument converts a request into its serialized form
func ToDocument(r *DiscoveryRequest) RequestDocument {
	doc := RequestDocument{
		Selectors: make([]SelectorDocument, 0, len(r.selectors)),
		Filters:   make([]FilterDocument, 0, len(r.filters)),
	}
	for _, s := range r.Selectors() {
		sd := SelectorDocument{Kind: s.Kind()}
		switch s := s.(type) {
		case TypeSelector:
			sd.Type = s.TypeName
		case MemberSelector:
			sd.Type = s.TypeName
			sd.Member = s.MemberName
		case NamespaceSelector:
			sd.Namespace = s.Namespace
		case ClasspathRootSelector:
			sd.Root = s.Root
		}
		doc.Selectors = append(doc.Selectors, sd)
	}
	for _, f := range r.Filters() {
		fd := FilterDocument{Kind: f.Kind()}
		switch f := f.(type) {
		case NamePatternFilter:
			fd.Pattern = f.Pattern()
		case TagFilter:
			fd.Values = f.Tags()
		case EngineFilter:
			fd.Values = f.Engines()
		}
		doc.Filters = append(doc.Filters, fd)
	}
	return doc
}

// ToRequest rebuilds a DiscoveryRequest from its serialized form
func (d RequestDocument) ToRequest() (*DiscoveryRequest, error) {
	b := NewRequestBuilder()
	for i, sd := range d.Selectors {
		switch sd.Kind {
		case SelectorType:
			b.Selectors(NewTypeSelector(sd.Type))
		case SelectorMember:
			b.Selectors(NewMemberSelector(sd.Type, sd.Member))
		case SelectorNamespace:
			b.Selectors(NewNamespaceSelector(sd.Namespace))
		case SelectorClasspathRoot:
			b.Selectors(NewClasspathRootSelector(sd.Root))
		default:
			return nil, fmt.Errorf("selector %d: unknown kind %q", i, sd.Kind)
		}
	}
	for i, fd := range d.Filters {
		switch fd.Kind {
		case FilterIncludeClassName:
			f, err := NewNamePatternFilter(fd.Pattern)
			if err != nil {
				return nil, fmt.Errorf("filter %d: %w", i, err)
			}
			b.Filters(f)
		case FilterIncludeTags:
			b.Filters(IncludeTags(fd.Values))
		case FilterExcludeTags:
			b.Filters(ExcludeTags(fd.Values))
		case FilterIncludeEngines:
			b.Filters(IncludeEngines(fd.Values))
		case FilterExcludeEngines:
			b.Filters(ExcludeEngines(fd.Values))
		default:
			return nil, fmt.Errorf("filter %d: unknown kind %q", i, fd.Kind)
		}
	}
	return b.Build(), nil
}

// SavedRequest is a request persisted by a previous discover run
type SavedRequest struct {
	ID        string          `json:"id" yaml:"id"`
	CreatedAt string          `json:"created_at" yaml:"created_at"`
	WorkDir   string          `json:"work_dir,omitempty" yaml:"work_dir,omitempty"`
	Request   RequestDocument `json:"request" yaml:"request"`
}
