package domain

// filterOrder is the order in which filters are reported; a request holds a set
var filterOrder = []FilterKind{
	FilterIncludeClassName,
	FilterIncludeTags,
	FilterExcludeTags,
	FilterIncludeEngines,
	FilterExcludeEngines,
}

// DiscoveryRequest is what a test engine should discover and how to filter it.
// It is immutable once built; accessors return copies.
type DiscoveryRequest struct {
	selectors []Selector
	filters   map[FilterKind]Filter
}

// Selectors returns the selectors in the order they were added
func (r *DiscoveryRequest) Selectors() []Selector {
	return append([]Selector(nil), r.selectors...)
}

// Filters returns the attached filters in a stable kind order
func (r *DiscoveryRequest) Filters() []Filter {
	filters := make([]Filter, 0, len(r.filters))
	for _, kind := range filterOrder {
		if f, ok := r.filters[kind]; ok {
			filters = append(filters, f)
		}
	}
	return filters
}

// Filter returns the filter of the given kind, if attached
func (r *DiscoveryRequest) Filter(kind FilterKind) (Filter, bool) {
	f, ok := r.filters[kind]
	return f, ok
}

// RequestBuilder accumulates selectors and filters for a DiscoveryRequest
type RequestBuilder struct {
	selectors []Selector
	filters   map[FilterKind]Filter
}

// NewRequestBuilder creates an empty RequestBuilder
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{filters: make(map[FilterKind]Filter)}
}

// Selectors appends selectors, keeping duplicates
func (b *RequestBuilder) Selectors(selectors ...Selector) *RequestBuilder {
	b.selectors = append(b.selectors, selectors...)
	return b
}

// Filters adds filters; a later filter replaces an earlier one of the same kind
func (b *RequestBuilder) Filters(filters ...Filter) *RequestBuilder {
	for _, f := range filters {
		b.filters[f.Kind()] = f
	}
	return b
}

// Build returns a request detached from the builder
func (b *RequestBuilder) Build() *DiscoveryRequest {
	filters := make(map[FilterKind]Filter, len(b.filters))
	for kind, f := range b.filters {
		filters[kind] = f
	}
	return &DiscoveryRequest{
		selectors: append([]Selector(nil), b.selectors...),
		filters:   filters,
	}
}
