package discovery

import (
	"fmt"

	"github.com/charmbracelet/log"

	"gtl/internal/domain"
	"gtl/internal/logging"
)

// SnapshotFunc returns a read-only view of the classpath for one Build call
type SnapshotFunc func() Classpath

// Pool resolves names, possibly concurrently, returning selectors in input order
type Pool interface {
	ResolveAll(names []string, resolve func(name string) (domain.Selector, error)) ([]domain.Selector, error)
}

// Option configures a RequestBuilder
type Option func(*RequestBuilder)

// WithPool resolves names through pool instead of sequentially
func WithPool(pool Pool) Option {
	return func(b *RequestBuilder) {
		b.pool = pool
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *log.Logger) Option {
	return func(b *RequestBuilder) {
		b.logger = logging.OrDiscard(logger)
	}
}

// RequestBuilder assembles a DiscoveryRequest from launcher options
type RequestBuilder struct {
	snapshot SnapshotFunc
	roots    RootLister
	entries  EntriesParser
	pool     Pool
	logger   *log.Logger
}

// NewRequestBuilder creates a RequestBuilder
func NewRequestBuilder(snapshot SnapshotFunc, roots RootLister, entries EntriesParser, opts ...Option) *RequestBuilder {
	b := &RequestBuilder{
		snapshot: snapshot,
		roots:    roots,
		entries:  entries,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build creates the request for opts. No partial request is returned on error.
func (b *RequestBuilder) Build(opts domain.Options) (*domain.DiscoveryRequest, error) {
	rb, err := b.createRequestBuilder(opts)
	if err != nil {
		return nil, err
	}
	if err := addFilters(rb, opts); err != nil {
		return nil, err
	}
	return rb.Build(), nil
}

func (b *RequestBuilder) createRequestBuilder(opts domain.Options) (*domain.RequestBuilder, error) {
	if opts.RunAllTests {
		return b.createBuilderForAllTests(opts)
	}
	return b.createNameBasedBuilder(opts)
}

func (b *RequestBuilder) createBuilderForAllTests(opts domain.Options) (*domain.RequestBuilder, error) {
	roots, err := determineRootDirectories(opts, b.roots, b.entries)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("scanning classpath roots", "roots", roots.Paths())
	return domain.NewRequestBuilder().Selectors(domain.SelectClasspathRoots(roots.Paths())...), nil
}

func (b *RequestBuilder) createNameBasedBuilder(opts domain.Options) (*domain.RequestBuilder, error) {
	if !opts.HasArguments() {
		return nil, ErrConfiguration
	}

	resolver := NewResolver(b.snapshot(), b.logger)

	var selectors []domain.Selector
	var err error
	if b.pool != nil {
		selectors, err = b.pool.ResolveAll(opts.Arguments, resolver.Resolve)
	} else {
		selectors, err = resolver.ResolveAll(opts.Arguments)
	}
	if err != nil {
		return nil, err
	}
	return domain.NewRequestBuilder().Selectors(selectors...), nil
}

func addFilters(rb *domain.RequestBuilder, opts domain.Options) error {
	if opts.IncludeClassNamePattern != "" {
		f, err := domain.NewNamePatternFilter(opts.IncludeClassNamePattern)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		rb.Filters(f)
	}

	if len(opts.IncludedTags) > 0 {
		rb.Filters(domain.IncludeTags(opts.IncludedTags))
	}

	if len(opts.ExcludedTags) > 0 {
		rb.Filters(domain.ExcludeTags(opts.ExcludedTags))
	}

	if len(opts.IncludedEngines) > 0 {
		rb.Filters(domain.IncludeEngines(opts.IncludedEngines))
	}

	if len(opts.ExcludedEngines) > 0 {
		rb.Filters(domain.ExcludeEngines(opts.ExcludedEngines))
	}

	return nil
}
