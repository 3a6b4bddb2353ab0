package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"gtl/internal/classpath"
	"gtl/internal/config"
	"gtl/internal/domain"
)

// Formatter formats and displays discovery requests
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

var (
	headerColor    = color.New(color.FgCyan)
	kindColor      = color.New(color.FgYellow)
	valueColor     = color.New(color.FgWhite)
	countColor     = color.New(color.FgGreen)
	secondaryColor = color.New(color.FgHiBlack)
)

// selectorKindColors gives each selector kind a stable color in text output
var selectorKindColors = map[domain.SelectorKind]*color.Color{
	domain.SelectorType:          color.New(color.FgYellow),
	domain.SelectorMember:        color.New(color.FgMagenta),
	domain.SelectorNamespace:     color.New(color.FgBlue),
	domain.SelectorClasspathRoot: color.New(color.FgGreen),
}

// PrintRequest writes the request in the configured format
func (f *Formatter) PrintRequest(w io.Writer, request *domain.DiscoveryRequest) error {
	switch f.config.GetFormat() {
	case config.FormatJSON:
		data, err := json.MarshalIndent(domain.ToDocument(request), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(domain.ToDocument(request)); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		return enc.Close()
	default:
		f.printText(w, request)
		return nil
	}
}

func (f *Formatter) printText(w io.Writer, request *domain.DiscoveryRequest) {
	selectors := request.Selectors()
	filters := request.Filters()

	headerColor.Fprintf(w, "Discovery request: %d selector(s), %d filter(s)\n", len(selectors), len(filters))

	headerColor.Fprintln(w, "Selectors:")
	for i, selector := range selectors {
		connector := "├── "
		if i == len(selectors)-1 {
			connector = "└── "
		}
		fmt.Fprint(w, connector)
		selectorKindColor(selector.Kind()).Fprintf(w, "%-15s", selector.Kind())
		valueColor.Fprint(w, selectorValue(selector))
		if root, ok := selector.(domain.ClasspathRootSelector); ok {
			f.printTestFileCount(w, root.Root)
		}
		fmt.Fprintln(w)
	}

	headerColor.Fprintln(w, "Filters:")
	if len(filters) == 0 {
		secondaryColor.Fprintln(w, "└── (none)")
		return
	}
	for i, filter := range filters {
		connector := "├── "
		if i == len(filters)-1 {
			connector = "└── "
		}
		fmt.Fprint(w, connector)
		kindColor.Fprintf(w, "%-18s", filter.Kind())
		valueColor.Fprintln(w, filterValue(filter))
	}
}

// PrintRoots lists classpath roots with the number of test files under each
func (f *Formatter) PrintRoots(w io.Writer, roots []string) {
	countColor.Fprintf(w, "Found %d classpath root(s):\n", len(roots))
	for i, root := range roots {
		connector := "├── "
		if i == len(roots)-1 {
			connector = "└── "
		}
		fmt.Fprint(w, connector)
		headerColor.Fprint(w, f.displayPath(root))
		f.printTestFileCount(w, root)
		fmt.Fprintln(w)
	}
}

func (f *Formatter) printTestFileCount(w io.Writer, root string) {
	count, err := classpath.NewScanner(f.config.PathsToIgnore).CountTestFiles(root)
	if err != nil {
		secondaryColor.Fprint(w, " (unreadable)")
		return
	}
	secondaryColor.Fprintf(w, " (%d test file(s))", count)
}

// displayPath shows roots relative to the working directory when they are below it
func (f *Formatter) displayPath(path string) string {
	base, err := filepath.Abs(f.config.GetWorkDir())
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func selectorKindColor(kind domain.SelectorKind) *color.Color {
	if c, ok := selectorKindColors[kind]; ok {
		return c
	}
	return valueColor
}

// selectorValue returns the part of a selector after its kind
func selectorValue(selector domain.Selector) string {
	switch s := selector.(type) {
	case domain.TypeSelector:
		return s.TypeName
	case domain.MemberSelector:
		return fmt.Sprintf("%s%c%s", s.TypeName, domain.MemberSeparator, s.MemberName)
	case domain.NamespaceSelector:
		return s.Namespace
	case domain.ClasspathRootSelector:
		return s.Root
	}
	return selector.String()
}

// filterValue returns the part of a filter after its kind
func filterValue(filter domain.Filter) string {
	switch f := filter.(type) {
	case domain.NamePatternFilter:
		return f.Pattern()
	case domain.TagFilter:
		return fmt.Sprint(f.Tags())
	case domain.EngineFilter:
		return fmt.Sprint(f.Engines())
	}
	return filter.String()
}
