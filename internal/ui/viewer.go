package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtl/internal/classpath"
	"gtl/internal/config"
	"gtl/internal/domain"
)

// Viewer displays a discovery request in an interactive TUI
type Viewer interface {
	View(saved *domain.SavedRequest) error
}

// RequestViewer browses the selectors and filters of a saved request
type RequestViewer struct {
	config *config.Config
}

// NewRequestViewer creates a new RequestViewer
func NewRequestViewer(cfg *config.Config) *RequestViewer {
	return &RequestViewer{config: cfg}
}

// View displays the request in an interactive TUI
func (rv *RequestViewer) View(saved *domain.SavedRequest) error {
	request, err := saved.Request.ToRequest()
	if err != nil {
		return fmt.Errorf("load request %s: %w", saved.ID, err)
	}
	selectors := request.Selectors()
	if len(selectors) == 0 {
		color.Yellow("Request %s selects nothing", saved.ID)
		return nil
	}

	app := tview.NewApplication()

	// Selectors on the left
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, selector := range selectors {
		list.AddItem(formatSelectorItem(i, selector), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Filters above the details on the right
	filtersView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	filtersView.SetText(formatFilters(request.Filters()))

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(filtersView, len(request.Filters())+2, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Request %s (%d selectors, created %s) | ↑↓ navigate, → details, ← back, Ctrl+C exit ",
			shortID(saved.ID), len(selectors), saved.CreatedAt))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(selectors) {
			detailsView.SetText(rv.formatSelectorDetails(selectors[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatSelectorItem formats a list entry using tview color tags
func formatSelectorItem(index int, selector domain.Selector) string {
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(selectorValue(selector)))
}

// formatFilters lists the filters, one per line
func formatFilters(filters []domain.Filter) string {
	if len(filters) == 0 {
		return "[cyan]Filters:[white] none"
	}
	var builder strings.Builder
	builder.WriteString("[cyan]Filters:[white]\n")
	for _, filter := range filters {
		fmt.Fprintf(&builder, "  [yellow]%s[white] %s\n", filter.Kind(), tview.Escape(filterValue(filter)))
	}
	return builder.String()
}

// formatSelectorDetails formats one selector for the details pane
func (rv *RequestViewer) formatSelectorDetails(selector domain.Selector) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[cyan]Kind:[white]\t%s\n", selector.Kind())
	switch s := selector.(type) {
	case domain.TypeSelector:
		fmt.Fprintf(w, "[cyan]Type:[white]\t%s\n", tview.Escape(s.TypeName))
	case domain.MemberSelector:
		fmt.Fprintf(w, "[cyan]Type:[white]\t%s\n", tview.Escape(s.TypeName))
		fmt.Fprintf(w, "[cyan]Method:[white]\t%s\n", tview.Escape(s.MemberName))
	case domain.NamespaceSelector:
		fmt.Fprintf(w, "[cyan]Package:[white]\t%s\n", tview.Escape(s.Namespace))
	case domain.ClasspathRootSelector:
		fmt.Fprintf(w, "[cyan]Root:[white]\t%s\n", tview.Escape(s.Root))
		files, err := classpath.NewScanner(rv.config.PathsToIgnore).Scan(s.Root)
		if err != nil {
			fmt.Fprintf(w, "[red]%s[white]\n", tview.Escape(err.Error()))
			break
		}
		fmt.Fprintf(w, "[cyan]Test files:[white]\t%d\n", len(files))
		for i, file := range files {
			if i == 10 {
				fmt.Fprintf(w, "  [gray]... and %d more[white]\n", len(files)-10)
				break
			}
			fmt.Fprintf(w, "  %s\n", tview.Escape(file))
		}
	}

	w.Flush()
	return builder.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
