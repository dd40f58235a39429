package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"prodsearch/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Controls
	SearchLabel string
	QueryText   string // rendered query, or the live text input while editing
	Editing     bool
	RegionLabel string
	LimitLabel  string

	// Results
	Loading       bool
	SpinnerView   string
	ErrorMessage  string
	Items         []domain.Product
	Cursor        int
	SkeletonCount int
	Currency      string
	ShowPrices    bool
	CardLabels    CardLabels
	EmptyHint     string

	// Pagination
	Page       int
	TotalPages int
	PageLabel  string

	// Option picker
	InputMode   string // "", "query", "region" or "limit"
	Options     []string
	OptionIndex int

	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	productRender *ProductRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		productRender: NewProductRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	var sections []string

	sections = append(sections, r.renderHeader(state))
	sections = append(sections, r.renderControls(state))

	if state.InputMode == "region" || state.InputMode == "limit" {
		sections = append(sections, r.renderOptions(state))
	}

	if state.ErrorMessage != "" {
		sections = append(sections, r.styles.ErrorBanner.Render(state.ErrorMessage))
	}

	used := lipgloss.Height(strings.Join(sections, "\n"))
	footer := r.renderFooter(state)
	pager := ""
	if state.TotalPages > 1 {
		pager = r.renderPagination(state)
	}

	available := state.Height - used - lipgloss.Height(footer) - lipgloss.Height(pager) - 2
	if grid := r.renderGrid(state, available); grid != "" {
		sections = append(sections, grid)
	}
	if pager != "" {
		sections = append(sections, pager)
	}
	sections = append(sections, footer)

	return r.styles.Main.Render(strings.Join(sections, "\n"))
}

func (r *Renderer) renderHeader(state ViewState) string {
	logo := r.styles.Title.Render("prodsearch")
	if state.Loading && state.SpinnerView != "" {
		return logo + "  " + r.styles.Spinner.Render(state.SpinnerView)
	}
	return logo
}

func (r *Renderer) renderControls(state ViewState) string {
	query := state.QueryText
	if !state.Editing {
		query = r.styles.Value.Render(query)
		if state.Loading {
			// The search trigger is disabled while a fetch is in flight
			query = r.styles.Dim.Render(state.QueryText)
		}
	}

	parts := []string{
		r.styles.Label.Render(state.SearchLabel+":") + " " + query,
		r.styles.Label.Render("[g]") + " " + r.styles.Value.Render(state.RegionLabel),
		r.styles.Label.Render("[l]") + " " + r.styles.Value.Render(state.LimitLabel),
	}
	if state.Editing {
		// Keep the input on its own line so the cursor never jumps
		return parts[0] + "\n" + strings.Join(parts[1:], "   ")
	}
	return strings.Join(parts, "   ")
}

func (r *Renderer) renderOptions(state ViewState) string {
	var b strings.Builder
	for i, opt := range state.Options {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == state.OptionIndex {
			b.WriteString(r.styles.Highlight.Render("> " + opt))
		} else {
			b.WriteString("  " + opt)
		}
	}
	return r.styles.OptionBox.Render(b.String())
}

// renderGrid renders product cards, or skeletons while loading, limited to
// the rows that fit in height lines around the cursor
func (r *Renderer) renderGrid(state ViewState, height int) string {
	var cards []string
	if state.Loading {
		for i := 0; i < state.SkeletonCount; i++ {
			cards = append(cards, r.productRender.RenderSkeleton(state.ShowPrices))
		}
	} else {
		for i, p := range state.Items {
			cards = append(cards, r.productRender.RenderCard(p, state.Currency, state.CardLabels, state.ShowPrices, i == state.Cursor))
		}
	}

	if len(cards) == 0 {
		if state.EmptyHint != "" && state.ErrorMessage == "" {
			return r.styles.Dim.Render(state.EmptyHint)
		}
		return ""
	}

	columns := Columns(state.Width)
	rows := r.productRender.RenderGrid(cards, columns)

	rowHeight := lipgloss.Height(rows[0])
	visible := len(rows)
	if height > 0 && rowHeight > 0 {
		visible = height / rowHeight
	}
	if visible < 1 {
		visible = 1
	}
	if visible >= len(rows) {
		return strings.Join(rows, "\n")
	}

	first := 0
	if !state.Loading {
		cursorRow := state.Cursor / columns
		if cursorRow >= visible {
			first = cursorRow - visible + 1
		}
	}
	last := first + visible
	if last > len(rows) {
		last = len(rows)
	}

	out := strings.Join(rows[first:last], "\n")
	if last < len(rows) {
		out += "\n" + r.styles.Dim.Render(fmt.Sprintf("↓ %d more", len(cards)-last*columns))
	}
	return out
}

func (r *Renderer) renderPagination(state ViewState) string {
	p := paginator.New()
	p.Type = paginator.Dots
	if state.TotalPages > 20 {
		p.Type = paginator.Arabic
	}
	p.ActiveDot = r.styles.Highlight.Render("•")
	p.InactiveDot = r.styles.Dim.Render("•")
	p.TotalPages = state.TotalPages
	p.Page = state.Page - 1

	line := p.View()
	if state.PageLabel != "" {
		line += "  " + r.styles.Label.Render(state.PageLabel)
	}
	return r.styles.Pager.Render(line)
}

func (r *Renderer) renderFooter(state ViewState) string {
	var lines []string
	if state.StatusMessage != "" {
		lines = append(lines, r.styles.Status.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		lines = append(lines, r.styles.Help.Render(state.HelpView))
	}
	return strings.Join(lines, "\n")
}

// Columns returns how many cards fit side by side in width, at most three
func Columns(width int) int {
	if width <= 0 {
		return 1
	}
	n := (width - 4) / CardWidth
	if n < 1 {
		return 1
	}
	if n > 3 {
		return 3
	}
	return n
}
