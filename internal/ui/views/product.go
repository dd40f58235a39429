package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"prodsearch/internal/domain"
)

// CardLabels holds the translated card captions
type CardLabels struct {
	AdultFrom string
	ChildFrom string
}

// ProductRenderer handles rendering of product cards and their placeholders
type ProductRenderer struct {
	styles *Styles
}

// NewProductRenderer creates a new product renderer
func NewProductRenderer(styles *Styles) *ProductRenderer {
	return &ProductRenderer{
		styles: styles,
	}
}

// RenderCard renders one product. currency falls back to "$" when empty.
func (r *ProductRenderer) RenderCard(p domain.Product, currency string, labels CardLabels, showPrices, selected bool) string {
	if currency == "" {
		currency = "$"
	}
	inner := CardWidth - 4

	lines := []string{
		r.styles.CardTitle.Render(truncate(p.Title, inner)),
		r.styles.CardDest.Render(truncate(p.Dest, inner)),
	}

	if showPrices {
		adult := r.styles.PriceLabel.Render(labels.AdultFrom) + " " +
			r.styles.Price.Render(currency+p.PriceFromAdult.String())
		child := r.styles.PriceLabel.Render(labels.ChildFrom) + " " +
			r.styles.Price.Render(currency+p.PriceFromChild.String())
		lines = append(lines, "", adult, child)
	}

	style := r.styles.Card
	if selected {
		style = r.styles.CardSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderSkeleton renders a placeholder card shaped like a product card
func (r *ProductRenderer) RenderSkeleton(showPrices bool) string {
	inner := CardWidth - 4
	bar := func(n int) string {
		return r.styles.Skeleton.Render(strings.Repeat("░", n))
	}

	lines := []string{bar(inner), bar(inner * 2 / 3)}
	if showPrices {
		lines = append(lines, "", bar(inner/2), bar(inner/2))
	}
	return r.styles.Card.Render(strings.Join(lines, "\n"))
}

// RenderGrid lays cards out in rows of at most columns cards
func (r *ProductRenderer) RenderGrid(cards []string, columns int) []string {
	if columns < 1 {
		columns = 1
	}
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := start + columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return rows
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
