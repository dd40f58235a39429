package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"prodsearch/internal/domain"
	"prodsearch/internal/i18n"
)

// HelpRenderer builds the pager documents for help and product details
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (r *HelpRenderer) line(b *strings.Builder, keys, desc string) {
	fmt.Fprintf(b, "  %s  %s\n", r.key.Render(fmt.Sprintf("%-10s", keys)), r.desc.Render(desc))
}

// RenderHelpContent generates the help document shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.title.Render("prodsearch Help"))
	help.WriteString("\n")

	help.WriteString(r.section.Render("Search"))
	help.WriteString("\n")
	r.line(&help, "/", "Edit the query; enter searches, esc cancels")
	r.line(&help, "r", "Search again with the current region and page size")
	help.WriteString("\n")

	help.WriteString(r.section.Render("Options"))
	help.WriteString("\n")
	r.line(&help, "g", "Next region")
	r.line(&help, "R", "Choose region")
	r.line(&help, "l", "Next page size")
	r.line(&help, "L", "Choose page size")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Region and page size apply to the next search or page change"))
	help.WriteString("\n")

	help.WriteString(r.section.Render("Results"))
	help.WriteString("\n")
	r.line(&help, "↑/↓, j/k", "Move between products")
	r.line(&help, "←/→", "Previous/next page")
	r.line(&help, "h/p, n", "Previous/next page")
	r.line(&help, "1-9", "Jump to page")
	r.line(&help, "enter", "Show product details")
	help.WriteString("\n")

	help.WriteString(r.section.Render("Other"))
	help.WriteString("\n")
	r.line(&help, "?", "Show this help")
	r.line(&help, "q", "Quit")

	return help.String()
}

// RenderProductDetails generates the details document for one product
func (r *HelpRenderer) RenderProductDetails(p domain.Product, region domain.Region, tr i18n.Translator) string {
	var b strings.Builder
	currency := region.CurrencySymbol()

	b.WriteString(r.title.Render(p.Title))
	b.WriteString("\n")
	if p.Dest != "" {
		r.line(&b, "Destination", p.Dest)
	}
	r.line(&b, tr.T(i18n.AdultFrom), currency+p.PriceFromAdult.String())
	r.line(&b, tr.T(i18n.ChildFrom), currency+p.PriceFromChild.String())
	if p.ImgSml != "" {
		r.line(&b, "Image", p.ImgSml)
	}
	r.line(&b, "ID", p.ID)
	r.line(&b, "Region", region.Label)

	return b.String()
}
