package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	ErrorBanner  lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardDest     lipgloss.Style
	PriceLabel   lipgloss.Style
	Price        lipgloss.Style
	Skeleton     lipgloss.Style
	Pager        lipgloss.Style
	OptionBox    lipgloss.Style
	Highlight    lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Spinner      lipgloss.Style
}

// CardWidth is the outer width of a product card including its border
const CardWidth = 36

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1).
		Width(CardWidth - 2)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Dim:   lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // red
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 1),
		Card:         card,
		CardSelected: card.BorderForeground(lipgloss.Color("226")),
		CardTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		CardDest:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PriceLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Price:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // blue
		Skeleton:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Pager:        lipgloss.NewStyle().MarginTop(1),
		OptionBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Main:      lipgloss.NewStyle().Padding(1, 2),
		Spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}
