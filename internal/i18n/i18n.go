// Package i18n provides the text lookup used for every user-facing string.
// Keys are the English strings; a Translator is bound to one locale and is
// passed explicitly instead of mutating a process-wide language setting.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys
const (
	NoProductsFound = "No products found"
	FetchFailed     = "Failed to fetch products"
	PageFetchFailed = "Nothing to return this time"
	SearchLabel     = "Search"
	SearchPrompt    = "Search experiences"
	ItemsPerPage    = "%d items per page"
	AdultFrom       = "Adult from"
	ChildFrom       = "Child from"
	PageOf          = "Page %d of %d"
	Searching       = "Searching..."
	TypeToSearch    = "Press / to search"
	ResultsFound    = "%d products found"
	PagerFailed     = "Pager unavailable"
)

// Translator looks up user-facing text
type Translator interface {
	T(key string, args ...interface{}) string
}

// Func adapts a plain function to Translator
type Func func(key string, args ...interface{}) string

// T implements Translator
func (f Func) T(key string, args ...interface{}) string {
	return f(key, args...)
}

var german = map[string]string{
	NoProductsFound: "Keine Produkte gefunden",
	FetchFailed:     "Produkte konnten nicht geladen werden",
	PageFetchFailed: "Diesmal gibt es nichts zurückzugeben",
	SearchLabel:     "Suchen",
	SearchPrompt:    "Erlebnisse suchen",
	ItemsPerPage:    "%d Einträge pro Seite",
	AdultFrom:       "Erwachsene ab",
	ChildFrom:       "Kinder ab",
	PageOf:          "Seite %d von %d",
	Searching:       "Suche läuft...",
	TypeToSearch:    "Drücke / zum Suchen",
	ResultsFound:    "%d Produkte gefunden",
	PagerFailed:     "Anzeige nicht verfügbar",
}

var keys = []string{
	NoProductsFound, FetchFailed, PageFetchFailed, SearchLabel, SearchPrompt, ItemsPerPage,
	AdultFrom, ChildFrom, PageOf, Searching, TypeToSearch, ResultsFound, PagerFailed,
}

// Catalog builds the message catalog for all supported locales
func Catalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, k := range keys {
		_ = b.SetString(language.English, k, k)
		if de, ok := german[k]; ok {
			_ = b.SetString(language.German, k, de)
		}
	}
	return b
}

var defaultCatalog = Catalog()

// printerTranslator is a Translator backed by an x/text message printer
type printerTranslator struct {
	printer *message.Printer
}

// New returns a Translator for the given locale
func New(tag language.Tag) Translator {
	return &printerTranslator{
		printer: message.NewPrinter(tag, message.Catalog(defaultCatalog)),
	}
}

// T implements Translator
func (p *printerTranslator) T(key string, args ...interface{}) string {
	return p.printer.Sprintf(key, args...)
}

// English is the identity translator
var English Translator = New(language.English)
