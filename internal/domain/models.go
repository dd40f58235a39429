package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Product is a single catalog entry as returned by the remote API
type Product struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Dest           string          `json:"dest"`
	ImgSml         string          `json:"img_sml"`
	PriceFromAdult decimal.Decimal `json:"price_from_adult"`
	PriceFromChild decimal.Decimal `json:"price_from_child"`
}

// Region is a geographic/pricing context for catalog queries
type Region struct {
	Label    string
	ID       string // sent as the geo parameter
	Currency string // display only
	Language language.Tag
}

// Regions is the closed set of selectable regions, in display order
var Regions = []Region{
	{Label: "English United Kingdom £ GBP", ID: "en", Currency: "£", Language: language.BritishEnglish},
	{Label: "English Ireland € EUR", ID: "en-ie", Currency: "€", Language: language.MustParse("en-IE")},
	{Label: "Deutsch Deutschland € EUR", ID: "de-de", Currency: "€", Language: language.MustParse("de-DE")},
}

// DefaultRegion returns the first enumerated region
func DefaultRegion() Region {
	return Regions[0]
}

// RegionByID looks up a region by its API identifier
func RegionByID(id string) (Region, bool) {
	for _, r := range Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// CurrencySymbol returns the region currency, falling back to "$"
func (r Region) CurrencySymbol() string {
	if r.Currency == "" {
		return "$"
	}
	return r.Currency
}

// PageSizes are the allowed result page sizes
var PageSizes = []int{12, 24, 36}

// DefaultPageSize is used when nothing else is configured
const DefaultPageSize = 12

// ValidPageSize reports whether n is one of PageSizes
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// PageRequest is a single query against the catalog
type PageRequest struct {
	Query    string
	RegionID string
	Offset   int
	Limit    int
}

// Offset returns the zero-based item offset of a 1-based page
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// TotalPages returns ceil(totalCount/limit), or 0 when there is nothing to page
func TotalPages(totalCount, limit int) int {
	if totalCount <= 0 || limit <= 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

// ResultPage is one page of catalog results
type ResultPage struct {
	Items      []Product
	TotalCount int
}
