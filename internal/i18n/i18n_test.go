package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"prodsearch/internal/domain"
)

func TestEnglishIsIdentity(t *testing.T) {
	for _, region := range domain.Regions[:2] {
		tr := New(region.Language)
		require.Equal(t, "No products found", tr.T(NoProductsFound), region.ID)
		require.Equal(t, "Failed to fetch products", tr.T(FetchFailed), region.ID)
		require.Equal(t, "Nothing to return this time", tr.T(PageFetchFailed), region.ID)
		require.Equal(t, "24 items per page", tr.T(ItemsPerPage, 24), region.ID)
	}
}

func TestGermanRegionTranslates(t *testing.T) {
	region, ok := domain.RegionByID("de-de")
	require.True(t, ok)

	tr := New(region.Language)
	require.Equal(t, "Keine Produkte gefunden", tr.T(NoProductsFound))
	require.Equal(t, "Seite 2 von 3", tr.T(PageOf, 2, 3))
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	tr := New(language.German)
	require.Equal(t, "untranslated", tr.T("untranslated"))
}

func TestFuncAdapter(t *testing.T) {
	var tr Translator = Func(func(key string, args ...interface{}) string { return "[" + key + "]" })
	require.Equal(t, "[Search]", tr.T(SearchLabel))
}

func TestEveryKeyHasGerman(t *testing.T) {
	de := New(language.German)
	for _, k := range keys {
		_, ok := german[k]
		require.True(t, ok, k)
		require.NotEqual(t, k, de.T(k), k)
	}
	require.Equal(t, "Anzeige nicht verfügbar", de.T(PagerFailed))
}
