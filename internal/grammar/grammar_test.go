package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupArticle(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		g    Gender
		at   ArticleType
		want string
	}{
		{"nominative masculine definite", Nominative, Masculine, Definite, "der"},
		{"accusative masculine definite", Accusative, Masculine, Definite, "den"},
		{"dative plural definite", Dative, Plural, Definite, "den"},
		{"genitive neuter definite", Genitive, Neuter, Definite, "des"},
		{"accusative masculine indefinite", Accusative, Masculine, Indefinite, "einen"},
		{"dative feminine negative", Dative, Feminine, Negative, "keiner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupArticle(tt.c, tt.g, tt.at)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupArticleAbsentCombination(t *testing.T) {
	// Indefinite articles have no plural; the cell is absent, not empty.
	_, ok := LookupArticle(Nominative, Plural, Indefinite)
	assert.False(t, ok)

	// Genitive negative is not in the beginner material.
	_, ok = LookupArticle(Genitive, Masculine, Negative)
	assert.False(t, ok)
}

func TestLookupEnding(t *testing.T) {
	got, ok := LookupEnding(Nominative, Masculine, Indefinite)
	require.True(t, ok)
	assert.Equal(t, "-er", got)

	got, ok = LookupEnding(Dative, Feminine, Definite)
	require.True(t, ok)
	assert.Equal(t, "-en", got)
}

func TestParseCaseFallback(t *testing.T) {
	assert.Equal(t, Dative, ParseCase("dative"))
	// Unknown and empty selections fall back to the first case.
	assert.Equal(t, Nominative, ParseCase("ablative"))
	assert.Equal(t, Nominative, ParseCase(""))
}

func TestParseArticleTypeFallback(t *testing.T) {
	assert.Equal(t, Negative, ParseArticleType("negative"))
	assert.Equal(t, Definite, ParseArticleType("bogus"))
}

func TestCaseInfoFor(t *testing.T) {
	info, ok := CaseInfoFor(Accusative)
	require.True(t, ok)
	assert.Equal(t, "Accusative", info.Title)
	assert.NotEmpty(t, info.Example)

	_, ok = CaseInfoFor(Case("vocative"))
	assert.False(t, ok)
}

func TestThemeByKey(t *testing.T) {
	th := ThemeByKey("travel")
	assert.Equal(t, "Travel", th.TitleEN)
	require.NotEmpty(t, th.Entries)

	// Unknown keys fall back to the first theme.
	assert.Equal(t, VocabThemes[0].Key, ThemeByKey("nope").Key)
}

func TestEveryCaseHasDefiniteRow(t *testing.T) {
	for _, c := range Cases {
		for _, g := range Genders {
			_, ok := LookupArticle(c, g, Definite)
			assert.True(t, ok, "missing definite article for %s/%s", c, g)
		}
	}
}
