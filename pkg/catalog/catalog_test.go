package catalog_test

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakegen/pkg/catalog"
	"github.com/dmitrymomot/fakegen/pkg/generator"
)

func TestLocales(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"en_us", "fr_fr"}, catalog.Locales())
}

func TestLoad_EveryGeneratorSamples(t *testing.T) {
	t.Parallel()

	for _, locale := range catalog.Locales() {
		t.Run(locale, func(t *testing.T) {
			t.Parallel()

			c, err := catalog.Load(context.Background(), locale)
			require.NoError(t, err)
			assert.Equal(t, locale, c.Locale())
			require.NotEmpty(t, c.Names())

			src := generator.NewSource(1)
			for _, name := range c.Names() {
				for range 200 {
					v, err := c.Sample(name, src)
					require.NoError(t, err)
					require.NotEmpty(t, v, name)
				}
			}
		})
	}
}

func TestLoad_PublicNames(t *testing.T) {
	t.Parallel()

	en, err := catalog.Load(context.Background(), "en_us")
	require.NoError(t, err)
	assert.Equal(t, []string{
		catalog.Address,
		catalog.CityName,
		catalog.Division,
		catalog.DivisionAbbreviation,
		catalog.PostalCode,
		catalog.SecondaryAddress,
		catalog.StreetAddress,
		catalog.StreetName,
		catalog.CompanyName,
		catalog.Slogan,
		catalog.Domain,
		catalog.Email,
		catalog.Username,
		catalog.LoremParagraph,
		catalog.LoremParagraphs,
		catalog.LoremSentence,
		catalog.LoremWord,
		catalog.FirstName,
		catalog.FullName,
		catalog.LastName,
		catalog.NamePrefix,
		catalog.NameSuffix,
		catalog.PhoneNumber,
		catalog.ASCIIDigit,
		catalog.ASCIILowercase,
	}, en.Names())

	fr, err := catalog.Load(context.Background(), "fr_fr")
	require.NoError(t, err)
	assert.False(t, fr.Has(catalog.NameSuffix))
	assert.False(t, fr.Has(catalog.DivisionAbbreviation))
	assert.False(t, fr.Has(catalog.Slogan))
	assert.True(t, fr.Has(catalog.Address))
}

func TestCatalog_InternalGeneratorsAreHidden(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(context.Background(), "en_us")
	require.NoError(t, err)

	for _, name := range []string{"addresses.city_prefix", "addresses.building_number", "internet.domain_word", "lorem.first_word"} {
		assert.False(t, c.Has(name), name)
		_, err := c.Get(name)
		require.ErrorIs(t, err, catalog.ErrGeneratorNotFound)
	}

	_, err = c.Sample("nope", generator.NewSource(1))
	require.ErrorIs(t, err, catalog.ErrGeneratorNotFound)
	_, err = c.SampleN("nope", generator.NewSource(1), 2)
	require.ErrorIs(t, err, catalog.ErrGeneratorNotFound)
	assert.Panics(t, func() { c.MustGet("nope") })
}

func TestCatalog_NamesReturnsCopy(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(context.Background(), "fr_fr")
	require.NoError(t, err)
	names := c.Names()
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Names()[0])
}

func TestCatalog_Reproducible(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, err := catalog.Load(ctx, "en_us")
	require.NoError(t, err)
	b, err := catalog.Load(ctx, "en_us")
	require.NoError(t, err)

	for _, name := range []string{catalog.FullName, catalog.Address, catalog.Email, catalog.LoremParagraphs} {
		x, err := a.SampleN(name, generator.NewSource(2024), 20)
		require.NoError(t, err)
		y, err := b.SampleN(name, generator.NewSource(2024), 20)
		require.NoError(t, err)
		assert.Equal(t, x, y, name)
	}
}

func TestCatalog_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale  string
		name    string
		pattern string
	}{
		{"en_us", catalog.PhoneNumber, `^\(\d{3}\) \d{3}-\d{4}$`},
		{"en_us", catalog.PostalCode, `^\d{5}(-\d{4})?$`},
		{"en_us", catalog.SecondaryAddress, `^(Apt\.|Suite) \d{3}$`},
		{"en_us", catalog.StreetAddress, `^\d{3,5} \S+ \S+$`},
		{"en_us", catalog.Domain, `^[a-z]+\.[a-z]+$`},
		{"en_us", catalog.Email, `^[a-z]+\d{0,2}@[a-z]+\.[a-z]+$`},
		{"en_us", catalog.LoremSentence, `^[A-Z][a-z]*( [a-z]+){2,6}\.$`},
		{"en_us", catalog.Address, `^[^\n]+\n[^\n]+\n[^\n]+, [A-Z]{2} \d{5}(-\d{4})?\n$`},
		{"en_us", catalog.ASCIIDigit, `^\d$`},
		{"en_us", catalog.ASCIILowercase, `^[a-z]$`},
		{"fr_fr", catalog.PhoneNumber, `^0\d \d{2} \d{2} \d{2} \d{2}$`},
		{"fr_fr", catalog.PostalCode, `^\d{5}$`},
		{"fr_fr", catalog.SecondaryAddress, `^(Apt\. \d{3}|\d étage)$`},
		{"fr_fr", catalog.Domain, `^[a-z]+\.[a-z]+$`},
		{"fr_fr", catalog.Email, `^[a-z]+\d{0,2}@[a-z]+\.[a-z]+$`},
		{"fr_fr", catalog.Address, `(?s)^.+\n\d{5} [^\n]+\nFRANCE\n$`},
	}

	catalogs, err := catalog.LoadAll(context.Background())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.name, func(t *testing.T) {
			t.Parallel()
			re := regexp.MustCompile(tt.pattern)
			values, err := catalogs[tt.locale].SampleN(tt.name, generator.NewSource(99), 300)
			require.NoError(t, err)
			for _, v := range values {
				assert.Regexp(t, re, v)
			}
		})
	}
}

func TestCatalog_Paragraphs(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load(context.Background(), "en_us")
	require.NoError(t, err)

	src := generator.NewSource(5)
	for range 50 {
		v, err := c.Sample(catalog.LoremParagraphs, src)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(v, "\n"))
		n := strings.Count(v, "\n")
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
}
