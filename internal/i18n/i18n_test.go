package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDictionary(t *testing.T) {
	ko := GetDictionary("ko")
	assert.Equal(t, LocaleKo, ko.Locale)
	assert.NotEmpty(t, ko.Invoice.Title)

	en := GetDictionary("en")
	assert.Equal(t, LocaleEn, en.Locale)
	assert.NotEqual(t, ko.Invoice.Title, en.Invoice.Title)

	// unknown locales fall back to the default
	assert.Equal(t, DefaultLocale, GetDictionary("fr").Locale)
	assert.Equal(t, DefaultLocale, GetDictionary("").Locale)
}

func TestDefaultPolicy(t *testing.T) {
	for _, slug := range []string{"privacy", "shipping"} {
		for _, locale := range []string{"ko", "en"} {
			p, ok := DefaultPolicy(slug, locale)
			assert.True(t, ok, "%s/%s", slug, locale)
			assert.Equal(t, slug, p.Slug)
			assert.Equal(t, locale, p.Locale)
			assert.NotEmpty(t, p.Title)
			assert.NotEmpty(t, p.Sections)
		}
	}

	_, ok := DefaultPolicy("returns", "ko")
	assert.False(t, ok)
	_, ok = DefaultPolicy("privacy", "fr")
	assert.False(t, ok)
}
