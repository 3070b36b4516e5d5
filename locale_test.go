package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "en-US"},
		{"C", "en-US"},
		{"POSIX", "en-US"},
		{"C.UTF-8", "en-US"},
		{"en_GB.UTF-8", "en-GB"},
		{"de_CH.UTF-8@euro", "de-CH"},
		{"fr-FR", "fr-FR"},
		{"ja_JP", "ja-JP"},
		{"!!!", "en-US"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveLocale(tt.raw).String(), "resolveLocale(%q)", tt.raw)
	}
}

func TestRegionCurrency(t *testing.T) {
	tests := []struct {
		tag  string
		want Currency
	}{
		{"en-US", USD},
		{"en-GB", GBP},
		{"de-DE", EUR},
		{"de-CH", CHF},
		{"ja-JP", JPY},
		{"sw-KE", KES},
		{"es-AR", ARS},
		{"fr-SN", XOF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, regionCurrency(language.MustParse(tt.tag)), "regionCurrency(%v)", tt.tag)
	}
}

func TestLookupLocale(t *testing.T) {
	t.Setenv("MONEY_LOCALE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MONETARY", "de_CH.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "de_CH.UTF-8", lookupLocale(), "LC_MONETARY must win over LANG")

	t.Setenv("MONEY_LOCALE", "ja-JP")
	assert.Equal(t, "ja-JP", lookupLocale(), "MONEY_LOCALE must win over LC_MONETARY")

	t.Setenv("MONEY_LOCALE", "")
	t.Setenv("LC_MONETARY", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "", lookupLocale(), "lookupLocale() with no variables set")
}

func TestDefaults(t *testing.T) {
	tag := DefaultLocale()
	assert.NotEqual(t, language.Und, tag, "DefaultLocale() = und")
	assert.Equal(t, tag, DefaultLocale(), "default locale must not change")
	assert.Equal(t, regionCurrency(tag), DefaultCurrency(), "DefaultCurrency() for %v", tag)
}

func TestPrinterFor(t *testing.T) {
	p := printerFor(DefaultLocale())
	assert.Same(t, p, printerFor(DefaultLocale()), "printerFor(%v) must be cached", DefaultLocale())
	assert.Same(t, p, printerFor(language.Und), "printerFor(und) must use the default locale")

	other := language.Japanese
	if other == DefaultLocale() {
		other = language.German
	}
	assert.NotSame(t, p, printerFor(other), "printerFor(%v)", other)
}
