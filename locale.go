package money

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// localeConfig lists the environment variables consulted for the default
// locale, in order of precedence.
type localeConfig struct {
	Locale   string `envconfig:"MONEY_LOCALE"`
	All      string `envconfig:"LC_ALL"`
	Monetary string `envconfig:"LC_MONETARY"`
	Lang     string `envconfig:"LANG"`
}

var (
	defaultsOnce    sync.Once
	defaultLocale   language.Tag
	defaultCurrency Currency
	defaultPrinter  *message.Printer
)

// DefaultLocale returns the locale of the process.
// It is taken from the first non-empty variable among MONEY_LOCALE, LC_ALL,
// LC_MONETARY and LANG, and is resolved only once.
// Both BCP 47 tags ("de-CH") and POSIX locale names ("de_CH.UTF-8") are
// accepted.
// If none of the variables holds a usable locale, "en-US" is used.
func DefaultLocale() language.Tag {
	loadDefaults()
	return defaultLocale
}

// DefaultCurrency returns the currency of the region of [DefaultLocale].
// If the region has no registered currency, [USD] is used.
func DefaultCurrency() Currency {
	loadDefaults()
	return defaultCurrency
}

func loadDefaults() {
	defaultsOnce.Do(func() {
		defaultLocale = resolveLocale(lookupLocale())
		defaultCurrency = regionCurrency(defaultLocale)
		defaultPrinter = message.NewPrinter(defaultLocale)
	})
}

// printerFor returns a printer for the tag.
// The printer of the default locale is shared; [language.Und] selects it too.
func printerFor(tag language.Tag) *message.Printer {
	loadDefaults()
	if tag == language.Und || tag == defaultLocale {
		return defaultPrinter
	}
	return message.NewPrinter(tag)
}

// lookupLocale returns the raw locale found in the environment or an empty
// string.
func lookupLocale() string {
	var cfg localeConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return ""
	}
	return lo.FirstOr(lo.Compact([]string{cfg.Locale, cfg.All, cfg.Monetary, cfg.Lang}), "")
}

// resolveLocale converts a BCP 47 tag or a POSIX locale name to a language tag.
func resolveLocale(raw string) language.Tag {
	// POSIX names look like "language_TERRITORY.codeset@modifier".
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(raw)
	if err != nil || tag == language.Und {
		return language.AmericanEnglish
	}
	return tag
}

// regionCurrency returns the registered currency used in the region of the tag.
func regionCurrency(tag language.Tag) Currency {
	u, conf := currency.FromTag(tag)
	if conf == language.No {
		return USD
	}
	c, err := ParseCurr(u.String())
	if err != nil {
		return USD
	}
	return c
}
