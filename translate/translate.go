// Package translate localizes the user-facing strings of tapevm.
//
// The language is picked from the user's locales when the package loads.
// Sentinel errors are translated once, when their package initializes;
// typed errors are translated each time their Error() is called.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const FALLBACK_LOCALE = "en-US" // Used when no locale is known.

var (
	current language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("tapevm: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the best match for the BCP 47 locales among the catalog
// languages. No locales selects FALLBACK_LOCALE.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{FALLBACK_LOCALE}
	}

	current = message.MatchLanguage(locales...)
	printer = message.NewPrinter(current)
}

// Language returns the language strings are translated to.
func Language() language.Tag {
	return current
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
