// Package translate formats user-visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const FALLBACK = "en-US" // Locale used when none can be detected.

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("sap1: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the best supported language of the locales. With no locales,
// FALLBACK is used.
func Use(locales ...string) (tag language.Tag) {
	if len(locales) == 0 {
		locales = []string{FALLBACK}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
