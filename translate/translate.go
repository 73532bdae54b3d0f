// Package translate formats user-facing messages in the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when no user locale can be parsed.
const DEFAULT_LOCALE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hrm: locale: %v", err)
	}

	printer = Printer(locales...)
}

// Printer returns a message printer for the first locale that parses,
// or DEFAULT_LOCALE if none do.
func Printer(locales ...string) *message.Printer {
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		return message.NewPrinter(tag)
	}

	return message.NewPrinter(language.MustParse(DEFAULT_LOCALE))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
