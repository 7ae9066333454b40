// Package translate formats user-facing messages for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("alpha: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the best match among locales for all later messages. With no
// locales, en-US is used.
//
// Use is not safe to call while other goroutines format messages; call it
// once at startup.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Number formats a machine word with the grouping rules of the user locale.
func Number(value int32) string {
	return printer.Sprint(value)
}
