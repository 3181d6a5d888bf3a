// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user facing messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mipsi: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Use switches the message printer to a specific language tag.
// Unknown tags fall back to en-US.
func Use(tag string) {
	lang, err := language.Parse(tag)
	if err != nil {
		lang = language.AmericanEnglish
	}
	printer = message.NewPrinter(lang)
}

type sentinel struct {
	key string
}

func (msg *sentinel) Error() string {
	return From(msg.key)
}

// Error returns a sentinel error for an en-US message. The text is translated
// each time it is formatted, so it follows later calls to Use.
func Error(key string) error {
	return &sentinel{key: key}
}
