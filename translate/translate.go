// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate renders user-visible TOY messages through a locale
// aware printer.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("toy: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer from a list of BCP 47 tags, best match
// first, and returns the matched tag. An empty list selects en-US.
func SetLanguage(tags ...string) (tag language.Tag) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	tag = message.MatchLanguage(tags...)
	printer.Store(message.NewPrinter(tag))

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
