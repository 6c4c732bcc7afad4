// Package translate formats user-visible messages in the operator's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	FALLBACK = language.AmericanEnglish // Used when the system reports no locale.
)

var (
	lock    sync.RWMutex
	tag     language.Tag
	printer *message.Printer
)

// systemLanguage picks the best language of the system locales.
func systemLanguage() language.Tag {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("td4: locale: %v", err)
	}

	if len(locales) == 0 {
		return FALLBACK
	}

	return message.MatchLanguage(locales...)
}

var initOnce sync.Once

func current() *message.Printer {
	initOnce.Do(func() {
		lock.Lock()
		defer lock.Unlock()
		if printer == nil {
			tag = systemLanguage()
			printer = message.NewPrinter(tag)
		}
	})

	lock.RLock()
	defer lock.RUnlock()
	return printer
}

// Language is the language messages are formatted in.
func Language() language.Tag {
	current()

	lock.RLock()
	defer lock.RUnlock()
	return tag
}

// SetLanguage overrides the system locale.
func SetLanguage(lang language.Tag) {
	initOnce.Do(func() {})

	lock.Lock()
	defer lock.Unlock()
	tag = lang
	printer = message.NewPrinter(lang)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}
