package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(FALLBACK)
	assert.Equal(FALLBACK, Language())

	assert.Equal("pc 3", From("pc %d", 3))
	assert.Equal("line 7 stop", From("line %d %v", 7, "stop"))
	assert.Equal("ticks 12,345", From("ticks %d", 12345))
}

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(FALLBACK)

	SetLanguage(language.German)
	assert.Equal(language.German, Language())
	assert.Equal("ticks 12.345", From("ticks %d", 12345))
}
