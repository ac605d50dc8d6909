package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage()

	SetLanguage()
	assert.Equal("Error at line 1F:\nboom", From("Error at line %02X:\n%v", uint8(0x1f), "boom"))

	// Unknown tags still produce a usable printer.
	SetLanguage("xx-unknown")
	assert.Equal("plain", From("plain"))
}
