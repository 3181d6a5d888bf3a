package translate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestError(t *testing.T) {
	assert := assert.New(t)

	defer Use("en-US")

	errBusy := Error("device busy")
	errIdle := Error("device busy")

	assert.Equal("device busy", errBusy.Error())
	assert.True(errors.Is(fmt.Errorf("tape: %w", errBusy), errBusy))
	assert.False(errors.Is(errBusy, errIdle))

	assert.NoError(message.SetString(language.German, "device busy", "Gerät belegt"))
	Use("de")
	assert.Equal("Gerät belegt", errBusy.Error())

	Use("en-US")
	assert.Equal("device busy", errBusy.Error())
}

func TestUse(t *testing.T) {
	assert := assert.New(t)

	defer Use("en-US")

	Use("not a tag!")
	assert.Equal("1,234", From("%d", 1234))
}
