package txt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	assert.Equal(t, "Reschedule", Get("reschedule", "en"))
	assert.Equal(t, "Перенести", Get("reschedule", "ru"))
	assert.Equal(t, "Step 5 of 5", Get("step_of", "en", 5, 5))
}

func TestGetFallsBack(t *testing.T) {
	assert.Equal(t, "Reschedule", Get("reschedule", "de"))
	assert.Equal(t, "no_such_key", Get("no_such_key", "en"))
}

func TestLang(t *testing.T) {
	assert.Equal(t, "ru", Lang("ru"))
	assert.Equal(t, "uk", Lang("", "uk-UA,uk;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", Lang("de-DE"))
	assert.Equal(t, "en", Lang())
}
