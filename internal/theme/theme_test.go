package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseSelectsAccent(t *testing.T) {
	origHeader, origTab, origBar := HeaderStyle, ActiveTabStyle, BarStyle
	t.Cleanup(func() {
		HeaderStyle, ActiveTabStyle, BarStyle = origHeader, origTab, origBar
	})

	Use("sapphire")
	assert.Equal(t, ColorBlue, HeaderStyle.GetBackground())
	assert.Equal(t, ColorBlue, ActiveTabStyle.GetForeground())
	assert.Equal(t, ColorBlue, BarStyle.GetForeground())

	Use("emerald")
	assert.Equal(t, ColorGreen, BarStyle.GetForeground())
}

func TestUseUnknownNameFallsBackToGold(t *testing.T) {
	origHeader, origTab, origBar := HeaderStyle, ActiveTabStyle, BarStyle
	t.Cleanup(func() {
		HeaderStyle, ActiveTabStyle, BarStyle = origHeader, origTab, origBar
	})

	Use("lavender")
	assert.Equal(t, ColorGold, HeaderStyle.GetBackground())
	assert.Equal(t, ColorGold, BarStyle.GetForeground())
}
