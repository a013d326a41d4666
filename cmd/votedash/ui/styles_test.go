package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"votedash/internal/config"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark, "black background should pick dark theme")

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark, "white background should pick light theme")

	t.Setenv("COLORFGBG", "")
	assert.False(t, DetectTheme().IsDark, "default should be light")
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")

	assert.False(t, ThemeFor(config.ThemeLight).IsDark)
	assert.True(t, ThemeFor(config.ThemeDark).IsDark)
	assert.True(t, ThemeFor(config.ThemeAuto).IsDark)
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.Empty(t, s.RenderDivider(0))
	assert.Contains(t, s.RenderDivider(3), "───")
}
