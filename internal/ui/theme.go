package ui

import (
	"image/color"

	"Sketchpad/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// fixedVariantTheme is the default theme pinned to one variant regardless of
// the desktop preference.
type fixedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newTheme(name string) fyne.Theme {
	variant := theme.VariantLight
	if name == config.ThemeDark {
		variant = theme.VariantDark
	}
	return &fixedVariantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

func (t *fixedVariantTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(n, t.variant)
}
