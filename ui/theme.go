package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme enlarges widget text so buttons match the big demo labels.
type CustomTheme struct {
	fyne.Theme
	textSize float32
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme(textSize float32) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), textSize: textSize}
}

// Size returns the enlarged text size and defers everything else.
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.textSize > 0 {
		return t.textSize
	}
	return t.Theme.Size(name)
}
