package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestFormTheme_GridColor(t *testing.T) {
	th := NewFormTheme()

	if got := th.Color(theme.ColorNameSeparator, theme.VariantLight); got != color.Black {
		t.Errorf("Expected black separator in light variant, got %v", got)
	}

	want := theme.DefaultTheme().Color(theme.ColorNameHover, theme.VariantLight)
	if got := th.Color(theme.ColorNameHover, theme.VariantLight); got != want {
		t.Errorf("Expected default hover color %v, got %v", want, got)
	}

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Expected padding 3, got %v", got)
	}
}
