package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetWindowSize()
	if size != fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight) {
		t.Errorf("Expected default size %dx%d, got %v", DefaultWindowWidth, DefaultWindowHeight, size)
	}

	// Test setting custom value
	settings.SetWindowSize(fyne.NewSize(800, 600))
	if got := settings.GetWindowSize(); got != fyne.NewSize(800, 600) {
		t.Errorf("Expected size 800x600, got %v", got)
	}

	// Sizes below the minimum are ignored
	settings.SetWindowSize(fyne.NewSize(10, 10))
	if got := settings.GetWindowSize(); got != fyne.NewSize(800, 600) {
		t.Errorf("Tiny size should be ignored, got %v", got)
	}
}
