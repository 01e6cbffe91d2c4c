package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480

	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// Settings manages user preferences persisted by Fyne
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetWindowSize returns the last saved window size
func (s *Settings) GetWindowSize() fyne.Size {
	w := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	h := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(max(w, MinWindowWidth)), float32(max(h, MinWindowHeight)))
}

// SetWindowSize saves the window size, ignoring sizes below the minimum
func (s *Settings) SetWindowSize(size fyne.Size) {
	if int(size.Width) < MinWindowWidth || int(size.Height) < MinWindowHeight {
		return
	}
	s.app.Preferences().SetInt(KeyWindowWidth, int(size.Width))
	s.app.Preferences().SetInt(KeyWindowHeight, int(size.Height))
}
