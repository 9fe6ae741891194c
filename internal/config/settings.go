package config

import (
	"fyne.io/fyne/v2"
)

// Appearance options
type Appearance string

const (
	AppearanceSystem Appearance = "system"
	AppearanceLight  Appearance = "light"
	AppearanceDark   Appearance = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage   = "app_language"
	KeyAppearance = "appearance"
)

// Default values
const (
	DefaultLanguage   = "pt"
	DefaultAppearance = AppearanceSystem
)

// Settings manages application configuration
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

// GetAppearance returns the configured appearance
func (s *Settings) GetAppearance() Appearance {
	appearance := s.app.Preferences().String(KeyAppearance)
	if appearance == "" {
		s.SetAppearance(DefaultAppearance)
		return DefaultAppearance
	}
	return Appearance(appearance)
}

// SetAppearance sets the appearance
func (s *Settings) SetAppearance(appearance Appearance) {
	s.app.Preferences().SetString(KeyAppearance, string(appearance))
}

// GetAppearanceOptions returns available appearance options
func (s *Settings) GetAppearanceOptions() []Appearance {
	return []Appearance{AppearanceSystem, AppearanceLight, AppearanceDark}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en": "English",
		"pt": "Português",
	}
}
