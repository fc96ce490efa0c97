// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package model

// Theme selects the application color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	// ThemeSystem follows the terminal's detected background.
	ThemeSystem Theme = "system"
)

// FontSize selects the relative text size used by the renderer.
type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
)

// UserSettings holds per-user display preferences. Persisted alongside the
// chat list so preferences survive restarts.
type UserSettings struct {
	Theme          Theme    `json:"theme"`
	FontSize       FontSize `json:"fontSize"`
	ShowTimestamps bool     `json:"showTimestamps"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:          ThemeDark,
		FontSize:       FontSizeMedium,
		ShowTimestamps: true,
	}
}

// SettingsPatch is a partial update to UserSettings. Nil fields are left
// untouched when the patch is applied.
type SettingsPatch struct {
	Theme          *Theme
	FontSize       *FontSize
	ShowTimestamps *bool
}

// Apply merges the patch into s, field by field. Unset fields keep their
// current values.
func (p SettingsPatch) Apply(s UserSettings) UserSettings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.FontSize != nil {
		s.FontSize = *p.FontSize
	}
	if p.ShowTimestamps != nil {
		s.ShowTimestamps = *p.ShowTimestamps
	}
	return s
}
