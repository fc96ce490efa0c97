// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package model

import (
	"strings"
	"testing"
)

func TestNewChatDefaults(t *testing.T) {
	c := NewChat()
	if c.ID == "" {
		t.Error("new chat has empty id")
	}
	if c.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", c.Title, DefaultTitle)
	}
	if c.Messages == nil || len(c.Messages) != 0 {
		t.Error("new chat should have an empty non-nil transcript")
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short content kept whole", "Hello", "Hello"},
		{"exactly 30 chars kept whole", strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{"long content truncated", strings.Repeat("a", 40), strings.Repeat("a", 30) + "…"},
		{
			"realistic question",
			"Hello there, how are you doing today?",
			"Hello there, how are you doing…",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTitle(tt.content); got != tt.want {
				t.Errorf("DeriveTitle(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestDeriveTitleRuneCount(t *testing.T) {
	got := DeriveTitle(strings.Repeat("x", 40))
	if n := len([]rune(got)); n != 31 {
		t.Errorf("truncated title is %d runes, want 31 (30 content + ellipsis)", n)
	}
}

func TestAppendDerivesTitleOnce(t *testing.T) {
	c := NewChat()
	c.Append(NewMessage(RoleUser, "First question about something long enough to truncate nicely"))
	first := c.Title
	if first == DefaultTitle {
		t.Fatal("title not derived from first user message")
	}

	c.Append(NewMessage(RoleAssistant, "An answer"))
	c.Append(NewMessage(RoleUser, "A completely different followup"))
	if c.Title != first {
		t.Errorf("title changed after later messages: %q -> %q", first, c.Title)
	}
}

func TestAppendNoTitleFromAssistant(t *testing.T) {
	c := NewChat()
	c.Append(NewMessage(RoleAssistant, "Unprompted greeting"))
	if c.Title != DefaultTitle {
		t.Errorf("assistant message must not set the title, got %q", c.Title)
	}
}

func TestAppendNoTitleAfterRename(t *testing.T) {
	c := NewChat()
	c.Title = "My custom title"
	c.Append(NewMessage(RoleUser, "hello"))
	if c.Title != "My custom title" {
		t.Errorf("manual title overwritten: %q", c.Title)
	}
}

func TestLastMessageAndPreview(t *testing.T) {
	c := NewChat()
	if c.LastMessage() != nil {
		t.Error("empty chat should have no last message")
	}
	if got := c.Preview(40); got != "No messages yet" {
		t.Errorf("empty preview = %q", got)
	}

	c.Append(NewMessage(RoleUser, "line one\nline two"))
	if got := c.Preview(40); got != "line one" {
		t.Errorf("preview = %q, want first line only", got)
	}
}

func TestSettingsPatchApply(t *testing.T) {
	s := DefaultSettings()

	light := ThemeLight
	got := SettingsPatch{Theme: &light}.Apply(s)
	if got.Theme != ThemeLight {
		t.Errorf("theme = %q, want light", got.Theme)
	}
	if got.FontSize != FontSizeMedium || got.ShowTimestamps != true {
		t.Error("unset patch fields must keep their values")
	}

	off := false
	got = SettingsPatch{ShowTimestamps: &off}.Apply(got)
	if got.ShowTimestamps {
		t.Error("ShowTimestamps not updated")
	}
	if got.Theme != ThemeLight {
		t.Error("previous theme change lost")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Theme != ThemeDark {
		t.Errorf("theme = %q, want dark", s.Theme)
	}
	if s.FontSize != FontSizeMedium {
		t.Errorf("fontSize = %q, want medium", s.FontSize)
	}
	if !s.ShowTimestamps {
		t.Error("showTimestamps should default to true")
	}
}
