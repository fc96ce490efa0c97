// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/vexlabs/vex-tui/internal/model"
)

// Command is a parsed slash command.
type Command struct {
	Name string
	Args string
}

// ParseCommand interprets input as a slash command. Returns false when the
// input is a regular chat message.
func ParseCommand(input string) (Command, bool) {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, "/") {
		return Command{}, false
	}
	body := strings.TrimPrefix(trimmed, "/")
	if body == "" {
		return Command{}, false
	}
	name, args, _ := strings.Cut(body, " ")
	return Command{
		Name: strings.ToLower(name),
		Args: strings.TrimSpace(args),
	}, true
}

// helpText lists every slash command, shown by /help.
const helpText = `Commands:
  /new                start a new chat
  /rename <title>     rename the current chat
  /delete             delete the current chat
  /clear              delete all chats
  /theme <dark|light|system>  switch color theme
  /fontsize <s|m|l>   set font size
  /timestamps         toggle message timestamps
  /settings           show current settings
  /export [path]      export the current chat as markdown
  /help               show this help
  /quit               exit vex`

// settingsText formats the current settings for the /settings command.
func settingsText(s model.UserSettings) string {
	return fmt.Sprintf("theme: %s, font size: %s, timestamps: %v",
		s.Theme, s.FontSize, s.ShowTimestamps)
}

// ExportMarkdown renders a chat transcript as a markdown document.
func ExportMarkdown(c model.Chat, showTimestamps bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "Exported %s\n\n", time.Now().Format("2006-01-02 15:04"))

	for _, m := range c.Messages {
		label := "You"
		if m.Role == model.RoleAssistant {
			label = "VEX AI"
		}
		if showTimestamps {
			fmt.Fprintf(&b, "## %s (%s)\n\n", label, m.Timestamp.Format("15:04:05"))
		} else {
			fmt.Fprintf(&b, "## %s\n\n", label)
		}
		b.WriteString(strings.TrimSpace(m.Content))
		b.WriteString("\n\n")
	}
	return b.String()
}

// defaultExportName builds a filesystem-safe filename from a chat title.
func defaultExportName(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "chat"
	}
	return name + ".md"
}
