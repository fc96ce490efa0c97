// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vexlabs/vex-tui/internal/model"
	"github.com/vexlabs/vex-tui/internal/ui/styles"
	"github.com/vexlabs/vex-tui/internal/util"
)

// Sidebar renders the chat list.
type Sidebar struct {
	width  int
	height int
	theme  *styles.Theme
}

// NewSidebar creates a sidebar with the given width.
func NewSidebar(theme *styles.Theme, width int) Sidebar {
	return Sidebar{theme: theme, width: width}
}

// SetSize updates the sidebar dimensions. Width excludes the border.
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetTheme swaps the theme, used when the user changes their setting.
func (s *Sidebar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// Width returns the content width.
func (s *Sidebar) Width() int {
	return s.width
}

// View renders the chat list, newest first, marking the current chat.
func (s *Sidebar) View(chats []model.Chat, currentID string) string {
	inner := s.width - 2
	if inner < 8 {
		inner = 8
	}

	var b strings.Builder
	b.WriteString(s.theme.SidebarTitle.Render(util.PadDisplay("Chats", inner)))
	b.WriteString("\n\n")

	if len(chats) == 0 {
		b.WriteString(s.theme.SidebarPreview.Render("No chats yet"))
		b.WriteString("\n")
		b.WriteString(s.theme.SidebarPreview.Render("Press ctrl+n to start"))
	}

	// Two rows per chat, title and preview; stop when out of room.
	maxEntries := (s.height - 3) / 3
	for i, c := range chats {
		if maxEntries > 0 && i >= maxEntries {
			more := fmt.Sprintf("… %d more", len(chats)-i)
			b.WriteString(s.theme.SidebarPreview.Render(util.TruncateDisplay(more, inner)))
			break
		}

		marker := "  "
		titleStyle := s.theme.SidebarItem
		if c.ID == currentID {
			marker = "> "
			titleStyle = s.theme.SidebarSelected
		}
		title := util.TruncateDisplay(c.Title, inner-2)
		b.WriteString(titleStyle.Render(marker + title))
		b.WriteString("\n")
		b.WriteString(s.theme.SidebarPreview.Render("  " + c.Preview(inner-2)))
		b.WriteString("\n\n")
	}

	body := lipgloss.NewStyle().
		Width(s.width).
		Height(s.height).
		Render(b.String())
	return s.theme.SidebarBorder.Render(body)
}
