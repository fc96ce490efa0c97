// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/vexlabs/vex-tui/internal/model"
	"github.com/vexlabs/vex-tui/internal/ui/components"
)

// inputHeight is the textarea rows plus its border.
const inputHeight = 5

// View renders the full frame: sidebar, transcript, input, status bar,
// and the toast overlay on top.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	main := m.mainPane()

	var frame string
	if m.store.SidebarOpen() {
		side := m.sidebar.View(m.store.Chats(), m.store.CurrentChatID())
		frame = lipgloss.JoinHorizontal(lipgloss.Top, side, main)
	} else {
		frame = main
	}

	overlay := components.RenderToastStack(m.toasts.Active(), m.theme, m.width, m.height)
	if overlay == "" {
		return frame
	}
	// The toast stack owns the full frame area; render it over the base
	// frame by splicing non-empty overlay lines.
	return spliceOverlay(frame, overlay)
}

// mainPane renders the transcript (or welcome/notice), the input, and the
// status line stacked vertically.
func (m *Model) mainPane() string {
	var body string
	switch {
	case m.notice != "":
		body = lipgloss.NewStyle().
			Padding(1, 2).
			Width(m.transcriptWidth()).
			Render(m.notice)
	default:
		// The welcome screen covers both no selection and a freshly
		// created chat with nothing in it yet.
		if c, ok := m.store.CurrentChat(); ok && len(c.Messages) > 0 {
			body = m.viewport.View()
		} else {
			body = m.welcome.View()
		}
	}

	input := m.theme.InputBorder.
		Width(m.transcriptWidth()).
		Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, body, input, m.statusLine())
}

// statusLine shows generation state and key hints.
func (m *Model) statusLine() string {
	left := "ctrl+n new  ctrl+b sidebar  /help"
	if m.store.Loading() {
		left = m.spin.View() + " thinking"
	}
	return m.theme.StatusBar.Render(" " + left)
}

// layout resizes components to the current window.
func (m *Model) layout() {
	bodyHeight := m.height - inputHeight - 1
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	m.sidebar.SetSize(m.cfg.UI.SidebarWidth, bodyHeight)
	m.welcome.SetSize(m.transcriptWidth(), bodyHeight)

	if m.viewport.Width == 0 {
		m.viewport = viewport.New(m.transcriptWidth(), bodyHeight)
	} else {
		m.viewport.Width = m.transcriptWidth()
		m.viewport.Height = bodyHeight
	}
	m.input.SetWidth(m.transcriptWidth() - 2)
}

// refreshTranscript re-renders the current chat into the viewport.
func (m *Model) refreshTranscript() {
	chat, ok := m.store.CurrentChat()
	if !ok {
		m.viewport.SetContent("")
		return
	}

	settings := m.store.Settings()
	var b strings.Builder
	for _, msg := range chat.Messages {
		b.WriteString(m.renderMessage(msg, settings))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

// renderMessage formats a single transcript entry.
func (m *Model) renderMessage(msg model.Message, settings model.UserSettings) string {
	label := m.theme.UserLabel.Render("You")
	if msg.Role == model.RoleAssistant {
		label = m.theme.AssistantLabel.Render("VEX AI")
	}

	header := label
	if settings.ShowTimestamps {
		header += " " + m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
	}

	body := msg.Content
	if msg.Role == model.RoleAssistant {
		body = strings.TrimRight(m.renderMarkdown(msg.Content), "\n")
	}
	return header + "\n" + body + "\n"
}

// spliceOverlay draws overlay on top of base line by line, keeping base
// content where the overlay line is blank.
func spliceOverlay(base, overlay string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	out := make([]string, len(baseLines))
	copy(out, baseLines)
	for i, ol := range overlayLines {
		if i >= len(out) {
			break
		}
		if strings.TrimSpace(ol) != "" {
			out[i] = ol
		}
	}
	return strings.Join(out, "\n")
}
