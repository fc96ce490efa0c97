// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package chat

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vexlabs/vex-tui/internal/llm"
	"github.com/vexlabs/vex-tui/internal/model"
	"github.com/vexlabs/vex-tui/internal/toast"
	"github.com/vexlabs/vex-tui/internal/ui/components"
	"github.com/vexlabs/vex-tui/internal/util"
)

// Update is the bubbletea message dispatcher.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.rebuildRenderer(m.transcriptWidth())
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case toast.TickMsg:
		m.toasts.Tick(toast.TickInterval)
		return m, toast.TickCmd()

	case spinner.TickMsg:
		if !m.store.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ReplyMsg:
		return m.handleReply(msg)

	case SaveErrorMsg:
		m.logger.Error("state save failed", zap.Error(msg.Err))
		m.toasts.Error("Failed to save chats: " + msg.Err.Error())
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.welcome = components.NewWelcome(m.theme, m.version, m.cfg.API.Model)
		m.layout()
		m.rebuildRenderer(m.transcriptWidth())
		m.refreshTranscript()
		m.toasts.Info("Configuration reloaded")
		return m, nil
	}

	return m.updateComponents(msg)
}

// handleKey dispatches keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+n":
		m.newChat()
		return m, nil

	case "ctrl+b":
		m.toggleSidebar()
		return m, nil

	case "ctrl+k":
		m.cycleChat(-1)
		return m, nil

	case "ctrl+j":
		m.cycleChat(1)
		return m, nil

	case "enter":
		return m.submit()

	case "esc":
		m.notice = ""
		m.input.Reset()
		return m, nil
	}

	return m.updateComponents(msg)
}

// updateComponents forwards messages to the focused input and the
// transcript viewport.
func (m *Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit handles enter: run a slash command or send the message.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.notice = ""
	m.input.Reset()

	if cmd, ok := ParseCommand(text); ok {
		return m.runCommand(cmd)
	}
	return m.sendMessage(text)
}

// sendMessage appends the user's message and fires the completion request
// tagged with the originating chat id.
func (m *Model) sendMessage(text string) (tea.Model, tea.Cmd) {
	if m.store.Loading() {
		m.toasts.Warning("Still generating, hold on")
		return m, nil
	}

	chatID := m.store.CurrentChatID()
	if _, ok := m.store.CurrentChat(); !ok {
		chatID = m.store.CreateChat().ID
	}

	m.store.AddMessage(chatID, model.NewMessage(model.RoleUser, text))
	m.store.SetLoading(true)
	m.refreshTranscript()
	m.viewport.GotoBottom()

	chat, _ := m.store.Chat(chatID)
	return m, tea.Batch(m.spin.Tick, m.generateCmd(chatID, chat.Messages))
}

// generateCmd builds the completion command for one request. The returned
// ReplyMsg carries the chat id so a reply never lands in the wrong chat.
func (m *Model) generateCmd(chatID string, transcript []model.Message) tea.Cmd {
	timeout := m.cfg.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		content, err := m.llm.Complete(ctx, llm.BuildMessages(transcript))
		return ReplyMsg{ChatID: chatID, Content: content, Err: err}
	}
}

// handleReply lands a finished generation.
func (m *Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.store.SetLoading(false)

	if msg.Err != nil {
		m.logger.Warn("completion failed", zap.String("chat", msg.ChatID), zap.Error(msg.Err))
		m.toasts.Error(msg.Err.Error())
		return m, nil
	}

	m.store.AddMessage(msg.ChatID, model.NewMessage(model.RoleAssistant, msg.Content))
	if msg.ChatID == m.store.CurrentChatID() {
		m.refreshTranscript()
		m.viewport.GotoBottom()
	}
	return m, nil
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m *Model) runCommand(cmd Command) (tea.Model, tea.Cmd) {
	switch cmd.Name {
	case "new":
		m.newChat()

	case "rename":
		if cmd.Args == "" {
			m.toasts.Warning("Usage: /rename <title>")
			break
		}
		id := m.store.CurrentChatID()
		if _, ok := m.store.CurrentChat(); !ok {
			m.toasts.Warning("No chat selected")
			break
		}
		m.store.UpdateChatTitle(id, cmd.Args)
		m.toasts.Success("Chat renamed")

	case "delete":
		if _, ok := m.store.CurrentChat(); !ok {
			m.toasts.Warning("No chat selected")
			break
		}
		m.store.DeleteChat(m.store.CurrentChatID())
		m.toasts.Success("Chat deleted")
		m.refreshTranscript()

	case "clear":
		m.store.ClearChats()
		m.toasts.Success("All chats cleared")
		m.refreshTranscript()

	case "theme":
		m.setTheme(cmd.Args)

	case "fontsize":
		m.setFontSize(cmd.Args)

	case "timestamps":
		cur := m.store.Settings().ShowTimestamps
		next := !cur
		m.store.UpdateSettings(model.SettingsPatch{ShowTimestamps: &next})
		if next {
			m.toasts.Info("Timestamps shown")
		} else {
			m.toasts.Info("Timestamps hidden")
		}
		m.refreshTranscript()

	case "settings":
		m.notice = settingsText(m.store.Settings())

	case "export":
		m.exportChat(cmd.Args)

	case "help":
		m.notice = helpText

	case "quit", "exit":
		return m, tea.Quit

	default:
		m.toasts.Warning("Unknown command /" + cmd.Name)
	}
	return m, nil
}

func (m *Model) newChat() {
	m.store.CreateChat()
	m.toasts.Success("New chat created")
	m.refreshTranscript()
}

func (m *Model) toggleSidebar() {
	if m.store.ToggleSidebar() {
		m.toasts.Info("Sidebar visible")
	} else {
		m.toasts.Info("Sidebar hidden")
	}
	m.layout()
	m.rebuildRenderer(m.transcriptWidth())
	m.refreshTranscript()
}

// cycleChat moves the selection up or down the sidebar list.
func (m *Model) cycleChat(delta int) {
	chats := m.store.Chats()
	if len(chats) == 0 {
		return
	}
	cur := m.store.CurrentChatID()
	idx := 0
	for i, c := range chats {
		if c.ID == cur {
			idx = i + delta
			break
		}
	}
	if idx < 0 {
		idx = len(chats) - 1
	}
	if idx >= len(chats) {
		idx = 0
	}
	m.store.SetCurrentChat(chats[idx].ID)
	m.refreshTranscript()
	m.viewport.GotoBottom()
}

func (m *Model) setTheme(arg string) {
	var theme model.Theme
	switch strings.ToLower(arg) {
	case "dark":
		theme = model.ThemeDark
	case "light":
		theme = model.ThemeLight
	case "system":
		theme = model.ThemeSystem
	default:
		m.toasts.Warning("Usage: /theme <dark|light|system>")
		return
	}
	m.store.UpdateSettings(model.SettingsPatch{Theme: &theme})
	m.applyTheme()
	switch theme {
	case model.ThemeDark:
		m.toasts.Info("Dark mode activated")
	case model.ThemeLight:
		m.toasts.Info("Light mode activated")
	default:
		m.toasts.Info("System mode activated")
	}
}

func (m *Model) setFontSize(arg string) {
	var size model.FontSize
	switch strings.ToLower(arg) {
	case "small", "s":
		size = model.FontSizeSmall
	case "medium", "m":
		size = model.FontSizeMedium
	case "large", "l":
		size = model.FontSizeLarge
	default:
		m.toasts.Warning("Usage: /fontsize <small|medium|large>")
		return
	}
	m.store.UpdateSettings(model.SettingsPatch{FontSize: &size})
	m.toasts.Info("Font size set to " + string(size))
	m.refreshTranscript()
}

func (m *Model) exportChat(arg string) {
	chat, ok := m.store.CurrentChat()
	if !ok {
		m.toasts.Warning("No chat selected")
		return
	}

	path := arg
	if path == "" {
		path = defaultExportName(chat.Title)
	}
	if !filepath.IsAbs(path) {
		if wd, err := os.Getwd(); err == nil {
			path = filepath.Join(wd, path)
		}
	}

	content := ExportMarkdown(chat, m.store.Settings().ShowTimestamps)
	if err := util.AtomicWriteFile(path, []byte(content), 0644); err != nil {
		m.logger.Error("export failed", zap.String("path", path), zap.Error(err))
		m.toasts.Error("Export failed: " + err.Error())
		return
	}
	m.toasts.Success("Exported to " + path)
}
