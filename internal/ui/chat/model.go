// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package chat implements the main TUI: the transcript view, the input
// area, the sidebar, and the toast overlay, glued to the store and the
// completion client.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/vexlabs/vex-tui/internal/config"
	"github.com/vexlabs/vex-tui/internal/llm"
	"github.com/vexlabs/vex-tui/internal/model"
	"github.com/vexlabs/vex-tui/internal/store"
	"github.com/vexlabs/vex-tui/internal/toast"
	"github.com/vexlabs/vex-tui/internal/ui/components"
	"github.com/vexlabs/vex-tui/internal/ui/styles"
)

// Completer is the surface of the llm client the UI depends on. Narrowed
// for testability.
type Completer interface {
	Complete(ctx context.Context, messages []llm.ChatMessage) (string, error)
}

// Options wires the model's collaborators.
type Options struct {
	Store     *store.Store
	Toasts    *toast.Manager
	Completer Completer
	Config    *config.Config
	Logger    *zap.Logger
	Version   string
}

// Model is the bubbletea model for the whole application.
type Model struct {
	store  *store.Store
	toasts *toast.Manager
	llm    Completer
	cfg    *config.Config
	logger *zap.Logger

	theme    *styles.Theme
	renderer *glamour.TermRenderer

	input    textarea.Model
	viewport viewport.Model
	spin     spinner.Model
	sidebar  components.Sidebar
	welcome  components.Welcome

	width   int
	height  int
	ready   bool
	version string

	// notice holds transient full-pane text (/help, /settings output),
	// cleared on the next input.
	notice string
}

// New builds the application model.
func New(opts Options) *Model {
	theme := styles.ForSettings(opts.Store.Settings())

	input := textarea.New()
	input.Placeholder = "Ask anything, or /help"
	input.ShowLineNumbers = false
	input.SetHeight(3)
	input.CharLimit = 0
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		store:   opts.Store,
		toasts:  opts.Toasts,
		llm:     opts.Completer,
		cfg:     opts.Config,
		logger:  opts.Logger,
		theme:   theme,
		input:   input,
		spin:    spin,
		sidebar: components.NewSidebar(theme, opts.Config.UI.SidebarWidth),
		welcome: components.NewWelcome(theme, opts.Version, opts.Config.API.Model),
		version: opts.Version,
	}
	m.rebuildRenderer(80)
	return m
}

// Init starts the toast ticker and the cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(toast.TickCmd(), textarea.Blink, m.spin.Tick)
}

// rebuildRenderer recreates the glamour renderer for the current theme
// and width. Rendering is disabled entirely via config.
func (m *Model) rebuildRenderer(width int) {
	if !m.cfg.UI.Markdown {
		m.renderer = nil
		return
	}
	style := "dark"
	if m.theme.Name == model.ThemeLight {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", zap.Error(err))
		m.renderer = nil
		return
	}
	m.renderer = r
}

// renderMarkdown renders assistant content, falling back to the raw text
// when glamour is disabled or fails.
func (m *Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

// applyTheme restyles every component after a settings change.
func (m *Model) applyTheme() {
	m.theme = styles.ForSettings(m.store.Settings())
	m.sidebar.SetTheme(m.theme)
	m.welcome.SetTheme(m.theme)
	m.rebuildRenderer(m.transcriptWidth())
	m.refreshTranscript()
}

// transcriptWidth is the content width of the transcript viewport.
func (m *Model) transcriptWidth() int {
	w := m.width
	if m.store.SidebarOpen() {
		w -= m.cfg.UI.SidebarWidth + 1
	}
	w -= 2
	if w < 20 {
		w = 20
	}
	return w
}
