// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package components

import (
	"strings"
	"testing"

	"github.com/vexlabs/vex-tui/internal/model"
	"github.com/vexlabs/vex-tui/internal/toast"
	"github.com/vexlabs/vex-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.ForSettings(model.DefaultSettings())
}

func TestRenderToastContainsMessage(t *testing.T) {
	m := toast.NewManager()
	m.Show(toast.KindError, "Failed to save chats")

	out := RenderToast(m.Active()[0], testTheme(), 80)
	if !strings.Contains(out, "Failed to save chats") {
		t.Error("toast message missing from render")
	}
	if !strings.Contains(out, styles.StatusIndicators.Error) {
		t.Error("error marker missing from render")
	}
}

func TestRenderToastStackEmpty(t *testing.T) {
	if out := RenderToastStack(nil, testTheme(), 80, 24); out != "" {
		t.Errorf("empty stack should render nothing, got %q", out)
	}
}

func TestRenderToastStackAll(t *testing.T) {
	m := toast.NewManager()
	m.Success("New chat created")
	m.Info("Sidebar hidden")

	out := RenderToastStack(m.Active(), testTheme(), 80, 24)
	if !strings.Contains(out, "New chat created") || !strings.Contains(out, "Sidebar hidden") {
		t.Error("stack render missing a toast")
	}
}

func TestSidebarMarksCurrent(t *testing.T) {
	chats := []model.Chat{
		{ID: "a", Title: "Current chat"},
		{ID: "b", Title: "Other chat"},
	}
	sb := NewSidebar(testTheme(), 32)
	sb.SetSize(32, 24)

	out := sb.View(chats, "a")
	if !strings.Contains(out, "> Current chat") {
		t.Error("current chat not marked")
	}
	if strings.Contains(out, "> Other chat") {
		t.Error("non-current chat marked as selected")
	}
}

func TestSidebarEmptyState(t *testing.T) {
	sb := NewSidebar(testTheme(), 32)
	sb.SetSize(32, 24)
	out := sb.View(nil, "")
	if !strings.Contains(out, "No chats yet") {
		t.Error("empty state hint missing")
	}
}

func TestWelcomeView(t *testing.T) {
	w := NewWelcome(testTheme(), "1.0.0", "gpt-4o-mini")
	w.SetSize(80, 24)
	out := w.View()
	if !strings.Contains(out, "VEX AI") {
		t.Error("title missing")
	}
	if !strings.Contains(out, "gpt-4o-mini") {
		t.Error("model name missing")
	}
}
