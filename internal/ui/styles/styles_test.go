// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package styles

import (
	"testing"

	"github.com/vexlabs/vex-tui/internal/model"
)

func TestForSettings(t *testing.T) {
	dark := ForSettings(model.UserSettings{Theme: model.ThemeDark})
	if dark.Name != model.ThemeDark {
		t.Errorf("theme name = %q", dark.Name)
	}
	light := ForSettings(model.UserSettings{Theme: model.ThemeLight})
	if light.Name != model.ThemeLight {
		t.Errorf("theme name = %q", light.Name)
	}
	if dark.Accent == light.Accent {
		t.Error("dark and light themes should differ")
	}
	// Unknown theme values fall back to dark.
	fallback := ForSettings(model.UserSettings{Theme: "sepia"})
	if fallback.Name != model.ThemeDark {
		t.Errorf("fallback theme = %q, want dark", fallback.Name)
	}
	// System resolves to one of the two concrete themes.
	system := ForSettings(model.UserSettings{Theme: model.ThemeSystem})
	if system.Name != model.ThemeDark && system.Name != model.ThemeLight {
		t.Errorf("system theme resolved to %q", system.Name)
	}
}

func TestToastIcon(t *testing.T) {
	if ToastIcon("error") != StatusIndicators.Error {
		t.Error("error icon mismatch")
	}
	if ToastIcon("anything else") != StatusIndicators.Info {
		t.Error("unknown kinds should use the info marker")
	}
}

func TestToastColor(t *testing.T) {
	th := darkTheme()
	if th.ToastColor("success") != th.Success {
		t.Error("success color mismatch")
	}
	if th.ToastColor("default") != th.Accent {
		t.Error("default toasts should use the accent color")
	}
}
