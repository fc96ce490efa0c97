// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package chat

import (
	"github.com/vexlabs/vex-tui/internal/config"
)

// ReplyMsg carries a completed generation back into the event loop. ChatID
// is the chat the request was sent for, so the reply lands there even if
// the user switched chats while waiting.
type ReplyMsg struct {
	ChatID  string
	Content string
	Err     error
}

// SaveErrorMsg reports a failed background state write.
type SaveErrorMsg struct {
	Err error
}

// ConfigReloadedMsg delivers a hot-reloaded config file.
type ConfigReloadedMsg struct {
	Config *config.Config
}
