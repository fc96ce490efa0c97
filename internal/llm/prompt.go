// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"github.com/vexlabs/vex-tui/internal/model"
)

// SystemPrompt frames every completion request.
const SystemPrompt = "You are VEX AI, a helpful and knowledgeable assistant. " +
	"Answer clearly and concisely, and use markdown formatting when it helps readability."

// RecencyWindow bounds how much transcript history rides along with each
// request. Older turns are dropped, the newest kept.
const RecencyWindow = 10

// BuildMessages assembles the wire messages for a completion request: the
// system prompt followed by the last RecencyWindow transcript entries.
func BuildMessages(transcript []model.Message) []ChatMessage {
	start := 0
	if len(transcript) > RecencyWindow {
		start = len(transcript) - RecencyWindow
	}
	window := transcript[start:]

	out := make([]ChatMessage, 0, len(window)+1)
	out = append(out, ChatMessage{Role: string(model.RoleSystem), Content: SystemPrompt})
	for _, m := range window {
		out = append(out, ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}
