// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package model

import (
	"time"

	"github.com/vexlabs/vex-tui/internal/ident"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single entry in a chat transcript.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a fresh id and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        ident.NewMessageID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
