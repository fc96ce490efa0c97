// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package model

import (
	"time"

	"github.com/vexlabs/vex-tui/internal/ident"
	"github.com/vexlabs/vex-tui/internal/util"
)

// DefaultTitle is the placeholder title every new chat starts with. A chat
// still carrying it has not received its first user message.
const DefaultTitle = "New Chat"

// TitleMaxRunes bounds derived titles. Longer first messages are cut to
// this many characters plus an ellipsis.
const TitleMaxRunes = 30

// Chat is a single conversation: an ordered transcript plus metadata.
// Messages are stored oldest first.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewChat creates an empty chat with the default title and a fresh id.
func NewChat() *Chat {
	now := time.Now()
	return &Chat{
		ID:        ident.NewChatID(),
		Title:     DefaultTitle,
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a message to the transcript. If the chat still has its
// placeholder title, msg is the first user message, and the transcript was
// empty, the title is derived from the message content. The derivation
// fires at most once per chat.
func (c *Chat) Append(msg Message) {
	if c.Title == DefaultTitle && msg.Role == RoleUser && len(c.Messages) == 0 {
		c.Title = DeriveTitle(msg.Content)
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
}

// DeriveTitle turns message content into a chat title: the first 30
// characters, with an ellipsis appended when anything was cut off.
func DeriveTitle(content string) string {
	return util.TruncateRunes(content, TitleMaxRunes)
}

// LastMessage returns the most recent message, or nil for an empty chat.
func (c *Chat) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// Preview returns a short single-line summary of the latest message for
// display in the sidebar.
func (c *Chat) Preview(maxWidth int) string {
	last := c.LastMessage()
	if last == nil {
		return "No messages yet"
	}
	return util.TruncateDisplay(util.FirstLine(last.Content), maxWidth)
}
