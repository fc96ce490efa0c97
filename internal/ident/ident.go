// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package ident generates unique identifiers for chats, messages, and
// toasts. Every id combines a millisecond timestamp with random UUID
// material so ids created in the same millisecond never collide.
package ident

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Prefixes namespace ids by the kind of object they identify, which makes
// logs and persisted state greppable.
const (
	PrefixChat    = "chat"
	PrefixMessage = "msg"
	PrefixToast   = "toast"
)

// New returns a unique id of the form <prefix>_<unixms>_<uuid-fragment>.
func New(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), u.String()[:8])
}

// NewChatID returns a unique chat id.
func NewChatID() string { return New(PrefixChat) }

// NewMessageID returns a unique message id.
func NewMessageID() string { return New(PrefixMessage) }

// NewToastID returns a unique toast id.
func NewToastID() string { return New(PrefixToast) }
