// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package ident

import (
	"strings"
	"testing"
)

func TestNewHasPrefix(t *testing.T) {
	id := New(PrefixChat)
	if !strings.HasPrefix(id, "chat_") {
		t.Errorf("id %q missing chat_ prefix", id)
	}
	if !strings.HasPrefix(NewMessageID(), "msg_") {
		t.Error("message id missing msg_ prefix")
	}
	if !strings.HasPrefix(NewToastID(), "toast_") {
		t.Error("toast id missing toast_ prefix")
	}
}

func TestNewUnique(t *testing.T) {
	// Ids generated back to back in the same millisecond must still differ.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewChatID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewFormat(t *testing.T) {
	id := New("x")
	parts := strings.SplitN(id, "_", 3)
	if len(parts) != 3 {
		t.Fatalf("id %q does not have prefix_timestamp_random form", id)
	}
	if parts[0] != "x" {
		t.Errorf("prefix = %q, want x", parts[0])
	}
	if len(parts[2]) != 8 {
		t.Errorf("random fragment length = %d, want 8", len(parts[2]))
	}
}
