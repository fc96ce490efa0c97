// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than limit", "hello", 30, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"one over limit", "hello!", 5, "hello…"},
		{"empty string", "", 30, ""},
		{"zero limit", "hello", 0, ""},
		{"multibyte not split", "héllo wörld ünïcödé tëst strïng", 10, "héllo wörl…"},
		{"cjk content", "你好世界你好世界", 4, "你好世界…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateRunes(tt.input, tt.maxRunes)
			if got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateRunesResultLength(t *testing.T) {
	// A truncated string is maxRunes content characters plus one ellipsis.
	long := "Hello there, how are you doing today?"
	got := TruncateRunes(long, 30)
	if RuneLen(got) != 31 {
		t.Errorf("truncated length = %d runes, want 31", RuneLen(got))
	}
	if got != "Hello there, how are you doing…" {
		t.Errorf("got %q", got)
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("hello"); got != 5 {
		t.Errorf("RuneLen(hello) = %d, want 5", got)
	}
	if got := RuneLen("héllo"); got != 5 {
		t.Errorf("RuneLen(héllo) = %d, want 5", got)
	}
	if got := RuneLen("你好"); got != 2 {
		t.Errorf("RuneLen(你好) = %d, want 2", got)
	}
}

func TestTruncateDisplay(t *testing.T) {
	if got := TruncateDisplay("hello", 10); got != "hello" {
		t.Errorf("got %q, want unchanged", got)
	}
	got := TruncateDisplay("你好世界", 5)
	if got == "你好世界" {
		t.Error("expected truncation of double-width content at width 5")
	}
}

func TestPadDisplay(t *testing.T) {
	if got := PadDisplay("hi", 5); got != "hi   " {
		t.Errorf("PadDisplay = %q", got)
	}
	if got := PadDisplay("hello", 3); got != "hello" {
		t.Errorf("PadDisplay should not truncate, got %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("  title  \nbody\nmore"); got != "title" {
		t.Errorf("FirstLine = %q", got)
	}
	if got := FirstLine("single"); got != "single" {
		t.Errorf("FirstLine = %q", got)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "test.json")

	data := []byte(`{"key": "value"}`)
	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("content = %q, want %q", got, data)
	}
}

func TestAtomicWriteFileOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	if err := AtomicWriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("new"), 0644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file in dir, found %d", len(entries))
	}
}

func TestAtomicWriteFilePrivate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets", "state.json")

	if err := AtomicWriteFilePrivate(path, []byte("x")); err != nil {
		t.Fatalf("AtomicWriteFilePrivate failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file perm = %o, want 0600", perm)
	}
}
