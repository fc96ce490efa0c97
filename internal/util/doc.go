// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package util provides small helpers shared across the vex application.
//
// String utilities are rune-aware so UTF-8 content (chat titles, previews)
// is never split mid-character, and display-width helpers account for
// double-width characters via go-runewidth.
//
// AtomicWriteFile is the single write path for everything vex persists:
// write to a temp file, fsync, rename.
package util
