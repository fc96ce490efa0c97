// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package model defines the core data types of the vex application:
// chats, messages, and user settings. These types carry no behavior
// beyond their own derivations (titles, previews) and are shared by the
// store, the storage layer, and the UI.
package model
