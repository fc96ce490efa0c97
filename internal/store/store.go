// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package store holds the application state: the chat list, the current
// chat selection, user settings, and transient UI flags. All access goes
// through a mutex-guarded Store so the UI loop and background persistence
// never race.
//
// Mutations persist fire-and-forget: the state change always lands in
// memory first, and a failed write reports through the error hook without
// rolling anything back.
package store

import (
	"sync"

	"github.com/vexlabs/vex-tui/internal/model"
)

// Snapshot is the persisted projection of the store: chats, the current
// selection, and settings. Transient flags (loading, sidebar) are
// deliberately not part of it.
type Snapshot struct {
	Chats         []model.Chat       `json:"chats"`
	CurrentChatID string             `json:"currentChatId"`
	Settings      model.UserSettings `json:"userSettings"`
}

// Saver writes a snapshot to durable storage.
type Saver func(Snapshot) error

// Store is the single source of truth for application state.
type Store struct {
	mu sync.RWMutex

	// chats is ordered newest first.
	chats         []*model.Chat
	currentChatID string
	settings      model.UserSettings

	loading     bool
	sidebarOpen bool

	saver       Saver
	onSaveError func(error)
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithSaver sets the persistence function invoked after every durable
// mutation. A nil saver disables persistence entirely.
func WithSaver(s Saver) Option {
	return func(st *Store) { st.saver = s }
}

// WithSaveErrorHandler sets the hook called when a background save fails.
func WithSaveErrorHandler(fn func(error)) Option {
	return func(st *Store) { st.onSaveError = fn }
}

// SetSaveErrorHandler replaces the save failure hook. Safe to call while
// saves are in flight; used when the hook's target (the UI event loop)
// only exists after the store does.
func (s *Store) SetSaveErrorHandler(fn func(error)) {
	s.mu.Lock()
	s.onSaveError = fn
	s.mu.Unlock()
}

// New creates an empty store with default settings and the sidebar open.
func New(opts ...Option) *Store {
	s := &Store{
		chats:       []*model.Chat{},
		settings:    model.DefaultSettings(),
		sidebarOpen: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore replaces the store's durable state with a previously persisted
// snapshot. Transient flags are untouched and nothing is written back.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = make([]*model.Chat, len(snap.Chats))
	for i := range snap.Chats {
		c := snap.Chats[i]
		s.chats[i] = &c
	}
	s.currentChatID = snap.CurrentChatID
	s.settings = snap.Settings
}

// ============================================================================
// CHAT OPERATIONS
// ============================================================================

// CreateChat creates an empty chat, places it at the front of the list,
// makes it current, and returns it.
func (s *Store) CreateChat() *model.Chat {
	s.mu.Lock()
	chat := model.NewChat()
	s.chats = append([]*model.Chat{chat}, s.chats...)
	s.currentChatID = chat.ID
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
	return chat
}

// SetCurrentChat changes the selection. The id is not validated against
// the chat list, so callers may select ahead of an in-flight restore.
func (s *Store) SetCurrentChat(id string) {
	s.mu.Lock()
	s.currentChatID = id
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
}

// AddMessage appends a message to the chat with the given id. If the chat
// still has its placeholder title and msg is its first user message, the
// title is derived from the content. An unknown chat id is a silent no-op.
func (s *Store) AddMessage(chatID string, msg model.Message) {
	s.mu.Lock()
	chat := s.findLocked(chatID)
	if chat == nil {
		s.mu.Unlock()
		return
	}
	chat.Append(msg)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
}

// UpdateChatTitle renames a chat. An unknown id is a silent no-op. Renaming
// never re-arms title derivation.
func (s *Store) UpdateChatTitle(chatID, title string) {
	s.mu.Lock()
	chat := s.findLocked(chatID)
	if chat == nil {
		s.mu.Unlock()
		return
	}
	chat.Title = title
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
}

// DeleteChat removes a chat. If it was current, the selection moves to the
// first remaining chat, or clears when none remain. An unknown id is a
// silent no-op.
func (s *Store) DeleteChat(chatID string) {
	s.mu.Lock()
	idx := -1
	for i, c := range s.chats {
		if c.ID == chatID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.chats = append(s.chats[:idx], s.chats[idx+1:]...)
	if s.currentChatID == chatID {
		if len(s.chats) > 0 {
			s.currentChatID = s.chats[0].ID
		} else {
			s.currentChatID = ""
		}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
}

// ClearChats removes every chat and clears the selection.
func (s *Store) ClearChats() {
	s.mu.Lock()
	s.chats = []*model.Chat{}
	s.currentChatID = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
}

// ============================================================================
// SETTINGS AND UI FLAGS
// ============================================================================

// UpdateSettings merges a partial settings change into the current
// settings and persists the result.
func (s *Store) UpdateSettings(patch model.SettingsPatch) {
	s.mu.Lock()
	s.settings = patch.Apply(s.settings)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(snap)
}

// SetLoading flips the transient loading flag. Not persisted.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// ToggleSidebar flips sidebar visibility and returns the new state. Not
// persisted.
func (s *Store) ToggleSidebar() bool {
	s.mu.Lock()
	s.sidebarOpen = !s.sidebarOpen
	v := s.sidebarOpen
	s.mu.Unlock()
	return v
}

// SetSidebarOpen sets sidebar visibility. Not persisted.
func (s *Store) SetSidebarOpen(v bool) {
	s.mu.Lock()
	s.sidebarOpen = v
	s.mu.Unlock()
}

// ============================================================================
// ACCESSORS
// ============================================================================

// Chats returns a copy of the chat list, newest first. The chats
// themselves are deep copies so callers can read transcripts without
// holding the store lock.
func (s *Store) Chats() []model.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyChatsLocked()
}

// Chat returns a copy of the chat with the given id, or false.
func (s *Store) Chat(id string) (model.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.findLocked(id)
	if c == nil {
		return model.Chat{}, false
	}
	return copyChat(c), true
}

// CurrentChat returns a copy of the selected chat, or false when the
// selection is empty or points at a chat that does not exist.
func (s *Store) CurrentChat() (model.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.findLocked(s.currentChatID)
	if c == nil {
		return model.Chat{}, false
	}
	return copyChat(c), true
}

// CurrentChatID returns the selected chat id, empty when none is selected.
func (s *Store) CurrentChatID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentChatID
}

// Settings returns the current user settings.
func (s *Store) Settings() model.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Loading reports whether a reply generation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SidebarOpen reports sidebar visibility.
func (s *Store) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

// Snapshot returns the current durable state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ============================================================================
// INTERNALS
// ============================================================================

func (s *Store) findLocked(id string) *model.Chat {
	if id == "" {
		return nil
	}
	for _, c := range s.chats {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Chats:         s.copyChatsLocked(),
		CurrentChatID: s.currentChatID,
		Settings:      s.settings,
	}
}

func (s *Store) copyChatsLocked() []model.Chat {
	out := make([]model.Chat, len(s.chats))
	for i, c := range s.chats {
		out[i] = copyChat(c)
	}
	return out
}

func copyChat(c *model.Chat) model.Chat {
	cp := *c
	cp.Messages = make([]model.Message, len(c.Messages))
	copy(cp.Messages, c.Messages)
	return cp
}

// persist hands the snapshot to the saver on a background goroutine. The
// in-memory state is already updated; a write failure only reports through
// the hook.
func (s *Store) persist(snap Snapshot) {
	if s.saver == nil {
		return
	}
	go func() {
		if err := s.saver(snap); err != nil {
			s.mu.RLock()
			handler := s.onSaveError
			s.mu.RUnlock()
			if handler != nil {
				handler(err)
			}
		}
	}()
}
