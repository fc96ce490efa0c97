// Copyright (c) 2025 Vex Labs
// SPDX-License-Identifier: MIT

// Package toast manages transient notifications. Toasts stack newest
// first, expire on a shared tick, and may carry a close callback that
// fires exactly once however the toast ends: expiry, explicit dismissal,
// or eviction when the stack is full.
package toast

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vexlabs/vex-tui/internal/ident"
)

// Kind classifies a toast for styling and prefixing.
type Kind int

const (
	KindDefault Kind = iota
	KindSuccess
	KindInfo
	KindWarning
	KindError
)

// String returns the display name for a toast kind.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "default"
	}
}

// DefaultDuration is how long a toast stays visible when the caller does
// not specify one.
const DefaultDuration = 5 * time.Second

// DurationInfinite marks a toast that never expires on its own. It stays
// until dismissed or evicted.
const DurationInfinite = time.Duration(-1)

// TickInterval is how often the UI drives toast expiry.
const TickInterval = 100 * time.Millisecond

// MaxToasts bounds the stack. Showing one more evicts the oldest.
const MaxToasts = 5

// Toast is a single visible notification.
type Toast struct {
	ID      string
	Kind    Kind
	Message string
	// Description is optional secondary text below the message.
	Description string
	remaining   time.Duration
	onClose     func()
	closed      bool
}

// Sticky reports whether the toast is exempt from auto-expiry.
func (t *Toast) Sticky() bool {
	return t.remaining == DurationInfinite
}

// Options customize a toast beyond its kind and message.
type Options struct {
	// Description adds secondary text below the message.
	Description string
	// Duration overrides DefaultDuration. Use DurationInfinite for a
	// toast that only goes away on dismissal or eviction.
	Duration time.Duration
	// OnClose runs exactly once when the toast leaves the stack, from
	// whichever goroutine removed it.
	OnClose func()
}

// Manager owns the toast stack. Safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	toasts []*Toast
}

// NewManager creates an empty toast manager.
func NewManager() *Manager {
	return &Manager{}
}

// Show adds a toast and returns its id. The newest toast sits at the top
// of the stack. When the stack is already full, the oldest toast is
// evicted and its close callback fires.
func (m *Manager) Show(kind Kind, message string, opts ...Options) string {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	dur := o.Duration
	if dur == 0 {
		dur = DefaultDuration
	}

	t := &Toast{
		ID:          ident.NewToastID(),
		Kind:        kind,
		Message:     message,
		Description: o.Description,
		remaining:   dur,
		onClose:     o.OnClose,
	}

	m.mu.Lock()
	m.toasts = append([]*Toast{t}, m.toasts...)
	var evicted []*Toast
	if len(m.toasts) > MaxToasts {
		evicted = m.toasts[MaxToasts:]
		m.toasts = m.toasts[:MaxToasts]
	}
	m.mu.Unlock()

	for _, e := range evicted {
		e.close()
	}
	return t.ID
}

// Success shows a success toast with the default duration.
func (m *Manager) Success(message string) string { return m.Show(KindSuccess, message) }

// Info shows an info toast with the default duration.
func (m *Manager) Info(message string) string { return m.Show(KindInfo, message) }

// Warning shows a warning toast with the default duration.
func (m *Manager) Warning(message string) string { return m.Show(KindWarning, message) }

// Error shows an error toast with the default duration.
func (m *Manager) Error(message string) string { return m.Show(KindError, message) }

// Dismiss removes the toast with the given id. Unknown ids are ignored.
func (m *Manager) Dismiss(id string) {
	m.mu.Lock()
	var removed *Toast
	for i, t := range m.toasts {
		if t.ID == id {
			removed = t
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	if removed != nil {
		removed.close()
	}
}

// DismissAll clears the stack, firing every close callback.
func (m *Manager) DismissAll() {
	m.mu.Lock()
	removed := m.toasts
	m.toasts = nil
	m.mu.Unlock()

	for _, t := range removed {
		t.close()
	}
}

// Tick advances every toast's clock by elapsed and removes the expired
// ones. Sticky toasts never expire here.
func (m *Manager) Tick(elapsed time.Duration) {
	m.mu.Lock()
	var kept []*Toast
	var expired []*Toast
	for _, t := range m.toasts {
		if t.Sticky() {
			kept = append(kept, t)
			continue
		}
		t.remaining -= elapsed
		if t.remaining <= 0 {
			expired = append(expired, t)
		} else {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
	m.mu.Unlock()

	for _, t := range expired {
		t.close()
	}
}

// Active returns a copy of the stack, newest first.
func (m *Manager) Active() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Toast, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = *t
	}
	return out
}

// Count returns the number of visible toasts.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.toasts)
}

// close fires the callback at most once. Called without the manager lock
// held so callbacks may call back into the manager.
func (t *Toast) close() {
	if t.closed {
		return
	}
	t.closed = true
	if t.onClose != nil {
		t.onClose()
	}
}

// TickMsg drives toast expiry from the bubbletea event loop.
type TickMsg time.Time

// TickCmd schedules the next toast tick.
func TickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
