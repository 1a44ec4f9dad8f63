package input

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldDuration covers the gap between terminal auto-repeat events
const DefaultHoldDuration = 150 * time.Millisecond

// Observer receives the input status once per frame
type Observer interface {
	HandleInputStatus(status *InputStatus)
}

// Manager turns tcell events into a per-frame InputStatus.
// Terminals report presses and repeats but no releases, so a key stays pressed
// for the hold duration after its last event
type Manager struct {
	table     *KeyTable
	hold      time.Duration
	lastSeen  [keyCount]time.Time
	status    InputStatus
	observers []Observer
	quit      bool
}

// NewManager creates a manager over table. Nil table uses DefaultKeyTable, zero hold uses DefaultHoldDuration
func NewManager(table *KeyTable, hold time.Duration) *Manager {
	if table == nil {
		table = DefaultKeyTable()
	}
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Manager{table: table, hold: hold}
}

func (m *Manager) RegisterObserver(o Observer) {
	if !slices.Contains(m.observers, o) {
		m.observers = append(m.observers, o)
	}
}

func (m *Manager) RemoveObserver(o Observer) {
	if i := slices.Index(m.observers, o); i >= 0 {
		m.observers = slices.Delete(m.observers, i, i+1)
	}
}

// ObserverCount returns the number of registered observers
func (m *Manager) ObserverCount() int {
	return len(m.observers)
}

// HandleEvent records key and mouse events. Other events are ignored
func (m *Manager) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, quit := m.table.lookup(ev)
		if quit {
			m.quit = true
		}
		if i := key.index(); i >= 0 {
			m.lastSeen[i] = ev.When()
		}
	case *tcell.EventMouse:
		m.status.SetMousePosition(ev.Position())
	}
}

// QuitRequested reports whether a quit key was seen
func (m *Manager) QuitRequested() bool {
	return m.quit
}

// Notify rebuilds the status for now and hands it to every observer
func (m *Manager) Notify(now time.Time) {
	m.status.ClearStatus()
	for i, seen := range m.lastSeen {
		if !seen.IsZero() && now.Sub(seen) < m.hold {
			m.status.SetKeyPressed(1 << i)
		}
	}

	for _, o := range m.observers {
		o.HandleInputStatus(&m.status)
	}
}

// Status returns the status built by the last Notify
func (m *Manager) Status() InputStatus {
	return m.status
}
