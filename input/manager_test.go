package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	statuses []InputStatus
}

func (o *recordingObserver) HandleInputStatus(status *InputStatus) {
	o.statuses = append(o.statuses, *status)
}

func (o *recordingObserver) last() InputStatus {
	return o.statuses[len(o.statuses)-1]
}

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputStatus(t *testing.T) {
	var s InputStatus
	assert.False(t, s.IsKeyPressed(KeyUp))

	s.SetKeyPressed(KeyUp)
	s.SetKeyPressed(KeyLeft)
	assert.True(t, s.IsKeyPressed(KeyUp))
	assert.True(t, s.IsKeyPressed(KeyUp|KeyLeft))
	assert.False(t, s.IsKeyPressed(KeyUp|KeyDown))
	assert.False(t, s.IsKeyPressed(0))
	assert.Equal(t, "up|left", s.Keys().String())

	s.SetMousePosition(3, 4)
	s.ClearStatus()
	assert.Equal(t, InputKey(0), s.Keys())
	x, y := s.MousePosition()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestManager_NotifiesObservers(t *testing.T) {
	m := NewManager(nil, 0)
	a, b := &recordingObserver{}, &recordingObserver{}
	m.RegisterObserver(a)
	m.RegisterObserver(b)
	m.RegisterObserver(a)
	require.Equal(t, 2, m.ObserverCount())

	m.HandleEvent(keyEvent(tcell.KeyRight))
	m.HandleEvent(runeEvent('k'))
	m.Notify(time.Now())

	require.Len(t, a.statuses, 1)
	require.Len(t, b.statuses, 1)
	assert.True(t, a.last().IsKeyPressed(KeyRight|KeyUp))
	assert.Equal(t, a.last(), b.last())

	m.RemoveObserver(a)
	m.Notify(time.Now())
	assert.Len(t, a.statuses, 1)
	assert.Len(t, b.statuses, 2)
}

func TestManager_HoldWindow(t *testing.T) {
	m := NewManager(nil, 100*time.Millisecond)
	ev := keyEvent(tcell.KeyLeft)
	m.HandleEvent(ev)

	m.Notify(ev.When().Add(50 * time.Millisecond))
	assert.True(t, m.Status().IsKeyPressed(KeyLeft))

	m.Notify(ev.When().Add(100 * time.Millisecond))
	assert.False(t, m.Status().IsKeyPressed(KeyLeft))
}

func TestManager_Quit(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"escape", keyEvent(tcell.KeyEscape), true},
		{"ctrl-c", keyEvent(tcell.KeyCtrlC), true},
		{"q", runeEvent('q'), true},
		{"arrow", keyEvent(tcell.KeyUp), false},
		{"unbound rune", runeEvent('z'), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil, 0)
			m.HandleEvent(tt.ev)
			assert.Equal(t, tt.quit, m.QuitRequested())
		})
	}
}

func TestManager_EscapeIsAlsoAKey(t *testing.T) {
	m := NewManager(nil, 0)
	ev := keyEvent(tcell.KeyEscape)
	m.HandleEvent(ev)
	m.Notify(ev.When())
	assert.True(t, m.Status().IsKeyPressed(KeyEscape))
}

func TestManager_Mouse(t *testing.T) {
	m := NewManager(nil, 0)
	m.HandleEvent(tcell.NewEventMouse(7, 2, tcell.ButtonNone, tcell.ModNone))
	m.HandleEvent(tcell.NewEventResize(80, 24))
	m.Notify(time.Now())

	x, y := m.Status().MousePosition()
	assert.Equal(t, 7, x)
	assert.Equal(t, 2, y)
	assert.Equal(t, InputKey(0), m.Status().Keys())
}

func TestDefaultKeyTable(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want InputKey
	}{
		{"arrow", keyEvent(tcell.KeyLeft), KeyLeft},
		{"vi motion", runeEvent('j'), KeyDown},
		{"space", runeEvent(' '), KeySpace},
		{"enter unbound", keyEvent(tcell.KeyEnter), 0},
		{"tab unbound", keyEvent(tcell.KeyTab), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil, 0)
			m.HandleEvent(tt.ev)
			m.Notify(tt.ev.When())
			assert.Equal(t, tt.want, m.Status().Keys())
		})
	}
}

func TestManager_CustomTable(t *testing.T) {
	table := &KeyTable{Runes: map[rune]InputKey{'w': KeyUp}}
	m := NewManager(table, 0)

	ev := runeEvent('w')
	m.HandleEvent(ev)
	m.HandleEvent(runeEvent('k'))
	m.Notify(ev.When())

	assert.Equal(t, KeyUp, m.Status().Keys())
	assert.False(t, m.QuitRequested())
}
