package input

import "strings"

// InputKey is one bit of the pressed-key mask
type InputKey uint16

const (
	KeyUp InputKey = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab

	keyCount = iota
)

var keyNames = [keyCount]string{"up", "down", "left", "right", "space", "enter", "escape", "tab"}

func (k InputKey) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for i := range keyCount {
		if k&(1<<i) != 0 {
			parts = append(parts, keyNames[i])
		}
	}
	return strings.Join(parts, "|")
}

// index returns the bit position of a single key
func (k InputKey) index() int {
	for i := range keyCount {
		if k == 1<<i {
			return i
		}
	}
	return -1
}

// InputStatus is the input snapshot handed to observers
type InputStatus struct {
	keys           InputKey
	mouseX, mouseY int
}

// IsKeyPressed reports whether every key in k is pressed
func (s InputStatus) IsKeyPressed(k InputKey) bool {
	return k != 0 && s.keys&k == k
}

func (s *InputStatus) SetKeyPressed(k InputKey) {
	s.keys |= k
}

// Keys returns the pressed-key mask
func (s InputStatus) Keys() InputKey {
	return s.keys
}

// MousePosition is the last mouse cell
func (s InputStatus) MousePosition() (x, y int) {
	return s.mouseX, s.mouseY
}

func (s *InputStatus) SetMousePosition(x, y int) {
	s.mouseX, s.mouseY = x, y
}

// ClearStatus releases every key. Mouse position is kept
func (s *InputStatus) ClearStatus() {
	s.keys = 0
}
