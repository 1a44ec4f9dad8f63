package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to input keys and quit requests
type KeyTable struct {
	// Special keys (arrows, Escape)
	SpecialKeys map[tcell.Key]InputKey

	// Rune bindings, vi motions included
	Runes map[rune]InputKey

	// Keys and runes that end the application
	QuitKeys  map[tcell.Key]bool
	QuitRunes map[rune]bool
}

// DefaultKeyTable returns arrow keys plus hjkl movement, space, and Escape, Ctrl-C and q
// quit. Enter and Tab stay unbound; custom tables may map them
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]InputKey{
			tcell.KeyUp:     KeyUp,
			tcell.KeyDown:   KeyDown,
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyEscape: KeyEscape,
		},
		Runes: map[rune]InputKey{
			'k': KeyUp,
			'j': KeyDown,
			'h': KeyLeft,
			'l': KeyRight,
			' ': KeySpace,
		},
		QuitKeys: map[tcell.Key]bool{
			tcell.KeyEscape: true,
			tcell.KeyCtrlC:  true,
		},
		QuitRunes: map[rune]bool{
			'q': true,
		},
	}
}

// lookup resolves a key event, zero when unbound
func (t *KeyTable) lookup(ev *tcell.EventKey) (key InputKey, quit bool) {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()], t.QuitRunes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()], t.QuitKeys[ev.Key()]
}
