package state

import "github.com/atomicstack/tmux-popup-convert/internal/converter"

// KeyKind classifies keypad buttons.
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyDecimal
	KeyReset
	KeyConvert
)

// Key is a single keypad button.
type Key struct {
	ID       string
	Label    string
	Kind     KeyKind
	Digit    converter.Digit
	Category converter.Category
}

func digitKey(d converter.Digit) Key {
	return Key{ID: d.String(), Label: d.String(), Kind: KeyDigit, Digit: d}
}

func convertKey(c converter.Category, label string) Key {
	return Key{ID: c.String(), Label: label, Kind: KeyConvert, Category: c}
}

// DefaultLayout is the calculator grid, top row first.
func DefaultLayout() [][]Key {
	return [][]Key{
		{digitKey(7), digitKey(8), digitKey(9)},
		{digitKey(4), digitKey(5), digitKey(6)},
		{digitKey(1), digitKey(2), digitKey(3)},
		{digitKey(0), {ID: ".", Label: ".", Kind: KeyDecimal}, {ID: "reset", Label: "C", Kind: KeyReset}},
		{convertKey(converter.Length, "L"), convertKey(converter.Weight, "P"), convertKey(converter.Temperature, "T")},
	}
}

// Keypad tracks the grid and the focused button.
type Keypad struct {
	Rows [][]Key
	Row  int
	Col  int
}

// NewKeypad returns a keypad with the cursor on the top-left key.
func NewKeypad() *Keypad {
	return &Keypad{Rows: DefaultLayout()}
}

// Current returns the focused key.
func (k *Keypad) Current() (Key, bool) {
	if k.Row < 0 || k.Row >= len(k.Rows) {
		return Key{}, false
	}
	row := k.Rows[k.Row]
	if k.Col < 0 || k.Col >= len(row) {
		return Key{}, false
	}
	return row[k.Col], true
}

// Selected reports whether the key at row/col has focus.
func (k *Keypad) Selected(row, col int) bool {
	return k.Row == row && k.Col == col
}

// MoveUp moves the cursor one row up.
func (k *Keypad) MoveUp() bool { return k.moveBy(-1, 0) }

// MoveDown moves the cursor one row down.
func (k *Keypad) MoveDown() bool { return k.moveBy(1, 0) }

// MoveLeft moves the cursor one column left.
func (k *Keypad) MoveLeft() bool { return k.moveBy(0, -1) }

// MoveRight moves the cursor one column right.
func (k *Keypad) MoveRight() bool { return k.moveBy(0, 1) }

func (k *Keypad) moveBy(dRow, dCol int) bool {
	if len(k.Rows) == 0 {
		k.Row, k.Col = 0, 0
		return false
	}
	oldRow, oldCol := k.Row, k.Col
	k.Row = clamp(k.Row+dRow, 0, len(k.Rows)-1)
	k.Col = clamp(k.Col+dCol, 0, len(k.Rows[k.Row])-1)
	return k.Row != oldRow || k.Col != oldCol
}

// Find returns the key with the given id and its position.
func (k *Keypad) Find(id string) (Key, int, int, bool) {
	for r, row := range k.Rows {
		for c, key := range row {
			if key.ID == id {
				return key, r, c, true
			}
		}
	}
	return Key{}, 0, 0, false
}

// MoveTo focuses the key with the given id.
func (k *Keypad) MoveTo(id string) bool {
	_, r, c, ok := k.Find(id)
	if !ok {
		return false
	}
	moved := k.Row != r || k.Col != c
	k.Row, k.Col = r, c
	return moved
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
