package game

// Colour identifies a chip on the board. Empty marks an unoccupied cell and
// doubles as the "no winner yet" result of the win checks.
type Colour uint8

const (
	Empty Colour = iota
	Red
	Yellow
)

func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}

// Glyph returns the single display glyph for a cell. Rendering is kept out
// of the enum values themselves so the board stays display-agnostic.
func (c Colour) Glyph() string {
	switch c {
	case Red:
		return "\U0001F534"
	case Yellow:
		return "\U0001F7E1"
	default:
		return "⚫"
	}
}

// Opponent returns the other player's colour. Empty has no opponent.
func (c Colour) Opponent() Colour {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	panic("no opponent for empty colour")
}
