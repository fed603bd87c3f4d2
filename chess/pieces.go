package chess

import "fmt"

type Color byte
type Kind byte
type Piece byte

const (
	White   Color = 1 << 4
	Black   Color = 1 << 5
	NoColor Color = 0

	colorMask byte = 3 << 4

	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6

	kindMask byte = 1<<3 - 1

	Empty Piece = 0
)

func MakePiece(color Color, kind Kind) Piece {
	return Piece(byte(color) | byte(kind))
}

func (p Piece) Color() Color {
	return Color(byte(p) & colorMask)
}

func (p Piece) Kind() Kind {
	return Kind(byte(p) & kindMask)
}

var kindLetters = [...]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

// Letter returns the English piece letter, uppercase for white and
// lowercase for black.
func (p Piece) Letter() byte {
	if p == Empty {
		return '.'
	}
	l := kindLetters[p.Kind()]
	if p.Color() == Black {
		l += 'a' - 'A'
	}
	return l
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		panic(fmt.Sprintf("bad kind: %x", int(k)))
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// ParseColor parses the textual color names used in repertoire files.
func ParseColor(s string) (Color, error) {
	switch s {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return NoColor, fmt.Errorf("bad color: %q", s)
	}
}
