package chess

type Castle byte

const (
	NoCastle Castle = iota
	Kingside
	Queenside
)

// Move is a parsed algebraic move, sufficient to place pieces for
// display. FromFile and FromRank are -1 when the notation carries no
// disambiguator.
type Move struct {
	Kind               Kind
	DestFile, DestRank int
	FromFile, FromRank int
	Capture            bool
	Castle             Castle
	Promotion          Kind
}
