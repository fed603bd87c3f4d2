package chess

// Board is an 8x8 piece placement. Squares are addressed by file and
// rank, both 0-7: file 0 is the a-file, rank 0 is rank 1 (white's home
// rank).
type Board struct {
	sq [8][8]Piece
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New returns a board in the standard initial placement.
func New() *Board {
	var b Board
	for f := 0; f < 8; f++ {
		b.sq[f][0] = MakePiece(White, backRank[f])
		b.sq[f][1] = MakePiece(White, Pawn)
		b.sq[f][6] = MakePiece(Black, Pawn)
		b.sq[f][7] = MakePiece(Black, backRank[f])
	}
	return &b
}

func (b *Board) At(file, rank int) Piece {
	return b.sq[file][rank]
}

func (b *Board) set(file, rank int, p Piece) {
	b.sq[file][rank] = p
}

// Square formats a (file, rank) pair in algebraic form, e.g. "e4".
func Square(file, rank int) string {
	return string([]byte{byte('a' + file), byte('1' + rank)})
}
