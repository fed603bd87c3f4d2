package chess

import "fmt"

// Apply plays m for mover on the board. It does not check legality: it
// trusts the repertoire author and makes a best-effort placement. When
// the notation is ambiguous (no disambiguator, several candidate
// pieces) the first candidate in file a-h, rank 1-8 scan order is used.
func (b *Board) Apply(m Move, mover Color) error {
	if m.Castle != NoCastle {
		b.castle(m.Castle, mover)
		return nil
	}
	ff, fr, ok := b.findPiece(m, mover)
	if !ok {
		return fmt.Errorf("%s: no %s can reach %s",
			mover, m.Kind, Square(m.DestFile, m.DestRank))
	}
	placed := b.At(ff, fr)
	if m.Promotion != 0 {
		placed = MakePiece(mover, m.Promotion)
	}
	b.set(ff, fr, Empty)
	b.set(m.DestFile, m.DestRank, placed)
	return nil
}

func (b *Board) castle(c Castle, mover Color) {
	rank := 0
	if mover == Black {
		rank = 7
	}
	b.set(4, rank, Empty)
	if c == Kingside {
		b.set(6, rank, MakePiece(mover, King))
		b.set(7, rank, Empty)
		b.set(5, rank, MakePiece(mover, Rook))
	} else {
		b.set(2, rank, MakePiece(mover, King))
		b.set(0, rank, Empty)
		b.set(3, rank, MakePiece(mover, Rook))
	}
}

// findPiece scans files a-h, ranks 1-8 for the first piece of the
// mover that matches the disambiguation hints and can reach the
// destination.
func (b *Board) findPiece(m Move, mover Color) (int, int, bool) {
	want := MakePiece(mover, m.Kind)
	for f := 0; f < 8; f++ {
		if m.FromFile >= 0 && f != m.FromFile {
			continue
		}
		for r := 0; r < 8; r++ {
			if m.FromRank >= 0 && r != m.FromRank {
				continue
			}
			if b.At(f, r) != want {
				continue
			}
			if f == m.DestFile && r == m.DestRank {
				continue
			}
			if b.canReach(f, r, m, mover) {
				return f, r, true
			}
		}
	}
	return 0, 0, false
}

func (b *Board) canReach(ff, fr int, m Move, mover Color) bool {
	df := m.DestFile - ff
	dr := m.DestRank - fr
	switch m.Kind {
	case Pawn:
		dir := 1
		home := 1
		if mover == Black {
			dir = -1
			home = 6
		}
		if m.Capture {
			// Target occupancy is not checked: en passant
			// captures land on an empty square.
			return abs(df) == 1 && dr == dir
		}
		if df != 0 {
			return false
		}
		if dr == dir {
			return b.At(m.DestFile, m.DestRank) == Empty
		}
		if dr == 2*dir && fr == home {
			return b.At(ff, fr+dir) == Empty &&
				b.At(m.DestFile, m.DestRank) == Empty
		}
		return false
	case Knight:
		return abs(df)*abs(dr) == 2
	case Bishop:
		if abs(df) != abs(dr) {
			return false
		}
		return b.openRay(ff, fr, m.DestFile, m.DestRank)
	case Rook:
		if df != 0 && dr != 0 {
			return false
		}
		return b.openRay(ff, fr, m.DestFile, m.DestRank)
	case Queen:
		if df != 0 && dr != 0 && abs(df) != abs(dr) {
			return false
		}
		return b.openRay(ff, fr, m.DestFile, m.DestRank)
	case King:
		return abs(df) <= 1 && abs(dr) <= 1 && (df != 0 || dr != 0)
	default:
		return false
	}
}

// openRay reports whether the squares strictly between (ff, fr) and
// (tf, tr) are all empty, along a straight or diagonal line.
func (b *Board) openRay(ff, fr, tf, tr int) bool {
	sf := sign(tf - ff)
	sr := sign(tr - fr)
	f, r := ff+sf, fr+sr
	for f != tf || r != tr {
		if b.At(f, r) != Empty {
			return false
		}
		f += sf
		r += sr
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
