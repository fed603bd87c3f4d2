package chess

import "testing"

func pawnTo(file, rank int) Move {
	return Move{Kind: Pawn, DestFile: file, DestRank: rank,
		FromFile: -1, FromRank: -1}
}

func TestApplyPawnPush(t *testing.T) {
	b := New()
	if err := b.Apply(pawnTo(4, 3), White); err != nil { // e4
		t.Fatal("e4:", err)
	}
	if b.At(4, 1) != Empty {
		t.Error("e2 not vacated")
	}
	if b.At(4, 3) != MakePiece(White, Pawn) {
		t.Error("e4 not occupied")
	}
	if err := b.Apply(pawnTo(4, 4), Black); err != nil { // e5
		t.Fatal("e5:", err)
	}
	if b.At(4, 6) != Empty || b.At(4, 4) != MakePiece(Black, Pawn) {
		t.Error("e5 misapplied")
	}
}

func TestApplyPawnCapture(t *testing.T) {
	b := New()
	for _, step := range []struct {
		m     Move
		mover Color
	}{
		{pawnTo(4, 3), White}, // e4
		{pawnTo(3, 4), Black}, // d5
		{Move{Kind: Pawn, DestFile: 3, DestRank: 4,
			FromFile: 4, FromRank: -1, Capture: true}, White}, // exd5
	} {
		if err := b.Apply(step.m, step.mover); err != nil {
			t.Fatal("apply:", err)
		}
	}
	if b.At(3, 4) != MakePiece(White, Pawn) {
		t.Error("d5 not a white pawn")
	}
	if b.At(4, 3) != Empty {
		t.Error("e4 not vacated")
	}
}

func TestApplyBlockedPush(t *testing.T) {
	b := New()
	b.set(4, 2, MakePiece(Black, Knight)) // blocker on e3
	if err := b.Apply(pawnTo(4, 3), White); err == nil {
		t.Error("double push through a blocker was applied")
	}
}

func TestApplyKnight(t *testing.T) {
	b := New()
	m := Move{Kind: Knight, DestFile: 5, DestRank: 2,
		FromFile: -1, FromRank: -1} // Nf3
	if err := b.Apply(m, White); err != nil {
		t.Fatal("Nf3:", err)
	}
	if b.At(6, 0) != Empty || b.At(5, 2) != MakePiece(White, Knight) {
		t.Error("Nf3 misapplied")
	}
}

func TestApplySlidingBlockers(t *testing.T) {
	b := New()
	// Ra3 is impossible out of the box: the a2 pawn blocks the file.
	m := Move{Kind: Rook, DestFile: 0, DestRank: 2,
		FromFile: -1, FromRank: -1}
	if err := b.Apply(m, White); err == nil {
		t.Error("rook slid through a pawn")
	}
}

func TestApplyDisambiguation(t *testing.T) {
	var b Board
	b.set(0, 0, MakePiece(White, Rook)) // Ra1
	b.set(7, 0, MakePiece(White, Rook)) // Rh1

	// With a file hint the h-rook moves.
	m := Move{Kind: Rook, DestFile: 4, DestRank: 0,
		FromFile: 7, FromRank: -1}
	if err := b.Apply(m, White); err != nil {
		t.Fatal("Rhe1:", err)
	}
	if b.At(7, 0) != Empty || b.At(4, 0) != MakePiece(White, Rook) {
		t.Error("Rhe1 misapplied")
	}
}

func TestApplyAmbiguousScanOrder(t *testing.T) {
	var b Board
	b.set(0, 0, MakePiece(White, Rook)) // Ra1
	b.set(7, 0, MakePiece(White, Rook)) // Rh1

	// No hint: the first candidate in file a-h, rank 1-8 scan order
	// wins, so the a-rook moves.
	m := Move{Kind: Rook, DestFile: 4, DestRank: 0,
		FromFile: -1, FromRank: -1}
	if err := b.Apply(m, White); err != nil {
		t.Fatal("Re1:", err)
	}
	if b.At(0, 0) != Empty {
		t.Error("a1 rook did not move")
	}
	if b.At(7, 0) != MakePiece(White, Rook) {
		t.Error("h1 rook moved")
	}
}

func TestApplyCastle(t *testing.T) {
	b := New()
	b.set(5, 0, Empty)
	b.set(6, 0, Empty)
	if err := b.Apply(Move{Kind: King, Castle: Kingside}, White); err != nil {
		t.Fatal("O-O:", err)
	}
	if b.At(6, 0) != MakePiece(White, King) || b.At(5, 0) != MakePiece(White, Rook) {
		t.Error("white O-O misapplied")
	}
	if b.At(4, 0) != Empty || b.At(7, 0) != Empty {
		t.Error("white O-O left pieces behind")
	}

	b.set(1, 7, Empty)
	b.set(2, 7, Empty)
	b.set(3, 7, Empty)
	if err := b.Apply(Move{Kind: King, Castle: Queenside}, Black); err != nil {
		t.Fatal("O-O-O:", err)
	}
	if b.At(2, 7) != MakePiece(Black, King) || b.At(3, 7) != MakePiece(Black, Rook) {
		t.Error("black O-O-O misapplied")
	}
	if b.At(4, 7) != Empty || b.At(0, 7) != Empty {
		t.Error("black O-O-O left pieces behind")
	}
}

func TestApplyPromotion(t *testing.T) {
	var b Board
	b.set(4, 6, MakePiece(White, Pawn))
	m := Move{Kind: Pawn, DestFile: 4, DestRank: 7,
		FromFile: -1, FromRank: -1, Promotion: Queen}
	if err := b.Apply(m, White); err != nil {
		t.Fatal("e8=Q:", err)
	}
	if b.At(4, 7) != MakePiece(White, Queen) {
		t.Error("promotion did not place a queen")
	}
	if b.At(4, 6) != Empty {
		t.Error("e7 not vacated")
	}
}

func TestApplyNoCandidate(t *testing.T) {
	b := New()
	m := Move{Kind: Queen, DestFile: 7, DestRank: 4,
		FromFile: -1, FromRank: -1} // Qh5 is blocked at the start
	if err := b.Apply(m, White); err == nil {
		t.Error("blocked queen move was applied")
	}
}
