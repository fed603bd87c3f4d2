package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/opendrill/bookdrill/chess"
)

type GlyphSet struct {
	King   string
	Queen  string
	Rook   string
	Bishop string
	Knight string
	Pawn   string
}

type Glyphs struct {
	White, Black GlyphSet
	Blank        string
}

var DefaultGlyphs = Glyphs{
	White: GlyphSet{
		King: "K", Queen: "Q", Rook: "R",
		Bishop: "B", Knight: "N", Pawn: "P",
	},
	Black: GlyphSet{
		King: "k", Queen: "q", Rook: "r",
		Bishop: "b", Knight: "n", Pawn: "p",
	},
	Blank: ".",
}

var UnicodeGlyphs = Glyphs{
	White: GlyphSet{
		King: "♔", Queen: "♕", Rook: "♖",
		Bishop: "♗", Knight: "♘", Pawn: "♙",
	},
	Black: GlyphSet{
		King: "♚", Queen: "♛", Rook: "♜",
		Bishop: "♝", Knight: "♞", Pawn: "♟",
	},
	Blank: "·",
}

func (g *Glyphs) piece(p chess.Piece) string {
	if p == chess.Empty {
		return g.Blank
	}
	set := &g.White
	if p.Color() == chess.Black {
		set = &g.Black
	}
	switch p.Kind() {
	case chess.King:
		return set.King
	case chess.Queen:
		return set.Queen
	case chess.Rook:
		return set.Rook
	case chess.Bishop:
		return set.Bishop
	case chess.Knight:
		return set.Knight
	case chess.Pawn:
		return set.Pawn
	default:
		panic(fmt.Sprintf("bad piece %v", p))
	}
}

func RenderBoard(g *Glyphs, out io.Writer, b *chess.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 2, 4, 1, ' ', 0)
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(w, "%c.\t", '1'+rank)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(w, "%s\t", g.piece(b.At(file, rank)))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for file := 0; file < 8; file++ {
		fmt.Fprintf(w, "%c.\t", 'a'+file)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
}
