// Package san interprets the short algebraic notation stored in
// repertoire files. Interpretation is only deep enough to project moves
// onto a display board; the trainer itself compares move text verbatim.
package san

import (
	"errors"
	"regexp"
	"strings"

	"github.com/opendrill/bookdrill/chess"
)

// Normalize canonicalizes user-entered move text for comparison against
// repertoire entries. Trimming surrounding whitespace is the only
// normalization: case is significant in algebraic notation, and the
// trainer does not equate decorated and undecorated forms.
func Normalize(text string) string {
	return strings.TrimSpace(text)
}

var moveRE = regexp.MustCompile(
	// [piece] [file hint] [rank hint] [capture] destination [promotion]
	`^([KQRBN]?)([a-h]?)([1-8]?)(x?)([a-h][1-8])(?:=([QRBN]))?$`,
)

var kindByLetter = map[string]chess.Kind{
	"":  chess.Pawn,
	"N": chess.Knight,
	"B": chess.Bishop,
	"R": chess.Rook,
	"Q": chess.Queen,
	"K": chess.King,
}

// Parse interprets a single SAN move. Decorations (check, mate and
// annotation marks) are stripped before interpretation, as are the
// common lowercase castling spellings.
func Parse(text string) (chess.Move, error) {
	text = strings.TrimRight(Normalize(text), "+#!?'")
	switch text {
	case "O-O", "0-0", "o-o", "O-o", "o-O":
		return chess.Move{Kind: chess.King, Castle: chess.Kingside}, nil
	case "O-O-O", "0-0-0", "o-o-o":
		return chess.Move{Kind: chess.King, Castle: chess.Queenside}, nil
	}
	groups := moveRE.FindStringSubmatch(text)
	if groups == nil {
		return chess.Move{}, errors.New("unparseable move")
	}
	var (
		piece    = groups[1]
		fileHint = groups[2]
		rankHint = groups[3]
		capture  = groups[4]
		dest     = groups[5]
		promo    = groups[6]
	)
	m := chess.Move{
		Kind:     kindByLetter[piece],
		DestFile: int(dest[0] - 'a'),
		DestRank: int(dest[1] - '1'),
		FromFile: -1,
		FromRank: -1,
		Capture:  capture != "",
	}
	if fileHint != "" {
		m.FromFile = int(fileHint[0] - 'a')
	}
	if rankHint != "" {
		m.FromRank = int(rankHint[0] - '1')
	}
	if promo != "" {
		m.Promotion = kindByLetter[promo]
	}
	return m, nil
}

// Replay projects a move sequence onto a fresh board, playing white on
// even plies. Moves that cannot be parsed or applied are skipped, and
// the first such failure is reported alongside the board; the board is
// usable either way.
func Replay(moves []string) (*chess.Board, error) {
	b := chess.New()
	var firstErr error
	mover := chess.White
	for _, text := range moves {
		m, err := Parse(text)
		if err == nil {
			err = b.Apply(m, mover)
		}
		if err != nil && firstErr == nil {
			firstErr = errors.New(text + ": " + err.Error())
		}
		mover = mover.Flip()
	}
	return b, firstErr
}
