// Package trainer walks a loaded repertoire one ply at a time,
// validating the trainee's moves and playing the book side's moves by
// weighted random choice.
package trainer

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/context"

	"github.com/opendrill/bookdrill/book"
	"github.com/opendrill/bookdrill/chess"
	"github.com/opendrill/bookdrill/pick"
	"github.com/opendrill/bookdrill/san"
)

type Status int

const (
	InProgress Status = iota
	LineComplete
	Failed
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case LineComplete:
		return "line complete"
	case Failed:
		return "failed"
	default:
		panic(fmt.Sprintf("bad status: %d", int(s)))
	}
}

// Verdict is the outcome of submitting one move.
type Verdict int

const (
	// Accepted: the move matched an option and was played.
	Accepted Verdict = iota
	// Rejected: the move matched no option; the session is Failed
	// until Reset.
	Rejected
	// Complete: the line has already run past all defined content.
	Complete
)

// Session is the mutable state of one trainee working a book. It owns
// its path exclusively and only reads the shared Book. A Session is
// used by a single goroutine at a time.
type Session struct {
	book *book.Book
	sel  pick.Selector
	side chess.Color

	path   []string
	node   *book.Node
	status Status
}

// NewSession starts a session for side, which must be the color the
// book trains (the opposite of the book side). sel may be nil, in
// which case a time-seeded weighted selector is used.
func NewSession(b *book.Book, side chess.Color, sel pick.Selector) (*Session, error) {
	if side != chess.White && side != chess.Black {
		return nil, fmt.Errorf("bad side: %s", side)
	}
	if side == b.Start {
		return nil, fmt.Errorf("the book plays %s; train the %s side",
			b.Start, b.Start.Flip())
	}
	if sel == nil {
		sel = pick.NewWeighted(time.Now().UnixNano())
	}
	return &Session{
		book: b,
		sel:  sel,
		side: side,
		node: b.Root(),
	}, nil
}

func (s *Session) Status() Status    { return s.status }
func (s *Session) Side() chess.Color { return s.side }
func (s *Session) Book() *book.Book  { return s.book }

// Moves returns a copy of the moves played so far.
func (s *Session) Moves() []string {
	return append([]string(nil), s.path...)
}

// LineText renders the current path for the `line` command.
func (s *Session) LineText() string {
	if len(s.path) == 0 {
		return "Starting position"
	}
	return strings.Join(s.path, " ")
}

// Board projects the current path onto a display board. Projection is
// best-effort and never fails; moves the projector cannot interpret
// are skipped.
func (s *Session) Board() *chess.Board {
	b, _ := san.Replay(s.path)
	return b
}

// UserTurn reports whether the session is waiting for the trainee's
// move. Turn ownership comes from the current node's flag, never from
// ply parity.
func (s *Session) UserTurn() bool {
	return s.status == InProgress && s.node != nil && s.node.Player
}

// Options returns the current node's option list, or nil past the end
// of the line.
func (s *Session) Options() []book.MoveOption {
	if s.node == nil {
		return nil
	}
	return s.node.Moves
}

// Advance plays book-side plies until it is the trainee's turn or the
// line ends, and returns the move texts it played. It is a no-op in
// terminal states and on player-turn nodes.
func (s *Session) Advance(ctx context.Context) []string {
	var played []string
	for s.status == InProgress {
		if s.node == nil {
			s.status = LineComplete
			break
		}
		if s.node.Player {
			break
		}
		o := s.sel.Select(ctx, s.node.Moves)
		s.step(o.Move)
		played = append(played, o.Move)
	}
	return played
}

// Submit validates one trainee move. The raw text is normalized
// (trimmed) and compared verbatim against the current node's options;
// on a match the stored canonical text is appended to the path. On a
// mismatch the session fails and accepts no further moves until Reset.
func (s *Session) Submit(raw string) Verdict {
	switch s.status {
	case LineComplete:
		return Complete
	case Failed:
		return Rejected
	}
	if s.node == nil {
		s.status = LineComplete
		return Complete
	}
	if !s.node.Player {
		// The caller skipped Advance; play the book plies first.
		s.Advance(context.Background())
		if s.status != InProgress {
			return s.Submit(raw)
		}
	}
	move := san.Normalize(raw)
	canonical, ok := s.node.Accepts(move)
	if !ok {
		s.status = Failed
		return Rejected
	}
	s.step(canonical)
	return Accepted
}

// step appends move to the path and moves the node cursor, which
// saves re-walking the tree from the root on every ply.
func (s *Session) step(move string) {
	s.path = append(s.path, move)
	s.node, _ = s.node.Child(move)
}

// Reset returns the session to the starting position from any state.
func (s *Session) Reset() {
	s.path = s.path[:0]
	s.node = s.book.Root()
	s.status = InProgress
}
