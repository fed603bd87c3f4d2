package trainer

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/opendrill/bookdrill/book"
	"github.com/opendrill/bookdrill/chess"
	"github.com/opendrill/bookdrill/pick"
)

const lineBook = `{
  "start": "white",
  "tree": {
    "": {"player": false, "moves": [["e4", 1.0]]},
    "e4": {"player": true, "moves": [["e5", 1.0]]},
    "e4-e5": {"player": false, "moves": [["Nf3", 1.0]]}
  }
}`

func loadBook(t *testing.T, text string) *book.Book {
	t.Helper()
	b, err := book.Load(strings.NewReader(text))
	if err != nil {
		t.Fatal("load:", err)
	}
	return b
}

func newSession(t *testing.T, b *book.Book) *Session {
	t.Helper()
	s, err := NewSession(b, b.Start.Flip(), pick.NewWeighted(1))
	if err != nil {
		t.Fatal("session:", err)
	}
	return s
}

func TestLineWalk(t *testing.T) {
	s := newSession(t, loadBook(t, lineBook))
	ctx := context.Background()

	played := s.Advance(ctx)
	if !reflect.DeepEqual(played, []string{"e4"}) {
		t.Fatalf("advance played %v", played)
	}
	if !reflect.DeepEqual(s.Moves(), []string{"e4"}) {
		t.Fatalf("path %v", s.Moves())
	}
	if !s.UserTurn() {
		t.Fatal("not user's turn after e4")
	}

	if v := s.Submit("e5"); v != Accepted {
		t.Fatalf("submit e5: %v", v)
	}
	if !reflect.DeepEqual(s.Moves(), []string{"e4", "e5"}) {
		t.Fatalf("path %v", s.Moves())
	}

	played = s.Advance(ctx)
	if !reflect.DeepEqual(played, []string{"Nf3"}) {
		t.Fatalf("advance played %v", played)
	}
	if !reflect.DeepEqual(s.Moves(), []string{"e4", "e5", "Nf3"}) {
		t.Fatalf("path %v", s.Moves())
	}

	// Past the end of defined content: a successful end state.
	if played = s.Advance(ctx); len(played) != 0 {
		t.Fatalf("advance past the end played %v", played)
	}
	if s.Status() != LineComplete {
		t.Fatalf("status %v", s.Status())
	}
	if v := s.Submit("d4"); v != Complete {
		t.Fatalf("submit after completion: %v", v)
	}
}

func TestWrongMoveFails(t *testing.T) {
	s := newSession(t, loadBook(t, lineBook))
	ctx := context.Background()

	s.Advance(ctx)
	if v := s.Submit("d5"); v != Rejected {
		t.Fatalf("submit d5: %v", v)
	}
	if s.Status() != Failed {
		t.Fatalf("status %v", s.Status())
	}
	// No input accepted until reset, including the correct move.
	if v := s.Submit("e5"); v != Rejected {
		t.Fatalf("submit while failed: %v", v)
	}
	if len(s.Advance(ctx)) != 0 {
		t.Fatal("advance while failed played moves")
	}
	if !reflect.DeepEqual(s.Moves(), []string{"e4"}) {
		t.Fatalf("path %v", s.Moves())
	}
}

func TestSubmitNormalizes(t *testing.T) {
	s := newSession(t, loadBook(t, lineBook))
	s.Advance(context.Background())
	if v := s.Submit("  e5\t"); v != Accepted {
		t.Fatalf("trimmed submit: %v", v)
	}
	// The stored canonical text is appended, not the raw input.
	if got := s.Moves()[1]; got != "e5" {
		t.Fatalf("path element %q", got)
	}
}

func TestSubmitIsCaseSensitive(t *testing.T) {
	b := loadBook(t, `{"start": "white", "tree": {
		"": {"player": false, "moves": [["e4", 1]]},
		"e4": {"player": true, "moves": [["Nf6", 1]]}}}`)
	s := newSession(t, b)
	s.Advance(context.Background())
	if v := s.Submit("nf6"); v != Rejected {
		t.Fatalf("lowercased piece letter accepted: %v", v)
	}
}

func TestResetFromAnyState(t *testing.T) {
	ctx := context.Background()

	s := newSession(t, loadBook(t, lineBook))
	s.Advance(ctx)
	s.Submit("d5")
	if s.Status() != Failed {
		t.Fatal("not failed")
	}
	s.Reset()
	if s.Status() != InProgress || len(s.Moves()) != 0 {
		t.Fatalf("reset from failed: %v %v", s.Status(), s.Moves())
	}

	s.Advance(ctx)
	s.Submit("e5")
	s.Advance(ctx)
	s.Advance(ctx)
	if s.Status() != LineComplete {
		t.Fatal("not complete")
	}
	s.Reset()
	if s.Status() != InProgress || len(s.Moves()) != 0 {
		t.Fatalf("reset from complete: %v %v", s.Status(), s.Moves())
	}

	// The session is fully usable after reset.
	if !reflect.DeepEqual(s.Advance(ctx), []string{"e4"}) {
		t.Fatal("advance after reset")
	}
}

func TestTurnsFollowNodeFlags(t *testing.T) {
	// Two consecutive computer-turn nodes: the engine must keep
	// playing until the tree hands the turn over, not assume
	// alternation.
	b := loadBook(t, `{"start": "white", "tree": {
		"": {"player": false, "moves": [["d4", 1]]},
		"d4": {"player": false, "moves": [["d5", 1]]},
		"d4-d5": {"player": true, "moves": [["c4", 1]]}}}`)
	s := newSession(t, b)
	played := s.Advance(context.Background())
	if !reflect.DeepEqual(played, []string{"d4", "d5"}) {
		t.Fatalf("advance played %v", played)
	}
	if !s.UserTurn() {
		t.Fatal("not user's turn after both plies")
	}
}

func TestSubmitRunsPendingComputerPlies(t *testing.T) {
	// Submitting without calling Advance first plays the book plies
	// and then validates against the reached node.
	s := newSession(t, loadBook(t, lineBook))
	if v := s.Submit("e5"); v != Accepted {
		t.Fatalf("submit: %v", v)
	}
	if !reflect.DeepEqual(s.Moves(), []string{"e4", "e5"}) {
		t.Fatalf("path %v", s.Moves())
	}
}

func TestNewSessionSideValidation(t *testing.T) {
	b := loadBook(t, lineBook)
	if _, err := NewSession(b, chess.White, nil); err == nil {
		t.Error("book side accepted as trainee side")
	}
	if _, err := NewSession(b, chess.NoColor, nil); err == nil {
		t.Error("no color accepted")
	}
	if _, err := NewSession(b, chess.Black, nil); err != nil {
		t.Errorf("black rejected: %v", err)
	}
}

func TestLineText(t *testing.T) {
	s := newSession(t, loadBook(t, lineBook))
	if got := s.LineText(); got != "Starting position" {
		t.Errorf("empty line text %q", got)
	}
	s.Advance(context.Background())
	s.Submit("e5")
	if got := s.LineText(); got != "e4 e5" {
		t.Errorf("line text %q", got)
	}
}

func TestBoardProjection(t *testing.T) {
	s := newSession(t, loadBook(t, lineBook))
	s.Advance(context.Background())
	b := s.Board()
	if got := b.At(4, 3); got != chess.MakePiece(chess.White, chess.Pawn) {
		t.Errorf("e4 = %v", got)
	}
	if got := b.At(4, 1); got != chess.Empty {
		t.Errorf("e2 = %v", got)
	}
}

func TestOptions(t *testing.T) {
	s := newSession(t, loadBook(t, lineBook))
	s.Advance(context.Background())
	want := []book.MoveOption{{Move: "e5", Weight: 1}}
	if !reflect.DeepEqual(s.Options(), want) {
		t.Errorf("options %+v", s.Options())
	}
}

func TestWeightedChoiceAcrossBranches(t *testing.T) {
	// A computer node with a dominant weight should favor that move
	// over many sessions.
	b := loadBook(t, `{"start": "white", "tree": {
		"": {"player": false, "moves": [["e4", 9], ["d4", 1]]}}}`)
	counts := make(map[string]int)
	ctx := context.Background()
	for seed := int64(0); seed < 500; seed++ {
		s, err := NewSession(b, chess.Black, pick.NewWeighted(seed))
		if err != nil {
			t.Fatal(err)
		}
		played := s.Advance(ctx)
		counts[played[0]]++
	}
	if counts["e4"] < 350 {
		t.Errorf("e4 chosen %d times of 500", counts["e4"])
	}
	if counts["d4"] == 0 {
		t.Error("d4 never chosen")
	}
}
