package book

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/opendrill/bookdrill/chess"
)

// The persisted form keys each node by the dash-joined move path from
// the start ("" is the root). Moves themselves may contain dashes
// (castling), so keys are never split: the tree is reconstructed by
// joining each node's move texts and chasing the resulting keys, the
// same way they were produced.
type rawNode struct {
	Player bool         `json:"player"`
	Moves  []MoveOption `json:"moves"`
}

type rawBook struct {
	Start *string            `json:"start"`
	Tree  map[string]rawNode `json:"tree"`
}

// Load parses and validates a repertoire. On any error no partial Book
// is returned.
func Load(r io.Reader) (*Book, error) {
	var raw rawBook
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse repertoire: %v", err)
	}
	if raw.Start == nil {
		return nil, fmt.Errorf(`repertoire has no "start"`)
	}
	if raw.Tree == nil {
		return nil, fmt.Errorf(`repertoire has no "tree"`)
	}
	start, err := chess.ParseColor(*raw.Start)
	if err != nil {
		return nil, fmt.Errorf("bad start: %q", *raw.Start)
	}
	for key, n := range raw.Tree {
		if len(n.Moves) == 0 {
			return nil, fmt.Errorf("node %q has no moves", key)
		}
	}
	root, ok := raw.Tree[""]
	if !ok {
		return nil, fmt.Errorf("repertoire has no root node")
	}
	// White moves at ply zero. The root's turn flag therefore fixes
	// which color the book side plays, and it must agree with the
	// declared start.
	bookSide := chess.White
	if root.Player {
		bookSide = chess.Black
	}
	if bookSide != start {
		return nil, fmt.Errorf(
			"start is %q but the root is a %s-turn node",
			*raw.Start, turnName(root.Player))
	}

	built := make(map[string]*Node, len(raw.Tree))
	b := &Book{Start: start, root: build("", raw.Tree, built)}
	if len(built) != len(raw.Tree) {
		var orphans []string
		for key := range raw.Tree {
			if _, ok := built[key]; !ok {
				orphans = append(orphans, key)
			}
		}
		sort.Strings(orphans)
		return nil, fmt.Errorf("unreachable node %q", orphans[0])
	}
	return b, nil
}

func LoadFile(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return b, nil
}

func build(key string, raw map[string]rawNode, built map[string]*Node) *Node {
	if n, ok := built[key]; ok {
		return n
	}
	rn := raw[key]
	n := &Node{Player: rn.Player, Moves: rn.Moves}
	built[key] = n
	for _, o := range rn.Moves {
		childKey := joinKey(key, o.Move)
		if _, ok := raw[childKey]; !ok {
			continue
		}
		if n.children == nil {
			n.children = make(map[string]*Node)
		}
		n.children[o.Move] = build(childKey, raw, built)
	}
	return n
}

func joinKey(prefix, move string) string {
	if prefix == "" {
		return move
	}
	return prefix + "-" + move
}

func turnName(player bool) string {
	if player {
		return "player"
	}
	return "computer"
}

// Encode writes the repertoire back out in the textual-key form read
// by Load.
func (b *Book) Encode(w io.Writer) error {
	tree := make(map[string]rawNode)
	flatten("", b.root, tree)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"start": b.Start.String(),
		"tree":  tree,
	})
}

func flatten(key string, n *Node, tree map[string]rawNode) {
	tree[key] = rawNode{Player: n.Player, Moves: n.Moves}
	for move, c := range n.children {
		flatten(joinKey(key, move), c, tree)
	}
}
