// Package book holds an opening repertoire: a tree of positions keyed
// by the moves played so far, with a weighted list of candidate moves
// at each node. A Book is immutable once loaded and may be shared by
// any number of concurrent training sessions.
package book

import (
	"encoding/json"
	"fmt"

	"github.com/opendrill/bookdrill/chess"
)

// MoveOption is one candidate move at a node. Weight drives the
// engine's random choice at computer-turn nodes; at player-turn nodes
// the option list is the set of accepted answers and weights are
// ignored.
type MoveOption struct {
	Move   string
	Weight float64
}

// The persisted form is a two-element [text, weight] array. A bare
// string and a {"move":..., "weight":...} object are accepted on input
// for compatibility with hand-written files.
func (o *MoveOption) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) < 1 || len(pair) > 2 {
			return fmt.Errorf("move entry has %d elements", len(pair))
		}
		if err := json.Unmarshal(pair[0], &o.Move); err != nil {
			return fmt.Errorf("move text: %v", err)
		}
		o.Weight = 1.0
		if len(pair) == 2 {
			if err := json.Unmarshal(pair[1], &o.Weight); err != nil {
				return fmt.Errorf("move weight: %v", err)
			}
		}
		return nil
	}
	if err := json.Unmarshal(data, &o.Move); err == nil {
		o.Weight = 1.0
		return nil
	}
	var obj struct {
		Move   string   `json:"move"`
		Weight *float64 `json:"weight"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.Move == "" {
		return fmt.Errorf("bad move entry: %s", data)
	}
	o.Move = obj.Move
	o.Weight = 1.0
	if obj.Weight != nil {
		o.Weight = *obj.Weight
	}
	return nil
}

func (o MoveOption) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{o.Move, o.Weight})
}

// Node is one reachable position. Player marks whose move it is: the
// node's flag, not ply parity, is the sole turn authority, so
// repertoires with irregular turn structure remain representable.
type Node struct {
	Player bool
	Moves  []MoveOption

	children map[string]*Node
}

// Child returns the node reached by playing move from n, if the
// repertoire defines one.
func (n *Node) Child(move string) (*Node, bool) {
	c, ok := n.children[move]
	return c, ok
}

// Accepts reports whether move matches one of the node's options, and
// returns the stored canonical text on a match.
func (n *Node) Accepts(move string) (string, bool) {
	for _, o := range n.Moves {
		if o.Move == move {
			return o.Move, true
		}
	}
	return "", false
}

// Book is a loaded repertoire. Start is the color the book side (the
// computer's opening side) plays; the trainee answers for the other
// color.
type Book struct {
	Start chess.Color

	root *Node
}

func (b *Book) Root() *Node {
	return b.root
}

// Lookup walks the tree along path. A miss means the line has run past
// all defined content: a natural terminal, not an error.
func (b *Book) Lookup(path []string) (*Node, bool) {
	n := b.root
	for _, move := range path {
		var ok bool
		if n, ok = n.children[move]; !ok {
			return nil, false
		}
	}
	return n, true
}

// Len reports the number of nodes in the tree.
func (b *Book) Len() int {
	return countNodes(b.root)
}

func countNodes(n *Node) int {
	total := 1
	for _, c := range n.children {
		total += countNodes(c)
	}
	return total
}

// Depth reports the length in plies of the longest defined line.
// Terminal lines extend one ply past their deepest node.
func (b *Book) Depth() int {
	return depth(b.root)
}

func depth(n *Node) int {
	best := 1
	for _, c := range n.children {
		if d := 1 + depth(c); d > best {
			best = d
		}
	}
	return best
}
