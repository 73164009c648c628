package fpcoll

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple. It is the element type of zipping operations.
//
// Pairs serialize to JSON (and YAML) as an ordered array of two elements:
//
//	fpcoll.P(1, "one")   ⇒   [1,"one"]
type Pair[A, B any] struct {
	First  A
	Second B
}

// P creates a pair (x,y).
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components of a pair.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.First, p.Second
}

// Swap returns (y,x) for a pair (x,y).
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Second, p.First}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v,%v)", p.First, p.Second)
}

// MarshalJSON writes p as [first, second].
func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.First, p.Second})
}

// UnmarshalJSON reads a 2-element array. Arrays of any other length are an error.
func (p *Pair[A, B]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("pair: expected array of 2 elements, have %d: %w", len(raw), ErrInvalidArgument)
	}
	var q Pair[A, B]
	if err := json.Unmarshal(raw[0], &q.First); err != nil {
		return fmt.Errorf("pair: first element: %w", err)
	}
	if err := json.Unmarshal(raw[1], &q.Second); err != nil {
		return fmt.Errorf("pair: second element: %w", err)
	}
	*p = q
	return nil
}

// MarshalYAML writes p as a sequence of two nodes.
func (p Pair[A, B]) MarshalYAML() (interface{}, error) {
	return []interface{}{p.First, p.Second}, nil
}

// UnmarshalYAML reads a sequence of two nodes.
func (p *Pair[A, B]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("pair: expected sequence in line %d: %w", node.Line, ErrInvalidArgument)
	}
	if len(node.Content) != 2 {
		return fmt.Errorf("pair: expected sequence of 2 elements, have %d: %w",
			len(node.Content), ErrInvalidArgument)
	}
	var q Pair[A, B]
	if err := node.Content[0].Decode(&q.First); err != nil {
		return fmt.Errorf("pair: first element: %w", err)
	}
	if err := node.Content[1].Decode(&q.Second); err != nil {
		return fmt.Errorf("pair: second element: %w", err)
	}
	*p = q
	return nil
}
