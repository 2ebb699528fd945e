// Package taxonomy turns the backend's nested topic mapping into an ordered
// tree with stable path ids.
package taxonomy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Separator joins ancestor names into a node id. The backend uses the same
// separator inside topics_path values, so ids round-trip as topic filters.
const Separator = " > "

// Node is one topic in the tree. ID is the full ancestor-name chain joined by
// Separator, which makes it unique across the tree; Level is the ancestor
// depth, 0 at the root.
type Node struct {
	ID         string
	Name       string
	Level      int
	VideoCount int
	Children   []Node
}

// Build decodes the raw taxonomy object into an ordered tree. A key maps to
// either another object (children) or null/empty (leaf). Key order in the
// document is the curated display order, so decoding goes through the token
// stream instead of a map.
func Build(raw []byte) ([]Node, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("taxonomy: expected object, got %v", tok)
	}

	nodes, err := decodeObject(dec, nil)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	return nodes, nil
}

// decodeObject consumes the members of an already-opened object, including
// its closing brace.
func decodeObject(dec *json.Decoder, path []string) ([]Node, error) {
	var nodes []Node
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", keyTok)
		}

		childPath := append(path[:len(path):len(path)], name)
		node := Node{
			ID:    strings.Join(childPath, Separator),
			Name:  name,
			Level: len(childPath) - 1,
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := valTok.(type) {
		case json.Delim:
			if v != '{' {
				return nil, fmt.Errorf("topic %q: unexpected %v", node.ID, v)
			}
			children, err := decodeObject(dec, childPath)
			if err != nil {
				return nil, err
			}
			node.Children = children
		case float64:
			// Some taxonomy exports put the per-topic video count on leaves.
			node.VideoCount = int(v)
		case nil:
			// Leaf.
		default:
			return nil, fmt.Errorf("topic %q: unexpected value %v", node.ID, valTok)
		}
		nodes = append(nodes, node)
	}

	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return nodes, nil
}

// Find returns the node with the given id, searching depth-first.
func Find(nodes []Node, id string) (Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
		if strings.HasPrefix(id, n.ID+Separator) {
			return Find(n.Children, id)
		}
	}
	return Node{}, false
}

// Count returns the total number of nodes in the tree.
func Count(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		total += 1 + Count(n.Children)
	}
	return total
}

// Ancestors returns the ids of every proper ancestor of id, outermost first.
// Used to expand the sidebar down to the active topic.
func Ancestors(id string) []string {
	parts := strings.Split(id, Separator)
	if len(parts) < 2 {
		return nil
	}
	out := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		out = append(out, strings.Join(parts[:i], Separator))
	}
	return out
}
