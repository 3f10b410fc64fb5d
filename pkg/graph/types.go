package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is a single entity in the knowledge graph. Nodes are immutable once
// loaded into a Graph.
type Node struct {
	ID         string     `json:"id"`
	Label      string     `json:"label,omitempty"`
	Type       string     `json:"type"`
	Properties Properties `json:"properties,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the id. This is the
// string shown next to the node's marker and matched by search.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a relationship between two nodes. Source and target are node ids;
// the edge is undirected for highlighting purposes but keeps its direction
// for display.
type Edge struct {
	Source       string     `json:"source"`
	Target       string     `json:"target"`
	Relationship string     `json:"relationship,omitempty"`
	Properties   Properties `json:"properties,omitempty"`
}

// Key returns a stable identifier for the edge within a graph, derived from
// its endpoints and its position in the load order.
func (e *Edge) Key(ordinal int) string {
	return fmt.Sprintf("%s->%s#%d", e.Source, e.Target, ordinal)
}

// GraphData is the JSON contract supplied by the notebook backend. It is the
// only input surface of the visualization core.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Properties is a read-only string-keyed map that preserves the key order of
// the JSON object it was decoded from.
type Properties struct {
	keys   []string
	values map[string]any
}

// Get returns the value for key and whether it was present.
func (p Properties) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the property keys in their original JSON order. The returned
// slice is a copy.
func (p Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of properties.
func (p Properties) Len() int {
	return len(p.keys)
}

// UnmarshalJSON decodes a JSON object token-by-token so that key order is
// retained. null decodes to an empty Properties.
func (p *Properties) UnmarshalJSON(data []byte) error {
	*p = Properties{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("properties: expected JSON object, got %v", tok)
	}

	p.values = make(map[string]any)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var val any
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("properties: value for %q: %w", key, err)
		}

		if _, seen := p.values[key]; !seen {
			p.keys = append(p.keys, key)
		}
		p.values[key] = val
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the properties as a JSON object in key order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(p.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
