package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Cell is one key/value pair of a Row.
type Cell struct {
	Key   string
	Value any
}

// Row maps field ids to scalar values while keeping declaration order, so
// cells are written to the host in the order the caller listed them.
type Row []Cell

// RowOf builds a Row from alternating key/value arguments.
func RowOf(pairs ...any) Row {
	row := make(Row, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, _ := pairs[i].(string)
		row = append(row, Cell{Key: key, Value: pairs[i+1]})
	}
	return row
}

// Get returns the value stored under key.
func (r Row) Get(key string) (any, bool) {
	for _, cell := range r {
		if cell.Key == key {
			return cell.Value, true
		}
	}
	return nil, false
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cell := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cell.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(cell.Value)
		if err != nil {
			return nil, fmt.Errorf("model: row key %q: %w", cell.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("model: row must be a JSON object")
	}

	out := Row{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("model: unexpected row key %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("model: row key %q: %w", key, err)
		}
		out = append(out, Cell{Key: key, Value: normalizeNumber(value)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}

// normalizeNumber turns json.Number into int64 when exact, float64 otherwise.
// Lists and objects are walked.
func normalizeNumber(value any) any {
	switch v := value.(type) {
	case []any:
		for i := range v {
			v[i] = normalizeNumber(v[i])
		}
		return v
	case map[string]any:
		for key := range v {
			v[key] = normalizeNumber(v[key])
		}
		return v
	}
	n, ok := value.(json.Number)
	if !ok {
		return value
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func (r Row) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, cell := range r {
		var value yaml.Node
		if err := value.Encode(cell.Value); err != nil {
			return nil, fmt.Errorf("model: row key %q: %w", cell.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cell.Key},
			&value,
		)
	}
	return node, nil
}

func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("model: row must be a mapping")
	}
	out := make(Row, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("model: row key %q: %w", node.Content[i].Value, err)
		}
		out = append(out, Cell{Key: node.Content[i].Value, Value: value})
	}
	*r = out
	return nil
}
