package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlToJSON re-encodes a YAML document as JSON, keeping mapping order and
// explicit nulls. Decoding YAML straight into the model would lose both:
// yaml.v3 zeroes null targets without calling their unmarshaler, and generic
// maps reorder row keys.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeNode(&buf, &root, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const maxYAMLDepth = 64

func writeNode(buf *bytes.Buffer, node *yaml.Node, depth int) error {
	if depth > maxYAMLDepth {
		return errors.New("yaml nesting too deep")
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNode(buf, node.Content[0], depth+1)
	case yaml.AliasNode:
		return writeNode(buf, node.Alias, depth+1)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeNode(buf, node.Content[i+1], depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNode(buf, item, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		buf.Write(encoded)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported yaml node", node.Line)
	}
}
