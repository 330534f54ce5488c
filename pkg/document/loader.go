package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned for files with no content.
var ErrEmptyDocument = errors.New("document: empty document")

// Load reads a JSON or YAML document from disk.
func Load(filename string) (Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Document{}, fmt.Errorf("document: read %s: %w", filename, err)
	}
	return Parse(data, filename)
}

// LoadFS parses every .json, .yaml and .yml file in fsys, keyed by file name
// without extension. Two files sharing a stem are an error.
func LoadFS(fsys fs.FS) (map[string]Document, error) {
	docs := make(map[string]Document)
	if fsys == nil {
		return docs, nil
	}

	sources := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("document: read %s: %w", p, err)
		}
		doc, err := Parse(data, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if prev, exists := sources[name]; exists {
			return fmt.Errorf("document: duplicate document %q (%s and %s)", name, prev, p)
		}
		sources[name] = p
		docs[name] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Parse decodes data as JSON, falling back to YAML. source only labels
// errors.
func Parse(data []byte, source string) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, fmt.Errorf("document: %s: %w", source, ErrEmptyDocument)
	}

	var doc Document
	jsonErr := json.Unmarshal(data, &doc)
	if jsonErr == nil {
		return doc, nil
	}

	// A leading brace means the caller meant JSON; report that error.
	if trimmed := bytes.TrimSpace(data); trimmed[0] == '{' {
		return Document{}, fmt.Errorf("document: parse %s: %w", source, jsonErr)
	}

	normalized, err := yamlToJSON(data)
	if err != nil {
		return Document{}, fmt.Errorf("document: parse %s: %w", source, err)
	}
	doc = Document{}
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return Document{}, fmt.Errorf("document: decode %s: %w", source, err)
	}
	return doc, nil
}

// Format selects the encoding used by Encode.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension, defaulting to YAML.
func FormatFromPath(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Encode writes doc to w.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("document: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("document: unknown format %q", format)
	}
}

// Save encodes doc to filename, picking the format from its extension.
func Save(filename string, doc Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, FormatFromPath(filename)); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("document: write %s: %w", filename, err)
	}
	return nil
}

func isDocumentFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
