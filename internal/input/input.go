// Package input decodes JSON, JSON lines and YAML documents into ordered
// table rows.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/rapidtables"
)

// ErrNotRecord reports an input item that is not a mapping.
var ErrNotRecord = errors.New("input item is not a record")

// Decode reads every document in r. A document is either a mapping (one
// record) or a sequence of mappings. Mapping key order is kept. Input that is
// not a valid YAML stream is retried one line at a time, which accepts JSON
// lines.
func Decode(r io.Reader) ([]rapidtables.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	rows, err := decodeStream(data)
	if err == nil || errors.Is(err, ErrNotRecord) {
		return rows, err
	}
	lineRows, lineErr := decodeLines(data)
	if lineErr != nil {
		// The whole-stream error describes malformed YAML better.
		return nil, err
	}
	return lineRows, nil
}

func decodeStream(data []byte) ([]rapidtables.Row, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var rows []rapidtables.Row
	for doc := 1; ; doc++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		docRows, err := documentRows(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		rows = append(rows, docRows...)
	}
}

func decodeLines(data []byte) ([]rapidtables.Row, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var rows []rapidtables.Row
	for line := 1; sc.Scan(); line++ {
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		var node yaml.Node
		if err := yaml.Unmarshal(text, &node); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		lineRows, err := documentRows(&node)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, lineRows...)
	}
	return rows, sc.Err()
}

func documentRows(doc *yaml.Node) ([]rapidtables.Row, error) {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		doc = doc.Content[0]
	}
	doc = resolveAlias(doc)
	switch doc.Kind {
	case yaml.MappingNode:
		row, err := mappingRow(doc)
		if err != nil {
			return nil, err
		}
		return []rapidtables.Row{row}, nil
	case yaml.SequenceNode:
		rows := make([]rapidtables.Row, 0, len(doc.Content))
		for i, item := range doc.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: item %d at line %d", ErrNotRecord, i+1, item.Line)
			}
			row, err := mappingRow(item)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		return rows, nil
	case yaml.ScalarNode:
		if doc.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("%w: line %d", ErrNotRecord, doc.Line)
}

func mappingRow(m *yaml.Node) (rapidtables.Row, error) {
	var row rapidtables.Row
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], resolveAlias(m.Content[i+1])
		v, err := nodeValue(val)
		if err != nil {
			return rapidtables.Row{}, fmt.Errorf("key %q: %w", key.Value, err)
		}
		row.Set(key.Value, v)
	}
	return row, nil
}

// nodeValue decodes scalars by their resolved tag. Nested collections are
// kept as their single-line flow text.
func nodeValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.ScalarNode {
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	flow := *n
	flow.Style = yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return nil, err
	}
	return string(bytes.TrimSpace(out)), nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
