package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes s as JSON and writes it to w. Connectors are written
// lead first, then sockets, then the after connector. The output can be
// read back with [ReadJSON].
func WriteJSON(s *Scene, w io.Writer) error {
	doc := document{Blocks: make([]blockDoc, 0, s.Len())}
	for _, v := range s.Views() {
		b := v.Block()
		bd := blockDoc{
			ID:        string(b.ID()),
			Label:     b.Label(),
			Genus:     b.Genus(),
			Location:  v.Location(),
			Hidden:    !v.Visible(),
			Collapsed: v.Collapsed(),
		}
		for _, c := range b.Connectors() {
			bd.Connectors = append(bd.Connectors, connectorDoc{
				Kind:   c.Kind().String(),
				Type:   c.Type,
				Label:  c.Label,
				Offset: v.ConnectorPoint(c),
			})
		}
		doc.Blocks = append(doc.Blocks, bd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes s to a JSON file at path.
func ExportJSON(s *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}
