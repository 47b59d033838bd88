package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/errors"
	"github.com/openblocks/blocklink/pkg/geom"
)

const demo = `{
  "blocks": [
    {
      "id": "three",
      "label": "3",
      "location": {"x": 0, "y": 0},
      "connectors": [{"kind": "plug", "type": "number", "offset": {"x": 0, "y": 5}}]
    },
    {
      "id": "sum",
      "label": "+",
      "genus": "math",
      "location": {"x": 40, "y": 0},
      "collapsed": true,
      "connectors": [
        {"kind": "socket", "type": "number", "label": "b", "offset": {"x": 20, "y": 15}},
        {"kind": "plug", "type": "number", "offset": {"x": 0, "y": 5}},
        {"kind": "socket", "type": "number", "label": "a", "offset": {"x": 20, "y": 5}}
      ]
    },
    {
      "id": "note",
      "genus": "comment",
      "hidden": true,
      "location": {"x": 5, "y": 5}
    }
  ]
}`

func TestReadJSON(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(demo))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if s.Len() != 3 || s.Workspace().Len() != 3 {
		t.Fatalf("Len = %d, workspace = %d", s.Len(), s.Workspace().Len())
	}

	sum, ok := s.Block("sum")
	if !ok {
		t.Fatal("sum missing")
	}
	if sum.Label() != "+" || sum.Genus() != "math" || !sum.HasPlug() {
		t.Errorf("sum = label %q genus %q plug %v", sum.Label(), sum.Genus(), sum.HasPlug())
	}
	socks := sum.Sockets()
	if len(socks) != 2 || socks[0].Label != "b" || socks[1].Label != "a" {
		t.Errorf("sockets = %v, want file order b, a", socks)
	}

	v, _ := s.View("sum")
	if !v.Collapsed() || !v.Visible() {
		t.Errorf("sum view collapsed=%v visible=%v", v.Collapsed(), v.Visible())
	}
	if got := v.ConnectorPoint(socks[0]); got != geom.Pt(20, 15) {
		t.Errorf("offset of b = %v", got)
	}
	if note, _ := s.View("note"); note.Visible() {
		t.Error("note should be hidden")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"malformed", `{"blocks": [`, errors.ErrCodeInvalidScene},
		{"unknown field", `{"blocks": [], "links": []}`, errors.ErrCodeInvalidScene},
		{"empty id", `{"blocks": [{"id": ""}]}`, errors.ErrCodeInvalidBlockID},
		{"padded id", `{"blocks": [{"id": " x"}]}`, errors.ErrCodeInvalidBlockID},
		{"duplicate id", `{"blocks": [{"id": "a"}, {"id": "a"}]}`, errors.ErrCodeInvalidScene},
		{"unknown kind", `{"blocks": [{"id": "a", "connectors": [{"kind": "hook"}]}]}`, errors.ErrCodeInvalidScene},
		{"bad type", `{"blocks": [{"id": "a", "connectors": [{"kind": "plug", "type": "a b"}]}]}`, errors.ErrCodeInvalidScene},
		{"plug and before", `{"blocks": [{"id": "a", "connectors": [{"kind": "plug"}, {"kind": "before"}]}]}`, errors.ErrCodeInvalidScene},
		{"two afters", `{"blocks": [{"id": "a", "connectors": [{"kind": "after"}, {"kind": "after"}]}]}`, errors.ErrCodeInvalidScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestReadJSONPlugAndBeforeCause(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"blocks": [{"id": "a", "connectors": [{"kind": "before"}, {"kind": "plug"}]}]}`))
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), block.ErrMultipleLeads.Error()) {
		t.Errorf("cause missing from %q", err)
	}
}

func TestRoundTrip(t *testing.T) {
	s, err := ReadJSON(strings.NewReader(demo))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(s, &buf); err != nil {
		t.Fatal(err)
	}
	s2, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}

	for _, v := range s.Views() {
		v2, ok := s2.View(v.BlockID())
		if !ok {
			t.Fatalf("%s missing after round trip", v.BlockID())
		}
		if v.Location() != v2.Location() || v.Visible() != v2.Visible() || v.Collapsed() != v2.Collapsed() {
			t.Errorf("%s view changed", v.BlockID())
		}
		c1, c2 := v.Block().Connectors(), v2.Block().Connectors()
		if len(c1) != len(c2) {
			t.Fatalf("%s connectors %d != %d", v.BlockID(), len(c1), len(c2))
		}
		for i := range c1 {
			if c1[i].String() != c2[i].String() || v.ConnectorPoint(c1[i]) != v2.ConnectorPoint(c2[i]) {
				t.Errorf("connector %d: %s@%v != %s@%v", i, c1[i], v.ConnectorPoint(c1[i]), c2[i], v2.ConnectorPoint(c2[i]))
			}
		}
	}
}

func TestImportJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte(demo), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d", s.Len())
	}

	out := filepath.Join(dir, "out.json")
	if err := ExportJSON(s, out); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if _, err := ImportJSON(out); err != nil {
		t.Errorf("re-import exported file: %v", err)
	}

	if _, err := ImportJSON(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %v", errors.GetCode(err))
	}
}
