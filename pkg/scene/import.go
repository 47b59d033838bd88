package scene

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/errors"
	"github.com/openblocks/blocklink/pkg/geom"
	"github.com/openblocks/blocklink/pkg/observability"
)

type document struct {
	Blocks []blockDoc `json:"blocks"`
}

type blockDoc struct {
	ID         string         `json:"id"`
	Label      string         `json:"label,omitempty"`
	Genus      string         `json:"genus,omitempty"`
	Location   geom.Point     `json:"location"`
	Hidden     bool           `json:"hidden,omitempty"`
	Collapsed  bool           `json:"collapsed,omitempty"`
	Connectors []connectorDoc `json:"connectors,omitempty"`
}

type connectorDoc struct {
	Kind   string     `json:"kind"`
	Type   string     `json:"type,omitempty"`
	Label  string     `json:"label,omitempty"`
	Offset geom.Point `json:"offset"`
}

// ReadJSON decodes a JSON scene from r.
//
// The input must be an object with a "blocks" array. Each block needs an
// "id"; each connector needs a "kind" of "plug", "before", "socket" or
// "after". Connector order within a block is kept for sockets.
//
// ReadJSON returns an INVALID_SCENE error if the JSON is malformed, a
// connector kind or type is invalid, a block carries both a plug and a
// before connector, or two blocks share an ID. Malformed IDs are reported
// as INVALID_BLOCK_ID. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Scene, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}

	s := New()
	for i, bd := range doc.Blocks {
		if err := errors.ValidateBlockID(bd.ID); err != nil {
			return nil, errors.Within(err, "blocks[%d]", i)
		}
		if err := s.addDoc(bd); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "block %s", bd.ID)
		}
	}
	return s, nil
}

func (s *Scene) addDoc(bd blockDoc) error {
	conns := make([]*block.Connector, len(bd.Connectors))
	for i, cd := range bd.Connectors {
		kind, ok := block.ParseKind(cd.Kind)
		if !ok {
			return errors.New(errors.ErrCodeInvalidScene, "connector %d: unknown kind %q", i, cd.Kind)
		}
		if err := errors.ValidateTypeTag(cd.Type); err != nil {
			return err
		}
		conns[i] = block.NewConnector(kind, cd.Type).WithLabel(cd.Label)
	}

	b, err := block.New(block.ID(bd.ID), bd.Label, conns...)
	if err != nil {
		return err
	}
	b.SetGenus(bd.Genus)

	v, err := s.Add(b, bd.Location)
	if err != nil {
		return err
	}
	v.SetVisible(!bd.Hidden)
	v.SetCollapsed(bd.Collapsed)
	for i, c := range conns {
		if err := v.SetOffset(c, bd.Connectors[i].Offset); err != nil {
			return err
		}
	}
	return nil
}

// ImportJSON reads the scene file at path.
//
// A missing file is reported as FILE_NOT_FOUND; decoding errors are the
// same as for [ReadJSON].
func ImportJSON(path string) (*Scene, error) {
	start := time.Now()
	s, err := importJSON(path)
	n := 0
	if s != nil {
		n = s.Len()
	}
	observability.Load().OnLoad("scene", path, n, time.Since(start), err)
	return s, err
}

func importJSON(path string) (*Scene, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
