package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/tree"
)

// ReadJSON decodes a tree document from r.
//
// ReadJSON returns an INVALID_INPUT error if the JSON is malformed or names an
// unsupported version, and an INVALID_TREE error if the node list breaks the
// tree invariants. Embedded settings are validated too. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (Document, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode tree")
	}
	if data.Version != FormatVersion {
		return Document{}, errors.New(errors.ErrCodeInvalidInput,
			"unsupported tree format version %d (want %d)", data.Version, FormatVersion)
	}

	t := &tree.Tree{
		Nodes:      make([]tree.Node, len(data.Nodes)),
		Iterations: data.Iterations,
		Unreached:  data.Unreached,
	}
	for i, n := range data.Nodes {
		t.Nodes[i] = tree.Node{
			Position:  vec(n.Position),
			Direction: vec(n.Direction),
			Parent:    n.Parent,
		}
	}
	if err := t.Validate(); err != nil {
		return Document{}, err
	}
	if data.Settings != nil {
		if err := data.Settings.Validate(); err != nil {
			return Document{}, fmt.Errorf("embedded settings: %w", err)
		}
	}
	return Document{Tree: t, Settings: data.Settings}, nil
}

// ImportJSON reads the tree document at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "tree file %s not found", path)
		}
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func vec(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
