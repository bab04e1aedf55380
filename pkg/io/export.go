package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/config"
	"github.com/matzehuels/arbor/pkg/tree"
)

// FormatVersion is written into every document.
const FormatVersion = 1

// Document is a tree together with the settings that grew it.
type Document struct {
	Tree     *tree.Tree
	Settings *config.Settings // optional
}

type document struct {
	Version    int              `json:"version"`
	Iterations int              `json:"iterations"`
	Unreached  int              `json:"unreached"`
	Nodes      []node           `json:"nodes"`
	Settings   *config.Settings `json:"settings,omitempty"`
}

type node struct {
	Position  [3]float64 `json:"position"`
	Direction [3]float64 `json:"direction"`
	Parent    int        `json:"parent"`
}

// WriteJSON encodes doc as JSON and writes it to w.
func WriteJSON(doc Document, w io.Writer) error {
	t := doc.Tree
	if t == nil {
		t = &tree.Tree{}
	}
	out := toDocument(t)
	out.Settings = doc.Settings

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

func toDocument(t *tree.Tree) document {
	out := document{
		Version:    FormatVersion,
		Iterations: t.Iterations,
		Unreached:  t.Unreached,
		Nodes:      make([]node, len(t.Nodes)),
	}
	for i, n := range t.Nodes {
		out.Nodes[i] = node{Position: array(n.Position), Direction: array(n.Direction), Parent: n.Parent}
	}
	return out
}

func array(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
