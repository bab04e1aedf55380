package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/config"
	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/tree"
)

func chain() *tree.Tree {
	e := tree.NewWithPoints(tree.Settings{
		InfluenceRadius: 100,
		KillDistance:    1,
		NodeSize:        1,
		MaxIterations:   10,
	}, r3.Vec{}, []r3.Vec{{Y: 5}})
	e.Run()
	return e.Tree()
}

func TestRoundTripGrownTree(t *testing.T) {
	s := config.Default()
	s.AttractionPoints = 200
	want, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(Document{Tree: want, Settings: &s}, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got.Tree, want) {
		t.Error("tree changed across JSON round trip")
	}
	if got.Settings == nil || !reflect.DeepEqual(*got.Settings, s) {
		t.Errorf("settings = %+v", got.Settings)
	}
}

func TestWriteJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(Document{Tree: chain()}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"version": 1`, `"iterations": 4`, `"parent": -1`, `"parent": 3`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"settings"`) {
		t.Error("settings written when absent")
	}
}

func TestReadJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		json string
		code errors.Code
	}{
		{"malformed", `{"nodes": [`, errors.ErrCodeInvalidInput},
		{"version", `{"version": 2, "nodes": []}`, errors.ErrCodeInvalidInput},
		{"empty", `{"version": 1, "nodes": []}`, errors.ErrCodeInvalidTree},
		{"root with parent", `{"version": 1, "nodes": [
			{"position": [0,0,0], "direction": [0,1,0], "parent": 0}]}`, errors.ErrCodeInvalidTree},
		{"forward parent", `{"version": 1, "nodes": [
			{"position": [0,0,0], "direction": [0,1,0], "parent": -1},
			{"position": [0,1,0], "direction": [0,1,0], "parent": 5}]}`, errors.ErrCodeInvalidTree},
		{"bad settings", `{"version": 1, "nodes": [
			{"position": [0,0,0], "direction": [0,1,0], "parent": -1}],
			"settings": {"node_size": 0}}`, errors.ErrCodeInvalidSettings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.json))
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("ReadJSON() code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	want := chain()
	if err := ExportJSON(Document{Tree: want}, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !reflect.DeepEqual(got.Tree, want) {
		t.Errorf("got %+v, want %+v", got.Tree, want)
	}
	if got.Settings != nil {
		t.Error("unexpected settings")
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON(missing) = %v", err)
	}
}
