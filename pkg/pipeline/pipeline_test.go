package pipeline

import (
	"reflect"
	"testing"

	"github.com/matzehuels/arbor/pkg/config"
	"github.com/matzehuels/arbor/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"obj", false},
		{"dot", false},
		{"nodelink", false},
		{"nodelink-pdf", false},
		{"nodelink-png", false},
		{"stl", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "obj"}); err != nil {
		t.Errorf("valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" SVG, obj,,svg ,json")
	want := []string{"svg", "obj", "json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFormats() = %v, want %v", got, want)
	}
	if got := ParseFormats(""); got != nil {
		t.Errorf("ParseFormats(\"\") = %v", got)
	}
}

func TestExtension(t *testing.T) {
	for format, want := range map[string]string{
		FormatSVG:      ".svg",
		FormatOBJ:      ".obj",
		FormatDOT:      ".dot",
		FormatNodelink: ".nodelink.svg",

		FormatNodelinkPDF: ".nodelink.pdf",
		FormatNodelinkPNG: ".nodelink.png",
	} {
		if got := Extension(format); got != want {
			t.Errorf("Extension(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Settings: config.Default()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(opts.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.View != DefaultView || opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("render defaults not applied: %+v", opts)
	}
	if opts.Logger == nil {
		t.Error("Logger not defaulted")
	}

	bad := []Options{
		{Settings: config.Default(), Formats: []string{"gif"}},
		{Settings: config.Default(), View: "isometric"},
		{Settings: config.Settings{}},
	}
	for i, o := range bad {
		if err := o.ValidateAndSetDefaults(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestSettingsHash(t *testing.T) {
	base := Options{Settings: config.Default()}
	h0, err := base.SettingsHash()
	if err != nil {
		t.Fatal(err)
	}

	zeroSeed := base
	zeroSeed.Settings.Seed = 0
	if h, _ := zeroSeed.SettingsHash(); h != h0 {
		t.Error("seed 0 and the default seed should hash equally")
	}

	recoloured := base
	recoloured.Settings.Colour = "#000000"
	recoloured.Settings.BranchThickness = 1
	if h, _ := recoloured.SettingsHash(); h != h0 {
		t.Error("render-only settings changed the tree hash")
	}

	for name, mutate := range map[string]func(*config.Settings){
		"points":    func(s *config.Settings) { s.AttractionPoints++ },
		"seed":      func(s *config.Settings) { s.Seed = 7 },
		"node size": func(s *config.Settings) { s.NodeSize = 0.1 },
		"crown":     func(s *config.Settings) { s.Crown.Size[1] = 6 },
		"origin":    func(s *config.Settings) { s.Origin[0] = 1 },
	} {
		o := base
		mutate(&o.Settings)
		if h, _ := o.SettingsHash(); h == h0 {
			t.Errorf("%s change did not change the hash", name)
		}
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Settings: config.Default(), View: "side", Width: 640, Height: 480, Detailed: true}

	svg := opts.ArtifactKeyOpts(FormatSVG)
	if svg.View != "side" || svg.Width != 640 || svg.Colour != "#4a3b2a" || svg.Detailed {
		t.Errorf("svg key opts = %+v", svg)
	}
	obj := opts.ArtifactKeyOpts(FormatOBJ)
	if obj.View != "" || obj.Colour != "" {
		t.Errorf("obj key opts carry render options: %+v", obj)
	}
	if dot := opts.ArtifactKeyOpts(FormatDOT); !dot.Detailed {
		t.Errorf("dot key opts = %+v", dot)
	}
	if js := opts.ArtifactKeyOpts(FormatJSON); js.Settings == "" {
		t.Error("json key opts should hash the settings")
	}
}
