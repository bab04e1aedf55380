package config

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/arbor/pkg/errors"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "arbor.toml"

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput,
		"unsupported config extension %q (use .toml, .yaml or .yml)", filepath.Ext(path))
}

// Load reads, decodes and validates the settings file at path.
func Load(path string) (Settings, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Decode reads settings in the given format on top of Default. It does not
// validate.
func Decode(r io.Reader, format Format) (Settings, error) {
	s := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return Settings{}, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
			return Settings{}, err
		}
	default:
		return Settings{}, errors.New(errors.ErrCodeInvalidInput, "unknown config format %q", format)
	}
	return s, nil
}

// Encode writes s in the given format.
func Encode(w io.Writer, s Settings, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown config format %q", format)
}

const header = `arbor growth settings.
influence_radius and kill_distance are multiples of node_size.
crown.kind is "sphere" (centre, radius) or "box" (centre, size).
`

// Write encodes s to path with a short explanatory header, choosing the format
// from the extension. It refuses to overwrite an existing file unless force
// is set.
func Write(path string, s Settings, force bool) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidPath, "%s already exists", path)
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	var buf bytes.Buffer
	for _, line := range strings.Split(strings.TrimSuffix(header, "\n"), "\n") {
		buf.WriteString("# " + line + "\n")
	}
	buf.WriteString("\n")
	if err := Encode(&buf, s, format); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), fs.FileMode(0o644))
}
