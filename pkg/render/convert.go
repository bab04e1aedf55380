package render

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/arbor/pkg/errors"
)

// converter is the librsvg command line tool used for PDF and PNG output.
const converter = "rsvg-convert"

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// ToPDF converts an SVG document to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts an SVG document to PNG at the given scale (2.0 doubles the
// pixel size). Non-positive scales fall back to 1.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', -1, 64))
}

func convert(svg []byte, format string, extra ...string) ([]byte, error) {
	bin, err := lookPath(converter)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"%s output needs %s (brew install librsvg / apt install librsvg2-bin)", format, converter)
	}

	args := append([]string{"--format", format}, extra...)
	cmd := exec.Command(bin, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s: %w", converter, err)
		}
		return nil, fmt.Errorf("%s: %w: %s", converter, err, msg)
	}
	return stdout.Bytes(), nil
}
