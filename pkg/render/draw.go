package render

import (
	"os"
	"path/filepath"

	"github.com/dctopo/dctopo/pkg/errors"
	"github.com/dctopo/dctopo/pkg/topo"
)

// Supported output formats.
const (
	FormatPDF = "pdf"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// pngScale is the fixed raster scale for PNG output (2x resolution).
const pngScale = 2.0

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatPDF, FormatSVG, FormatPNG, FormatDOT:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'pdf', 'svg', 'png', or 'dot')", format)
	}
}

// DrawTopology renders a topology graph to a file in dir, named from the
// topology's descriptor (<descriptor>.<format>), and returns the written
// path.
//
// If g is nil the full generated graph is drawn (generating it first if
// needed). Passing a node-induced subgraph draws only the surviving nodes
// and the links between them; each layer row stays centered on the widest
// remaining row.
func DrawTopology(t *topo.Topology, g *topo.Graph, dir, format string) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	if g == nil {
		var err error
		if g, err = t.GenGraph(); err != nil {
			return "", err
		}
	}

	dot := ToDOT(t, g, t.ComputeLayout(g))

	var data []byte
	var err error
	switch format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = RenderSVG(dot)
	case FormatPDF:
		data, err = RenderPDF(dot)
	case FormatPNG:
		data, err = RenderPNG(dot, pngScale)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "render %s as %s", t.Descriptor, format)
	}

	path := filepath.Join(dir, t.Descriptor+"."+format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
	}
	return path, nil
}
