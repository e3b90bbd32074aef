package pattern

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/chazu/knurl/pkg/geom"
)

// WriteLayoutDXF writes the 2-D plan of a patterned face as a DXF sketch:
// the offset boundary on layer BOUNDARY and every retained cell outline on
// layer CELLS, all in face-local (u,v) coordinates. The sketch is a cut
// preview suitable for CNC or laser toolchains.
func WriteLayoutDXF(path string, layout Layout) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("BOUNDARY", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("pattern: dxf layer: %w", err)
	}
	if err := drawRing(d, layout.Boundary); err != nil {
		return fmt.Errorf("pattern: dxf boundary: %w", err)
	}

	if _, err := d.AddLayer("CELLS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("pattern: dxf layer: %w", err)
	}
	for _, cell := range layout.Cells {
		if err := drawRing(d, cell.Polygon); err != nil {
			return fmt.Errorf("pattern: dxf cell: %w", err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("pattern: dxf save: %w", err)
	}
	return nil
}

// drawRing emits a closed ring as LINE entities on the current layer.
func drawRing(d *drawing.Drawing, ring geom.Polygon) error {
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return err
		}
	}
	return nil
}
