package pattern

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chazu/knurl/pkg/brep"
	"github.com/chazu/knurl/pkg/geom"
	"github.com/chazu/knurl/pkg/kernel"
)

// Engine runs pattern cuts against a geometry kernel. It holds no state
// between invocations; the zero-cost sharing rule is that concurrent
// invocations must target distinct solids.
type Engine struct {
	k   kernel.Kernel
	log zerolog.Logger
}

// NewEngine creates an Engine on the given kernel. Diagnostics are
// emitted on logger at debug level.
func NewEngine(k kernel.Kernel, logger zerolog.Logger) *Engine {
	return &Engine{
		k:   k,
		log: logger.With().Str("component", "pattern").Logger(),
	}
}

// Layout is the resolved 2-D plan of one patterned face: its frame, the
// inward-offset boundary the cells were clipped against, and the retained
// cells. Layouts feed diagnostics and DXF export.
type Layout struct {
	Frame    FaceFrame
	Boundary geom.Polygon
	Cells    []Cell
}

// Result is the outcome of a pattern cut: the new solid and the retained
// cell count. Zero cells is a valid outcome (the pattern had no room) and
// returns the base solid unchanged.
type Result struct {
	Solid   *brep.Solid
	Cells   int
	Layouts []Layout
}

// CutPattern cuts the pattern described by spec into every face of base
// matched by sel, returning a new solid. The base solid is never mutated.
func CutPattern(k kernel.Kernel, base *brep.Solid, sel Selector, spec Spec) (*Result, error) {
	return NewEngine(k, zerolog.Nop()).CutPattern(base, sel, spec)
}

// CutPattern cuts the pattern described by spec into every face of base
// matched by sel. The stages run strictly in order — frame resolution,
// inward offset, tiling, clipping, prism extrusion, one boolean subtract —
// and each stage is a pure function of the previous one's output.
func (e *Engine) CutPattern(base *brep.Solid, sel Selector, spec Spec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	frames, err := Frames(base, sel)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var layouts []Layout
	var tool kernel.Solid
	retained := 0

	for _, frame := range frames {
		layout := planFace(frame, spec)
		layouts = append(layouts, layout)
		retained += len(layout.Cells)

		for _, cell := range layout.Cells {
			prism, err := e.cellPrism(base, frame, cell, spec)
			if err != nil {
				return nil, err
			}
			if tool == nil {
				tool = prism
			} else {
				tool = e.k.Union(tool, prism)
			}
		}
	}

	out := base
	if retained > 0 {
		out = brep.Cut(e.k, base, brep.FromKernel(tool, nil))
	}

	e.log.Debug().
		Str("selector", string(sel)).
		Str("shape", spec.Shape.String()).
		Int("faces", len(frames)).
		Int("cells", retained).
		Dur("elapsed", time.Since(start)).
		Msg("pattern cut")

	return &Result{Solid: out, Cells: retained, Layouts: layouts}, nil
}

// planFace runs the pure 2-D half of the pipeline for one face: offset
// the boundary inward, tile the lattice, clip. A border that swallows the
// whole face yields an empty layout, not an error.
func planFace(frame FaceFrame, spec Spec) Layout {
	offset := frame.Boundary.OffsetInward(spec.Border)

	// A border that consumed the ring (empty result), flipped its
	// orientation, or squeezed it below the cell threshold leaves no
	// interior to pattern.
	if len(offset) < 3 ||
		offset.SignedArea()*frame.Boundary.SignedArea() <= 0 ||
		offset.Area() < minCellArea {
		return Layout{Frame: frame, Boundary: offset}
	}

	cells := clipCells(tile(offset.BoundingBox(), spec), offset, spec.Clip)
	return Layout{Frame: frame, Boundary: offset, Cells: cells}
}

// cellPrism extrudes one retained cell into a world-space prism along the
// face normal. A finite depth h spans exactly [face, face - h*normal];
// Through overshoots the solid's bounding-box diagonal on the far side and
// pokes 1 mm out of the face on the near side.
func (e *Engine) cellPrism(base *brep.Solid, frame FaceFrame, cell Cell, spec Spec) (kernel.Solid, error) {
	var height, zBase float64
	if spec.Depth == Through {
		lo, hi := base.BoundingBox()
		diag := hi.Sub(lo).Length()
		height = diag + 2
		zBase = -(diag + 1)
	} else {
		height = spec.Depth
		zBase = -spec.Depth
	}

	profile := make([][2]float64, len(cell.Polygon))
	for i, p := range cell.Polygon {
		profile[i] = [2]float64{p.X, p.Y}
	}
	prism, err := e.k.Extrude(profile, height)
	if err != nil {
		return nil, fmt.Errorf("%w: cell at (%.3f, %.3f): %v", ErrCutFailed, cell.Center.X, cell.Center.Y, err)
	}

	origin := frame.Origin.Add(frame.Normal.Scale(zBase))
	return e.k.Frame(prism,
		[3]float64{origin.X, origin.Y, origin.Z},
		[3]float64{frame.U.X, frame.U.Y, frame.U.Z},
		[3]float64{frame.V.X, frame.V.Y, frame.V.Z},
		[3]float64{frame.Normal.X, frame.Normal.Y, frame.Normal.Z},
	), nil
}
