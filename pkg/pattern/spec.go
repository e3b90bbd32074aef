// Package pattern cuts repeating 2-D patterns (hexagons, circles, rects,
// lines) into planar faces of a solid. The pipeline is a pure function of
// its inputs: resolve a face frame, offset the boundary inward by the
// border, tile candidate cells over its extent, clip them against the
// boundary, extrude the survivors into prisms and boolean-subtract them
// from the base solid.
package pattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Shape enumerates the supported pattern cell shapes.
type Shape int

const (
	Hexagon Shape = iota // regular hexagon honeycomb
	Circle               // circle, approximated as a 32-gon
	Rect                 // square cell with optional corner fillet
	Line                 // full-length slot spanning the boundary
)

func (s Shape) String() string {
	switch s {
	case Hexagon:
		return "hexagon"
	case Circle:
		return "circle"
	case Rect:
		return "rect"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ClipPolicy determines the fate of cells that are only partially covered
// by the offset boundary.
type ClipPolicy int

const (
	// Whole retains a cell unmodified only if every vertex lies inside
	// the offset boundary.
	Whole ClipPolicy = iota
	// Partial replaces a straddling cell's polygon with its geometric
	// intersection with the offset boundary.
	Partial
)

func (c ClipPolicy) String() string {
	switch c {
	case Whole:
		return "whole"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("ClipPolicy(%d)", int(c))
	}
}

// Through is the depth sentinel meaning "penetrate the full thickness of
// the solid", independent of how thick it actually is.
var Through = math.Inf(1)

// Spec describes one pattern application. The zero value is not valid;
// Width and Depth must always be set.
type Spec struct {
	Shape Shape

	// Width is the cell size in mm: across-flats for Hexagon, diameter
	// for Circle, side length for Rect, slot width for Line.
	Width float64 `validate:"gt=0"`

	// WallThickness is the material left between adjacent cells
	// (Hexagon, Circle, Rect). The lattice pitch is Width+WallThickness.
	WallThickness float64 `validate:"gte=0"`

	// Spacing is the center-to-center pitch between Line slots.
	Spacing float64 `validate:"gte=0"`

	// Border is the inward safety margin from the face boundary. Cells
	// never cut within Border of the outer wire.
	Border float64 `validate:"gte=0"`

	// Stagger offsets odd lattice rows by half the column pitch.
	Stagger bool

	Clip ClipPolicy

	// Depth is the cut depth in mm measured perpendicular to the face,
	// or Through for full penetration.
	Depth float64

	// Fillet is the corner radius for Rect cells.
	Fillet float64 `validate:"gte=0"`
}

// specValidator checks the numeric range tags on Spec.
var specValidator = validator.New()

// Validate rejects a spec before any geometry work. All violations are
// collected into a single InvalidSpecError.
func (s Spec) Validate() error {
	var problems []string

	if err := specValidator.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				problems = append(problems, fmt.Sprintf(
					"%s=%v violates %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	if s.Shape < Hexagon || s.Shape > Line {
		problems = append(problems, fmt.Sprintf("unknown shape %d", int(s.Shape)))
	}
	if s.Clip < Whole || s.Clip > Partial {
		problems = append(problems, fmt.Sprintf("unknown clip policy %d", int(s.Clip)))
	}
	if s.Shape == Line {
		if s.Spacing <= 0 {
			problems = append(problems, "line pattern requires positive Spacing")
		}
	}
	if s.Fillet > 0 && s.Shape != Rect {
		problems = append(problems, fmt.Sprintf("fillet applies only to rect cells, not %s", s.Shape))
	}
	if !(s.Depth > 0) { // rejects zero, negatives and NaN; Through is +Inf
		problems = append(problems, fmt.Sprintf("depth %v, must be positive or Through", s.Depth))
	}

	if len(problems) > 0 {
		return &InvalidSpecError{Problems: problems}
	}
	return nil
}

// pitch returns the center-to-center column spacing of the lattice.
func (s Spec) pitch() float64 {
	if s.Shape == Line {
		return s.Spacing
	}
	return s.Width + s.WallThickness
}
