package pattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHexSpec() Spec {
	return Spec{
		Shape:         Hexagon,
		Width:         8,
		WallThickness: 2,
		Border:        3,
		Depth:         2,
	}
}

func TestSpecValidateAccepts(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"hexagon", validHexSpec()},
		{"through depth", Spec{Shape: Hexagon, Width: 8, Depth: Through}},
		{"line", Spec{Shape: Line, Width: 5, Spacing: 100, Border: 5, Depth: 3}},
		{"rect with fillet", Spec{Shape: Rect, Width: 10, WallThickness: 2, Fillet: 1, Depth: 1}},
		{"partial clip circle", Spec{Shape: Circle, Width: 6, Clip: Partial, Depth: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.spec.Validate())
		})
	}
}

func TestSpecValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"zero width", func(s *Spec) { s.Width = 0 }},
		{"negative width", func(s *Spec) { s.Width = -3 }},
		{"negative wall", func(s *Spec) { s.WallThickness = -1 }},
		{"negative border", func(s *Spec) { s.Border = -0.5 }},
		{"zero depth", func(s *Spec) { s.Depth = 0 }},
		{"negative depth", func(s *Spec) { s.Depth = -2 }},
		{"nan depth", func(s *Spec) { s.Depth = math.NaN() }},
		{"unknown shape", func(s *Spec) { s.Shape = Shape(99) }},
		{"unknown clip", func(s *Spec) { s.Clip = ClipPolicy(7) }},
		{"fillet on hexagon", func(s *Spec) { s.Fillet = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validHexSpec()
			tt.mutate(&spec)

			err := spec.Validate()
			require.Error(t, err)
			var invalid *InvalidSpecError
			require.ErrorAs(t, err, &invalid)
			assert.NotEmpty(t, invalid.Problems)
		})
	}
}

func TestSpecValidateLineNeedsSpacing(t *testing.T) {
	spec := Spec{Shape: Line, Width: 5, Depth: 1}
	err := spec.Validate()
	require.Error(t, err)

	spec.Spacing = 10
	assert.NoError(t, spec.Validate())
}

func TestSpecValidateCollectsAllProblems(t *testing.T) {
	spec := Spec{Shape: Shape(42), Width: -1, Depth: 0}
	err := spec.Validate()
	require.Error(t, err)

	var invalid *InvalidSpecError
	require.ErrorAs(t, err, &invalid)
	assert.GreaterOrEqual(t, len(invalid.Problems), 3)
}

func TestSpecPitch(t *testing.T) {
	assert.Equal(t, 10.0, validHexSpec().pitch())
	assert.Equal(t, 100.0, Spec{Shape: Line, Width: 5, Spacing: 100}.pitch())
}

func TestShapeStrings(t *testing.T) {
	assert.Equal(t, "hexagon", Hexagon.String())
	assert.Equal(t, "line", Line.String())
	assert.Equal(t, "whole", Whole.String())
	assert.Equal(t, "partial", Partial.String())
}
