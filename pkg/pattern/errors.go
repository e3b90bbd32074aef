package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatchingFace means the face selector matched no face of the solid.
var ErrNoMatchingFace = errors.New("pattern: no face matches selector")

// ErrUnsupportedFaceTopology means a matched face cannot be patterned:
// its outer wire is missing, degenerate, or not a single simple loop.
var ErrUnsupportedFaceTopology = errors.New("pattern: unsupported face topology")

// ErrCutFailed means the kernel-level boolean cut failed, typically for
// numerically degenerate inputs (wall thickness near the kernel's
// resolution). No partial solid is returned alongside it.
var ErrCutFailed = errors.New("pattern: geometry cut failed")

// InvalidSpecError reports why a Spec was rejected before any geometry
// work. Every violation found is listed, so callers can fix the spec in
// one pass.
type InvalidSpecError struct {
	Problems []string
}

func (e *InvalidSpecError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "pattern: invalid spec"
	case 1:
		return fmt.Sprintf("pattern: invalid spec: %s", e.Problems[0])
	default:
		return fmt.Sprintf("pattern: invalid spec: %s", strings.Join(e.Problems, "; "))
	}
}
