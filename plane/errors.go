// SPDX-License-Identifier: MIT

package plane

import (
	"errors"
	"fmt"
)

var (
	// ErrNonOrthogonal indicates CoordinatePlane axes that are not perpendicular.
	ErrNonOrthogonal = errors.New("plane: non-orthogonal axes cannot form a coordinate plane")

	// ErrDegenerateAxis indicates a zero-length CoordinatePlane axis.
	ErrDegenerateAxis = errors.New("plane: axis has zero length")

	// ErrTooFewPoints indicates a regression over fewer than three points.
	ErrTooFewPoints = errors.New("plane: regression needs at least three points")
)

// Operation tags for error wrapping.
const (
	opRegress            = "Regress"
	opNewCoordinatePlane = "NewCoordinatePlane"
)

// planeErrorf wraps err with an operation tag; err must be non-nil.
func planeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
