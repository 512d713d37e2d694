// Package factory implements the factory teaching examples at three levels:
// a simple factory function for shapes, factory methods for documents, and
// an abstract factory producing whole UI component families.
package factory

import (
	"strconv"
	"strings"

	"patternbook/pkg/errors"
	"patternbook/pkg/shapes"
)

// ShapeKinds lists the kinds understood by NewShape.
var ShapeKinds = []string{"circle", "rectangle", "triangle"}

// NewShape is the simple factory: it builds a shape from a kind name and its
// dimensions (circle: radius; rectangle: width, height; triangle: a, b, c).
// Unknown kinds return INVALID_INPUT; bad dimensions surface the shapes
// package's INVALID_SHAPE errors.
func NewShape(kind string, dims ...float64) (shapes.Shape, error) {
	switch strings.ToLower(kind) {
	case "circle":
		if len(dims) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "circle needs 1 dimension, got %d", len(dims))
		}
		return shapes.NewCircle(dims[0])
	case "rectangle":
		if len(dims) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "rectangle needs 2 dimensions, got %d", len(dims))
		}
		return shapes.NewRectangle(dims[0], dims[1])
	case "triangle":
		if len(dims) != 3 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "triangle needs 3 dimensions, got %d", len(dims))
		}
		return shapes.NewTriangle(dims[0], dims[1], dims[2])
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown shape kind %q (available: %s)", kind, strings.Join(ShapeKinds, ", "))
	}
}

// ParseDims converts string arguments into float64 dimensions for NewShape.
func ParseDims(args []string) ([]float64, error) {
	dims := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid dimension %q", a)
		}
		dims = append(dims, v)
	}
	return dims, nil
}
