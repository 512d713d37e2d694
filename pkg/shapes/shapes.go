// Package shapes implements the polymorphism teaching example: an abstract
// shape interface with interchangeable concrete implementations.
package shapes

import (
	"fmt"
	"math"

	"patternbook/pkg/errors"
)

// Shape is the common interface implemented by every concrete shape.
type Shape interface {
	// Name returns the shape kind (e.g., "circle").
	Name() string
	// Area returns the enclosed area.
	Area() float64
	// Perimeter returns the boundary length.
	Perimeter() float64
	// Describe returns a one-line human-readable summary.
	Describe() string
}

// Circle is a circle with a given radius.
type Circle struct {
	Radius float64
}

// NewCircle validates the radius and returns a Circle.
func NewCircle(radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, errors.New(errors.ErrCodeInvalidShape, "circle radius must be positive, got %v", radius)
	}
	return Circle{Radius: radius}, nil
}

func (c Circle) Name() string       { return "circle" }
func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }

func (c Circle) Describe() string {
	return fmt.Sprintf("circle r=%.2f area=%.2f perimeter=%.2f", c.Radius, c.Area(), c.Perimeter())
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle validates the dimensions and returns a Rectangle.
func NewRectangle(width, height float64) (Rectangle, error) {
	if width <= 0 || height <= 0 {
		return Rectangle{}, errors.New(errors.ErrCodeInvalidShape, "rectangle sides must be positive, got %vx%v", width, height)
	}
	return Rectangle{Width: width, Height: height}, nil
}

func (r Rectangle) Name() string       { return "rectangle" }
func (r Rectangle) Area() float64      { return r.Width * r.Height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }

func (r Rectangle) Describe() string {
	return fmt.Sprintf("rectangle %.2fx%.2f area=%.2f perimeter=%.2f", r.Width, r.Height, r.Area(), r.Perimeter())
}

// Triangle is a triangle given by its three side lengths.
// Its area is computed with Heron's formula.
type Triangle struct {
	A, B, C float64
}

// NewTriangle validates the side lengths and returns a Triangle.
// Sides must be positive and satisfy the triangle inequality.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return Triangle{}, errors.New(errors.ErrCodeInvalidShape, "triangle sides must be positive, got %v, %v, %v", a, b, c)
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return Triangle{}, errors.New(errors.ErrCodeInvalidShape, "sides %v, %v, %v violate the triangle inequality", a, b, c)
	}
	return Triangle{A: a, B: b, C: c}, nil
}

func (t Triangle) Name() string { return "triangle" }

// Area computes the area using Heron's formula.
func (t Triangle) Area() float64 {
	s := t.Perimeter() / 2
	return math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C))
}

func (t Triangle) Perimeter() float64 { return t.A + t.B + t.C }

func (t Triangle) Describe() string {
	return fmt.Sprintf("triangle %.2f/%.2f/%.2f area=%.2f perimeter=%.2f", t.A, t.B, t.C, t.Area(), t.Perimeter())
}
