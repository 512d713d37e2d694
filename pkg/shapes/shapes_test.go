package shapes

import (
	"math"
	"testing"

	"patternbook/pkg/errors"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCircle(t *testing.T) {
	c, err := NewCircle(2)
	if err != nil {
		t.Fatalf("NewCircle(2) returned error: %v", err)
	}
	if !almostEqual(c.Area(), 4*math.Pi) {
		t.Errorf("Area() = %v, want %v", c.Area(), 4*math.Pi)
	}
	if !almostEqual(c.Perimeter(), 4*math.Pi) {
		t.Errorf("Perimeter() = %v, want %v", c.Perimeter(), 4*math.Pi)
	}
	if c.Name() != "circle" {
		t.Errorf("Name() = %q, want %q", c.Name(), "circle")
	}
}

func TestCircleInvalidRadius(t *testing.T) {
	_, err := NewCircle(0)
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("NewCircle(0) error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidShape)
	}
}

func TestRectangle(t *testing.T) {
	r, err := NewRectangle(3, 4)
	if err != nil {
		t.Fatalf("NewRectangle(3, 4) returned error: %v", err)
	}
	if r.Area() != 12 {
		t.Errorf("Area() = %v, want 12", r.Area())
	}
	if r.Perimeter() != 14 {
		t.Errorf("Perimeter() = %v, want 14", r.Perimeter())
	}
}

func TestTriangleHeron(t *testing.T) {
	// 3-4-5 right triangle has area 6.
	tr, err := NewTriangle(3, 4, 5)
	if err != nil {
		t.Fatalf("NewTriangle(3, 4, 5) returned error: %v", err)
	}
	if !almostEqual(tr.Area(), 6) {
		t.Errorf("Area() = %v, want 6", tr.Area())
	}
	if tr.Perimeter() != 12 {
		t.Errorf("Perimeter() = %v, want 12", tr.Perimeter())
	}
}

func TestTriangleInvalid(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
	}{
		{"zero side", 0, 4, 5},
		{"negative side", -3, 4, 5},
		{"degenerate", 1, 2, 3},
		{"inequality violation", 1, 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTriangle(tc.a, tc.b, tc.c)
			if !errors.Is(err, errors.ErrCodeInvalidShape) {
				t.Errorf("NewTriangle(%v, %v, %v) error code = %q, want %q",
					tc.a, tc.b, tc.c, errors.GetCode(err), errors.ErrCodeInvalidShape)
			}
		})
	}
}

func TestCollection(t *testing.T) {
	var coll Collection
	circle, _ := NewCircle(1)
	rect, _ := NewRectangle(2, 5)
	tri, _ := NewTriangle(3, 4, 5)

	coll.Add(circle)
	coll.Add(rect)
	coll.Add(tri)

	if coll.Len() != 3 {
		t.Errorf("Len() = %d, want 3", coll.Len())
	}

	want := math.Pi + 10 + 6
	if !almostEqual(coll.TotalArea(), want) {
		t.Errorf("TotalArea() = %v, want %v", coll.TotalArea(), want)
	}

	largest := coll.Largest()
	if largest == nil || largest.Name() != "rectangle" {
		t.Errorf("Largest() = %v, want the 2x5 rectangle", largest)
	}
}

func TestCollectionEmpty(t *testing.T) {
	var coll Collection
	if coll.TotalArea() != 0 {
		t.Errorf("TotalArea() = %v, want 0 for empty collection", coll.TotalArea())
	}
	if coll.Largest() != nil {
		t.Error("Largest() should be nil for empty collection")
	}
}

// Polymorphic dispatch: every concrete shape satisfies Shape and answers
// through the interface.
func TestShapeInterface(t *testing.T) {
	circle, _ := NewCircle(1)
	rect, _ := NewRectangle(1, 1)
	tri, _ := NewTriangle(3, 4, 5)

	all := []Shape{circle, rect, tri}
	names := []string{"circle", "rectangle", "triangle"}
	for i, s := range all {
		if s.Name() != names[i] {
			t.Errorf("shape %d Name() = %q, want %q", i, s.Name(), names[i])
		}
		if s.Describe() == "" {
			t.Errorf("shape %d Describe() is empty", i)
		}
	}
}
