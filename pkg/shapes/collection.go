package shapes

// Collection aggregates shapes and answers questions over the whole set.
// The zero value is ready to use.
type Collection struct {
	shapes []Shape
}

// Add appends a shape to the collection.
func (c *Collection) Add(s Shape) {
	c.shapes = append(c.shapes, s)
}

// Len returns the number of shapes in the collection.
func (c *Collection) Len() int {
	return len(c.shapes)
}

// Shapes returns the shapes in insertion order.
func (c *Collection) Shapes() []Shape {
	return c.shapes
}

// TotalArea returns the sum of all shape areas.
func (c *Collection) TotalArea() float64 {
	var total float64
	for _, s := range c.shapes {
		total += s.Area()
	}
	return total
}

// Largest returns the shape with the greatest area, or nil when empty.
// Ties keep the earliest shape.
func (c *Collection) Largest() Shape {
	var best Shape
	for _, s := range c.shapes {
		if best == nil || s.Area() > best.Area() {
			best = s
		}
	}
	return best
}
