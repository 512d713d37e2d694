package strategy

import (
	"cmp"
	"slices"
	"time"
)

// Sorter is a swappable sorting algorithm over ordered element types.
type Sorter[T cmp.Ordered] interface {
	// Sort orders data ascending in place.
	Sort(data []T)
	// Algorithm returns the algorithm name.
	Algorithm() string
}

// Bubble is the textbook O(n²) bubble sort.
type Bubble[T cmp.Ordered] struct{}

func (Bubble[T]) Algorithm() string { return "bubble" }

// Sort implements Sorter.
func (Bubble[T]) Sort(data []T) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}

// Quick is a Lomuto-partition quicksort.
type Quick[T cmp.Ordered] struct{}

func (Quick[T]) Algorithm() string { return "quick" }

// Sort implements Sorter.
func (Quick[T]) Sort(data []T) {
	quickSort(data, 0, len(data)-1)
}

func quickSort[T cmp.Ordered](data []T, low, high int) {
	if low >= high {
		return
	}
	p := partition(data, low, high)
	quickSort(data, low, p-1)
	quickSort(data, p+1, high)
}

func partition[T cmp.Ordered](data []T, low, high int) int {
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		if data[j] < pivot {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}
	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}

// Std delegates to the standard library's sort.
type Std[T cmp.Ordered] struct{}

func (Std[T]) Algorithm() string { return "std" }

// Sort implements Sorter.
func (Std[T]) Sort(data []T) {
	slices.Sort(data)
}

// SortContext runs whichever Sorter it currently holds and times the run.
type SortContext[T cmp.Ordered] struct {
	sorter Sorter[T]
}

// SetSorter swaps the sorting strategy.
func (c *SortContext[T]) SetSorter(s Sorter[T]) {
	c.sorter = s
}

// Sort orders data with the configured strategy and returns the algorithm
// name and elapsed time. With no strategy set it falls back to Std.
func (c *SortContext[T]) Sort(data []T) (string, time.Duration) {
	s := c.sorter
	if s == nil {
		s = Std[T]{}
	}
	start := time.Now()
	s.Sort(data)
	return s.Algorithm(), time.Since(start)
}
