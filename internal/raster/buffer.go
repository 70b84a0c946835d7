package raster

import (
	"fmt"

	"sphere-tracer/internal/mathutil"
)

// Buffer is a dense row-major array with a fixed shape: the last coordinate
// varies fastest.
type Buffer[T any] struct {
	shape []int
	data  []T
}

// NewBuffer allocates a zeroed buffer with the given dimension sizes.
func NewBuffer[T any](shape ...int) *Buffer[T] {
	n := 1
	for _, s := range shape {
		if s < 0 {
			panic(fmt.Sprintf("raster: negative dimension in shape %v", shape))
		}
		n *= s
	}
	return &Buffer[T]{
		shape: append([]int(nil), shape...),
		data:  make([]T, n),
	}
}

// IndexError is the panic value for a coordinate outside the buffer shape.
// Reaching it means the caller's index arithmetic is wrong.
type IndexError struct {
	Coord []int
	Shape []int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("raster: coordinate %v out of range for shape %v", e.Coord, e.Shape)
}

// Shape returns a copy of the dimension sizes.
func (b *Buffer[T]) Shape() []int {
	return append([]int(nil), b.shape...)
}

// Dims returns the number of dimensions.
func (b *Buffer[T]) Dims() int { return len(b.shape) }

// Len returns the total number of elements.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Data exposes the flat row-major storage.
func (b *Buffer[T]) Data() []T { return b.data }

// Index returns the flat offset of coord. It panics with *IndexError unless
// len(coord) matches the shape and 0 <= coord[d] < shape[d] for every d.
func (b *Buffer[T]) Index(coord ...int) int {
	if len(coord) != len(b.shape) {
		panic(&IndexError{Coord: append([]int(nil), coord...), Shape: b.Shape()})
	}
	i := 0
	for d, c := range coord {
		if c < 0 || c >= b.shape[d] {
			panic(&IndexError{Coord: append([]int(nil), coord...), Shape: b.Shape()})
		}
		i = i*b.shape[d] + c
	}
	return i
}

// At returns the element at coord.
func (b *Buffer[T]) At(coord ...int) T {
	return b.data[b.Index(coord...)]
}

// Set stores v at coord.
func (b *Buffer[T]) Set(v T, coord ...int) {
	b.data[b.Index(coord...)] = v
}

// Image is a height×width grid of unclamped colors, indexed (row, column).
type Image = Buffer[mathutil.Color3]

// NewImage allocates a black image.
func NewImage(width, height int) *Image {
	return NewBuffer[mathutil.Color3](height, width)
}

// Size returns width and height of a two-dimensional buffer.
func Size[T any](b *Buffer[T]) (width, height int) {
	if len(b.shape) != 2 {
		panic(fmt.Sprintf("raster: Size of %d-dimensional buffer", len(b.shape)))
	}
	return b.shape[1], b.shape[0]
}
