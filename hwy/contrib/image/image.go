// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package image

import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-pdwt/hwy"
)

// ErrShortBuffer is returned when a backing slice cannot hold rows*cols samples.
var ErrShortBuffer = errors.New("image: buffer too small for plane")

// Plane is a dense row-major 2-D array of samples.
type Plane[T hwy.Floats] struct {
	data []T
	rows int
	cols int
}

// NewPlane allocates a zeroed plane with the given dimensions.
// Non-positive dimensions produce an empty plane.
func NewPlane[T hwy.Floats](rows, cols int) *Plane[T] {
	if rows <= 0 || cols <= 0 {
		return &Plane[T]{}
	}
	return &Plane[T]{
		data: make([]T, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// PlaneFrom wraps caller memory as a plane without copying. data may be longer
// than rows*cols; the extra capacity stays reachable through View.
func PlaneFrom[T hwy.Floats](data []T, rows, cols int) (*Plane[T], error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Errorf("image: negative dimensions %dx%d", rows, cols)
	}
	if len(data) < rows*cols {
		return nil, errors.Wrapf(ErrShortBuffer, "need %d samples, have %d", rows*cols, len(data))
	}
	return &Plane[T]{data: data, rows: rows, cols: cols}, nil
}

// Rows returns the number of rows.
func (p *Plane[T]) Rows() int {
	return p.rows
}

// Cols returns the number of columns.
func (p *Plane[T]) Cols() int {
	return p.cols
}

// Len returns rows*cols.
func (p *Plane[T]) Len() int {
	return p.rows * p.cols
}

// Cap returns the number of samples in the backing slice.
func (p *Plane[T]) Cap() int {
	return len(p.data)
}

// Data returns the rows*cols samples of the plane in row-major order.
func (p *Plane[T]) Data() []T {
	return p.data[:p.rows*p.cols]
}

// Buffer returns the whole backing slice, including any capacity beyond
// rows*cols.
func (p *Plane[T]) Buffer() []T {
	return p.data
}

// Row returns a mutable slice of length Cols for row r, or nil if r is out of range.
func (p *Plane[T]) Row(r int) []T {
	if r < 0 || r >= p.rows || p.data == nil {
		return nil
	}
	start := r * p.cols
	return p.data[start : start+p.cols]
}

// At returns the sample at (r, c), or zero when out of range.
func (p *Plane[T]) At(r, c int) T {
	if r < 0 || r >= p.rows || c < 0 || c >= p.cols {
		var zero T
		return zero
	}
	return p.data[r*p.cols+c]
}

// Set writes the sample at (r, c). Out-of-range writes are ignored.
func (p *Plane[T]) Set(r, c int, value T) {
	if r < 0 || r >= p.rows || c < 0 || c >= p.cols {
		return
	}
	p.data[r*p.cols+c] = value
}

// View returns a plane with the given dimensions sharing p's backing slice.
func (p *Plane[T]) View(rows, cols int) (*Plane[T], error) {
	return PlaneFrom(p.data, rows, cols)
}

// Reshape changes the dimensions of p in place, keeping the backing slice.
func (p *Plane[T]) Reshape(rows, cols int) error {
	if rows < 0 || cols < 0 || rows*cols > len(p.data) {
		return errors.Wrapf(ErrShortBuffer, "reshape to %dx%d, capacity %d", rows, cols, len(p.data))
	}
	p.rows, p.cols = rows, cols
	return nil
}

// SameSize reports whether both planes have the same dimensions.
func SameSize[T, U hwy.Floats](a *Plane[T], b *Plane[U]) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// Clone returns a deep copy of the rows*cols samples.
func (p *Plane[T]) Clone() *Plane[T] {
	clone := NewPlane[T](p.rows, p.cols)
	copy(clone.data, p.Data())
	return clone
}

// CopyFrom copies src into p. Both planes must have the same dimensions.
func (p *Plane[T]) CopyFrom(src *Plane[T]) error {
	if !SameSize(p, src) {
		return errSizeMismatch(src, p)
	}
	copy(p.Data(), src.Data())
	return nil
}

func errSizeMismatch[T hwy.Floats](src, dst *Plane[T]) error {
	return errors.Errorf("image: %dx%d source, %dx%d destination", src.rows, src.cols, dst.rows, dst.cols)
}

// Clear sets all samples to zero.
func (p *Plane[T]) Clear() {
	clear(p.Data())
}

// Fill sets all samples to value.
func (p *Plane[T]) Fill(value T) {
	d := p.Data()
	for i := range d {
		d[i] = value
	}
}

// Overlaps reports whether two slices share any element of memory.
func Overlaps[T hwy.Floats](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size
	return a0 < b1 && b0 < a1
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index = index % size
	if index < 0 {
		index += size
	}
	return index
}
