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

package wavelet

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
)

// BandKind identifies one of the three detail bands of a level.
type BandKind int

const (
	// Horizontal is the column high-pass of the row low-pass.
	Horizontal BandKind = iota + 1
	// Vertical is the column low-pass of the row high-pass.
	Vertical
	// Diagonal is the column high-pass of the row high-pass.
	Diagonal
)

// String returns the conventional single-letter name of the band.
func (k BandKind) String() string {
	switch k {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	case Diagonal:
		return "D"
	default:
		return "?"
	}
}

// Coefficients is the set of 3*levels+1 planes produced by a forward
// transform and consumed by an inverse transform.
type Coefficients[T hwy.Floats] struct {
	bands       []*image.Plane[T]
	rows, cols  int
	levels      int
	undecimated bool
}

// NewCoefficients allocates a coefficient set for a rows x cols image.
// For the decimated layout the dimensions must be divisible by 2^levels.
func NewCoefficients[T hwy.Floats](rows, cols, levels int, undecimated bool) (*Coefficients[T], error) {
	if err := checkLevels(rows, cols, levels, undecimated); err != nil {
		return nil, err
	}
	c := &Coefficients[T]{
		bands:       make([]*image.Plane[T], 3*levels+1),
		rows:        rows,
		cols:        cols,
		levels:      levels,
		undecimated: undecimated,
	}
	if undecimated {
		for i := range c.bands {
			c.bands[i] = image.NewPlane[T](rows, cols)
		}
		return c, nil
	}

	// The approximation storage is sized for level 1 and reused in place.
	approx := image.NewPlane[T](rows/2, cols/2)
	if err := approx.Reshape(rows>>levels, cols>>levels); err != nil {
		return nil, err
	}
	c.bands[0] = approx
	for level := 1; level <= levels; level++ {
		for _, kind := range []BandKind{Horizontal, Vertical, Diagonal} {
			c.bands[bandIndex(level, kind)] = image.NewPlane[T](rows>>level, cols>>level)
		}
	}
	return c, nil
}

// CoefficientsFrom wraps caller-allocated planes, ordered as described in the
// package documentation. Shapes are checked when the set is passed to a
// transform.
func CoefficientsFrom[T hwy.Floats](bands []*image.Plane[T], rows, cols, levels int, undecimated bool) (*Coefficients[T], error) {
	if err := checkLevels(rows, cols, levels, undecimated); err != nil {
		return nil, err
	}
	if len(bands) != 3*levels+1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%d bands for %d levels, want %d", len(bands), levels, 3*levels+1)
	}
	for i, b := range bands {
		if b == nil {
			return nil, errors.Wrapf(ErrNilArgument, "band %d", i)
		}
	}
	return &Coefficients[T]{
		bands:       bands,
		rows:        rows,
		cols:        cols,
		levels:      levels,
		undecimated: undecimated,
	}, nil
}

// CoefficientLen returns the number of samples a coefficient set holds at
// rest: every band at its own dimensions, the approximation at the coarsest
// level's. This is the payload of a serialized set.
func CoefficientLen(rows, cols, levels int, undecimated bool) (int, error) {
	if err := checkLevels(rows, cols, levels, undecimated); err != nil {
		return 0, err
	}
	if undecimated {
		return (3*levels + 1) * rows * cols, nil
	}
	n := (rows >> levels) * (cols >> levels)
	for level := 1; level <= levels; level++ {
		n += 3 * (rows >> level) * (cols >> level)
	}
	return n, nil
}

func bandIndex(level int, kind BandKind) int {
	return 3*(level-1) + int(kind)
}

// Levels returns the number of decomposition levels.
func (c *Coefficients[T]) Levels() int {
	return c.levels
}

// Undecimated reports whether the set uses the undecimated layout.
func (c *Coefficients[T]) Undecimated() bool {
	return c.undecimated
}

// Rows returns the row count of the transformed image.
func (c *Coefficients[T]) Rows() int {
	return c.rows
}

// Cols returns the column count of the transformed image.
func (c *Coefficients[T]) Cols() int {
	return c.cols
}

// Len returns the number of planes, 3*levels+1.
func (c *Coefficients[T]) Len() int {
	return len(c.bands)
}

// Bands returns the planes in layout order. The slice is shared.
func (c *Coefficients[T]) Bands() []*image.Plane[T] {
	return c.bands
}

// Approx returns the approximation band.
func (c *Coefficients[T]) Approx() *image.Plane[T] {
	return c.bands[0]
}

// Band returns the detail band of the given level (1 = finest), or nil if
// the level or kind is out of range.
func (c *Coefficients[T]) Band(level int, kind BandKind) *image.Plane[T] {
	if level < 1 || level > c.levels || kind < Horizontal || kind > Diagonal {
		return nil
	}
	return c.bands[bandIndex(level, kind)]
}

// Details returns every detail band, finest level first.
func (c *Coefficients[T]) Details() []*image.Plane[T] {
	return c.bands[1:]
}

// bandDims returns the expected dimensions of the bands of a level.
func (c *Coefficients[T]) bandDims(level int) (int, int) {
	if c.undecimated {
		return c.rows, c.cols
	}
	return c.rows >> level, c.cols >> level
}

// checkShapes verifies every detail band and the approximation storage.
func (c *Coefficients[T]) checkShapes() error {
	for level := 1; level <= c.levels; level++ {
		r, cc := c.bandDims(level)
		for _, kind := range []BandKind{Horizontal, Vertical, Diagonal} {
			b := c.Band(level, kind)
			if b.Rows() != r || b.Cols() != cc {
				return errors.Wrapf(ErrInvalidDimensions, "level %d band %s is %dx%d, want %dx%d",
					level, kind, b.Rows(), b.Cols(), r, cc)
			}
		}
	}
	r, cc := c.bandDims(1)
	if need := r * cc; c.Approx().Cap() < need {
		return errors.Wrapf(ErrInvalidDimensions, "approximation storage holds %d samples, want %d",
			c.Approx().Cap(), need)
	}
	return nil
}

// resetApprox gives the approximation band its at-rest dimensions: the
// coarsest level's band size.
func (c *Coefficients[T]) resetApprox() error {
	r, cc := c.bandDims(c.levels)
	return c.Approx().Reshape(r, cc)
}
