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

// RowCoefficients holds a one-dimensional decomposition of every row of a
// plane: the approximation at index 0, then one detail band per level.
// Decimated level l bands are rows x cols/2^l and the approximation has the
// coarsest level's width. Undecimated bands are all rows x cols.
type RowCoefficients[T hwy.Floats] struct {
	bands       []*image.Plane[T]
	rows, cols  int
	levels      int
	undecimated bool
}

// NewRowCoefficients allocates a row decomposition of a rows x cols plane.
// Only cols constrains the level count.
func NewRowCoefficients[T hwy.Floats](rows, cols, levels int, undecimated bool) (*RowCoefficients[T], error) {
	if err := checkRowLevels(rows, cols, levels, undecimated); err != nil {
		return nil, err
	}
	c := &RowCoefficients[T]{
		bands:       make([]*image.Plane[T], levels+1),
		rows:        rows,
		cols:        cols,
		levels:      levels,
		undecimated: undecimated,
	}
	for i := range c.bands {
		c.bands[i] = image.NewPlane[T](c.shape(i))
	}
	return c, nil
}

// MaxRowLevels returns the largest level count accepted for rows of length
// cols.
func MaxRowLevels(cols int, undecimated bool) int {
	return MaxLevels(cols, cols, undecimated)
}

func checkRowLevels(rows, cols, levels int, undecimated bool) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", rows, cols)
	}
	if levels < 1 {
		return errors.Wrapf(ErrInvalidLevels, "levels = %d", levels)
	}
	if maxLevels := MaxRowLevels(cols, undecimated); levels > maxLevels {
		if undecimated {
			return errors.Wrapf(ErrInvalidLevels, "%d levels on rows of %d, at most %d", levels, cols, maxLevels)
		}
		return errors.Wrapf(ErrInvalidDimensions, "row length %d is not divisible by 2^%d (at most %d levels)",
			cols, levels, maxLevels)
	}
	planes := 2
	if undecimated {
		planes = levels + 1
	}
	if rows > MaxSamples/cols || rows*cols > MaxSamples/planes {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d with %d levels exceeds %d samples",
			rows, cols, levels, MaxSamples)
	}
	return nil
}

// Levels returns the number of decomposition levels.
func (c *RowCoefficients[T]) Levels() int { return c.levels }

// Undecimated reports whether the set uses the stationary layout.
func (c *RowCoefficients[T]) Undecimated() bool { return c.undecimated }

// Rows returns the number of rows of the decomposed plane.
func (c *RowCoefficients[T]) Rows() int { return c.rows }

// Cols returns the row length of the decomposed plane.
func (c *RowCoefficients[T]) Cols() int { return c.cols }

// Len returns the number of bands, levels+1.
func (c *RowCoefficients[T]) Len() int { return len(c.bands) }

// Bands returns all bands, approximation first.
func (c *RowCoefficients[T]) Bands() []*image.Plane[T] { return c.bands }

// Approx returns the approximation band.
func (c *RowCoefficients[T]) Approx() *image.Plane[T] { return c.bands[0] }

// Detail returns the detail band of a level (1-based), or nil if out of range.
func (c *RowCoefficients[T]) Detail(level int) *image.Plane[T] {
	if level < 1 || level > c.levels {
		return nil
	}
	return c.bands[level]
}

func (c *RowCoefficients[T]) bandDims(level int) (int, int) {
	if c.undecimated {
		return c.rows, c.cols
	}
	return c.rows, c.cols >> level
}

// shape returns the dimensions of band i: the approximation has the
// coarsest level's.
func (c *RowCoefficients[T]) shape(i int) (int, int) {
	if i == 0 {
		return c.bandDims(c.levels)
	}
	return c.bandDims(i)
}

func validateRows[T hwy.Floats](f *FilterContext[T], img *image.Plane[T], c *RowCoefficients[T], scratch []T, levels int, undecimated bool) error {
	if f == nil || img == nil || c == nil {
		return errors.Wrap(ErrNilArgument, "filter context, image and coefficients are required")
	}
	rows, cols := img.Rows(), img.Cols()
	if err := checkRowLevels(rows, cols, levels, undecimated); err != nil {
		return err
	}
	if c.undecimated != undecimated {
		return errors.Wrapf(ErrInvalidDimensions, "coefficient layout undecimated=%v, transform undecimated=%v",
			c.undecimated, undecimated)
	}
	if c.levels != levels {
		return errors.Wrapf(ErrInvalidLevels, "coefficients hold %d levels, transform asked for %d", c.levels, levels)
	}
	if c.rows != rows || c.cols != cols {
		return errors.Wrapf(ErrInvalidDimensions, "coefficients for %dx%d, image is %dx%d", c.rows, c.cols, rows, cols)
	}
	for i, b := range c.bands {
		r, cc := c.shape(i)
		if b == nil || b.Rows() != r || b.Cols() != cc {
			return errors.Wrapf(ErrInvalidDimensions, "band %d is not %dx%d", i, r, cc)
		}
	}
	if need := ScratchLen(rows, cols, undecimated); len(scratch) < need {
		return errors.Wrapf(ErrScratchTooSmall, "have %d samples, need %d", len(scratch), need)
	}
	scratch = scratch[:ScratchLen(rows, cols, undecimated)]
	if image.Overlaps(scratch, img.Buffer()) {
		return errors.Wrap(ErrAliasedScratch, "image")
	}
	for i, b := range c.bands {
		if image.Overlaps(scratch, b.Buffer()) {
			return errors.Wrapf(ErrAliasedScratch, "band %d", i)
		}
	}
	return nil
}

// rowBuffers splits scratch into two halves used alternately by consecutive
// levels.
func rowBuffers[T hwy.Floats](scratch []T) [2][]T {
	half := len(scratch) / 2
	return [2][]T{scratch[:half:half], scratch[half:]}
}

// Forward1D decomposes every row of img into levels decimated levels.
// Intermediate approximations alternate between the two halves of scratch,
// which needs ScratchLen(rows, cols, false) samples.
func (e *Engine[T]) Forward1D(f *FilterContext[T], img *image.Plane[T], out *RowCoefficients[T], scratch []T, levels int) error {
	if err := validateRows(f, img, out, scratch, levels, false); err != nil {
		return err
	}
	scratch = scratch[:ScratchLen(img.Rows(), img.Cols(), false)]
	bufs := rowBuffers(scratch)
	src := img
	for level := 1; level <= levels; level++ {
		hc := img.Cols() >> level
		e.logger.Debug("dwt forward rows", "level", level, "cols", hc, "filter", f.name)

		lo := out.Approx()
		if level < levels {
			lo, _ = image.PlaneFrom(bufs[level&1], img.Rows(), hc)
		}
		forwardRows(e.pool, f, src, lo, out.Detail(level))
		src = lo
	}
	return nil
}

// Inverse1D reconstructs every row of img from levels decimated levels.
// The coefficients are left unchanged.
func (e *Engine[T]) Inverse1D(f *FilterContext[T], in *RowCoefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	if err := validateRows(f, img, in, scratch, levels, false); err != nil {
		return err
	}
	if err := checkRowOutput(img, in); err != nil {
		return err
	}
	scratch = scratch[:ScratchLen(img.Rows(), img.Cols(), false)]
	bufs := rowBuffers(scratch)
	lo := in.Approx()
	for level := levels; level >= 1; level-- {
		nc := img.Cols() >> (level - 1)
		e.logger.Debug("dwt inverse rows", "level", level, "cols", nc, "filter", f.name)

		dst := img
		if level > 1 {
			dst, _ = image.PlaneFrom(bufs[level&1], img.Rows(), nc)
		}
		inverseRows(e.pool, f, lo, in.Detail(level), dst)
		lo = dst
	}
	return nil
}

// ForwardUndecimated1D decomposes every row of img into levels undecimated
// levels. Scratch needs ScratchLen(rows, cols, true) samples.
func (e *Engine[T]) ForwardUndecimated1D(f *FilterContext[T], img *image.Plane[T], out *RowCoefficients[T], scratch []T, levels int) error {
	if err := validateRows(f, img, out, scratch, levels, true); err != nil {
		return err
	}
	scratch = scratch[:ScratchLen(img.Rows(), img.Cols(), true)]
	bufs := rowBuffers(scratch)
	src := img
	for level := 1; level <= levels; level++ {
		factor := factorFor(level)
		e.logger.Debug("swt forward rows", "level", level, "factor", factor, "filter", f.name)

		lo := out.Approx()
		if level < levels {
			lo, _ = image.PlaneFrom(bufs[level&1], img.Rows(), img.Cols())
		}
		swtForwardRows(e.pool, f, factor, src, lo, out.Detail(level))
		src = lo
	}
	return nil
}

// InverseUndecimated1D reconstructs every row of img from levels undecimated
// levels. The coefficients are left unchanged.
func (e *Engine[T]) InverseUndecimated1D(f *FilterContext[T], in *RowCoefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	if err := validateRows(f, img, in, scratch, levels, true); err != nil {
		return err
	}
	if err := checkRowOutput(img, in); err != nil {
		return err
	}
	scratch = scratch[:ScratchLen(img.Rows(), img.Cols(), true)]
	bufs := rowBuffers(scratch)
	lo := in.Approx()
	for level := levels; level >= 1; level-- {
		factor := factorFor(level)
		e.logger.Debug("swt inverse rows", "level", level, "factor", factor, "filter", f.name)

		dst := img
		if level > 1 {
			dst, _ = image.PlaneFrom(bufs[level&1], img.Rows(), img.Cols())
		}
		swtInverseRows(e.pool, f, factor, lo, in.Detail(level), dst)
		lo = dst
	}
	return nil
}

func checkRowOutput[T hwy.Floats](img *image.Plane[T], c *RowCoefficients[T]) error {
	for i, b := range c.bands {
		if image.Overlaps(img.Buffer(), b.Buffer()) {
			return errors.Wrapf(ErrAliasedOutput, "band %d", i)
		}
	}
	return nil
}

// Forward1D runs the decimated row transform on a shared engine.
func Forward1D[T hwy.Floats](f *FilterContext[T], img *image.Plane[T], out *RowCoefficients[T], scratch []T, levels int) error {
	return defaultEngine[T]().Forward1D(f, img, out, scratch, levels)
}

// Inverse1D runs the decimated inverse row transform on a shared engine.
func Inverse1D[T hwy.Floats](f *FilterContext[T], in *RowCoefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	return defaultEngine[T]().Inverse1D(f, in, img, scratch, levels)
}

// ForwardUndecimated1D runs the undecimated row transform on a shared engine.
func ForwardUndecimated1D[T hwy.Floats](f *FilterContext[T], img *image.Plane[T], out *RowCoefficients[T], scratch []T, levels int) error {
	return defaultEngine[T]().ForwardUndecimated1D(f, img, out, scratch, levels)
}

// InverseUndecimated1D runs the undecimated inverse row transform on a shared
// engine.
func InverseUndecimated1D[T hwy.Floats](f *FilterContext[T], in *RowCoefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	return defaultEngine[T]().InverseUndecimated1D(f, in, img, scratch, levels)
}
