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
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
	"github.com/ajroetker/go-pdwt/hwy/contrib/workerpool"
)

// Engine runs the pyramid transforms on a worker pool. An Engine is safe for
// concurrent use as long as concurrent calls do not share output or scratch
// buffers.
type Engine[T hwy.Floats] struct {
	pool     *workerpool.Pool
	ownsPool bool
	logger   *slog.Logger
}

type options struct {
	workers int
	pool    *workerpool.Pool
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithWorkers sets the size of the pool created by the engine.
// Values <= 0 select GOMAXPROCS. Ignored when WithPool is given.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithPool makes the engine run on an existing pool. The engine does not
// close a pool it did not create.
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) { o.pool = p }
}

// WithLogger enables per-level debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewEngine creates an engine. Call Close to release a pool it created.
func NewEngine[T hwy.Floats](opts ...Option) *Engine[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine[T]{pool: o.pool, logger: o.logger}
	if e.pool == nil {
		e.pool = workerpool.New(o.workers)
		e.ownsPool = true
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	return e
}

// Close releases the engine's pool if the engine created it.
func (e *Engine[T]) Close() {
	if e.ownsPool {
		e.pool.Close()
	}
}

// Workers returns the number of pool workers.
func (e *Engine[T]) Workers() int {
	return e.pool.NumWorkers()
}

// sharedPool backs the package-level transform functions.
var sharedPool = sync.OnceValue(func() *workerpool.Pool {
	return workerpool.New(0)
})

func defaultEngine[T hwy.Floats]() *Engine[T] {
	return NewEngine[T](WithPool(sharedPool()))
}

// Forward runs the decimated forward transform on a shared engine.
func Forward[T hwy.Floats](f *FilterContext[T], img *image.Plane[T], out *Coefficients[T], scratch []T, levels int) error {
	return defaultEngine[T]().Forward(f, img, out, scratch, levels)
}

// Inverse runs the decimated inverse transform on a shared engine.
func Inverse[T hwy.Floats](f *FilterContext[T], in *Coefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	return defaultEngine[T]().Inverse(f, in, img, scratch, levels)
}

// ForwardUndecimated runs the undecimated forward transform on a shared engine.
func ForwardUndecimated[T hwy.Floats](f *FilterContext[T], img *image.Plane[T], out *Coefficients[T], scratch []T, levels int) error {
	return defaultEngine[T]().ForwardUndecimated(f, img, out, scratch, levels)
}

// InverseUndecimated runs the undecimated inverse transform on a shared engine.
func InverseUndecimated[T hwy.Floats](f *FilterContext[T], in *Coefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	return defaultEngine[T]().InverseUndecimated(f, in, img, scratch, levels)
}

// ScratchLen returns the number of samples of scratch memory a transform of a
// rows x cols image needs: two intermediate planes of rows x ceil(cols/2)
// for the decimated transform, two full planes for the undecimated one.
func ScratchLen(rows, cols int, undecimated bool) int {
	if undecimated {
		return 2 * rows * cols
	}
	return 2 * rows * ((cols + 1) / 2)
}

// MaxLevels returns the largest level count accepted for a rows x cols image.
// Decimated: both dimensions divisible by 2^levels. Undecimated: the largest
// filter dilation 2^(levels-1) does not exceed the smaller dimension.
func MaxLevels(rows, cols int, undecimated bool) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	levels := 0
	if undecimated {
		for 1<<levels <= min(rows, cols) {
			levels++
		}
		return levels
	}
	for (rows>>levels)&1 == 0 && (cols>>levels)&1 == 0 {
		levels++
	}
	return levels
}

// MaxLevelsFor is MaxLevels further limited so that the coarsest band stays
// at least as wide as the filter: 2^levels * f.Len() <= min(rows, cols). It
// returns 1 when even one level leaves a band narrower than the filter, as
// long as the dimensions allow a level at all.
func MaxLevelsFor[T hwy.Floats](f *FilterContext[T], rows, cols int, undecimated bool) int {
	maxLevels := MaxLevels(rows, cols, undecimated)
	if maxLevels == 0 {
		return 0
	}
	levels := 0
	for f.hlen<<(levels+1) <= min(rows, cols) {
		levels++
	}
	return max(1, min(levels, maxLevels))
}

// MaxSamples bounds the total number of samples of a coefficient set.
const MaxSamples = 1 << 30

func checkLevels(rows, cols, levels int, undecimated bool) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", rows, cols)
	}
	if levels < 1 {
		return errors.Wrapf(ErrInvalidLevels, "levels = %d", levels)
	}
	if maxLevels := MaxLevels(rows, cols, undecimated); levels > maxLevels {
		if undecimated {
			return errors.Wrapf(ErrInvalidLevels, "%d levels on %dx%d, at most %d", levels, rows, cols, maxLevels)
		}
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d is not divisible by 2^%d (at most %d levels)",
			rows, cols, levels, maxLevels)
	}
	planes := 1
	if undecimated {
		planes = 3*levels + 1
	}
	if rows > MaxSamples/cols || rows*cols > MaxSamples/planes {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d with %d levels exceeds %d samples",
			rows, cols, levels, MaxSamples)
	}
	return nil
}

// validate checks every precondition of a transform before any work is
// dispatched.
func validate[T hwy.Floats](f *FilterContext[T], img *image.Plane[T], c *Coefficients[T], scratch []T, levels int, undecimated bool) error {
	if f == nil || img == nil || c == nil {
		return errors.Wrap(ErrNilArgument, "filter context, image and coefficients are required")
	}
	rows, cols := img.Rows(), img.Cols()
	if err := checkLevels(rows, cols, levels, undecimated); err != nil {
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
	if err := c.checkShapes(); err != nil {
		return err
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

// checkOutput rejects an inverse output image that shares memory with any
// band of the coefficient set it is reconstructed from.
func checkOutput[T hwy.Floats](img *image.Plane[T], c *Coefficients[T]) error {
	for i, b := range c.bands {
		if image.Overlaps(img.Buffer(), b.Buffer()) {
			return errors.Wrapf(ErrAliasedOutput, "band %d", i)
		}
	}
	return nil
}

// carve splits scratch into two rows x cols planes.
func carve[T hwy.Floats](scratch []T, rows, cols int) (*image.Plane[T], *image.Plane[T]) {
	n := rows * cols
	p1, _ := image.PlaneFrom(scratch[:n:n], rows, cols)
	p2, _ := image.PlaneFrom(scratch[n:2*n:2*n], rows, cols)
	return p1, p2
}

// Forward decomposes img into levels decimated levels. Level 1 reads img;
// every further level reads the approximation band, which is overwritten in
// place with the next, half-sized approximation.
func (e *Engine[T]) Forward(f *FilterContext[T], img *image.Plane[T], out *Coefficients[T], scratch []T, levels int) error {
	if err := validate(f, img, out, scratch, levels, false); err != nil {
		return err
	}
	approx := out.Approx()
	src := img
	nr, nc := img.Rows(), img.Cols()
	for level := 1; level <= levels; level++ {
		hr, hc := nr/2, nc/2
		e.logger.Debug("dwt forward", "level", level, "rows", hr, "cols", hc, "filter", f.name)

		tmp1, tmp2 := carve(scratch, nr, hc)
		forwardRows(e.pool, f, src, tmp1, tmp2)

		if err := approx.Reshape(hr, hc); err != nil {
			return err
		}
		forwardCols(e.pool, f, tmp1, tmp2, approx,
			out.Band(level, Horizontal), out.Band(level, Vertical), out.Band(level, Diagonal))

		src = approx
		nr, nc = hr, hc
	}
	return nil
}

// Inverse reconstructs img from levels decimated levels, coarsest first.
// The approximation band is consumed: it holds intermediate reconstructions
// while the pyramid unwinds and its contents are undefined afterwards.
func (e *Engine[T]) Inverse(f *FilterContext[T], in *Coefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	if err := validate(f, img, in, scratch, levels, false); err != nil {
		return err
	}
	if err := checkOutput(img, in); err != nil {
		return err
	}
	approx := in.Approx()
	if err := in.resetApprox(); err != nil {
		return err
	}
	lr, lc := img.Rows()>>levels, img.Cols()>>levels
	for level := levels; level >= 1; level-- {
		e.logger.Debug("dwt inverse", "level", level, "rows", 2*lr, "cols", 2*lc, "filter", f.name)

		tmp1, tmp2 := carve(scratch, 2*lr, lc)
		inverseCols(e.pool, f, approx,
			in.Band(level, Horizontal), in.Band(level, Vertical), in.Band(level, Diagonal), tmp1, tmp2)

		dst := img
		if level > 1 {
			if err := approx.Reshape(2*lr, 2*lc); err != nil {
				return err
			}
			dst = approx
		}
		inverseRows(e.pool, f, tmp1, tmp2, dst)
		lr, lc = 2*lr, 2*lc
	}
	return in.resetApprox()
}

// ForwardUndecimated decomposes img into levels undecimated levels. All bands
// keep the image dimensions; level l dilates the filters by 2^(l-1).
func (e *Engine[T]) ForwardUndecimated(f *FilterContext[T], img *image.Plane[T], out *Coefficients[T], scratch []T, levels int) error {
	if err := validate(f, img, out, scratch, levels, true); err != nil {
		return err
	}
	if err := out.resetApprox(); err != nil {
		return err
	}
	approx := out.Approx()
	src := img
	nr, nc := img.Rows(), img.Cols()
	tmp1, tmp2 := carve(scratch, nr, nc)
	for level := 1; level <= levels; level++ {
		factor := factorFor(level)
		e.logger.Debug("swt forward", "level", level, "factor", factor, "filter", f.name)

		swtForwardRows(e.pool, f, factor, src, tmp1, tmp2)
		swtForwardCols(e.pool, f, factor, tmp1, tmp2, approx,
			out.Band(level, Horizontal), out.Band(level, Vertical), out.Band(level, Diagonal))
		src = approx
	}
	return nil
}

// InverseUndecimated reconstructs img from levels undecimated levels,
// coarsest first. The approximation band is consumed.
func (e *Engine[T]) InverseUndecimated(f *FilterContext[T], in *Coefficients[T], img *image.Plane[T], scratch []T, levels int) error {
	if err := validate(f, img, in, scratch, levels, true); err != nil {
		return err
	}
	if err := checkOutput(img, in); err != nil {
		return err
	}
	if err := in.resetApprox(); err != nil {
		return err
	}
	approx := in.Approx()
	tmp1, tmp2 := carve(scratch, img.Rows(), img.Cols())
	for level := levels; level >= 1; level-- {
		factor := factorFor(level)
		e.logger.Debug("swt inverse", "level", level, "factor", factor, "filter", f.name)

		swtInverseCols(e.pool, f, factor, approx,
			in.Band(level, Horizontal), in.Band(level, Vertical), in.Band(level, Diagonal), tmp1, tmp2)
		dst := img
		if level > 1 {
			dst = approx
		}
		swtInverseRows(e.pool, f, factor, tmp1, tmp2, dst)
	}
	return nil
}
