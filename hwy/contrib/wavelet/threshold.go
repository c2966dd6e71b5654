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
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
)

// Coefficient post-processing. Each operation maps every sample of the
// selected bands independently, so bands are processed row by row on the
// engine's pool.

// SoftThreshold shrinks every selected coefficient towards zero by beta and
// zeroes those whose magnitude is below beta. The approximation band is left
// untouched when skipApprox is set.
func (e *Engine[T]) SoftThreshold(c *Coefficients[T], beta T, skipApprox bool) {
	e.mapBands(c, skipApprox, func(x T) T {
		switch {
		case x > beta:
			return x - beta
		case x < -beta:
			return x + beta
		default:
			return 0
		}
	})
}

// HardThreshold zeroes every selected coefficient whose magnitude is below
// beta and keeps the others.
func (e *Engine[T]) HardThreshold(c *Coefficients[T], beta T, skipApprox bool) {
	e.mapBands(c, skipApprox, func(x T) T {
		if x < beta && x > -beta {
			return 0
		}
		return x
	})
}

// Shrink scales every selected coefficient by 1/(1+beta).
func (e *Engine[T]) Shrink(c *Coefficients[T], beta T, skipApprox bool) {
	scale := 1 / (1 + beta)
	e.mapBands(c, skipApprox, func(x T) T { return x * scale })
}

func (e *Engine[T]) mapBands(c *Coefficients[T], skipApprox bool, fn func(T) T) {
	bands := c.Bands()
	if skipApprox {
		bands = c.Details()
	}
	for _, b := range bands {
		rowGrid(e.pool, b.Rows(), func(r int) {
			row := b.Row(r)
			for j, x := range row {
				row[j] = fn(x)
			}
		})
	}
}

// SoftThreshold applies Engine.SoftThreshold on the shared engine.
func SoftThreshold[T hwy.Floats](c *Coefficients[T], beta T, skipApprox bool) {
	defaultEngine[T]().SoftThreshold(c, beta, skipApprox)
}

// HardThreshold applies Engine.HardThreshold on the shared engine.
func HardThreshold[T hwy.Floats](c *Coefficients[T], beta T, skipApprox bool) {
	defaultEngine[T]().HardThreshold(c, beta, skipApprox)
}

// Shrink applies Engine.Shrink on the shared engine.
func Shrink[T hwy.Floats](c *Coefficients[T], beta T, skipApprox bool) {
	defaultEngine[T]().Shrink(c, beta, skipApprox)
}

// Norm returns the L1 (p = 1) or L2 (p = 2) norm of the selected bands taken
// as one vector.
func Norm[T hwy.Floats](c *Coefficients[T], p int, skipApprox bool) (float64, error) {
	if p != 1 && p != 2 {
		return 0, errors.Errorf("wavelet: unsupported norm order %d", p)
	}
	bands := c.Bands()
	if skipApprox {
		bands = c.Details()
	}
	var acc float64
	buf := make([]float64, 0, c.Cols())
	for _, b := range bands {
		for r := range b.Rows() {
			buf = buf[:0]
			for _, x := range b.Row(r) {
				buf = append(buf, float64(x))
			}
			n := floats.Norm(buf, float64(p))
			if p == 2 {
				n *= n
			}
			acc += n
		}
	}
	if p == 2 {
		return math.Sqrt(acc), nil
	}
	return acc, nil
}

// CircShift returns a copy of src shifted periodically by dr rows and dc
// columns: out[r][c] = src[r-dr][c-dc].
func CircShift[T hwy.Floats](src *image.Plane[T], dr, dc int) *image.Plane[T] {
	rows, cols := src.Rows(), src.Cols()
	out := image.NewPlane[T](rows, cols)
	for r := range rows {
		in := src.Row(r)
		dst := out.Row(image.Wrap(r+dr, rows))
		for c, x := range in {
			dst[image.Wrap(c+dc, cols)] = x
		}
	}
	return out
}
