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
	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
	"github.com/ajroetker/go-pdwt/hwy/contrib/workerpool"
)

// Decimated separable passes. Every output sample is an independent
// periodic convolution; the grids below only decide how samples are
// distributed over workers.

// forwardRows convolves every row of src with L and H and keeps every
// other column: lo and hi are (rows, cols/2).
func forwardRows[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], src, lo, hi *image.Plane[T]) {
	hlen := f.hlen
	w := forwardWindow(hlen, 1)
	nc := src.Cols()
	rowGrid(pool, src.Rows(), func(r int) {
		in := src.Row(r)
		outL, outH := lo.Row(r), hi.Row(r)
		for j := range outL {
			var sl, sh T
			for k := range w.taps() {
				v := in[w.index(2*j, k, nc)]
				sl += v * f.l[hlen-1-k]
				sh += v * f.h[hlen-1-k]
			}
			outL[j] = sl
			outH[j] = sh
		}
	})
}

// forwardCols convolves the columns of lo and hi with L and H and keeps every
// other row, producing the four sub-bands of one level.
func forwardCols[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], lo, hi, a, dh, dv, dd *image.Plane[T]) {
	hlen := f.hlen
	w := forwardWindow(hlen, 1)
	nr, nc := lo.Rows(), lo.Cols()
	loData, hiData := lo.Data(), hi.Data()
	columnGrid[T](pool, a.Rows(), nc, func(p, c0, c1 int) {
		var rows [MaxTaps]int
		for k := range w.taps() {
			rows[k] = w.index(2*p, k, nr) * nc
		}
		outA, outH, outV, outD := a.Row(p), dh.Row(p), dv.Row(p), dd.Row(p)
		for j := c0; j < c1; j++ {
			var ra, rh, rv, rd T
			for k := range w.taps() {
				kl, kh := f.l[hlen-1-k], f.h[hlen-1-k]
				x1, x2 := loData[rows[k]+j], hiData[rows[k]+j]
				ra += x1 * kl
				rh += x1 * kh
				rv += x2 * kl
				rd += x2 * kh
			}
			outA[j] = ra
			outH[j] = rh
			outV[j] = rv
			outD[j] = rd
		}
	})
}

// inverseCols oversamples the four sub-bands of one level by two along the
// columns and filters them with IL and IH: tmp1 = IL*a + IH*h and
// tmp2 = IL*v + IH*d, each with twice the rows of the bands.
func inverseCols[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], a, dh, dv, dd, tmp1, tmp2 *image.Plane[T]) {
	hlen := f.hlen
	w := inverseWindow(hlen)
	nr, nc := a.Rows(), a.Cols()
	aData, hData, vData, dData := a.Data(), dh.Data(), dv.Data(), dd.Data()
	columnGrid[T](pool, tmp1.Rows(), nc, func(g, c0, c1 int) {
		// Virtual shift: with an even half-filter the coordinate used for
		// indexing and phase is g+1 while the result is stored at g. This
		// pairs the inverse window with the left-shifted forward window.
		gv := g + w.shift
		offset := decimatedPhase(gv)
		var rows, taps [MaxTaps]int
		for k := range w.taps() {
			rows[k] = w.index(gv/2, k, nr) * nc
			taps[k] = hlen - 1 - (2*k + offset)
		}
		out1, out2 := tmp1.Row(g), tmp2.Row(g)
		for j := c0; j < c1; j++ {
			var ra, rh, rv, rd T
			for k := range w.taps() {
				i := rows[k] + j
				kl, kh := f.il[taps[k]], f.ih[taps[k]]
				ra += aData[i] * kl
				rh += hData[i] * kh
				rv += vData[i] * kl
				rd += dData[i] * kh
			}
			out1[j] = ra + rh
			out2[j] = rv + rd
		}
	})
}

// inverseRows oversamples tmp1 and tmp2 by two along the rows and filters
// them with IL and IH into dst, which has twice their columns.
func inverseRows[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], tmp1, tmp2, dst *image.Plane[T]) {
	hlen := f.hlen
	w := inverseWindow(hlen)
	nc := tmp1.Cols()
	rowGrid(pool, dst.Rows(), func(r int) {
		in1, in2 := tmp1.Row(r), tmp2.Row(r)
		out := dst.Row(r)
		for g := range out {
			// Same virtual shift as inverseCols, along the other axis.
			gv := g + w.shift
			offset := decimatedPhase(gv)
			var r1, r2 T
			for k := range w.taps() {
				x := w.index(gv/2, k, nc)
				t := hlen - 1 - (2*k + offset)
				r1 += in1[x] * f.il[t]
				r2 += in2[x] * f.ih[t]
			}
			out[g] = r1 + r2
		}
	})
}
