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

// Undecimated (stationary) separable passes. Nothing is subsampled; instead
// the filter taps are spaced factor = 2^(level-1) samples apart, which is the
// zero-inserted upsampled filter without the zeros.

// swtForwardRows convolves every row of src with the dilated L and H.
func swtForwardRows[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], factor int, src, lo, hi *image.Plane[T]) {
	hlen := f.hlen
	w := forwardWindow(hlen, factor)
	nc := src.Cols()
	rowGrid(pool, src.Rows(), func(r int) {
		in := src.Row(r)
		outL, outH := lo.Row(r), hi.Row(r)
		for j := range outL {
			var sl, sh T
			for k := range w.taps() {
				v := in[w.index(j, k, nc)]
				sl += v * f.l[hlen-1-k]
				sh += v * f.h[hlen-1-k]
			}
			outL[j] = sl
			outH[j] = sh
		}
	})
}

// swtForwardCols convolves the columns of lo and hi with the dilated L and H,
// producing the four full-size sub-bands of one level.
func swtForwardCols[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], factor int, lo, hi, a, dh, dv, dd *image.Plane[T]) {
	hlen := f.hlen
	w := forwardWindow(hlen, factor)
	nr, nc := lo.Rows(), lo.Cols()
	loData, hiData := lo.Data(), hi.Data()
	columnGrid[T](pool, nr, nc, func(p, c0, c1 int) {
		var rows [MaxTaps]int
		for k := range w.taps() {
			rows[k] = w.index(p, k, nr) * nc
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

// swtInverseCols filters the four sub-bands along the columns with the
// dilated IL and IH. Each tap contributes half its weight, compensating for
// the redundancy of the undecimated analysis.
func swtInverseCols[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], factor int, a, dh, dv, dd, tmp1, tmp2 *image.Plane[T]) {
	hlen := f.hlen
	w := undecimatedInverseWindow(hlen, factor)
	nr, nc := a.Rows(), a.Cols()
	aData, hData, vData, dData := a.Data(), dh.Data(), dv.Data(), dd.Data()
	columnGrid[T](pool, nr, nc, func(g, c0, c1 int) {
		offset := undecimatedPhase(g)
		var rows, taps [MaxTaps]int
		for k := range w.taps() {
			rows[k] = w.index(g, k, nr) * nc
			taps[k] = hlen - 1 - (k + offset)
		}
		out1, out2 := tmp1.Row(g), tmp2.Row(g)
		for j := c0; j < c1; j++ {
			var ra, rh, rv, rd T
			for k := range w.taps() {
				i := rows[k] + j
				kl, kh := f.il[taps[k]], f.ih[taps[k]]
				ra += aData[i] * kl / 2
				rh += hData[i] * kh / 2
				rv += vData[i] * kl / 2
				rd += dData[i] * kh / 2
			}
			out1[j] = ra + rh
			out2[j] = rv + rd
		}
	})
}

// swtInverseRows filters tmp1 and tmp2 along the rows with the dilated, halved
// IL and IH into dst.
func swtInverseRows[T hwy.Floats](pool *workerpool.Pool, f *FilterContext[T], factor int, tmp1, tmp2, dst *image.Plane[T]) {
	hlen := f.hlen
	w := undecimatedInverseWindow(hlen, factor)
	nc := tmp1.Cols()
	rowGrid(pool, dst.Rows(), func(r int) {
		in1, in2 := tmp1.Row(r), tmp2.Row(r)
		out := dst.Row(r)
		for g := range out {
			offset := undecimatedPhase(g)
			var r1, r2 T
			for k := range w.taps() {
				x := w.index(g, k, nc)
				t := hlen - 1 - (k + offset)
				r1 += in1[x] * f.il[t] / 2
				r2 += in2[x] * f.ih[t] / 2
			}
			out[g] = r1 + r2
		}
	})
}
