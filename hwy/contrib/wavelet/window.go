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

import "github.com/ajroetker/go-pdwt/hwy/contrib/image"

// window describes the taps read by one output sample of a pass: left+right+1
// input samples spaced factor apart, starting center*factor before the base
// coordinate, wrapped periodically.
type window struct {
	center int
	left   int
	right  int
	factor int

	// shift is added to the output coordinate before the index and phase
	// arithmetic of the decimated inverse when hlen/2 is even.
	shift int
}

// taps returns the number of input samples in the window.
func (w window) taps() int {
	return w.left + w.right + 1
}

// index returns the periodic input coordinate of tap k around base on an
// axis of length n.
func (w window) index(base, k, n int) int {
	return image.Wrap(base-w.center*w.factor+k*w.factor, n)
}

// forwardWindow is the analysis window. Odd filters are centred; even filters
// have their center shifted one tap to the left.
func forwardWindow(hlen, factor int) window {
	if hlen&1 == 1 {
		c := hlen / 2
		return window{center: c, left: c, right: c, factor: factor}
	}
	c := hlen/2 - 1
	return window{center: c, left: c, right: c + 1, factor: factor}
}

// inverseWindow is the decimated synthesis window. Oversampling by two is
// realized by reading every other tap, so the window covers hlen/2 input
// samples. When hlen/2 is even the center moves one tap to the right and the
// output coordinate is virtually shifted by one.
func inverseWindow(hlen int) window {
	hlen2 := hlen / 2
	c := hlen2 / 2
	if hlen2&1 == 1 {
		return window{center: c, left: c, right: c, factor: 1}
	}
	return window{center: c, left: c, right: c - 1, factor: 1, shift: 1}
}

// undecimatedInverseWindow is the stationary synthesis window: full filter
// length, dilated by factor, even filters centred one tap to the right.
func undecimatedInverseWindow(hlen, factor int) window {
	c := hlen / 2
	if hlen&1 == 1 {
		return window{center: c, left: c, right: c, factor: factor}
	}
	return window{center: c, left: c, right: c - 1, factor: factor}
}

// decimatedPhase selects which interleaved half of a synthesis filter feeds
// output coordinate g: 1 for even g, 0 for odd g.
func decimatedPhase(g int) int {
	return 1 - (g & 1)
}

// undecimatedPhase is the stationary counterpart of decimatedPhase. Without
// subsampling every output sample uses the whole filter, so the phase derived
// from the coordinate is discarded and pinned to zero.
func undecimatedPhase(g int) int {
	_ = decimatedPhase(g)
	return 0
}

// factorFor returns the filter dilation of an undecimated level (1-based).
func factorFor(level int) int {
	return 1 << (level - 1)
}
