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

// Package wavelet computes the multi-level 2-D separable discrete wavelet
// transform (DWT) and its undecimated variant, the stationary wavelet
// transform (SWT), in both directions, with periodic boundary extension.
//
// # Transforms
//
// Each level runs two separable passes on a worker pool. The forward
// transform filters rows first (Stage A, producing two half-filtered planes
// in scratch memory) and columns second (Stage B, producing the
// approximation band and the horizontal, vertical and diagonal detail
// bands). The inverse runs the dual passes in the opposite order. Every pass
// is a blocking grid, so Stage B always observes the complete output of
// Stage A and each level observes the complete previous level.
//
//	Forward             decimated analysis, levels 1..L
//	Inverse             decimated synthesis, levels L..1
//	ForwardUndecimated  undecimated analysis, dilated filters
//	InverseUndecimated  undecimated synthesis, halved taps
//
// # Filter Context
//
// A FilterContext holds the four filters of one wavelet (analysis low and
// high, synthesis low and high) in fixed-capacity storage of MaxTaps taps.
// It is immutable and meant to be built once and passed to every call:
//
//	f, err := wavelet.LoadFilter[float32]("db2", false)
//	coeffs, err := wavelet.NewCoefficients[float32](rows, cols, levels, false)
//	scratch := make([]float32, wavelet.ScratchLen(rows, cols, false))
//	err = wavelet.Forward(f, img, coeffs, scratch, levels)
//	err = wavelet.Inverse(f, coeffs, img, scratch, levels)
//
// # Coefficient Layout
//
// A Coefficients set holds 3*L+1 planes. Index 0 is the approximation band;
// level l (1 = finest) stores horizontal, vertical and diagonal details at
// 3(l-1)+1, 3(l-1)+2 and 3(l-1)+3. In the decimated transform the level-l
// bands are (rows/2^l, cols/2^l) and the approximation storage is sized for
// level 1 and reused as the pyramid shrinks. In the undecimated transform
// every band has the input dimensions.
//
// # Row Transforms
//
// Forward1D, Inverse1D and their undecimated counterparts run only the row
// pass, decomposing every row of a plane independently into a
// RowCoefficients set of L+1 bands: the approximation, then one detail band
// per level. Only the row length constrains the level count.
//
// # Preconditions
//
// All arguments are validated before any work is dispatched: the levels
// must fit the dimensions, band shapes must match, scratch must hold
// ScratchLen samples and must not alias any band or the image. The output
// image of an inverse transform must not alias any band either. Whether the
// analysis and synthesis filters form a perfect-reconstruction pair is not
// checked.
package wavelet
