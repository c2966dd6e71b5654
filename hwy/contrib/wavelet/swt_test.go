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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pdwt/hwy/contrib/filterbank"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
)

func TestUndecimatedShapes(t *testing.T) {
	f, err := LoadFilter[float64]("db3", true)
	require.NoError(t, err)
	img := randomPlane[float64](20, 12, 2)
	coeffs, err := NewCoefficients[float64](20, 12, 3, true)
	require.NoError(t, err)
	scratch := make([]float64, ScratchLen(20, 12, true))
	require.NoError(t, ForwardUndecimated(f, img, coeffs, scratch, 3))

	for i, b := range coeffs.Bands() {
		assert.Equal(t, 20, b.Rows(), "band %d", i)
		assert.Equal(t, 12, b.Cols(), "band %d", i)
	}
}

func TestUndecimatedPerfectReconstruction(t *testing.T) {
	e := NewEngine[float64](WithWorkers(4))
	defer e.Close()

	for _, name := range filterbank.Names() {
		f, err := LoadFilter[float64](name, true)
		require.NoError(t, err)
		require.False(t, f.FastPath())
		for _, levels := range []int{1, 2, 4} {
			t.Run(fmt.Sprintf("%s/L%d", name, levels), func(t *testing.T) {
				img := randomPlane[float64](24, 18, uint64(levels))
				_, out := roundTrip(t, e, f, img, levels, true)
				requirePlane(t, img, out, 1e-9)
			})
		}
	}
}

func TestUndecimatedPerfectReconstructionFloat32(t *testing.T) {
	e := NewEngine[float32](WithWorkers(2))
	defer e.Close()

	for _, name := range []string{"haar", "db2", "sym3", "bior2.2"} {
		t.Run(name, func(t *testing.T) {
			f, err := LoadFilter[float32](name, true)
			require.NoError(t, err)
			img := randomPlane[float32](32, 32, 9)
			_, out := roundTrip(t, e, f, img, 3, true)
			requirePlane(t, img, out, 1e-4)
		})
	}
}

func TestUndecimatedDilationWiderThanImage(t *testing.T) {
	e := NewEngine[float64](WithWorkers(2))
	defer e.Close()

	// 8 rows allow 4 levels: the last level spaces db4 taps 8 samples apart,
	// so the dilated filter spans the image several times over.
	f, err := LoadFilter[float64]("db4", true)
	require.NoError(t, err)
	levels := MaxLevels(8, 10, true)
	require.Equal(t, 4, levels)
	img := randomPlane[float64](8, 10, 4)
	_, out := roundTrip(t, e, f, img, levels, true)
	requirePlane(t, img, out, 1e-9)
}

func TestUndecimatedConstantPlane(t *testing.T) {
	e := NewEngine[float64](WithWorkers(2))
	defer e.Close()

	f, err := LoadFilter[float64]("db2", true)
	require.NoError(t, err)
	img := image.NewPlane[float64](16, 16)
	img.Fill(2)
	coeffs, out := roundTrip(t, e, f, img, 3, true)

	// DC gain sqrt(2) per axis and level.
	requireConstant(t, coeffs.Approx(), 16, 1e-9)
	for _, b := range coeffs.Details() {
		requireConstant(t, b, 0, 1e-9)
	}
	requirePlane(t, img, out, 1e-9)
}

func TestUndecimatedMatchesDilatedReference(t *testing.T) {
	const rows, cols, levels = 16, 24, 3
	e := NewEngine[float64](WithWorkers(3))
	defer e.Close()
	img := randomPlane[float64](rows, cols, 12)

	for _, name := range filterbank.Names() {
		t.Run(name, func(t *testing.T) {
			f, err := LoadFilter[float64](name, true)
			require.NoError(t, err)
			coeffs, err := NewCoefficients[float64](rows, cols, levels, true)
			require.NoError(t, err)
			require.NoError(t, e.ForwardUndecimated(f, img, coeffs, make([]float64, ScratchLen(rows, cols, true)), levels))

			x := planeRows(img)
			for level := 1; level <= levels; level++ {
				a, dh, dv, dd := referenceLevel(x, f.L(), f.H(), 1, factorFor(level))
				requirePlane(t, rowsPlane(dh), coeffs.Band(level, Horizontal), 1e-12)
				requirePlane(t, rowsPlane(dv), coeffs.Band(level, Vertical), 1e-12)
				requirePlane(t, rowsPlane(dd), coeffs.Band(level, Diagonal), 1e-12)
				x = a
			}
			requirePlane(t, rowsPlane(x), coeffs.Approx(), 1e-12)
		})
	}
}

func TestUndecimatedShiftEquivariance(t *testing.T) {
	e := NewEngine[float64](WithWorkers(3))
	defer e.Close()

	// The undecimated transform commutes with periodic shifts; the decimated
	// one does not.
	f, err := LoadFilter[float64]("coif1", true)
	require.NoError(t, err)
	img := randomPlane[float64](16, 24, 6)
	shifted := CircShift(img, 3, 5)

	coeffs, _ := roundTrip(t, e, f, img, 3, true)
	shiftedCoeffs, _ := roundTrip(t, e, f, shifted, 3, true)
	for i, b := range coeffs.Bands() {
		t.Run(fmt.Sprintf("band%d", i), func(t *testing.T) {
			requirePlane(t, CircShift(b, 3, 5), shiftedCoeffs.Bands()[i], 1e-9)
		})
	}
}

func TestUndecimatedHaarLevelOne(t *testing.T) {
	f, err := LoadFilter[float64]("haar", true)
	require.NoError(t, err)

	img := rampPlane[float64](4, 4)
	coeffs, err := NewCoefficients[float64](4, 4, 1, true)
	require.NoError(t, err)
	scratch := make([]float64, ScratchLen(4, 4, true))
	require.NoError(t, ForwardUndecimated(f, img, coeffs, scratch, 1))

	// Every sample is the decimated result evaluated at its own position:
	// A[i][j] = (x[i][j] + x[i][j+1] + x[i+1][j] + x[i+1][j+1]) / 2.
	a := coeffs.Approx()
	for r := range 4 {
		for c := range 4 {
			r1, c1 := image.Wrap(r+1, 4), image.Wrap(c+1, 4)
			want := (img.At(r, c) + img.At(r, c1) + img.At(r1, c) + img.At(r1, c1)) / 2
			assert.InDelta(t, want, a.At(r, c), 1e-12, "A[%d][%d]", r, c)
		}
	}
}

func BenchmarkUndecimated(b *testing.B) {
	for _, name := range []string{"haar", "db4"} {
		for _, size := range []int{256, 512} {
			b.Run(fmt.Sprintf("%s/%d", name, size), func(b *testing.B) {
				benchmarkRoundTrip[float32](b, name, size, 3, true)
			})
		}
	}
}
