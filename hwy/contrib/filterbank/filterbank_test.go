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

package filterbank

import (
	"math"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnown(t *testing.T) {
	tests := []struct {
		name string
		hlen int
	}{
		{"db2", 4},
		{"DB3", 6},
		{"db4", 8},
		{"coif1", 6},
		{"sym2", 4},
		{"bior2.2", 6},
		{"rbior1.3", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, undecimated := range []bool{false, true} {
				b, err := Resolve(tt.name, undecimated)
				require.NoError(t, err)
				assert.Equal(t, tt.hlen, b.Len())
				assert.Len(t, b.H, tt.hlen)
				assert.Len(t, b.IL, tt.hlen)
				assert.Len(t, b.IH, tt.hlen)
				assert.False(t, b.FastPath)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("db42", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFilter))
	assert.Contains(t, err.Error(), "db42")

	_, err = Resolve("", true)
	assert.True(t, errors.Is(err, ErrUnknownFilter))
}

func TestHaarFastPathOnlyDecimated(t *testing.T) {
	for _, name := range []string{"haar", "Haar", "db1", "bior1.1", "rbior1.1"} {
		t.Run(name, func(t *testing.T) {
			dec, err := Resolve(name, false)
			require.NoError(t, err)
			assert.True(t, dec.FastPath, "decimated %s should use the fast path", name)
			assert.Equal(t, 2, dec.Len())

			swt, err := Resolve(name, true)
			require.NoError(t, err)
			assert.False(t, swt.FastPath, "undecimated %s should use the table", name)

			// Both routes must agree numerically.
			assert.InDeltaSlice(t, dec.L, swt.L, 1e-15)
			assert.InDeltaSlice(t, dec.H, swt.H, 1e-15)
			assert.InDeltaSlice(t, dec.IL, swt.IL, 1e-15)
			assert.InDeltaSlice(t, dec.IH, swt.IH, 1e-15)
		})
	}
}

func TestResolveReturnsCopies(t *testing.T) {
	a, err := Resolve("db2", false)
	require.NoError(t, err)
	a.L[0] = 42

	b, err := Resolve("db2", false)
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, b.L[0])
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.True(t, slices.IsSorted(names))
	for _, want := range []string{"haar", "db1", "db2", "db3", "db4", "coif1", "bior2.2", "rbior2.2"} {
		assert.Contains(t, names, want)
	}
}

func TestOrthogonalBanks(t *testing.T) {
	for _, name := range []string{"haar", "db2", "db3", "db4", "sym3", "coif1"} {
		t.Run(name, func(t *testing.T) {
			b, err := Resolve(name, true)
			require.NoError(t, err)

			var sum, energy float64
			for _, v := range b.L {
				sum += v
				energy += v * v
			}
			assert.InDelta(t, math.Sqrt2, sum, 1e-9, "low-pass DC gain")
			assert.InDelta(t, 1.0, energy, 1e-9, "low-pass energy")

			var hsum float64
			for _, v := range b.H {
				hsum += v
			}
			assert.InDelta(t, 0.0, hsum, 1e-9, "high-pass DC gain")
		})
	}
}

// TestPerfectReconstructionConditions checks, for every bank and both sample
// parities, that the analysis filters and the time-reversed synthesis filters
// form a biorthogonal pair: sum over u of L[u]*IL'[u-r] + H[u]*IH'[u-r] is 1
// for r == 0 and 0 otherwise, with IL'[t] = IL[len-1-t].
func TestPerfectReconstructionConditions(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			b, err := Resolve(name, true)
			require.NoError(t, err)
			n := b.Len()
			at := func(f []float64, i int) float64 {
				if i < 0 || i >= n {
					return 0
				}
				return f[n-1-i]
			}
			for parity := range 2 {
				for r := -n; r <= n; r++ {
					var s float64
					for u := parity; u < n; u += 2 {
						s += b.L[u]*at(b.IL, u-r) + b.H[u]*at(b.IH, u-r)
					}
					want := 0.0
					if r == 0 {
						want = 1
					}
					assert.InDelta(t, want, s, 1e-9, "parity %d shift %d", parity, r)
				}
			}
		})
	}
}
