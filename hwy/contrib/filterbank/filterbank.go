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
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrUnknownFilter is returned by Resolve for names not in the table.
var ErrUnknownFilter = errors.New("filterbank: unknown filter")

// Bank is a resolved set of analysis and synthesis filters.
type Bank struct {
	Name string

	L  []float64 // analysis low-pass
	H  []float64 // analysis high-pass
	IL []float64 // synthesis low-pass
	IH []float64 // synthesis high-pass

	// FastPath is set when the bank was produced by the decimated Haar
	// shortcut rather than a table lookup.
	FastPath bool
}

// Len returns the tap count shared by the four filters.
func (b Bank) Len() int {
	return len(b.L)
}

// Orthogonal builds a bank from the synthesis low-pass of an orthogonal
// wavelet.
func Orthogonal(name string, recLo []float64) Bank {
	il := slices.Clone(recLo)
	l := slices.Clone(recLo)
	slices.Reverse(l)
	ih := lo.Map(l, func(v float64, k int) float64 {
		if k&1 == 1 {
			return -v
		}
		return v
	})
	h := slices.Clone(ih)
	slices.Reverse(h)
	return Bank{Name: name, L: l, H: h, IL: il, IH: ih}
}

// Reverse returns the bank with analysis and synthesis roles exchanged,
// each filter time-reversed so that the pair keeps its alignment.
func Reverse(name string, b Bank) Bank {
	rev := func(f []float64) []float64 {
		r := slices.Clone(f)
		slices.Reverse(r)
		return r
	}
	return Bank{
		Name: name,
		L:    rev(b.IL),
		H:    rev(b.IH),
		IL:   rev(b.L),
		IH:   rev(b.H),
	}
}

// haarNames are recognized by the decimated fast path.
var haarNames = []string{"haar", "db1", "bior1.1", "rbior1.1"}

// Haar returns the 2-tap Haar bank.
func Haar() Bank {
	s := math.Sqrt2 / 2
	return Bank{
		Name: "haar",
		L:    []float64{s, s},
		H:    []float64{-s, s},
		IL:   []float64{s, s},
		IH:   []float64{s, -s},
	}
}

// Resolve looks up a filter bank by name. In decimated mode the Haar family
// short-circuits the table; in undecimated mode every name goes through it.
// The returned slices are copies owned by the caller.
func Resolve(name string, undecimated bool) (Bank, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !undecimated && lo.Contains(haarNames, key) {
		b := Haar()
		b.Name = key
		b.FastPath = true
		return b, nil
	}

	b, ok := table[key]
	if !ok {
		return Bank{}, errors.Wrapf(ErrUnknownFilter, "%q", name)
	}
	return Bank{
		Name: b.Name,
		L:    slices.Clone(b.L),
		H:    slices.Clone(b.H),
		IL:   slices.Clone(b.IL),
		IH:   slices.Clone(b.IH),
	}, nil
}

// Names returns the registered filter names in sorted order.
func Names() []string {
	names := lo.Keys(table)
	slices.Sort(names)
	return names
}
