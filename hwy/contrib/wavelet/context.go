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
	"slices"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/filterbank"
)

// MaxTaps is the capacity of the filter storage.
const MaxTaps = 40

// FilterContext holds the analysis and synthesis filters of one wavelet.
// It is immutable once built and safe for concurrent use.
type FilterContext[T hwy.Floats] struct {
	name     string
	hlen     int
	fastPath bool

	l  [MaxTaps]T
	h  [MaxTaps]T
	il [MaxTaps]T
	ih [MaxTaps]T
}

// NewFilterContext copies a resolved bank into fixed-capacity storage.
func NewFilterContext[T hwy.Floats](bank filterbank.Bank) (*FilterContext[T], error) {
	hlen := bank.Len()
	if hlen > MaxTaps {
		return nil, errors.Wrapf(ErrFilterTooLong, "%s has %d taps, capacity %d", bank.Name, hlen, MaxTaps)
	}
	if hlen < 2 {
		return nil, errors.Wrapf(ErrInvalidFilter, "%s has %d taps", bank.Name, hlen)
	}
	if len(bank.H) != hlen || len(bank.IL) != hlen || len(bank.IH) != hlen {
		return nil, errors.Wrapf(ErrInvalidFilter, "%s: filter lengths %d/%d/%d/%d differ",
			bank.Name, hlen, len(bank.H), len(bank.IL), len(bank.IH))
	}

	f := &FilterContext[T]{
		name:     bank.Name,
		hlen:     hlen,
		fastPath: bank.FastPath,
	}
	for k := range hlen {
		f.l[k] = T(bank.L[k])
		f.h[k] = T(bank.H[k])
		f.il[k] = T(bank.IL[k])
		f.ih[k] = T(bank.IH[k])
	}
	return f, nil
}

// LoadFilter resolves a wavelet name and builds its context. Contexts are
// independent values: loading the same name twice yields equal contexts.
func LoadFilter[T hwy.Floats](name string, undecimated bool) (*FilterContext[T], error) {
	bank, err := filterbank.Resolve(name, undecimated)
	if err != nil {
		return nil, err
	}
	return NewFilterContext[T](bank)
}

// Name returns the wavelet name the context was built from.
func (f *FilterContext[T]) Name() string {
	return f.name
}

// Len returns the tap count shared by the four filters.
func (f *FilterContext[T]) Len() int {
	return f.hlen
}

// FastPath reports whether the bank came from the decimated Haar shortcut.
func (f *FilterContext[T]) FastPath() bool {
	return f.fastPath
}

// L returns a copy of the analysis low-pass filter.
func (f *FilterContext[T]) L() []T { return slices.Clone(f.l[:f.hlen]) }

// H returns a copy of the analysis high-pass filter.
func (f *FilterContext[T]) H() []T { return slices.Clone(f.h[:f.hlen]) }

// IL returns a copy of the synthesis low-pass filter.
func (f *FilterContext[T]) IL() []T { return slices.Clone(f.il[:f.hlen]) }

// IH returns a copy of the synthesis high-pass filter.
func (f *FilterContext[T]) IH() []T { return slices.Clone(f.ih[:f.hlen]) }
