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

import "github.com/pkg/errors"

// Configuration errors.
var (
	ErrFilterTooLong = errors.New("wavelet: filter exceeds MaxTaps")
	ErrInvalidFilter = errors.New("wavelet: invalid filter bank")
)

// Precondition errors, reported before any pass is dispatched.
var (
	ErrNilArgument       = errors.New("wavelet: nil argument")
	ErrInvalidLevels     = errors.New("wavelet: invalid level count")
	ErrInvalidDimensions = errors.New("wavelet: invalid dimensions")
	ErrScratchTooSmall   = errors.New("wavelet: scratch buffer too small")
	ErrAliasedScratch    = errors.New("wavelet: scratch aliases a band")
	ErrAliasedOutput     = errors.New("wavelet: output image aliases a band")
)
