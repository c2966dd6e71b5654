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

package image

import "github.com/ajroetker/go-pdwt/hwy"

// Clamp writes src clamped to [lo, hi] into dst. dst may be src.
// Both planes must have the same dimensions.
func Clamp[T hwy.Floats](src, dst *Plane[T], lo, hi T) error {
	if !SameSize(src, dst) {
		return errSizeMismatch(src, dst)
	}
	for r := range src.rows {
		in, out := src.Row(r), dst.Row(r)
		for i, v := range in {
			out[i] = min(max(v, lo), hi)
		}
	}
	return nil
}

// BrightnessContrast writes src*scale + offset into dst. dst may be src.
func BrightnessContrast[T hwy.Floats](src, dst *Plane[T], scale, offset T) error {
	if !SameSize(src, dst) {
		return errSizeMismatch(src, dst)
	}
	for r := range src.rows {
		in, out := src.Row(r), dst.Row(r)
		for i, v := range in {
			out[i] = v*scale + offset
		}
	}
	return nil
}
