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

// Package image provides the dense 2-D sample plane consumed and produced by
// the wavelet transforms.
//
// A Plane[T] is a single-channel, row-major array with explicit row and
// column counts and no row padding, so a plane and a flat caller buffer are
// interchangeable:
//
//	buf := make([]float32, rows*cols)
//	p, err := image.PlaneFrom(buf, rows, cols)
//	p.Set(0, 0, 1)
//	row := p.Row(3) // len(row) == cols
//
// # Views
//
// View reinterprets the prefix of a plane's backing slice with other
// dimensions and Reshape does the same in place. The wavelet pyramid reshapes
// the approximation band, whose storage is sized for the finest level and
// reused as the dimensions shrink. Buffer exposes the whole backing slice for
// alias checks.
//
// # Point Operations
//
// Clamp and BrightnessContrast map every sample independently and may run
// in place.
//
// # Edge Handling
//
// Wrap(index, size) maps any index onto [0, size) periodically, which is the
// boundary extension used by every transform pass.
package image
