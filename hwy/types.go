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

// Package hwy holds the small runtime layer shared by the transform packages:
// the floating-point sample constraint and the detected vector width used to
// size column tiles.
//
// The transform kernels are plain Go loops over contiguous memory. The
// detected width only decides how many columns a worker processes per tile,
// so that the inner loop of a column pass spans whole vector registers once
// the compiler vectorizes it.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-pdwt/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.MaxLanes[float32]())
//	tile := hwy.TileWidth[float32](4)
//	tiles := hwy.NumTiles(cols, tile)
package hwy

// Floats is a constraint for floating-point sample types.
type Floats interface {
	~float32 | ~float64
}
