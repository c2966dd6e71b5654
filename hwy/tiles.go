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

package hwy

// TileWidth returns the number of columns a column pass hands to one worker
// at a time, spanning the given number of vector registers.
func TileWidth[T Floats](vectors int) int {
	if vectors < 1 {
		vectors = 1
	}
	return max(MaxLanes[T](), 1) * vectors
}

// NumTiles returns how many tiles of the given width cover size.
func NumTiles(size, width int) int {
	if size <= 0 {
		return 0
	}
	if width <= 0 {
		return 1
	}
	return (size + width - 1) / width
}
