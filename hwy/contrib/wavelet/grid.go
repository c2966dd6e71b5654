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
	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/workerpool"
)

// tileVectors is the number of vector registers spanned by one column tile.
const tileVectors = 4

// rowGrid runs fn for every row in [0, rows) and returns once all rows are done.
func rowGrid(pool *workerpool.Pool, rows int, fn func(r int)) {
	pool.ParallelFor(rows, func(start, end int) {
		for r := start; r < end; r++ {
			fn(r)
		}
	})
}

// columnGrid runs fn for every output row r and column tile [c0, c1), and
// returns once the whole grid is done. Tiles keep the inner loop of a column
// pass on contiguous memory while exposing rows*tiles units of parallelism,
// which matters at the coarse levels where few rows remain.
func columnGrid[T hwy.Floats](pool *workerpool.Pool, rows, cols int, fn func(r, c0, c1 int)) {
	tile := hwy.TileWidth[T](tileVectors)
	tiles := hwy.NumTiles(cols, tile)
	n := rows * tiles
	batch := max(1, n/(4*pool.NumWorkers()))
	pool.ParallelForAtomicBatched(n, batch, func(start, end int) {
		for g := start; g < end; g++ {
			r, t := g/tiles, g%tiles
			c0 := t * tile
			fn(r, c0, min(c0+tile, cols))
		}
	})
}
