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

package main

import (
	goimage "image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
)

// readPlane decodes a PNG or JPEG file into a plane of gray levels in
// [0, 255].
func readPlane(path string) (*image.Plane[float32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	img, _, err := goimage.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	b := img.Bounds()
	p := image.NewPlane[float32](b.Dy(), b.Dx())
	for r := range p.Rows() {
		row := p.Row(r)
		for c := range row {
			g := color.GrayModel.Convert(img.At(b.Min.X+c, b.Min.Y+r)).(color.Gray)
			row[c] = float32(g.Y)
		}
	}
	return p, nil
}

// writePlane encodes p as an 8-bit grayscale PNG, rounding and clamping each
// sample to [0, 255].
func writePlane(path string, p *image.Plane[float32]) (err error) {
	clamped := image.NewPlane[float32](p.Rows(), p.Cols())
	if err := image.Clamp(p, clamped, 0, 255); err != nil {
		return err
	}
	img := goimage.NewGray(goimage.Rect(0, 0, p.Cols(), p.Rows()))
	for r := range p.Rows() {
		out := img.Pix[r*img.Stride : r*img.Stride+p.Cols()]
		for c, v := range clamped.Row(r) {
			out[c] = uint8(math.Round(float64(v)))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.WithStack(cerr)
		}
	}()
	return errors.Wrapf(png.Encode(f, img), "encoding %s", path)
}
