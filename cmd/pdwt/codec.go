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
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-pdwt/hwy/contrib/wavelet"
)

// Coefficient file layout, little endian:
//
//	"PDWT" | version u8 | flags u8 | rows u32 | cols u32 | levels u32 |
//	name length u8 | name | 3*levels+1 bands of float32
//
// Bands follow the coefficient set order, each at its own dimensions.
const (
	fileMagic   = "PDWT"
	fileVersion = 1

	flagUndecimated = 1 << 0
	flagNormalized  = 1 << 1
)

var errBadFile = errors.New("pdwt: not a coefficient file")

// fileInfo is the metadata stored next to the coefficients.
type fileInfo struct {
	filter string
	// normalized records that gray levels were scaled to [0, 1] before the
	// forward transform.
	normalized bool
}

type fileHeader struct {
	Magic   [4]byte
	Version uint8
	Flags   uint8
	Rows    uint32
	Cols    uint32
	Levels  uint32
}

func writeCoefficients(w io.Writer, info fileInfo, c *wavelet.Coefficients[float32]) error {
	filter := info.filter
	if len(filter) > 255 {
		return errors.Errorf("pdwt: filter name %q too long", filter)
	}
	hdr := fileHeader{
		Version: fileVersion,
		Rows:    uint32(c.Rows()),
		Cols:    uint32(c.Cols()),
		Levels:  uint32(c.Levels()),
	}
	copy(hdr.Magic[:], fileMagic)
	if c.Undecimated() {
		hdr.Flags |= flagUndecimated
	}
	if info.normalized {
		hdr.Flags |= flagNormalized
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return errors.Wrap(err, "pdwt: writing header")
	}
	bw.WriteByte(uint8(len(filter)))
	bw.WriteString(filter)
	for i, b := range c.Bands() {
		for r := range b.Rows() {
			if err := binary.Write(bw, binary.LittleEndian, b.Row(r)); err != nil {
				return errors.Wrapf(err, "pdwt: writing band %d", i)
			}
		}
	}
	return errors.Wrap(bw.Flush(), "pdwt: flushing coefficients")
}

func readCoefficients(r io.Reader) (fileInfo, *wavelet.Coefficients[float32], error) {
	avail := remaining(r)
	br := bufio.NewReader(r)
	var hdr fileHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return fileInfo{}, nil, errors.Wrap(errBadFile, err.Error())
	}
	if string(hdr.Magic[:]) != fileMagic {
		return fileInfo{}, nil, errors.Wrapf(errBadFile, "magic %q", hdr.Magic[:])
	}
	if hdr.Version != fileVersion {
		return fileInfo{}, nil, errors.Wrapf(errBadFile, "version %d", hdr.Version)
	}
	n, err := br.ReadByte()
	if err != nil {
		return fileInfo{}, nil, errors.Wrap(errBadFile, "missing filter name")
	}
	name := make([]byte, n)
	if _, err := io.ReadFull(br, name); err != nil {
		return fileInfo{}, nil, errors.Wrap(errBadFile, "short filter name")
	}

	rows, cols, levels := int(hdr.Rows), int(hdr.Cols), int(hdr.Levels)
	undecimated := hdr.Flags&flagUndecimated != 0
	samples, err := wavelet.CoefficientLen(rows, cols, levels, undecimated)
	if err != nil {
		return fileInfo{}, nil, errors.Wrap(err, "pdwt: coefficient file header")
	}
	// Reject truncated payloads before allocating for them.
	headerLen := int64(binary.Size(hdr) + 1 + len(name))
	if payload := int64(samples) * 4; avail >= 0 && avail-headerLen < payload {
		return fileInfo{}, nil, errors.Wrapf(errBadFile, "payload of %d bytes, header describes %d",
			max(avail-headerLen, 0), payload)
	}
	c, err := wavelet.NewCoefficients[float32](rows, cols, levels, undecimated)
	if err != nil {
		return fileInfo{}, nil, errors.Wrap(err, "pdwt: coefficient file header")
	}
	for i, b := range c.Bands() {
		for row := range b.Rows() {
			if err := binary.Read(br, binary.LittleEndian, b.Row(row)); err != nil {
				return fileInfo{}, nil, errors.Wrapf(err, "pdwt: reading band %d", i)
			}
		}
	}
	return fileInfo{filter: string(name), normalized: hdr.Flags&flagNormalized != 0}, c, nil
}

// remaining returns the number of bytes left in r, or -1 if r cannot seek.
func remaining(r io.Reader) int64 {
	s, ok := r.(io.Seeker)
	if !ok {
		return -1
	}
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return -1
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return -1
	}
	return end - cur
}

func saveCoefficients(path string, info fileInfo, c *wavelet.Coefficients[float32]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.WithStack(cerr)
		}
	}()
	return writeCoefficients(f, info, c)
}

func loadCoefficients(path string) (fileInfo, *wavelet.Coefficients[float32], error) {
	f, err := os.Open(path)
	if err != nil {
		return fileInfo{}, nil, errors.WithStack(err)
	}
	defer f.Close()
	return readCoefficients(f)
}
