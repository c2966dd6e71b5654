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
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pdwt/hwy/contrib/filterbank"
	"github.com/ajroetker/go-pdwt/hwy/contrib/image"
)

// execute runs the command line and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func gradientPlane(rows, cols int) *image.Plane[float32] {
	p := image.NewPlane[float32](rows, cols)
	for r := range rows {
		for c := range cols {
			p.Set(r, c, float32((7*r+3*c)%256))
		}
	}
	return p
}

func TestForwardInverseCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"haar", []string{"-w", "haar", "-l", "3"}},
		{"db2_max_levels", []string{"-w", "db2", "-l", "0"}},
		{"swt", []string{"-w", "bior2.2", "-l", "2", "--swt"}},
		{"normalized", []string{"-w", "coif1", "-l", "2", "--normalize"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "in.png")
			coeffs := filepath.Join(dir, "c.pdwt")
			restored := filepath.Join(dir, "out.png")

			src := gradientPlane(32, 48)
			require.NoError(t, writePlane(in, src))

			args := append([]string{"forward", "-i", in, "-o", coeffs, "--workers", "2"}, tt.args...)
			_, err := execute(t, args...)
			require.NoError(t, err)
			_, err = execute(t, "inverse", "-i", coeffs, "-o", restored)
			require.NoError(t, err)

			got, err := readPlane(restored)
			require.NoError(t, err)
			requireSamePixels(t, src, got)
		})
	}
}

func requireSamePixels(t *testing.T, want, got *image.Plane[float32]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i, v := range want.Data() {
		if got.Data()[i] != v {
			t.Fatalf("pixel %d: got %v, want %v", i, got.Data()[i], v)
		}
	}
}

func TestForwardDefaultLevels(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		// The coarsest band keeps at least as many samples as the filter has taps.
		{"db2", []string{"-w", "db2"}, 3},
		{"haar", []string{"-w", "haar"}, 4},
		{"haar_swt", []string{"-w", "haar", "--swt"}, 4},
		{"bior2.2_swt", []string{"-w", "bior2.2", "--swt"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "in.png")
			out := filepath.Join(dir, "c.pdwt")
			require.NoError(t, writePlane(in, gradientPlane(32, 48)))

			args := append([]string{"forward", "-i", in, "-o", out, "-l", "0"}, tt.args...)
			_, err := execute(t, args...)
			require.NoError(t, err)
			_, coeffs, err := loadCoefficients(out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, coeffs.Levels())
		})
	}
}

func TestForwardThreshold(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "c.pdwt")
	require.NoError(t, writePlane(in, gradientPlane(16, 16)))

	_, err := execute(t, "forward", "-i", in, "-o", out, "-w", "db2", "-l", "2", "--threshold", "1e6")
	require.NoError(t, err)
	_, coeffs, err := loadCoefficients(out)
	require.NoError(t, err)
	for _, b := range coeffs.Details() {
		for _, v := range b.Data() {
			require.Zero(t, v)
		}
	}
}

func TestForwardErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	require.NoError(t, writePlane(in, gradientPlane(12, 12)))
	out := filepath.Join(dir, "c.pdwt")

	_, err := execute(t, "forward", "-i", in, "-o", out, "-w", "nope")
	require.ErrorIs(t, err, filterbank.ErrUnknownFilter)

	_, err = execute(t, "forward", "-i", in, "-o", out, "-l", "3")
	require.Error(t, err)

	_, err = execute(t, "forward", "-o", out)
	require.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "-w", "haar,DB2", "-w", "haar", "-l", "2", "--size", "32")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "MAX ERROR")
	assert.Contains(t, out, "db2")
	assert.Contains(t, out, "swt")
}

func TestCheckFilters(t *testing.T) {
	names, err := checkFilters([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, filterbank.Names(), names)

	names, err = checkFilters([]string{" Haar", "haar", "db3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"haar", "db3"}, names)

	_, err = checkFilters([]string{"db2", "db42"})
	require.ErrorIs(t, err, filterbank.ErrUnknownFilter)
}

func TestCheckAllFilters(t *testing.T) {
	var buf bytes.Buffer
	opts := &checkOptions{filters: []string{"all"}, levels: 3, size: 32, tolerance: 1e-9, seed: 3}
	g := &globalOptions{workers: 2, logger: slog.New(slog.DiscardHandler)}
	require.NoError(t, runCheck(context.Background(), g, opts, &buf))
}

func TestFiltersCommand(t *testing.T) {
	out, err := execute(t, "filters")
	require.NoError(t, err)
	for _, name := range filterbank.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "yes")
}

func TestInfoCommand(t *testing.T) {
	t.Setenv(workersEnv, "3")
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "workers:      3")
	assert.Contains(t, out, "dispatch:")
}
