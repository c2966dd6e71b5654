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

// Package filterbank resolves wavelet names to the four 1-D filters used by
// the separable transforms.
//
// A Bank holds the analysis low-pass L, analysis high-pass H, synthesis
// low-pass IL and synthesis high-pass IH arrays, all of the same length.
// Names follow the PyWavelets conventions and are matched case-insensitively:
//
//	bank, err := filterbank.Resolve("db2", false)
//	// bank.Len() == 4
//
// # Haar Fast Path
//
// In decimated mode, haar, db1, bior1.1 and rbior1.1 are recognized without
// consulting the table and resolve to the 2-tap Haar bank (Bank.FastPath is
// set). The undecimated mode always goes through the table.
//
// # Filter Construction
//
// Orthogonal banks are built from their synthesis low-pass r:
//
//	IL = r
//	L  = reverse(r)
//	IH[k] = (-1)^k * L[k]
//	H  = reverse(IH)
//
// Biorthogonal banks list all four arrays; the rbior family swaps the
// analysis and synthesis roles of the matching bior bank.
package filterbank
