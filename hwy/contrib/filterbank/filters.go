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

package filterbank

// Daubechies synthesis low-pass filters.
var (
	db2RecLo = []float64{
		0.48296291314469025, 0.836516303737469,
		0.22414386804185735, -0.12940952255092145,
	}
	db3RecLo = []float64{
		0.3326705529509569, 0.8068915093133388, 0.4598775021193313,
		-0.13501102001039084, -0.08544127388224149, 0.035226291882100656,
	}
	db4RecLo = []float64{
		0.23037781330885523, 0.7148465705525415, 0.6308807679295904,
		-0.02798376941698385, -0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	}
)

// Coiflet synthesis low-pass filter.
var coif1RecLo = []float64{
	-0.0727326195128539, 0.3378976624578092, 0.8525720202122554,
	0.38486484686420286, -0.0727326195128539, -0.01565572813546454,
}

// Spline biorthogonal banks, zero-padded to a common even length.
const (
	b8   = 0.08838834764831845
	b17  = 0.1767766952966369
	b35  = 0.3535533905932738
	b70  = 0.7071067811865476
	b106 = 1.0606601717798214
)

var bior13 = Bank{
	Name: "bior1.3",
	L:    []float64{-b8, b8, b70, b70, b8, -b8},
	H:    []float64{0, 0, -b70, b70, 0, 0},
	IL:   []float64{0, 0, b70, b70, 0, 0},
	IH:   []float64{-b8, -b8, b70, -b70, b8, b8},
}

var bior22 = Bank{
	Name: "bior2.2",
	L:    []float64{0, -b17, b35, b106, b35, -b17},
	H:    []float64{0, b35, -b70, b35, 0, 0},
	IL:   []float64{0, b35, b70, b35, 0, 0},
	IH:   []float64{0, b17, b35, -b106, b35, b17},
}

var table = buildTable()

func buildTable() map[string]Bank {
	banks := []Bank{
		Orthogonal("haar", Haar().IL),
		Orthogonal("db1", Haar().IL),
		Orthogonal("db2", db2RecLo),
		Orthogonal("db3", db3RecLo),
		Orthogonal("db4", db4RecLo),
		Orthogonal("sym2", db2RecLo),
		Orthogonal("sym3", db3RecLo),
		Orthogonal("coif1", coif1RecLo),
		named("bior1.1", Haar()),
		Reverse("rbior1.1", Haar()),
		bior13,
		Reverse("rbior1.3", bior13),
		bior22,
		Reverse("rbior2.2", bior22),
	}
	m := make(map[string]Bank, len(banks))
	for _, b := range banks {
		m[b.Name] = b
	}
	return m
}

func named(name string, b Bank) Bank {
	b.Name = name
	return b
}
