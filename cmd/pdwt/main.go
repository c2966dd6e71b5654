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

// Command pdwt runs 2-D wavelet transforms on grayscale images.
//
// Usage:
//
//	pdwt forward -i in.png -o out.pdwt -w db2 -l 3
//	pdwt forward -i in.png -o out.pdwt -w bior2.2 -l 2 --swt --threshold 4
//	pdwt inverse -i out.pdwt -o restored.png
//	pdwt check -w haar,db2,coif1 -l 3 --size 256
//	pdwt filters
//	pdwt info
//
// The number of workers defaults to GOMAXPROCS and can be set with --workers
// or the PDWT_WORKERS environment variable.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
