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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pdwt/hwy"
)

func newInfoCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected CPU features and worker configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printInfo(g, cmd.OutOrStdout())
		},
	}
}

func printInfo(g *globalOptions, out io.Writer) error {
	e := newEngine[float32](g)
	defer e.Close()
	_, err := fmt.Fprintf(out,
		"dispatch:     %s\nvector bytes: %d\nlanes f32:    %d\nlanes f64:    %d\nworkers:      %d\nHWY_NO_SIMD:  %v\n",
		hwy.CurrentName(), hwy.CurrentWidth(), hwy.MaxLanes[float32](), hwy.MaxLanes[float64](),
		e.Workers(), hwy.NoSimdEnv())
	if err != nil {
		return err
	}
	if v := os.Getenv(workersEnv); v != "" {
		_, err = fmt.Fprintf(out, "%s: %s\n", workersEnv, v)
	}
	return err
}
