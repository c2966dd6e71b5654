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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pdwt/hwy/contrib/filterbank"
)

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the available wavelets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listFilters(cmd.OutOrStdout())
		},
	}
}

func listFilters(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTAPS\tDWT FAST PATH\t")
	for _, name := range filterbank.Names() {
		b, err := filterbank.Resolve(name, false)
		if err != nil {
			return err
		}
		fast := ""
		if b.FastPath {
			fast = "yes"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", name, b.Len(), fast)
	}
	return tw.Flush()
}
