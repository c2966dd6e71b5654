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
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pdwt/hwy"
	"github.com/ajroetker/go-pdwt/hwy/contrib/wavelet"
)

// workersEnv provides the default for --workers.
const workersEnv = "PDWT_WORKERS"

type globalOptions struct {
	workers int
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: slog.New(slog.DiscardHandler)}
	root := &cobra.Command{
		Use:          "pdwt",
		Short:        "Parallel 2-D discrete and stationary wavelet transforms",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().IntVar(&opts.workers, "workers", envInt(workersEnv), "worker goroutines, 0 for GOMAXPROCS (env "+workersEnv+")")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every pyramid level")

	root.AddCommand(
		newForwardCmd(opts),
		newInverseCmd(opts),
		newCheckCmd(opts),
		newFiltersCmd(),
		newInfoCmd(opts),
	)
	return root
}

// envInt returns the integer value of an environment variable, or 0 when it
// is unset or malformed.
func envInt(name string) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return n
}

func newEngine[T hwy.Floats](opts *globalOptions) *wavelet.Engine[T] {
	return wavelet.NewEngine[T](wavelet.WithWorkers(opts.workers), wavelet.WithLogger(opts.logger))
}
