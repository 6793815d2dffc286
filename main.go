// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/rndubs/contact-detector/gen"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	dirout := io.ArgToString(0, "test-data")
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nExodus II test fixture generator for contact detection\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"output directory", "dirout", dirout,
			"show messages", "verbose", verbose,
		))
	}

	// generate fixtures
	err := gen.Run(dirout, gen.All(), verbose)
	if err != nil {
		chk.Panic("generation failed:\n%v", err)
	}
	if verbose {
		io.PfGreen("\ndone\n")
	}
}
