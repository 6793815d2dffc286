// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"github.com/rndubs/contact-detector/exo"

	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	fnamepath, _ := io.ArgToFilename(0, "test-data/single_hex_contact", ".exo", true)
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"exodus filename", "fnamepath", fnamepath,
	))

	// inspect
	if err := exo.Inspect(fnamepath); err != nil {
		io.PfRed("inspection failed:\n%v", err)
	}
}
