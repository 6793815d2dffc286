// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exo

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fhs/go-netcdf/netcdf"
)

// Summary holds the structure of an Exodus II file
type Summary struct {
	Title  string
	Ndim   int
	Nverts int
	Ncells int
	Blocks []BlockSummary
	Nnsets int // node sets
	Nssets int // side sets
}

// BlockSummary holds the structure of one element block
type BlockSummary struct {
	Id       int    // eb_prop1 entry
	ElemType string // elem_type attribute of connect variable
	Ncells   int
	Nvc      int // vertices per cell
}

// ReadSummary opens an Exodus II file and extracts its structure
func ReadSummary(fnamepath string) (sum *Summary, err error) {

	// open file; released on every exit path
	f, err := netcdf.OpenFile(fnamepath, netcdf.NOWRITE)
	if err != nil {
		return nil, chk.Err("cannot open %q:\n%v", fnamepath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	// header
	sum = &Summary{
		Title:  attrText(f.Attr("title")),
		Ndim:   dimLen(f, "num_dim"),
		Nverts: dimLen(f, "num_nodes"),
		Ncells: dimLen(f, "num_elem"),
		Nnsets: dimLen(f, "num_node_sets"),
		Nssets: dimLen(f, "num_side_sets"),
	}

	// block ids
	nblk := dimLen(f, "num_el_blk")
	ids := make([]int32, nblk)
	if vProp, err2 := f.Var("eb_prop1"); err2 == nil {
		if err = vProp.ReadInt32s(ids); err != nil {
			return nil, chk.Err("cannot read eb_prop1:\n%v", err)
		}
	} else {
		for ib := range ids {
			ids[ib] = int32(ib + 1)
		}
	}

	// blocks
	for ib := 1; ib <= nblk; ib++ {
		v, err2 := f.Var(io.Sf("connect%d", ib))
		if err2 != nil {
			return nil, chk.Err("connectivity variable connect%d is missing:\n%v", ib, err2)
		}
		lens, err2 := v.LenDims()
		if err2 != nil {
			return nil, chk.Err("cannot read shape of connect%d:\n%v", ib, err2)
		}
		if len(lens) != 2 {
			return nil, chk.Err("connect%d must have 2 dimensions. got %d", ib, len(lens))
		}
		sum.Blocks = append(sum.Blocks, BlockSummary{
			Id:       int(ids[ib-1]),
			ElemType: attrText(v.Attr("elem_type")),
			Ncells:   int(lens[0]),
			Nvc:      int(lens[1]),
		})
	}
	return
}

// Inspect reads an Exodus II file and prints its structure
func Inspect(fnamepath string) error {
	sum, err := ReadSummary(fnamepath)
	if err != nil {
		return err
	}
	io.PfWhite("\nExodus II file: %s\n", fnamepath)
	io.Pf("title       = %q\n", sum.Title)
	io.Pf("dimensions  = %d\n", sum.Ndim)
	io.Pf("vertices    = %d\n", sum.Nverts)
	io.Pf("elements    = %d\n", sum.Ncells)
	io.Pf("blocks      = %d\n", len(sum.Blocks))
	for _, b := range sum.Blocks {
		io.Pf("  block %d: %s (%d elements, %d verts/elem)\n", b.Id, b.ElemType, b.Ncells, b.Nvc)
	}
	if sum.Nnsets > 0 {
		io.Pf("node sets   = %d\n", sum.Nnsets)
	}
	if sum.Nssets > 0 {
		io.Pf("side sets   = %d\n", sum.Nssets)
	}
	return nil
}

// dimLen returns the length of a dimension or zero if absent
func dimLen(f netcdf.Dataset, name string) int {
	d, err := f.Dim(name)
	if err != nil {
		return 0
	}
	n, err := d.Len()
	if err != nil {
		return 0
	}
	return int(n)
}

// attrText returns a text attribute, trimmed, or empty if absent
func attrText(a netcdf.Attr) string {
	n, err := a.Len()
	if err != nil {
		return ""
	}
	b := make([]byte, n)
	if err := a.ReadBytes(b); err != nil {
		return ""
	}
	return strings.TrimRight(string(b), "\x00 ")
}
