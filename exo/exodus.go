// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package exo reads and writes Exodus II files, the NetCDF-based finite
// element interchange format consumed by the contact-detection tests. Only
// the subset of the schema produced by this project is handled: coordinates,
// hex8 element blocks and their ids.
package exo

import (
	"os"
	"strings"

	"github.com/rndubs/contact-detector/msh"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fhs/go-netcdf/netcdf"
)

// Exodus II schema constants
const (
	LenString  = 33   // len_string dimension
	LenLine    = 81   // len_line dimension
	LenName    = 33   // len_name dimension
	ApiVersion = 5.14 // api_version and version attributes
	WordSize   = 8    // floating_point_word_size attribute
)

// Write serialises a mesh into an Exodus II (NetCDF classic) file. The mesh
// is validated before the file is created, so a validation failure leaves no
// partial file behind; a failure during writing removes the file.
func Write(fnamepath string, m *msh.Mesh) (err error) {

	// validate before any write
	if err = m.Check(); err != nil {
		return
	}

	// create file; released on every exit path
	f, err := netcdf.CreateFile(fnamepath, netcdf.CLOBBER)
	if err != nil {
		return chk.Err("cannot create %q:\n%v", fnamepath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(fnamepath)
		}
	}()

	// dimensions
	if _, err = f.AddDim("len_string", LenString); err != nil {
		return
	}
	if _, err = f.AddDim("len_line", LenLine); err != nil {
		return
	}
	if _, err = f.AddDim("four", 4); err != nil {
		return
	}
	if _, err = f.AddDim("len_name", LenName); err != nil {
		return
	}
	dTime, err := f.AddDim("time_step", 0) // unlimited
	if err != nil {
		return
	}
	if _, err = f.AddDim("num_dim", 3); err != nil {
		return
	}
	dNodes, err := f.AddDim("num_nodes", uint64(m.Nverts()))
	if err != nil {
		return
	}
	if _, err = f.AddDim("num_elem", uint64(m.Ncells())); err != nil {
		return
	}
	dBlk, err := f.AddDim("num_el_blk", uint64(len(m.Blocks)))
	if err != nil {
		return
	}

	// global attributes
	if err = f.Attr("api_version").WriteFloat32s([]float32{ApiVersion}); err != nil {
		return
	}
	if err = f.Attr("version").WriteFloat32s([]float32{ApiVersion}); err != nil {
		return
	}
	if err = f.Attr("floating_point_word_size").WriteInt32s([]int32{WordSize}); err != nil {
		return
	}
	if err = f.Attr("file_size").WriteInt32s([]int32{1}); err != nil {
		return
	}
	if err = f.Attr("title").WriteBytes([]byte(m.Title)); err != nil {
		return
	}

	// coordinate and time variables
	coords := []netcdf.Dim{dNodes}
	vx, err := f.AddVar("coordx", netcdf.DOUBLE, coords)
	if err != nil {
		return
	}
	vy, err := f.AddVar("coordy", netcdf.DOUBLE, coords)
	if err != nil {
		return
	}
	vz, err := f.AddVar("coordz", netcdf.DOUBLE, coords)
	if err != nil {
		return
	}
	if _, err = f.AddVar("time_whole", netcdf.DOUBLE, []netcdf.Dim{dTime}); err != nil {
		return
	}

	// block status and ids
	vStatus, err := f.AddVar("eb_status", netcdf.INT, []netcdf.Dim{dBlk})
	if err != nil {
		return
	}
	vProp, err := f.AddVar("eb_prop1", netcdf.INT, []netcdf.Dim{dBlk})
	if err != nil {
		return
	}
	if err = vProp.Attr("name").WriteBytes([]byte("ID")); err != nil {
		return
	}

	// per-block connectivity variables
	vConn := make([]netcdf.Var, len(m.Blocks))
	for ib, b := range m.Blocks {
		dElems, err2 := f.AddDim(io.Sf("num_el_in_blk%d", ib+1), uint64(len(b.Cells)))
		if err2 != nil {
			err = err2
			return
		}
		dNods, err2 := f.AddDim(io.Sf("num_nod_per_el%d", ib+1), 8)
		if err2 != nil {
			err = err2
			return
		}
		vConn[ib], err2 = f.AddVar(io.Sf("connect%d", ib+1), netcdf.INT, []netcdf.Dim{dElems, dNods})
		if err2 != nil {
			err = err2
			return
		}
		if err = vConn[ib].Attr("elem_type").WriteBytes([]byte(strings.ToUpper(b.Type))); err != nil {
			return
		}
	}

	// leave define mode
	if err = f.EndDef(); err != nil {
		return
	}

	// write coordinates
	x, y, z := m.CoordsXYZ()
	if err = vx.WriteFloat64s(x); err != nil {
		return
	}
	if err = vy.WriteFloat64s(y); err != nil {
		return
	}
	if err = vz.WriteFloat64s(z); err != nil {
		return
	}

	// write block status, ids and connectivities
	status := make([]int32, len(m.Blocks))
	ids := make([]int32, len(m.Blocks))
	for ib, b := range m.Blocks {
		status[ib] = 1
		ids[ib] = int32(b.Id)
	}
	if err = vStatus.WriteInt32s(status); err != nil {
		return
	}
	if err = vProp.WriteInt32s(ids); err != nil {
		return
	}
	for ib, b := range m.Blocks {
		if err = vConn[ib].WriteInt32s(b.Connectivity()); err != nil {
			return
		}
	}
	return
}
