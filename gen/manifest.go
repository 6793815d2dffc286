// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rndubs/contact-detector/msh"

	"github.com/cpmech/gosl/chk"
)

// ManifestFilename is the fixed name of the manifest sidecar
const ManifestFilename = "manifest.json"

// FixtureInfo summarises one generated fixture for the manifest
type FixtureInfo struct {
	File   string      `json:"file"`
	Descr  string      `json:"descr"`
	Nverts int         `json:"nverts"`
	Ncells int         `json:"ncells"`
	Blocks []BlockInfo `json:"blocks"`
}

// BlockInfo summarises one element block
type BlockInfo struct {
	Id     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Ncells int    `json:"ncells"`
}

// NewFixtureInfo extracts the manifest entry of one generated fixture
func NewFixtureInfo(fix Fixture, m *msh.Mesh) FixtureInfo {
	info := FixtureInfo{
		File:   fix.Fnkey + ".exo",
		Descr:  fix.Descr,
		Nverts: m.Nverts(),
		Ncells: m.Ncells(),
	}
	for _, b := range m.Blocks {
		info.Blocks = append(info.Blocks, BlockInfo{b.Id, b.Name, b.Type, len(b.Cells)})
	}
	return info
}

// WriteManifest saves the manifest describing all generated fixtures
func WriteManifest(dirout string, infos []FixtureInfo) (err error) {
	fnamepath := filepath.Join(dirout, ManifestFilename)
	fil, err := os.Create(fnamepath)
	if err != nil {
		return chk.Err("cannot create %q:\n%v", fnamepath, err)
	}
	defer func() {
		if cerr := fil.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	enc := json.NewEncoder(fil)
	enc.SetIndent("", "  ")
	err = enc.Encode(infos)
	if err != nil {
		return chk.Err("cannot encode manifest:\n%v", err)
	}
	return
}

// ReadManifest loads a previously written manifest
func ReadManifest(dirout string) (infos []FixtureInfo, err error) {
	fnamepath := filepath.Join(dirout, ManifestFilename)
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fnamepath, err)
	}
	err = json.Unmarshal(b, &infos)
	if err != nil {
		return nil, chk.Err("cannot decode manifest:\n%v", err)
	}
	return
}
