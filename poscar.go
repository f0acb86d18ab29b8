/*
 * poscar.go, part of goPoscar.
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package poscar

import (
	v3 "github.com/rmera/goposcar/v3"
)

//ScaleTag distinguishes the two meanings of the scale line.
type ScaleTag int

const (
	//FactorScale marks a literal multiplicative scale factor.
	FactorScale ScaleTag = iota
	//VolumeScale marks a target unit-cell volume, written in the file as a
	//negative number.
	VolumeScale
)

//ScaleLine represents the second line of a POSCAR file: either a scale
//factor or (written negative) a target cell volume.
type ScaleLine struct {
	Tag   ScaleTag
	Value float64
}

//Factor returns a ScaleLine holding a literal scale factor.
func Factor(v float64) ScaleLine { return ScaleLine{FactorScale, v} }

//Volume returns a ScaleLine holding a target cell volume. The magnitude is
//stored; the leading '-' belongs to the file format, not to the value.
func Volume(v float64) ScaleLine { return ScaleLine{VolumeScale, v} }

//CoordsTag distinguishes the Cartesian and fractional (direct)
//interpretations of a coordinate block. It carries no data, so it can be
//passed around independently of the coordinates it describes.
type CoordsTag int

const (
	//Cartesian coordinates: absolute positions in space.
	Cartesian CoordsTag = iota
	//Fractional (in VASP parlance, "direct") coordinates: multiples of the
	//lattice vectors.
	Fractional
)

func (t CoordsTag) String() string {
	if t == Cartesian {
		return "Cartesian"
	}
	return "Direct"
}

//Coords is a block of 3D vectors together with the coordinate system they
//are expressed in.
type Coords struct {
	Tag  CoordsTag
	Data *v3.Matrix
}

//Cart returns data tagged as Cartesian.
func Cart(data *v3.Matrix) Coords { return Coords{Cartesian, data} }

//Frac returns data tagged as fractional.
func Frac(data *v3.Matrix) Coords { return Coords{Fractional, data} }

//OfTag returns data wearing the given tag.
func OfTag(tag CoordsTag, data *v3.Matrix) Coords { return Coords{tag, data} }

//NVecs returns the number of vectors in the block, or 0 for a nil block.
func (c Coords) NVecs() int {
	if c.Data == nil {
		return 0
	}
	return c.Data.NVecs()
}

//RawPoscar is the basic representation of a POSCAR with public data
//members. The mapping between its fields and those of the POSCAR file
//should be braindead obvious. Note in particular that the scale line is
//preserved rather than incorporated into the lattice, and the coordinates
//are stored exactly as written.
//
//All members are public so you can construct and modify it freely. No
//invariant is enforced on this type; call Validate to obtain a Poscar,
//which is the only type the writer accepts.
type RawPoscar struct {
	Comment        string
	Scale          ScaleLine
	LatticeVectors *v3.Matrix //3x3, each row a lattice vector as written (scale NOT applied).
	GroupSymbols   []string   //nil when the file has no symbols line.
	GroupCounts    []int
	Positions      Coords
	Velocities     *Coords    //nil when absent.
	Dynamics       [][3]bool  //selective-dynamics flags; nil when absent.
}

//NumSites returns the total atom count, the sum of GroupCounts.
func (R *RawPoscar) NumSites() int {
	n := 0
	for _, c := range R.GroupCounts {
		n += c
	}
	return n
}

//Poscar wraps a RawPoscar known to satisfy every invariant checked by
//Validate. It is the only type the writer accepts, and it cannot be
//fabricated outside this package: the single way to obtain one is
//RawPoscar.Validate (the parser goes through it too).
type Poscar struct {
	raw RawPoscar
}

//Raw unwraps the Poscar into a RawPoscar for further editing. The matrices
//inside are shared with the Poscar, not copied, so the caller should
//discard the Poscar after unwrapping. Re-validation is required before
//writing again.
func (P *Poscar) Raw() RawPoscar {
	return P.raw
}
