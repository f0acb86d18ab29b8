/*
 * builder.go, part of goPoscar.
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

//Builder assembles a RawPoscar from simpler typed inputs, with explicit
//defaults for the optional sections. It performs no validation of its own:
//Build defers entirely to RawPoscar.Validate, and BuildRaw hands back
//whatever was assembled.
//
//Lattice and positions are required; building without them panics, since a
//missing required field is a defect in the calling code, not a data error
//there is any structure to report about. Either build method consumes the
//Builder: any later method call on it panics too.
type Builder struct {
	data *builderData //nil once consumed
}

type builderData struct {
	comment    string
	scale      ScaleLine
	lattice    *v3.Matrix //nil = missing (required)
	symbols    []string
	counts     []int //nil = derive a single group from the positions
	positions  *Coords
	posZeroTag *CoordsTag //zero-filled positions of the given tag
	velocities *Coords
	velZeroTag *CoordsTag
	dynamics   [][3]bool
}

//NewBuilder returns a Builder with the default comment "POSCAR File" and a
//scale factor of 1.0.
func NewBuilder() *Builder {
	return &Builder{data: &builderData{
		comment: "POSCAR File",
		scale:   Factor(1.0),
	}}
}

func (B *Builder) d() *builderData {
	if B.data == nil {
		panic(ErrConsumedBuilder)
	}
	return B.data
}

//Comment sets the comment line.
func (B *Builder) Comment(s string) *Builder { B.d().comment = s; return B }

//Scale sets the scale line.
func (B *Builder) Scale(s ScaleLine) *Builder { B.d().scale = s; return B }

//Lattice sets the unscaled lattice vectors, one per row of a 3x3 matrix.
//This field is required.
func (B *Builder) Lattice(m *v3.Matrix) *Builder { B.d().lattice = m; return B }

//DummyLattice sets an identity matrix as the lattice. You may think of it
//as an "explicit default", for when the lattice will ultimately be
//discarded.
func (B *Builder) DummyLattice() *Builder {
	eye := v3.Zeros(3)
	eye.Set(0, 0, 1.0)
	eye.Set(1, 1, 1.0)
	eye.Set(2, 2, 1.0)
	return B.Lattice(eye)
}

//GroupCounts sets explicit counts for each atom group.
func (B *Builder) GroupCounts(cs []int) *Builder {
	B.d().counts = append([]int(nil), cs...)
	return B
}

//AutoGroupCounts undoes GroupCounts, restoring the default: all atoms form
//one group, whose count is the number of positions.
func (B *Builder) AutoGroupCounts() *Builder { B.d().counts = nil; return B }

//GroupSymbols sets the symbol for each atom group.
func (B *Builder) GroupSymbols(ss []string) *Builder {
	B.d().symbols = append([]string(nil), ss...)
	return B
}

//NoGroupSymbols undoes GroupSymbols, removing the symbols line.
func (B *Builder) NoGroupSymbols() *Builder { B.d().symbols = nil; return B }

//Positions sets the positions as they would be written in the file. This
//field is required.
func (B *Builder) Positions(c Coords) *Builder {
	d := B.d()
	d.positions = &c
	d.posZeroTag = nil
	return B
}

//ZeroPositions sets zero-filled positions of the given coordinate system.
//GroupCounts must also be given, or building panics: with dummy positions
//there is nothing else to take the atom count from.
func (B *Builder) ZeroPositions(tag CoordsTag) *Builder {
	d := B.d()
	d.positions = nil
	d.posZeroTag = &tag
	return B
}

//Velocities sets the velocities as they would be written in the file.
func (B *Builder) Velocities(c Coords) *Builder {
	d := B.d()
	d.velocities = &c
	d.velZeroTag = nil
	return B
}

//ZeroVelocities sets zero-filled velocities of the given coordinate
//system, with one entry per atom.
func (B *Builder) ZeroVelocities(tag CoordsTag) *Builder {
	d := B.d()
	d.velocities = nil
	d.velZeroTag = &tag
	return B
}

//NoVelocities undoes Velocities, removing the section from the file.
func (B *Builder) NoVelocities() *Builder {
	d := B.d()
	d.velocities = nil
	d.velZeroTag = nil
	return B
}

//Dynamics sets the selective-dynamics flags, one 3-tuple per atom.
func (B *Builder) Dynamics(ds [][3]bool) *Builder {
	B.d().dynamics = append([][3]bool(nil), ds...)
	return B
}

//NoDynamics undoes Dynamics, removing the section from the file.
func (B *Builder) NoDynamics() *Builder { B.d().dynamics = nil; return B }

//BuildRaw consumes the Builder and returns the assembled RawPoscar. Length
//mismatches are left for Validate to report: the data may well come from a
//user file, and the only mode of failure here is to panic.
func (B *Builder) BuildRaw() RawPoscar {
	d := B.d()
	B.data = nil //poison: reuse after building is a programmer error

	if d.lattice == nil {
		panic(ErrMissingLattice)
	}

	var positions Coords
	var counts []int
	switch {
	case d.positions != nil:
		positions = *d.positions
		counts = d.counts
		if counts == nil {
			counts = []int{positions.NVecs()}
		}
	case d.posZeroTag != nil:
		if d.counts == nil {
			panic(ErrUnknownCount)
		}
		counts = d.counts
		n := 0
		for _, c := range counts {
			n += c
		}
		positions = OfTag(*d.posZeroTag, v3.Zeros(n))
	default:
		panic(ErrMissingPositions)
	}

	//counts take priority over the positions when the atom count is
	//ambiguous; any mismatch is Validate's to report.
	nAtom := 0
	for _, c := range counts {
		nAtom += c
	}

	var velocities *Coords
	switch {
	case d.velocities != nil:
		velocities = d.velocities
	case d.velZeroTag != nil:
		v := OfTag(*d.velZeroTag, v3.Zeros(nAtom))
		velocities = &v
	}

	return RawPoscar{
		Comment:        d.comment,
		Scale:          d.scale,
		LatticeVectors: d.lattice,
		GroupSymbols:   d.symbols,
		GroupCounts:    counts,
		Positions:      positions,
		Velocities:     velocities,
		Dynamics:       d.dynamics,
	}
}

//Build consumes the Builder, assembles the RawPoscar and validates it.
func (B *Builder) Build() (*Poscar, error) {
	raw := B.BuildRaw()
	P, err := raw.Validate()
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	return P, nil
}
