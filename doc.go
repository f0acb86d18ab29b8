/*
 * doc.go, part of goPoscar.
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

/*
Package poscar reads and writes VASP POSCAR/CONTCAR structure files.

The format is line oriented and deliberately permissive: optional sections
(the symbols line, the selective-dynamics flag, the velocity block) carry
no tags and are detected by peeking at the first character of a line, and
booleans follow Fortran's list-directed LOGICAL rules (.TRUE., .t and T are
all fine). This package parses all of that into a RawPoscar, a plain struct
with every section as literally written, and then gates it through
Validate, which checks the structural invariants and returns a Poscar. The
Poscar is the only type the writer accepts, so anything you can print is
known to reparse: writing with the default round-trip numeric mode and
reading the result back yields an equal structure, bit for bit in every
float.

A minimal file and the round trip:

	const example = `cubic diamond
	  3.7
	    0.5 0.5 0.0
	    0.0 0.5 0.5
	    0.5 0.0 0.5
	   C
	   2
	Direct
	  0.0 0.0 0.0
	  0.25 0.25 0.25
	`

	p, err := poscar.Read(strings.NewReader(example))
	if err != nil {
		//handle it
	}
	raw := p.Raw()             //public fields, free to edit
	raw.Scale = poscar.Volume(10.0)
	p, err = raw.Validate()    //gate it again before writing
	fmt.Print(p)               //the scale line now reads "  -10.0"

Positions and velocities keep the coordinate system they were written in
(Cartesian or fractional/"Direct"); the derived accessors on Poscar convert
on demand, including the scale-line semantics (a negative scale value in
the file is a target cell volume, not a factor). Errors from the parser
carry the source name and 1-based line/column of the offending token.
*/
package poscar
