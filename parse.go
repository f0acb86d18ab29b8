/*
 * parse.go, part of goPoscar.
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
	"io"
	"log"
	"math"
	"strings"

	v3 "github.com/rmera/goposcar/v3"
)

//Read reads a POSCAR from r. Errors cannot carry a filename with this
//form; use ReadFile, or ReadNamed with a source identifier, to get one in
//the messages.
func Read(r io.Reader) (*Poscar, error) {
	return ReadNamed(r, "")
}

//ReadNamed reads a POSCAR from r. The name is used only to prefix error
//messages; it does not have to be a real path.
//
//The grammar is a strict top-to-bottom walk, one pass, no backtracking:
//comment / scale / lattice(3) / [symbols] / counts /
//[selective dynamics] / coordinate flag / positions(N) / [velocities].
//Optional sections are detected by peeking at the first significant
//character of a line, never by explicit tags; see the comments below for
//each fallback rule.
func ReadNamed(r io.Reader, name string) (*Poscar, error) {
	raw, err := readRaw(r, name)
	if err != nil {
		return nil, errDecorate(err, "ReadNamed")
	}
	P, verr := raw.Validate()
	if verr != nil {
		//The grammar only produces invariant-respecting structures, so a
		//validation failure here is a defect, not a data error.
		panic(ErrParserInvariant)
	}
	return P, nil
}

func readRaw(r io.Reader, name string) (*RawPoscar, error) {
	L := newLines(r, name)

	//The entire first line, verbatim (not trimmed), is the comment.
	first, err := L.next()
	if err != nil {
		return nil, err
	}
	comment := first.str()

	scale, err := readScale(L)
	if err != nil {
		return nil, err
	}

	latdata := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		line, err := L.next()
		if err != nil {
			return nil, err
		}
		words := line.wordIter()
		for j := 0; j < 3; j++ {
			w, err := words.nextOrErr(ExpectedLatticeComponent)
			if err != nil {
				return nil, err
			}
			v, err := w.parseReal()
			if err != nil {
				return nil, err
			}
			latdata = append(latdata, v)
		}
		//rest of the line is freeform comment
	}
	lattice, _ := v3.NewMatrix(latdata)

	symbols, counts, n, err := readSymbolsAndCounts(L)
	if err != nil {
		return nil, err
	}

	hasDynamics, posTag, err := readFlags(L)
	if err != nil {
		return nil, err
	}

	posdata := make([]float64, 0, 3*n)
	var dynamics [][3]bool
	if hasDynamics {
		dynamics = make([][3]bool, 0, n)
	}
	for i := 0; i < n; i++ {
		line, err := L.next()
		if err != nil {
			return nil, err
		}
		words := line.wordIter()
		for j := 0; j < 3; j++ {
			w, err := words.nextOrErr(ExpectedCoordinates)
			if err != nil {
				return nil, err
			}
			v, err := w.parseReal()
			if err != nil {
				return nil, err
			}
			posdata = append(posdata, v)
		}
		if hasDynamics {
			var flags [3]bool
			for j := 0; j < 3; j++ {
				w, err := words.nextOrErr(ExpectedDynamicsFlags)
				if err != nil {
					return nil, err
				}
				flags[j], err = w.parseLogical()
				if err != nil {
					return nil, err
				}
			}
			dynamics = append(dynamics, flags)
		}
		//rest of the line is freeform comment
	}
	positions, _ := v3.NewMatrix(posdata)

	velocities, err := readVelocities(L, n)
	if err != nil {
		return nil, err
	}

	//anything left must be whitespace; running out of input is the normal
	//exit, but a reader failure still has to surface.
	for {
		line, err := L.next()
		if err != nil {
			if pe, ok := err.(ParseError); ok && pe.Message() == UnexpectedEndOfInput {
				break
			}
			return nil, err
		}
		if !line.isWhitespaceOnly() {
			return nil, line.error(UnexpectedTrailingContent)
		}
	}

	return &RawPoscar{
		Comment:        comment,
		Scale:          scale,
		LatticeVectors: lattice,
		GroupSymbols:   symbols,
		GroupCounts:    counts,
		Positions:      OfTag(posTag, positions),
		Velocities:     velocities,
		Dynamics:       dynamics,
	}, nil
}

func readScale(L *lines) (ScaleLine, error) {
	var zero ScaleLine
	line, err := L.next()
	if err != nil {
		return zero, err
	}
	words := line.wordIter()
	w, err := words.nextOrErr(ExpectedScale)
	if err != nil {
		return zero, err
	}
	value, err := w.parseReal()
	if err != nil {
		return zero, err
	}

	var scale ScaleLine
	switch {
	case math.IsNaN(value):
		return zero, ParseError{message: ScaleCannotBeNaN, filename: w.name, line: w.line, col: w.col, critical: true}
	case value == 0:
		return zero, ParseError{message: ScaleCannotBeZero, filename: w.name, line: w.line, col: w.col, critical: true}
	case value < 0:
		scale = Volume(-value)
	default:
		scale = Factor(value)
	}

	//VASP has an undocumented legacy form with one scale per cartesian
	//axis. Nobody uses it on purpose, but three reals here is also exactly
	//what an accidentally omitted scale line looks like, and that mistake
	//otherwise surfaces as a confusing error far away from this line. So a
	//second real-valued token is rejected outright.
	if w2, ok := words.nextWord(); ok {
		if _, msg := parseReal(w2.s); msg == "" {
			return zero, ParseError{message: TooManyScaleValues, filename: w2.name, line: w2.line, col: w2.col, critical: true}
		}
	}
	return scale, nil
}

func readSymbolsAndCounts(L *lines) ([]string, []int, int, error) {
	line, err := L.next()
	if err != nil {
		return nil, nil, 0, err
	}
	if _, err := line.wordIter().nextOrErr(ExpectedSymbolOrCount); err != nil {
		return nil, nil, 0, err
	}

	//New in VASP 5, a line with element symbols may appear before the line
	//with counts. There is no tag: if the first non-blank byte is a digit,
	//this line already holds the counts.
	var symbols []string
	countsLine := line
	lead := strings.TrimLeft(line.str(), " \t")[0]
	if lead < '0' || lead > '9' {
		for _, w := range line.words() {
			symbols = append(symbols, w.str())
		}
		countsLine, err = L.next()
		if err != nil {
			return nil, nil, 0, err
		}
	}

	//Words are consumed as counts until the first one that does not parse
	//as an unsigned integer; that word and everything after it is a
	//freeform trailing comment, not an error.
	var counts []int
	for _, w := range countsLine.words() {
		c, msg := parseUnsigned(w.str())
		if msg != "" {
			break
		}
		counts = append(counts, c)
	}

	if symbols != nil && len(symbols) != len(counts) {
		return nil, nil, 0, countsLine.error(InconsistentGroupCount)
	}
	n := 0
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return nil, nil, 0, countsLine.error(NoAtoms)
	}
	return symbols, counts, n, nil
}

func readFlags(L *lines) (hasDynamics bool, tag CoordsTag, err error) {
	line, err := L.next()
	if err != nil {
		return false, 0, err
	}
	if c, ok := line.controlChar(); ok && (c == 's' || c == 'S') {
		hasDynamics = true
		line, err = L.next()
		if err != nil {
			return false, 0, err
		}
	}
	tag = coordTagOf(line)
	//rest of the line is freeform comment
	return hasDynamics, tag, nil
}

//coordTagOf applies the coordinate-system heuristic to a flag line: c, C,
//k or K means Cartesian; per the VASP docs anything else at all, including
//an empty line, means fractional. A line whose flag word is merely
//indented ("  Cartesian") still counts as fractional, but it is suspicious
//enough to deserve a warning.
func coordTagOf(line *spanned) CoordsTag {
	c, ok := line.controlChar()
	if !ok {
		return Fractional
	}
	switch c {
	case 'c', 'C', 'k', 'K':
		return Cartesian
	case ' ':
		if !line.isWhitespaceOnly() {
			log.Printf("goPoscar: coordinate-system line %d starts with whitespace; reading it as fractional", line.line+1)
		}
	}
	return Fractional
}

//readVelocities handles the optional velocity block. The section has no
//tag of its own, and its coordinate-system line is blank in the fractional
//case (that is how the simulation tool itself writes CONTCAR files), so a
//blank line here is ambiguous: velocity header, or trailing junk. One line
//of lookahead settles it.
func readVelocities(L *lines, n int) (*Coords, error) {
	flag := L.peek()
	if flag == nil {
		return nil, nil //input ends after the positions
	}
	if flag.isWhitespaceOnly() {
		//a blank line followed by nothing but blanks is trailing, not a
		//fractional-velocities header.
		L.next()
		after := L.peek()
		if after == nil || after.isWhitespaceOnly() {
			//the blanks already consumed would pass the trailing scan anyway
			return nil, nil
		}
		//a blank header is only committed to when what follows can actually
		//open a velocity line; otherwise the blank was trailing and the line
		//is left for the end-of-input scan to reject.
		first := after.words()[0]
		if _, msg := parseReal(first.str()); msg != "" {
			return nil, nil
		}
	} else {
		L.next()
	}
	tag := coordTagOf(flag)

	data := make([]float64, 0, 3*n)
	for i := 0; i < n; i++ {
		line, err := L.next()
		if err != nil {
			return nil, err
		}
		words := line.wordIter()
		for j := 0; j < 3; j++ {
			w, err := words.nextOrErr(ExpectedCoordinates)
			if err != nil {
				return nil, err
			}
			v, err := w.parseReal()
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}
	m, _ := v3.NewMatrix(data)
	vel := OfTag(tag, m)
	return &vel, nil
}
