/*
 * write.go, part of goPoscar.
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
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/goposcar/v3"
)

//FloatFormat selects the fixed-width numeric mode of the writer: every
//float in the document is printed with fmt's %*.*f using these values
//(e.g. Width 9, Prec 6). When no FloatFormat is given the writer uses the
//round-trip mode instead: the shortest decimal representation that parses
//back to the identical IEEE-754 value.
type FloatFormat struct {
	Width int
	Prec  int
}

func (f *FloatFormat) float(x float64) string {
	if f == nil {
		return dtoa(x)
	}
	return fmt.Sprintf("%*.*f", f.Width, f.Prec, x)
}

//dtoa prints the shortest decimal string that reparses to exactly x,
//switching to exponential notation for extreme magnitudes. Integral values
//keep a trailing ".0" so the token still reads as a real.
func dtoa(x float64) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

//String renders the structure in the canonical output form, with
//round-trip exact numbers. The output always reparses to an equal
//structure.
func (P *Poscar) String() string {
	var b strings.Builder
	P.WriteWith(&b, nil) //strings.Builder never errors
	return b.String()
}

//Write writes the structure to out with round-trip exact numbers.
func (P *Poscar) Write(out io.Writer) error {
	return P.WriteWith(out, nil)
}

//WriteWith writes the structure to out. A nil format selects the
//round-trip numeric mode; a non-nil one applies fixed width/precision to
//every float in the document.
func (P *Poscar) WriteWith(out io.Writer, format *FloatFormat) error {
	w := &errWriter{w: out}
	R := &P.raw

	w.printf("%s\n", R.Comment)

	//volume mode is spelled as a negative number. The value is negated
	//before formatting, not prefixed after, so fixed-width padding can
	//never split the sign from the digits into two tokens.
	scaleValue := R.Scale.Value
	if R.Scale.Tag == VolumeScale {
		scaleValue = -scaleValue
	}
	w.printf("  %s\n", format.float(scaleValue))

	for i := 0; i < 3; i++ {
		w.printf("    %s\n", by3(R.LatticeVectors, i, format))
	}

	//symbols and counts are right-aligned 2 wide; wider entries simply
	//take the room they need.
	if R.GroupSymbols != nil {
		cells := make([]string, len(R.GroupSymbols))
		for i, s := range R.GroupSymbols {
			cells[i] = fmt.Sprintf("%2s", s)
		}
		w.printf("  %s\n", strings.Join(cells, " "))
	}
	cells := make([]string, len(R.GroupCounts))
	for i, c := range R.GroupCounts {
		cells[i] = fmt.Sprintf("%2d", c)
	}
	w.printf("  %s\n", strings.Join(cells, " "))

	if R.Dynamics != nil {
		w.printf("Selective Dynamics\n")
	}
	w.printf("%s\n", R.Positions.Tag.String())

	for i := 0; i < R.Positions.NVecs(); i++ {
		w.printf("  %s", by3(R.Positions.Data, i, format))
		if R.Dynamics != nil {
			d := R.Dynamics[i]
			w.printf(" %c %c %c", tf(d[0]), tf(d[1]), tf(d[2]))
		}
		w.printf("\n")
	}

	if R.Velocities != nil {
		if R.Velocities.Tag == Cartesian {
			w.printf("Cartesian\n")
		} else {
			//a blank line; this is how CONTCAR files spell "fractional"
			//here, and what their consumers expect.
			w.printf("\n")
		}
		for i := 0; i < R.Velocities.NVecs(); i++ {
			w.printf("  %s\n", by3(R.Velocities.Data, i, format))
		}
	}
	return w.err
}

//by3 renders the three components of the ith vector of m, space separated.
func by3(m *v3.Matrix, i int, format *FloatFormat) string {
	return format.float(m.At(i, 0)) + " " + format.float(m.At(i, 1)) + " " + format.float(m.At(i, 2))
}

func tf(b bool) byte {
	if b {
		return 'T'
	}
	return 'F'
}

//errWriter keeps the first write error and swallows the rest, so the
//writing code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(f string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, f, args...)
}
