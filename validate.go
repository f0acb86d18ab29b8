/*
 * validate.go, part of goPoscar.
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

import "strings"

//Validate checks every invariant of the structure and, when all hold,
//promotes the receiver into a Poscar, the only type the writer accepts.
//Checks run in a fixed order and only the first violated invariant is
//reported; validation is a repeatable gate, not a destructive check, so on
//failure the receiver is untouched and remains available for repair.
func (R *RawPoscar) Validate() (*Poscar, error) {
	if R.GroupSymbols != nil && len(R.GroupSymbols) != len(R.GroupCounts) {
		return nil, ValidationError{message: InconsistentNumGroups}
	}

	if strings.ContainsAny(R.Comment, "\n\r") {
		return nil, ValidationError{message: NewlineInComment}
	}

	//NaN fails this comparison too, though the parser already rejects NaN
	//earlier, where "equal to zero" and "unordered" are told apart.
	if !(R.Scale.Value > 0) {
		return nil, ValidationError{message: BadScaleLine}
	}

	//The file format cannot even spell a negative count; only direct
	//construction can produce one.
	for _, c := range R.GroupCounts {
		if c < 0 {
			return nil, ValidationError{message: NegativeCount}
		}
	}

	n := R.NumSites()
	if n == 0 {
		return nil, ValidationError{message: NoAtoms}
	}

	if R.GroupSymbols != nil {
		for _, s := range R.GroupSymbols {
			if !symbolOK(s) {
				return nil, ValidationError{message: InvalidSymbol, symbol: s}
			}
		}
		//Defense in depth: the whole symbols line, re-joined the way the
		//writer emits it, must tokenize back to the same sequence. A
		//failure here with individually well-formed symbols would mean the
		//writer and reader disagree on tokenization.
		joined := &spanned{s: strings.Join(R.GroupSymbols, " ")}
		back := joined.words()
		if len(back) != len(R.GroupSymbols) {
			return nil, ValidationError{message: InvalidSymbol}
		}
		for i, w := range back {
			if w.str() != R.GroupSymbols[i] {
				return nil, ValidationError{message: InvalidSymbol}
			}
		}
	}

	if R.LatticeVectors == nil || R.LatticeVectors.NVecs() != 3 {
		return nil, ValidationError{message: WrongLength, field: "lattice_vectors", expected: 3}
	}

	if R.Positions.NVecs() != n {
		return nil, ValidationError{message: WrongLength, field: "positions", expected: n}
	}

	if R.Velocities != nil && R.Velocities.NVecs() != n {
		return nil, ValidationError{message: WrongLength, field: "velocities", expected: n}
	}

	if R.Dynamics != nil && len(R.Dynamics) != n {
		return nil, ValidationError{message: WrongLength, field: "dynamics", expected: n}
	}

	return &Poscar{raw: *R}, nil
}

//symbolOK reports whether a single group symbol can be written and read
//back unambiguously: non-empty, no internal blank, and no leading digit
//(a symbols line starting with a digit would be taken for a counts line).
func symbolOK(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if isBlank(s[i]) {
			return false
		}
	}
	return true
}
