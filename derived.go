/*
 * derived.go, part of goPoscar.
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
	"math"

	v3 "github.com/rmera/goposcar/v3"
)

//Derived, read-only views of a validated structure. Everything here is
//recomputed on each call from the literal-as-parsed fields; nothing is
//cached. Structures in this domain are small (hundreds to low thousands of
//sites) and these are not hot-loop operations, so repeated inverse-matrix
//costs are accepted in exchange for keeping the stored state minimal.

//Comment returns the comment line.
func (P *Poscar) Comment() string { return P.raw.Comment }

//ScaleLine returns the scale line as written: either a factor or a volume.
func (P *Poscar) ScaleLine() ScaleLine { return P.raw.Scale }

//GroupCounts returns a copy of the per-group atom counts.
func (P *Poscar) GroupCounts() []int {
	return append([]int(nil), P.raw.GroupCounts...)
}

//GroupSymbols returns a copy of the per-group symbols, or nil if the file
//has no symbols line.
func (P *Poscar) GroupSymbols() []string {
	if P.raw.GroupSymbols == nil {
		return nil
	}
	return append([]string(nil), P.raw.GroupSymbols...)
}

//NumSites returns the total number of atoms.
func (P *Poscar) NumSites() int { return P.raw.NumSites() }

//SiteSymbols expands the group symbols to one symbol per site, in file
//order, or nil if the file has no symbols line.
func (P *Poscar) SiteSymbols() []string {
	if P.raw.GroupSymbols == nil {
		return nil
	}
	out := make([]string, 0, P.raw.NumSites())
	for i, s := range P.raw.GroupSymbols {
		for j := 0; j < P.raw.GroupCounts[i]; j++ {
			out = append(out, s)
		}
	}
	return out
}

//PositionsTag returns the coordinate system the positions are stored in.
func (P *Poscar) PositionsTag() CoordsTag { return P.raw.Positions.Tag }

//VelocitiesTag returns the coordinate system the velocities are stored in.
//The second return is false when the structure has no velocities.
func (P *Poscar) VelocitiesTag() (CoordsTag, bool) {
	if P.raw.Velocities == nil {
		return 0, false
	}
	return P.raw.Velocities.Tag, true
}

//Dynamics returns a copy of the selective-dynamics flags, or nil when the
//structure has none.
func (P *Poscar) Dynamics() [][3]bool {
	if P.raw.Dynamics == nil {
		return nil
	}
	return append([][3]bool(nil), P.raw.Dynamics...)
}

//UnscaledLattice returns a copy of the lattice vectors exactly as written,
//with the scale line not applied. Each row is one lattice vector.
func (P *Poscar) UnscaledLattice() *v3.Matrix {
	return P.raw.LatticeVectors.Clone()
}

//UnscaledDet returns the determinant of the lattice as written.
func (P *Poscar) UnscaledDet() float64 {
	return v3.Det(P.raw.LatticeVectors)
}

//EffectiveScaleFactor returns the factor actually applied to the lattice:
//the scale value itself in factor mode, or the cube root of the ratio
//between the requested volume and the raw cell volume in volume mode. The
//volume mode is thereby self-consistent no matter how the raw lattice is
//scaled.
func (P *Poscar) EffectiveScaleFactor() float64 {
	switch P.raw.Scale.Tag {
	case VolumeScale:
		return math.Cbrt(P.raw.Scale.Value / math.Abs(P.UnscaledDet()))
	default:
		return P.raw.Scale.Value
	}
}

//ScaledVolume returns the volume of the scaled unit cell. In volume mode
//this is the stored value itself.
func (P *Poscar) ScaledVolume() float64 {
	if P.raw.Scale.Tag == VolumeScale {
		return P.raw.Scale.Value
	}
	f := P.raw.Scale.Value
	return math.Abs(P.UnscaledDet()) * f * f * f
}

//ScaledLattice returns the lattice with the effective scale factor applied.
func (P *Poscar) ScaledLattice() *v3.Matrix {
	out := v3.Zeros(3)
	out.Scale(P.EffectiveScaleFactor(), P.raw.LatticeVectors)
	return out
}

//FracPositions returns the positions in fractional coordinates. For
//Cartesian-stored data this pays a 3x3 inverse on each call.
func (P *Poscar) FracPositions() *v3.Matrix {
	pos := P.raw.Positions
	if pos.Tag == Fractional {
		return pos.Data.Clone()
	}
	//the scale cancels: unscaled carts against the unscaled lattice.
	out := v3.Zeros(pos.NVecs())
	out.Mul(pos.Data, v3.Inv3(P.raw.LatticeVectors))
	return out
}

//UnscaledCartPositions returns the Cartesian positions without the scale
//factor applied, i.e. in the raw lattice's units.
func (P *Poscar) UnscaledCartPositions() *v3.Matrix {
	pos := P.raw.Positions
	if pos.Tag == Cartesian {
		return pos.Data.Clone()
	}
	out := v3.Zeros(pos.NVecs())
	out.Mul(pos.Data, P.raw.LatticeVectors)
	return out
}

//ScaledCartPositions returns the Cartesian positions in absolute units,
//with the effective scale factor applied.
func (P *Poscar) ScaledCartPositions() *v3.Matrix {
	out := P.UnscaledCartPositions()
	out.Scale(P.EffectiveScaleFactor(), out)
	return out
}

//CartVelocities returns the velocities in Cartesian form, or nil when the
//structure has none. By domain convention the scale line is NOT applied to
//velocities: they live in the unscaled lattice's basis. This asymmetry
//with positions is deliberate.
func (P *Poscar) CartVelocities() *v3.Matrix {
	vel := P.raw.Velocities
	if vel == nil {
		return nil
	}
	if vel.Tag == Cartesian {
		return vel.Data.Clone()
	}
	out := v3.Zeros(vel.NVecs())
	out.Mul(vel.Data, P.raw.LatticeVectors)
	return out
}

//FracVelocities returns the velocities in fractional form, or nil when the
//structure has none. The scale line is not applied (see CartVelocities).
func (P *Poscar) FracVelocities() *v3.Matrix {
	vel := P.raw.Velocities
	if vel == nil {
		return nil
	}
	if vel.Tag == Fractional {
		return vel.Data.Clone()
	}
	out := v3.Zeros(vel.NVecs())
	out.Mul(vel.Data, v3.Inv3(P.raw.LatticeVectors))
	return out
}
