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

/*Package v3 implements a Matrix type representing a row-major set of vectors
in 3D space (i.e. a Nx3 matrix). It is based on gonum's (gonum.org) Dense type,
with some additional restrictions because of the fixed number of columns, and
with the small set of 3x3 operations needed for crystal-lattice work: the
determinant via the scalar triple product, the adjugate-based inverse, and
row-vector times matrix products. A 3x3 lattice is simply a Matrix with 3
vectors, each row being one lattice vector.
*/
package v3
