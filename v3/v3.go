/*
 * v3.go, part of goPoscar.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is the main container, a set of row vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e.
//the cartesian (or fractional) coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense into a Matrix. It panics if A does not
//have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows < 1 {
		return nil, Error{"Input slice must contain at least one vector", []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Row fills dst with the ith vector of F and returns it. If dst is nil a
//new slice is allocated.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	if dst == nil {
		dst = make([]float64, 3)
	}
	mat.Row(dst, i, F.Dense)
	return dst
}

//Clone returns a fresh copy of F sharing no data with it.
func (F *Matrix) Clone() *Matrix {
	r := F.NVecs()
	ret := Zeros(r)
	ret.Dense.Copy(F.Dense)
	return ret
}

//Mul wraps mat.Mul to take care of the case when one of the arguments is
//also the receiver. Since the receiver is a Matrix, the gonum function
//could check A (mat.Dense) vs F (Matrix) and it would not know that
//internally F.Dense==A, hence the need for this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if F == A {
		A := A.(*Matrix)
		F.Dense.Mul(A.Dense, B)
	} else if F == B {
		B := B.(*Matrix)
		F.Dense.Mul(A, B.Dense)
	} else {
		F.Dense.Mul(A, B)
	}
}

//Scale multiplies every element of A by v, putting the result in the receiver.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Dot returns the dot product between the first vectors of a and b.
func Dot(a, b *Matrix) float64 {
	return a.At(0, 0)*b.At(0, 0) + a.At(0, 1)*b.At(0, 1) + a.At(0, 2)*b.At(0, 2)
}

//Cross returns the cross product between the first vectors of a and b
//as a new 1x3 Matrix.
func Cross(a, b *Matrix) *Matrix {
	c := Zeros(1)
	c.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	c.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	c.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
	return c
}

//Det returns the determinant of a 3x3 matrix via the scalar triple product.
//The result is exact under IEEE-754 for integer-valued inputs. Panics if the
//matrix is not 3x3.
func Det(A *Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return Dot(Cross(A.VecView(0), A.VecView(1)), A.VecView(2))
}

//Inv3 returns the inverse of a 3x3 matrix, computed with the
//cofactor/adjugate method. The determinant is not checked: a singular
//input silently produces Inf/NaN entries. Callers who need protection
//must test Det themselves. Panics if the matrix is not 3x3.
//gonum's general Inverse is not used here as it refuses singular input,
//and an LU factorization is overkill for a fixed 3x3.
func Inv3(A *Matrix) *Matrix {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	cof := Zeros(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := A.At((i+1)%3, (j+1)%3)*A.At((i+2)%3, (j+2)%3) -
				A.At((i+1)%3, (j+2)%3)*A.At((i+2)%3, (j+1)%3)
			cof.Set(i, j, v)
		}
	}
	det := A.At(0, 0)*cof.At(0, 0) + A.At(0, 1)*cof.At(0, 1) + A.At(0, 2)*cof.At(0, 2)
	inv := Zeros(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv.Set(i, j, cof.At(j, i)/det)
		}
	}
	return inv
}

//Error is the v3 error type. The same as the goposcar Error but kept
//separate to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goPoscar/v3: A Matrix should have 3 columns")
	ErrDeterminant  = PanicMsg("goPoscar/v3: Determinants and inverses are only available for 3x3 matrices")
	ErrShape        = PanicMsg("goPoscar/v3: Dimension mismatch")
)
