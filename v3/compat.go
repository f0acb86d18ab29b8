package v3

import (
	matrix "github.com/skelterjohn/go.matrix"
)

//Compatibility with the older go.matrix based goChem APIs. Coordinates read
//with those functions come as *matrix.DenseMatrix; these converters let such
//data be fed to, and recovered from, this package without manual copying.

//Den2Matrix copies the data in a go.matrix DenseMatrix with 3 columns into
//a newly allocated Matrix. It returns an error if A does not have 3 columns.
func Den2Matrix(A *matrix.DenseMatrix) (*Matrix, error) {
	if A.Cols() != 3 {
		return nil, Error{"go.matrix DenseMatrix must have 3 columns", []string{"Den2Matrix"}, true}
	}
	r := A.Rows()
	ret := Zeros(r)
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			ret.Set(i, j, A.Get(i, j))
		}
	}
	return ret, nil
}

//Matrix2Den copies the data in F into a newly allocated go.matrix
//DenseMatrix.
func Matrix2Den(F *Matrix) *matrix.DenseMatrix {
	r := F.NVecs()
	data := make([]float64, 0, 3*r)
	for i := 0; i < r; i++ {
		data = append(data, F.At(i, 0), F.At(i, 1), F.At(i, 2))
	}
	return matrix.MakeDenseMatrix(data, r, 3)
}
