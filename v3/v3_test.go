package v3

import (
	"math"
	"testing"

	matrix "github.com/skelterjohn/go.matrix"
)

//An integer matrix with determinant exactly 1, so its inverse is the
//all-integer adjugate and every check here can demand exact equality.
var uniData = []float64{2, -1, 2, -1, 3, -3, 1, 1, 0}
var uniInv = []float64{3, 2, -3, -3, -2, 4, -4, -3, 5}

func unimodular(Te *testing.T) *Matrix {
	A, err := NewMatrix(append([]float64(nil), uniData...))
	if err != nil {
		Te.Fatal(err)
	}
	return A
}

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if A.At(1, 2) != 6 {
		Te.Errorf("wrong element: %v", A.At(1, 2))
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("a slice of length 4 should have been rejected")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("an empty slice should have been rejected")
	}
}

func TestDet(Te *testing.T) {
	A := unimodular(Te)
	if d := Det(A); d != 1.0 {
		Te.Errorf("determinant should be exactly 1, got %v", d)
	}
	B := Zeros(3)
	B.Scale(-2.0, A)
	if d := Det(B); d != -8.0 {
		Te.Errorf("determinant should scale with the cube: got %v", d)
	}
}

func TestInv3(Te *testing.T) {
	A := unimodular(Te)
	inv := Inv3(A)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got, want := inv.At(i, j), uniInv[3*i+j]; got != want {
				Te.Errorf("inverse element (%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
	//A times its inverse must come back as the exact identity
	prod := Zeros(3)
	prod.Mul(A, inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if prod.At(i, j) != want {
				Te.Errorf("product element (%d,%d): got %v, want %v", i, j, prod.At(i, j), want)
			}
		}
	}
	//scaling the input by -2 scales the inverse by -1/2
	B := Zeros(3)
	B.Scale(-2.0, A)
	invB := Inv3(B)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got, want := invB.At(i, j), -0.5*uniInv[3*i+j]; got != want {
				Te.Errorf("scaled inverse element (%d,%d): got %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestInv3Singular(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0, 2, 0, 0, 0, 0, 1})
	if d := Det(A); d != 0 {
		Te.Fatalf("test matrix should be singular, det %v", d)
	}
	//no panic, no error: the caller asked for garbage and gets NaN/Inf
	inv := Inv3(A)
	if !math.IsNaN(inv.At(0, 0)) && !math.IsInf(inv.At(0, 0), 0) {
		Te.Errorf("inverse of a singular matrix should be NaN/Inf, got %v", inv.At(0, 0))
	}
}

func TestMul(Te *testing.T) {
	A := unimodular(Te)
	f, _ := NewMatrix([]float64{0.25, 0.5, 0.75, 0, 1, 0})
	out := Zeros(2)
	out.Mul(f, A)
	want := []float64{0.75, 2.0, -1.0, -1, 3, -3}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if got := out.At(i, j); got != want[3*i+j] {
				Te.Errorf("product element (%d,%d): got %v, want %v", i, j, got, want[3*i+j])
			}
		}
	}
	//the receiver may alias an argument
	f.Mul(f, A)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if got := f.At(i, j); got != want[3*i+j] {
				Te.Errorf("aliased product element (%d,%d): got %v, want %v", i, j, got, want[3*i+j])
			}
		}
	}
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Errorf("x cross y should be z, got %v %v %v", z.At(0, 0), z.At(0, 1), z.At(0, 2))
	}
	if d := Dot(z, z); d != 1.0 {
		Te.Errorf("z dot z should be 1, got %v", d)
	}
	if d := Dot(x, y); d != 0.0 {
		Te.Errorf("x dot y should be 0, got %v", d)
	}
}

func TestViewsAndClones(Te *testing.T) {
	A := unimodular(Te)
	v := A.VecView(1)
	v.Set(0, 0, 42.0)
	if A.At(1, 0) != 42.0 {
		Te.Error("changes in a view should be reflected in the viewed matrix")
	}
	C := A.Clone()
	C.Set(0, 0, -7.0)
	if A.At(0, 0) == -7.0 {
		Te.Error("changes in a clone should NOT be reflected in the original")
	}
	row := A.Row(nil, 2)
	if len(row) != 3 || row[0] != 1 || row[1] != 1 || row[2] != 0 {
		Te.Errorf("wrong row: %v", row)
	}
}

func TestGoMatrixCompat(Te *testing.T) {
	A := unimodular(Te)
	den := Matrix2Den(A)
	if den.Rows() != 3 || den.Cols() != 3 {
		Te.Fatalf("wrong go.matrix dimensions: %dx%d", den.Rows(), den.Cols())
	}
	back, err := Den2Matrix(den)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if back.At(i, j) != A.At(i, j) {
				Te.Errorf("round trip element (%d,%d): got %v, want %v", i, j, back.At(i, j), A.At(i, j))
			}
		}
	}
	if _, err := Den2Matrix(matrix.Zeros(2, 4)); err == nil {
		Te.Error("a 2x4 go.matrix should have been rejected")
	}
}
