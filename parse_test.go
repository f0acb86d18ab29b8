package poscar

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubicDiamond = `cubic diamond
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

func mustParse(t *testing.T, s string) *Poscar {
	t.Helper()
	p, err := Read(strings.NewReader(s))
	require.NoError(t, err)
	return p
}

func parseErrOf(t *testing.T, s string) ParseError {
	t.Helper()
	_, err := Read(strings.NewReader(s))
	require.Error(t, err)
	var pe ParseError
	require.True(t, errors.As(err, &pe), "expected a ParseError, got %T: %v", err, err)
	return pe
}

func TestParseCubicDiamond(t *testing.T) {
	p := mustParse(t, cubicDiamond)
	raw := p.Raw()

	assert.Equal(t, "cubic diamond", raw.Comment)
	assert.Equal(t, Factor(3.7), raw.Scale)
	assert.Equal(t, []string{"C"}, raw.GroupSymbols)
	assert.Equal(t, []int{2}, raw.GroupCounts)
	assert.Equal(t, Fractional, raw.Positions.Tag)

	wantLat := [9]float64{0.5, 0.5, 0.0, 0.0, 0.5, 0.5, 0.5, 0.0, 0.5}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, wantLat[3*i+j], raw.LatticeVectors.At(i, j))
		}
	}
	require.Equal(t, 2, raw.Positions.NVecs())
	assert.Equal(t, 0.25, raw.Positions.Data.At(1, 0))
	assert.Nil(t, raw.Velocities)
	assert.Nil(t, raw.Dynamics)
}

func TestParseScaleLine(t *testing.T) {
	t.Run("negative is a volume", func(t *testing.T) {
		p := mustParse(t, strings.Replace(cubicDiamond, "  3.7\n", "  -10.0\n", 1))
		assert.Equal(t, Volume(10.0), p.ScaleLine())
	})
	t.Run("zero", func(t *testing.T) {
		pe := parseErrOf(t, strings.Replace(cubicDiamond, "  3.7\n", "  0.0\n", 1))
		assert.Equal(t, ScaleCannotBeZero, pe.Message())
		assert.Equal(t, 1, pe.Line())
		assert.Equal(t, 2, pe.Col())
	})
	t.Run("nan", func(t *testing.T) {
		pe := parseErrOf(t, strings.Replace(cubicDiamond, "  3.7\n", "  NaN\n", 1))
		assert.Equal(t, ScaleCannotBeNaN, pe.Message())
	})
	t.Run("two reals", func(t *testing.T) {
		pe := parseErrOf(t, strings.Replace(cubicDiamond, "  3.7\n", "  1.0 2.0\n", 1))
		assert.Equal(t, TooManyScaleValues, pe.Message())
		assert.Equal(t, 1, pe.Line())
		assert.Equal(t, 6, pe.Col())
	})
	t.Run("trailing comment is fine", func(t *testing.T) {
		p := mustParse(t, strings.Replace(cubicDiamond, "  3.7\n", "  3.7 ! scale\n", 1))
		assert.Equal(t, Factor(3.7), p.ScaleLine())
	})
	t.Run("not a number", func(t *testing.T) {
		pe := parseErrOf(t, strings.Replace(cubicDiamond, "  3.7\n", "  huge\n", 1))
		assert.Equal(t, InvalidNumber, pe.Message())
	})
}

func TestParseMissingSymbolsLine(t *testing.T) {
	in := `comment
  1.0
    1.0 0.0 0.0
    0.0 1.0 0.0
    0.0 0.0 1.0
   2
Direct
  0.0 0.0 0.0
  0.5 0.5 0.5
`
	p := mustParse(t, in)
	raw := p.Raw()
	assert.Nil(t, raw.GroupSymbols)
	assert.Equal(t, []int{2}, raw.GroupCounts)
}

func TestParseCountsTrailingComment(t *testing.T) {
	in := `comment
  1.0
    1.0 0.0 0.0
    0.0 1.0 0.0
    0.0 0.0 1.0
   1  2 ! three atoms total
Direct
  0.0 0.0 0.0
  0.5 0.5 0.5
  0.5 0.0 0.5
`
	p := mustParse(t, in)
	assert.Equal(t, []int{1, 2}, p.Raw().GroupCounts)
	//a word that merely starts like a count is still a comment breaker
	in2 := strings.Replace(in, " ! three atoms total", " 2x", 1)
	p = mustParse(t, in2)
	assert.Equal(t, []int{1, 2}, p.Raw().GroupCounts)
}

func TestParseInconsistentGroupCount(t *testing.T) {
	pe := parseErrOf(t, strings.Replace(cubicDiamond, "   C\n", "   C Si\n", 1))
	assert.Equal(t, InconsistentGroupCount, pe.Message())
}

func TestParseNoAtoms(t *testing.T) {
	in := `comment
  1.0
    1.0 0.0 0.0
    0.0 1.0 0.0
    0.0 0.0 1.0
   0  0
Direct
`
	pe := parseErrOf(t, in)
	assert.Equal(t, NoAtoms, pe.Message())
	assert.Equal(t, 5, pe.Line())
}

func TestParseCoordinateFlags(t *testing.T) {
	for _, flag := range []string{"Cartesian", "cartesian", "K-points go here", "c whatever"} {
		p := mustParse(t, strings.Replace(cubicDiamond, "Direct\n", flag+"\n", 1))
		assert.Equal(t, Cartesian, p.PositionsTag(), "flag %q", flag)
	}
	for _, flag := range []string{"Direct", "direct", "", "anything else", "  Cartesian"} {
		p := mustParse(t, strings.Replace(cubicDiamond, "Direct\n", flag+"\n", 1))
		assert.Equal(t, Fractional, p.PositionsTag(), "flag %q", flag)
	}
}

func TestParseSelectiveDynamics(t *testing.T) {
	in := `comment
  1.0
    1.0 0.0 0.0
    0.0 1.0 0.0
    0.0 0.0 1.0
   2
Selective dynamics
Cartesian
  0.0 0.0 0.0 T T F
  0.5 0.5 0.5 .FALSE. .TRUE. t
`
	p := mustParse(t, in)
	raw := p.Raw()
	require.NotNil(t, raw.Dynamics)
	assert.Equal(t, [][3]bool{{true, true, false}, {false, true, true}}, raw.Dynamics)
	assert.Equal(t, Cartesian, raw.Positions.Tag)

	t.Run("bad flag", func(t *testing.T) {
		pe := parseErrOf(t, strings.Replace(in, "T T F", "T T Q", 1))
		assert.Equal(t, InvalidLogical, pe.Message())
		assert.Equal(t, 8, pe.Line())
		assert.Equal(t, 18, pe.Col())
	})
	t.Run("missing flags", func(t *testing.T) {
		pe := parseErrOf(t, strings.Replace(in, " T T F", "", 1))
		assert.Equal(t, ExpectedDynamicsFlags, pe.Message())
	})
}

func TestParseVelocities(t *testing.T) {
	base := `comment
  1.0
    1.0 0.0 0.0
    0.0 1.0 0.0
    0.0 0.0 1.0
   1
Direct
  0.0 0.0 0.0
`
	t.Run("absent", func(t *testing.T) {
		p := mustParse(t, base)
		assert.Nil(t, p.Raw().Velocities)
	})
	t.Run("blank header means fractional", func(t *testing.T) {
		p := mustParse(t, base+"\n  0.1 0.2 0.3\n")
		vel := p.Raw().Velocities
		require.NotNil(t, vel)
		assert.Equal(t, Fractional, vel.Tag)
		assert.Equal(t, 0.2, vel.Data.At(0, 1))
	})
	t.Run("cartesian header", func(t *testing.T) {
		p := mustParse(t, base+"Cartesian\n  0.1 0.2 0.3\n")
		vel := p.Raw().Velocities
		require.NotNil(t, vel)
		assert.Equal(t, Cartesian, vel.Tag)
	})
	t.Run("truncated block", func(t *testing.T) {
		pe := parseErrOf(t, base+"Cartesian\n")
		assert.Equal(t, UnexpectedEndOfInput, pe.Message())
	})
}

//Exhaustively matches each body with every sequence of trailing blank
//lines up to length 3, trying to trip up the velocity-block detection.
func TestParseTrailingBlankLines(t *testing.T) {
	bodies := []string{
		//ends after positions
		"comment\n  1.0\n    1.0 0.0 0.0\n    0.0 1.0 0.0\n    0.0 0.0 1.0\n   1\nDirect\n  0.0 0.0 0.0\n",
		//ends after velocities
		"comment\n  1.0\n    1.0 0.0 0.0\n    0.0 1.0 0.0\n    0.0 0.0 1.0\n   1\nDirect\n  0.0 0.0 0.0\n\n  0.0 0.0 0.0\n",
	}
	blanks := []string{"", "  \t \t "}

	var perms func(n int) [][]string
	perms = func(n int) [][]string {
		if n == 0 {
			return [][]string{{}}
		}
		var out [][]string
		for _, p := range perms(n - 1) {
			for _, b := range blanks {
				out = append(out, append(append([]string(nil), p...), b))
			}
		}
		return out
	}

	for _, body := range bodies {
		for n := 0; n <= 3; n++ {
			for _, tail := range perms(n) {
				in := body
				for _, b := range tail {
					in += b + "\n"
				}
				p, err := Read(strings.NewReader(in))
				require.NoError(t, err, "input: %q", in)
				assert.Equal(t, body, p.String(), "input: %q", in)
			}
		}
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	//a blank line and then non-numeric junk is trailing content, not a
	//fractional-velocities header followed by broken coordinates.
	pe := parseErrOf(t, cubicDiamond+"\nwat 1.0 2.0 3.0\nmore wat\n")
	assert.Equal(t, UnexpectedTrailingContent, pe.Message())
	assert.Equal(t, 11, pe.Line())

	pe = parseErrOf(t, cubicDiamond+"\n# a comment someone left\n")
	assert.Equal(t, UnexpectedTrailingContent, pe.Message())

	pe = parseErrOf(t, cubicDiamond+"wat\n")
	//without the blank line, a non-blank line is a velocity header and the
	//junk after it is judged as coordinates.
	assert.Equal(t, UnexpectedEndOfInput, pe.Message())
}

//readErr yields its data and then fails, the way a broken pipe would.
type readErr struct {
	data []byte
	err  error
}

func (r *readErr) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestParseReaderFailure(t *testing.T) {
	broken := errors.New("read: connection reset")
	_, err := Read(&readErr{data: []byte(cubicDiamond), err: broken})
	require.Error(t, err)
	var pe ParseError
	require.True(t, errors.As(err, &pe), "expected a ParseError, got %T: %v", err, err)
	assert.Equal(t, broken.Error(), pe.Message())
	assert.True(t, pe.Critical())
}

func TestParseUnexpectedEnd(t *testing.T) {
	pe := parseErrOf(t, "only a comment\n  1.0\n")
	assert.Equal(t, UnexpectedEndOfInput, pe.Message())
	assert.Equal(t, 2, pe.Line())
	assert.Equal(t, "<input>:3: unexpected end of input", pe.Error())
}

func TestParseNamedSource(t *testing.T) {
	_, err := ReadNamed(strings.NewReader("x\n  0.0\n"), "str.vasp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "str.vasp:2:3: ")
}

func TestParseLatticeErrors(t *testing.T) {
	t.Run("short row", func(t *testing.T) {
		pe := parseErrOf(t, strings.Replace(cubicDiamond, "    0.0 0.5 0.5\n", "    0.0 0.5\n", 1))
		assert.Equal(t, ExpectedLatticeComponent, pe.Message())
		assert.Equal(t, 3, pe.Line())
	})
	t.Run("trailing words ignored", func(t *testing.T) {
		p := mustParse(t, strings.Replace(cubicDiamond, "    0.0 0.5 0.5\n", "    0.0 0.5 0.5 a2\n", 1))
		assert.Equal(t, 0.5, p.Raw().LatticeVectors.At(1, 2))
	})
}
