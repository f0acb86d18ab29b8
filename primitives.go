package poscar

import (
	"strconv"
	"strings"
)

//Primitive token parsers. These work on bare strings and return a message
//constant (empty on success) instead of an error value; the scanner layer
//wraps failures with position info.

//parseReal accepts standard decimal and exponential floating-point syntax,
//including inf and NaN. Go's strconv is more permissive than the format
//(hex floats, digit-separating underscores), so those are rejected here.
func parseReal(s string) (float64, string) {
	if strings.ContainsAny(s, "xXpP_") {
		return 0, InvalidNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, InvalidNumber
	}
	return v, ""
}

//parseUnsigned accepts decimal digits only. A leading '+' is explicitly
//rejected, unlike in generic integer parsing.
func parseUnsigned(s string) (int, string) {
	if strings.HasPrefix(s, "+") {
		return 0, LeadingPlusNotAllowed
	}
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, InvalidInteger
	}
	return int(v), ""
}

//parseLogical parses the way Fortran's read(*) does when reading into a
//LOGICAL: an optional leading dot, then a single case-insensitive T or F.
//Anything after is ignored, so .TRUE., .T, t and Tblah are all fine.
func parseLogical(s string) (bool, string) {
	b := s
	if strings.HasPrefix(b, ".") {
		b = b[1:]
	}
	if len(b) == 0 {
		return false, InvalidLogical
	}
	switch b[0] {
	case 't', 'T':
		return true, ""
	case 'f', 'F':
		return false, ""
	}
	return false, InvalidLogical
}
