/*
 * errors.go, part of goPoscar.
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

import "fmt"

//Error is the interface for errors that the goposcar packages implement.
//The Decorate method allows to add and retrieve info from the error,
//without changing its type or wrapping it around something else. Each call
//returns the "decoration" slice of strings resulting from the current call.
//If passed an empty string, it just returns the current value, without
//adding the empty string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

//Messages for parse-time errors. Lexical failures first, then structural
//ones. Tests and callers should compare against these rather than against
//literal strings.
const (
	InvalidNumber             = "invalid real number"
	InvalidInteger            = "invalid integer"
	InvalidLogical            = "invalid Fortran logical value"
	LeadingPlusNotAllowed     = "invalid digit for integer (a leading '+' is not allowed)"
	UnexpectedEndOfInput      = "unexpected end of input"
	ScaleCannotBeZero         = "scale cannot be zero"
	ScaleCannotBeNaN          = "scale cannot be NaN"
	TooManyScaleValues        = "too many values on scale line (expected just one)"
	InconsistentGroupCount    = "inconsistent number of counts"
	NoAtoms                   = "there must be at least one atom"
	UnexpectedTrailingContent = "expected end of file"
	ExpectedScale             = "expected scale"
	ExpectedLatticeComponent  = "expected three components for lattice vector"
	ExpectedSymbolOrCount     = "expected at least one symbol or count"
	ExpectedCoordinates       = "expected 3 coordinates"
	ExpectedDynamicsFlags     = "expected 3 boolean flags"
)

//ParseError is the error returned when a POSCAR text cannot be understood.
//It carries the position of the offending token whenever one is known.
//Line and column are kept 0-based internally, and displayed 1-based, as is
//the convention for error messages.
type ParseError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //0-based, -1 if unknown
	col      int    //0-based, -1 if unknown
	deco     []string
	critical bool
}

func (err ParseError) Error() string {
	name := err.filename
	if name == "" {
		name = "<input>"
	}
	switch {
	case err.line < 0:
		return fmt.Sprintf("%s: %s", name, err.message)
	case err.col < 0:
		return fmt.Sprintf("%s:%d: %s", name, err.line+1, err.message)
	default:
		return fmt.Sprintf("%s:%d:%d: %s", name, err.line+1, err.col+1, err.message)
	}
}

//Decorate adds new information to the error.
func (err ParseError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries
	//to alter the receiver, it should work, since err.deco is a slice, and
	//hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Message returns the failure classification, one of the parse-error
//message constants.
func (err ParseError) Message() string { return err.message }

//FileName returns the file the failing input was associated with, or an
//empty string for an unnamed source.
func (err ParseError) FileName() string { return err.filename }

//Line returns the 0-based line of the failure, or -1 if unknown.
func (err ParseError) Line() int { return err.line }

//Col returns the 0-based column of the failure, or -1 if unknown.
func (err ParseError) Col() int { return err.col }

//Critical returns true if the error is critical, false otherwise.
func (err ParseError) Critical() bool { return err.critical }

//Messages for validation errors.
const (
	NewlineInComment      = "the comment may not contain a newline"
	BadScaleLine          = "the scale value must be positive"
	InconsistentNumGroups = "inconsistent number of atom types"
	NegativeCount         = "group counts may not be negative"
	InvalidSymbol         = "invalid atom symbol"
	WrongLength           = "member is wrong length"
)

//ValidationError is returned by RawPoscar.Validate when an invariant does
//not hold. Only the first violated invariant is reported.
type ValidationError struct {
	message  string
	field    string //for WrongLength, the offending member.
	expected int    //for WrongLength, the length the member should have.
	symbol   string //for InvalidSymbol, the offending symbol, when there is a specific one.
	deco     []string
}

func (err ValidationError) Error() string {
	switch err.message {
	case WrongLength:
		return fmt.Sprintf("member '%s' is wrong length (should be %d)", err.field, err.expected)
	case InvalidSymbol:
		if err.symbol != "" {
			return fmt.Sprintf("invalid atom symbol: %q", err.symbol)
		}
		return "invalid atom symbol"
	}
	return err.message
}

//Decorate adds new information to the error.
func (err ValidationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Message returns the failure classification, one of the validation-error
//message constants.
func (err ValidationError) Message() string { return err.message }

//Field returns the offending member for a WrongLength error, and an empty
//string otherwise.
func (err ValidationError) Field() string { return err.field }

//Expected returns the length the offending member should have had, for a
//WrongLength error.
func (err ValidationError) Expected() int { return err.expected }

//Symbol returns the offending symbol for an InvalidSymbol error, or an
//empty string when the failure concerns the symbols line as a whole.
func (err ValidationError) Symbol() string { return err.symbol }

//errDecorate is a helper function that asserts that the error implements
//Error and decorates it with the caller's name before returning it.
//If used with a non-goposcar error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. Panics are reserved for programmer
//errors (contract violations), for which no meaningful structure exists to
//report an error about.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrMissingLattice   = PanicMsg("goPoscar: missing required field 'lattice'")
	ErrMissingPositions = PanicMsg("goPoscar: missing required field 'positions'")
	ErrUnknownCount     = PanicMsg("goPoscar: cannot determine the number of atoms")
	ErrConsumedBuilder  = PanicMsg("goPoscar: the Builder was already consumed")
	ErrParserInvariant  = PanicMsg("goPoscar: an invariant was not checked during parsing (this is a bug)")
)
