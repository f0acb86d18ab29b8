/*
 * scan.go, part of goPoscar.
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
	"bufio"
	"io"
)

//Every error in this package must be traceable to an exact line and
//column, which is why tokens are never passed around as plain strings:
//each line and word read carries its absolute position in the input.

//lines hands out the input one line at a time, with position info attached.
type lines struct {
	name   string //source identifier for errors; empty for in-memory input.
	cur    int    //0-based index of the next line to hand out.
	scn    *bufio.Scanner
	peeked *spanned //one-line pushback for section-boundary decisions.
}

func newLines(r io.Reader, name string) *lines {
	return &lines{name: name, scn: bufio.NewScanner(r)}
}

//next returns the next line of the input, or a ParseError with
//UnexpectedEndOfInput when no more lines exist but one was required.
func (L *lines) next() (*spanned, error) {
	if L.peeked != nil {
		sp := L.peeked
		L.peeked = nil
		return sp, nil
	}
	if !L.scn.Scan() {
		if err := L.scn.Err(); err != nil {
			return nil, ParseError{message: err.Error(), filename: L.name, line: L.cur, col: -1, critical: true}
		}
		return nil, ParseError{message: UnexpectedEndOfInput, filename: L.name, line: L.cur, col: -1, critical: true}
	}
	sp := &spanned{name: L.name, line: L.cur, col: 0, s: L.scn.Text()}
	L.cur++
	return sp, nil
}

//peek returns the next line without consuming it, or nil at the end of the
//input. An underlying read error is surfaced on the following next call.
func (L *lines) peek() *spanned {
	if L.peeked == nil {
		sp, err := L.next()
		if err != nil {
			return nil
		}
		L.peeked = sp
	}
	return L.peeked
}

//spanned is a line of text carrying its position in the input.
type spanned struct {
	name string
	line int //0-based.
	col  int //0-based column of the first character.
	s    string
}

func (sp *spanned) str() string { return sp.s }

//controlChar returns the first character of the line verbatim, not
//trimmed. Some flag lines are recognized by an un-trimmed leading
//character: a leading space is meaningfully different from no characters
//at all. The second return is false for an empty line.
func (sp *spanned) controlChar() (byte, bool) {
	if len(sp.s) == 0 {
		return 0, false
	}
	return sp.s[0], true
}

//error builds a ParseError at this line, with no specific column.
func (sp *spanned) error(msg string) ParseError {
	return ParseError{message: msg, filename: sp.name, line: sp.line, col: -1, critical: true}
}

//Word separators are runs of spaces and tabs only, not arbitrary Unicode
//whitespace: that is what the format (and Fortran list-directed input)
//means by "blank".
func isBlank(b byte) bool { return b == ' ' || b == '\t' }

//words splits the line into its maximal runs of non-blank characters, each
//carrying its absolute column offset.
func (sp *spanned) words() []*spanned {
	var out []*spanned
	s := sp.s
	i := 0
	for i < len(s) {
		for i < len(s) && isBlank(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && !isBlank(s[i]) {
			i++
		}
		out = append(out, &spanned{name: sp.name, line: sp.line, col: sp.col + start, s: s[start:i]})
	}
	return out
}

//wordIter walks a line's words one at a time, producing a positioned error
//when a word is demanded but the line has run out.
type wordIter struct {
	src  *spanned
	ws   []*spanned
	next int
}

func (sp *spanned) wordIter() *wordIter {
	return &wordIter{src: sp, ws: sp.words()}
}

func (it *wordIter) nextWord() (*spanned, bool) {
	if it.next >= len(it.ws) {
		return nil, false
	}
	w := it.ws[it.next]
	it.next++
	return w, true
}

func (it *wordIter) nextOrErr(msg string) (*spanned, error) {
	w, ok := it.nextWord()
	if !ok {
		return nil, it.src.error(msg)
	}
	return w, nil
}

//Typed parses: each wraps a primitive-parser failure with this word's span.

func (sp *spanned) parseReal() (float64, error) {
	v, msg := parseReal(sp.s)
	if msg != "" {
		return 0, ParseError{message: msg, filename: sp.name, line: sp.line, col: sp.col, critical: true}
	}
	return v, nil
}

func (sp *spanned) parseUnsigned() (int, error) {
	v, msg := parseUnsigned(sp.s)
	if msg != "" {
		return 0, ParseError{message: msg, filename: sp.name, line: sp.line, col: sp.col, critical: true}
	}
	return v, nil
}

func (sp *spanned) parseLogical() (bool, error) {
	v, msg := parseLogical(sp.s)
	if msg != "" {
		return false, ParseError{message: msg, filename: sp.name, line: sp.line, col: sp.col, critical: true}
	}
	return v, nil
}

//isWhitespaceOnly reports whether the line contains nothing but blanks.
func (sp *spanned) isWhitespaceOnly() bool {
	for i := 0; i < len(sp.s); i++ {
		if !isBlank(sp.s[i]) {
			return false
		}
	}
	return true
}
