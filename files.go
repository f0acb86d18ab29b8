/*
 * files.go, part of goPoscar.
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
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

//Structure files get passed around compressed often enough that reading
//and writing .gz and .zst transparently is worth the two extra imports.
//The compression is picked by file extension, nothing else.

//ReadFile reads a POSCAR from a filesystem path, decompressing .gz and
//.zst/.zstd files transparently. The path appears in error messages.
func ReadFile(name string) (*Poscar, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	switch filepath.Ext(name) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return ReadNamed(r, name)
}

//WriteFile writes P to a filesystem path, compressing by extension the
//same way ReadFile decompresses. A nil format selects the round-trip
//numeric mode, as in WriteWith.
func WriteFile(name string, P *Poscar, format *FloatFormat) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var w io.WriteCloser
	switch filepath.Ext(name) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst", ".zstd":
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
		w = zw
	default:
		out := bufio.NewWriter(f)
		if err := P.WriteWith(out, format); err != nil {
			return err
		}
		return out.Flush()
	}
	if err := P.WriteWith(w, format); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
