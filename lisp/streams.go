/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lisp

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// slurpFile reads a whole file as a string. Sources compressed with gzip,
// xz or lz4 are decompressed transparently by extension. Any failure (open,
// decode, read) yields nil; the file handle is released on every path.
func slurpFile(name string) Value {
	f, err := os.Open(name)
	if err != nil {
		return NewNil()
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return NewNil()
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(name, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return NewNil()
		}
		r = xr
	case strings.HasSuffix(name, ".lz4"):
		r = lz4.NewReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return NewNil()
	}
	return NewString(string(data))
}

func init_streams() {
	DeclareTitle("Streams")

	Declare(&Globalenv, &Declaration{
		"slurp", "reads a file's contents as a string; .gz, .xz and .lz4 sources are decompressed. Returns nil on I/O failure",
		1, 1,
		[]DeclarationParameter{
			{"filename", "string", "path of the file to read"},
		}, "string",
		func(a ...Value) Value {
			if !a[0].IsString() {
				panic("slurp requires a string")
			}
			return slurpFile(a[0].Text())
		},
	})
}
