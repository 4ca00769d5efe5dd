// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package jsp

import (
	"bytes"
	"fmt"
)

// Pos represents a byte offset within a File.
//
type Pos int

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File represents a source document held in memory. It handles file offset
// to line/column conversion.
//
type File struct {
	name  string
	src   []byte
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File. The File takes ownership of src.
//
func NewFile(name string, src []byte) *File {
	f := &File{
		name:  name,
		src:   src,
		lines: make([]Pos, 1, 1+bytes.Count(src, []byte{'\n'})),
	}
	for i, b := range src {
		if b == '\n' {
			f.lines = append(f.lines, Pos(i+1))
		}
	}
	return f
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Bytes returns the file content. The returned slice must not be modified.
//
func (f *File) Bytes() []byte {
	return f.src
}

// Len returns the size of the file in bytes.
//
func (f *File) Len() int {
	return len(f.src)
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset, not a rune offset.
//
func (f *File) Position(pos Pos) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	if i == 0 {
		return Position{f.name, 1, 1}
	}
	return Position{f.name, i, int(pos - f.lines[i-1] + 1)}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// Line returns the content of the line for position pos, without the line
// terminator.
//
func (f *File) Line(pos Pos) []byte {
	lp := f.LinePos(f.Position(pos).Line)
	if !lp.IsValid() || int(lp) > len(f.src) {
		return nil
	}
	l := f.src[lp:]
	if i := bytes.IndexByte(l, '\n'); i >= 0 {
		l = l[:i]
	}
	return bytes.TrimSuffix(l, []byte{'\r'})
}
