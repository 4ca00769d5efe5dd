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

import "unicode/utf8"

// Source is a Cursor over a File.
//
// Hosts call Begin before each call to Scanner.Scan, then Commit if a token
// was produced or Reject otherwise.
//
type Source struct {
	f      *File
	src    []byte
	pos    int  // offset of r
	r      rune // lookahead
	w      int  // width of r
	origin int  // offset at Begin
	start  int  // token start
	end    int  // marked end, -1 if unmarked
}

// NewSource returns a Source positioned at the start of f.
//
func NewSource(f *File) *Source {
	s := &Source{f: f, src: f.Bytes()}
	s.Seek(0)
	return s
}

// File returns the File read by s.
//
func (s *Source) File() *File {
	return s.f
}

// Seek moves to the given byte offset, which is clamped to the file bounds,
// and clears the token marks.
//
func (s *Source) Seek(offset Pos) {
	o := int(offset)
	switch {
	case o < 0:
		o = 0
	case o > len(s.src):
		o = len(s.src)
	}
	s.pos = o
	s.decode()
	s.origin, s.start, s.end = o, o, -1
}

// Offset returns the offset of the lookahead rune.
//
func (s *Source) Offset() Pos {
	return Pos(s.pos)
}

// Begin starts a new token at the current position.
//
func (s *Source) Begin() {
	s.origin, s.start, s.end = s.pos, s.pos, -1
}

// Commit ends the current token and moves the cursor to its end. It returns
// the token's start and end offsets.
//
func (s *Source) Commit() (start, end Pos) {
	e := s.end
	if e < 0 {
		e = s.pos
	}
	start = Pos(s.start)
	if start > Pos(e) {
		start = Pos(e)
	}
	s.Seek(Pos(e))
	return start, Pos(e)
}

// Reject moves the cursor back to where Begin was last called.
//
func (s *Source) Reject() {
	s.Seek(Pos(s.origin))
}

// Lookahead implements Cursor.
//
func (s *Source) Lookahead() rune {
	return s.r
}

// Advance implements Cursor.
//
func (s *Source) Advance(skip bool) {
	if s.r == EOF {
		return
	}
	s.pos += s.w
	if skip {
		s.start = s.pos
	}
	s.decode()
}

// MarkEnd implements Cursor.
//
func (s *Source) MarkEnd() {
	s.end = s.pos
}

// Save implements Cursor.
//
func (s *Source) Save() Checkpoint {
	return Checkpoint{Offset: s.pos, Start: s.start, End: s.end}
}

// Restore implements Cursor.
//
func (s *Source) Restore(c Checkpoint) {
	s.pos, s.start, s.end = c.Offset, c.Start, c.End
	s.decode()
}

// HasPrefix returns true if the input at the current position starts with p.
//
func (s *Source) HasPrefix(p string) bool {
	return len(s.src)-s.pos >= len(p) && string(s.src[s.pos:s.pos+len(p)]) == p
}

func (s *Source) decode() {
	if s.pos >= len(s.src) {
		s.r, s.w = EOF, 0
		return
	}
	if b := s.src[s.pos]; b < utf8.RuneSelf {
		s.r, s.w = rune(b), 1
		return
	}
	s.r, s.w = utf8.DecodeRune(s.src[s.pos:])
}
