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

// EOF is the lookahead returned by a Cursor at the end of the input.
//
const EOF rune = -1

// A Cursor is the host's view of the input at the current lexing position.
//
// Scanner.Scan reads runes with Lookahead and Advance. Since some scanners
// read past the end of the token they recognize, the end of a token is set
// independently with MarkEnd. If MarkEnd is not called, the token ends at the
// cursor position when Scan returns.
//
type Cursor interface {
	// Lookahead returns the current rune, or EOF.
	Lookahead() rune
	// Advance moves to the next rune. If skip is true, the current rune is
	// not part of the token and the token start moves past it.
	Advance(skip bool)
	// MarkEnd sets the end of the token at the current position.
	MarkEnd()
	// Save returns a snapshot of the cursor position and marks.
	Save() Checkpoint
	// Restore resets the cursor to a snapshot returned by Save during the
	// same call to Scan.
	Restore(Checkpoint)
}

// A Checkpoint is a Cursor snapshot.
//
type Checkpoint struct {
	Offset int // offset of the lookahead rune
	Start  int // token start
	End    int // marked token end, -1 if not marked
}
