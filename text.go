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

import "github.com/db47h/jsp/token"

// scanText reads character data up to the next markup: a '<', an expression
// opener "${" or "{{", or EOF. Inside an interpolation a "}}" ends the text
// and the run is reported as InterpolationText.
//
// On failure, the cursor is restored to its position at entry.
//
func (s *Scanner) scanText(c Cursor, valid token.Set, raw bool) (token.Token, bool) {
	start := c.Save()
	hasText := false
	el := valid.Has(token.ELExpression) && !raw
	interp := valid.Has(token.InterpolationText)

loop:
	for ; ; hasText = true {
		switch c.Lookahead() {
		case EOF, '<':
			c.MarkEnd()
			break loop
		case '$':
			c.MarkEnd()
			if el && peek(c, '{') {
				break loop
			}
		case '{':
			c.MarkEnd()
			if peek(c, '{') {
				break loop
			}
		case '}':
			c.MarkEnd()
			if interp && peek(c, '}') {
				if hasText {
					return token.InterpolationText, true
				}
				c.Restore(start)
				return 0, false
			}
		}
		c.Advance(false)
	}

	if hasText && valid.Has(token.TextFragment) {
		return token.TextFragment, true
	}
	c.Restore(start)
	return 0, false
}

// scanRawText reads the content of a script or style element up to its
// end tag. The end tag is matched case insensitively and is not part of the
// token.
//
func (s *Scanner) scanRawText(c Cursor) (token.Token, bool) {
	t, ok := s.tags.Top()
	if !ok || !t.IsRawText() {
		return 0, false
	}
	closer := t.RawTextCloser()

	c.MarkEnd()
	content := false
	i := 0
	for r := c.Lookahead(); r != EOF; r = c.Lookahead() {
		if upperASCII(r) == rune(closer[i]) {
			i++
			if i == len(closer) {
				break
			}
			c.Advance(false)
			continue
		}
		if i > 0 && r == '<' {
			// the partial match is content, a new one starts here.
			c.MarkEnd()
			content = true
			i = 1
			c.Advance(false)
			continue
		}
		i = 0
		c.Advance(false)
		c.MarkEnd()
		content = true
	}
	if !content {
		return 0, false
	}
	return token.RawText, true
}

func upperASCII(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
