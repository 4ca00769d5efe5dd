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

// scanEmbedded scans a JSP construct. The cursor is just past "<%". The
// directive start only covers "<%@"; other constructs extend up to and
// including their closing "%>" or "--%>".
//
func scanEmbedded(c Cursor, valid token.Set) (token.Token, bool) {
	var t token.Token
	switch c.Lookahead() {
	case '@':
		t = token.JSPDirectiveStart
	case '=':
		t = token.JSPExpression
	case '!':
		t = token.JSPDeclaration
	case '-':
		t = token.JSPComment
	default:
		t = token.JSPScriptlet
	}
	if !valid.Has(t) {
		return 0, false
	}

	switch t {
	case token.JSPDirectiveStart:
		c.Advance(false)
		c.MarkEnd()
		return t, true
	case token.JSPComment:
		c.Advance(false)
		return scanJSPComment(c)
	case token.JSPScriptlet:
	default:
		c.Advance(false)
	}
	return scanUntilClose(c, t)
}

// scanUntilClose consumes everything up to and including the next "%>".
//
func scanUntilClose(c Cursor, t token.Token) (token.Token, bool) {
	for c.Lookahead() != EOF {
		if c.Lookahead() != '%' {
			c.Advance(false)
			continue
		}
		c.Advance(false)
		if c.Lookahead() == '>' {
			c.Advance(false)
			c.MarkEnd()
			return t, true
		}
	}
	return 0, false
}

// scanJSPComment scans a "<%--" ... "--%>" comment, the cursor being past
// "<%-".
//
func scanJSPComment(c Cursor) (token.Token, bool) {
	if c.Lookahead() != '-' {
		return 0, false
	}
	c.Advance(false)
	dashes := 0
	for r := c.Lookahead(); r != EOF; r = c.Lookahead() {
		switch r {
		case '-':
			dashes++
		case '%':
			if dashes >= 2 {
				c.Advance(false)
				if c.Lookahead() == '>' {
					c.Advance(false)
					c.MarkEnd()
					return token.JSPComment, true
				}
				dashes = 0
				continue
			}
			dashes = 0
		default:
			dashes = 0
		}
		c.Advance(false)
	}
	return 0, false
}

// scanComment scans a markup comment, the cursor being past "<!".
//
func scanComment(c Cursor) (token.Token, bool) {
	for i := 0; i < 2; i++ {
		if c.Lookahead() != '-' {
			return 0, false
		}
		c.Advance(false)
	}
	dashes := 0
	for r := c.Lookahead(); r != EOF; r = c.Lookahead() {
		switch r {
		case '-':
			dashes++
		case '>':
			if dashes >= 2 {
				c.Advance(false)
				c.MarkEnd()
				return token.Comment, true
			}
			dashes = 0
		default:
			dashes = 0
		}
		c.Advance(false)
	}
	return 0, false
}

// scanELExpression scans a "${" ... "}" expression with balanced braces. On
// failure, the cursor is restored to its position at entry so that the '$'
// can be read as text.
//
func (s *Scanner) scanELExpression(c Cursor) (token.Token, bool) {
	cp := c.Save()
	c.Advance(false)
	if c.Lookahead() != '{' {
		c.Restore(cp)
		return 0, false
	}
	c.Advance(false)
	depth := 1
	for ; depth > 0 && c.Lookahead() != EOF; c.Advance(false) {
		switch c.Lookahead() {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	if depth > 0 {
		c.Restore(cp)
		return 0, false
	}
	c.MarkEnd()
	return token.ELExpression, true
}
