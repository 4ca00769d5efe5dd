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
	"unicode"

	"github.com/db47h/jsp/tag"
	"github.com/db47h/jsp/token"
)

// markupTokens are the tokens that prevent a raw text scan outside of script
// and style elements.
//
var markupTokens = token.NewSet(
	token.StartTagName,
	token.EndTagName,
	token.JSPDirectiveStart,
	token.JSPScriptlet,
	token.JSPExpression,
	token.JSPDeclaration,
	token.JSPComment,
	token.ELExpression,
)

// A Scanner holds the stack of open elements for a single document. A Scanner
// must not be shared between documents nor used concurrently.
//
type Scanner struct {
	tags tag.Stack
	name []byte // tag name buffer
}

// New returns a Scanner with no open element.
//
func New() *Scanner {
	return &Scanner{name: make([]byte, 0, MaxTagNameLen)}
}

// Depth returns the number of open elements.
//
func (s *Scanner) Depth() int {
	return s.tags.Len()
}

// Stack returns a copy of the open elements, outermost first.
//
func (s *Scanner) Stack() []tag.Tag {
	return s.tags.Tags()
}

// Reset closes all open elements.
//
func (s *Scanner) Reset() {
	s.tags.Reset()
}

// Serialize returns the state of the scanner. See tag.Stack.MarshalBinary for
// the format.
//
func (s *Scanner) Serialize() []byte {
	b, _ := s.tags.MarshalBinary()
	return b
}

// Deserialize restores a state returned by Serialize, discarding the current
// one. An empty state resets the scanner.
//
func (s *Scanner) Deserialize(state []byte) error {
	return s.tags.UnmarshalBinary(state)
}

// Scan tries to recognize a token at the cursor position. valid is the set of
// tokens that the host would accept at this position.
//
// If a token is recognized, Scan returns its kind and true. The token ends at
// the position last marked with c.MarkEnd, or at the cursor position if it
// was never called. Otherwise Scan returns false and the stack of open
// elements is left unchanged; the host is expected to reset the cursor.
//
func (s *Scanner) Scan(c Cursor, valid token.Set) (token.Token, bool) {
	raw := s.inRawText()
	if !raw {
		for unicode.IsSpace(c.Lookahead()) {
			c.Advance(true)
		}
	}

	if valid.Has(token.RawText) && (raw || valid&markupTokens == 0) {
		return s.scanRawText(c)
	}

	// An end tag following a void element is left to scanImplicitEndTag: it
	// must not close the element when the names match.
	if valid.Has(token.ImplicitEndTag) {
		if t, ok := s.tags.Top(); ok && t.IsVoid() && !(c.Lookahead() == '<' && peek(c, '/')) {
			c.MarkEnd()
			s.tags.Pop()
			return token.ImplicitEndTag, true
		}
	}

	// Grammars offer every token during error recovery; do not eat text then.
	if !valid.Has(token.StartTagName) || !valid.Has(token.RawText) {
		if c.Lookahead() == '$' && valid.Has(token.ELExpression) && !raw {
			if t, ok := s.scanELExpression(c); ok {
				return t, ok
			}
		}
		if c.Lookahead() != '<' && (valid.Has(token.TextFragment) || valid.Has(token.InterpolationText)) {
			if t, ok := s.scanText(c, valid, raw); ok {
				return t, ok
			}
		}
	}

	return s.dispatch(c, valid, raw)
}

func (s *Scanner) dispatch(c Cursor, valid token.Set, raw bool) (token.Token, bool) {
	switch c.Lookahead() {
	case '<':
		c.MarkEnd()
		c.Advance(false)
		switch c.Lookahead() {
		case '!':
			c.Advance(false)
			if valid.Has(token.Comment) {
				return scanComment(c)
			}
			return 0, false
		case '%':
			c.Advance(false)
			return scanEmbedded(c, valid)
		}
		if valid.Has(token.ImplicitEndTag) {
			return s.scanImplicitEndTag(c)
		}
	case '$':
		if valid.Has(token.ELExpression) && !raw {
			return s.scanELExpression(c)
		}
	case EOF:
		if valid.Has(token.ImplicitEndTag) {
			c.MarkEnd()
			return s.scanImplicitEndTag(c)
		}
	case '/':
		if valid.Has(token.SelfClosingTagDelimiter) {
			return s.scanSelfClosingTagDelimiter(c)
		}
	default:
		if (valid.Has(token.StartTagName) || valid.Has(token.EndTagName)) && !valid.Has(token.RawText) {
			if valid.Has(token.StartTagName) {
				return s.scanStartTagName(c)
			}
			return s.scanEndTagName(c)
		}
	}
	return 0, false
}

// inRawText returns true if the innermost open element is script or style.
//
func (s *Scanner) inRawText() bool {
	t, ok := s.tags.Top()
	return ok && t.IsRawText()
}

// peek returns true if the rune following the lookahead is r. The cursor is
// left unchanged.
//
func peek(c Cursor, r rune) bool {
	cp := c.Save()
	c.Advance(false)
	ok := c.Lookahead() == r
	c.Restore(cp)
	return ok
}
