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
	"unicode/utf8"

	"github.com/db47h/jsp/tag"
	"github.com/db47h/jsp/token"
)

// MaxTagNameLen is the maximum length in bytes of a tag name. Longer names are
// consumed but truncated, so two custom elements whose names only differ past
// this length are the same element.
//
const MaxTagNameLen = 255

func isTagNameRune(r rune) bool {
	return r == '-' || r == ':' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanTagName reads a tag name into s.name.
//
func (s *Scanner) scanTagName(c Cursor) (string, bool) {
	s.name = s.name[:0]
	full := false
	for r := c.Lookahead(); isTagNameRune(r); r = c.Lookahead() {
		if !full {
			if len(s.name)+utf8.RuneLen(r) <= MaxTagNameLen {
				s.name = utf8.AppendRune(s.name, r)
			} else {
				full = true
			}
		}
		c.Advance(false)
	}
	if len(s.name) == 0 {
		return "", false
	}
	return string(s.name), true
}

func (s *Scanner) scanStartTagName(c Cursor) (token.Token, bool) {
	name, ok := s.scanTagName(c)
	if !ok {
		return 0, false
	}
	t := tag.ForName(name)
	s.tags.Push(t)
	switch t.Kind {
	case tag.Template:
		return token.TemplateStartTagName, true
	case tag.Script:
		return token.ScriptStartTagName, true
	case tag.Style:
		return token.StyleStartTagName, true
	}
	return token.StartTagName, true
}

// scanEndTagName closes the innermost element if it matches the name. Names
// that do not match are reported as erroneous and nothing is closed.
//
func (s *Scanner) scanEndTagName(c Cursor) (token.Token, bool) {
	name, ok := s.scanTagName(c)
	if !ok {
		return 0, false
	}
	if top, ok := s.tags.Top(); ok && top == tag.ForName(name) {
		s.tags.Pop()
		return token.EndTagName, true
	}
	return token.ErroneousEndTagName, true
}

func (s *Scanner) scanSelfClosingTagDelimiter(c Cursor) (token.Token, bool) {
	c.Advance(false)
	if c.Lookahead() != '>' {
		return 0, false
	}
	c.Advance(false)
	s.tags.Pop()
	return token.SelfClosingTagDelimiter, true
}

// scanImplicitEndTag decides whether the innermost element ends here without
// an end tag of its own. It is called with the cursor just past a '<' or at
// EOF, and with the token end already marked, so that implicit end tags are
// zero-width.
//
// Each call closes at most one element. Hosts get several implicit end tags in
// a row by calling Scan again.
//
func (s *Scanner) scanImplicitEndTag(c Cursor) (token.Token, bool) {
	parent, hasParent := s.tags.Top()

	closing := false
	if c.Lookahead() == '/' {
		closing = true
		c.Advance(false)
	} else if hasParent && (parent.IsVoid() || c.Lookahead() == EOF) {
		s.tags.Pop()
		return token.ImplicitEndTag, true
	}

	name, ok := s.scanTagName(c)
	if !ok {
		return 0, false
	}
	next := tag.ForName(name)

	if closing {
		// The end tag closes the innermost element: not our business.
		if hasParent && parent == next {
			return 0, false
		}
		if s.tags.Contains(next) {
			s.tags.Pop()
			return token.ImplicitEndTag, true
		}
		return 0, false
	}

	if hasParent && !parent.CanContain(next) {
		s.tags.Pop()
		return token.ImplicitEndTag, true
	}
	return 0, false
}
