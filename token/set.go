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

package token

import "strings"

// A Set is a set of scanner tokens. The zero value is the empty set.
//
// Host tokens are never members of a Set.
//
type Set uint32

// NewSet returns a Set of the given tokens. Host tokens are ignored.
//
func NewSet(ts ...Token) Set {
	var s Set
	for _, t := range ts {
		s = s.With(t)
	}
	return s
}

// All is the set of all scanner tokens. Grammars typically offer it while
// recovering from an error.
//
const All = Set(1<<externalEnd - 1)

// Has returns true if t is a member of s.
//
func (s Set) Has(t Token) bool {
	return t < externalEnd && s&(1<<t) != 0
}

// With returns s with t added.
//
func (s Set) With(t Token) Set {
	if t >= externalEnd {
		return s
	}
	return s | 1<<t
}

// Without returns s with t removed.
//
func (s Set) Without(t Token) Set {
	if t >= externalEnd {
		return s
	}
	return s &^ (1 << t)
}

// Union returns the tokens in either s or o.
//
func (s Set) Union(o Set) Set {
	return s | o
}

// Tokens returns the members of s in ascending order.
//
func (s Set) Tokens() []Token {
	var ts []Token
	for t := Token(0); t < externalEnd; t++ {
		if s.Has(t) {
			ts = append(ts, t)
		}
	}
	return ts
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range s.Tokens() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	b.WriteByte('}')
	return b.String()
}
