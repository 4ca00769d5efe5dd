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

package tag

// notInParagraph lists the elements that implicitly close an open P.
//
var notInParagraph = [...]Kind{
	Address, Article, Aside, BlockQuote, Details, Div, DL,
	FieldSet, FigCaption, Figure, Footer, Form, H1, H2,
	H3, H4, H5, H6, Header, HR, Main,
	Nav, OL, P, Pre, Section,
}

// CanContain reports whether child may appear as a direct child of t. Pairs
// not covered by a rule are allowed.
//
func (t Tag) CanContain(child Tag) bool {
	c := child.Kind
	switch t.Kind {
	case LI:
		return c != LI
	case DT, DD:
		return c != DT && c != DD
	case P:
		for _, k := range notInParagraph {
			if c == k {
				return false
			}
		}
		return true
	case ColGroup:
		return c == Col
	case RB, RT, RP:
		return c != RB && c != RT && c != RP
	case OptGroup:
		return c != OptGroup
	case TR:
		return c != TR
	case TD, TH:
		return c != TD && c != TH && c != TR
	default:
		return true
	}
}
