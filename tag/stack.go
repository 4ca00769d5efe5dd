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

// A Stack holds the currently open elements, outermost first. The zero value
// is an empty stack ready to use.
//
type Stack struct {
	tags []Tag
}

// Push opens t.
//
func (s *Stack) Push(t Tag) {
	s.tags = append(s.tags, t)
}

// Pop closes the innermost element and returns it. It returns false if the
// stack is empty.
//
func (s *Stack) Pop() (Tag, bool) {
	n := len(s.tags)
	if n == 0 {
		return Tag{}, false
	}
	t := s.tags[n-1]
	s.tags[n-1] = Tag{} // drop the name reference
	s.tags = s.tags[:n-1]
	return t, true
}

// Top returns the innermost open element.
//
func (s *Stack) Top() (Tag, bool) {
	if len(s.tags) == 0 {
		return Tag{}, false
	}
	return s.tags[len(s.tags)-1], true
}

// Len returns the number of open elements.
//
func (s *Stack) Len() int {
	return len(s.tags)
}

// Contains returns true if t is open at any depth.
//
func (s *Stack) Contains(t Tag) bool {
	for i := range s.tags {
		if s.tags[i] == t {
			return true
		}
	}
	return false
}

// Reset empties the stack.
//
func (s *Stack) Reset() {
	for i := range s.tags {
		s.tags[i] = Tag{}
	}
	s.tags = s.tags[:0]
}

// Tags returns a copy of the open elements, outermost first.
//
func (s *Stack) Tags() []Tag {
	return append([]Tag(nil), s.tags...)
}

// Equal returns true if both stacks hold the same elements in the same order.
//
func (s *Stack) Equal(o *Stack) bool {
	if len(s.tags) != len(o.tags) {
		return false
	}
	for i := range s.tags {
		if s.tags[i] != o.tags[i] {
			return false
		}
	}
	return true
}

func (s *Stack) String() string {
	b := make([]byte, 0, 8*len(s.tags)+2)
	b = append(b, '[')
	for i := range s.tags {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, s.tags[i].String()...)
	}
	return string(append(b, ']'))
}
