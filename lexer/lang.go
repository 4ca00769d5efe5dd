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

package lexer

type nodeList map[rune]*node

// A node is a node in the search tree of literals.
//
type node struct {
	c nodeList // child nodes
	s stateFn
}

// match returns the child node that matches the given rune.
//
func (n *node) match(r rune) *node {
	return n.c[r]
}

// A lang is the set of literals recognized by the host in a given context.
// Each literal is mapped to the state function that handles it.
//
type lang struct {
	e *node // exact matches
}

func newLang() *lang {
	return &lang{e: &node{c: make(nodeList)}}
}

// match registers the state f for input starting with the string s.
// f is called once the literal has been consumed.
//
func (l *lang) match(s string, f stateFn) *lang {
	n := l.e
	for _, r := range s {
		i, ok := n.c[r]
		if !ok {
			i = &node{c: make(nodeList)}
			n.c[r] = i
		}
		n = i
	}
	if n.s != nil {
		panic("literal registered twice: " + s)
	}
	n.s = f
	return l
}

// search consumes the longest literal of lang at the current position and
// returns its state function. If there is no match, the input is left
// unchanged and search returns nil.
//
func (l *Lexer) search(lg *lang) stateFn {
	start := l.src.Save()
	cp := start
	var f stateFn
	for n := lg.e.match(l.src.Lookahead()); n != nil; n = n.match(l.src.Lookahead()) {
		l.src.Advance(false)
		if n.s != nil {
			f, cp = n.s, l.src.Save()
		}
		if len(n.c) == 0 {
			break
		}
	}
	l.src.Restore(cp)
	return f
}
