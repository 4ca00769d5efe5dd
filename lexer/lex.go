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

import (
	"fmt"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/db47h/jsp"
	"github.com/db47h/jsp/token"
)

type queue struct {
	items []Item
	head  int
	tail  int
	count int
}

func (q *queue) push(i Item) {
	if q.head == q.tail && q.count > 0 {
		items := make([]Item, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = i
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// check that q.count > 0 before calling pop
func (q *queue) pop() Item {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return q.items[i]
}

// Item represents a token returned from the lexer.
//
type Item struct {
	token.Token
	Pos   jsp.Pos // Token start offset within the file.
	End   jsp.Pos // Token end offset.
	Value string  // Token text, or error message for token.Error.
	State []byte  // Scanner state after the token, if captured.
}

// String returns a string representation of the item. This should be used only for debugging purposes as
// the output format is not guaranteed to be stable.
//
func (i *Item) String() string {
	if i.Value == "" {
		return i.Token.String()
	}
	return fmt.Sprintf("%s %q", i.Token, i.Value)
}

// A Lexer holds the internal state of the lexer while processing a given
// document.
//
type Lexer struct {
	f       *jsp.File
	src     *jsp.Source
	s       *jsp.Scanner
	q       *queue
	state   stateFn
	log     *log.Logger
	capture bool
	raw     bool // the current start tag opens a raw text element
	named   bool // the current directive has a name
}

// A stateFn is a state function. When a stateFn is called, the input that
// lead to that state has already been consumed.
//
type stateFn func(l *Lexer) stateFn

// New creates a new lexer for the given file.
//
func New(f *jsp.File, opts ...Option) *Lexer {
	o := options{logger: defLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	l := &Lexer{
		f:   f,
		src: jsp.NewSource(f),
		s:   jsp.New(),
		// initial q size must be an exponent of 2
		q:       &queue{items: make([]Item, 4)},
		state:   lexContent,
		log:     o.logger,
		capture: o.capture,
	}
	if o.resume {
		l.src.Seek(o.offset)
		if err := l.s.Deserialize(o.state); err != nil {
			l.errorf("resume: %v", err)
		}
		l.log.Debug("resume", "offset", l.src.Offset(), "stack", l.s.Stack())
	}
	return l
}

// Lex returns the next item. Once the end of the file is reached, Lex keeps
// returning items of type token.EOF.
//
func (l *Lexer) Lex() Item {
	for l.q.count == 0 {
		l.state = l.state(l)
	}
	return l.q.pop()
}

// All lexes the remainder of the file and returns the items, the last one
// being token.EOF.
//
func (l *Lexer) All() []Item {
	var items []Item
	for {
		i := l.Lex()
		items = append(items, i)
		if i.Token == token.EOF {
			return items
		}
	}
}

// File returns the file being lexed.
//
func (l *Lexer) File() *jsp.File {
	return l.f
}

// Scanner returns the underlying scanner. Callers must not modify it.
//
func (l *Lexer) Scanner() *jsp.Scanner {
	return l.s
}

func (l *Lexer) push(i Item) {
	if l.capture {
		i.State = l.s.Serialize()
	}
	l.q.push(i)
}

// begin starts a new item. White space is skipped if skipSpace is true.
//
func (l *Lexer) begin(skipSpace bool) {
	l.src.Begin()
	if skipSpace {
		for unicode.IsSpace(l.src.Lookahead()) {
			l.src.Advance(true)
		}
	}
}

// emit emits the input consumed since begin as a token of type t.
//
func (l *Lexer) emit(t token.Token) {
	start, end := l.src.Commit()
	l.push(Item{
		Token: t,
		Pos:   start,
		End:   end,
		Value: string(l.f.Bytes()[start:end]),
	})
}

// errorf emits an error item covering the input consumed since begin.
//
func (l *Lexer) errorf(format string, args ...interface{}) {
	start, end := l.src.Commit()
	l.push(Item{
		Token: token.Error,
		Pos:   start,
		End:   end,
		Value: fmt.Sprintf(format, args...),
	})
}

// unexpected consumes the current rune and reports it as an error.
//
func (l *Lexer) unexpected(context string) {
	r := l.src.Lookahead()
	l.src.Advance(false)
	l.errorf("unexpected character %#U in %s", r, context)
}

// scan calls the scanner with the given set of valid tokens. If a token is
// recognized it is emitted and scan returns its type and true. Otherwise
// the input is left unchanged.
//
func (l *Lexer) scan(valid token.Set) (token.Token, bool) {
	cp := l.src.Save()
	t, ok := l.s.Scan(l.src, valid)
	if !ok {
		l.src.Restore(cp)
		l.log.Debug("scanner declined", "offset", l.src.Offset(), "valid", valid, "stack", l.s.Stack())
		return 0, false
	}
	l.emit(t)
	return t, true
}

// skipToEOF reports the rest of the input as an error.
//
func (l *Lexer) skipToEOF(format string, args ...interface{}) stateFn {
	for l.src.Lookahead() != jsp.EOF {
		l.src.Advance(false)
	}
	l.errorf(format, args...)
	return lexContent
}
