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
	"io"

	"github.com/charmbracelet/log"
	"github.com/db47h/jsp"
)

type options struct {
	logger  *log.Logger
	capture bool
	resume  bool
	offset  jsp.Pos
	state   []byte
}

// An Option is a configuration option for a new Lexer.
//
type Option func(*options)

// WithLogger sets the logger used to trace the decisions of the lexer at
// debug level. By default, nothing is logged.
//
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// CaptureState makes the lexer attach the serialized scanner state to each
// emitted Item.
//
func CaptureState() Option {
	return func(o *options) {
		o.capture = true
	}
}

// Resume starts lexing at the given offset in content mode, with the scanner
// state restored from state. If state cannot be decoded, the first item is an
// error and lexing proceeds with no open element.
//
func Resume(offset jsp.Pos, state []byte) Option {
	return func(o *options) {
		o.resume = true
		o.offset = offset
		o.state = state
	}
}

func defLogger() *log.Logger {
	return log.New(io.Discard)
}
