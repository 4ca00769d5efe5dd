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

/*
Package lexer is a reference host for the jsp tokenizer.

A jsp.Scanner only recognizes the context-sensitive tokens of a document and
relies on its host to tell which tokens are acceptable at each position. In a
generated parser, this is the job of the parse table. The Lexer in this package
plays that role for the whole document: it tracks the syntactic context
(content, start tag, attributes, end tag, raw text, interpolation, JSP
directive and doctype), calls the scanner with the matching set of valid
tokens and lexes the remaining punctuation itself.

The Lexer is implemented as state functions, as described in Rob Pike's talk
about lexical scanning in Go (https://talks.golang.org/2011/lex.slide). Items
are emitted in a FIFO queue rather than through a channel.


Incremental lexing

With the CaptureState option, each Item carries the serialized state of the
scanner after the item. Lexing can be resumed after any item that leaves the
lexer in content mode with the Resume option:

	l := lexer.New(f, lexer.Resume(item.End, item.State))

Lexing from there yields the same items as the original run.


Errors

The Lexer never fails. Unexpected input is reported as an item of type
token.Error whose Value is the error message; lexing then continues past it.
*/
package lexer
