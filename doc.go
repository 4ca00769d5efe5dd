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
Package jsp implements a context-sensitive tokenizer for JSP style markup
templates: HTML with JSP scriptlets, expressions, declarations, comments and
directives, "${...}" expressions and "{{...}}" interpolations.

The tokenizer is meant to be driven by a host, typically a generated parser,
that knows which tokens are syntactically acceptable at any given position. At
each position, the host calls Scanner.Scan with a Cursor on the input and the
set of tokens it would accept. Scan either recognizes one token and reports
its kind and extent, or declines and lets the host lex the input by other
means.

Tokens that cannot be recognized by a context-free lexer are the reason the
Scanner exists:

	- start and end tag names, since a Scanner keeps the stack of open
	  elements;
	- implicit end tags, zero-width tokens that close an element whose end tag
	  is optional, like p or li, or that is void, like br;
	- the raw content of script and style elements;
	- JSP constructs and expressions with nested braces;
	- text, which ends where one of the above begins.

State

The only state of a Scanner is its stack of open elements. Hosts that
reparse documents incrementally save it with Serialize after a token and
restore it with Deserialize before lexing resumes at that token. A serialized
state never exceeds tag.SerializationBufferSize bytes; deeper stacks are
truncated to their outermost elements.

Implementation details

Some tokens can only be recognized by reading past their end, so the end of a
token is marked explicitly with Cursor.MarkEnd. When a tentative match fails,
as for a '$' not followed by '{', the Scanner restores the cursor to a
Checkpoint taken with Cursor.Save.

When Scan declines, the stack of open elements is left unchanged. The cursor
may have moved though, and the host is expected to reset it before lexing
further.

The lexer sub-package provides a complete reference host.
*/
package jsp
