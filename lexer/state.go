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
	"unicode"

	"github.com/db47h/jsp"
	"github.com/db47h/jsp/token"
)

// Valid token sets for each context.
var (
	embeddedTokens = token.NewSet(
		token.JSPDirectiveStart,
		token.JSPScriptlet,
		token.JSPExpression,
		token.JSPDeclaration,
		token.JSPComment,
	)
	contentTokens = embeddedTokens.Union(token.NewSet(
		token.ELExpression,
		token.TextFragment,
		token.Comment,
		token.ImplicitEndTag,
	))
	startTagTokens = token.NewSet(
		token.StartTagName,
		token.TemplateStartTagName,
		token.ScriptStartTagName,
		token.StyleStartTagName,
	)
	attributeTokens = token.NewSet(
		token.JSPScriptlet,
		token.JSPExpression,
		token.JSPComment,
		token.ELExpression,
		token.SelfClosingTagDelimiter,
	)
	valueTokens = token.NewSet(
		token.JSPScriptlet,
		token.JSPExpression,
		token.ELExpression,
	)
	endTagTokens  = token.NewSet(token.EndTagName, token.ErroneousEndTagName)
	rawTextTokens = token.NewSet(token.RawText)
	interpTokens  = token.NewSet(token.InterpolationText)
)

// Host literals for each context. Set in init to break the initialization
// cycle between state functions.
var (
	contentLang   *lang
	attributeLang *lang
	closeLang     *lang
	interpLang    *lang
	directiveLang *lang
)

func init() {
	contentLang = newLang().
		match("<", literal(token.LT, lexStartTagName)).
		match("</", literal(token.LTSlash, lexEndTagName)).
		match("<!", lexDoctype).
		match("<%", unterminated("JSP construct")).
		match("${", unterminated("expression")).
		match("{{", literal(token.InterpolationOpen, lexInterpolation))
	attributeLang = newLang().
		match(">", lexStartTagClose).
		match("=", literal(token.Equal, lexAttributeValue))
	closeLang = newLang().
		match(">", literal(token.GT, lexContent))
	interpLang = newLang().
		match("}}", literal(token.InterpolationClose, lexContent))
	directiveLang = newLang().
		match("%>", literal(token.DirectiveClose, lexContent)).
		match("=", literal(token.Equal, lexDirective))
}

// literal returns a state function that emits a literal of type t and
// continues with next.
//
func literal(t token.Token, next stateFn) stateFn {
	return func(l *Lexer) stateFn {
		l.emit(t)
		return next
	}
}

func unterminated(what string) stateFn {
	return func(l *Lexer) stateFn {
		return l.skipToEOF("unterminated %s", what)
	}
}

// lexContent lexes element content.
//
func lexContent(l *Lexer) stateFn {
	l.begin(false)
	if t, ok := l.scan(contentTokens); ok {
		if t == token.JSPDirectiveStart {
			l.named = false
			return lexDirective
		}
		return lexContent
	}
	l.begin(true)
	if l.src.Lookahead() == jsp.EOF {
		l.emit(token.EOF)
		return lexEOF
	}
	if f := l.search(contentLang); f != nil {
		return f
	}
	l.unexpected("content")
	return lexContent
}

func lexEOF(l *Lexer) stateFn {
	l.begin(false)
	l.emit(token.EOF)
	return lexEOF
}

// lexStartTagName lexes the tag name following a '<'.
//
func lexStartTagName(l *Lexer) stateFn {
	l.begin(true)
	t, ok := l.scan(startTagTokens)
	if !ok {
		l.errorf("expected tag name")
		return lexContent
	}
	l.raw = t == token.ScriptStartTagName || t == token.StyleStartTagName
	return lexAttributes
}

// lexAttributes lexes the attributes of a start tag.
//
func lexAttributes(l *Lexer) stateFn {
	l.begin(true)
	if t, ok := l.scan(attributeTokens); ok {
		if t == token.SelfClosingTagDelimiter {
			l.raw = false
			return lexContent
		}
		return lexAttributes
	}
	if f := l.search(attributeLang); f != nil {
		return f
	}
	switch r := l.src.Lookahead(); {
	case r == jsp.EOF:
		l.errorf("unterminated start tag")
		return lexContent
	case isAttributeNameRune(r):
		acceptWhile(l.src, isAttributeNameRune)
		l.emit(token.AttributeName)
	default:
		l.unexpected("start tag")
	}
	return lexAttributes
}

func lexStartTagClose(l *Lexer) stateFn {
	l.emit(token.GT)
	if l.raw {
		l.raw = false
		return lexRawText
	}
	return lexContent
}

// lexAttributeValue lexes the value following an '=' in a start tag.
//
func lexAttributeValue(l *Lexer) stateFn {
	l.begin(true)
	if _, ok := l.scan(valueTokens); ok {
		return lexAttributes
	}
	switch r := l.src.Lookahead(); {
	case r == '"' || r == '\'':
		if !quoted(l.src) {
			l.errorf("unterminated attribute value")
			return lexContent
		}
		l.emit(token.QuotedAttributeValue)
	case isAttributeValueRune(r):
		acceptWhile(l.src, isAttributeValueRune)
		l.emit(token.AttributeValue)
	default:
		l.errorf("expected attribute value")
	}
	return lexAttributes
}

func lexEndTagName(l *Lexer) stateFn {
	l.begin(true)
	if _, ok := l.scan(endTagTokens); !ok {
		l.errorf("expected tag name")
		return lexContent
	}
	return lexEndTagClose
}

func lexEndTagClose(l *Lexer) stateFn {
	l.begin(true)
	if f := l.search(closeLang); f != nil {
		return f
	}
	l.errorf("expected '>'")
	return lexContent
}

// lexRawText lexes the content of script and style elements. Their end tag
// is lexed in content mode.
//
func lexRawText(l *Lexer) stateFn {
	l.begin(false)
	l.scan(rawTextTokens)
	return lexContent
}

// lexInterpolation lexes the content of a "{{" ... "}}" interpolation.
//
func lexInterpolation(l *Lexer) stateFn {
	l.begin(true)
	if _, ok := l.scan(interpTokens); ok {
		return lexInterpolation
	}
	if f := l.search(interpLang); f != nil {
		return f
	}
	if l.src.Lookahead() == jsp.EOF {
		l.errorf("unterminated interpolation")
		return lexContent
	}
	l.unexpected("interpolation")
	return lexInterpolation
}

// lexDirective lexes the body of a "<%@" ... "%>" directive.
//
func lexDirective(l *Lexer) stateFn {
	l.begin(true)
	if f := l.search(directiveLang); f != nil {
		return f
	}
	switch r := l.src.Lookahead(); {
	case r == jsp.EOF:
		l.errorf("unterminated directive")
		return lexContent
	case r == '"' || r == '\'':
		if !quoted(l.src) {
			l.errorf("unterminated attribute value")
			return lexContent
		}
		l.emit(token.QuotedAttributeValue)
	case isAttributeNameRune(r):
		acceptWhile(l.src, isAttributeNameRune)
		if l.named {
			l.emit(token.AttributeName)
		} else {
			l.named = true
			l.emit(token.DirectiveName)
		}
	default:
		l.unexpected("directive")
	}
	return lexDirective
}

// lexDoctype lexes a "<!" declaration up to the closing '>'. The "<!" has
// been consumed.
//
func lexDoctype(l *Lexer) stateFn {
	if l.src.HasPrefix("--") {
		return l.skipToEOF("unterminated comment")
	}
	for r := l.src.Lookahead(); r != '>'; r = l.src.Lookahead() {
		if r == jsp.EOF {
			l.errorf("unterminated declaration")
			return lexContent
		}
		l.src.Advance(false)
	}
	l.src.Advance(false)
	l.emit(token.Doctype)
	return lexContent
}

func isAttributeNameRune(r rune) bool {
	switch r {
	case '"', '\'', '/', '>', '=', '<', jsp.EOF:
		return false
	}
	return !unicode.IsSpace(r)
}

func isAttributeValueRune(r rune) bool {
	switch r {
	case '"', '\'', '>', '<', '=', '`', jsp.EOF:
		return false
	}
	return !unicode.IsSpace(r)
}

func acceptWhile(c jsp.Cursor, f func(r rune) bool) {
	for f(c.Lookahead()) {
		c.Advance(false)
	}
}

// quoted consumes a quoted string, quotes included. It returns false if the
// closing quote is missing.
//
func quoted(c jsp.Cursor) bool {
	q := c.Lookahead()
	c.Advance(false)
	for r := c.Lookahead(); r != q; r = c.Lookahead() {
		if r == jsp.EOF {
			return false
		}
		c.Advance(false)
	}
	c.Advance(false)
	return true
}
