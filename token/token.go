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

// Package token defines the kinds of tokens produced while lexing JSP
// documents.
//
// The first block of kinds are the tokens the jsp scanner itself can produce.
// A host tells the scanner which of those it would currently accept with a
// Set. The remaining kinds are literals and names recognized by the host
// outside of the scanner.
//
package token

import (
	"strconv"
	"strings"
)

// Token represents a token's numeric ID.
//
type Token uint8

// Scanner tokens. Their values are bit indices in a Set.
//
const (
	JSPScriptlet            Token = iota // <% ... %>
	JSPExpression                        // <%= ... %>
	JSPDeclaration                       // <%! ... %>
	JSPComment                           // <%-- ... --%>
	JSPDirectiveStart                    // <%@
	ELExpression                         // ${ ... }
	TextFragment                         // plain text
	InterpolationText                    // text between {{ and }}
	StartTagName                         // name after <
	TemplateStartTagName                 // template after <
	ScriptStartTagName                   // script after <
	StyleStartTagName                    // style after <
	EndTagName                           // name after </ matching the innermost open element
	ErroneousEndTagName                  // name after </ not matching the innermost open element
	SelfClosingTagDelimiter              // />
	ImplicitEndTag                       // zero-width end of an element without end tag
	RawText                              // script or style content
	Comment                              // <!-- ... -->

	externalEnd
)

// Host tokens.
//
const (
	EOF                  Token = iota + 32 // end of file
	Error                                  // error; the value is the error message
	LT                                     // <
	LTSlash                                // </
	GT                                     // >
	Equal                                  // =
	AttributeName                          // attribute name in a start tag or directive
	AttributeValue                         // unquoted attribute value
	QuotedAttributeValue                   // quoted attribute value, quotes included
	InterpolationOpen                      // {{
	InterpolationClose                     // }}
	DirectiveName                          // page, taglib, include...
	DirectiveClose                         // %>
	Doctype                                // <!DOCTYPE ...>
)

var tokens = [...]string{
	JSPScriptlet:            "JSPScriptlet",
	JSPExpression:           "JSPExpression",
	JSPDeclaration:          "JSPDeclaration",
	JSPComment:              "JSPComment",
	JSPDirectiveStart:       "JSPDirectiveStart",
	ELExpression:            "ELExpression",
	TextFragment:            "TextFragment",
	InterpolationText:       "InterpolationText",
	StartTagName:            "StartTagName",
	TemplateStartTagName:    "TemplateStartTagName",
	ScriptStartTagName:      "ScriptStartTagName",
	StyleStartTagName:       "StyleStartTagName",
	EndTagName:              "EndTagName",
	ErroneousEndTagName:     "ErroneousEndTagName",
	SelfClosingTagDelimiter: "SelfClosingTagDelimiter",
	ImplicitEndTag:          "ImplicitEndTag",
	RawText:                 "RawText",
	Comment:                 "Comment",

	EOF:                  "EOF",
	Error:                "Error",
	LT:                   "LT",
	LTSlash:              "LTSlash",
	GT:                   "GT",
	Equal:                "Equal",
	AttributeName:        "AttributeName",
	AttributeValue:       "AttributeValue",
	QuotedAttributeValue: "QuotedAttributeValue",
	InterpolationOpen:    "InterpolationOpen",
	InterpolationClose:   "InterpolationClose",
	DirectiveName:        "DirectiveName",
	DirectiveClose:       "DirectiveClose",
	Doctype:              "Doctype",
}

func (t Token) String() string {
	if int(t) < len(tokens) && tokens[t] != "" {
		return tokens[t]
	}
	return "Token(" + strconv.Itoa(int(t)) + ")"
}

// IsExternal returns true if t can be produced by the scanner.
//
func (t Token) IsExternal() bool {
	return t < externalEnd
}

// Lookup returns the token with the given name.
//
func Lookup(name string) (Token, bool) {
	for i, n := range tokens {
		if n != "" && strings.EqualFold(n, name) {
			return Token(i), true
		}
	}
	return 0, false
}
