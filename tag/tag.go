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

// Package tag classifies markup element names and keeps the stack of open
// elements used by the jsp scanner.
//
// Well-known elements map to a Kind. Any other name maps to Custom and the Tag
// carries the upper-cased name. The numeric value of a Kind doubles as its
// code in serialized scanner state, so the order of the constants below must
// not change.
//
package tag

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies a well-known element.
//
type Kind uint8

// Void elements come first, up to endOfVoid.
//
const (
	Area Kind = iota
	Base
	BaseFont
	BGSound
	BR
	Col
	Command
	Embed
	Frame
	HR
	Image
	Img
	Input
	IsIndex
	Keygen
	Link
	MenuItem
	Meta
	NextID
	Param
	Source
	Track
	WBR
	endOfVoid

	A
	Abbr
	Address
	Article
	Aside
	Audio
	B
	BDI
	BDO
	BlockQuote
	Body
	Button
	Canvas
	Caption
	Cite
	Code
	ColGroup
	Data
	DataList
	DD
	Del
	Details
	Dfn
	Dialog
	Div
	DL
	DT
	Em
	FieldSet
	FigCaption
	Figure
	Footer
	Form
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	HGroup
	HTML
	I
	IFrame
	Ins
	Kbd
	Label
	Legend
	LI
	Main
	Map
	Mark
	Math
	Menu
	Meter
	Nav
	NoScript
	Object
	OL
	OptGroup
	Option
	Output
	P
	Picture
	Pre
	Progress
	Q
	RB
	RP
	RT
	RTC
	Ruby
	S
	Samp
	Script
	Section
	Select
	Slot
	Small
	Span
	Strong
	Style
	Sub
	Summary
	Sup
	SVG
	Table
	TBody
	TD
	Template
	TextArea
	TFoot
	TH
	THead
	Time
	Title
	TR
	U
	UL
	Var
	Video

	Custom

	kindCount
)

var names = [kindCount]string{
	Area: "AREA", Base: "BASE", BaseFont: "BASEFONT", BGSound: "BGSOUND", BR: "BR",
	Col: "COL", Command: "COMMAND", Embed: "EMBED", Frame: "FRAME", HR: "HR",
	Image: "IMAGE", Img: "IMG", Input: "INPUT", IsIndex: "ISINDEX", Keygen: "KEYGEN",
	Link: "LINK", MenuItem: "MENUITEM", Meta: "META", NextID: "NEXTID", Param: "PARAM",
	Source: "SOURCE", Track: "TRACK", WBR: "WBR",

	A: "A", Abbr: "ABBR", Address: "ADDRESS", Article: "ARTICLE", Aside: "ASIDE",
	Audio: "AUDIO", B: "B", BDI: "BDI", BDO: "BDO", BlockQuote: "BLOCKQUOTE",
	Body: "BODY", Button: "BUTTON", Canvas: "CANVAS", Caption: "CAPTION", Cite: "CITE",
	Code: "CODE", ColGroup: "COLGROUP", Data: "DATA", DataList: "DATALIST", DD: "DD",
	Del: "DEL", Details: "DETAILS", Dfn: "DFN", Dialog: "DIALOG", Div: "DIV",
	DL: "DL", DT: "DT", Em: "EM", FieldSet: "FIELDSET", FigCaption: "FIGCAPTION",
	Figure: "FIGURE", Footer: "FOOTER", Form: "FORM", H1: "H1", H2: "H2",
	H3: "H3", H4: "H4", H5: "H5", H6: "H6", Head: "HEAD",
	Header: "HEADER", HGroup: "HGROUP", HTML: "HTML", I: "I", IFrame: "IFRAME",
	Ins: "INS", Kbd: "KBD", Label: "LABEL", Legend: "LEGEND", LI: "LI",
	Main: "MAIN", Map: "MAP", Mark: "MARK", Math: "MATH", Menu: "MENU",
	Meter: "METER", Nav: "NAV", NoScript: "NOSCRIPT", Object: "OBJECT", OL: "OL",
	OptGroup: "OPTGROUP", Option: "OPTION", Output: "OUTPUT", P: "P", Picture: "PICTURE",
	Pre: "PRE", Progress: "PROGRESS", Q: "Q", RB: "RB", RP: "RP",
	RT: "RT", RTC: "RTC", Ruby: "RUBY", S: "S", Samp: "SAMP",
	Script: "SCRIPT", Section: "SECTION", Select: "SELECT", Slot: "SLOT", Small: "SMALL",
	Span: "SPAN", Strong: "STRONG", Style: "STYLE", Sub: "SUB", Summary: "SUMMARY",
	Sup: "SUP", SVG: "SVG", Table: "TABLE", TBody: "TBODY", TD: "TD",
	Template: "TEMPLATE", TextArea: "TEXTAREA", TFoot: "TFOOT", TH: "TH", THead: "THEAD",
	Time: "TIME", Title: "TITLE", TR: "TR", U: "U", UL: "UL",
	Var: "VAR", Video: "VIDEO",

	Custom: "CUSTOM",
}

// byName is the read-only lookup table built once from names.
//
var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(names))
	for k, n := range names {
		if n == "" || Kind(k) == Custom {
			continue
		}
		m[n] = Kind(k)
	}
	return m
}()

// String returns the upper-case element name for well-known kinds.
//
func (k Kind) String() string {
	if k < kindCount && names[k] != "" {
		return names[k]
	}
	return "INVALID"
}

// Valid returns true if k is a well-known kind or Custom.
//
func (k Kind) Valid() bool {
	return k < kindCount && k != endOfVoid
}

// A Tag is the identity of an element. Name is only set for Custom tags and
// holds the upper-cased element name; two tags are the same element iff they
// compare equal with ==.
//
type Tag struct {
	Kind Kind
	Name string
}

// ForName returns the Tag for the given element name. The lookup is case
// insensitive. Unknown names yield a Custom tag carrying the upper-cased name.
//
func ForName(name string) Tag {
	n := upper(name)
	if k, ok := byName[n]; ok {
		return Tag{Kind: k}
	}
	return Tag{Kind: Custom, Name: n}
}

func upper(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return cases.Upper(language.Und).String(s)
		}
	}
	return strings.ToUpper(s)
}

// IsVoid returns true for elements that never have content nor an end tag.
//
func (t Tag) IsVoid() bool {
	return t.Kind < endOfVoid
}

// IsRawText returns true for elements whose content is not markup.
//
func (t Tag) IsRawText() bool {
	return t.Kind == Script || t.Kind == Style
}

// RawTextCloser returns the upper-case opening of the end tag that terminates
// the raw text content of t, or an empty string if t is not a raw text
// element.
//
func (t Tag) RawTextCloser() string {
	switch t.Kind {
	case Script:
		return "</SCRIPT"
	case Style:
		return "</STYLE"
	}
	return ""
}

func (t Tag) String() string {
	if t.Kind == Custom {
		return t.Name
	}
	return t.Kind.String()
}
