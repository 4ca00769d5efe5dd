package lexer_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/db47h/jsp"
	"github.com/db47h/jsp/lexer"
	"github.com/db47h/jsp/token"
)

func tokenString(f *jsp.File, i *lexer.Item) string {
	pos := f.Position(i.Pos)
	return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, i.String())
}

func TestLexer_Lex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"implicit end of p", "<p>one<div>two</div></p>", []string{
			`1:1: LT "<"`, `1:2: StartTagName "p"`, `1:3: GT ">"`, `1:4: TextFragment "one"`,
			`1:7: ImplicitEndTag`,
			`1:7: LT "<"`, `1:8: StartTagName "div"`, `1:11: GT ">"`, `1:12: TextFragment "two"`,
			`1:15: LTSlash "</"`, `1:17: EndTagName "div"`, `1:20: GT ">"`,
			`1:21: LTSlash "</"`, `1:23: ErroneousEndTagName "p"`, `1:24: GT ">"`,
			`1:25: EOF`,
		}},
		{"void with end tag", "<br></br>x", []string{
			`1:1: LT "<"`, `1:2: StartTagName "br"`, `1:4: GT ">"`,
			`1:5: LTSlash "</"`, `1:7: EndTagName "br"`, `1:9: GT ">"`,
			`1:10: TextFragment "x"`, `1:11: EOF`,
		}},
		{"list items", "<ul><li>a<li>b</ul>", []string{
			`1:1: LT "<"`, `1:2: StartTagName "ul"`, `1:4: GT ">"`,
			`1:5: LT "<"`, `1:6: StartTagName "li"`, `1:8: GT ">"`, `1:9: TextFragment "a"`,
			`1:10: ImplicitEndTag`,
			`1:10: LT "<"`, `1:11: StartTagName "li"`, `1:13: GT ">"`, `1:14: TextFragment "b"`,
			`1:15: ImplicitEndTag`,
			`1:15: LTSlash "</"`, `1:17: EndTagName "ul"`, `1:19: GT ">"`,
			`1:20: EOF`,
		}},
		{"script", "<script>if (a</di) x</script>", []string{
			`1:1: LT "<"`, `1:2: ScriptStartTagName "script"`, `1:8: GT ">"`,
			`1:9: RawText "if (a</di) x"`,
			`1:21: LTSlash "</"`, `1:23: EndTagName "script"`, `1:29: GT ">"`,
			`1:30: EOF`,
		}},
		{"style", "<style> p{} </style>", []string{
			`1:1: LT "<"`, `1:2: StyleStartTagName "style"`, `1:7: GT ">"`,
			`1:8: RawText " p{} "`,
			`1:13: LTSlash "</"`, `1:15: EndTagName "style"`, `1:20: GT ">"`,
			`1:21: EOF`,
		}},
		{"self-closing script", "<script/>x", []string{
			`1:1: LT "<"`, `1:2: ScriptStartTagName "script"`, `1:8: SelfClosingTagDelimiter "/>"`,
			`1:10: TextFragment "x"`, `1:11: EOF`,
		}},
		{"attributes", `<a href="x" id=y ${e} checked/>`, []string{
			`1:1: LT "<"`, `1:2: StartTagName "a"`,
			`1:4: AttributeName "href"`, `1:8: Equal "="`, `1:9: QuotedAttributeValue "\"x\""`,
			`1:13: AttributeName "id"`, `1:15: Equal "="`, `1:16: AttributeValue "y"`,
			`1:18: ELExpression "${e}"`,
			`1:23: AttributeName "checked"`,
			`1:30: SelfClosingTagDelimiter "/>"`,
			`1:32: EOF`,
		}},
		{"void", "<br>x", []string{
			`1:1: LT "<"`, `1:2: StartTagName "br"`, `1:4: GT ">"`,
			`1:5: ImplicitEndTag`, `1:5: TextFragment "x"`, `1:6: EOF`,
		}},
		{"erroneous end tag", "<b></i></b>", []string{
			`1:1: LT "<"`, `1:2: StartTagName "b"`, `1:3: GT ">"`,
			`1:4: LTSlash "</"`, `1:6: ErroneousEndTagName "i"`, `1:7: GT ">"`,
			`1:8: LTSlash "</"`, `1:10: EndTagName "b"`, `1:11: GT ">"`,
			`1:12: EOF`,
		}},
		{"jsp", `<%@ page import="java.util.*" %><%-- c --%><%= x %>`, []string{
			`1:1: JSPDirectiveStart "<%@"`, `1:5: DirectiveName "page"`,
			`1:10: AttributeName "import"`, `1:16: Equal "="`, `1:17: QuotedAttributeValue "\"java.util.*\""`,
			`1:31: DirectiveClose "%>"`,
			`1:33: JSPComment "<%-- c --%>"`,
			`1:44: JSPExpression "<%= x %>"`,
			`1:52: EOF`,
		}},
		{"interpolation", "{{ a.b }}x", []string{
			`1:1: InterpolationOpen "{{"`, `1:4: InterpolationText "a.b "`, `1:8: InterpolationClose "}}"`,
			`1:10: TextFragment "x"`, `1:11: EOF`,
		}},
		{"doctype", "<!DOCTYPE html>\n<p>", []string{
			`1:1: Doctype "<!DOCTYPE html>"`,
			`2:1: LT "<"`, `2:2: StartTagName "p"`, `2:3: GT ">"`,
			`2:4: ImplicitEndTag`, `2:4: EOF`,
		}},
		{"comment", "<!-- x -->a", []string{
			`1:1: Comment "<!-- x -->"`, `1:11: TextFragment "a"`, `1:12: EOF`,
		}},
		{"unterminated start tag", "<div", []string{
			`1:1: LT "<"`, `1:2: StartTagName "div"`,
			`1:5: Error "unterminated start tag"`,
			`1:5: ImplicitEndTag`, `1:5: EOF`,
		}},
		{"unterminated expression", "${a", []string{
			`1:1: Error "unterminated expression"`, `1:4: EOF`,
		}},
		{"unterminated comment", "x <!-- y", []string{
			`1:1: TextFragment "x "`, `1:3: Error "unterminated comment"`, `1:9: EOF`,
		}},
		{"missing end tag name", "</>", []string{
			`1:1: LTSlash "</"`, `1:3: Error "expected tag name"`,
			`1:3: TextFragment ">"`, `1:4: EOF`,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i int
			f := jsp.NewFile("", []byte(tt.input))
			l := lexer.New(f)
			for i = 0; i < len(tt.want); i++ {
				lx := l.Lex()
				if got := tokenString(l.File(), &lx); got != tt.want[i] {
					t.Errorf("Got:\n\t%s\nWant:\n\t%s", got, tt.want[i])
				}
				if lx.Token == token.EOF {
					i++
					break
				}
			}
			if i < len(tt.want) {
				t.Errorf("Missing token:\n\t%s", tt.want[i])
			}
		})
	}
}

// After EOF, Lex keeps returning EOF.
//
func TestLexer_EOF(t *testing.T) {
	l := lexer.New(jsp.NewFile("", []byte("<html><body>")))
	items := l.All()
	if n := len(items); n != 9 {
		t.Fatalf("got %d items", n)
	}
	for i := 0; i < 3; i++ {
		if it := l.Lex(); it.Token != token.EOF || it.Pos != 12 {
			t.Fatalf("got %s at %d", it.String(), it.Pos)
		}
	}
	if l.Scanner().Depth() != 0 {
		t.Fatalf("open elements left: %v", l.Scanner().Stack())
	}
}

const page = `<%@ page contentType="text/html" %>
<!DOCTYPE html>
<html>
<head>
  <title>${title}</title>
  <style>p { margin: 0 }</style>
  <script>if (a</b) { x = "{{"; }</script>
</head>
<body>
  <%-- list --%>
  <ul class=items>
    <li>${item.name}
    <li><%= item.price %>
  </ul>
  <p>total: {{ total }}
  <table><tr><td>a<td>b<tr><td>c</table>
  <img src="x.png"><br/>
  <my-panel open><p>nested</my-panel>
</body>
</html>
`

// resumable returns true if lexing can resume in content mode after items[i].
//
func resumable(items []lexer.Item, i int) bool {
	switch items[i].Token {
	case token.TextFragment, token.ImplicitEndTag, token.Comment, token.RawText, token.DirectiveClose, token.Doctype:
		return true
	case token.GT:
		return i >= 2 && (items[i-1].Token == token.EndTagName || items[i-1].Token == token.ErroneousEndTagName)
	}
	return false
}

func TestLexer_Resume(t *testing.T) {
	f := jsp.NewFile("page.jsp", []byte(page))
	items := lexer.New(f, lexer.CaptureState()).All()
	for _, it := range items {
		if it.Token == token.Error {
			t.Fatalf("unexpected error at %s: %s", f.Position(it.Pos), it.Value)
		}
	}

	n := 0
	for i := range items[:len(items)-1] {
		if !resumable(items, i) {
			continue
		}
		n++
		l := lexer.New(f, lexer.CaptureState(), lexer.Resume(items[i].End, items[i].State))
		if diff := cmp.Diff(items[i+1:], l.All()); diff != "" {
			t.Fatalf("resume after %s at %s (-want +got):\n%s", items[i].String(), f.Position(items[i].Pos), diff)
		}
	}
	if n < 15 {
		t.Fatalf("only %d resume points", n)
	}
}

func TestLexer_ResumeCorrupt(t *testing.T) {
	f := jsp.NewFile("", []byte("<p>a</p>"))
	l := lexer.New(f, lexer.Resume(3, []byte{1}))
	it := l.Lex()
	if it.Token != token.Error || it.Pos != 3 || !strings.HasPrefix(it.Value, "resume: corrupt tag stack state") {
		t.Fatalf("got %s at %d", it.String(), it.Pos)
	}
	var got []string
	for _, it := range l.All() {
		got = append(got, it.Token.String())
	}
	want := []string{"TextFragment", "LTSlash", "ErroneousEndTagName", "GT", "EOF"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestLexer_CaptureState(t *testing.T) {
	f := jsp.NewFile("", []byte("<div><p>"))
	for _, it := range lexer.New(f).All() {
		if it.State != nil {
			t.Fatalf("state captured without CaptureState: %s", it.String())
		}
	}
	items := lexer.New(f, lexer.CaptureState()).All()
	// LT StartTagName GT LT StartTagName GT
	if items[5].Token != token.GT {
		t.Fatalf("got %s", items[5].String())
	}
	s := jsp.New()
	if err := s.Deserialize(items[5].State); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(s.Stack()) != "[DIV P]" {
		t.Fatalf("got %v", s.Stack())
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	lexer.New(jsp.NewFile("", []byte("<p>")), lexer.WithLogger(logger)).All()
	if !strings.Contains(buf.String(), "scanner declined") {
		t.Fatalf("no debug output:\n%s", buf.String())
	}
}
