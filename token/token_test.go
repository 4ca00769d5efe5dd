package token_test

import (
	"testing"

	"github.com/db47h/jsp/token"
)

func TestToken_String(t *testing.T) {
	tests := []struct {
		t    token.Token
		want string
	}{
		{token.JSPScriptlet, "JSPScriptlet"},
		{token.Comment, "Comment"},
		{token.ImplicitEndTag, "ImplicitEndTag"},
		{token.EOF, "EOF"},
		{token.Doctype, "Doctype"},
		{token.Token(20), "Token(20)"},
		{token.Token(200), "Token(200)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestToken_Order(t *testing.T) {
	// bit positions are shared with grammars and must not move
	want := []token.Token{
		token.JSPScriptlet, token.JSPExpression, token.JSPDeclaration, token.JSPComment,
		token.JSPDirectiveStart, token.ELExpression, token.TextFragment, token.InterpolationText,
		token.StartTagName, token.TemplateStartTagName, token.ScriptStartTagName, token.StyleStartTagName,
		token.EndTagName, token.ErroneousEndTagName, token.SelfClosingTagDelimiter, token.ImplicitEndTag,
		token.RawText, token.Comment,
	}
	for i, tk := range want {
		if int(tk) != i {
			t.Errorf("%s = %d, want %d", tk, tk, i)
		}
		if !tk.IsExternal() {
			t.Errorf("%s should be external", tk)
		}
	}
	if token.EOF.IsExternal() || token.LT.IsExternal() {
		t.Error("host tokens should not be external")
	}
}

func TestLookup(t *testing.T) {
	if tk, ok := token.Lookup("rawtext"); !ok || tk != token.RawText {
		t.Errorf("Lookup(rawtext) = %v, %v", tk, ok)
	}
	if tk, ok := token.Lookup("LTSlash"); !ok || tk != token.LTSlash {
		t.Errorf("Lookup(LTSlash) = %v, %v", tk, ok)
	}
	if _, ok := token.Lookup("nope"); ok {
		t.Error("Lookup(nope) succeeded")
	}
}

func TestSet(t *testing.T) {
	var s token.Set
	if s.Has(token.RawText) || len(s.Tokens()) != 0 {
		t.Fatal("zero Set is not empty")
	}
	s = token.NewSet(token.RawText, token.StartTagName, token.EOF)
	if !s.Has(token.RawText) || !s.Has(token.StartTagName) || s.Has(token.EndTagName) {
		t.Errorf("unexpected membership in %s", s)
	}
	if s.Has(token.EOF) {
		t.Error("host tokens must not be members")
	}
	if got := s.String(); got != "{StartTagName RawText}" {
		t.Errorf("String() = %q", got)
	}
	s = s.Without(token.RawText).With(token.Comment)
	if got := s.String(); got != "{StartTagName Comment}" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Union(token.NewSet(token.JSPScriptlet)).Tokens(); len(got) != 3 || got[0] != token.JSPScriptlet {
		t.Errorf("Union().Tokens() = %v", got)
	}
	if n := len(token.All.Tokens()); n != 18 {
		t.Errorf("All has %d members, want 18", n)
	}
	if token.All.Has(token.EOF) {
		t.Error("All must not contain host tokens")
	}
}
