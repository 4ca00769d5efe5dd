package jsp_test

import (
	"fmt"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/db47h/jsp"
	"golang.org/x/text/width"
)

func TestFile_Position(t *testing.T) {
	f := jsp.NewFile("f.jsp", []byte("ab\ncd\r\n\nef"))
	tests := []struct {
		pos  jsp.Pos
		want string
		line string
	}{
		{0, "f.jsp:1:1", "ab"},
		{2, "f.jsp:1:3", "ab"},
		{3, "f.jsp:2:1", "cd"},
		{6, "f.jsp:2:4", "cd"},
		{7, "f.jsp:3:1", ""},
		{8, "f.jsp:4:1", "ef"},
		{10, "f.jsp:4:3", "ef"},
	}
	for _, tt := range tests {
		if got := f.Position(tt.pos).String(); got != tt.want {
			t.Errorf("Position(%d) = %s, want %s", tt.pos, got, tt.want)
		}
		if got := string(f.Line(tt.pos)); got != tt.line {
			t.Errorf("Line(%d) = %q, want %q", tt.pos, got, tt.line)
		}
	}
	if p := f.LinePos(0); p.IsValid() {
		t.Errorf("LinePos(0) = %d", p)
	}
	if p := f.LinePos(5); p.IsValid() {
		t.Errorf("LinePos(5) = %d", p)
	}
	if p := f.LinePos(4); p != 8 {
		t.Errorf("LinePos(4) = %d", p)
	}
	if f.Len() != 10 || f.Name() != "f.jsp" {
		t.Errorf("Len() = %d, Name() = %q", f.Len(), f.Name())
	}
}

func TestSource(t *testing.T) {
	src := jsp.NewSource(jsp.NewFile("", []byte("  é\xffx")))
	if !src.HasPrefix("  é") || src.HasPrefix("  éé\xffx") {
		t.Fatal("HasPrefix")
	}

	src.Begin()
	src.Advance(true)
	src.Advance(true)
	if r := src.Lookahead(); r != 'é' {
		t.Fatalf("Lookahead() = %q", r)
	}
	cp := src.Save()
	src.Advance(false)
	if r := src.Lookahead(); r != utf8.RuneError {
		t.Fatalf("invalid UTF-8 decoded as %q", r)
	}
	src.Advance(false)
	src.MarkEnd()
	src.Advance(false)
	if src.Lookahead() != jsp.EOF {
		t.Fatal("expected EOF")
	}
	src.Advance(false) // no-op at EOF
	if src.Offset() != 6 {
		t.Fatalf("Offset() = %d", src.Offset())
	}
	src.Restore(cp)
	if src.Offset() != 2 {
		t.Fatalf("Offset() = %d after Restore", src.Offset())
	}

	src.Advance(false)
	src.Advance(false)
	src.MarkEnd()
	start, end := src.Commit()
	if start != 2 || end != 5 {
		t.Fatalf("Commit() = %d, %d", start, end)
	}
	if src.Offset() != 5 || src.Lookahead() != 'x' {
		t.Fatalf("Offset() = %d after Commit", src.Offset())
	}

	// unmarked tokens end at the cursor
	src.Begin()
	src.Advance(false)
	if start, end = src.Commit(); start != 5 || end != 6 {
		t.Fatalf("Commit() = %d, %d", start, end)
	}

	src.Seek(100)
	if src.Offset() != 6 {
		t.Fatalf("Seek past EOF: %d", src.Offset())
	}
	src.Seek(-1)
	src.Begin()
	src.Advance(false)
	src.Reject()
	if src.Offset() != 0 {
		t.Fatalf("Offset() = %d after Reject", src.Offset())
	}
}

// This example shows how File.Line can be used to display error messages
// with the offending source line.
//
func ExampleFile_Line() {
	f := jsp.NewFile("index.jsp", []byte("<p>世界 ${a\n<ul><li>é </ol>"))
	reportError(f, 10, "unterminated expression")
	reportError(f, 25, "unexpected end tag")

	// Output:
	// index.jsp:1:11: error unterminated expression
	// |<p>世界 ${a
	// |        ^
	// index.jsp:2:12: error unexpected end tag
	// |<ul><li>é </ol>
	// |          ^
}

func reportError(f *jsp.File, p jsp.Pos, msg string) {
	pos := f.Position(p)
	fmt.Printf("%s: error %s\n", pos, msg)
	l := f.Line(p)
	b := pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	fmt.Printf("|%s\n", l)
	fmt.Printf("|%*c^\n", getWidth(l[:b]), ' ')
}

// getWidth computes the width in text cells of a given byte slice.
//
func getWidth(l []byte) int {
	w := 0
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
