package jsp_test

import (
	"fmt"

	"github.com/db47h/jsp"
	"github.com/db47h/jsp/token"
)

// This example drives a Scanner by hand, the way a parser would, over the
// content of an unclosed list.
//
func ExampleScanner() {
	s := jsp.New()
	f := jsp.NewFile("list.jsp", []byte("ul><li>one<li>${two}"))
	src := jsp.NewSource(f)

	scan := func(valid token.Set) {
		src.Begin()
		t, ok := s.Scan(src, valid)
		if !ok {
			src.Reject()
			fmt.Println("declined")
			return
		}
		start, end := src.Commit()
		fmt.Printf("%-16s %-8q %v\n", t, f.Bytes()[start:end], s.Stack())
	}
	// punctuation is lexed by the parser itself
	skip := func(n int) {
		src.Seek(src.Offset() + jsp.Pos(n))
	}

	content := token.NewSet(token.TextFragment, token.ELExpression, token.ImplicitEndTag)

	scan(token.NewSet(token.StartTagName)) // ul
	skip(2)                                // "><"
	scan(token.NewSet(token.StartTagName)) // li
	skip(1)
	scan(content) // one
	scan(content) // implicit end of the first li
	skip(1)
	scan(token.NewSet(token.StartTagName)) // li
	skip(1)
	scan(content)
	scan(content) // EOF
	scan(content)
	scan(content)

	// Output:
	// StartTagName     "ul"     [UL]
	// StartTagName     "li"     [UL LI]
	// TextFragment     "one"    [UL LI]
	// ImplicitEndTag   ""       [UL]
	// StartTagName     "li"     [UL LI]
	// ELExpression     "${two}" [UL LI]
	// ImplicitEndTag   ""       [UL]
	// ImplicitEndTag   ""       []
	// declined
}

// Serialize and Deserialize save and restore the stack of open elements.
//
func ExampleScanner_Serialize() {
	s := jsp.New()
	src := jsp.NewSource(jsp.NewFile("", []byte("table tr td")))
	for i := 0; i < 3; i++ {
		src.Begin()
		s.Scan(src, token.NewSet(token.StartTagName))
		src.Commit()
	}
	state := s.Serialize()
	fmt.Printf("%d bytes\n", len(state))

	r := jsp.New()
	if err := r.Deserialize(state); err != nil {
		panic(err)
	}
	fmt.Println(r.Stack())

	// Output:
	// 7 bytes
	// [TABLE TR TD]
}
