// Package ui provides lipgloss styles and terminal helpers for jsplex output.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/db47h/jsp/token"
)

// DefaultWidth is the terminal width assumed when it cannot be determined.
const DefaultWidth = 100

// Styles contains the styled renderers for CLI output.
type Styles struct {
	FilePath lipgloss.Style
	Location lipgloss.Style

	// Token categories
	Tag      lipgloss.Style
	Implicit lipgloss.Style
	Embedded lipgloss.Style
	Text     lipgloss.Style
	Punct    lipgloss.Style
	Error    lipgloss.Style

	Value lipgloss.Style
	State lipgloss.Style
	Caret lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			FilePath: plain,
			Location: plain,
			Tag:      plain,
			Implicit: plain,
			Embedded: plain,
			Text:     plain,
			Punct:    plain,
			Error:    plain,
			Value:    plain,
			State:    plain,
			Caret:    plain,
			Dim:      plain,
			Bold:     plain,
		}
	}
	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Implicit: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true),
		Embedded: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Punct:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		State:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Caret:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
	}
}

// Token returns the style for items of type t.
func (s *Styles) Token(t token.Token) lipgloss.Style {
	switch t {
	case token.StartTagName, token.TemplateStartTagName, token.ScriptStartTagName,
		token.StyleStartTagName, token.EndTagName, token.DirectiveName:
		return s.Tag
	case token.ImplicitEndTag, token.ErroneousEndTagName:
		return s.Implicit
	case token.JSPScriptlet, token.JSPExpression, token.JSPDeclaration, token.JSPComment,
		token.JSPDirectiveStart, token.ELExpression, token.InterpolationText:
		return s.Embedded
	case token.TextFragment, token.RawText, token.Comment, token.Doctype:
		return s.Text
	case token.Error:
		return s.Error
	}
	return s.Punct
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the width of the terminal behind writer, or
// DefaultWidth.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}
