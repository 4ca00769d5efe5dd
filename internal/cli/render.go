package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/db47h/jsp"
	"github.com/db47h/jsp/internal/config"
	"github.com/db47h/jsp/internal/ui"
	"github.com/db47h/jsp/lexer"
	"github.com/db47h/jsp/tag"
	"github.com/db47h/jsp/token"
)

const (
	locWidth   = 9
	tokenWidth = 24
	minValue   = 16
)

type yamlItem struct {
	Token  string `yaml:"token"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
	Offset int    `yaml:"offset"`
	End    int    `yaml:"end"`
	Value  string `yaml:"value,omitempty"`
	Stack  string `yaml:"stack,omitempty"`
	State  string `yaml:"state,omitempty"`
}

type yamlDocument struct {
	Path  string     `yaml:"path"`
	Items []yamlItem `yaml:"items"`
}

// renderer prints lexed items.
type renderer struct {
	w      io.Writer
	cfg    *config.Config
	styles *ui.Styles
	width  int
	enc    *yaml.Encoder
}

func newRenderer(w io.Writer, cfg *config.Config) *renderer {
	width := cfg.MaxValueWidth
	if width == 0 {
		width = ui.TerminalWidth(w) - locWidth - tokenWidth - 2
		if width < minValue {
			width = minValue
		}
	}
	r := &renderer{
		w:      w,
		cfg:    cfg,
		styles: ui.NewStyles(ui.IsColorEnabled(cfg.Color, w)),
		width:  width,
	}
	if cfg.Format == config.FormatYAML {
		r.enc = yaml.NewEncoder(w)
		r.enc.SetIndent(2)
	}
	return r
}

func (r *renderer) render(f *jsp.File, items []lexer.Item) error {
	if r.enc != nil {
		return r.renderYAML(f, items)
	}
	return r.renderText(f, items)
}

func (r *renderer) close() error {
	if r.enc != nil {
		if err := r.enc.Close(); err != nil {
			return fmt.Errorf("close encoder: %w", err)
		}
	}
	return nil
}

func (r *renderer) renderText(f *jsp.File, items []lexer.Item) error {
	s := r.styles
	if _, err := fmt.Fprintln(r.w, s.FilePath.Render(f.Name())); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	var b strings.Builder
	for i := range items {
		it := &items[i]
		pos := f.Position(it.Pos)
		loc := fmt.Sprintf("%d:%d", pos.Line, pos.Column)
		tok := it.Token.String()

		b.Reset()
		b.WriteString(pad(s.Location.Render(loc), loc, locWidth))
		b.WriteString(pad(s.Token(it.Token).Render(tok), tok, tokenWidth))
		if it.Value != "" {
			b.WriteString(s.Value.Render(ui.Clip(it.Value, r.width)))
		}
		if r.cfg.ShowState && it.State != nil {
			b.WriteByte(' ')
			b.WriteString(s.State.Render(stackString(it.State)))
		}
		b.WriteByte('\n')
		if it.Token == token.Error {
			line := f.Line(it.Pos)
			b.WriteString(s.Dim.Render("  | "))
			b.Write(line)
			b.WriteByte('\n')
			b.WriteString(s.Dim.Render("  | "))
			b.WriteString(s.Caret.Render(ui.Caret(line, pos.Column)))
			b.WriteByte('\n')
		}
		if _, err := io.WriteString(r.w, b.String()); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

func (r *renderer) renderYAML(f *jsp.File, items []lexer.Item) error {
	doc := yamlDocument{Path: f.Name(), Items: make([]yamlItem, 0, len(items))}
	for i := range items {
		it := &items[i]
		pos := f.Position(it.Pos)
		yi := yamlItem{
			Token:  it.Token.String(),
			Line:   pos.Line,
			Column: pos.Column,
			Offset: int(it.Pos),
			End:    int(it.End),
			Value:  it.Value,
		}
		if r.cfg.ShowState && it.State != nil {
			yi.Stack = stackString(it.State)
			yi.State = hex.EncodeToString(it.State)
		}
		doc.Items = append(doc.Items, yi)
	}
	if err := r.enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode %s: %w", f.Name(), err)
	}
	return nil
}

// pad pads the styled rendering of s to n cells.
func pad(styled, s string, n int) string {
	w := ui.Width([]byte(s))
	if w >= n {
		return styled + " "
	}
	return styled + strings.Repeat(" ", n-w)
}

func stackString(state []byte) string {
	var s tag.Stack
	if err := s.UnmarshalBinary(state); err != nil {
		return "<" + err.Error() + ">"
	}
	return s.String()
}
