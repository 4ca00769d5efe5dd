package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/jsp/internal/ui"
	"github.com/db47h/jsp/token"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := ui.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "test", styles.Bold.Render("test"))
	assert.Equal(t, "test", styles.Token(token.Error).Render("test"))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ui.IsColorEnabled("always", &buf))
	assert.False(t, ui.IsColorEnabled("never", os.Stdout))
	assert.False(t, ui.IsColorEnabled("auto", &buf), "a buffer is not a TTY")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ui.IsColorEnabled("auto", os.Stdout))
}

func TestTerminalWidth(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.DefaultWidth, ui.TerminalWidth(&buf))
}

func TestWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"déjà vu", 7},
		{"世界", 4},
		{"＃〄", 4},
		{"a\tb", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ui.Width([]byte(tt.s)), "%q", tt.s)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, `"<p>"`, ui.Clip("<p>", 0))
	assert.Equal(t, `"a\nb"`, ui.Clip("a\nb", 10))
	assert.Equal(t, `"hello…`, ui.Clip("hello world", 7))
	assert.Equal(t, `"世…`, ui.Clip("世界", 4))
}

func TestCaret(t *testing.T) {
	line := []byte("＃〄 - Hello 世界 1<")
	// byte column of '1'
	col := bytes.IndexByte(line, '1') + 1
	assert.Equal(t, "                  ^", ui.Caret(line, col))
	assert.Equal(t, "^", ui.Caret([]byte("abc"), 0))
	assert.Equal(t, "   ^", ui.Caret([]byte("abc"), 10))
}
