package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/jsp/internal/ui"
	"github.com/db47h/jsp/tag"
)

func newTagsCommand(a *app) *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "tags NAME...",
		Short: "Classify element names",
		Long: `Print how element names are classified: their kind, whether they are
void or raw text elements and, with --parent, whether the parent element can
contain them or is implicitly closed by them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := ui.NewStyles(ui.IsColorEnabled(a.cfg.Color, out))
			var p tag.Tag
			if parent != "" {
				p = tag.ForName(parent)
			}
			for _, name := range args {
				t := tag.ForName(name)
				var b strings.Builder
				b.WriteString(pad(s.Tag.Render(t.String()), t.String(), 12))
				fmt.Fprintf(&b, "kind=%s void=%t raw=%t", t.Kind, t.IsVoid(), t.IsRawText())
				if parent != "" {
					fmt.Fprintf(&b, " in-%s=%t", p, p.CanContain(t))
				}
				b.WriteByte('\n')
				if _, err := fmt.Fprint(out, b.String()); err != nil {
					return fmt.Errorf("write: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "check containment in this parent element")

	return cmd
}
