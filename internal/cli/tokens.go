package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/db47h/jsp"
	"github.com/db47h/jsp/internal/config"
	"github.com/db47h/jsp/internal/detect"
	"github.com/db47h/jsp/internal/logging"
	"github.com/db47h/jsp/lexer"
	"github.com/db47h/jsp/token"
)

type tokensFlags struct {
	format string
	state  bool
	width  int
	detect bool
}

func newTokensCommand(a *app) *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens [paths...]",
		Short: "Print the tokens of JSP documents",
		Long: `Lex JSP documents and print their tokens.

Directories are walked recursively and files are selected by extension. With
--detect, files with other extensions are lexed too if their content is
detected as JSP. Without arguments, the document is read from standard input.

The command fails if any error token was found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("format") {
				cfg.Format = flags.format
			}
			if cmd.Flags().Changed("state") {
				cfg.ShowState = flags.state
			}
			if cmd.Flags().Changed("width") {
				cfg.MaxValueWidth = flags.width
			}
			if cmd.Flags().Changed("detect") {
				cfg.Detect = flags.detect
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			return runTokens(cmd, cfg, args)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", config.FormatText, "output format: text, yaml")
	cmd.Flags().BoolVar(&flags.state, "state", false, "show the open elements after each token")
	cmd.Flags().IntVar(&flags.width, "width", 0, "clip token values to this many cells (0: terminal width)")
	cmd.Flags().BoolVar(&flags.detect, "detect", false, "also lex files detected as JSP by content")

	return cmd
}

func runTokens(cmd *cobra.Command, cfg *config.Config, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	var files []*jsp.File
	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		files = append(files, jsp.NewFile("<stdin>", src))
	} else {
		paths, err := detect.Walk(ctx, args, cfg.HasExtension, cfg.Detect)
		if err != nil {
			return err
		}
		logger.Debug("discovered files", logging.FieldPaths, args, logging.FieldFiles, len(paths))
		for _, path := range paths {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}
			files = append(files, jsp.NewFile(path, src))
		}
	}

	r := newRenderer(cmd.OutOrStdout(), cfg)
	errs := 0
	for _, f := range files {
		opts := []lexer.Option{lexer.WithLogger(logger.With(logging.FieldPath, f.Name()))}
		if cfg.ShowState {
			opts = append(opts, lexer.CaptureState())
		}
		items := lexer.New(f, opts...).All()
		n := 0
		for i := range items {
			if items[i].Token == token.Error {
				n++
			}
		}
		logger.Debug("lexed", logging.FieldPath, f.Name(), logging.FieldItems, len(items), logging.FieldErrors, n)
		errs += n
		if err := r.render(f, items); err != nil {
			return err
		}
	}
	if err := r.close(); err != nil {
		return err
	}
	if errs > 0 {
		return fmt.Errorf("%w: %d error(s)", ErrLexErrors, errs)
	}
	return nil
}
