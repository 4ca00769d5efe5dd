package cli

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/jsp/tag"
)

func newStateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Encode and decode serialized scanner states",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "decode HEX",
		Short: "Decode a serialized scanner state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			var s tag.Stack
			if err := s.UnmarshalBinary(b); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			total := 0
			if len(b) >= 4 {
				total = int(binary.LittleEndian.Uint16(b[2:]))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d of %d elements)\n", s.String(), s.Len(), total)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "encode NAME...",
		Short: "Serialize a stack of open elements, outermost first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s tag.Stack
			for _, name := range args {
				s.Push(tag.ForName(name))
			}
			b, err := s.MarshalBinary()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return err
		},
	})
	return cmd
}
