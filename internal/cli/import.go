package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stpnv0/SlotBooker/internal/app"
	"github.com/stpnv0/SlotBooker/internal/domain"
)

func newImportCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON export",
		Long:  `Replace the collections present in the document. Use "-" to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			return withCore(cmd, open, func(ctx context.Context, core *app.Core) error {
				if err := core.Transfer.Import(ctx, data); err != nil {
					var ve *domain.ValidationErrors
					if errors.As(err, &ve) {
						for _, f := range ve.Fields {
							fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f.Field, f.Message)
						}
					}
					return fmt.Errorf("import: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Import complete.")
				return nil
			})
		},
	}
}

func newResetCmd(open Opener) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the store and reseed defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes every booking, user and service; rerun with --yes")
			}

			return withCore(cmd, open, func(ctx context.Context, core *app.Core) error {
				if err := core.Transfer.Reset(ctx); err != nil {
					return fmt.Errorf("reset: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Store reset to defaults.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
