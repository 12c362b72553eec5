// Package cli implements slotctl, the operator tool for the booking store.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stpnv0/SlotBooker/internal/app"
	"github.com/stpnv0/SlotBooker/internal/config"
)

// Opener builds the service graph a command runs against. The returned
// func releases it.
type Opener func(ctx context.Context) (*app.Core, func(), error)

func NewRootCmd(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "slotctl",
		Short:         "Manage the SlotBooker store",
		Long:          `slotctl exports, imports and resets the booking store and prints dashboard statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newExportCmd(open),
		newImportCmd(open),
		newStatsCmd(open),
		newResetCmd(open),
	)

	return root
}

func Execute(ctx context.Context) error {
	return NewRootCmd(openFromConfig).ExecuteContext(ctx)
}

func openFromConfig(ctx context.Context) (*app.Core, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := app.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	core, err := app.NewCore(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	return core, func() { _ = core.Close(context.Background()) }, nil
}

// withCore opens the store for the duration of fn.
func withCore(cmd *cobra.Command, open Opener, fn func(ctx context.Context, core *app.Core) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	core, release, err := open(ctx)
	if err != nil {
		return err
	}
	defer release()

	return fn(ctx, core)
}
