package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/stpnv0/SlotBooker/internal/app"
	"go.yaml.in/yaml/v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newExportCmd(open Opener) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export bookings, users and services",
		Long:  `Write the whole store as one document. JSON output can be fed back to "slotctl import".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown format %q, want json or yaml", format)
			}

			return withCore(cmd, open, func(ctx context.Context, core *app.Core) error {
				doc, err := core.Transfer.Export(ctx)
				if err != nil {
					return fmt.Errorf("export: %w", err)
				}

				data, err := encode(doc, format)
				if err != nil {
					return err
				}

				if output == "" || output == "-" {
					_, err = cmd.OutOrStdout().Write(data)
					return err
				}

				if err = os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format (json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// encode renders doc in format. YAML goes through the JSON form so field
// names match the JSON export.
func encode(doc any, format string) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	if format == formatJSON {
		return append(raw, '\n'), nil
	}

	var generic any
	if err = json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	out, err := yaml.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
