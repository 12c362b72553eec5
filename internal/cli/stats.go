package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/stpnv0/SlotBooker/internal/app"
)

func newStatsCmd(open Opener) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(cmd, open, func(ctx context.Context, core *app.Core) error {
				st, err := core.Bookings.Statistics(ctx)
				if err != nil {
					return fmt.Errorf("statistics: %w", err)
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(st)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "Total bookings\t%d\n", st.TotalBookings)
				fmt.Fprintf(w, "Today\t%d\n", st.TodayBookings)
				fmt.Fprintf(w, "This week\t%d\n", st.WeeklyBookings)
				fmt.Fprintf(w, "Confirmed\t%d\n", st.ConfirmedBookings)
				fmt.Fprintf(w, "Pending\t%d\n", st.PendingBookings)
				fmt.Fprintf(w, "Cancelled\t%d\n", st.CancelledBookings)
				fmt.Fprintf(w, "Completed\t%d\n", st.CompletedBookings)
				fmt.Fprintf(w, "Customers\t%d\n", st.TotalCustomers)
				fmt.Fprintf(w, "Revenue\t%.2f\n", st.TotalRevenue)
				fmt.Fprintf(w, "Completion rate\t%d%%\n", st.CompletionRate)
				return w.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}
