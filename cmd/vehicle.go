package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/safetydash/schema"
)

// maxConcurrentLookups bounds parallel lookups of the vehicle command
const maxConcurrentLookups = 4

// vehicleCmd represents the vehicle command
var vehicleCmd = &cobra.Command{
	Use:   "vehicle ID [ID...]",
	Short: "Fetch vehicles by identifier",
	Long:  `Fetch one or more vehicles by identifier and print their data as JSON.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVehicle,
}

func runVehicle(cmd *cobra.Command, args []string) error {
	results := make([]*schema.RawResponse, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentLookups)

	for i, id := range args {
		g.Go(func() error {
			resp, err := vehiclesClient.GetVehicleByID(ctx, id)
			if err != nil {
				return fmt.Errorf("vehicle %s: %w", id, err)
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, resp := range results {
		if err := resp.Err(); err != nil {
			logger.Warn().Err(err).Str("id", args[i]).Msg("Vehicle lookup reported failure")
			continue
		}

		data := resp.Data
		if len(data) == 0 {
			data = json.RawMessage("null")
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("vehicle %s: %w", args[i], err)
		}
		fmt.Fprintf(out, "# %s\n%s\n", args[i], buf.String())
	}
	return nil
}
