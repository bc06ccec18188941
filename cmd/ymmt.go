package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/safetydash/vehicles"
)

var ymmtQuery vehicles.YMMT

// ymmtCmd represents the ymmt command
var ymmtCmd = &cobra.Command{
	Use:   "ymmt",
	Short: "Show safety details by year, make, model, trim and series",
	Long: `Fetch detailed safety information (crash test ratings, safety features,
recalls, complaints and manufacturer communications) for a vehicle identified
by model year, make and model, optionally narrowed by trim and series.`,
	RunE: runYMMT,
}

func init() {
	ymmtCmd.Flags().IntVar(&ymmtQuery.ModelYear, "year", 0, "model year")
	ymmtCmd.Flags().StringVar(&ymmtQuery.Make, "make", "", "vehicle make")
	ymmtCmd.Flags().StringVar(&ymmtQuery.Model, "model", "", "vehicle model")
	ymmtCmd.Flags().StringVar(&ymmtQuery.Trim, "trim", "", "trim (optional)")
	ymmtCmd.Flags().StringVar(&ymmtQuery.Series, "series", "", "series (optional)")

	_ = ymmtCmd.MarkFlagRequired("year")
	_ = ymmtCmd.MarkFlagRequired("make")
	_ = ymmtCmd.MarkFlagRequired("model")
}

func runYMMT(cmd *cobra.Command, args []string) error {
	resp, err := vehiclesClient.GetVehicleByYMMT(cmd.Context(), ymmtQuery)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatDetailed(resp.Data.Results))
	return nil
}
