package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/safetydash/filter"
)

var (
	searchOffset int
	searchMax    int
	filterExpr   string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search vehicles by keyword",
	Long: `Search vehicles by free text. Results can be narrowed client side with an
expression, for example:

  safetydash search "toyota camry" --filter 'recalls > 0 and year >= 2020'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "pagination offset")
	searchCmd.Flags().IntVar(&searchMax, "max", 0, "page size (default from config)")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to the returned page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	pageSize := cfg.Search.PageSize
	if cmd.Flags().Changed("max") {
		pageSize = searchMax
	}

	// Compile before the request so a bad expression costs nothing
	if filterExpr != "" {
		if _, err := filter.Compile(filterExpr); err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	logger.Info().Str("query", query).Int("offset", searchOffset).Int("max", pageSize).Msg("Searching vehicles")

	resp, err := vehiclesClient.SearchVehicles(cmd.Context(), query, searchOffset, pageSize)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	results, err := filter.Apply(resp.Data.Results, filterExpr)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatSearch(resp.Data.Meta, results))
	return nil
}
