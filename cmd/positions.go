package cmd

import (
	"fmt"
	"io"

	"github.com/Ayush27641/portfolio/internal/config"
	"github.com/Ayush27641/portfolio/internal/portfolio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var positionsSelect int

//nolint:gochecknoglobals // Cobra boilerplate
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Print the positions timeline and the selected entry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg.ContentPath)
		if err != nil {
			return err
		}

		sel := catalog.NewSelector()
		if cmd.Flags().Changed("select") && !sel.Select(positionsSelect) {
			return errors.Wrapf(portfolio.ErrNotFound, "position %d", positionsSelect)
		}
		sel.ActivateOnVisible()
		printPositions(cmd.OutOrStdout(), sel)
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	positionsCmd.Flags().IntVarP(&positionsSelect, "select", "s", 0, "id of the position to show (default is the first)")
	rootCmd.AddCommand(positionsCmd)
}

func printPositions(w io.Writer, sel *portfolio.Selector) {
	for _, p := range sel.Positions() {
		marker := " "
		if sel.IsActive(p.ID) {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d  %s (%s)\n", marker, p.ID, p.Title, p.Period)
	}

	active, ok := sel.Active()
	if !ok {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, active.Title)
	if active.Organization != "" {
		fmt.Fprintln(w, active.Organization)
	}
	for _, r := range active.Responsibilities {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}
