package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Ayush27641/portfolio/internal/portfolio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect and validate site content files",
}

//nolint:gochecknoglobals // Cobra boilerplate
var contentValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a JSON content file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := portfolio.LoadCatalog(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d positions, %d projects)\n",
			args[0], len(c.Positions()), len(c.Projects()))
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var contentDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the built-in content as JSON, ready to edit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := json.MarshalIndent(portfolio.DefaultCatalog(), "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode content")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	contentCmd.AddCommand(contentValidateCmd, contentDumpCmd)
	rootCmd.AddCommand(contentCmd)
}
