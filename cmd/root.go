package cmd

import (
	"os"

	"github.com/Ayush27641/portfolio/internal/portfolio"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentPath string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio website",
	Long: `portfolio serves the personal portfolio site: about me, positions of
responsibility and a filterable project showcase.

Run without a subcommand to start the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "JSON content file (default is $PORTFOLIO_CONTENT, then built-in content)")
}

// loadCatalog returns the content named by --content, the fallback path,
// or the built-in content.
func loadCatalog(fallback string) (*portfolio.Catalog, error) {
	path := contentPath
	if path == "" {
		path = fallback
	}
	if path == "" {
		return portfolio.DefaultCatalog(), nil
	}
	return portfolio.LoadCatalog(path)
}
