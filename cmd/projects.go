package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ayush27641/portfolio/internal/config"
	"github.com/Ayush27641/portfolio/internal/portfolio"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	projectsQuery string
	projectsTag   string
	projectsAll   bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects with the site's search and tag filters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg.ContentPath)
		if err != nil {
			return err
		}

		b := catalog.NewBrowser()
		b.SetQuery(projectsQuery)
		if projectsTag != "" {
			b.SetTag(projectsTag)
		}
		b.SetShowAll(projectsAll)
		printProjects(cmd.OutOrStdout(), b)
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	projectsCmd.Flags().StringVarP(&projectsQuery, "query", "q", "", "case-insensitive search over name and description")
	projectsCmd.Flags().StringVarP(&projectsTag, "tag", "t", "", "only projects carrying this tag")
	projectsCmd.Flags().BoolVarP(&projectsAll, "all", "a", false, "show every match instead of the first page")
	rootCmd.AddCommand(projectsCmd)
}

func printProjects(w io.Writer, b *portfolio.Browser) {
	displayed := b.Displayed()
	if len(displayed) == 0 {
		fmt.Fprintln(w, "No projects found matching your criteria.")
		return
	}
	for _, p := range displayed {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, strings.Join(p.Tags, ", "))
	}
	if b.HasMore() && !b.ShowAll() {
		fmt.Fprintf(w, "... %d more (use --all)\n", b.Remaining())
	}
}
