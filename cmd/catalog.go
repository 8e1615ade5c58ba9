package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the content catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tICON\tGUIDES")
		for _, m := range deps.Catalog.ListModules() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", m.ID, m.Title, m.Icon, len(m.Guides))
		}
		return w.Flush()
	},
}
