package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/helpdeskhq/portal-core/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search modules, guides, and steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		results := search.Search(deps.Catalog.ListModules(), args[0])
		if len(results) == 0 {
			fmt.Println("no matches")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tTITLE\tBREADCRUMB\tSTEP")
		for _, r := range results {
			step := ""
			if r.Type == search.ResultTypeStep {
				step = fmt.Sprintf("#%d", r.StepIndex)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Type, r.Title, r.Breadcrumb, step)
		}
		return w.Flush()
	},
}
