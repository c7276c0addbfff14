package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arcadelab/platkit/internal/scenario"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenes",
	Long:  `List the scenes available to the sandbox and the canonical trace.`,
	Run:   runScenarios,
}

func runScenarios(_ *cobra.Command, _ []string) {
	infos := scenario.List()
	if len(infos) == 0 {
		fmt.Println("No scenes registered.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tRECTS")
	for _, info := range infos {
		scn, err := scenario.Create(info.ID)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", info.ID, info.Title, len(scn.World))
	}
	w.Flush()
}
