package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arcadelab/platkit/internal/storage"
)

var (
	flagRunsName  string
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded replay runs",
	Long: `Show runs previously recorded with 'replay --save' or 'trace --save',
most recent first. Two runs of the same document should show identical trace
hashes; a difference means the inputs, the tuning or the kernel changed.

Examples:
  platkit runs
  platkit runs --name jump --limit 5
  platkit runs --name jump --clear`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsName, "name", "", "Only show runs recorded under this name")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the named runs instead of listing")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if flagRunsName == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear requires --name")
			os.Exit(1)
		}
		if err := store.ClearRuns(flagRunsName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("cleared runs named %q\n", flagRunsName)
		return
	}

	entries, err := store.RecentRuns(flagRunsName, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTICKS\tFINAL\tEVENTS\tTRACE\tWHEN")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t(%g,%g)\t%d/%d/%d\t%s\t%s\n",
			e.Name, e.Ticks, e.FinalX, e.FinalY,
			e.Jumped, e.Landed, e.Bonked,
			e.TraceHex, e.CreatedAt.Format("Jan 02 15:04"),
		)
	}
	w.Flush()
}
