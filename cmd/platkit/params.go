package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arcadelab/platkit/internal/config"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Print the effective tuning as YAML",
	Long: `Resolve the tuning file search order (--params, ~/.platkit/params.yaml,
./configs/params.yaml, embedded default) and print the result. The output is
itself a valid tuning file.

Examples:
  platkit params
  platkit params --params ./my-tuning.yaml > configs/params.yaml`,
	Run: runParams,
}

func runParams(_ *cobra.Command, _ []string) {
	p, err := config.LoadParams(flagParamsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(config.FromParams(p))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
