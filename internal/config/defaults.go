package config

import (
	_ "embed"

	"github.com/arcadelab/platkit/internal/sim"
)

//go:embed defaults/params.yaml
var defaultParamsYAML []byte

// DefaultParamsFile returns the default tuning in file shape.
func DefaultParamsFile() ParamsFile {
	return FromParams(sim.DefaultParams())
}

// DefaultYAML returns the embedded default tuning file, suitable for writing
// out as a starting point for a custom file.
func DefaultYAML() []byte {
	return defaultParamsYAML
}
