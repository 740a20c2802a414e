package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"bounce/sim"
)

//go:embed *.yaml
var levelsFS embed.FS

// Default returns the built-in level layout.
func Default() (*sim.Layout, error) {
	data, err := fs.ReadFile(levelsFS, "default.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: read default.yaml: %w", err)
	}
	return parse(data)
}
