// Package apps embeds the built-in application graphs.
package apps

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/c360/semwire/config"
	"github.com/c360/semwire/errors"
)

//go:embed *.yaml
var graphs embed.FS

// Names returns the built-in application names, sorted.
func Names() []string {
	entries, _ := graphs.ReadDir(".")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Load parses the built-in graph called name with loader. A nil loader uses
// config.NewLoader.
func Load(name string, loader *config.Loader) (*config.Graph, error) {
	data, err := graphs.ReadFile(name + ".yaml")
	if err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: application %q, have %s",
			errors.ErrConfigNotFound, name, strings.Join(Names(), ", ")), "apps", "Load", "graph lookup")
	}
	if loader == nil {
		loader = config.NewLoader()
	}
	return loader.Parse(data)
}
