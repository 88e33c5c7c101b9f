// Package presets holds named configurations selected with --preset.
package presets

import (
	"fmt"
	"maps"
	"slices"

	"github.com/biblepay/go-gsc/config"
)

var presets = map[string]config.Config{}

func register(name string, preset config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	presets[name] = preset
}

// Options returns the registered preset names.
func Options() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Get returns a copy of the named preset.
func Get(name string) (config.Config, error) {
	preset, exist := presets[name]
	if !exist {
		return config.Config{}, fmt.Errorf("preset %s is not registered. select one from %v", name, Options())
	}
	preset.Sporks = maps.Clone(preset.Sporks)
	preset.Ledger.Sources = maps.Clone(preset.Ledger.Sources)
	preset.Engine.Campaigns = slices.Clone(preset.Engine.Campaigns)
	return preset, nil
}
