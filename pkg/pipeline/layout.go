package pipeline

import (
	"encoding/json"

	"github.com/netsketch/netsketch/pkg/cache"
	"github.com/netsketch/netsketch/pkg/layout"
	"github.com/netsketch/netsketch/pkg/network"
)

// ComputeScene runs the layout stage for the given options.
// Options must have been validated first.
func ComputeScene(opts Options) layout.Scene {
	return layout.Build(opts.Network, opts.Style, opts.Viewport())
}

// layoutInputs is the canonical serialization of everything that feeds
// the layout stage. Artifacts rendered from equal inputs are identical,
// so this is what artifact cache keys hash.
type layoutInputs struct {
	Counts   []int           `json:"counts"`
	Style    network.Style   `json:"style"`
	Viewport layout.Viewport `json:"viewport"`
}

// InputHash returns the content hash of the layout inputs.
func InputHash(opts Options) string {
	in := layoutInputs{
		Counts:   opts.Network.Counts(),
		Style:    opts.Style,
		Viewport: opts.Viewport(),
	}
	data, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}
