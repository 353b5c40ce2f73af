// Package network defines the host-owned model of a layered network diagram:
// the ordered list of layers and the visual style applied to them.
//
// Values in this package are immutable from the consumer's point of view.
// Every editing operation returns a fresh value and never mutates its
// receiver, so the layout engine always observes a consistent snapshot.
//
// # Usage
//
//	net := network.Default()
//	net = net.Add()                 // append a layer with the default count
//	net = net.SetNeurons(1, 12)     // clamped to [1, 50]
//	net = net.Remove(0)             // no-op once only two layers remain
package network

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Neuron count and layer count bounds enforced by the editing operations.
const (
	MinNeurons = 1
	MaxNeurons = 50

	// DefaultNeurons is the neuron count assigned to newly added layers.
	DefaultNeurons = 5

	// MinLayers is the floor for the layer sequence. Remove refuses to
	// shrink the network below this.
	MinLayers = 2
)

// Layer is one ordered stage of the depicted network. ID is an opaque
// identifier assigned when the layer is created; position in the Network
// slice defines depth.
type Layer struct {
	ID      string `json:"id"`
	Neurons int    `json:"neurons"`
}

// Network is the ordered layer sequence. The zero value is an empty network;
// use Default for the standard four-layer starting point.
type Network []Layer

// Default returns the initial network shown before any editing:
// four layers shaped like a small classifier.
func Default() Network {
	counts := []int{4, 6, 6, 2}
	net := make(Network, len(counts))
	for i, c := range counts {
		net[i] = Layer{ID: fmt.Sprintf("layer-%d", i+1), Neurons: c}
	}
	return net
}

// FromCounts builds a network from raw neuron counts, clamping each count
// to [MinNeurons, MaxNeurons]. Used by hosts that take counts directly
// (CLI flags, config files).
func FromCounts(counts []int) Network {
	net := make(Network, len(counts))
	for i, c := range counts {
		net[i] = Layer{ID: fmt.Sprintf("layer-%d", i+1), Neurons: ClampNeurons(c)}
	}
	return net
}

// Counts returns the raw neuron count per layer, in order.
func (n Network) Counts() []int {
	counts := make([]int, len(n))
	for i, l := range n {
		counts[i] = l.Neurons
	}
	return counts
}

// String renders the network as comma-separated counts, e.g. "4,6,6,2".
func (n Network) String() string {
	parts := make([]string, len(n))
	for i, l := range n {
		parts[i] = strconv.Itoa(l.Neurons)
	}
	return strings.Join(parts, ",")
}

// Add returns a copy with one layer appended, carrying DefaultNeurons.
func (n Network) Add() Network {
	out := make(Network, len(n), len(n)+1)
	copy(out, n)
	return append(out, Layer{ID: n.nextID(), Neurons: DefaultNeurons})
}

// Remove returns a copy with the layer at index i removed. Removing is a
// no-op when the network already sits at MinLayers or when i is out of
// range, so the result is always a valid network.
func (n Network) Remove(i int) Network {
	if len(n) <= MinLayers || i < 0 || i >= len(n) {
		return n
	}
	out := make(Network, 0, len(n)-1)
	out = append(out, n[:i]...)
	return append(out, n[i+1:]...)
}

// SetNeurons returns a copy with layer i's neuron count replaced, clamped
// to [MinNeurons, MaxNeurons]. Out-of-range indices return the receiver
// unchanged.
func (n Network) SetNeurons(i, neurons int) Network {
	if i < 0 || i >= len(n) {
		return n
	}
	out := make(Network, len(n))
	copy(out, n)
	out[i].Neurons = ClampNeurons(neurons)
	return out
}

// ClampNeurons clamps a neuron count to [MinNeurons, MaxNeurons].
func ClampNeurons(n int) int {
	if n < MinNeurons {
		return MinNeurons
	}
	if n > MaxNeurons {
		return MaxNeurons
	}
	return n
}

// nextID picks an identifier not present in the network. IDs are opaque to
// everything downstream; a numeric suffix keeps them stable and readable.
func (n Network) nextID() string {
	max := 0
	for _, l := range n {
		if rest, ok := strings.CutPrefix(l.ID, "layer-"); ok {
			if v, err := strconv.Atoi(rest); err == nil && v > max {
				max = v
			}
		}
	}
	return fmt.Sprintf("layer-%d", max+1)
}

// Reroll returns the style with a fresh distinguishing seed so that link
// opacities regenerate without altering topology or any other setting.
// Millisecond resolution keeps the seed well inside float64's exact
// integer range, where the weight counter operates.
func Reroll(s Style) Style {
	s.Seed = time.Now().UnixMilli()
	return s
}
