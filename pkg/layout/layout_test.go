package layout

import (
	"math"
	"testing"

	"github.com/netsketch/netsketch/pkg/network"
)

var testViewport = Viewport{Width: 800, Height: 600}

func testStyle() network.Style {
	s := network.DefaultStyle()
	s.Bezier = false
	s.ShowBias = false
	s.ShowLabels = false
	return s
}

func TestBuildNodeCounts(t *testing.T) {
	tests := []struct {
		name      string
		counts    []int
		showBias  bool
		wantNodes int
		wantLinks int
	}{
		{"TwoLayers", []int{3, 2}, false, 5, 6},
		{"TwoLayersBias", []int{3, 2}, true, 6, 8},
		{"ThreeLayers", []int{4, 6, 2}, false, 12, 36},
		{"ThreeLayersBias", []int{4, 6, 2}, true, 14, 44},
		{"SingleNeurons", []int{1, 1}, false, 2, 1},
		{"SingleLayer", []int{5}, false, 5, 0},
		{"Empty", nil, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := testStyle()
			style.ShowBias = tt.showBias
			scene := Build(network.FromCounts(tt.counts), style, testViewport)

			if len(scene.Nodes) != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", len(scene.Nodes), tt.wantNodes)
			}
			if len(scene.Links) != tt.wantLinks {
				t.Errorf("links = %d, want %d", len(scene.Links), tt.wantLinks)
			}
		})
	}
}

// Toggling bias adds exactly one node per non-final layer.
func TestBuildBiasToggle(t *testing.T) {
	net := network.FromCounts([]int{4, 6, 6, 2})
	style := testStyle()

	without := Build(net, style, testViewport)
	style.ShowBias = true
	with := Build(net, style, testViewport)

	wantExtra := len(net) - 1
	if got := len(with.Nodes) - len(without.Nodes); got != wantExtra {
		t.Errorf("bias added %d nodes, want %d", got, wantExtra)
	}

	// The final layer keeps its raw count.
	layers := with.LayerNodes()
	last := layers[len(layers)-1]
	if len(last) != 2 {
		t.Errorf("final layer has %d nodes, want 2", len(last))
	}
	for _, n := range last {
		if n.Bias {
			t.Errorf("final layer contains bias node %s", n.ID)
		}
	}

	// The bias node is last in its layer.
	for i, ns := range layers[:len(layers)-1] {
		if !ns[len(ns)-1].Bias {
			t.Errorf("layer %d: last node is not the bias unit", i)
		}
		for _, n := range ns[:len(ns)-1] {
			if n.Bias {
				t.Errorf("layer %d: bias node %s not in last position", i, n.ID)
			}
		}
	}
}

func TestBuildLayerSpacingAndCentering(t *testing.T) {
	for _, dir := range []network.Direction{network.DirectionHorizontal, network.DirectionVertical} {
		t.Run(string(dir), func(t *testing.T) {
			style := testStyle()
			style.Direction = dir
			style.LayerGap = 120
			net := network.FromCounts([]int{3, 5, 4})

			scene := Build(net, style, testViewport)
			layers := scene.LayerNodes()

			mainOf := func(n Node) float64 {
				if dir == network.DirectionVertical {
					return n.Y
				}
				return n.X
			}
			mainCenter := testViewport.Width / 2
			if dir == network.DirectionVertical {
				mainCenter = testViewport.Height / 2
			}

			// Consecutive layers differ by exactly the configured gap.
			for i := 1; i < len(layers); i++ {
				got := mainOf(layers[i][0]) - mainOf(layers[i-1][0])
				if math.Abs(got-style.LayerGap) > 1e-9 {
					t.Errorf("layer %d gap = %v, want %v", i, got, style.LayerGap)
				}
			}

			// Main-axis positions are symmetric about the viewport center.
			first := mainOf(layers[0][0])
			last := mainOf(layers[len(layers)-1][0])
			if math.Abs((first+last)/2-mainCenter) > 1e-9 {
				t.Errorf("layer extent centered at %v, want %v", (first+last)/2, mainCenter)
			}

			// All nodes of one layer share the main coordinate.
			for i, ns := range layers {
				for _, n := range ns {
					if math.Abs(mainOf(n)-mainOf(ns[0])) > 1e-9 {
						t.Errorf("layer %d: node %s off the layer line", i, n.ID)
					}
				}
			}
		})
	}
}

func TestBuildCrossAxisSpacing(t *testing.T) {
	style := testStyle()
	style.NodeSize = 20 // spacing 50
	scene := Build(network.FromCounts([]int{4, 2}), style, testViewport)
	layers := scene.LayerNodes()

	wantSpacing := style.NodeSize * crossSpacingFactor
	for i, ns := range layers {
		for j := 1; j < len(ns); j++ {
			got := ns[j].Y - ns[j-1].Y
			if math.Abs(got-wantSpacing) > 1e-9 {
				t.Errorf("layer %d: cross spacing = %v, want %v", i, got, wantSpacing)
			}
		}
		// Centered on the cross axis.
		mid := (ns[0].Y + ns[len(ns)-1].Y) / 2
		if math.Abs(mid-testViewport.Height/2) > 1e-9 {
			t.Errorf("layer %d centered at %v, want %v", i, mid, testViewport.Height/2)
		}
	}
}

func TestBuildSingleNodeLayerAtCrossCenter(t *testing.T) {
	scene := Build(network.FromCounts([]int{1, 1}), testStyle(), testViewport)
	for _, n := range scene.Nodes {
		if n.Y != testViewport.Height/2 {
			t.Errorf("node %s at Y=%v, want %v", n.ID, n.Y, testViewport.Height/2)
		}
	}
}

func TestBuildLinkTargets(t *testing.T) {
	style := testStyle()
	style.ShowBias = true
	net := network.FromCounts([]int{3, 4, 2})
	scene := Build(net, style, testViewport)

	incoming := map[string]int{}
	for _, l := range scene.Links {
		if l.To.Bias {
			t.Errorf("link %s targets a bias node", l.ID)
		}
		if l.To.Layer != l.From.Layer+1 {
			t.Errorf("link %s skips layers (%d -> %d)", l.ID, l.From.Layer, l.To.Layer)
		}
		incoming[l.To.ID]++
	}

	// Every non-bias node of layer i+1 receives effectiveCount(i) links.
	effective := []int{4, 5, 2} // counts plus bias on non-final layers
	for _, n := range scene.Nodes {
		if n.Layer == 0 || n.Bias {
			continue
		}
		if got, want := incoming[n.ID], effective[n.Layer-1]; got != want {
			t.Errorf("node %s incoming = %d, want %d", n.ID, got, want)
		}
	}
}

func TestBuildWeightDeterminism(t *testing.T) {
	net := network.FromCounts([]int{4, 6, 3})
	style := testStyle()
	style.Seed = 1234

	a := Build(net, style, testViewport)
	b := Build(net, style, testViewport)

	if len(a.Links) != len(b.Links) {
		t.Fatalf("link counts differ: %d vs %d", len(a.Links), len(b.Links))
	}
	for i := range a.Links {
		if a.Links[i].Weight != b.Links[i].Weight {
			t.Fatalf("link %d: weights differ (%v vs %v)", i, a.Links[i].Weight, b.Links[i].Weight)
		}
	}

	style.Seed = 1235
	c := Build(net, style, testViewport)
	same := true
	for i := range a.Links {
		if a.Links[i].Weight != c.Links[i].Weight {
			same = false
			break
		}
	}
	if same {
		t.Error("changing the seed left every weight unchanged")
	}
}

func TestBuildWeightVariationWithHugeSeed(t *testing.T) {
	// Seeds beyond 2^53 exceed float64's exact integer range; the stream
	// must keep producing distinct weights per link regardless.
	style := testStyle()
	style.Seed = 1_756_000_000_000_000_000
	scene := Build(network.FromCounts([]int{3, 4, 2}), style, testViewport)

	distinct := map[float64]bool{}
	for _, l := range scene.Links {
		distinct[l.Weight] = true
	}
	if len(distinct) < 2 {
		t.Errorf("all %d link weights identical for seed %d", len(scene.Links), style.Seed)
	}
}

func TestBuildWeightFormula(t *testing.T) {
	// First links of adjacent layers consume seed, seed+1, ... in order.
	style := testStyle()
	style.Seed = 7
	scene := Build(network.FromCounts([]int{2, 2}), style, testViewport)

	counter := float64(style.Seed)
	for i, l := range scene.Links {
		v := math.Sin(counter) * 10000
		want := v - math.Floor(v)
		if l.Weight != want {
			t.Errorf("link %d: weight = %v, want %v", i, l.Weight, want)
		}
		if l.Weight < 0 || l.Weight >= 1 {
			t.Errorf("link %d: weight %v outside [0,1)", i, l.Weight)
		}
		counter++
	}
}

func TestBuildNodeIDs(t *testing.T) {
	scene := Build(network.FromCounts([]int{2, 3}), testStyle(), testViewport)

	want := []string{"0-0", "0-1", "1-0", "1-1", "1-2"}
	if len(scene.Nodes) != len(want) {
		t.Fatalf("nodes = %d, want %d", len(scene.Nodes), len(want))
	}
	for i, id := range want {
		if scene.Nodes[i].ID != id {
			t.Errorf("node %d: ID = %q, want %q", i, scene.Nodes[i].ID, id)
		}
	}
	if got := scene.Links[0].ID; got != "0-0->1-0" {
		t.Errorf("first link ID = %q, want 0-0->1-0", got)
	}
}

func TestBuildZeroViewport(t *testing.T) {
	scene := Build(network.FromCounts([]int{3, 2}), testStyle(), Viewport{})
	if len(scene.Nodes) != 5 {
		t.Fatalf("nodes = %d, want 5", len(scene.Nodes))
	}
	// Degenerate layout is centered at the origin: positions are finite
	// and symmetric around zero on the main axis.
	var sum float64
	for _, ns := range scene.LayerNodes() {
		if math.IsNaN(ns[0].X) || math.IsInf(ns[0].X, 0) {
			t.Fatalf("non-finite coordinate %v", ns[0].X)
		}
		sum += ns[0].X
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("main-axis positions sum to %v, want 0", sum)
	}
}

func TestBuildVerticalSwapsAxes(t *testing.T) {
	style := testStyle()
	h := Build(network.FromCounts([]int{3, 2}), style, Viewport{Width: 600, Height: 600})
	style.Direction = network.DirectionVertical
	v := Build(network.FromCounts([]int{3, 2}), style, Viewport{Width: 600, Height: 600})

	for i := range h.Nodes {
		if h.Nodes[i].X != v.Nodes[i].Y || h.Nodes[i].Y != v.Nodes[i].X {
			t.Errorf("node %s: horizontal (%v,%v) vs vertical (%v,%v) not transposed",
				h.Nodes[i].ID, h.Nodes[i].X, h.Nodes[i].Y, v.Nodes[i].X, v.Nodes[i].Y)
		}
	}
}
