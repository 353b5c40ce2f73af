package network

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	net := Default()
	if len(net) != 4 {
		t.Fatalf("len = %d, want 4", len(net))
	}
	seen := map[string]bool{}
	for _, l := range net {
		if l.Neurons < MinNeurons || l.Neurons > MaxNeurons {
			t.Errorf("layer %s: neurons %d out of range", l.ID, l.Neurons)
		}
		if seen[l.ID] {
			t.Errorf("duplicate layer ID %q", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestAdd(t *testing.T) {
	net := Default()
	grown := net.Add()

	if len(grown) != len(net)+1 {
		t.Fatalf("len = %d, want %d", len(grown), len(net)+1)
	}
	last := grown[len(grown)-1]
	if last.Neurons != DefaultNeurons {
		t.Errorf("appended neurons = %d, want %d", last.Neurons, DefaultNeurons)
	}
	for _, l := range net {
		if l.ID == last.ID {
			t.Errorf("appended layer reuses existing ID %q", last.ID)
		}
	}
	if len(net) != 4 {
		t.Errorf("Add mutated its receiver: len = %d", len(net))
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		counts  []int
		index   int
		wantLen int
	}{
		{"Middle", []int{3, 4, 5}, 1, 2},
		{"First", []int{3, 4, 5}, 0, 2},
		{"Last", []int{3, 4, 5}, 2, 2},
		{"AtFloor", []int{3, 4}, 0, 2},
		{"NegativeIndex", []int{3, 4, 5}, -1, 3},
		{"OutOfRange", []int{3, 4, 5}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := FromCounts(tt.counts)
			got := net.Remove(tt.index)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestRemoveIsNoOpAtFloor(t *testing.T) {
	net := FromCounts([]int{3, 2})
	got := net.Remove(0)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Neurons != 3 || got[1].Neurons != 2 {
		t.Errorf("counts = %v, want [3 2]", got.Counts())
	}
}

func TestSetNeurons(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"InRange", 12, 12},
		{"ClampLow", 0, 1},
		{"ClampNegative", -5, 1},
		{"ClampHigh", 75, 50},
		{"AtMin", 1, 1},
		{"AtMax", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := FromCounts([]int{3, 4})
			got := net.SetNeurons(0, tt.value)
			if got[0].Neurons != tt.want {
				t.Errorf("neurons = %d, want %d", got[0].Neurons, tt.want)
			}
			if net[0].Neurons != 3 {
				t.Errorf("SetNeurons mutated its receiver")
			}
		})
	}

	t.Run("OutOfRangeIndex", func(t *testing.T) {
		net := FromCounts([]int{3, 4})
		if got := net.SetNeurons(5, 10); got.String() != "3,4" {
			t.Errorf("counts = %s, want 3,4", got)
		}
	})
}

func TestFromCountsClamps(t *testing.T) {
	net := FromCounts([]int{0, 100, 7})
	want := []int{1, 50, 7}
	for i, w := range want {
		if net[i].Neurons != w {
			t.Errorf("layer %d: neurons = %d, want %d", i, net[i].Neurons, w)
		}
	}
}

func TestStyleNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Style
		check func(t *testing.T, s Style)
	}{
		{
			name: "Zero",
			in:   Style{},
			check: func(t *testing.T, s Style) {
				if s.NodeSize != MinNodeSize {
					t.Errorf("NodeSize = %v, want %v", s.NodeSize, MinNodeSize)
				}
				if s.LayerGap != MinLayerGap {
					t.Errorf("LayerGap = %v, want %v", s.LayerGap, MinLayerGap)
				}
				if s.Direction != DirectionHorizontal {
					t.Errorf("Direction = %q, want horizontal", s.Direction)
				}
				if s.Arrowheads != ArrowheadNone {
					t.Errorf("Arrowheads = %q, want none", s.Arrowheads)
				}
				if s.EdgeColor == "" || s.NodeColor == "" || s.NodeBorderColor == "" {
					t.Error("colors not defaulted")
				}
				if s.Seed != 0 {
					t.Errorf("Seed = %d, want 0 preserved", s.Seed)
				}
			},
		},
		{
			name: "ClampHigh",
			in:   Style{NodeSize: 500, LayerGap: 9999},
			check: func(t *testing.T, s Style) {
				if s.NodeSize != MaxNodeSize {
					t.Errorf("NodeSize = %v, want %v", s.NodeSize, MaxNodeSize)
				}
				if s.LayerGap != MaxLayerGap {
					t.Errorf("LayerGap = %v, want %v", s.LayerGap, MaxLayerGap)
				}
			},
		},
		{
			name: "UnknownEnums",
			in:   Style{Direction: "diagonal", Arrowheads: "barbed"},
			check: func(t *testing.T, s Style) {
				if s.Direction != DirectionHorizontal {
					t.Errorf("Direction = %q, want horizontal", s.Direction)
				}
				if s.Arrowheads != ArrowheadNone {
					t.Errorf("Arrowheads = %q, want none", s.Arrowheads)
				}
			},
		},
		{
			name: "ValidPassesThrough",
			in: Style{
				EdgeColor: "#abc", Bezier: true, NodeSize: 30, NodeColor: "#fff",
				NodeBorderColor: "#000", LayerGap: 200, Direction: DirectionVertical,
				Arrowheads: ArrowheadSolid, Seed: 7,
			},
			check: func(t *testing.T, s Style) {
				if s.NodeSize != 30 || s.LayerGap != 200 {
					t.Errorf("numeric fields changed: %v %v", s.NodeSize, s.LayerGap)
				}
				if s.Direction != DirectionVertical || s.Arrowheads != ArrowheadSolid {
					t.Errorf("enum fields changed: %q %q", s.Direction, s.Arrowheads)
				}
				if s.Seed != 7 {
					t.Errorf("Seed = %d, want 7", s.Seed)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.in.Normalize())
		})
	}
}

func TestReroll(t *testing.T) {
	s := DefaultStyle()
	before := time.Now().UnixMilli()
	rolled := Reroll(s)

	if rolled.Seed == s.Seed {
		t.Error("Reroll did not change the seed")
	}
	if rolled.Seed < before {
		t.Errorf("Seed = %d, want >= %d", rolled.Seed, before)
	}
	// The weight counter runs in float64; the seed must stay inside its
	// exact integer range.
	if rolled.Seed >= 1<<53 {
		t.Errorf("Seed = %d exceeds float64's exact integer range", rolled.Seed)
	}
	rolled.Seed = s.Seed
	if rolled != s {
		t.Error("Reroll changed a field other than Seed")
	}
}
