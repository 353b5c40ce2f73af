// Package pkg provides the core libraries for netsketch diagram drawing.
//
// # Overview
//
// netsketch draws layered network diagrams: ordered layers of circular
// nodes with fully-connected links between adjacent layers, the kind of
// figure used to sketch feed-forward neural networks. The pkg directory
// splits into the domain model, the geometry, and the plumbing around them.
//
// # Architecture
//
// The typical data flow through netsketch:
//
//	Layer counts + style (flags, config, editor)
//	         ↓
//	    [network] package (model + editing operations)
//	         ↓
//	    [layout] package (node positions + links)
//	         ↓
//	    [render] package (SVG, DOT, PNG)
//
// # Quick Start
//
// Build and render a diagram:
//
//	import (
//	    "github.com/netsketch/netsketch/pkg/layout"
//	    "github.com/netsketch/netsketch/pkg/network"
//	    "github.com/netsketch/netsketch/pkg/render"
//	)
//
//	net := network.Default()
//	style := network.DefaultStyle()
//	scene := layout.Build(net, style, layout.Viewport{Width: 800, Height: 600})
//	svg := render.RenderSVG(scene, style, layout.Viewport{Width: 800, Height: 600})
//
// # Main Packages
//
// [network] - The host-owned model: ordered layers with neuron counts, the
// visual style, and copy-on-write editing operations with clamped bounds.
//
// [layout] - The layout engine. Positions every node on a viewport along a
// configurable main axis and derives the fully-connected link set with
// deterministic pseudo-random weights.
//
// [render] - Presentation. Emits SVG directly, or Graphviz DOT with pinned
// positions for PNG rasterization via go-graphviz.
//
// [pipeline] - Orchestration of layout → render with options validation and
// artifact caching. Used by the CLI, the HTTP server, and the TUI so all
// entry points behave identically.
//
// [session] - In-memory editing sessions for the HTTP host, TTL-evicted.
//
// [cache] - Content-addressed artifact cache with file, Redis, and null
// backends.
//
// [config] - Optional TOML configuration (style defaults, server address,
// cache backend).
//
// [observability] - Hook interfaces for pipeline and cache events with
// no-op defaults, registered from main.
//
// [errors] - Coded error taxonomy and input validation helpers shared by
// all hosts.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...         # All tests
//	go test ./pkg/layout/...  # Specific package
//	go test -run Example      # Examples only
//
// [network]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/network
// [layout]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/layout
// [render]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/pipeline
// [session]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/session
// [cache]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/cache
// [config]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/config
// [observability]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/observability
// [errors]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/netsketch/netsketch/pkg/buildinfo
package pkg
