// Package pkg provides the core libraries for Matforge material graph
// reconstruction.
//
// # Overview
//
// Matforge rebuilds editable material expression graphs from the JSON
// documents a game engine's export pipeline emits. The pkg directory is
// organized into four main areas:
//
//  1. [material] - Domain model (typed nodes, connections, the graph arena)
//  2. [export] / [importer] - Document parsing and two-pass reconstruction
//  3. [localfetch] / [cache] / [catalog] - Asset fetching, caching, session records
//  4. [render/nodelink] / [io] - Diagram rendering and graph persistence
//
// # Architecture
//
// The typical data flow through Matforge:
//
//	Engine JSON export (file or local export service)
//	         ↓
//	    [export] package (parse records, drop malformed ones)
//	         ↓
//	    [importer] package (create placeholders, wire, attach)
//	         ↓
//	    [material] package (typed node graph)
//	         ↓
//	    SVG/PNG/DOT diagrams or graph JSON output
//
// # Quick Start
//
// Parse an export document and reconstruct the graph:
//
//	import (
//	    "context"
//	    "os"
//	    "github.com/matforge/matforge/pkg/export"
//	    "github.com/matforge/matforge/pkg/importer"
//	    "github.com/matforge/matforge/pkg/render/nodelink"
//	)
//
//	// 1. Parse the document
//	f, _ := os.Open("M_Rock.json")
//	doc, _ := export.ParseDocument(f)
//
//	// 2. Reconstruct the graph
//	imp := importer.New(nil, nil, nil)
//	g, rep, _ := imp.Import(context.Background(), doc.Records, importer.Options{})
//
//	// 3. Render a node-link diagram
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, _ := nodelink.RenderSVG(context.Background(), dot)
//
// The report carries everything that went wrong without aborting the run:
// unsupported kinds, missing asset references, duplicate records.
//
// # Main Packages
//
// ## Domain Model
//
// [material] - Typed expression nodes, connections, asset references, and
// the graph arena that owns them. The kind [material.Registry] drives
// declarative property dispatch for roughly 120 expression kinds across
// the engine, landscape, and interchange namespaces.
//
// [export] - Engine export document parsing. [export.ParseDocument] reads
// the JSON record array, validates each record, and collects malformed
// entries instead of failing.
//
// [importer] - Two-pass reconstruction. The first pass creates placeholder
// nodes for every supported record so the second pass can wire references
// between them in any order. Assembly progresses through indexed, created,
// wired, and attached states, and every recoverable problem lands in the
// [importer.Report].
//
// ## Asset Access
//
// [localfetch] - HTTP client for the engine-side export service, an
// on-disk export tree reader, and the [localfetch.Recoverer] that the
// importer uses to resolve missing asset references. Also ships a dev
// server that serves an export tree over the same routes.
//
// [cache] - Response caching for the export service client. FileCache for
// the CLI, RedisCache for shared setups, NullCache for tests.
//
// [catalog] - Import session records. Every import run can be catalogued
// with its asset path, counts, and warnings; FileStore keeps records under
// the user data directory, MongoStore shares them.
//
// ## Configuration
//
// [config] - TOML settings with XDG-aware default paths. Unknown keys are
// reported, not fatal.
//
// ## Visualization and Persistence
//
// [render/nodelink] - Node-link diagrams via Graphviz DOT, rendered
// in-process to SVG or PNG with no system Graphviz installation.
//
// [io] - Graph JSON persistence. [io.WriteJSON] and [io.ReadJSON] round
// trip a reconstructed graph including node order, comments, and unit
// properties.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Common Workflows
//
// Fetch an export from the local service with caching:
//
//	store, _ := cache.NewFileCache(dir)
//	client := localfetch.NewClient(localfetch.DefaultBaseURL, store, cache.NewDefaultKeyer(), logger)
//	records, _ := client.Exports(ctx, "/Game/Materials/M_Rock.M_Rock")
//
// Import with missing-reference recovery against a local export tree:
//
//	rec := localfetch.NewRecoverer(exportDir, client, logger)
//	imp := importer.New(rec, nil, logger)
//	g, rep, _ := imp.Import(ctx, records, importer.Options{})
//
// Record the run in the session catalog:
//
//	cat, _ := catalog.NewFileStore("")
//	_ = cat.Put(ctx, catalog.New("/Game/Materials/M_Rock.M_Rock", g, rep))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/importer/...  # Specific package
//	go test -run Example        # Examples only
//
// [material]: https://pkg.go.dev/github.com/matforge/matforge/pkg/material
// [material.Registry]: https://pkg.go.dev/github.com/matforge/matforge/pkg/material#Registry
// [export]: https://pkg.go.dev/github.com/matforge/matforge/pkg/export
// [export.ParseDocument]: https://pkg.go.dev/github.com/matforge/matforge/pkg/export#ParseDocument
// [importer]: https://pkg.go.dev/github.com/matforge/matforge/pkg/importer
// [importer.Report]: https://pkg.go.dev/github.com/matforge/matforge/pkg/importer#Report
// [localfetch]: https://pkg.go.dev/github.com/matforge/matforge/pkg/localfetch
// [localfetch.Recoverer]: https://pkg.go.dev/github.com/matforge/matforge/pkg/localfetch#Recoverer
// [cache]: https://pkg.go.dev/github.com/matforge/matforge/pkg/cache
// [catalog]: https://pkg.go.dev/github.com/matforge/matforge/pkg/catalog
// [config]: https://pkg.go.dev/github.com/matforge/matforge/pkg/config
// [render/nodelink]: https://pkg.go.dev/github.com/matforge/matforge/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matforge/matforge/pkg/io
// [io.WriteJSON]: https://pkg.go.dev/github.com/matforge/matforge/pkg/io#WriteJSON
// [io.ReadJSON]: https://pkg.go.dev/github.com/matforge/matforge/pkg/io#ReadJSON
// [buildinfo]: https://pkg.go.dev/github.com/matforge/matforge/pkg/buildinfo
package pkg
