// Package importer reconstructs typed material graphs from flat export
// documents.
//
// Reconstruction is a two-pass assembly over one import unit's records:
// every supported declaration first becomes an empty node registered in the
// graph arena, then each node's properties are populated from its record.
// The placeholder pass is what lets connections reference nodes declared in
// any order.
// Population is driven entirely by the declarative kind table in
// pkg/material; this package contributes the interpreter, the reference
// resolution rules and the assembly state machine.
//
// # Degradation
//
// Nothing in the assembly aborts the import. Unsupported kinds are skipped
// with a warning, unresolved node references stay unwired, unresolved asset
// references are recovered when possible and reported when not. The
// returned Report says what was skipped, what stayed missing and how long
// each phase took.
//
// # Usage
//
//	imp := importer.New(loader, notifier, logger)
//	doc, err := export.ReadDocumentFile(path)
//	if err != nil { ... }
//	graph, report, err := imp.Import(ctx, doc.Records, importer.Options{})
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/material"
)

// ErrNoUnitRecord means the document carries no record of the unit kind and
// no unit name was supplied, so there is nothing to import.
var ErrNoUnitRecord = errors.New("export document names no unit record")

// ErrAssetUnavailable is what the null loader answers every load with.
var ErrAssetUnavailable = errors.New("asset unavailable")

// Asset is a resolved external asset handle.
type Asset struct {
	Path string
	Kind string
}

// AssetLoader resolves references to other assets. Production loaders are
// backed by an export directory plus the local fetch service; tests and
// offline runs use NullLoader.
type AssetLoader interface {
	// LoadByPath resolves a full object path.
	LoadByPath(ctx context.Context, path string) (*Asset, error)

	// TryRecoverMissing attempts to make a missing asset loadable, for
	// example by fetching its export from the local service. It reports
	// whether a retry is worth it.
	TryRecoverMissing(ctx context.Context, shortPath string) bool
}

// NullLoader misses every load and never recovers.
type NullLoader struct{}

func (NullLoader) LoadByPath(ctx context.Context, path string) (*Asset, error) {
	return nil, fmt.Errorf("%w: %s", ErrAssetUnavailable, path)
}

func (NullLoader) TryRecoverMissing(ctx context.Context, shortPath string) bool { return false }

// Severity grades user-visible notifications.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notifier receives user-visible notifications. Calls are synchronous and
// fire-and-forget; implementations must not fail the import.
type Notifier interface {
	Notify(msg string, severity Severity)
}

type nullNotifier struct{}

func (nullNotifier) Notify(msg string, severity Severity) {}

// RecompileHook is told when a dependent asset of a graph changed. It
// fires for every texture reference a material unit picks up during
// wiring, so a graph with several samplers reports several times.
type RecompileHook interface {
	OnDependentAssetChanged(graphName string)
}

type nullRecompile struct{}

func (nullRecompile) OnDependentAssetChanged(graphName string) {}

// DefaultNamespaces is the probe order for kind namespaces.
func DefaultNamespaces() []material.Namespace {
	return []material.Namespace{
		material.NamespaceEngine,
		material.NamespaceLandscape,
		material.NamespaceInterchange,
	}
}

// DefaultIgnoredKinds lists editor artifacts the factory skips silently.
// Comments are among them: they are rebuilt separately, never as nodes.
func DefaultIgnoredKinds() []material.Kind {
	return []material.Kind{
		"MaterialExpressionComposite",
		"MaterialExpressionPinBase",
		"MaterialExpressionComment",
	}
}

// Importer reconstructs graphs. It is stateless across imports: the same
// Importer can run any number of units, concurrently if the collaborators
// allow it. Fields may be replaced before the first Import call.
type Importer struct {
	Registry  *material.Registry
	Loader    AssetLoader
	Notifier  Notifier
	Recompile RecompileHook
	Logger    *log.Logger

	// Namespaces lists the enabled kind namespaces in probe order. A kind
	// whose namespace is absent is treated as unsupported.
	Namespaces []material.Namespace

	// Ignored kinds never become nodes and never warn.
	Ignored []material.Kind
}

// New creates an importer with the builtin kind registry and default
// namespace and ignore lists. Nil collaborators fall back to null
// implementations; a nil logger keeps the importer silent.
func New(loader AssetLoader, notifier Notifier, logger *log.Logger) *Importer {
	if loader == nil {
		loader = NullLoader{}
	}
	if notifier == nil {
		notifier = nullNotifier{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Importer{
		Registry:   material.Builtin(),
		Loader:     loader,
		Notifier:   notifier,
		Recompile:  nullRecompile{},
		Logger:     logger,
		Namespaces: DefaultNamespaces(),
		Ignored:    DefaultIgnoredKinds(),
	}
}

// Options configure one import run.
type Options struct {
	// Name is the unit name. Empty derives it from the document's unit
	// record.
	Name string

	// Unit is the unit kind, defaulting to UnitMaterial.
	Unit material.UnitKind

	// Owner restricts the run to records declared under this outer scope.
	// Empty defaults to the unit name; set it to a nested scope when
	// reconstructing a subgraph from a document that also carries the
	// parent's records.
	Owner string

	// Subgraph keeps reconstructed nodes in the arena without attaching
	// them to the unit's ordered collection, and skips comments and unit
	// properties.
	Subgraph bool

	// DuplicatePolicy is export.DuplicateLastWins (default) or
	// export.DuplicateFail.
	DuplicatePolicy string
}

// State tracks assembly progress. Attached is terminal.
type State uint8

const (
	StateIndexed State = iota
	StateNodesCreated
	StateWired
	StateAttached
)

var stateNames = [...]string{"indexed", "nodes-created", "wired", "attached"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Stats are per-phase wall clock timings.
type Stats struct {
	CreateTime time.Duration
	WireTime   time.Duration
	AttachTime time.Duration
}

// Total sums the phase timings.
func (s Stats) Total() time.Duration {
	return s.CreateTime + s.WireTime + s.AttachTime
}

// Report describes one import run: how far assembly got, what was built and
// everything that degraded along the way.
type Report struct {
	State    State
	Nodes    int
	Comments int

	// Unsupported lists skipped kinds in first-occurrence order, deduped.
	Unsupported []string

	// MissingRefs lists external references that stayed unresolved after
	// recovery, as short paths, deduped.
	MissingRefs []string

	// Duplicates carries duplicate record names found while partitioning.
	Duplicates []string

	Warnings int
	Stats    Stats
}

// Import reconstructs one unit from its export records.
//
// The records are partitioned to the unit's owner scope, assembled through
// the create, wire and attach passes, and the unit record's own typed
// inputs are wired as graph properties. The returned error is reserved for
// conditions that prevent the run from starting or continuing at all:
// a missing unit record, the fail duplicate policy firing, or context
// cancellation. Everything else degrades into the Report.
func (im *Importer) Import(ctx context.Context, records []export.Record, opts Options) (*material.Graph, *Report, error) {
	if opts.Unit == "" {
		opts.Unit = material.UnitMaterial
	}

	unitRec := findUnitRecord(records, opts)
	if opts.Name == "" {
		if unitRec == nil {
			return nil, nil, ErrNoUnitRecord
		}
		opts.Name = unitRec.Name
	}
	if opts.Owner == "" {
		opts.Owner = opts.Name
	}

	idx, err := export.Partition(records, export.PartitionOptions{
		UnitKind:        string(opts.Unit),
		Owner:           opts.Owner,
		FilterByOwner:   true,
		DuplicatePolicy: opts.DuplicatePolicy,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("partition %s: %w", opts.Name, err)
	}

	g := material.NewGraph(opts.Name, opts.Unit)
	rep := &Report{State: StateIndexed, Duplicates: idx.Duplicates}
	if n := len(idx.Duplicates); n > 0 {
		rep.Warnings += n
		im.Logger.Warn("duplicate record names", "unit", opts.Name, "names", idx.Duplicates)
	}
	im.Logger.Debug("indexed unit", "unit", opts.Name, "records", idx.Len())

	a := &assembly{
		im:          im,
		idx:         idx,
		graph:       g,
		rep:         rep,
		opts:        opts,
		seenKinds:   make(map[material.Kind]bool),
		seenMissing: make(map[string]bool),
	}

	start := time.Now()
	a.createNodes()
	rep.State = StateNodesCreated
	rep.Stats.CreateTime = time.Since(start)
	im.Logger.Info("created nodes",
		"unit", opts.Name,
		"nodes", rep.Nodes,
		"unsupported", len(rep.Unsupported),
		"duration", rep.Stats.CreateTime)
	if err := ctx.Err(); err != nil {
		return g, rep, err
	}

	start = time.Now()
	a.wireNodes(ctx)
	rep.State = StateWired
	rep.Stats.WireTime = time.Since(start)
	im.Logger.Info("wired properties",
		"unit", opts.Name,
		"missing_refs", len(rep.MissingRefs),
		"duration", rep.Stats.WireTime)
	if err := ctx.Err(); err != nil {
		return g, rep, err
	}

	start = time.Now()
	if !opts.Subgraph {
		a.attach()
		a.buildComments()
		if unitRec != nil {
			a.wireUnitProperties(unitRec.Properties)
		}
	}
	rep.State = StateAttached
	rep.Comments = len(g.Comments())
	rep.Stats.AttachTime = time.Since(start)
	im.Logger.Info("attached graph",
		"unit", opts.Name,
		"attached", g.Len(),
		"comments", rep.Comments,
		"duration", rep.Stats.AttachTime)

	return g, rep, nil
}

// findUnitRecord picks the record describing the unit itself: kind equal to
// the unit kind and, when a name is already known, that name.
func findUnitRecord(records []export.Record, opts Options) *export.Record {
	for i := range records {
		rec := &records[i]
		if rec.Kind != string(opts.Unit) {
			continue
		}
		if opts.Name == "" || rec.Name == opts.Name {
			return rec
		}
	}
	return nil
}
