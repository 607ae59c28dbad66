package importer

import (
	"context"

	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/material"
)

// assembly carries one import run's working state across the passes.
type assembly struct {
	im    *Importer
	idx   *export.Index
	graph *material.Graph
	rep   *Report
	opts  Options

	// ctx is set for the duration of the wire pass; reference resolution
	// is the only part of assembly that can block.
	ctx context.Context

	seenKinds   map[material.Kind]bool
	seenMissing map[string]bool
}

// createNodes runs the first pass: every supported record becomes an empty
// node in the graph arena so the wire pass can resolve connections in any
// declaration order.
func (a *assembly) createNodes() {
	for _, name := range a.idx.Order {
		rec, ok := a.idx.Get(name)
		if !ok {
			continue
		}
		node := a.createEmpty(&rec)
		if node == nil {
			continue
		}
		a.graph.Put(node)
		a.rep.Nodes++
	}
}

// wireNodes runs the second pass, populating every created node from its
// record through the kind table.
func (a *assembly) wireNodes(ctx context.Context) {
	a.ctx = ctx
	defer func() { a.ctx = nil }()

	for _, name := range a.idx.Order {
		node := a.graph.Node(name)
		if node == nil {
			continue
		}
		if rec, ok := a.idx.Get(name); ok {
			a.populate(node, rec.Properties)
		}
	}
}

// attach moves the assembled nodes into the unit's ordered collection,
// preserving document order.
func (a *assembly) attach() {
	for _, name := range a.idx.Order {
		if node := a.graph.Node(name); node != nil {
			a.graph.Attach(node)
		}
	}
}

// buildComments rebuilds editor comments from the unit's metadata record.
// Comment records are ignored by the node factory, so this is the only
// place they are read.
func (a *assembly) buildComments() {
	if a.idx.Meta == nil {
		return
	}
	refs, ok := a.idx.Meta.Properties.Objects("EditorComments")
	if !ok {
		return
	}
	for _, ref := range refs {
		objName, _ := ref.String("ObjectName")
		name := export.SubobjectName(objName)
		if name == "" {
			continue
		}
		rec, ok := a.idx.Get(name)
		if !ok {
			a.warn("comment record missing", "name", name)
			continue
		}
		a.graph.AddComment(buildComment(&rec))
	}
}

// wireUnitProperties wires the unit record's own inputs, such as a
// material's output property connections, onto the graph.
func (a *assembly) wireUnitProperties(bag export.Bag) {
	for _, spec := range unitProperties {
		for _, key := range spec.Keys {
			desc, ok := bag.Object(key)
			if !ok {
				continue
			}
			a.graph.SetProperty(spec.Field, a.wireInput(desc, spec.Variant))
			break
		}
	}
}

// warn logs and counts a degradation.
func (a *assembly) warn(msg string, kv ...any) {
	a.rep.Warnings++
	a.im.Logger.Warn(msg, kv...)
}

// warnUnsupportedKind records a skipped kind once per kind per run.
func (a *assembly) warnUnsupportedKind(kind material.Kind, reason string) {
	if a.seenKinds[kind] {
		return
	}
	a.seenKinds[kind] = true
	a.rep.Unsupported = append(a.rep.Unsupported, string(kind))
	a.warn("unsupported expression kind", "kind", kind, "reason", reason)
	a.im.Notifier.Notify("Material Expression Missing: "+string(kind), SeverityWarning)
}

// addMissingRef records an unresolved external reference, deduped by short
// path.
func (a *assembly) addMissingRef(short string) {
	if a.seenMissing[short] {
		return
	}
	a.seenMissing[short] = true
	a.rep.MissingRefs = append(a.rep.MissingRefs, short)
}
