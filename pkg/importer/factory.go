package importer

import (
	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/material"
)

// createEmpty turns a record into an empty node, or nil when the record
// does not become one. Ignored kinds skip silently; kinds the registry or
// the enabled namespaces do not cover are reported and skipped, so their
// names never resolve during the wire pass and connections to them stay
// unwired.
func (a *assembly) createEmpty(rec *export.Record) *material.Node {
	kind := material.Kind(rec.Kind)
	if kind == "" {
		a.warn("expression record has no kind", "name", rec.Name)
		return nil
	}
	if a.ignored(kind) {
		a.im.Logger.Debug("ignored expression kind", "kind", kind, "name", rec.Name)
		return nil
	}

	spec, ok := a.im.Registry.Lookup(kind)
	if !ok {
		a.warnUnsupportedKind(kind, "unknown kind")
		return nil
	}
	if !a.enabled(spec.Space()) {
		a.warnUnsupportedKind(kind, "namespace "+string(spec.Space())+" disabled")
		return nil
	}
	if spec.Bare() {
		a.im.Logger.Debug("kind has no population rules", "kind", kind, "name", rec.Name)
	}
	return material.NewNode(a.opts.Owner, rec.Name, kind)
}

func (a *assembly) ignored(kind material.Kind) bool {
	for _, k := range a.im.Ignored {
		if k == kind {
			return true
		}
	}
	return false
}

func (a *assembly) enabled(space material.Namespace) bool {
	for _, ns := range a.im.Namespaces {
		if ns == space {
			return true
		}
	}
	return false
}
