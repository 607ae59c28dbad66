package importer

import (
	"github.com/google/uuid"

	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/material"
)

// resolveAsset resolves an external asset reference descriptor against the
// loader. A miss on a recoverable reference gets one recovery attempt and
// one retry; a reference that stays missing is recorded on the report,
// surfaced through the notifier when the reference kind carries a label,
// and kept on the node with its original path so exports remain lossless.
// Recompile-marked references on a material unit fire the recompile hook
// after the resolve attempt, hit or miss.
func (a *assembly) resolveAsset(desc export.Bag, spec material.RefSpec) material.AssetRef {
	path, _ := desc.String("ObjectPath")
	if path == "" {
		return material.AssetRef{}
	}
	if spec.Recompile && a.graph.Unit() == material.UnitMaterial {
		defer a.im.Recompile.OnDependentAssetChanged(a.graph.Name())
	}

	ref := material.AssetRef{Path: path}
	if _, err := a.im.Loader.LoadByPath(a.ctx, path); err == nil {
		return ref
	}

	short := material.ShortPath(path)
	if spec.Recover && a.im.Loader.TryRecoverMissing(a.ctx, short) {
		if _, err := a.im.Loader.LoadByPath(a.ctx, path); err == nil {
			a.im.Logger.Info("recovered missing asset", "asset", short)
			return ref
		}
	}

	ref.Missing = true
	a.addMissingRef(short)
	if spec.Label != "" {
		a.im.Notifier.Notify(spec.Label+" Missing: "+short, SeverityWarning)
	}
	return ref
}

// parseGUID reads both canonical and undashed hex forms, mapping anything
// unparseable to the zero id.
func parseGUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}
	}
	return id
}
