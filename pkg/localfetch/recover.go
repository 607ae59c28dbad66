package localfetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matforge/matforge/pkg/export"
	"github.com/matforge/matforge/pkg/importer"
	"github.com/matforge/matforge/pkg/material"
)

// recoverableKinds lists the asset kinds the service reconstructs on demand.
var recoverableKinds = map[string]bool{
	"Texture2D":                   true,
	"TextureCube":                 true,
	"TextureRenderTarget2D":       true,
	"MaterialParameterCollection": true,
	"CurveFloat":                  true,
	"CurveVector":                 true,
	"CurveLinearColor":            true,
	"CurveLinearColorAtlas":       true,
	"PhysicalMaterial":            true,
	"SubsurfaceProfile":           true,
	"LandscapeGrassType":          true,
	"MaterialInstanceConstant":    true,
	"MaterialFunction":            true,
	"ReverbEffect":                true,
	"SoundAttenuation":            true,
	"SoundConcurrency":            true,
	"DataTable":                   true,
}

// textureKinds carry a binary payload next to their export document.
var textureKinds = map[string]bool{
	"Texture2D":             true,
	"TextureCube":           true,
	"TextureRenderTarget2D": true,
}

// Recoverable reports whether assets of a kind can be fetched from the
// service.
func Recoverable(kind string) bool { return recoverableKinds[kind] }

// Recoverer resolves asset references against a local export directory and
// recovers missing ones through the service, implementing the importer's
// loader contract.
type Recoverer struct {
	Dir    string
	Client *Client
	Logger *log.Logger
}

// NewRecoverer creates a recoverer over an export directory. A nil client
// leaves it offline: loads still resolve against the directory but nothing
// is fetched.
func NewRecoverer(dir string, client *Client, logger *log.Logger) *Recoverer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recoverer{Dir: dir, Client: client, Logger: logger}
}

var _ importer.AssetLoader = (*Recoverer)(nil)

// LoadByPath resolves an asset by checking the export directory for its
// document. The returned kind is the asset record's own kind tag.
func (r *Recoverer) LoadByPath(ctx context.Context, path string) (*importer.Asset, error) {
	short := material.ShortPath(path)
	data, err := os.ReadFile(r.exportFile(short))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", importer.ErrAssetUnavailable, short)
	}
	doc, err := export.ParseDocument(bytes.NewReader(data))
	if err != nil || len(doc.Records) == 0 {
		return nil, fmt.Errorf("%w: %s", importer.ErrAssetUnavailable, short)
	}
	return &importer.Asset{Path: path, Kind: assetKind(doc.Records, short)}, nil
}

// TryRecoverMissing fetches a missing asset's export from the service and
// writes it into the directory; texture kinds also get their payload as a
// sidecar. Failures degrade to false and the reference stays missing.
func (r *Recoverer) TryRecoverMissing(ctx context.Context, short string) bool {
	if r.Client == nil {
		return false
	}

	data, err := r.Client.ExportsData(ctx, short)
	if err != nil {
		r.Logger.Debug("recovery fetch failed", "asset", short, "err", err)
		return false
	}
	doc, err := export.ParseDocument(bytes.NewReader(data))
	if err != nil || len(doc.Records) == 0 {
		r.Logger.Debug("recovery export unreadable", "asset", short, "err", err)
		return false
	}
	kind := assetKind(doc.Records, short)
	if !Recoverable(kind) {
		r.Logger.Debug("kind not recoverable", "asset", short, "kind", kind)
		return false
	}

	file := r.exportFile(short)
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		r.Logger.Warn("recovery write failed", "asset", short, "err", err)
		return false
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		r.Logger.Warn("recovery write failed", "asset", short, "err", err)
		return false
	}

	if textureKinds[kind] {
		if payload, err := r.Client.Raw(ctx, short); err == nil {
			sidecar := strings.TrimSuffix(file, ".json") + ".bin"
			if err := os.WriteFile(sidecar, payload, 0o644); err != nil {
				r.Logger.Warn("payload write failed", "asset", short, "err", err)
			}
		} else {
			r.Logger.Debug("payload fetch failed", "asset", short, "err", err)
		}
	}

	r.Logger.Info("recovered asset", "asset", short, "kind", kind)
	return true
}

func (r *Recoverer) exportFile(short string) string {
	return ExportPath(r.Dir, short)
}

// ExportPath maps an asset path to its export document location inside an
// export directory tree.
func ExportPath(dir, path string) string {
	short := material.ShortPath(path)
	return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(short, "/"))+".json")
}

// assetKind picks the kind tag of the asset's own record: the record named
// like the asset, else the document's first record.
func assetKind(records []export.Record, short string) string {
	name := short[strings.LastIndexByte(short, '/')+1:]
	for _, rec := range records {
		if rec.Name == name {
			return rec.Kind
		}
	}
	return records[0].Kind
}
