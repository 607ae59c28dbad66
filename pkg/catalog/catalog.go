// Package catalog records import sessions.
//
// Every completed import produces a Session document: which asset was
// imported, how many nodes and comments the graph ended up with, which kinds
// were unsupported and which references stayed missing. The catalog keeps
// these documents so earlier imports can be listed and inspected later.
//
// Two backends implement the Store interface:
//   - file: one JSON document per session under a local directory
//   - mongo: one MongoDB collection, for setups where several workstations
//     share a catalog
//
// # Usage
//
// Record an import:
//
//	store, err := catalog.NewFileStore("")  // uses ~/.local/share/matforge/catalog/
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	sess := catalog.New("/Game/Materials/M_Rock", graph, report)
//	if err := store.Put(ctx, sess); err != nil {
//	    return err
//	}
//
// List recent imports:
//
//	sessions, err := store.List(ctx, 20)
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matforge/matforge/pkg/importer"
	"github.com/matforge/matforge/pkg/material"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// Session describes one import run.
type Session struct {
	ID          string            `json:"id" bson:"_id"`
	AssetPath   string            `json:"asset_path" bson:"asset_path"`
	Name        string            `json:"name" bson:"name"`
	Unit        material.UnitKind `json:"unit" bson:"unit"`
	Nodes       int               `json:"nodes" bson:"nodes"`
	Comments    int               `json:"comments" bson:"comments"`
	Unsupported []string          `json:"unsupported" bson:"unsupported"`
	MissingRefs []string          `json:"missing_refs" bson:"missing_refs"`
	Warnings    int               `json:"warnings" bson:"warnings"`
	Duration    time.Duration     `json:"duration" bson:"duration"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}

// Store is the interface for catalog storage backends.
type Store interface {
	// Put stores a session, replacing any existing session with the same id.
	Put(ctx context.Context, sess *Session) error

	// Get retrieves a session by id.
	// Returns ErrNotFound when no such session exists.
	Get(ctx context.Context, id string) (*Session, error)

	// List returns sessions sorted newest-first. A limit of zero or less
	// returns everything.
	List(ctx context.Context, limit int) ([]*Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// New builds a session document from a completed import.
func New(assetPath string, g *material.Graph, rep *importer.Report) *Session {
	return &Session{
		ID:          uuid.NewString(),
		AssetPath:   assetPath,
		Name:        g.Name(),
		Unit:        g.Unit(),
		Nodes:       rep.Nodes,
		Comments:    rep.Comments,
		Unsupported: rep.Unsupported,
		MissingRefs: rep.MissingRefs,
		Warnings:    rep.Warnings,
		Duration:    rep.Stats.Total(),
		CreatedAt:   time.Now().UTC(),
	}
}
