package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matforge/matforge/pkg/importer"
	"github.com/matforge/matforge/pkg/material"
)

func testSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		AssetPath: "/Game/Materials/M_Rock",
		Name:      "M_Rock",
		Unit:      material.UnitMaterial,
		Nodes:     12,
		Comments:  2,
		Warnings:  1,
		Duration:  48 * time.Millisecond,
		CreatedAt: createdAt,
	}
}

func TestNewSessionFromImport(t *testing.T) {
	g := material.NewGraph("M_Rock", material.UnitMaterial)
	rep := &importer.Report{
		State:       importer.StateAttached,
		Nodes:       7,
		Comments:    1,
		Unsupported: []string{"MaterialExpressionSketchy"},
		MissingRefs: []string{"/Game/Tex/T_Gone"},
		Warnings:    2,
	}
	rep.Stats.CreateTime = 3 * time.Millisecond
	rep.Stats.WireTime = 5 * time.Millisecond

	sess := New("/Game/Materials/M_Rock", g, rep)

	if _, err := uuid.Parse(sess.ID); err != nil {
		t.Errorf("session id %q is not a UUID: %v", sess.ID, err)
	}
	if sess.Name != "M_Rock" || sess.Unit != material.UnitMaterial {
		t.Errorf("identity = %s/%s, want M_Rock/%s", sess.Name, sess.Unit, material.UnitMaterial)
	}
	if sess.Nodes != 7 || sess.Comments != 1 || sess.Warnings != 2 {
		t.Errorf("counts = %d/%d/%d, want 7/1/2", sess.Nodes, sess.Comments, sess.Warnings)
	}
	if len(sess.Unsupported) != 1 || len(sess.MissingRefs) != 1 {
		t.Errorf("degradation lists = %v / %v", sess.Unsupported, sess.MissingRefs)
	}
	if sess.Duration != 8*time.Millisecond {
		t.Errorf("duration = %v, want 8ms", sess.Duration)
	}
	if sess.CreatedAt.IsZero() {
		t.Error("created-at not set")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	want := testSession("a1", time.Now().UTC().Truncate(time.Second))
	want.Unsupported = []string{"MaterialExpressionSketchy"}
	want.MissingRefs = []string{"/Game/Fn/MF_Gone"}
	if err := store.Put(ctx, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "a1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.AssetPath != want.AssetPath || got.Name != want.Name || got.Unit != want.Unit {
		t.Errorf("identity = %s %s/%s, want %s %s/%s",
			got.AssetPath, got.Name, got.Unit, want.AssetPath, want.Name, want.Unit)
	}
	if got.Nodes != want.Nodes || got.Duration != want.Duration {
		t.Errorf("got nodes=%d duration=%v, want nodes=%d duration=%v",
			got.Nodes, got.Duration, want.Nodes, want.Duration)
	}
	if len(got.Unsupported) != 1 || got.Unsupported[0] != "MaterialExpressionSketchy" {
		t.Errorf("unsupported = %v", got.Unsupported)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created-at = %v, want %v", got.CreatedAt, want.CreatedAt)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestFileStoreListNewestFirst(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"old", "mid", "new"} {
		sess := testSession(id, base.Add(time.Duration(i)*time.Hour))
		if err := store.Put(ctx, sess); err != nil {
			t.Fatalf("Put(%s): %v", id, err)
		}
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List returned %d sessions, want 3", len(all))
	}
	for i, want := range []string{"new", "mid", "old"} {
		if all[i].ID != want {
			t.Errorf("List[%d] = %s, want %s", i, all[i].ID, want)
		}
	}

	top, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2): %v", err)
	}
	if len(top) != 2 || top[0].ID != "new" || top[1].ID != "mid" {
		t.Errorf("List(2) = %v", ids(top))
	}
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := store.Put(ctx, testSession("gone", time.Now())); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func ids(sessions []*Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}
