package products

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type stubLister struct {
	rows []Product
	err  error
}

func (s *stubLister) List(ctx context.Context) ([]Product, error) {
	return s.rows, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreReload_RebuildsMirrorAndNotifies(t *testing.T) {
	lister := &stubLister{rows: []Product{{ID: "p1", Name: "A"}, {ID: "p2", Name: "B"}}}
	store := NewStore(lister, discardLogger())

	notified := 0
	store.Subscribe(func() { notified++ })

	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := store.Records(); len(got) != 2 || got[0].ID != "p1" {
		t.Fatalf("Records() = %v, want 2 records starting with p1", got)
	}
	if !store.Connected() {
		t.Fatal("Connected() = false after successful reload")
	}
	if notified != 1 {
		t.Fatalf("subscriber fired %d times, want 1", notified)
	}
}

func TestStoreReload_FailureKeepsStaleMirror(t *testing.T) {
	lister := &stubLister{rows: []Product{{ID: "p1", Name: "A"}}}
	store := NewStore(lister, discardLogger())
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	lister.err = errors.New("connection refused")
	if err := store.Reload(context.Background()); err == nil {
		t.Fatal("Reload() error = nil, want failure")
	}
	if got := store.Records(); len(got) != 1 {
		t.Fatalf("Records() = %v, want stale mirror kept", got)
	}
	if store.Connected() {
		t.Fatal("Connected() = true after failed reload")
	}

	lister.err = nil
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v after recovery", err)
	}
	if !store.Connected() {
		t.Fatal("Connected() = false after recovery")
	}
}

func TestStoreFind(t *testing.T) {
	lister := &stubLister{rows: []Product{{ID: "p1", Name: "A"}}}
	store := NewStore(lister, discardLogger())
	if err := store.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if rec, ok := store.Find("p1"); !ok || rec.Name != "A" {
		t.Fatalf("Find(p1) = %v, %v", rec, ok)
	}
	if _, ok := store.Find("missing"); ok {
		t.Fatal("Find(missing) = true, want false")
	}
}
