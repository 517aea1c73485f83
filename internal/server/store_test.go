package server

import (
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/maruel/plx/models"
	bolt "go.etcd.io/bbolt"
)

func openStore(t *testing.T, path string) (*bolt.DB, *store[*models.Queue]) {
	t.Helper()
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := newStore(db, "queues", models.NewQueue)
	if err != nil {
		t.Fatal(err)
	}
	return db, s
}

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, s := openStore(t, path)
	q := models.NewQueue().WithUUID("q1").WithName("gpu").WithAgent("a1").WithPriority(1)
	if err := s.put("acme", q); err != nil {
		t.Fatal(err)
	}
	var he *httpError
	err := s.put("acme", models.NewQueue().WithUUID("q2").WithName("gpu").WithAgent("a1"))
	if !errors.As(err, &he) || he.status != http.StatusConflict {
		t.Errorf("put duplicate = %v, want conflict", err)
	}
	if err := s.put("other", models.NewQueue().WithUUID("q2").WithName("gpu").WithAgent("a1")); err != nil {
		t.Errorf("put on another owner = %v", err)
	}
	// Overwriting an entity keeps its own name.
	if err := s.put("acme", q.WithPriority(2)); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db, s = openStore(t, path)
	defer func() { _ = db.Close() }()
	got, ok, err := s.get("acme", "q1")
	if err != nil || !ok {
		t.Fatalf("get = %v, %t", err, ok)
	}
	if !got.Equal(q) {
		t.Errorf("got %s\nwant %s", got, q)
	}
	if _, ok, _ := s.get("nobody", "q1"); ok {
		t.Error("found entity of unknown owner")
	}
	l, err := s.list("acme")
	if err != nil || len(l) != 1 {
		t.Fatalf("list = %v, %v", l, err)
	}
	if found, err := s.delete("acme", "q1"); err != nil || !found {
		t.Errorf("delete = %t, %v", found, err)
	}
	if found, err := s.delete("acme", "q1"); err != nil || found {
		t.Errorf("second delete = %t, %v", found, err)
	}
}
