package storage

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestStorePutGetDeleteSave(t *testing.T) {
	store := openTestStore(t)

	data, err := store.GetSave("local")
	if err != nil {
		t.Fatalf("GetSave() failed: %v", err)
	}
	if data != nil {
		t.Fatalf("Expected no save, got %q", data)
	}

	if err := store.PutSave("local", []byte("first")); err != nil {
		t.Fatalf("PutSave() failed: %v", err)
	}
	if err := store.PutSave("local", []byte("second")); err != nil {
		t.Fatalf("PutSave() overwrite failed: %v", err)
	}
	if err := store.PutSave("ssh:bob", []byte("other")); err != nil {
		t.Fatalf("PutSave() failed: %v", err)
	}

	data, err = store.GetSave("local")
	if err != nil {
		t.Fatalf("GetSave() failed: %v", err)
	}
	if !bytes.Equal(data, []byte("second")) {
		t.Errorf("GetSave() = %q, want second", data)
	}

	if err := store.DeleteSave("local"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}
	if data, _ := store.GetSave("local"); data != nil {
		t.Errorf("Expected save to be deleted, got %q", data)
	}
	if data, _ := store.GetSave("ssh:bob"); data == nil {
		t.Error("Deleting one key should keep the others")
	}

	// Deleting twice is fine
	if err := store.DeleteSave("local"); err != nil {
		t.Errorf("DeleteSave() of missing key failed: %v", err)
	}
}

func TestStoreSavedGameRoundTrip(t *testing.T) {
	store := openTestStore(t)

	saved := t2048.Saved{
		Grid: t2048.Grid{
			{2, 4, 8, 16},
			{0, 0, 2048, 0},
			{0, 2, 0, 0},
			{0, 0, 0, 4},
		},
		Score:           20480,
		BestScore:       30000,
		Won:             true,
		WonAcknowledged: true,
	}

	if err := store.Save("local", saved); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, ok, err := store.LoadSaved("local")
	if err != nil {
		t.Fatalf("LoadSaved() failed: %v", err)
	}
	if !ok {
		t.Fatal("LoadSaved() found nothing")
	}
	if got != saved {
		t.Errorf("LoadSaved() = %+v, want %+v", got, saved)
	}

	_, ok, err = store.LoadSaved("missing")
	if err != nil || ok {
		t.Errorf("LoadSaved(missing) = ok %v, err %v; want false, nil", ok, err)
	}
}

func TestStoreLoadSavedCorrupt(t *testing.T) {
	store := openTestStore(t)

	if err := store.PutSave("local", []byte("grid: [[3, 0, 0, 0]]")); err != nil {
		t.Fatalf("PutSave() failed: %v", err)
	}

	_, ok, err := store.LoadSaved("local")
	if ok {
		t.Error("corrupt save should not load")
	}
	if !errors.Is(err, t2048.ErrInvalidState) {
		t.Errorf("LoadSaved() error = %v, want ErrInvalidState", err)
	}
}

func TestStoreAsSessionSink(t *testing.T) {
	store := openTestStore(t)

	var sink t2048.Sink = store
	s := t2048.NewSession(rand.New(rand.NewSource(1)))
	s.SetSink(sink, "local")
	s.NewGame()

	got, ok, err := store.LoadSaved("local")
	if err != nil || !ok {
		t.Fatalf("LoadSaved() = ok %v, err %v", ok, err)
	}
	if got != s.Serialize() {
		t.Errorf("stored game = %+v, want %+v", got, s.Serialize())
	}
}
