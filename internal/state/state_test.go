package state

import (
	"image"
	"testing"
	"time"

	"github.com/litescript/ls-atlas/internal/catalog"
)

func TestManager_CatalogSnapshot(t *testing.T) {
	m := NewManager()

	snap := m.Snapshot()
	if len(snap.Bodies) != 0 || !snap.LastFetch.IsZero() {
		t.Errorf("fresh manager snapshot not empty: %+v", snap)
	}

	bodies := []catalog.Body{{ID: "mars", Name: "Mars"}}
	m.SetCatalog(bodies, 120*time.Millisecond)

	snap = m.Snapshot()
	if len(snap.Bodies) != 1 || snap.Bodies[0].ID != "mars" {
		t.Errorf("snapshot bodies = %+v", snap.Bodies)
	}
	if snap.FetchDuration != 120*time.Millisecond {
		t.Errorf("fetch duration = %v", snap.FetchDuration)
	}
	if snap.LastFetch.IsZero() {
		t.Error("last fetch time not recorded")
	}
}

func TestManager_TextureCache(t *testing.T) {
	m := NewManager()

	if _, ok := m.Texture("mars"); ok {
		t.Error("unexpected cache hit on empty manager")
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	m.StoreTexture("mars", img)

	got, ok := m.Texture("mars")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != img {
		t.Error("cache must return the identical buffer, not a copy")
	}

	if _, ok := m.Texture("venus"); ok {
		t.Error("unexpected cache hit for a different body")
	}
}
