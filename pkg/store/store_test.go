package store

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/ident"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

// each reruns the test against every Persistence implementation.
func each(t *testing.T, fn func(t *testing.T, p Persistence)) {
	t.Helper()
	t.Run("diskv", func(t *testing.T) {
		p, err := Load(testConfig{path: t.TempDir()}, &ident.Sequence{})
		if err != nil {
			t.Fatalf("load persistence: %v", err)
		}
		fn(t, p)
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemory(&ident.Sequence{}))
	})
}

func TestReplaceAllRoundTrip(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		c := event.Collection{
			{ID: "a", Title: "Flight", Start: "2030-01-01T10:00", End: "2030-01-01T12:00", Color: "#ff0000"},
			{ID: "b", Title: "Hotel check-in", Start: "2030-01-01T15:00", End: "2030-01-01T16:00", Description: "ask for late checkout", Color: event.DefaultColor},
		}
		if err := p.ReplaceAll(ctx, "ana", c); err != nil {
			t.Fatalf("replace all: %v", err)
		}
		got, err := p.Load(ctx, "ana")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != len(c) {
			t.Fatalf("loaded %d events, want %d", len(got), len(c))
		}
		for i := range c {
			if got[i] != c[i] {
				t.Fatalf("event %d = %+v, want %+v", i, got[i], c[i])
			}
		}
	})
}

func TestLoadUnknownOwnerIsEmpty(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		got, err := p.Load(context.Background(), "nobody-yet")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty collection, got %d events", len(got))
		}
	})
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		seen := make(map[string]bool)
		var c event.Collection
		for i := 0; i < 5; i++ {
			var err error
			c, err = p.Create(ctx, "ana", event.New("Trip", "2030-01-01T10:00", "2030-01-01T12:00"))
			if err != nil {
				t.Fatalf("create %d: %v", i, err)
			}
		}
		if len(c) != 5 {
			t.Fatalf("collection has %d events, want 5", len(c))
		}
		for _, e := range c {
			if e.ID == "" {
				t.Fatalf("created event without id: %+v", e)
			}
			if seen[e.ID] {
				t.Fatalf("duplicate id %q", e.ID)
			}
			seen[e.ID] = true
		}
	})
}

func TestCreateDefaultsColor(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		c, err := p.Create(context.Background(), "ana", event.Event{Title: "no color"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if c[0].Color != event.DefaultColor {
			t.Fatalf("color = %q, want %q", c[0].Color, event.DefaultColor)
		}
	})
}

func TestUpdateReplacesInPlace(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		for _, title := range []string{"one", "two", "three"} {
			if _, err := p.Create(ctx, "ana", event.New(title, "2030-01-01", "2030-01-02")); err != nil {
				t.Fatalf("create %s: %v", title, err)
			}
		}
		c, err := p.Load(ctx, "ana")
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		renamed := c[1]
		renamed.Title = "Renamed"
		got, err := p.Update(ctx, "ana", renamed)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got[1].Title != "Renamed" || got[1].ID != c[1].ID {
			t.Fatalf("updated entry moved or changed id: %+v", got[1])
		}
		if got[0] != c[0] || got[2] != c[2] {
			t.Fatalf("neighbors changed: %+v", got)
		}

		reloaded, err := p.Load(ctx, "ana")
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
		if reloaded[1].Title != "Renamed" {
			t.Fatalf("update not persisted: %+v", reloaded[1])
		}
	})
}

func TestUpdateUnknownIDFails(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		if _, err := p.Create(ctx, "ana", event.New("keep", "2030-01-01", "2030-01-02")); err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err := p.Update(ctx, "ana", event.Event{ID: "ghost", Title: "nope"})
		if !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
		c, err := p.Load(ctx, "ana")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(c) != 1 || c[0].Title != "keep" {
			t.Fatalf("failed update must not change stored state: %+v", c)
		}
	})
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		var c event.Collection
		var err error
		for _, title := range []string{"one", "two", "three"} {
			if c, err = p.Create(ctx, "ana", event.New(title, "2030-01-01", "2030-01-02")); err != nil {
				t.Fatalf("create %s: %v", title, err)
			}
		}
		got, err := p.Delete(ctx, "ana", c[1].ID)
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("collection has %d events after delete, want 2", len(got))
		}
		if got[0].Title != "one" || got[1].Title != "three" {
			t.Fatalf("wrong events survived: %+v", got)
		}
	})
}

func TestDeleteAbsentIDIsTolerated(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		c, err := p.Create(ctx, "ana", event.New("only", "2030-01-01", "2030-01-02"))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := p.Delete(ctx, "ana", "never-existed")
		if err != nil {
			t.Fatalf("delete of absent id errored: %v", err)
		}
		if len(got) != len(c) {
			t.Fatalf("collection changed: %+v", got)
		}
	})
}

func TestMissingOwnerFailsVisibly(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		if _, err := p.Load(ctx, ""); !errors.Is(err, ErrOwnerMissing) {
			t.Fatalf("Load: expected ErrOwnerMissing, got %v", err)
		}
		if err := p.ReplaceAll(ctx, "", nil); !errors.Is(err, ErrOwnerMissing) {
			t.Fatalf("ReplaceAll: expected ErrOwnerMissing, got %v", err)
		}
		if _, err := p.Create(ctx, "", event.New("x", "", "")); !errors.Is(err, ErrOwnerMissing) {
			t.Fatalf("Create: expected ErrOwnerMissing, got %v", err)
		}
		if _, err := p.Update(ctx, "", event.Event{ID: "x"}); !errors.Is(err, ErrOwnerMissing) {
			t.Fatalf("Update: expected ErrOwnerMissing, got %v", err)
		}
		if _, err := p.Delete(ctx, "", "x"); !errors.Is(err, ErrOwnerMissing) {
			t.Fatalf("Delete: expected ErrOwnerMissing, got %v", err)
		}
		got, err := p.Load(ctx, "ana")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("other owners must be untouched, got %+v", got)
		}
	})
}

func TestOwnersAreIsolated(t *testing.T) {
	each(t, func(t *testing.T, p Persistence) {
		ctx := context.Background()
		if _, err := p.Create(ctx, "ana", event.New("Ana's trip", "2030-01-01", "2030-01-02")); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := p.Load(ctx, "ben")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("ben sees ana's events: %+v", got)
		}
	})
}

func TestLoadCorruptRecordIsEmpty(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base}, &ident.Sequence{})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	encoded := base64.URLEncoding.EncodeToString([]byte("ana"))
	if err := os.MkdirAll(filepath.Join(base, "events"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "events", encoded), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	got, err := p.Load(context.Background(), "ana")
	if err != nil {
		t.Fatalf("load of corrupt record must not error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("corrupt record should read as empty, got %+v", got)
	}

	// The next mutation starts over from the empty collection.
	c, err := p.Create(context.Background(), "ana", event.New("fresh start", "2030-01-01", "2030-01-02"))
	if err != nil {
		t.Fatalf("create after corruption: %v", err)
	}
	if len(c) != 1 {
		t.Fatalf("expected a single event, got %+v", c)
	}
}
