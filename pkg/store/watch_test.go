package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/ident"
)

func TestWatchEmitsOwnerChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base}, &ident.Sequence{})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if _, err := p.Create(ctx, "ana", event.New("ping", "2030-01-01", "2030-01-02")); err != nil {
		t.Fatalf("create: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case got, ok := <-ch:
			if !ok {
				t.Fatal("watch channel closed before change arrived")
			}
			if got.Owner == "ana" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for change notification")
		}
	}
}

func TestMemoryWatchNotifiesOnReplace(t *testing.T) {
	p := NewMemory(&ident.Sequence{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := p.ReplaceAll(ctx, "ana", event.Collection{}); err != nil {
		t.Fatalf("replace all: %v", err)
	}
	select {
	case got := <-ch:
		if got.Owner != "ana" {
			t.Fatalf("change for %q, want ana", got.Owner)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for memory change")
	}
}
