package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams change notifications until ctx is cancelled. One Change is
// emitted per owner whose stored collection was written, coalesced over short
// bursts of filesystem activity. Callers should drain the channel; it is
// closed once ctx is done or the watcher fails.
//
// A concurrent writer still wins the race on ReplaceAll (last write wins);
// Watch only lets a running view reload after the fact.
func (p *persistence) Watch(ctx context.Context) (<-chan Change, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	eventsPath := filepath.Join(p.basePath, eventsDir)
	if err := os.MkdirAll(eventsPath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure events path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(eventsPath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", eventsPath, err)
	}

	changes := make(chan Change, 64)

	go func() {
		defer close(changes)
		defer closeWatcher()

		send := func(ch Change) {
			select {
			case changes <- ch:
			default:
				// Drop when the consumer lags; the next reload picks the
				// state up anyway and the watcher must not stall.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				owner := p.ownerForPath(evt.Name)
				if owner == "" {
					continue
				}
				throttle.Enqueue(Change{Owner: owner}, send)
			}
		}
	}()

	return changes, nil
}

// ownerForPath derives the owner from a written file under the events bucket.
func (p *persistence) ownerForPath(path string) string {
	rel, err := filepath.Rel(filepath.Join(p.basePath, eventsDir), path)
	if err != nil || rel == "." || strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	return decodeOwner(rel)
}

// changeThrottle coalesces rapid notifications so a view redraws once per
// burst of filesystem activity instead of on every single write.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *changeThrottle) Enqueue(ch Change, send func(Change)) {
	t.mu.Lock()
	t.pending[ch.Owner] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func(Change)) {
	t.mu.Lock()
	owners := make([]string, 0, len(t.pending))
	for owner := range t.pending {
		owners = append(owners, owner)
	}
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for _, owner := range owners {
		send(Change{Owner: owner})
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
