package catalogue

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/trek/pkg/store"
)

// Favorites persists each owner's favorite places next to their events.
// Like the event store, the whole list is rewritten per change and an
// unreadable record reads as empty.
type Favorites struct {
	d *diskv.Diskv
}

// LoadFavorites opens the favorites bucket under the configured base path.
func LoadFavorites(cfg store.Config) (*Favorites, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Favorites{d: diskv.New(diskv.Options{
		BasePath:          cfg.BasePath(),
		AdvancedTransform: favKeyToPath,
		InverseTransform:  favPathToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

// List returns the owner's favorite places.
func (f *Favorites) List(owner string) ([]Place, error) {
	if owner == "" {
		return nil, store.ErrOwnerMissing
	}
	val, err := f.d.Read(favKey(owner))
	if err != nil {
		return []Place{}, nil
	}
	var out []Place
	if err := json.Unmarshal(val, &out); err != nil {
		fmt.Fprintf(os.Stderr, "catalogue: unreadable favorites for %s: %v\n", owner, err)
		return []Place{}, nil
	}
	return out, nil
}

// Toggle adds the place to the owner's favorites, or removes it when already
// present. It reports whether the place ended up favorited.
func (f *Favorites) Toggle(owner string, p Place) (bool, error) {
	if owner == "" {
		return false, store.ErrOwnerMissing
	}
	list, err := f.List(owner)
	if err != nil {
		return false, err
	}

	kept := make([]Place, 0, len(list)+1)
	removed := false
	for _, fav := range list {
		if fav.ID == p.ID {
			removed = true
			continue
		}
		kept = append(kept, fav)
	}
	added := !removed
	if added {
		kept = append(kept, p)
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return false, fmt.Errorf("catalogue: encode favorites for %s: %w", owner, err)
	}
	if err := f.d.Write(favKey(owner), data); err != nil {
		return false, err
	}
	return added, nil
}

func favKey(owner string) string {
	return "favorites-" + base64.URLEncoding.EncodeToString([]byte(owner))
}

func favKeyToPath(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{FileName: parts[0]}
	}
	return &diskv.PathKey{Path: parts[:1], FileName: parts[1]}
}

func favPathToKey(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
