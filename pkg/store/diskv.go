package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/ident"
)

const eventsDir = "events"

// Load creates a Persistence backed by diskv using the provided config. A nil
// config falls back to LoadConfig, a nil generator to random UUIDs.
func Load(cfg Config, gen ident.Generator) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if gen == nil {
		gen = ident.UUID{}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		gen:      gen,
		basePath: basePath,
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	gen      ident.Generator
	basePath string
}

func (p *persistence) Load(_ context.Context, owner string) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	val, err := p.d.Read(ownerKey(owner))
	if err != nil {
		// No record yet. First access starts from an empty collection.
		return event.Collection{}, nil
	}
	var c event.Collection
	if err := json.Unmarshal(val, &c); err != nil {
		// Unreadable records are treated as absent, not surfaced.
		fmt.Fprintf(os.Stderr, "store: unreadable events for %s: %v\n", owner, err)
		return event.Collection{}, nil
	}
	return c, nil
}

func (p *persistence) ReplaceAll(_ context.Context, owner string, c event.Collection) error {
	if owner == "" {
		return ErrOwnerMissing
	}
	if c == nil {
		c = event.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("store: encode events for %s: %w", owner, err)
	}
	return p.d.Write(ownerKey(owner), data)
}

func (p *persistence) Create(ctx context.Context, owner string, e event.Event) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	c, err := p.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	e.ID = p.gen.NewID()
	if e.Color == "" {
		e.Color = event.DefaultColor
	}
	c = append(c, e)
	if err := p.ReplaceAll(ctx, owner, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *persistence) Update(ctx context.Context, owner string, e event.Event) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	c, err := p.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	idx := c.IndexOf(e.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, e.ID)
	}
	c[idx] = e
	if err := p.ReplaceAll(ctx, owner, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *persistence) Delete(ctx context.Context, owner, id string) (event.Collection, error) {
	if owner == "" {
		return nil, ErrOwnerMissing
	}
	c, err := p.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	idx := c.IndexOf(id)
	if idx < 0 {
		// Already satisfied. Deleting an absent id is not an error.
		return c, nil
	}
	c = append(c[:idx], c[idx+1:]...)
	if err := p.ReplaceAll(ctx, owner, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ownerKey makes `events-<encoded owner>`. Owners are encoded so arbitrary
// identifiers stay filesystem safe.
func ownerKey(owner string) string {
	return fmt.Sprintf("%s-%s", eventsDir, encodeOwner(owner))
}

func encodeOwner(owner string) string {
	return base64.URLEncoding.EncodeToString([]byte(owner))
}

func decodeOwner(s string) string {
	owner, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(owner)
}

// keyToPathTransform splits on the first dash only; the encoded owner that
// follows may itself contain dashes.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
