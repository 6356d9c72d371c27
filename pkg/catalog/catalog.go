package catalog

import (
	"sync"

	"github.com/matst80/slask-photos/pkg/types"
)

// Catalog holds the in-memory photo library. Updates swap in a fresh
// slice so sessions iterating an older snapshot are never broken, and
// quick stats are recomputed here only, on catalog change.
type Catalog struct {
	mu      sync.RWMutex
	photos  []types.Photo
	stats   types.QuickStats
	version uint64
}

func NewCatalog() *Catalog {
	return &Catalog{photos: []types.Photo{}}
}

// SetPhotos replaces the whole catalog, dropping deleted records.
func (c *Catalog) SetPhotos(photos []types.Photo) {
	kept := make([]types.Photo, 0, len(photos))
	for i := range photos {
		if !photos[i].IsDeleted() {
			kept = append(kept, photos[i])
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.photos = kept
	c.stats = computeStats(kept)
	c.version++
}

// Upsert applies a batch from the change feed. Records flagged deleted
// are removed, everything else replaces by id or is appended.
func (c *Catalog) Upsert(photos ...types.Photo) {
	if len(photos) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]types.Photo, len(c.photos))
	copy(next, c.photos)
	for _, p := range photos {
		at := -1
		for i := range next {
			if next[i].Id == p.Id {
				at = i
				break
			}
		}
		if p.IsDeleted() {
			if at >= 0 {
				next = append(next[:at], next[at+1:]...)
			}
			continue
		}
		if at >= 0 {
			next[at] = p
		} else {
			next = append(next, p)
		}
	}
	c.photos = next
	c.stats = computeStats(next)
	c.version++
}

func (c *Catalog) Remove(ids ...types.PhotoId) {
	deleted := make([]types.Photo, 0, len(ids))
	for _, id := range ids {
		deleted = append(deleted, types.Photo{Id: id, Deleted: true})
	}
	c.Upsert(deleted...)
}

// Photos returns the current snapshot. Callers must treat it read-only.
func (c *Catalog) Photos() []types.Photo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.photos
}

func (c *Catalog) QuickStats() types.QuickStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *Catalog) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.photos)
}
