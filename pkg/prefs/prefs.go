package prefs

import (
	"log"
	"sync"

	"github.com/matst80/slask-photos/pkg/storage"
	"github.com/matst80/slask-photos/pkg/types"
)

// Store is the preference collaborator: persisted default filters read
// at session start and updated from the admin surface.
type Store interface {
	DefaultFilters() *types.FilterState
	SetDefaultFilters(filters *types.FilterState) error
}

// DiskPrefs is the fallback store when redis is not configured, backed
// by the prefs file in the library folder.
type DiskPrefs struct {
	mu      sync.RWMutex
	disk    *storage.DiskStorage
	current *types.FilterState
}

func NewDiskPrefs(disk *storage.DiskStorage) *DiskPrefs {
	current, err := disk.LoadPreferences()
	if err != nil {
		log.Printf("failed to load preferences: %v", err)
	}
	return &DiskPrefs{disk: disk, current: current}
}

func (p *DiskPrefs) DefaultFilters() *types.FilterState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return nil
	}
	return p.current.Clone()
}

func (p *DiskPrefs) SetDefaultFilters(filters *types.FilterState) error {
	p.mu.Lock()
	p.current = filters.Clone()
	p.mu.Unlock()
	return p.disk.SavePreferences(filters)
}
