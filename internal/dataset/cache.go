package dataset

import (
	"os"
	"time"

	"tamvonku/travel-stats/internal/models"
)

// Cache entries are keyed by file path and invalidated when the file's size
// or modification time changes. There is no file-watch invalidation; a stale
// entry is detected on the next load.

type stayCacheEntry struct {
	modTime time.Time
	size    int64
	table   Table
}

type legCacheEntry struct {
	modTime time.Time
	size    int64
	legs    []models.Leg
}

func (l *Loader) cachedStays(path string, info os.FileInfo) (Table, bool) {
	if l.stayCache == nil {
		return Table{}, false
	}
	entry, ok := l.stayCache[path]
	if !ok || !entry.modTime.Equal(info.ModTime()) || entry.size != info.Size() {
		return Table{}, false
	}
	return entry.table, true
}

func (l *Loader) storeStays(path string, info os.FileInfo, table Table) {
	if l.stayCache == nil {
		return
	}
	l.stayCache[path] = stayCacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		table:   table,
	}
}

func (l *Loader) cachedLegs(path string, info os.FileInfo) ([]models.Leg, bool) {
	if l.legCache == nil {
		return nil, false
	}
	entry, ok := l.legCache[path]
	if !ok || !entry.modTime.Equal(info.ModTime()) || entry.size != info.Size() {
		return nil, false
	}
	return entry.legs, true
}

func (l *Loader) storeLegs(path string, info os.FileInfo, legs []models.Leg) {
	if l.legCache == nil {
		return
	}
	l.legCache[path] = legCacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		legs:    legs,
	}
}

// Invalidate drops any cached entry for the given path
func (l *Loader) Invalidate(path string) {
	delete(l.stayCache, path)
	delete(l.legCache, path)
}
