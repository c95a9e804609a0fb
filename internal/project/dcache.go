package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит метаданные модулей по контент-хешу на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores cached module metadata for fast package reloading.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Module metadata
	Name string
	Path string

	// Imports (head segments only, spans not cached)
	ImportPaths []string

	// Hash for validation
	ContentHash Digest

	// Status
	Broken bool // Whether the module had parse errors
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "mods")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt открывает кэш в явной директории (для тестов).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, key.String()+".msgpack")
}

// Load возвращает закэшированный payload по ключу.
// Несовпадение схемы трактуется как промах.
func (c *DiskCache) Load(key Digest) (*DiskPayload, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		// повреждённый кэш — промах, не ошибка
		return nil, false, nil
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}
	if payload.ContentHash != key {
		return nil, false, nil
	}
	return &payload, true, nil
}

// Store сохраняет payload по его ContentHash.
func (c *DiskCache) Store(payload *DiskPayload) error {
	if payload == nil {
		return fmt.Errorf("nil payload")
	}
	payload.Schema = diskCacheSchemaVersion

	data, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tmp := c.pathFor(payload.ContentHash) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.pathFor(payload.ContentHash))
}
