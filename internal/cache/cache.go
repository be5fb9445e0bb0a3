package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// ext is the file extension of cache entries.
const ext = ".msgpack"

// Entry represents a cached review response.
type Entry struct {
	Key       string    `msgpack:"key"`
	Response  string    `msgpack:"response"`
	CreatedAt time.Time `msgpack:"created_at"`
	TTL       int       `msgpack:"ttl"`
}

func (e Entry) expired(ttlSeconds int, now time.Time) bool {
	return ttlSeconds > 0 && now.Sub(e.CreatedAt) > time.Duration(ttlSeconds)*time.Second
}

// Cache provides file-based caching for LLM review responses.
type Cache struct {
	mu         sync.RWMutex
	dir        string
	ttlSeconds int
	enabled    bool
}

// New creates a new Cache. If dir is empty, uses the default cache directory.
func New(enabled bool, dir string, ttlSeconds int) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false}, nil
	}
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Cache{
		dir:        dir,
		ttlSeconds: ttlSeconds,
		enabled:    true,
	}, nil
}

// Get retrieves a cached response by key. Returns ("", false) on miss.
// Expired and unreadable entries count as misses and are removed.
func (c *Cache) Get(key string) (string, bool) {
	if !c.enabled {
		return "", false
	}
	path := c.entryPath(key)

	c.mu.RLock()
	entry, err := readEntry(path)
	c.mu.RUnlock()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.remove(path)
		}
		return "", false
	}
	if entry.expired(c.ttlSeconds, time.Now()) {
		c.remove(path)
		return "", false
	}
	return entry.Response, true
}

// Put stores a response in the cache. The entry is written to a temp file
// and renamed into place so readers never see a partial entry.
func (c *Cache) Put(key, response string) error {
	if !c.enabled {
		return nil
	}
	entry := Entry{
		Key:       HashKey(key),
		Response:  response,
		CreatedAt: time.Now(),
		TTL:       c.ttlSeconds,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return fmt.Errorf("creating cache temp file: %w", err)
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(&entry); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing cache entry: %w", err)
	}
	if err := os.Rename(tmp, c.entryPath(key)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

// Clear removes all cache entries and stray temp files. It returns the
// number of entries removed.
func (c *Cache) Clear() (int, error) {
	if !c.enabled || c.dir == "" {
		return 0, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}
	var removed int
	for _, e := range entries {
		name := e.Name()
		switch {
		case filepath.Ext(name) == ext:
			if err := os.Remove(filepath.Join(c.dir, name)); err == nil {
				removed++
			}
		case strings.HasPrefix(name, "tmp-"):
			os.Remove(filepath.Join(c.dir, name))
		}
	}
	return removed, nil
}

// Stats describes the contents of the cache directory.
type Stats struct {
	Dir        string `json:"dir"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
	Expired    int    `json:"expired"`
}

// GetStats returns information about the cache.
func (c *Cache) GetStats() (Stats, error) {
	stats := Stats{Dir: c.dir}
	if !c.enabled || c.dir == "" {
		return stats, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, fmt.Errorf("reading cache directory: %w", err)
	}
	now := time.Now()
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ext {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		stats.Entries++
		stats.TotalBytes += info.Size()

		entry, err := readEntry(filepath.Join(c.dir, e.Name()))
		if err != nil {
			continue
		}
		if entry.expired(c.ttlSeconds, now) {
			stats.Expired++
		}
	}
	return stats, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string {
	return c.dir
}

// Enabled returns whether caching is enabled.
func (c *Cache) Enabled() bool {
	return c.enabled
}

// HashKey creates a SHA-256 hash of the given key material.
func HashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", h)
}

// BuildCacheKey creates a cache key from the review inputs.
func BuildCacheKey(provider, model, language, code string) string {
	return HashKey(fmt.Sprintf("%s:%s:%s:%s", provider, model, language, code))
}

// DefaultDir returns the platform-appropriate cache directory for critic.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "critic"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "critic"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "critic", "cache"), nil
		}
		return filepath.Join(home, "AppData", "Local", "critic", "cache"), nil
	default:
		return filepath.Join(home, ".cache", "critic"), nil
	}
}

func (c *Cache) entryPath(key string) string {
	return filepath.Join(c.dir, HashKey(key)+ext)
}

func (c *Cache) remove(path string) {
	c.mu.Lock()
	os.Remove(path)
	c.mu.Unlock()
}

func readEntry(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, err
	}
	defer f.Close()

	var entry Entry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return Entry{}, fmt.Errorf("decoding cache entry: %w", err)
	}
	return entry, nil
}
