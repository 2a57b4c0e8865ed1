package dataset

import (
	"crypto/sha256"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Cache memoizes generated datasets on disk keyed by the generation
// parameters. A repeated run with identical parameters loads the previous
// dataset instead of regenerating it.
type Cache struct {
	Dir string
}

// NewCache returns a cache rooted at dir, defaulting to a directory under
// the system temp dir when dir is empty.
func NewCache(dir string) *Cache {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "lshbench")
	}
	return &Cache{Dir: dir}
}

// entry pairs the stored data with the parameters that produced it so a
// digest collision or format change never silently serves the wrong dataset
type entry struct {
	Params Params
	Data   *Data
}

// Key returns the cache file name for the given parameters
func (c *Cache) Key(p Params) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%d:%d:%d:%d",
		p.NumSamples, p.NumFeatures, p.NumQueries, p.Centers, p.Seed)))
	return fmt.Sprintf("data-%x.gob", sum[:8])
}

// Make returns the dataset for the given parameters, loading it from disk
// when a previous run already generated it. Unreadable or stale cache files
// are regenerated and overwritten.
func (c *Cache) Make(p Params) (*Data, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	path := filepath.Join(c.Dir, c.Key(p))
	if d, err := c.load(path, p); err == nil {
		return d, nil
	}

	d, err := Make(p)
	if err != nil {
		return nil, err
	}
	if err := c.store(path, p, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *Cache) load(path string, p Params) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var e entry
	if err := gob.NewDecoder(f).Decode(&e); err != nil {
		return nil, err
	}
	if e.Params != p {
		return nil, fmt.Errorf("cache entry params %+v do not match %+v", e.Params, p)
	}
	return e.Data, nil
}

func (c *Cache) store(path string, p Params, d *Data) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(entry{Params: p, Data: d})
}
