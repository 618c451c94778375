package icon

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/sync/singleflight"

	"grid-launcher/internal/logger"
)

// Loader produces the icon for one program path.
type Loader func(path string) (fyne.Resource, error)

// Cache memoizes icons per program path. Failed loads are cached as the
// fallback icon so a broken entry is not retried on every grid rebuild.
type Cache struct {
	mutex    sync.RWMutex
	icons    map[string]fyne.Resource
	group    singleflight.Group
	load     Loader
	fallback fyne.Resource
	logger   logger.Logger
}

func NewCache(load Loader, log logger.Logger) *Cache {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Cache{
		icons:    make(map[string]fyne.Resource),
		load:     load,
		fallback: theme.FileIcon(),
		logger:   log,
	}
}

func (c *Cache) Get(path string) (fyne.Resource, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	res, ok := c.icons[path]
	return res, ok
}

func (c *Cache) Set(path string, res fyne.Resource) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.icons[path] = res
}

// Resource returns the cached icon for path, loading it once if needed.
// Concurrent callers for the same path share a single load.
func (c *Cache) Resource(path string) fyne.Resource {
	if res, ok := c.Get(path); ok {
		return res
	}

	v, _, _ := c.group.Do(path, func() (interface{}, error) {
		if res, ok := c.Get(path); ok {
			return res, nil
		}
		res, err := c.load(path)
		if err != nil || res == nil {
			fields := map[string]interface{}{"path": path}
			if err != nil {
				fields["error"] = err.Error()
			}
			c.logger.Debug("IconCache", "icon load failed", fields)
			res = c.fallback
		}
		c.Set(path, res)
		return res, nil
	})
	return v.(fyne.Resource)
}

func (c *Cache) Fallback() fyne.Resource {
	return c.fallback
}

func (c *Cache) Invalidate(path string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.icons, path)
}

func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.icons = make(map[string]fyne.Resource)
}

func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.icons)
}
