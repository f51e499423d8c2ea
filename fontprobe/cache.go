package fontprobe

import (
	"sync"
	"time"

	"github.com/darcula-go/darcula/filesystem"
	"github.com/darcula-go/darcula/key"
	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/value"
	"github.com/darcula-go/darcula/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Lifetime is how long a probed family list stays valid.
const Lifetime = 24 * time.Hour

type cacheData struct {
	Families []string `json:"families"`
}

// Cached remembers the families reported by another Prober on disk.
type Cached struct {
	Prober Prober

	internal *gache.Cache[*cacheData]
	mu       sync.Mutex
}

// NewCached caches the families reported by p in the file at path.
func NewCached(p Prober, path string) *Cached {
	return &Cached{
		Prober: p,
		internal: gache.New[*cacheData](
			&gache.Options{
				Path:       path,
				Lifetime:   Lifetime,
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

func (c *Cached) InstalledFamilies() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err == nil && !expired && data != nil {
		return data.Families, nil
	}

	if err != nil {
		log.Warnf("font cache unreadable: %s", err)
	}

	return c.refresh()
}

// Refresh probes again and overwrites the cached list.
func (c *Cached) Refresh() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refresh()
}

func (c *Cached) refresh() ([]string, error) {
	families, err := c.Prober.InstalledFamilies()
	if err != nil {
		return nil, err
	}

	if err := c.internal.Set(&cacheData{Families: families}); err != nil {
		log.Warnf("font cache not saved: %s", err)
	}

	log.Debugf("probed %d font families", len(families))
	return families, nil
}

func (c *Cached) DialogFont() mo.Option[value.Font] {
	return c.Prober.DialogFont()
}

// Default returns the host prober, cached on disk when fonts.cache is set.
func Default() Prober {
	if !viper.GetBool(key.FontsCache) {
		return Host{}
	}

	return NewCached(Host{}, where.FontCache())
}
