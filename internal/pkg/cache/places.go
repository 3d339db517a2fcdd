package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mmcloughlin/geohash"
	"github.com/wekesa/mizigo/internal/pkg/models"
)

// placePrecision groups nearby coordinates under one cache entry; 6 characters
// is roughly a 1.2km x 0.6km cell.
const placePrecision = 6

// PlaceCache is a bounded LRU cache of reverse-geocoded place names keyed by
// geohash cell. It replaces the ad hoc coordinate-string maps that used to be
// mutated from every call site; this cache has a single owner and a hard
// capacity.
type PlaceCache struct {
	entries *lru.Cache[string, string]
}

// NewPlaceCache creates a place cache with the given capacity
func NewPlaceCache(capacity int) (*PlaceCache, error) {
	entries, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, err
	}
	return &PlaceCache{entries: entries}, nil
}

// Get returns the cached place name for a point, if present
func (c *PlaceCache) Get(point models.GeoPoint) (string, bool) {
	return c.entries.Get(c.key(point))
}

// Put stores the place name for a point, evicting the least recently used
// entry when full.
func (c *PlaceCache) Put(point models.GeoPoint, name string) {
	c.entries.Add(c.key(point), name)
}

// Len returns the number of cached entries
func (c *PlaceCache) Len() int {
	return c.entries.Len()
}

func (c *PlaceCache) key(point models.GeoPoint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, placePrecision)
}
