package database

import (
	"github.com/bradfitz/gomemcache/memcache"
)

// NewMemcached builds the client used for the search response cache.
func NewMemcached(server string) *memcache.Client {
	return memcache.New(server)
}
