package urlconf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
)

// Cache backends
const (
	RedisCacheBackend  = "django.core.cache.backends.redis.RedisCache"
	LocMemCacheBackend = "django.core.cache.backends.locmem.LocMemCache"
	DummyCacheBackend  = "django.core.cache.backends.dummy.DummyCache"
)

var cacheBackends = map[string]string{
	"redis":   RedisCacheBackend,
	"hiredis": RedisCacheBackend,
	"locmem":  LocMemCacheBackend,
	"dummy":   DummyCacheBackend,
}

// ErrNotRedis is returned when redis options are requested for another backend
var ErrNotRedis = errors.New("not a redis cache")

// Cache is a decoded cache URL
type Cache struct {
	Backend string
	// Locations holds one redis://host URL per host for redis, or the raw
	// authority for locmem
	Locations []string
	KeyPrefix string
	// DB is the redis database from the URL path, empty when not given
	DB string
}

// ParseCache decodes a redis://, hiredis://, locmem:// or dummy:// URL.
// Redis URLs may list several comma separated hosts.
func ParseCache(s string) (*Cache, error) {
	u := splitURL(s)
	backend, ok := cacheBackends[u.scheme]
	if !ok {
		return nil, &UnknownSchemeError{Category: CategoryCache, Scheme: u.scheme}
	}

	c := &Cache{Backend: backend}
	if backend == DummyCacheBackend {
		return c, nil
	}
	c.KeyPrefix, _ = u.first("key_prefix")

	if backend == LocMemCacheBackend {
		c.Locations = []string{u.netloc}
		return c, nil
	}

	userinfo, hostinfo := splitUserinfo(u.netloc)
	if u.hasUser {
		userinfo += "@"
	}
	for _, host := range strings.Split(hostinfo, ",") {
		c.Locations = append(c.Locations, "redis://"+userinfo+host)
	}
	c.DB = strings.Trim(u.path, "/")

	return c, nil
}

// Fields implements Record. A single redis host yields a scalar LOCATION,
// several hosts a list.
func (c *Cache) Fields() map[string]any {
	fields := map[string]any{"BACKEND": c.Backend}

	switch c.Backend {
	case RedisCacheBackend:
		if len(c.Locations) == 1 {
			fields["LOCATION"] = c.Locations[0]
		} else {
			locations := make([]any, len(c.Locations))
			for i, l := range c.Locations {
				locations[i] = l
			}
			fields["LOCATION"] = locations
		}
		options := map[string]any{}
		if c.DB != "" {
			options["db"] = c.DB
		}
		fields["OPTIONS"] = options
		fields["KEY_PREFIX"] = c.KeyPrefix
	case LocMemCacheBackend:
		location := ""
		if len(c.Locations) > 0 {
			location = c.Locations[0]
		}
		fields["LOCATION"] = location
		fields["KEY_PREFIX"] = c.KeyPrefix
	}

	return fields
}

// RedisOptions builds client options for the first redis host
func (c *Cache) RedisOptions() (*redis.Options, error) {
	if c.Backend != RedisCacheBackend || len(c.Locations) == 0 {
		return nil, ErrNotRedis
	}

	opts, err := redis.ParseURL(c.Locations[0])
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if c.DB != "" {
		db, err := strconv.Atoi(c.DB)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db %q: %w", c.DB, err)
		}
		opts.DB = db
	}
	return opts, nil
}

// UniversalOptions builds options covering every host, for replica or
// cluster clients. Credentials are taken from the first host.
func (c *Cache) UniversalOptions() (*redis.UniversalOptions, error) {
	first, err := c.RedisOptions()
	if err != nil {
		return nil, err
	}

	opts := &redis.UniversalOptions{
		Addrs:    make([]string, 0, len(c.Locations)),
		DB:       first.DB,
		Username: first.Username,
		Password: first.Password,
	}
	for _, location := range c.Locations {
		hostOpts, err := redis.ParseURL(location)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		opts.Addrs = append(opts.Addrs, hostOpts.Addr)
	}
	return opts, nil
}
