package compat

import (
	"errors"
	"fmt"

	"github.com/platinummonkey/envurl/pkg/env"
	"github.com/platinummonkey/envurl/pkg/urlconf"
)

// Default variable names and URLs
const (
	DatabaseURLKey = "DATABASE_URL"
	CacheURLKey    = "CACHE_URL"
	EmailURLKey    = "EMAIL_URL"
	StorageURLKey  = "STORAGE_URL"

	DefaultCacheURL   = "locmem://"
	DefaultEmailURL   = "smtp://"
	DefaultStorageURL = "file:./media/"
)

// ErrNotAString is wrapped when a URL variable decodes to a non-string literal
var ErrNotAString = errors.New("value is not a URL string")

// DatabaseConfig decodes the database URL stored under name. The variable
// is required. An empty name means DATABASE_URL.
func DatabaseConfig(name string, opts ...env.Option) (map[string]any, error) {
	if name == "" {
		name = DatabaseURLKey
	}
	s, err := lookupURL(name, with(opts, env.Required())...)
	if err != nil {
		return nil, err
	}
	return ParseDatabase(s)
}

// CacheConfig decodes the cache URL stored under name, warning and falling
// back to locmem:// when it is unset. An empty name means CACHE_URL.
func CacheConfig(name string, opts ...env.Option) (map[string]any, error) {
	if name == "" {
		name = CacheURLKey
	}
	s, err := lookupURL(name, with(opts, env.WithDefault(DefaultCacheURL), env.Warn())...)
	if err != nil {
		return nil, err
	}
	return ParseCache(s)
}

// EmailConfig decodes the email URL stored under name, warning and falling
// back to defaultURL (smtp:// when empty). An empty name means EMAIL_URL.
func EmailConfig(name, defaultURL string, opts ...env.Option) (map[string]any, error) {
	if name == "" {
		name = EmailURLKey
	}
	if defaultURL == "" {
		defaultURL = DefaultEmailURL
	}
	s, err := lookupURL(name, with(opts, env.WithDefault(defaultURL), env.Warn())...)
	if err != nil {
		return nil, err
	}
	return ParseEmail(s)
}

// StorageConfig decodes the storage URL stored under name, warning and
// falling back to file:./media/. An empty name means STORAGE_URL.
func StorageConfig(name string, storageOpts []urlconf.StorageOption, opts ...env.Option) (map[string]any, error) {
	if name == "" {
		name = StorageURLKey
	}
	s, err := lookupURL(name, with(opts, env.WithDefault(DefaultStorageURL), env.Warn())...)
	if err != nil {
		return nil, err
	}
	return ParseStorage(s, storageOpts...)
}

// ParseDatabase returns the settings dictionary for a database URL
func ParseDatabase(s string) (map[string]any, error) {
	db, err := urlconf.ParseDatabase(s)
	if err != nil {
		return nil, err
	}
	return db.Fields(), nil
}

// ParseCache returns the settings dictionary for a cache URL
func ParseCache(s string) (map[string]any, error) {
	cache, err := urlconf.ParseCache(s)
	if err != nil {
		return nil, err
	}
	return cache.Fields(), nil
}

// ParseEmail returns the settings dictionary for an email URL
func ParseEmail(s string) (map[string]any, error) {
	email, err := urlconf.ParseEmail(s)
	if err != nil {
		return nil, err
	}
	return email.Fields(), nil
}

// ParseStorage returns the settings dictionary for a storage URL
func ParseStorage(s string, opts ...urlconf.StorageOption) (map[string]any, error) {
	storage, err := urlconf.ParseStorage(s, opts...)
	if err != nil {
		return nil, err
	}
	return storage.Fields(), nil
}

func lookupURL(name string, opts ...env.Option) (string, error) {
	value, err := env.Get(name, opts...)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: %w (got %T)", name, ErrNotAString, value)
	}
	return s, nil
}

// with appends the fixed options without touching the caller's slice
func with(opts []env.Option, fixed ...env.Option) []env.Option {
	out := make([]env.Option, 0, len(opts)+len(fixed))
	out = append(out, opts...)
	return append(out, fixed...)
}
