// Package compat exposes the urlconf decoders under the names used by the
// dj-database-url family of settings helpers.
//
// Each *Config function reads a URL from the environment with env.Get and
// returns the settings dictionary:
//
//	db, err := compat.DatabaseConfig("")          // DATABASE_URL, required
//	cache, err := compat.CacheConfig("")          // CACHE_URL, default locmem://
//	email, err := compat.EmailConfig("", "")      // EMAIL_URL, default smtp://
//	storage, err := compat.StorageConfig("", nil) // STORAGE_URL, default file:./media/
//
// Extra env options such as env.WithMapping are passed through. The Parse*
// functions decode a URL string directly.
package compat
