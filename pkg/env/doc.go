// Package env reads typed configuration values from an environment mapping.
//
// # Mappings
//
// A Mapping is any mutable string-to-string store. OS() wraps the process
// environment; Map is an in-memory substitute for tests or for loading
// configuration without touching the process:
//
//	m := env.NewMap()
//	_ = dotenv.Load(".env", m)
//	debug := env.Bool(m, "DEBUG", false)
//
// # Typed Access
//
// Get decodes values with package literal, so "42" becomes int64(42),
// "['*']" becomes []any{"*"} and anything that is not a literal is returned
// unchanged:
//
//	hosts, err := env.Get("ALLOWED_HOSTS", env.WithDefault([]any{}))
//	secret, err := env.Get("SECRET_KEY", env.Required())
//	cacheURL, _ := env.Get("CACHE_URL", env.WithDefault("locmem://"), env.Warn())
//
// A required key that is absent is reported as a *MissingKeyError. MustGet
// instead logs the error at fatal level and exits, for settings modules that
// should stop the process on a missing secret.
//
// String, Bool, Int, Duration and Strings are convenience accessors that
// always return a value of the requested type, falling back to the default.
package env
