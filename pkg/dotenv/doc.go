// Package dotenv reads .env files into an environment mapping.
//
// # File Format
//
// One KEY=VALUE directive per line. Surrounding whitespace is ignored, lines
// starting with '#' are comments, blank lines and lines without '=' are
// skipped. Values are kept verbatim; there is no escaping, interpolation or
// multi-line syntax:
//
//	DATABASE_URL=postgres://localhost:5432/example_com
//	CACHE_URL = 'hiredis://localhost:6379/1/?key_prefix=example_com'
//	DEBUG=True
//	# Ignored
//
// Quoted values stay quoted and are decoded at read time by env.Get, so
// 'quoted' becomes the string quoted. Loader.StripQuotes strips one layer of
// matching quotes at load time instead.
//
// # Precedence
//
// A key is only inserted when the mapping does not hold it yet. Values from
// the real environment win over the file, and the first file to define a key
// wins over files loaded later:
//
//	m := env.NewMap()
//	loader := dotenv.NewLoader(m, log)
//	loader.Load(".env.local")
//	loader.Load(".env")
//
// # Watching
//
// Watcher reloads the file on every write. Because of the precedence rule
// only keys added to the file since the last load take effect. A last line
// without a trailing newline is left for a later write to complete, so a
// value appended in several writes is only applied once its line ends.
package dotenv
