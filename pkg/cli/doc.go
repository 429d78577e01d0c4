// Package cli provides the envurl command-line interface.
//
// # Commands
//
// decode: Decode a configuration URL into its settings record
//
//	envurl decode database "postgres://user:pass@db:5432/app?conn_max_age=60"
//	envurl decode -output json cache "redis://cache:6379/1?key_prefix=site"
//	envurl decode -base-dir /srv/app storage "file:./media/"
//
// get: Load the env file and print one decoded value
//
//	envurl get DEBUG
//	envurl get -required SECRET_KEY
//	envurl get -default "['localhost']" ALLOWED_HOSTS
//
// check: Load the env file and decode DATABASE_URL, CACHE_URL, EMAIL_URL
// and STORAGE_URL when they are set. Every failure is reported.
//
//	envurl check -env-file .env.production
//
// watch: Reload the env file whenever it changes and print the keys it adds
//
//	envurl watch
//
// # Configuration
//
// Settings come from an optional YAML file (ENVURL_CONFIG) overridden by
// ENVURL_* environment variables. See pkg/config.
package cli
