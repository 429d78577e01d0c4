// Package urlconf decodes URL-shaped configuration strings into backend
// settings records.
//
// # Categories
//
// Each category has its own scheme table; an unregistered scheme returns an
// *UnknownSchemeError:
//
//	database  postgres, postgis, sqlite, mysql
//	cache     redis, hiredis, locmem, dummy
//	email     smtp, submission, locmem, console, dummy
//	storage   file, s3
//
// Every record implements Record. Fields returns the settings dictionary
// with the exact key set the backend expects, for example:
//
//	db, err := urlconf.ParseDatabase("postgres://localhost:5432/example_com")
//	db.Fields()
//	// ENGINE: django.db.backends.postgresql, NAME: example_com, USER: "",
//	// PASSWORD: "", HOST: localhost, PORT: "5432"
//
// # Drivers
//
// Records can also be turned into client settings for the matching Go
// driver without connecting to anything: Database.ConnString for lib/pq,
// Cache.RedisOptions and Cache.UniversalOptions for go-redis, and
// S3Options.AWSConfig, LoadAWSConfig and ClientOptions for the AWS SDK.
//
// # S3 Hosts
//
// Hosts under amazonaws.com must be either s3.<region>.amazonaws.com with
// the bucket as the first path segment, or <bucket>.s3.<region>.amazonaws.com.
// Other amazonaws.com layouts return an *InvalidURLError. Any other host is
// treated as a custom endpoint reached over https with path-style buckets:
//
//	s3://key:secret@nyc3.digitaloceanspaces.com/space/prefix/?aws_region=nyc3
//
// Query parameters override the inferred values. Unknown parameters are
// literal decoded, so aws_s3_gzip=True becomes a bool.
//
// Passwords are replaced by [REDACTED] in error messages.
package urlconf
