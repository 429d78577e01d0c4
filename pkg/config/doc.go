// Package config provides the envurl CLI configuration.
//
// # Overview
//
// Settings come from built-in defaults, an optional YAML file and ENVURL_*
// environment variables, with later sources taking precedence. The result is
// validated before use.
//
// # Configuration Structure
//
// Environment variables:
//
//	ENVURL_CONFIG="envurl.yaml"      # optional YAML file
//	ENVURL_ENV_FILE=".env"
//	ENVURL_STRIP_QUOTES="false"
//	ENVURL_BASE_DIR="/srv/app"       # for relative file: storage URLs
//	ENVURL_OUTPUT="yaml"             # yaml, json
//	ENVURL_LOG_LEVEL="info"          # debug, info, warn, error
//	ENVURL_LOG_FORMAT="text"         # text, json
//
// The same settings in YAML:
//
//	env_file: .env.production
//	strip_quotes: true
//	output: json
//	log:
//	  level: debug
//	  format: json
//
// # Usage Example
//
//	cfg, err := config.LoadConfig(env.OS(), "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	logger := cfg.NewLogger(os.Stderr)
package config
