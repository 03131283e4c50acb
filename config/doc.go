// Package config loads service configuration with Viper.
//
// Values come from, in increasing priority: a config.yml found under
// ./cmd/<service>/ (or given explicitly), a .env file loaded with godotenv,
// and the process environment. Environment names map onto nested keys by
// splitting on underscores, so SERVER_PORT sets server.port and
// TRANSCRIPT_DEFAULT_LANGUAGES sets transcript.default_languages.
//
// # Usage
//
//	var cfg Config
//	if err := config.LoadConfig("transcriptd", &cfg); err != nil { ... }
package config
