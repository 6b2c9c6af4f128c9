// Package config loads environment-variable configuration into typed structs
// for the namemaker CLI. It wraps caarlos0/env for parsing and godotenv for
// picking up a local .env file during development.
//
// The .env file is loaded at most once per process and is optional; missing
// files are silently ignored so environments that rely purely on real
// environment variables work unchanged.
//
// # Usage
//
//	type Config struct {
//		WordlistPath string `env:"NAMEMAKER_WORDLIST"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure and suits configuration the process cannot start
// without.
package config
