// Package config provides type-safe environment variable loading with
// per-type caching. A .env file, when present, is loaded automatically on
// first use; parsing is handled by the caarlos0/env library.
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Password string `env:"DB_PASS,required"`
//	}
//
//	var db DatabaseConfig
//	if err := config.Load(&db); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded once per process; later calls for the
// same type return the cached value regardless of environment changes.
package config
