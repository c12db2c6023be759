package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	// loadDotEnv reads a .env file once per process; a missing file is fine.
	loadDotEnv = sync.OnceFunc(func() {
		_ = godotenv.Load()
	})
)

// Load parses environment variables into cfg, which must be a non-nil
// pointer to a struct. Each struct type is loaded once per process and
// cached; subsequent calls for the same type return the cached value.
func Load(cfg any) error {
	loadDotEnv()

	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: Load expects a non-nil struct pointer, got %T", cfg)
	}

	typ := v.Elem().Type()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to load %s: %w", typ, err)
	}

	cache[typ] = v.Elem().Interface()
	return nil
}

// MustLoad is like Load but panics on failure. Useful at startup where a
// missing required variable should stop the process.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
