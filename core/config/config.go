package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNotStructPointer indicates Load was called with something other
	// than a non-nil pointer to a struct.
	ErrNotStructPointer = errors.New("config: target must be a non-nil pointer to a struct")

	// ErrParse wraps environment parsing failures.
	ErrParse = errors.New("config: failed to parse environment")
)

var (
	mu    sync.Mutex
	cache = map[reflect.Type]any{}

	// .env is best effort; a missing file is not an error.
	dotenvOnce = sync.OnceFunc(func() { _ = godotenv.Load() })
)

// Load populates cfg from environment variables. The first call for a given
// struct type parses the environment; subsequent calls for the same type
// return the cached value. Safe for concurrent use.
func Load(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	dotenvOnce()

	mu.Lock()
	defer mu.Unlock()

	t := v.Elem().Type()
	if cached, ok := cache[t]; ok {
		v.Elem().Set(reflect.ValueOf(cached))
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	cache[t] = v.Elem().Interface()
	return nil
}

// MustLoad is like Load but panics on failure. Intended for application
// startup where a missing required variable should abort the process.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
