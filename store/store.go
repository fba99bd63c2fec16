// Package store persists finanzas data as JSON documents, one per key.
//
// Four backends are available: an in-memory map, a folder of JSON files, a Redis server
// and a PostgreSQL table. They all implement finanzas.Store: loading an absent key is not
// an error and leaves the destination untouched.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Backend names.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Store is a finanzas.Store holding resources that must be released.
type Store interface {
	finanzas.Store
	io.Closer
}

// Config selects and configures a backend.
type Config struct {
	Backend     string `yaml:"backend"`
	Path        string `yaml:"path"`         // file backend folder
	RedisAddr   string `yaml:"redis_addr"`   // redis backend address
	PostgresURL string `yaml:"postgres_url"` // postgres backend connection string
}

// Open opens the backend described by cfg. An empty backend is the file backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFile(cfg.Path)
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return NewRedis(ctx, cfg.RedisAddr)
	case BackendPostgres:
		return NewPostgres(ctx, cfg.PostgresURL)
	default:
		return nil, fmt.Errorf("cannot open store %q: %w", cfg.Backend, ErrUnknownBackend)
	}
}
