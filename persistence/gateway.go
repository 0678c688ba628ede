package persistence

import (
	"context"
	"fmt"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/structs"
)

// Gateway is the single-key store the storefront snapshots into. The payload is
// opaque at this layer; Load returns (nil, nil) when nothing has been written yet.
type Gateway interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// New builds the gateway backend selected by configuration.
func New(logger *gecho.Logger, cfg *structs.Config) (Gateway, error) {
	switch cfg.Store.Backend {
	case "redis":
		return newRedisGateway(logger, cfg), nil
	case "postgres":
		return newPostgresGateway(logger, cfg)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}
