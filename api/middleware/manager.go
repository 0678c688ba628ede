package middleware

import (
	"github.com/MonkyMars/gecho"

	"maizonmarie_server/structs"
)

type Middleware struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger) *Middleware {
	return &Middleware{
		logger: logger,
		cfg:    cfg,
	}
}
