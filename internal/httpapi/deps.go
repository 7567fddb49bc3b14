package httpapi

import (
	"sync/atomic"
	"time"

	"trabaho-board/internal/catalog"
	"trabaho-board/internal/events"
	"trabaho-board/internal/render"
)

type Deps struct {
	Store *catalog.Store
	Hub   *events.Hub

	Renderer *render.Renderer

	CfgVal *atomic.Value // stores config.Config

	// Limiter is optional; nil disables rate limiting.
	Limiter *KeyLimiter

	// Now is injected so posted-date labels are stable in tests.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
