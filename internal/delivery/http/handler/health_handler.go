package handler

import (
	"context"
	"time"

	"career-navigator/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type StoreHealth interface {
	Available() bool
}

type CacheHealth interface {
	Ping(ctx context.Context) error
}

type GeneratorHealth interface {
	Configured() bool
}

type HealthHandler struct {
	store StoreHealth
	cache CacheHealth
	gen   GeneratorHealth
}

func NewHealthHandler(store StoreHealth, cache CacheHealth, gen GeneratorHealth) *HealthHandler {
	return &HealthHandler{store: store, cache: cache, gen: gen}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	cacheUp := false
	if h.cache != nil && h.cache.Ping(ctx) == nil {
		cacheUp = true
	}

	data := map[string]any{
		"status":     "ok",
		"store":      h.store != nil && h.store.Available(),
		"cache":      cacheUp,
		"generation": h.gen != nil && h.gen.Configured(),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
