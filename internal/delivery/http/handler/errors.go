package handler

import (
	"errors"

	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/domain/journey"
	"career-navigator/internal/pkg/response"
	ucjourney "career-navigator/internal/usecase/journey"

	"github.com/gofiber/fiber/v3"
)

// mapJourneyError keeps the engine's error taxonomy distinct on the wire:
// not-found and validation outcomes surface with their message, everything
// else collapses to a generic 500.
func mapJourneyError(err error) error {
	switch {
	case errors.Is(err, journey.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, ucjourney.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
