package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/middleware"
	"github.com/litrevu/litrevu-api/internal/services"
	"github.com/litrevu/litrevu-api/internal/validation"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateForTicket posts a review in response to an existing ticket.
func (h *ReviewHandler) CreateForTicket(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid ticket id")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return unprocessable(c, err)
	}

	review, err := h.reviewService.Create(userID, ticketID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			return notFound(c, "Ticket not found")
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(reviewResponse(review))
}

// CreateWithTicket posts a ticket and its first review in one submission.
func (h *ReviewHandler) CreateWithTicket(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TicketReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return unprocessable(c, err)
	}

	_, review, err := h.reviewService.CreateWithTicket(userID, &req)
	if err != nil {
		return internalError(c)
	}

	full, err := h.reviewService.Get(review.ID)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(reviewResponse(full))
}

func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid review id")
	}

	review, err := h.reviewService.Get(reviewID)
	if err != nil {
		return notFound(c, "Review not found")
	}

	return c.JSON(reviewResponse(review))
}

// Mutate dispatches an edit-or-delete submission on an existing review.
func (h *ReviewHandler) Mutate(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid review id")
	}

	var req dto.ReviewMutationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return unprocessable(c, err)
	}

	switch req.Action {
	case dto.ActionEdit:
		edit := dto.ReviewRequest{Rating: req.Rating, Headline: req.Headline, Body: req.Body}
		if err := validation.Struct(&edit); err != nil {
			return unprocessable(c, err)
		}

		review, err := h.reviewService.Update(userID, reviewID, &edit)
		if err != nil {
			if errors.Is(err, services.ErrReviewNotFound) {
				return notFound(c, "Review not found")
			}
			if errors.Is(err, services.ErrNotOwner) {
				return forbidden(c)
			}
			return internalError(c)
		}
		return c.JSON(reviewResponse(review))

	case dto.ActionDelete:
		if err := h.reviewService.Delete(userID, reviewID); err != nil {
			if errors.Is(err, services.ErrReviewNotFound) {
				return notFound(c, "Review not found")
			}
			if errors.Is(err, services.ErrNotOwner) {
				return forbidden(c)
			}
			return internalError(c)
		}
		return c.JSON(fiber.Map{"message": "Review deleted"})

	default:
		return badRequest(c, "Unknown action")
	}
}
