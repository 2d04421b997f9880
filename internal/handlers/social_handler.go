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

type SocialHandler struct {
	socialService *services.SocialService
}

func NewSocialHandler(socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// Overview backs the follow-management page: following, followers, blocked.
func (h *SocialHandler) Overview(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	overview, err := h.socialService.Overview(userID)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(overview)
}

// Follow adds a follow edge toward the user named in the body.
func (h *SocialHandler) Follow(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.FollowRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return unprocessable(c, err)
	}

	if err := h.socialService.Follow(userID, req.Username); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "No user with that username")
		}
		if errors.Is(err, services.ErrSelfFollow) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Now following " + req.Username})
}

func (h *SocialHandler) Unfollow(c *fiber.Ctx) error {
	return h.mutateEdge(c, h.socialService.Unfollow, "Unfollowed")
}

func (h *SocialHandler) Block(c *fiber.Ctx) error {
	return h.mutateEdge(c, h.socialService.Block, "Blocked")
}

func (h *SocialHandler) Unblock(c *fiber.Ctx) error {
	return h.mutateEdge(c, h.socialService.Unblock, "Unblocked")
}

func (h *SocialHandler) mutateEdge(c *fiber.Ctx, op func(viewer, target uuid.UUID) error, verb string) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := op(userID, targetID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		if errors.Is(err, services.ErrSelfBlock) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": verb})
}
