package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/litrevu/litrevu-api/internal/feed"
	"github.com/litrevu/litrevu-api/internal/middleware"
	"github.com/litrevu/litrevu-api/internal/services"
)

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Home serves the following-mode feed.
func (h *FeedHandler) Home(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, err := h.feedService.Home(userID, feed.ParsePage(c.Query("page")))
	if err != nil {
		return internalError(c)
	}

	return c.JSON(feedResponse(page))
}

// Posts serves the viewer's own tickets and reviews.
func (h *FeedHandler) Posts(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	page, err := h.feedService.Posts(userID, feed.ParsePage(c.Query("page")))
	if err != nil {
		return internalError(c)
	}

	return c.JSON(feedResponse(page))
}
