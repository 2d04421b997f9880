package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/images"
	"github.com/litrevu/litrevu-api/internal/middleware"
	"github.com/litrevu/litrevu-api/internal/services"
	"github.com/litrevu/litrevu-api/internal/storage"
	"github.com/litrevu/litrevu-api/internal/validation"
)

type TicketHandler struct {
	ticketService *services.TicketService
	store         *storage.Store
}

func NewTicketHandler(ticketService *services.TicketService, store *storage.Store) *TicketHandler {
	return &TicketHandler{ticketService: ticketService, store: store}
}

// Create persists the ticket first, then processes the optional
// illustration as a second explicit step.
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return unprocessable(c, err)
	}

	ticket, err := h.ticketService.Create(userID, &req)
	if err != nil {
		return internalError(c)
	}

	if name, err := h.saveUpload(c); err != nil {
		return badRequest(c, err.Error())
	} else if name != "" {
		if err := h.ticketService.AttachImage(ticket.ID, name); err != nil {
			h.store.Remove(name)
			return internalError(c)
		}
		ticket.Image = name
	}

	return c.Status(fiber.StatusCreated).JSON(ticketResponse(ticket))
}

func (h *TicketHandler) Get(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid ticket id")
	}

	ticket, err := h.ticketService.Get(ticketID)
	if err != nil {
		return notFound(c, "Ticket not found")
	}

	return c.JSON(ticketResponse(ticket))
}

// Mutate dispatches an edit-or-delete submission on an existing ticket,
// keyed by the tagged action in the body.
func (h *TicketHandler) Mutate(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	ticketID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid ticket id")
	}

	var req dto.TicketMutationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return unprocessable(c, err)
	}

	switch req.Action {
	case dto.ActionEdit:
		return h.edit(c, userID, ticketID, &req)
	case dto.ActionDelete:
		return h.delete(c, userID, ticketID)
	default:
		return badRequest(c, "Unknown action")
	}
}

func (h *TicketHandler) edit(c *fiber.Ctx, userID, ticketID uuid.UUID, req *dto.TicketMutationRequest) error {
	edit := dto.TicketRequest{Title: req.Title, Description: req.Description}
	if err := validation.Struct(&edit); err != nil {
		return unprocessable(c, err)
	}

	ticket, err := h.ticketService.Update(userID, ticketID, &edit)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			return notFound(c, "Ticket not found")
		}
		if errors.Is(err, services.ErrNotOwner) {
			return forbidden(c)
		}
		return internalError(c)
	}

	if name, err := h.saveUpload(c); err != nil {
		return badRequest(c, err.Error())
	} else if name != "" {
		old := ticket.Image
		if err := h.ticketService.AttachImage(ticket.ID, name); err != nil {
			h.store.Remove(name)
			return internalError(c)
		}
		h.store.Remove(old)
		ticket.Image = name
	}

	return c.JSON(ticketResponse(ticket))
}

func (h *TicketHandler) delete(c *fiber.Ctx, userID, ticketID uuid.UUID) error {
	image, err := h.ticketService.Delete(userID, ticketID)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			return notFound(c, "Ticket not found")
		}
		if errors.Is(err, services.ErrNotOwner) {
			return forbidden(c)
		}
		return internalError(c)
	}
	h.store.Remove(image)

	return c.JSON(fiber.Map{"message": "Ticket deleted"})
}

// saveUpload processes an optional multipart "image" field and returns the
// stored name, or "" when no file was attached.
func (h *TicketHandler) saveUpload(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.New("could not read uploaded file")
	}
	defer file.Close()

	data, ext, err := images.Process(file)
	if err != nil {
		return "", errors.New("unsupported image format (jpeg or png expected)")
	}

	return h.store.Save(ext, data)
}
