package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReviewRequest struct {
	Rating   int    `json:"rating" form:"rating" validate:"required,gte=1,lte=5"`
	Headline string `json:"headline" form:"headline" validate:"required,max=128"`
	Body     string `json:"body" form:"body" validate:"max=8192"`
}

type ReviewMutationRequest struct {
	Action   Action `json:"action" form:"action" validate:"required,oneof=edit delete"`
	Rating   int    `json:"rating" form:"rating"`
	Headline string `json:"headline" form:"headline"`
	Body     string `json:"body" form:"body"`
}

// TicketReviewRequest creates a ticket and its first review in one step.
// Flat so it parses from form submissions as well as JSON.
type TicketReviewRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=128"`
	Description string `json:"description" form:"description" validate:"max=2048"`
	Rating      int    `json:"rating" form:"rating" validate:"required,gte=1,lte=5"`
	Headline    string `json:"headline" form:"headline" validate:"required,max=128"`
	Body        string `json:"body" form:"body" validate:"max=8192"`
}

type ReviewResponse struct {
	ID        uuid.UUID       `json:"id"`
	TicketID  uuid.UUID       `json:"ticket_id"`
	Rating    int             `json:"rating"`
	Headline  string          `json:"headline"`
	Body      string          `json:"body,omitempty"`
	Author    string          `json:"author"`
	UserID    uuid.UUID       `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Ticket    *TicketResponse `json:"ticket,omitempty"`
}
