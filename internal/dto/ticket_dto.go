package dto

import (
	"time"

	"github.com/google/uuid"
)

// Action selects which branch of an edit-or-delete form submission runs.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

type TicketRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=128"`
	Description string `json:"description" form:"description" validate:"max=2048"`
}

// TicketMutationRequest drives the edit-or-delete dispatch on an existing
// ticket. Title/Description are only consulted for ActionEdit.
type TicketMutationRequest struct {
	Action      Action `json:"action" form:"action" validate:"required,oneof=edit delete"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type TicketResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Author      string    `json:"author"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
