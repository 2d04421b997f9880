package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a rated response to exactly one ticket. The parent ticket is
// fixed at creation and never reassigned.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TicketID  uuid.UUID `gorm:"type:uuid;not null;index" json:"ticket_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Headline  string    `gorm:"size:128;not null" json:"headline"`
	Body      string    `gorm:"size:8192" json:"body,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Ticket    Ticket    `gorm:"foreignKey:TicketID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
