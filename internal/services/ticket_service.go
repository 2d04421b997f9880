package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/models"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrNotOwner       = errors.New("only the owner may modify this")
)

type TicketService struct {
	db *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{db: db}
}

func (s *TicketService) Create(userID uuid.UUID, req *dto.TicketRequest) (*models.Ticket, error) {
	ticket := models.Ticket{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// AttachImage records the processed illustration path on an existing
// ticket. Persisting the record and processing the upload are two separate
// steps in the write path; this is the second one.
func (s *TicketService) AttachImage(ticketID uuid.UUID, path string) error {
	result := s.db.Model(&models.Ticket{}).Where("id = ?", ticketID).Update("image", path)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (s *TicketService) Get(ticketID uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.Preload("User").First(&ticket, "id = ?", ticketID).Error; err != nil {
		return nil, ErrTicketNotFound
	}
	return &ticket, nil
}

// Update mutates title/description after the ownership check.
func (s *TicketService) Update(viewerID, ticketID uuid.UUID, req *dto.TicketRequest) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := s.db.First(&ticket, "id = ?", ticketID).Error; err != nil {
		return nil, ErrTicketNotFound
	}
	if ticket.UserID != viewerID {
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	}
	if err := s.db.Model(&ticket).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Delete removes the ticket and cascades to its reviews in one transaction.
// It returns the stored image path so the caller can remove the file.
func (s *TicketService) Delete(viewerID, ticketID uuid.UUID) (string, error) {
	var ticket models.Ticket
	if err := s.db.First(&ticket, "id = ?", ticketID).Error; err != nil {
		return "", ErrTicketNotFound
	}
	if ticket.UserID != viewerID {
		return "", ErrNotOwner
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ticket).Error
	})
	if err != nil {
		return "", err
	}
	return ticket.Image, nil
}
