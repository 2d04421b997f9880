package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create attaches a new review to an existing ticket. The parent ticket is
// fixed here and never reassigned afterwards.
func (s *ReviewService) Create(userID, ticketID uuid.UUID, req *dto.ReviewRequest) (*models.Review, error) {
	var ticket models.Ticket
	if err := s.db.First(&ticket, "id = ?", ticketID).Error; err != nil {
		return nil, ErrTicketNotFound
	}

	review := models.Review{
		ID:       uuid.New(),
		TicketID: ticket.ID,
		Rating:   req.Rating,
		Headline: req.Headline,
		Body:     req.Body,
		UserID:   userID,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// CreateWithTicket persists a ticket and its first review together; either
// both rows land or neither does.
func (s *ReviewService) CreateWithTicket(userID uuid.UUID, req *dto.TicketReviewRequest) (*models.Ticket, *models.Review, error) {
	ticket := models.Ticket{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	}
	review := models.Review{
		ID:       uuid.New(),
		TicketID: ticket.ID,
		Rating:   req.Rating,
		Headline: req.Headline,
		Body:     req.Body,
		UserID:   userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &ticket, &review, nil
}

func (s *ReviewService) Get(reviewID uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := s.db.Preload("User").Preload("Ticket").Preload("Ticket.User").
		First(&review, "id = ?", reviewID).Error
	if err != nil {
		return nil, ErrReviewNotFound
	}
	return &review, nil
}

func (s *ReviewService) Update(viewerID, reviewID uuid.UUID, req *dto.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, ErrReviewNotFound
	}
	if review.UserID != viewerID {
		return nil, ErrNotOwner
	}

	updates := map[string]interface{}{
		"rating":   req.Rating,
		"headline": req.Headline,
		"body":     req.Body,
	}
	if err := s.db.Model(&review).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) Delete(viewerID, reviewID uuid.UUID) error {
	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		return ErrReviewNotFound
	}
	if review.UserID != viewerID {
		return ErrNotOwner
	}
	return s.db.Delete(&review).Error
}
