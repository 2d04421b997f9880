package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu-api/internal/feed"
	"github.com/litrevu/litrevu-api/internal/models"
)

// FeedService builds the merged ticket/review feed for a viewer. The social
// graph filter runs fresh on every call.
type FeedService struct {
	db     *gorm.DB
	social *SocialService
}

func NewFeedService(db *gorm.DB, social *SocialService) *FeedService {
	return &FeedService{db: db, social: social}
}

// Home returns the "following" feed: tickets and reviews by visible
// authors, plus reviews attached to the viewer's own tickets (the ticket
// owner sees every response), minus anything by blocked or blocking users.
func (s *FeedService) Home(viewerID uuid.UUID, page int) (feed.Page, error) {
	authorIDs, err := s.social.VisibleAuthorIDs(viewerID)
	if err != nil {
		return feed.Page{}, err
	}

	blocked, err := s.social.BlockedIDs(viewerID)
	if err != nil {
		return feed.Page{}, err
	}
	blockedBy, err := s.social.BlockedByIDs(viewerID)
	if err != nil {
		return feed.Page{}, err
	}
	excluded := append(append([]uuid.UUID{}, blocked...), blockedBy...)

	var tickets []models.Ticket
	if err := s.db.Preload("User").
		Where("user_id IN ?", authorIDs).
		Find(&tickets).Error; err != nil {
		return feed.Page{}, err
	}

	ownTickets := s.db.Model(&models.Ticket{}).Select("id").Where("user_id = ?", viewerID)
	query := s.db.Preload("User").Preload("Ticket").Preload("Ticket.User").
		Where("user_id IN ? OR ticket_id IN (?)", authorIDs, ownTickets)
	if len(excluded) > 0 {
		query = query.Where("user_id NOT IN ?", excluded)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return feed.Page{}, err
	}

	return feed.Paginate(feed.Merge(tickets, reviews), page), nil
}

// Posts returns everything the viewer authored, unfiltered by the graph.
func (s *FeedService) Posts(viewerID uuid.UUID, page int) (feed.Page, error) {
	var tickets []models.Ticket
	if err := s.db.Preload("User").
		Where("user_id = ?", viewerID).
		Find(&tickets).Error; err != nil {
		return feed.Page{}, err
	}

	var reviews []models.Review
	if err := s.db.Preload("User").Preload("Ticket").Preload("Ticket.User").
		Where("user_id = ?", viewerID).
		Find(&reviews).Error; err != nil {
		return feed.Page{}, err
	}

	return feed.Paginate(feed.Merge(tickets, reviews), page), nil
}
