package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/models"
)

var (
	ErrSelfFollow = errors.New("cannot follow yourself")
	ErrSelfBlock  = errors.New("cannot block yourself")
)

// SocialService owns the follow/block adjacency sets and the per-request
// visibility computation the feed builds on.
type SocialService struct {
	db *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

// Follow adds a follow edge toward the user with the given username.
// Already-following is a no-op.
func (s *SocialService) Follow(viewerID uuid.UUID, username string) error {
	var target models.User
	if err := s.db.Where("username = ?", username).First(&target).Error; err != nil {
		return ErrUserNotFound
	}
	if target.ID == viewerID {
		return ErrSelfFollow
	}

	var existing models.Follow
	err := s.db.Where("follower_id = ? AND followee_id = ?", viewerID, target.ID).First(&existing).Error
	if err == nil {
		return nil
	}

	follow := models.Follow{
		ID:         uuid.New(),
		FollowerID: viewerID,
		FolloweeID: target.ID,
	}
	return s.db.Create(&follow).Error
}

// Unfollow removes the follow edge toward targetID. Removing an absent edge
// is a no-op, but the target itself must exist.
func (s *SocialService) Unfollow(viewerID, targetID uuid.UUID) error {
	if err := s.userExists(targetID); err != nil {
		return err
	}
	return s.db.Where("follower_id = ? AND followee_id = ?", viewerID, targetID).
		Delete(&models.Follow{}).Error
}

// Block adds a block edge. It does not unfollow; the visibility filter
// suppresses blocked content regardless of follow state.
func (s *SocialService) Block(viewerID, targetID uuid.UUID) error {
	if viewerID == targetID {
		return ErrSelfBlock
	}
	if err := s.userExists(targetID); err != nil {
		return err
	}

	var existing models.Block
	err := s.db.Where("blocker_id = ? AND blocked_id = ?", viewerID, targetID).First(&existing).Error
	if err == nil {
		return nil
	}

	block := models.Block{
		ID:        uuid.New(),
		BlockerID: viewerID,
		BlockedID: targetID,
	}
	return s.db.Create(&block).Error
}

func (s *SocialService) Unblock(viewerID, targetID uuid.UUID) error {
	if err := s.userExists(targetID); err != nil {
		return err
	}
	return s.db.Where("blocker_id = ? AND blocked_id = ?", viewerID, targetID).
		Delete(&models.Block{}).Error
}

// FollowingIDs returns the ids the viewer follows (outbound edges).
func (s *SocialService) FollowingIDs(viewerID uuid.UUID) ([]uuid.UUID, error) {
	var edges []models.Follow
	if err := s.db.Where("follower_id = ?", viewerID).Find(&edges).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(edges))
	for i, e := range edges {
		ids[i] = e.FolloweeID
	}
	return ids, nil
}

// BlockedIDs returns the ids the viewer has blocked.
func (s *SocialService) BlockedIDs(viewerID uuid.UUID) ([]uuid.UUID, error) {
	var edges []models.Block
	if err := s.db.Where("blocker_id = ?", viewerID).Find(&edges).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(edges))
	for i, e := range edges {
		ids[i] = e.BlockedID
	}
	return ids, nil
}

// BlockedByIDs returns the ids of users who have blocked the viewer.
func (s *SocialService) BlockedByIDs(viewerID uuid.UUID) ([]uuid.UUID, error) {
	var edges []models.Block
	if err := s.db.Where("blocked_id = ?", viewerID).Find(&edges).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, len(edges))
	for i, e := range edges {
		ids[i] = e.BlockerID
	}
	return ids, nil
}

// VisibleAuthorIDs computes ({viewer} ∪ follows) − blocked − blockedBy.
// Recomputed per request; follow/block edges mutate independently, so this
// is never cached.
func (s *SocialService) VisibleAuthorIDs(viewerID uuid.UUID) ([]uuid.UUID, error) {
	following, err := s.FollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	blocked, err := s.BlockedIDs(viewerID)
	if err != nil {
		return nil, err
	}
	blockedBy, err := s.BlockedByIDs(viewerID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[uuid.UUID]bool, len(blocked)+len(blockedBy))
	for _, id := range blocked {
		excluded[id] = true
	}
	for _, id := range blockedBy {
		excluded[id] = true
	}

	visible := make([]uuid.UUID, 0, len(following)+1)
	visible = append(visible, viewerID)
	for _, id := range following {
		if !excluded[id] && id != viewerID {
			visible = append(visible, id)
		}
	}
	return visible, nil
}

// Overview assembles the data behind the follow-management page.
func (s *SocialService) Overview(viewerID uuid.UUID) (*dto.SocialOverviewResponse, error) {
	followingIDs, err := s.FollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}

	var followerEdges []models.Follow
	if err := s.db.Where("followee_id = ?", viewerID).Find(&followerEdges).Error; err != nil {
		return nil, err
	}
	followerIDs := make([]uuid.UUID, len(followerEdges))
	for i, e := range followerEdges {
		followerIDs[i] = e.FollowerID
	}

	blockedIDs, err := s.BlockedIDs(viewerID)
	if err != nil {
		return nil, err
	}

	following, err := s.usersByIDs(followingIDs)
	if err != nil {
		return nil, err
	}
	followers, err := s.usersByIDs(followerIDs)
	if err != nil {
		return nil, err
	}
	blockedUsers, err := s.usersByIDs(blockedIDs)
	if err != nil {
		return nil, err
	}

	return &dto.SocialOverviewResponse{
		Following: following,
		Followers: followers,
		Blocked:   blockedUsers,
	}, nil
}

func (s *SocialService) usersByIDs(ids []uuid.UUID) ([]dto.UserResponse, error) {
	out := make([]dto.UserResponse, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []models.User
	if err := s.db.Where("id IN ?", ids).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:           u.ID,
			Username:     u.Username,
			ProfilePhoto: u.ProfilePhoto,
		})
	}
	return out, nil
}

func (s *SocialService) userExists(id uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
