package dto

type FollowRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

// SocialOverviewResponse backs the follow-management page.
type SocialOverviewResponse struct {
	Following []UserResponse `json:"following"`
	Followers []UserResponse `json:"followers"`
	Blocked   []UserResponse `json:"blocked"`
}
