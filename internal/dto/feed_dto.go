package dto

// FeedItem is one kind-tagged entry of the merged feed.
type FeedItem struct {
	Kind   string          `json:"kind"`
	Ticket *TicketResponse `json:"ticket,omitempty"`
	Review *ReviewResponse `json:"review,omitempty"`
}

type FeedResponse struct {
	Items      []FeedItem `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	TotalItems int        `json:"total_items"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
}
