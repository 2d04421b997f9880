package handlers

import (
	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/feed"
	"github.com/litrevu/litrevu-api/internal/models"
)

func ticketResponse(t *models.Ticket) *dto.TicketResponse {
	return &dto.TicketResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Image:       t.Image,
		Author:      t.User.Username,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func reviewResponse(r *models.Review) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:        r.ID,
		TicketID:  r.TicketID,
		Rating:    r.Rating,
		Headline:  r.Headline,
		Body:      r.Body,
		Author:    r.User.Username,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Ticket.ID != r.TicketID {
		return resp
	}
	resp.Ticket = ticketResponse(&r.Ticket)
	return resp
}

func feedResponse(page feed.Page) dto.FeedResponse {
	items := make([]dto.FeedItem, 0, len(page.Items))
	for _, item := range page.Items {
		switch item.Kind {
		case feed.KindTicket:
			items = append(items, dto.FeedItem{
				Kind:   string(feed.KindTicket),
				Ticket: ticketResponse(item.Ticket),
			})
		case feed.KindReview:
			items = append(items, dto.FeedItem{
				Kind:   string(feed.KindReview),
				Review: reviewResponse(item.Review),
			})
		}
	}
	return dto.FeedResponse{
		Items:      items,
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}
}
