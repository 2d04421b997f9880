package feed

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/litrevu/litrevu-api/internal/models"
)

// Kind tags a feed item so the renderer knows which record it carries.
type Kind string

const (
	KindTicket Kind = "ticket"
	KindReview Kind = "review"
)

// Item is one entry of the merged feed: exactly one of Ticket or Review is
// set, matching Kind.
type Item struct {
	Kind      Kind
	ID        uuid.UUID
	CreatedAt time.Time
	Ticket    *models.Ticket
	Review    *models.Review
}

// Merge combines tickets and reviews into a single sequence ordered by
// creation time, newest first. Equal timestamps fall back to id descending
// so ordering (and therefore pagination) is deterministic.
func Merge(tickets []models.Ticket, reviews []models.Review) []Item {
	items := make([]Item, 0, len(tickets)+len(reviews))
	for i := range tickets {
		t := &tickets[i]
		items = append(items, Item{
			Kind:      KindTicket,
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
			Ticket:    t,
		})
	}
	for i := range reviews {
		r := &reviews[i]
		items = append(items, Item{
			Kind:      KindReview,
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			Review:    r,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID.String() > items[j].ID.String()
	})
	return items
}
