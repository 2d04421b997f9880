package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/models"
)

func TestReviewService_Create(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ticket := createTicketAt(t, db, alice, "Dune", base)

	review, err := svc.Create(bob.ID, ticket.ID, &dto.ReviewRequest{
		Rating:   4,
		Headline: "Sand. So much sand.",
		Body:     "Still great.",
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, review.TicketID)
	assert.Equal(t, bob.ID, review.UserID)

	t.Run("parent must exist", func(t *testing.T) {
		_, err := svc.Create(bob.ID, uuid.New(), &dto.ReviewRequest{Rating: 3, Headline: "x"})
		assert.ErrorIs(t, err, ErrTicketNotFound)
	})
}

func TestReviewService_CreateWithTicket(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	alice := createUser(t, db, "alice")

	ticket, review, err := svc.CreateWithTicket(alice.ID, &dto.TicketReviewRequest{
		Title:       "Hyperion",
		Description: "self-answered",
		Rating:      5,
		Headline:    "Read it twice",
		Body:        "The Priest's Tale alone is worth it.",
	})
	require.NoError(t, err)

	assert.Equal(t, alice.ID, ticket.UserID)
	assert.Equal(t, alice.ID, review.UserID)
	assert.Equal(t, ticket.ID, review.TicketID)

	var ticketCount, reviewCount int64
	require.NoError(t, db.Model(&models.Ticket{}).Count(&ticketCount).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviewCount).Error)
	assert.EqualValues(t, 1, ticketCount)
	assert.EqualValues(t, 1, reviewCount)
}

func TestReviewService_Get(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ticket := createTicketAt(t, db, alice, "Solaris", base)
	review := createReviewAt(t, db, bob, ticket, 5, base.Add(time.Minute))

	got, err := svc.Get(review.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.User.Username)
	assert.Equal(t, "Solaris", got.Ticket.Title)
	assert.Equal(t, "alice", got.Ticket.User.Username)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(uuid.New())
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}

func TestReviewService_UpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReviewService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	mallory := createUser(t, db, "mallory")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ticket := createTicketAt(t, db, alice, "Roadside Picnic", base)
	review := createReviewAt(t, db, bob, ticket, 3, base.Add(time.Minute))

	t.Run("owner can edit, parent ticket is fixed", func(t *testing.T) {
		updated, err := svc.Update(bob.ID, review.ID, &dto.ReviewRequest{
			Rating:   5,
			Headline: "revised upwards",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Rating)
		assert.Equal(t, ticket.ID, updated.TicketID)
	})

	t.Run("non-owner cannot edit", func(t *testing.T) {
		_, err := svc.Update(mallory.ID, review.ID, &dto.ReviewRequest{Rating: 1, Headline: "sabotage"})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(mallory.ID, review.ID), ErrNotOwner)
	})

	t.Run("owner can delete, ticket survives", func(t *testing.T) {
		require.NoError(t, svc.Delete(bob.ID, review.ID))

		_, err := svc.Get(review.ID)
		assert.ErrorIs(t, err, ErrReviewNotFound)

		var count int64
		require.NoError(t, db.Model(&models.Ticket{}).Where("id = ?", ticket.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("unknown review", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(bob.ID, uuid.New()), ErrReviewNotFound)
	})
}
