package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu-api/internal/feed"
)

func feedIDs(page feed.Page) []uuid.UUID {
	ids := make([]uuid.UUID, len(page.Items))
	for i, item := range page.Items {
		ids[i] = item.ID
	}
	return ids
}

func TestFeedService_Home_FollowAndBlock(t *testing.T) {
	db := setupTestDB(t)
	social := NewSocialService(db)
	svc := NewFeedService(db, social)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ticket := createTicketAt(t, db, bob, "Foo", base)

	t.Run("not followed, not visible", func(t *testing.T) {
		page, err := svc.Home(alice.ID, 1)
		require.NoError(t, err)
		assert.NotContains(t, feedIDs(page), ticket.ID)
	})

	t.Run("followed, visible", func(t *testing.T) {
		require.NoError(t, social.Follow(alice.ID, "bob"))

		page, err := svc.Home(alice.ID, 1)
		require.NoError(t, err)
		assert.Contains(t, feedIDs(page), ticket.ID)
	})

	t.Run("blocked by author, hidden despite follow", func(t *testing.T) {
		require.NoError(t, social.Block(bob.ID, alice.ID))

		page, err := svc.Home(alice.ID, 1)
		require.NoError(t, err)
		assert.NotContains(t, feedIDs(page), ticket.ID)

		// still following
		following, err := social.FollowingIDs(alice.ID)
		require.NoError(t, err)
		assert.Contains(t, following, bob.ID)
	})

	t.Run("viewer blocking author also hides", func(t *testing.T) {
		require.NoError(t, social.Unblock(bob.ID, alice.ID))
		require.NoError(t, social.Block(alice.ID, bob.ID))

		page, err := svc.Home(alice.ID, 1)
		require.NoError(t, err)
		assert.NotContains(t, feedIDs(page), ticket.ID)
	})
}

func TestFeedService_Home_OwnContentAlwaysVisible(t *testing.T) {
	db := setupTestDB(t)
	social := NewSocialService(db)
	svc := NewFeedService(db, social)

	alice := createUser(t, db, "alice")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ticket := createTicketAt(t, db, alice, "Mine", base)
	review := createReviewAt(t, db, alice, ticket, 4, base.Add(time.Minute))

	page, err := svc.Home(alice.ID, 1)
	require.NoError(t, err)
	assert.Contains(t, feedIDs(page), ticket.ID)
	assert.Contains(t, feedIDs(page), review.ID)
}

func TestFeedService_Home_ReviewsOnOwnTickets(t *testing.T) {
	db := setupTestDB(t)
	social := NewSocialService(db)
	svc := NewFeedService(db, social)

	owner := createUser(t, db, "owner")
	reviewer := createUser(t, db, "reviewer")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	ticket := createTicketAt(t, db, owner, "Please review", base)
	review := createReviewAt(t, db, reviewer, ticket, 4, base.Add(time.Hour))

	t.Run("ticket owner sees the unfollowed reviewer's response", func(t *testing.T) {
		page, err := svc.Home(owner.ID, 1)
		require.NoError(t, err)
		assert.Contains(t, feedIDs(page), review.ID)
	})

	t.Run("blocking the reviewer hides the response", func(t *testing.T) {
		require.NoError(t, social.Block(owner.ID, reviewer.ID))

		page, err := svc.Home(owner.ID, 1)
		require.NoError(t, err)
		assert.NotContains(t, feedIDs(page), review.ID)
	})
}

func TestFeedService_Home_SortedAndPaginated(t *testing.T) {
	db := setupTestDB(t)
	social := NewSocialService(db)
	svc := NewFeedService(db, social)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	require.NoError(t, social.Follow(alice.ID, "bob"))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		ticket := createTicketAt(t, db, bob, "t", base.Add(time.Duration(i)*time.Minute))
		createReviewAt(t, db, alice, ticket, 3, base.Add(time.Duration(i)*time.Minute+30*time.Second))
	}

	// 16 items -> 3 pages of 6/6/4
	var all []uuid.UUID
	pageNum := 1
	for {
		page, err := svc.Home(alice.ID, pageNum)
		require.NoError(t, err)

		for i := 1; i < len(page.Items); i++ {
			assert.False(t, page.Items[i].CreatedAt.After(page.Items[i-1].CreatedAt),
				"each page is internally sorted newest first")
		}
		all = append(all, feedIDs(page)...)
		if !page.HasNext {
			break
		}
		pageNum++
	}

	assert.Equal(t, 3, pageNum)
	assert.Len(t, all, 16)
	seen := make(map[uuid.UUID]bool)
	for _, id := range all {
		assert.False(t, seen[id], "no duplicates across pages")
		seen[id] = true
	}
}

func TestFeedService_Home_PageClamping(t *testing.T) {
	db := setupTestDB(t)
	social := NewSocialService(db)
	svc := NewFeedService(db, social)

	alice := createUser(t, db, "alice")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	createTicketAt(t, db, alice, "one", base)
	createTicketAt(t, db, alice, "two", base.Add(time.Minute))

	first, err := svc.Home(alice.ID, 1)
	require.NoError(t, err)
	clamped, err := svc.Home(alice.ID, 999)
	require.NoError(t, err)

	assert.Equal(t, feedIDs(first), feedIDs(clamped))
	assert.Equal(t, 1, clamped.Number)
}

func TestFeedService_Home_EmptyFeed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFeedService(db, NewSocialService(db))

	alice := createUser(t, db, "alice")

	page, err := svc.Home(alice.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
}

func TestFeedService_Posts(t *testing.T) {
	db := setupTestDB(t)
	social := NewSocialService(db)
	svc := NewFeedService(db, social)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mine := createTicketAt(t, db, alice, "mine", base)
	theirs := createTicketAt(t, db, bob, "theirs", base.Add(time.Minute))
	myReview := createReviewAt(t, db, alice, theirs, 5, base.Add(2*time.Minute))

	page, err := svc.Posts(alice.ID, 1)
	require.NoError(t, err)

	ids := feedIDs(page)
	assert.Contains(t, ids, mine.ID)
	assert.Contains(t, ids, myReview.ID)
	assert.NotContains(t, ids, theirs.ID, "posts view only shows own content")

	t.Run("unfiltered by blocks", func(t *testing.T) {
		require.NoError(t, social.Block(bob.ID, alice.ID))

		page, err := svc.Posts(alice.ID, 1)
		require.NoError(t, err)
		assert.Contains(t, feedIDs(page), myReview.ID,
			"own review stays in the posts view even when its ticket owner blocks")
	})
}
