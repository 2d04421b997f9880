package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/models"
)

func TestAuthService_Register(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	t.Run("returns a usable token pair", func(t *testing.T) {
		resp := registerUser(t, svc, "alice", "correct horse battery")

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "alice", resp.User.Username)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := svc.Register(&dto.RegisterRequest{Username: "alice", Password: "whatever123"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("password is not stored in clear", func(t *testing.T) {
		var user models.User
		require.NoError(t, db.First(&user, "username = ?", "alice").Error)
		assert.NotEqual(t, "correct horse battery", user.Password)
	})
}

func TestAuthService_Login(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	registerUser(t, svc, "alice", "correct horse battery")

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "correct horse battery"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(&dto.LoginRequest{Username: "nobody", Password: "whatever123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshRotation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp := registerUser(t, svc, "alice", "correct horse battery")

	rotated, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	t.Run("old token is revoked after rotation", func(t *testing.T) {
		_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rotated token still works", func(t *testing.T) {
		_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: rotated.RefreshToken})
		require.NoError(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "not-a-token"})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_RefreshExpiry(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	cfg.JWTRefreshExpiry = -time.Minute
	svc := NewAuthService(db, cfg)

	resp := registerUser(t, svc, "alice", "correct horse battery")

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Logout(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp := registerUser(t, svc, "alice", "correct horse battery")

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp := registerUser(t, svc, "alice", "correct horse battery")

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(resp.User.ID, &dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "even more secret",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("valid change", func(t *testing.T) {
		err := svc.ChangePassword(resp.User.ID, &dto.ChangePasswordRequest{
			CurrentPassword: "correct horse battery",
			NewPassword:     "even more secret",
		})
		require.NoError(t, err)

		_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "correct horse battery"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "even more secret"})
		require.NoError(t, err)
	})

	t.Run("sessions survive the change", func(t *testing.T) {
		_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
		require.NoError(t, err)
	})
}

func TestAuthService_SetProfilePhoto(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp := registerUser(t, svc, "alice", "correct horse battery")

	old, err := svc.SetProfilePhoto(resp.User.ID, "first.jpg")
	require.NoError(t, err)
	assert.Empty(t, old)

	old, err = svc.SetProfilePhoto(resp.User.ID, "second.jpg")
	require.NoError(t, err)
	assert.Equal(t, "first.jpg", old)

	user, err := svc.GetUser(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "second.jpg", user.ProfilePhoto)
}

func TestAuthService_DeleteAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())
	social := NewSocialService(db)

	alice := registerUser(t, svc, "alice", "correct horse battery")
	bob := registerUser(t, svc, "bob", "bobs password here")

	require.NoError(t, social.Follow(alice.User.ID, "bob"))
	require.NoError(t, social.Follow(bob.User.ID, "alice"))
	require.NoError(t, social.Block(alice.User.ID, bob.User.ID))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	aliceUser, err := svc.GetUser(alice.User.ID)
	require.NoError(t, err)
	bobUser, err := svc.GetUser(bob.User.ID)
	require.NoError(t, err)

	aliceTicket := createTicketAt(t, db, aliceUser, "alice asks", base)
	bobTicket := createTicketAt(t, db, bobUser, "bob asks", base)
	bobReviewOnAlice := createReviewAt(t, db, bobUser, aliceTicket, 3, base.Add(time.Minute))
	aliceReviewOnBob := createReviewAt(t, db, aliceUser, bobTicket, 4, base.Add(time.Minute))

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteAccount(alice.User.ID, "wrong"), ErrInvalidCredentials)
	})

	t.Run("cascade removes everything owned", func(t *testing.T) {
		require.NoError(t, svc.DeleteAccount(alice.User.ID, "correct horse battery"))

		_, err := svc.GetUser(alice.User.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)

		var count int64
		db.Model(&models.Ticket{}).Where("id = ?", aliceTicket.ID).Count(&count)
		assert.Zero(t, count, "own tickets are gone")

		db.Model(&models.Review{}).Where("id = ?", bobReviewOnAlice.ID).Count(&count)
		assert.Zero(t, count, "reviews on own tickets are gone")

		db.Model(&models.Review{}).Where("id = ?", aliceReviewOnBob.ID).Count(&count)
		assert.Zero(t, count, "own reviews are gone")

		db.Model(&models.Ticket{}).Where("id = ?", bobTicket.ID).Count(&count)
		assert.EqualValues(t, 1, count, "other users' tickets remain")

		db.Model(&models.Follow{}).
			Where("follower_id = ? OR followee_id = ?", alice.User.ID, alice.User.ID).Count(&count)
		assert.Zero(t, count)

		db.Model(&models.Block{}).
			Where("blocker_id = ? OR blocked_id = ?", alice.User.ID, alice.User.ID).Count(&count)
		assert.Zero(t, count)

		db.Model(&models.RefreshToken{}).Where("user_id = ?", alice.User.ID).Count(&count)
		assert.Zero(t, count)

		_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: alice.RefreshToken})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
