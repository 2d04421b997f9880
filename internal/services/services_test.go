package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/litrevu/litrevu-api/internal/config"
	"github.com/litrevu/litrevu-api/internal/dto"
	"github.com/litrevu/litrevu-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Follow{},
		&models.Block{},
		&models.Ticket{},
		&models.Review{},
	)
	require.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Username: username,
		Password: "$2a$10$unused-hash-for-social-tests",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTicketAt(t *testing.T, db *gorm.DB, owner *models.User, title string, at time.Time) *models.Ticket {
	t.Helper()

	ticket := models.Ticket{
		ID:        uuid.New(),
		Title:     title,
		UserID:    owner.ID,
		CreatedAt: at,
	}
	require.NoError(t, db.Create(&ticket).Error)
	return &ticket
}

func createReviewAt(t *testing.T, db *gorm.DB, owner *models.User, ticket *models.Ticket, rating int, at time.Time) *models.Review {
	t.Helper()

	review := models.Review{
		ID:        uuid.New(),
		TicketID:  ticket.ID,
		Rating:    rating,
		Headline:  "headline",
		UserID:    owner.ID,
		CreatedAt: at,
	}
	require.NoError(t, db.Create(&review).Error)
	return &review
}

func registerUser(t *testing.T, svc *AuthService, username, password string) *dto.AuthResponse {
	t.Helper()

	resp, err := svc.Register(&dto.RegisterRequest{Username: username, Password: password})
	require.NoError(t, err)
	return resp
}
