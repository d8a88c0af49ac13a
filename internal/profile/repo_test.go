package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopori/cart-service/pkg/db/models"
)

func setupProfileTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:profile_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS buyer_profiles (
  user_id TEXT PRIMARY KEY,
  full_name TEXT,
  phone TEXT,
  email TEXT,
  address TEXT,
  city TEXT,
  district TEXT,
  country TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestRepositoryGetMissingReturnsNil(t *testing.T) {
	repo := NewRepository(setupProfileTestDB(t))

	p, err := repo.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestRepositoryUpsert(t *testing.T) {
	repo := NewRepository(setupProfileTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, &models.BuyerProfile{
		UserID:   userID,
		FullName: "Rahim Uddin",
		Phone:    "01700000000",
		City:     "Dhaka",
	}))

	stored, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Rahim Uddin", stored.FullName)

	// Second write for the same buyer replaces the row.
	require.NoError(t, repo.Upsert(ctx, &models.BuyerProfile{
		UserID:   userID,
		FullName: "Rahim Uddin",
		Phone:    "01800000000",
		City:     "Sylhet",
	}))

	stored, err = repo.Get(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "01800000000", stored.Phone)
	assert.Equal(t, "Sylhet", stored.City)
}
