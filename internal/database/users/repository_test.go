package users

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/emank/bookcatalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func newUser(username, email string) *entities.User {
	return &entities.User{
		Username:       username,
		FirstName:      "Test",
		LastName:       "User",
		Email:          email,
		HashedPassword: "$2a$12$irrelevantfortests",
	}
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	user := newUser("testuser", "test@example.com")
	err := repo.Create(user)

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := newUser("testuser", "test@example.com")
	require.NoError(t, repo.Create(created))

	user, err := repo.GetByUsername("testuser")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByUsername("nobody")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByID(999)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_UsernameExists(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(newUser("taken", "taken@example.com")))

	exists, err := repo.UsernameExists("taken")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists("free")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_EmailExists(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(newUser("someone", "used@example.com")))

	exists, err := repo.EmailExists("used@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists("fresh@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
