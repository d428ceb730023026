package authors

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

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_authors_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Author{}, &entities.Book{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	author, err := repo.Create("Ursula K. Le Guin")

	require.NoError(t, err)
	assert.NotZero(t, author.ID)
	assert.Equal(t, "Ursula K. Le Guin", author.Name)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("Iain Banks")
	require.NoError(t, err)

	author, err := repo.GetByID(created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, author.ID)
	assert.Equal(t, "Iain Banks", author.Name)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByID(999)

	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create("First")
	require.NoError(t, err)
	_, err = repo.Create("Second")
	require.NoError(t, err)

	authors, err := repo.GetAll()

	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "First", authors[0].Name)
	assert.Equal(t, "Second", authors[1].Name)
}

func TestRepository_Rename(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("A")
	require.NoError(t, err)

	renamed, err := repo.Rename(created.ID, "B")
	require.NoError(t, err)
	assert.Equal(t, created.ID, renamed.ID)

	// The ID stays stable across the rename
	author, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", author.Name)
}

func TestRepository_Rename_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Rename(42, "anything")

	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestRepository_Delete_CascadesBooks(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	author, err := repo.Create("Doomed")
	require.NoError(t, err)
	keep, err := repo.Create("Kept")
	require.NoError(t, err)

	require.NoError(t, db.Create(&entities.Book{Name: "Orphan Candidate", AuthorID: author.ID}).Error)
	require.NoError(t, db.Create(&entities.Book{Name: "Survivor", AuthorID: keep.ID}).Error)

	err = repo.Delete(author.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(author.ID)
	assert.ErrorIs(t, err, ErrAuthorNotFound)

	// Books of the deleted author are gone, others untouched
	var count int64
	require.NoError(t, db.Model(&entities.Book{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var survivor entities.Book
	require.NoError(t, db.First(&survivor).Error)
	assert.Equal(t, "Survivor", survivor.Name)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Delete(999)

	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestRepository_Exists(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create("Somebody")
	require.NoError(t, err)

	exists, err := repo.Exists(created.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(created.ID + 1)
	require.NoError(t, err)
	assert.False(t, exists)
}
