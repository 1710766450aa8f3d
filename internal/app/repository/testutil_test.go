package repository

import (
	"context"
	"testing"

	"boatyard/internal/app/ds"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestRepo - репозиторий над sqlite в памяти с примененной схемой.
// Одно соединение: у каждого соединения ":memory:" своя база.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	repo := NewWithDB(db)
	require.NoError(t, repo.Migrate())
	return repo
}

// seedFleet заполняет базу и возвращает id лодок по имени
func seedFleet(t *testing.T, repo *Repository, fleet Fleet) map[string]uint {
	t.Helper()

	require.NoError(t, repo.Seed(context.Background(), fleet))

	var boats []ds.Boat
	require.NoError(t, repo.DB().Find(&boats).Error)
	ids := make(map[string]uint, len(boats))
	for _, b := range boats {
		ids[b.Name] = b.ID
	}
	return ids
}

func boatNames(boats []ds.Boat) []string {
	names := make([]string, 0, len(boats))
	for _, b := range boats {
		names = append(names, b.Name)
	}
	return names
}

var classificationNames = []ds.Classification{
	{Name: "Sailboat"},
	{Name: "Catamaran"},
	{Name: "Motorboat"},
	{Name: "Ketch"},
	{Name: "Sloop"},
}

func withClassifications() []ds.Classification {
	out := make([]ds.Classification, len(classificationNames))
	copy(out, classificationNames)
	return out
}
