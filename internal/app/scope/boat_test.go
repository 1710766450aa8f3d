package scope

import (
	"testing"

	"boatyard/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DryRun: true,
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func toSQL(db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) string {
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var boats []ds.Boat
		return tx.Model(&ds.Boat{}).Scopes(scopes...).Find(&boats)
	})
}

func TestScopesSQL(t *testing.T) {
	db := dryRunDB(t)

	tests := []struct {
		name     string
		scopes   []func(*gorm.DB) *gorm.DB
		contains []string
	}{
		{"first five", []func(*gorm.DB) *gorm.DB{FirstFive}, []string{"LIMIT 5"}},
		{"dinghy", []func(*gorm.DB) *gorm.DB{Dinghy}, []string{"boats.length < 20"}},
		{"ship", []func(*gorm.DB) *gorm.DB{Ship}, []string{"boats.length >= 20"}},
		{"last three", []func(*gorm.DB) *gorm.DB{LastThreeAlphabetically}, []string{"ORDER BY boats.name DESC", "LIMIT 3"}},
		{"without a captain", []func(*gorm.DB) *gorm.DB{WithoutACaptain}, []string{"boats.captain_id IS NULL"}},
		{"sailboats", []func(*gorm.DB) *gorm.DB{Sailboats}, []string{
			"boats.id IN (SELECT boat_classifications.boat_id FROM",
			`classifications.name = "Sailboat"`,
		}},
		{"three classifications", []func(*gorm.DB) *gorm.DB{WithThreeClassifications}, []string{
			"JOIN boat_classifications ON boat_classifications.boat_id = boats.id",
			"GROUP BY `boats`.`id`",
			"HAVING COUNT(*) = 3",
		}},
		{"id not in", []func(*gorm.DB) *gorm.DB{IDNotIn([]uint{1, 2})}, []string{"boats.id NOT IN (1,2)"}},
		{"longest", []func(*gorm.DB) *gorm.DB{Longest}, []string{
			"boats.length IS NOT NULL",
			"ORDER BY boats.length DESC,boats.id",
			"LIMIT 1",
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql := toSQL(db, tc.scopes...)
			for _, want := range tc.contains {
				assert.Contains(t, sql, want)
			}
		})
	}
}

func TestIDNotIn_EmptySetIsNoop(t *testing.T) {
	db := dryRunDB(t)
	assert.Equal(t, toSQL(db), toSQL(db, IDNotIn(nil)))
	assert.NotContains(t, toSQL(db, IDNotIn([]uint{})), "NOT IN")
}

func TestScopesCompose(t *testing.T) {
	db := dryRunDB(t)
	sql := toSQL(db, Dinghy, WithoutACaptain, LastThreeAlphabetically)
	assert.Contains(t, sql, "boats.length < 20 AND boats.captain_id IS NULL")
	assert.Contains(t, sql, "LIMIT 3")
}
