package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoatQuery_BuildersDoNotShareState(t *testing.T) {
	repo := setupTestRepo(t)
	seedFleet(t, repo, partitionFleet())

	base := repo.Boats(context.Background())
	dinghy := base.Dinghy()
	ship := base.Ship()

	ships, err := ship.Find()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"B", "C", "D"}, boatNames(ships))

	dinghies, err := dinghy.Find()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A"}, boatNames(dinghies))

	all, err := base.Find()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestBoatQuery_Composition(t *testing.T) {
	repo := setupTestRepo(t)
	seedFleet(t, repo, sailFleet())
	ctx := context.Background()

	t.Run("dinghy sailboats", func(t *testing.T) {
		boats, err := repo.Boats(ctx).Dinghy().Sailboats().Find()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Laser", "Nacra"}, boatNames(boats))
	})

	t.Run("longest non sailboat", func(t *testing.T) {
		q, err := repo.Boats(ctx).NonSailboats()
		require.NoError(t, err)

		boat, err := q.Longest()
		require.NoError(t, err)
		require.NotNil(t, boat)
		assert.Equal(t, "Whaler", boat.Name)
	})

	t.Run("sailboat ids and count", func(t *testing.T) {
		ids, err := repo.Boats(ctx).Sailboats().IDs()
		require.NoError(t, err)
		assert.Len(t, ids, 3)

		count, err := repo.Boats(ctx).Sailboats().Count()
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("three classifications among ships", func(t *testing.T) {
		boats, err := repo.Boats(ctx).Ship().WithThreeClassifications().WithClassifications().Find()
		require.NoError(t, err)
		require.Len(t, boats, 1)
		assert.Equal(t, "Pequod", boats[0].Name)
		assert.Len(t, boats[0].Classifications, 3)
	})

	t.Run("excluding", func(t *testing.T) {
		all, err := repo.Boats(ctx).IDs()
		require.NoError(t, err)

		boats, err := repo.Boats(ctx).Excluding(all[1:]).Find()
		require.NoError(t, err)
		require.Len(t, boats, 1)
		assert.Equal(t, all[0], boats[0].ID)

		boats, err = repo.Boats(ctx).Excluding(nil).Find()
		require.NoError(t, err)
		assert.Len(t, boats, len(all))
	})
}

func TestBoatQuery_PreloadIsIdempotent(t *testing.T) {
	repo := setupTestRepo(t)
	q := repo.Boats(context.Background()).WithCaptain().WithCaptain().Sailboats().WithClassifications()
	assert.Equal(t, []string{AssocCaptain, AssocClassifications}, q.preloads)
}
