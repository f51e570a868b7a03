package gamestore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswordlayout/internal/domain"
)

func fixtureGame() *domain.Game {
	grid := domain.NewGrid(6, 4)
	grid.Set(0, 0, 'a')
	grid.Set(1, 0, 'n')
	grid.Set(2, 0, 'e')
	grid.Set(3, 0, 'l')
	grid.PlacedWords = []domain.PlacedWord{
		{Word: "anel", Orientation: domain.Horizontal, XStart: 0, XEnd: 4, YStart: 0, YEnd: 0, Order: 0},
	}
	return &domain.Game{
		ID:        "game-1",
		Language:  "fr",
		Grid:      grid,
		Clues:     []domain.Clue{{Order: 0, Word: "anel", Orientation: domain.Horizontal, Hint: "ring"}},
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGetRoundTrips(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(context.Background()))

	game := fixtureGame()
	require.NoError(t, store.Save(context.Background(), game))

	got, err := store.Get(context.Background(), "game-1")
	require.NoError(t, err)

	assert.Equal(t, game.ID, got.ID)
	assert.Equal(t, game.Language, got.Language)
	assert.Equal(t, game.Grid.Width, got.Grid.Width)
	assert.Equal(t, game.Grid.Height, got.Grid.Height)
	assert.Equal(t, game.Grid.PlacedWords, got.Grid.PlacedWords)
	assert.Equal(t, rune('a'), got.Grid.At(0, 0))
	assert.Equal(t, game.Clues, got.Clues)
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(context.Background()))

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveOverwritesExistingRow(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Migrate(context.Background()))

	game := fixtureGame()
	require.NoError(t, store.Save(context.Background(), game))

	game.Language = "en"
	require.NoError(t, store.Save(context.Background(), game))

	got, err := store.Get(context.Background(), "game-1")
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
}
