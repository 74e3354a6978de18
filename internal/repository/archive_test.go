package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/boardkit/internal/apperror"
	"github.com/rocketscienceinc/boardkit/internal/repository/storage"
	"github.com/rocketscienceinc/boardkit/pkg/board"
)

func newArchive(t *testing.T) (context.Context, ArchiveRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "boards.db"))
	require.NoError(t, err)
	require.NoError(t, sqliteStorage.Init(ctx))

	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	return ctx, NewArchiveRepository(sqliteStorage.Connection)
}

func TestArchiveRepository_Save(t *testing.T) {
	t.Run("Saves a new board", func(t *testing.T) {
		ctx, archiveRepo := newArchive(t)

		// Given: a stored board
		stored := newStoredBoard(t, "123")

		// When: Save is called
		err := archiveRepo.Save(ctx, stored)

		// Then: the board is archived
		require.NoError(t, err)

		count, err := archiveRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Saving the same ID again updates in place", func(t *testing.T) {
		ctx, archiveRepo := newArchive(t)

		// Given: an archived board
		stored := newStoredBoard(t, "123")
		require.NoError(t, archiveRepo.Save(ctx, stored))

		// When: saving a changed state under the same ID
		stored.Cells[2][2].SetElement("X")
		require.NoError(t, archiveRepo.Save(ctx, stored))

		// Then: there is still one row, holding the new state
		count, err := archiveRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		retrieved, err := archiveRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, board.Some("X"), retrieved.Cells[2][2].AsOptional())
	})
}

func TestArchiveRepository_GetByID(t *testing.T) {
	t.Run("Returns the archived board", func(t *testing.T) {
		ctx, archiveRepo := newArchive(t)

		// Given: an archived board
		stored := newStoredBoard(t, "123")
		require.NoError(t, archiveRepo.Save(ctx, stored))

		// When: GetByID is called
		retrieved, err := archiveRepo.GetByID(ctx, "123")

		// Then: the cells round trip through the archive
		require.NoError(t, err)
		assert.Equal(t, stored.ID, retrieved.ID)
		assert.Equal(t, stored.Size, retrieved.Size)
		assert.Equal(t, stored.Cells, retrieved.Cells)
	})

	t.Run("Fails with ErrBoardNotFound for an unknown ID", func(t *testing.T) {
		ctx, archiveRepo := newArchive(t)

		// When: GetByID is called with a non-existent ID
		_, err := archiveRepo.GetByID(ctx, "9999999")

		// Then: an ErrBoardNotFound error should be returned
		assert.ErrorIs(t, err, apperror.ErrBoardNotFound)
	})
}
