package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/boardkit/internal/apperror"
	"github.com/rocketscienceinc/boardkit/internal/entity"
	"github.com/rocketscienceinc/boardkit/pkg/board"
)

type ArchiveRepository interface {
	Save(ctx context.Context, board *entity.StoredBoard) error
	GetByID(ctx context.Context, id string) (*entity.StoredBoard, error)
	Count(ctx context.Context) (int, error)
}

type dbArchive struct {
	conn *sql.DB
}

func NewArchiveRepository(conn *sql.DB) ArchiveRepository {
	return &dbArchive{
		conn: conn,
	}
}

func (that *dbArchive) Save(ctx context.Context, stored *entity.StoredBoard) error {
	cellsJSON, err := json.Marshal(stored.Cells)
	if err != nil {
		return fmt.Errorf("could not marshal cells: %w", err)
	}

	query := `INSERT INTO boards (id, size, cells, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET size=excluded.size, cells=excluded.cells, updated_at=excluded.updated_at`

	_, err = that.conn.ExecContext(ctx, query, stored.ID, stored.Size, string(cellsJSON), stored.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	return nil
}

func (that *dbArchive) GetByID(ctx context.Context, id string) (*entity.StoredBoard, error) {
	query := `SELECT id, size, cells, updated_at FROM boards WHERE id = ?`

	var (
		stored    entity.StoredBoard
		cellsJSON string
		updatedAt string
	)

	row := that.conn.QueryRowContext(ctx, query, id)

	err := row.Scan(&stored.ID, &stored.Size, &cellsJSON, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.StoredBoard{}, apperror.ErrBoardNotFound
	}

	if err != nil {
		return &entity.StoredBoard{}, fmt.Errorf("failed to get board by id: %w", err)
	}

	var cells [][]board.Space[string]
	if err = json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
		return &entity.StoredBoard{}, fmt.Errorf("failed to unmarshal cells: %w", err)
	}
	stored.Cells = cells

	stored.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return &entity.StoredBoard{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &stored, nil
}

func (that *dbArchive) Count(ctx context.Context) (int, error) {
	var count int

	row := that.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM boards`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count boards: %w", err)
	}

	return count, nil
}
