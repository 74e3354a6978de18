package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/boardkit/internal/apperror"
	"github.com/rocketscienceinc/boardkit/internal/entity"
)

const boardKeyPrefix = "board:"

type BoardRepository interface {
	CreateOrUpdate(ctx context.Context, board *entity.StoredBoard) error
	GetByID(ctx context.Context, id string) (*entity.StoredBoard, error)
	DeleteByID(ctx context.Context, id string) error
	ListIDs(ctx context.Context) ([]string, error)
}

type dbBoard struct {
	client *redis.Client
}

func NewBoardRepository(client *redis.Client) BoardRepository {
	return &dbBoard{
		client: client,
	}
}

func (that *dbBoard) CreateOrUpdate(ctx context.Context, board *entity.StoredBoard) error {
	boardJSON, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	boardKey := boardKeyPrefix + board.ID
	if err = that.client.Set(ctx, boardKey, boardJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set board: %w", err)
	}

	return nil
}

func (that *dbBoard) GetByID(ctx context.Context, id string) (*entity.StoredBoard, error) {
	boardKey := boardKeyPrefix + id

	response, err := that.client.Get(ctx, boardKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.StoredBoard{}, apperror.ErrBoardNotFound
	}

	if err != nil {
		return &entity.StoredBoard{}, fmt.Errorf("failed to get board by id: %w", err)
	}

	var existingBoard entity.StoredBoard
	if err = json.Unmarshal([]byte(response), &existingBoard); err != nil {
		return &entity.StoredBoard{}, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return &existingBoard, nil
}

func (that *dbBoard) DeleteByID(ctx context.Context, id string) error {
	boardKey := boardKeyPrefix + id

	if err := that.client.Del(ctx, boardKey).Err(); err != nil {
		return fmt.Errorf("failed to delete board by ID: %w", err)
	}

	return nil
}

// ListIDs - returns the IDs of every stored board, via SCAN over the board keyspace.
func (that *dbBoard) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string

	iter := that.client.Scan(ctx, 0, boardKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(boardKeyPrefix):])
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan boards: %w", err)
	}

	return ids, nil
}
