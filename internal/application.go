package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/boardkit/internal/config"
	"github.com/rocketscienceinc/boardkit/internal/repository"
	"github.com/rocketscienceinc/boardkit/internal/repository/storage"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one archive sweep: every board in the live redis store is
// copied into the sqlite archive.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	boardRepo := repository.NewBoardRepository(redisStorage.Connection)
	archiveRepo := repository.NewArchiveRepository(sqliteStorage.Connection)

	if err = archiveBoards(ctx, log, boardRepo, archiveRepo); err != nil {
		return fmt.Errorf("archive sweep failed: %w", err)
	}

	return nil
}

// archiveBoards - copies every live board into the archive.
func archiveBoards(ctx context.Context, log *slog.Logger, boardRepo repository.BoardRepository, archiveRepo repository.ArchiveRepository) error {
	ids, err := boardRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("could not list boards: %w", err)
	}

	if len(ids) == 0 {
		log.Info("no boards to archive")
		return nil
	}

	for _, id := range ids {
		stored, err := boardRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get board %s: %w", id, err)
		}

		if err = archiveRepo.Save(ctx, stored); err != nil {
			return fmt.Errorf("could not archive board %s: %w", id, err)
		}

		log.Debug("archived board", "id", id, "size", stored.Size)
	}

	total, err := archiveRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("could not count archived boards: %w", err)
	}

	log.Info("archive sweep finished", "swept", len(ids), "archived_total", total)

	return nil
}
