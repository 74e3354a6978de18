package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/boardkit/pkg/board"
)

// StoredBoard - the persistence-facing form of a board: an identity plus the
// board's cells in their interchange form (element or null per cell).
type StoredBoard struct {
	ID        string                  `json:"id"`
	Size      int                     `json:"size"`
	Cells     [][]board.Space[string] `json:"cells"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// NewStoredBoard - captures the current state of a board under the given ID.
// An empty ID gets a fresh uuid.
func NewStoredBoard(id string, b *board.Board[string]) *StoredBoard {
	if id == "" {
		id = uuid.NewString()
	}

	return &StoredBoard{
		ID:        id,
		Size:      b.Size(),
		Cells:     b.Matrix(),
		UpdatedAt: time.Now().UTC(),
	}
}

// ToBoard - rebuilds the board from the stored cells.
func (that *StoredBoard) ToBoard() (*board.Board[string], error) {
	return board.FromMatrix(that.Size, that.Cells)
}
