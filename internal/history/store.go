package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vidget/media-downloader/internal/model"
)

// Store is the per-user history repository
type Store struct {
	db     *sql.DB
	dsn    string
	logger *slog.Logger
}

// NewStore creates a history store over a migrated database
func NewStore(pg *Postgres, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: pg.db, dsn: pg.dsn, logger: logger}
}

// Add appends one history record for the user. The creation timestamp is
// assigned by the database server.
func (s *Store) Add(ctx context.Context, uid, videoTitle string, format model.DownloadFormat) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO history (id, user_id, video_title, quality, format, size, media_type)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.NewString(), uid, videoTitle, format.Quality, format.Format, format.Size, string(format.Type))
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}

	return nil
}

// All returns the user's full history, newest first
func (s *Store) All(ctx context.Context, uid string) ([]model.HistoryItem, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, video_title, quality, format, size, media_type, created_at
FROM history
WHERE user_id = $1
ORDER BY created_at DESC, id`, uid)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	items := []model.HistoryItem{}
	for rows.Next() {
		var item model.HistoryItem
		var mediaType string
		if err := rows.Scan(&item.ID, &item.VideoTitle, &item.Format.Quality,
			&item.Format.Format, &item.Format.Size, &mediaType, &item.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		item.Format.Type = model.MediaType(mediaType)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history records: %w", err)
	}

	return items, nil
}

// ClearAll deletes the user's entire history in one transaction. With zero
// existing records no delete is issued at all.
func (s *Store) ClearAll(ctx context.Context, uid string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM history WHERE user_id = $1)`, uid).Scan(&exists); err != nil {
		return fmt.Errorf("check history existence: %w", err)
	}
	if !exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE user_id = $1`, uid); err != nil {
		return fmt.Errorf("delete history records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear transaction: %w", err)
	}

	return nil
}
