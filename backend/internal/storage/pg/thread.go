package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	sharedpg "github.com/itchan-dev/forum-api/shared/storage/pg"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.Thread) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO threads (id, title, body, owner, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, thread.Id, thread.Title, thread.Body, thread.Owner, thread.CreatedAt)
	if err != nil {
		if sharedpg.IsForeignKeyViolation(err) {
			return internal_errors.NotFound(domain.MsgUserNotFound)
		}
		return fmt.Errorf("failed to insert thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRowContext(ctx, `
        SELECT id, title, body, owner, created_at
        FROM threads
        WHERE id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Owner, &thread.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound(domain.MsgThreadNotFound)
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	thread.CreatedAt = thread.CreatedAt.UTC()
	return thread, nil
}
