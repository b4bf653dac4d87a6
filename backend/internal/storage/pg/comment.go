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

// AddComment holds a share lock on the thread while inserting, so a missing
// thread is told apart from a missing owner.
func (s *Storage) AddComment(ctx context.Context, comment domain.Comment) error {
	return sharedpg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var threadId domain.ThreadId
		err := tx.QueryRowContext(ctx, `SELECT id FROM threads WHERE id = $1 FOR SHARE`, comment.ThreadId).Scan(&threadId)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound(domain.MsgThreadNotFound)
			}
			return fmt.Errorf("failed to lock thread: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
            INSERT INTO comments (id, thread_id, owner, content, is_deleted, created_at)
            VALUES ($1, $2, $3, $4, FALSE, $5)
        `, comment.Id, comment.ThreadId, comment.Owner, comment.Content, comment.CreatedAt)
		if err != nil {
			if sharedpg.IsForeignKeyViolation(err) {
				return internal_errors.NotFound(domain.MsgUserNotFound)
			}
			return fmt.Errorf("failed to insert comment: %w", err)
		}
		return nil
	})
}

func (s *Storage) GetCommentById(ctx context.Context, id domain.CommentId) (domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRowContext(ctx, `
        SELECT id, thread_id, owner, content, is_deleted, created_at
        FROM comments
        WHERE id = $1
    `, id).Scan(&c.Id, &c.ThreadId, &c.Owner, &c.Content, &c.IsDeleted, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NotFound(domain.MsgCommentNotFound)
		}
		return domain.Comment{}, fmt.Errorf("failed to fetch comment: %w", err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	var actual domain.UserId
	err := s.db.QueryRowContext(ctx, `SELECT owner FROM comments WHERE id = $1`, id).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound(domain.MsgCommentNotFound)
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	if actual != owner {
		return internal_errors.Forbidden(domain.MsgNotCommentOwner)
	}
	return nil
}

// SoftDeleteComment flags the row; content is kept. Repeating it is a no-op.
func (s *Storage) SoftDeleteComment(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, `UPDATE comments SET is_deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound(domain.MsgCommentNotFound)
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentWithUsername, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, c.thread_id, c.owner, c.content, c.is_deleted, c.created_at, u.username
        FROM comments c
        JOIN users u ON u.id = c.owner
        WHERE c.thread_id = $1
        ORDER BY c.created_at ASC, c.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.CommentWithUsername, 0)
	for rows.Next() {
		var c domain.CommentWithUsername
		if err := rows.Scan(&c.Id, &c.ThreadId, &c.Owner, &c.Content, &c.IsDeleted, &c.CreatedAt, &c.Username); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}
