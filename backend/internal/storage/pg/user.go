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

func (s *Storage) AddUser(ctx context.Context, user domain.User) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (id, username, fullname, password, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, user.Id, user.Username, user.Fullname, user.PassHash, user.CreatedAt)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return internal_errors.Validation(domain.MsgUsernameTaken)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *Storage) GetUserById(ctx context.Context, id domain.UserId) (domain.User, error) {
	return getUser(ctx, s.db, "id", id)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	return getUser(ctx, s.db, "username", username)
}

// column is one of the two fixed lookup keys, never user input
func getUser(ctx context.Context, q sharedpg.Querier, column, value string) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx, fmt.Sprintf(`
        SELECT id, username, fullname, password, created_at
        FROM users
        WHERE %s = $1
    `, column), value).Scan(&user.Id, &user.Username, &user.Fullname, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound(domain.MsgUserNotFound)
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
