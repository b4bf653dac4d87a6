// Package memory is a map backed implementation of the service storage contracts.
// It backs the handler and router tests and the "memory" storage mode.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

type Storage struct {
	mu       sync.RWMutex
	users    map[domain.UserId]domain.User
	threads  map[domain.ThreadId]domain.Thread
	comments map[domain.CommentId]domain.Comment
	order    []domain.CommentId // insertion order breaks createdAt ties
}

func New() *Storage {
	return &Storage{
		users:    make(map[domain.UserId]domain.User),
		threads:  make(map[domain.ThreadId]domain.Thread),
		comments: make(map[domain.CommentId]domain.Comment),
	}
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Cleanup() error {
	return nil
}

// =========================================================================
// Users
// =========================================================================

func (s *Storage) AddUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return internal_errors.Validation(domain.MsgUsernameTaken)
		}
	}
	s.users[user.Id] = user
	return nil
}

func (s *Storage) GetUserById(ctx context.Context, id domain.UserId) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return domain.User{}, internal_errors.NotFound(domain.MsgUserNotFound)
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, internal_errors.NotFound(domain.MsgUserNotFound)
}

// =========================================================================
// Threads
// =========================================================================

func (s *Storage) AddThread(ctx context.Context, thread domain.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[thread.Owner]; !ok {
		return internal_errors.NotFound(domain.MsgUserNotFound)
	}
	s.threads[thread.Id] = thread
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, internal_errors.NotFound(domain.MsgThreadNotFound)
	}
	return thread, nil
}

// =========================================================================
// Comments
// =========================================================================

func (s *Storage) AddComment(ctx context.Context, comment domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.threads[comment.ThreadId]; !ok {
		return internal_errors.NotFound(domain.MsgThreadNotFound)
	}
	if _, ok := s.users[comment.Owner]; !ok {
		return internal_errors.NotFound(domain.MsgUserNotFound)
	}
	s.comments[comment.Id] = comment
	s.order = append(s.order, comment.Id)
	return nil
}

func (s *Storage) GetCommentById(ctx context.Context, id domain.CommentId) (domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, internal_errors.NotFound(domain.MsgCommentNotFound)
	}
	return comment, nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	comment, err := s.GetCommentById(ctx, id)
	if err != nil {
		return err
	}
	if comment.Owner != owner {
		return internal_errors.Forbidden(domain.MsgNotCommentOwner)
	}
	return nil
}

func (s *Storage) SoftDeleteComment(ctx context.Context, id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return internal_errors.NotFound(domain.MsgCommentNotFound)
	}
	comment.IsDeleted = true
	s.comments[id] = comment
	return nil
}

func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentWithUsername, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CommentWithUsername, 0)
	for _, id := range s.order {
		c := s.comments[id]
		if c.ThreadId != threadId {
			continue
		}
		result = append(result, domain.CommentWithUsername{Comment: c, Username: s.users[c.Owner].Username})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
