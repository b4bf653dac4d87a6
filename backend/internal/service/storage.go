package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

// Storage contracts. Lookups of absent rows return a not-found ErrorWithStatusCode.

type ThreadStorage interface {
	AddThread(ctx context.Context, thread domain.Thread) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
}

type CommentStorage interface {
	AddComment(ctx context.Context, comment domain.Comment) error
	GetCommentById(ctx context.Context, id domain.CommentId) (domain.Comment, error)
	// VerifyCommentOwner returns a forbidden error when owner did not write the comment
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	SoftDeleteComment(ctx context.Context, id domain.CommentId) error
	// GetCommentsByThreadId returns comments oldest first, deleted ones included
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentWithUsername, error)
}

type UserStorage interface {
	// AddUser fails with a validation error when the username is taken
	AddUser(ctx context.Context, user domain.User) error
	GetUserById(ctx context.Context, id domain.UserId) (domain.User, error)
	GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error)
}
