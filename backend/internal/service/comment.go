package service

import (
	"context"
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/validation"
)

type CommentService interface {
	Add(ctx context.Context, threadId domain.ThreadId, owner domain.UserId, payload []byte) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
	now      func() time.Time
}

func NewComment(threads ThreadStorage, comments CommentStorage) *Comment {
	return &Comment{threads: threads, comments: comments, now: now}
}

// Add checks the thread before looking at the payload, so a missing thread is
// always reported as not found.
func (c *Comment) Add(ctx context.Context, threadId domain.ThreadId, owner domain.UserId, payload []byte) (domain.AddedComment, error) {
	if _, err := c.threads.GetThreadById(ctx, threadId); err != nil {
		return domain.AddedComment{}, err
	}

	body, err := validation.CommentPayload(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}

	comment := domain.Comment{
		Id:        domain.NewId(domain.CommentIdPrefix),
		ThreadId:  threadId,
		Owner:     owner,
		Content:   body.Content,
		CreatedAt: c.now(),
	}
	if err := c.comments.AddComment(ctx, comment); err != nil {
		return domain.AddedComment{}, err
	}

	return domain.AddedComment{Id: comment.Id, Content: comment.Content, Owner: comment.Owner}, nil
}

// Delete soft-deletes the comment. Existence of thread and comment is checked
// before ownership. Deleting an already deleted comment succeeds.
func (c *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error {
	if _, err := c.threads.GetThreadById(ctx, threadId); err != nil {
		return err
	}

	comment, err := c.comments.GetCommentById(ctx, commentId)
	if err != nil {
		return err
	}
	if comment.ThreadId != threadId {
		return internal_errors.NotFound(domain.MsgCommentNotFound)
	}

	if err := c.comments.VerifyCommentOwner(ctx, commentId, actor); err != nil {
		return err
	}

	return c.comments.SoftDeleteComment(ctx, commentId)
}
