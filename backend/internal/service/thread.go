package service

import (
	"context"
	"time"

	"github.com/itchan-dev/forum-api/shared/domain"
	"github.com/itchan-dev/forum-api/shared/validation"
)

type ThreadService interface {
	Add(ctx context.Context, owner domain.UserId, payload []byte) (domain.AddedThread, error)
	Detail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	users    UserStorage
	now      func() time.Time
}

func NewThread(threads ThreadStorage, comments CommentStorage, users UserStorage) *Thread {
	return &Thread{threads: threads, comments: comments, users: users, now: now}
}

// now is rounded to what postgres keeps
func now() time.Time {
	return time.Now().UTC().Round(time.Microsecond)
}

func (t *Thread) Add(ctx context.Context, owner domain.UserId, payload []byte) (domain.AddedThread, error) {
	body, err := validation.ThreadPayload(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	thread := domain.Thread{
		Id:        domain.NewId(domain.ThreadIdPrefix),
		Title:     body.Title,
		Body:      body.Body,
		Owner:     owner,
		CreatedAt: t.now(),
	}
	if err := t.threads.AddThread(ctx, thread); err != nil {
		return domain.AddedThread{}, err
	}

	return domain.AddedThread{Id: thread.Id, Title: thread.Title, Owner: thread.Owner}, nil
}

// Detail assembles the thread with its owner's username and every comment,
// oldest first, with deleted comments masked.
func (t *Thread) Detail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := t.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	owner, err := t.users.GetUserById(ctx, thread.Owner)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments, err := t.comments.GetCommentsByThreadId(ctx, thread.Id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	details := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		details = append(details, c.Detail())
	}

	return domain.ThreadDetail{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.CreatedAt,
		Username: owner.Username,
		Comments: details,
	}, nil
}
