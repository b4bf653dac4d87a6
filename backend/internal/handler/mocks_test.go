package handler

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

// --- Mocks for services ---

type MockThreadService struct {
	MockAdd    func(owner domain.UserId, payload []byte) (domain.AddedThread, error)
	MockDetail func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Add(ctx context.Context, owner domain.UserId, payload []byte) (domain.AddedThread, error) {
	if m.MockAdd != nil {
		return m.MockAdd(owner, payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Detail(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockDetail != nil {
		return m.MockDetail(id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	MockAdd    func(threadId domain.ThreadId, owner domain.UserId, payload []byte) (domain.AddedComment, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error
}

func (m *MockCommentService) Add(ctx context.Context, threadId domain.ThreadId, owner domain.UserId, payload []byte) (domain.AddedComment, error) {
	if m.MockAdd != nil {
		return m.MockAdd(threadId, owner, payload)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, actor)
	}
	return nil
}

type MockAuthService struct {
	MockRegister func(payload []byte) (domain.AddedUser, error)
	MockLogin    func(payload []byte) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, payload []byte) (domain.AddedUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(payload)
	}
	return domain.AddedUser{}, nil
}

func (m *MockAuthService) Login(ctx context.Context, payload []byte) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(payload)
	}
	return "", nil
}

// --- Mock for HealthChecker ---

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}
