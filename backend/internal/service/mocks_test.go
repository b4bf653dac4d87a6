package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum-api/shared/domain"
)

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	addThreadFunc     func(thread domain.Thread) error
	getThreadByIdFunc func(id domain.ThreadId) (domain.Thread, error)

	mu             sync.Mutex
	addThreadCalls []domain.Thread
}

func (m *MockThreadStorage) AddThread(ctx context.Context, thread domain.Thread) error {
	m.mu.Lock()
	m.addThreadCalls = append(m.addThreadCalls, thread)
	m.mu.Unlock()

	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return nil
}

func (m *MockThreadStorage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.Thread{Id: id, Owner: "user-1"}, nil
}

// MockCommentStorage mocks the CommentStorage interface and records which methods ran.
type MockCommentStorage struct {
	addCommentFunc            func(comment domain.Comment) error
	getCommentByIdFunc        func(id domain.CommentId) (domain.Comment, error)
	verifyCommentOwnerFunc    func(id domain.CommentId, owner domain.UserId) error
	softDeleteCommentFunc     func(id domain.CommentId) error
	getCommentsByThreadIdFunc func(threadId domain.ThreadId) ([]domain.CommentWithUsername, error)

	mu           sync.Mutex
	calls        []string
	addedComment *domain.Comment
}

func (m *MockCommentStorage) track(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

func (m *MockCommentStorage) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockCommentStorage) AddComment(ctx context.Context, comment domain.Comment) error {
	m.track("AddComment")
	m.mu.Lock()
	m.addedComment = &comment
	m.mu.Unlock()
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentById(ctx context.Context, id domain.CommentId) (domain.Comment, error) {
	m.track("GetCommentById")
	if m.getCommentByIdFunc != nil {
		return m.getCommentByIdFunc(id)
	}
	return domain.Comment{Id: id, ThreadId: "thread-1", Owner: "user-1"}, nil
}

func (m *MockCommentStorage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.track("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStorage) SoftDeleteComment(ctx context.Context, id domain.CommentId) error {
	m.track("SoftDeleteComment")
	if m.softDeleteCommentFunc != nil {
		return m.softDeleteCommentFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentWithUsername, error) {
	m.track("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

// MockUserStorage mocks the UserStorage interface.
type MockUserStorage struct {
	addUserFunc           func(user domain.User) error
	getUserByIdFunc       func(id domain.UserId) (domain.User, error)
	getUserByUsernameFunc func(username domain.Username) (domain.User, error)

	mu        sync.Mutex
	addedUser *domain.User
}

func (m *MockUserStorage) AddUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	m.addedUser = &user
	m.mu.Unlock()
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return nil
}

func (m *MockUserStorage) GetUserById(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.getUserByIdFunc != nil {
		return m.getUserByIdFunc(id)
	}
	return domain.User{Id: id, Username: "dicoding"}, nil
}

func (m *MockUserStorage) GetUserByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	if m.getUserByUsernameFunc != nil {
		return m.getUserByUsernameFunc(username)
	}
	return domain.User{Id: "user-1", Username: username}, nil
}

// MockJwt mocks the Jwt interface.
type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "token-" + user.Id, nil
}
