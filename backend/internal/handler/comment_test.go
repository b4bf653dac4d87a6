package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/itchan-dev/forum-api/shared/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAddComment(t *testing.T) {
	route := "/threads/thread-123/comments"

	t.Run("successful creation", func(t *testing.T) {
		mockService := &MockCommentService{
			MockAdd: func(threadId domain.ThreadId, owner domain.UserId, payload []byte) (domain.AddedComment, error) {
				assert.Equal(t, domain.ThreadId("thread-123"), threadId)
				assert.Equal(t, testUser, owner)
				return domain.AddedComment{Id: "comment-_pby2_tmXV6bcvcdev8xk", Content: "sebuah comment", Owner: owner}, nil
			},
		}
		router := setupTestRouter(&Handler{comment: mockService})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, route, []byte(`{"content": "sebuah comment"}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		body := decode(t, rr)
		assert.Equal(t, "success", body["status"])
		added := body["data"].(map[string]any)["addedComment"].(map[string]any)
		assert.Equal(t, "comment-_pby2_tmXV6bcvcdev8xk", added["id"])
		assert.Equal(t, "sebuah comment", added["content"])
		assert.Equal(t, testUser, added["owner"])
	})

	t.Run("thread not found", func(t *testing.T) {
		mockService := &MockCommentService{
			MockAdd: func(domain.ThreadId, domain.UserId, []byte) (domain.AddedComment, error) {
				return domain.AddedComment{}, internal_errors.NotFound(domain.MsgThreadNotFound)
			},
		}
		router := setupTestRouter(&Handler{comment: mockService})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodPost, "/threads/thread-404/comments", []byte(`{}`)))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, domain.MsgThreadNotFound, decode(t, rr)["message"])
	})
}

func TestDeleteComment(t *testing.T) {
	route := "/threads/thread-123/comments/comment-456"

	t.Run("successful deletion", func(t *testing.T) {
		before := testutil.ToFloat64(metrics.CommentsDeleted)
		mockService := &MockCommentService{
			MockDelete: func(threadId domain.ThreadId, commentId domain.CommentId, actor domain.UserId) error {
				assert.Equal(t, domain.ThreadId("thread-123"), threadId)
				assert.Equal(t, domain.CommentId("comment-456"), commentId)
				assert.Equal(t, testUser, actor)
				return nil
			},
		}
		router := setupTestRouter(&Handler{comment: mockService})

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, createRequest(t, http.MethodDelete, route, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.CommentsDeleted))
	})

	errorCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not the owner", internal_errors.Forbidden(domain.MsgNotCommentOwner), http.StatusForbidden, domain.MsgNotCommentOwner},
		{"comment not found", internal_errors.NotFound(domain.MsgCommentNotFound), http.StatusNotFound, domain.MsgCommentNotFound},
		{"thread not found", internal_errors.NotFound(domain.MsgThreadNotFound), http.StatusNotFound, domain.MsgThreadNotFound},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.CommentsDeleted)
			mockService := &MockCommentService{
				MockDelete: func(domain.ThreadId, domain.CommentId, domain.UserId) error { return tc.err },
			}
			router := setupTestRouter(&Handler{comment: mockService})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, createRequest(t, http.MethodDelete, route, nil))

			assert.Equal(t, tc.status, rr.Code)
			body := decode(t, rr)
			assert.Equal(t, "fail", body["status"])
			assert.Equal(t, tc.message, body["message"])
			assert.Equal(t, before, testutil.ToFloat64(metrics.CommentsDeleted))
		})
	}
}
