package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/itchan-dev/forum-api/backend/internal/service"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/utils"
	"github.com/itchan-dev/forum-api/shared/validation"
)

// HealthChecker reports whether the backing store can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	auth    service.AuthService
	health  HealthChecker
}

func New(thread service.ThreadService, comment service.CommentService, auth service.AuthService, health HealthChecker) *Handler {
	return &Handler{thread: thread, comment: comment, auth: auth, health: health}
}

// readBody returns false after writing the error response.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	raw, err := validation.ReadBody(w, r, validation.MaxBodySize)
	if err != nil {
		if errors.Is(err, validation.ErrPayloadTooLarge) {
			utils.WriteJSON(w, http.StatusRequestEntityTooLarge, api.Response{Status: api.StatusFail, Message: err.Error()})
			return nil, false
		}
		utils.WriteErrorAndStatusCode(w, err)
		return nil, false
	}
	return raw, true
}
