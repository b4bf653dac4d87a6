package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/api"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/itchan-dev/forum-api/shared/middleware/metrics"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	owner := mw.GetUserIdFromContext(r)
	if owner == "" {
		utils.WriteUnauthorized(w, "Missing authentication")
		return
	}
	threadId := chi.URLParam(r, "threadId")

	raw, ok := readBody(w, r)
	if !ok {
		return
	}

	added, err := h.comment.Add(r.Context(), threadId, owner, raw)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedCommentData{AddedComment: added}))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actor := mw.GetUserIdFromContext(r)
	if actor == "" {
		utils.WriteUnauthorized(w, "Missing authentication")
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comment.Delete(r.Context(), threadId, commentId, actor); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	metrics.CommentsDeleted.Inc()

	utils.WriteJSON(w, http.StatusOK, api.Response{Status: api.StatusSuccess})
}
